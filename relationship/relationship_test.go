package relationship

import (
	"testing"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree/adapter"
)

func TestFindRelationshipSelf(t *testing.T) {
	store := buildNuclear(t)
	a := store.IndexForKey("father")

	result := FindRelationship(store, a, a)
	if result.Kind != KindSelf || result.Distance != 0 {
		t.Fatalf("expected SELF/0, got %v/%d", result.Kind, result.Distance)
	}
}

func TestFindRelationshipNuclearFamily(t *testing.T) {
	store := buildNuclear(t)
	father := store.IndexForKey("father")
	mother := store.IndexForKey("mother")
	child := store.IndexForKey("child")

	parentChild := FindRelationship(store, father, child)
	if parentChild.Kind != KindChild {
		t.Fatalf("expected father->child to report CHILD, got %v", parentChild.Kind)
	}

	childParent := FindRelationship(store, child, father)
	if childParent.Kind != KindParent {
		t.Fatalf("expected child->father to report PARENT, got %v", childParent.Kind)
	}

	spouse := FindRelationship(store, father, mother)
	if spouse.Kind != KindSpouse {
		t.Fatalf("expected SPOUSE, got %v", spouse.Kind)
	}
}

func TestFindRelationshipSiblings(t *testing.T) {
	persons := []adapter.PersonRecord{{Key: "f"}, {Key: "m"}, {Key: "a"}, {Key: "b"}}
	families := []adapter.FamilyRecord{
		{Parent1Key: "f", Parent2Key: "m", ChildKeys: []string{"a", "b"}},
	}
	result := adapter.Adapt(persons, families)
	store := result.Store

	r := FindRelationship(store, store.IndexForKey("a"), store.IndexForKey("b"))
	if r.Kind != KindSibling {
		t.Fatalf("expected SIBLING, got %v", r.Kind)
	}
}

func TestFindRelationshipCousins(t *testing.T) {
	persons := []adapter.PersonRecord{
		{Key: "g1"}, {Key: "g2"},
		{Key: "c1"}, {Key: "c2"},
		{Key: "s1"}, {Key: "s2"},
		{Key: "p1"}, {Key: "p2"},
	}
	families := []adapter.FamilyRecord{
		{Parent1Key: "g1", Parent2Key: "g2", ChildKeys: []string{"c1", "c2"}},
		{Parent1Key: "c1", Parent2Key: "s1", ChildKeys: []string{"p1"}},
		{Parent1Key: "c2", Parent2Key: "s2", ChildKeys: []string{"p2"}},
	}
	result := adapter.Adapt(persons, families)
	store := result.Store

	r := FindRelationship(store, store.IndexForKey("p1"), store.IndexForKey("p2"))
	if r.Kind != KindCousin {
		t.Fatalf("expected COUSIN, got %v", r.Kind)
	}
	if r.Degree != 1 || r.Removal != 0 {
		t.Fatalf("expected first cousins (degree=1, removal=0), got degree=%d removal=%d", r.Degree, r.Removal)
	}
}

func TestFindRelationshipMirrorsAcrossSwap(t *testing.T) {
	store := buildNuclear(t)
	father := store.IndexForKey("father")
	child := store.IndexForKey("child")

	ab := FindRelationship(store, father, child)
	ba := FindRelationship(store, child, father)

	if ab.Distance != ba.Distance {
		t.Fatalf("expected mirrored distance, got %d vs %d", ab.Distance, ba.Distance)
	}
	if ab.Kind.mirror() != ba.Kind {
		t.Fatalf("expected mirrored kind, got %v vs %v", ab.Kind, ba.Kind)
	}
}

func TestFindRelationshipNone(t *testing.T) {
	persons := []adapter.PersonRecord{{Key: "isolated1"}, {Key: "isolated2"}}
	result := adapter.Adapt(persons, nil)
	store := result.Store

	r := FindRelationship(store, store.IndexForKey("isolated1"), store.IndexForKey("isolated2"))
	if r.Kind != KindNone {
		t.Fatalf("expected NONE, got %v", r.Kind)
	}
}

func buildNuclear(t *testing.T) *pedigree.Store {
	t.Helper()
	persons := []adapter.PersonRecord{{Key: "father"}, {Key: "mother"}, {Key: "child"}}
	families := []adapter.FamilyRecord{
		{Parent1Key: "father", Parent2Key: "mother", ChildKeys: []string{"child"}},
	}
	result := adapter.Adapt(persons, families)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected adapt errors: %v", result.Errors)
	}
	return result.Store
}
