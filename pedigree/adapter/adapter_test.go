package adapter

import (
	"testing"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

func TestAdaptNuclearFamily(t *testing.T) {
	persons := []PersonRecord{
		{Key: "father", FirstName: "Jean", Sex: pedigree.SexMale},
		{Key: "mother", FirstName: "Marie", Sex: pedigree.SexFemale},
		{Key: "child", FirstName: "Luc", Sex: pedigree.SexMale},
	}
	families := []FamilyRecord{
		{Parent1Key: "father", Parent2Key: "mother", ChildKeys: []string{"child"}, Relation: pedigree.RelationMarried},
	}

	result := Adapt(persons, families)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	store := result.Store
	fatherIdx := store.IndexForKey("father")
	motherIdx := store.IndexForKey("mother")
	childIdx := store.IndexForKey("child")

	if fatherIdx == 0 || motherIdx == 0 || childIdx == 0 {
		t.Fatalf("expected all keys to resolve, got father=%d mother=%d child=%d", fatherIdx, motherIdx, childIdx)
	}

	father, mother := store.Parents(childIdx)
	if father != fatherIdx || mother != motherIdx {
		t.Fatalf("expected parents (%d,%d), got (%d,%d)", fatherIdx, motherIdx, father, mother)
	}

	children := store.Children(fatherIdx)
	if len(children) != 1 || children[0] != childIdx {
		t.Fatalf("expected father's children to be [%d], got %v", childIdx, children)
	}

	spouses := store.Spouses(fatherIdx)
	if len(spouses) != 1 || spouses[0] != motherIdx {
		t.Fatalf("expected father's spouses to be [%d], got %v", motherIdx, spouses)
	}

	founders := store.Founders()
	if len(founders) != 2 {
		t.Fatalf("expected 2 founders, got %d: %v", len(founders), founders)
	}
}

func TestAdaptDanglingReferenceDoesNotRaise(t *testing.T) {
	persons := []PersonRecord{
		{Key: "child", FirstName: "Luc"},
	}
	families := []FamilyRecord{
		{Parent1Key: "ghost-father", Parent2Key: "", ChildKeys: []string{"child"}},
	}

	result := Adapt(persons, families)
	if len(result.Errors) != 0 {
		t.Fatalf("dangling references must not produce adapt-time errors, got %v", result.Errors)
	}

	childIdx := result.Store.IndexForKey("child")
	father, mother := result.Store.Parents(childIdx)
	if father != 0 || mother != 0 {
		t.Fatalf("expected unresolved parents to be 0, got (%d,%d)", father, mother)
	}
}

func TestAdaptPinnedKeyIndexIsPreserved(t *testing.T) {
	persons := []PersonRecord{
		{Key: "a", KeyIndex: 5},
		{Key: "b"},
	}

	result := Adapt(persons, nil)
	if result.Store.IndexForKey("a") != 5 {
		t.Fatalf("expected pinned index 5 to be preserved, got %d", result.Store.IndexForKey("a"))
	}
	if result.Store.IndexForKey("b") == 5 {
		t.Fatalf("sequential assignment must not collide with pinned index 5")
	}
}
