package adapter

import (
	"fmt"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// indexAssigner hands out dense indices by iteration order, the same
// getOrCreateID shape the teacher graph used for its xref<->uint32 mapping,
// generalized to let a caller pin a specific non-zero index.
type indexAssigner struct {
	nextID uint32
	used   map[uint32]bool
}

func newIndexAssigner() *indexAssigner {
	return &indexAssigner{nextID: 1, used: make(map[uint32]bool)}
}

// assign returns pinned if it is non-zero and not already taken, otherwise
// the next unused sequential index.
func (a *indexAssigner) assign(pinned uint32) uint32 {
	if pinned != 0 && !a.used[pinned] {
		a.used[pinned] = true
		if pinned >= a.nextID {
			a.nextID = pinned + 1
		}
		return pinned
	}
	for a.used[a.nextID] {
		a.nextID++
	}
	id := a.nextID
	a.used[id] = true
	a.nextID++
	return id
}

// Result is the adapted store plus diagnostics collected strictly at adapt
// time: structurally impossible defects (duplicate pinned indices) go to
// Errors; everything else the analytics kernel itself discovers (missing
// parents, loops) is reported later by consang.Compute.
type Result struct {
	Store  *pedigree.Store
	Errors []string
}

// Adapt projects persons and families, supplied in arbitrary iteration
// order, into a pedigree.Store. Index assignment is deterministic given a
// fixed iteration order: first-seen order for persons without a pinned
// KeyIndex, then families the same way. Unresolved parent/child key
// references become index 0 rather than raising.
func Adapt(persons []PersonRecord, families []FamilyRecord) *Result {
	store := pedigree.NewStore()
	result := &Result{Store: store}
	assigner := newIndexAssigner()

	for _, rec := range persons {
		index := assigner.assign(rec.KeyIndex)
		if _, exists := store.Persons[index]; exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate index %d assigned to key %q", index, rec.Key))
			continue
		}
		store.Persons[index] = &pedigree.Person{
			Index:      index,
			Key:        rec.Key,
			FirstName:  rec.FirstName,
			Surname:    rec.Surname,
			Occupation: rec.Occupation,
			Sex:        rec.Sex,
		}
		store.Bind(rec.Key, index)
	}

	type resolvedFamily struct {
		index    uint32
		parent1  uint32
		parent2  uint32
		children []uint32
		relation pedigree.RelationKind
	}
	resolved := make([]resolvedFamily, 0, len(families))

	for _, rec := range families {
		index := assigner.assign(rec.KeyIndex)
		if _, exists := store.Families[index]; exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate index %d assigned to a family", index))
			continue
		}

		children := make([]uint32, 0, len(rec.ChildKeys))
		for _, childKey := range rec.ChildKeys {
			children = append(children, store.IndexForKey(childKey)) // 0 if unresolved
		}

		family := &pedigree.Family{
			Index:    index,
			Parent1:  store.IndexForKey(rec.Parent1Key),
			Parent2:  store.IndexForKey(rec.Parent2Key),
			Children: children,
			Relation: rec.Relation,
		}
		store.Families[index] = family
		resolved = append(resolved, resolvedFamily{
			index: index, parent1: family.Parent1, parent2: family.Parent2,
			children: children, relation: rec.Relation,
		})
	}

	// Single scan over families to resolve back-links: each child's origin
	// family, and each parent's union-family membership.
	for _, rf := range resolved {
		for _, childIdx := range rf.children {
			if childIdx == 0 {
				continue
			}
			if child, ok := store.Persons[childIdx]; ok {
				child.OriginFamily = rf.index
			}
		}
		for _, parentIdx := range []uint32{rf.parent1, rf.parent2} {
			if parentIdx == 0 {
				continue
			}
			if parent, ok := store.Persons[parentIdx]; ok {
				parent.UnionFamilies = append(parent.UnionFamilies, rf.index)
			}
		}
	}

	return result
}
