package pedigree

import "sort"

// Store is the immutable-for-the-pass snapshot the analytics kernel, the
// Sosa cache manager, and the relationship search all consult. It owns its
// Persons and Families by index; every cross-reference elsewhere in this
// module is an index into one of these two maps, never a pointer.
type Store struct {
	Persons  map[uint32]*Person
	Families map[uint32]*Family

	keyToIndex map[string]uint32
	indexToKey map[uint32]string
}

// NewStore builds an empty store with initialized maps.
func NewStore() *Store {
	return &Store{
		Persons:    make(map[uint32]*Person),
		Families:   make(map[uint32]*Family),
		keyToIndex: make(map[string]uint32),
		indexToKey: make(map[uint32]string),
	}
}

// IndexForKey returns the index registered for key, or 0 if none.
func (s *Store) IndexForKey(key string) uint32 {
	return s.keyToIndex[key]
}

// KeyForIndex returns the key registered for index, or "" if none.
func (s *Store) KeyForIndex(index uint32) string {
	return s.indexToKey[index]
}

// Bind registers the key<->index association. Callers (the adapter) are
// responsible for index uniqueness.
func (s *Store) Bind(key string, index uint32) {
	s.keyToIndex[key] = index
	s.indexToKey[index] = key
}

// PersonIndices returns every person index in ascending order, for callers
// that need deterministic iteration (e.g. from-scratch recomputation).
func (s *Store) PersonIndices() []uint32 {
	indices := make([]uint32, 0, len(s.Persons))
	for idx := range s.Persons {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// FamilyIndices returns every family index in ascending order.
func (s *Store) FamilyIndices() []uint32 {
	indices := make([]uint32, 0, len(s.Families))
	for idx := range s.Families {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// Founders returns the indices of persons with no origin family, in
// ascending order. This is the BFS seed set for topological depth-ordering
// in the consanguinity kernel (spec.md S4.2's "founders" set).
func (s *Store) Founders() []uint32 {
	var founders []uint32
	for _, idx := range s.PersonIndices() {
		if s.Persons[idx].IsFounder() {
			founders = append(founders, idx)
		}
	}
	return founders
}

// Parents returns the father/mother indices of a person, 0 meaning
// unknown, resolving through the person's origin family. A person with no
// origin family, or whose origin family index does not resolve, has both
// parents unknown.
func (s *Store) Parents(personIndex uint32) (father, mother uint32) {
	person, ok := s.Persons[personIndex]
	if !ok || person.OriginFamily == 0 {
		return 0, 0
	}
	family, ok := s.Families[person.OriginFamily]
	if !ok {
		return 0, 0
	}
	return family.Parent1, family.Parent2
}

// Children returns the indices of every child fathered or mothered by
// personIndex, across every union family the person participates in, in
// ascending family-index then child-order.
func (s *Store) Children(personIndex uint32) []uint32 {
	person, ok := s.Persons[personIndex]
	if !ok {
		return nil
	}
	families := append([]uint32(nil), person.UnionFamilies...)
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })

	var children []uint32
	for _, famIdx := range families {
		if family, ok := s.Families[famIdx]; ok {
			children = append(children, family.Children...)
		}
	}
	return children
}

// Spouses returns the indices of every co-parent personIndex shares a union
// family with, in ascending order, deduplicated.
func (s *Store) Spouses(personIndex uint32) []uint32 {
	person, ok := s.Persons[personIndex]
	if !ok {
		return nil
	}
	seen := make(map[uint32]bool)
	var spouses []uint32
	for _, famIdx := range person.UnionFamilies {
		family, ok := s.Families[famIdx]
		if !ok {
			continue
		}
		for _, p := range family.Parents() {
			if p != personIndex && !seen[p] {
				seen[p] = true
				spouses = append(spouses, p)
			}
		}
	}
	sort.Slice(spouses, func(i, j int) bool { return spouses[i] < spouses[j] })
	return spouses
}
