package relationship

import (
	"sort"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// edgeKind labels one step of a path by its direction from the node the
// step departs: toward a parent, toward a child, or toward a spouse.
type edgeKind int

const (
	edgeChildToParent edgeKind = iota
	edgeParentToChild
	edgeSpouse
)

// neighbor is one step reachable from a node: the node stepped to, and the
// kind of edge taken to reach it.
type neighbor struct {
	index uint32
	kind  edgeKind
}

// neighbors enumerates idx's reachable nodes in the fixed, deterministic
// order the search requires: origin-family parents, then union-family
// spouses, then child lists, each ascending by index.
func neighbors(store *pedigree.Store, idx uint32) []neighbor {
	var result []neighbor

	father, mother := store.Parents(idx)
	parents := make([]uint32, 0, 2)
	if father != 0 {
		parents = append(parents, father)
	}
	if mother != 0 {
		parents = append(parents, mother)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })
	for _, p := range parents {
		result = append(result, neighbor{index: p, kind: edgeChildToParent})
	}

	for _, s := range store.Spouses(idx) {
		result = append(result, neighbor{index: s, kind: edgeSpouse})
	}

	children := store.Children(idx)
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	for _, c := range children {
		result = append(result, neighbor{index: c, kind: edgeParentToChild})
	}

	return result
}

// visit records how a node was first reached during a one-sided BFS:
// the predecessor node and the edge kind taken to arrive from it.
type visit struct {
	from uint32
	kind edgeKind
}

// Path describes the shortest relationship path found between two people,
// as a deterministic edge sequence from A to B.
type Path struct {
	Nodes []uint32
	Kinds []edgeKind
}

// findPath runs a bidirectional BFS from a and b over the neighbor
// function, expanding one level from a's side and then one from b's side
// each round, and returns
// the first shortest path found under the fixed neighbor order. Returns
// nil if a and b are not connected.
func findPath(store *pedigree.Store, a, b uint32) *Path {
	if a == b {
		return &Path{Nodes: []uint32{a}}
	}

	fromVisited := map[uint32]visit{a: {}}
	toVisited := map[uint32]visit{b: {}}
	fromFrontier := []uint32{a}
	toFrontier := []uint32{b}

	for len(fromFrontier) > 0 && len(toFrontier) > 0 {
		if meet, ok := expandFrontier(store, &fromFrontier, fromVisited, toVisited); ok {
			return reconstruct(a, b, meet, fromVisited, toVisited)
		}
		if meet, ok := expandFrontier(store, &toFrontier, toVisited, fromVisited); ok {
			return reconstruct(a, b, meet, fromVisited, toVisited)
		}
	}
	return nil
}

// expandFrontier advances one BFS level of own (recording predecessors in
// ownVisited) and reports the first node also present in otherVisited, the
// meeting point of the two searches.
func expandFrontier(store *pedigree.Store, frontier *[]uint32, ownVisited, otherVisited map[uint32]visit) (uint32, bool) {
	next := make([]uint32, 0)
	for _, current := range *frontier {
		for _, n := range neighbors(store, current) {
			if _, seen := ownVisited[n.index]; seen {
				continue
			}
			ownVisited[n.index] = visit{from: current, kind: n.kind}
			if _, inOther := otherVisited[n.index]; inOther {
				*frontier = next
				return n.index, true
			}
			next = append(next, n.index)
		}
	}
	*frontier = next
	return 0, false
}

// reconstruct walks fromVisited back from meet to a, and toVisited back
// from meet to b, then joins them into a single A->B edge sequence.
func reconstruct(a, b, meet uint32, fromVisited, toVisited map[uint32]visit) *Path {
	var headNodes []uint32
	var headKinds []edgeKind
	for current := meet; current != a; {
		v := fromVisited[current]
		headNodes = append([]uint32{current}, headNodes...)
		headKinds = append([]edgeKind{v.kind}, headKinds...)
		current = v.from
	}

	// tailNodes walks meet -> ... -> b, inclusive of b: toVisited[current]
	// records the predecessor closer to b and the edge kind from that
	// predecessor to current, so it must be reversed for the A->B direction.
	var tailNodes []uint32
	var tailKinds []edgeKind
	for current := meet; current != b; {
		v := toVisited[current]
		tailNodes = append(tailNodes, v.from)
		tailKinds = append(tailKinds, reverseKind(v.kind))
		current = v.from
	}

	path := &Path{Nodes: []uint32{a}}
	path.Nodes = append(path.Nodes, headNodes...)
	path.Kinds = append(path.Kinds, headKinds...)
	path.Nodes = append(path.Nodes, tailNodes...)
	path.Kinds = append(path.Kinds, tailKinds...)
	return path
}

func reverseKind(k edgeKind) edgeKind {
	switch k {
	case edgeChildToParent:
		return edgeParentToChild
	case edgeParentToChild:
		return edgeChildToParent
	default:
		return edgeSpouse
	}
}
