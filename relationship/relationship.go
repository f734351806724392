package relationship

import (
	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// Result is the outcome of FindRelationship: what B is to A, the path
// length, and (for COUSIN) the degree and removal.
type Result struct {
	Kind     Kind
	Distance int
	Path     []uint32
	Degree   int
	Removal  int
}

// FindRelationship classifies the shortest relationship path from a to b.
// See package doc for the search and Kind for the direction convention.
func FindRelationship(store *pedigree.Store, a, b uint32) Result {
	if a == b {
		return Result{Kind: KindSelf, Distance: 0, Path: []uint32{a}}
	}

	path := findPath(store, a, b)
	if path == nil {
		return Result{Kind: KindNone, Distance: -1}
	}

	return classify(path)
}

func classify(path *Path) Result {
	result := Result{Distance: len(path.Kinds), Path: path.Nodes}

	switch {
	case len(path.Kinds) == 1:
		switch path.Kinds[0] {
		case edgeChildToParent:
			result.Kind = KindParent
		case edgeParentToChild:
			result.Kind = KindChild
		case edgeSpouse:
			result.Kind = KindSpouse
		}
		return result

	case len(path.Kinds) == 2 && path.Kinds[0] == edgeChildToParent && path.Kinds[1] == edgeParentToChild:
		result.Kind = KindSibling
		return result

	case allKind(path.Kinds, edgeChildToParent):
		result.Kind = KindAncestor
		return result

	case allKind(path.Kinds, edgeParentToChild):
		result.Kind = KindDescendant
		return result
	}

	if up, down, ok := upThenDownShape(path.Kinds); ok {
		result.Kind = KindCousin
		result.Degree = minInt(up, down) - 1
		result.Removal = absInt(up - down)
		return result
	}

	result.Kind = KindCommonAncestor
	return result
}

// allKind reports whether every edge in kinds equals k.
func allKind(kinds []edgeKind, k edgeKind) bool {
	for _, kind := range kinds {
		if kind != k {
			return false
		}
	}
	return true
}

// upThenDownShape reports whether kinds is a (possibly empty) run of
// edgeChildToParent followed by a (possibly empty) run of edgeParentToChild
// with no spouse edges anywhere, and returns the length of each run: the
// shape a path through a lowest common ancestor takes.
func upThenDownShape(kinds []edgeKind) (up, down int, ok bool) {
	i := 0
	for i < len(kinds) && kinds[i] == edgeChildToParent {
		i++
	}
	up = i
	for i < len(kinds) && kinds[i] == edgeParentToChild {
		i++
	}
	down = i - up
	return up, down, i == len(kinds) && up > 0 && down > 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
