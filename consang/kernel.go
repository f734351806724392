package consang

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// kinshipPair is the unordered-pair key for the per-request kinship memo.
// a is always the lesser index so (a, b) and (b, a) hash identically.
type kinshipPair struct {
	a, b uint32
}

func makeKinshipPair(x, y uint32) kinshipPair {
	if x > y {
		x, y = y, x
	}
	return kinshipPair{a: x, b: y}
}

const defaultKinshipMemoSize = 8192

// Result is the outcome of a Compute pass: the per-person coefficients plus
// the data-quality diagnostics the kernel collects instead of aborting on.
type Result struct {
	Coefficients map[uint32]float64
	Errors       []string
	Warnings     []string
}

type colorMark int

const (
	colorWhite colorMark = iota
	colorGray
	colorBlack
)

// kernel holds the working state of a single Compute pass: the topological
// depth of every person, the kinship memo (cleared per top-level request),
// and the DFS color marks used to detect ancestral loops.
type kernel struct {
	store *pedigree.Store

	depth map[uint32]int
	color map[uint32]colorMark
	stack []uint32

	kinshipMemo   *lru.Cache[kinshipPair, float64]
	kinshipActive map[kinshipPair]bool

	seenMissingParent map[uint32]bool
	seenLoop          map[uint32]bool

	result *Result
}

// Compute writes consanguinity, consanguinity_known and consanguinity_issue
// onto every person the pass visits. When fromScratch is true every person
// is recomputed; otherwise only persons whose ConsanguinityKnown is false,
// and anyone transitively depending on them, are revisited.
func Compute(store *pedigree.Store, fromScratch bool) *Result {
	memo, err := lru.New[kinshipPair, float64](defaultKinshipMemoSize)
	if err != nil {
		// Only possible with a non-positive size, which defaultKinshipMemoSize never is.
		panic(fmt.Sprintf("consang: kinship memo: %v", err))
	}

	k := &kernel{
		store:             store,
		depth:             make(map[uint32]int),
		color:             make(map[uint32]colorMark),
		kinshipMemo:       memo,
		kinshipActive:     make(map[kinshipPair]bool),
		seenMissingParent: make(map[uint32]bool),
		seenLoop:          make(map[uint32]bool),
		result: &Result{
			Coefficients: make(map[uint32]float64),
		},
	}

	k.computeDepths()

	if fromScratch {
		for _, p := range store.Persons {
			p.ResetAnnotation()
		}
	}

	targets := k.selectTargets(fromScratch)
	for _, idx := range targets {
		k.ensureF(idx)
	}

	for idx, person := range store.Persons {
		if person.ConsanguinityKnown {
			k.result.Coefficients[idx] = person.Consanguinity
		}
	}

	return k.result
}

// computeDepths performs a BFS from the founder set along the
// parent->child (forward) edge, recording topological depth from founders.
// Persons unreachable from any founder (e.g. inside a pure cycle with no
// founder ancestor) retain depth 0, which only affects recursion
// tie-breaking and never blocks loop detection. A depth equal to the
// person count can only arise on a cycle, so the walk stops there.
func (k *kernel) computeDepths() {
	queue := append([]uint32(nil), k.store.Founders()...)
	for _, idx := range queue {
		k.depth[idx] = 0
	}
	for i := 0; i < len(queue); i++ {
		current := queue[i]
		for _, child := range k.store.Children(current) {
			nextDepth := k.depth[current] + 1
			if nextDepth >= len(k.store.Persons) {
				continue
			}
			if existing, seen := k.depth[child]; !seen || nextDepth > existing {
				k.depth[child] = nextDepth
				queue = append(queue, child)
			}
		}
	}
}

// selectTargets returns, in ascending-index order, the persons Compute must
// visit: everyone when fromScratch, otherwise every person whose
// consanguinity is not yet known plus their descendants (the set the
// incremental recurrence can invalidate).
func (k *kernel) selectTargets(fromScratch bool) []uint32 {
	all := k.store.PersonIndices()
	if fromScratch {
		return all
	}

	seedSet := make(map[uint32]bool)
	for _, idx := range all {
		if !k.store.Persons[idx].ConsanguinityKnown {
			seedSet[idx] = true
		}
	}

	queue := make([]uint32, 0, len(seedSet))
	for idx := range seedSet {
		queue = append(queue, idx)
	}
	for i := 0; i < len(queue); i++ {
		for _, child := range k.store.Children(queue[i]) {
			if !seedSet[child] {
				seedSet[child] = true
				queue = append(queue, child)
			}
		}
	}

	targets := make([]uint32, 0, len(seedSet))
	for idx := range seedSet {
		targets = append(targets, idx)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// ensureF computes F(x) if not already known, detecting ancestral loops via
// white/gray/black coloring of the active DFS stack.
func (k *kernel) ensureF(x uint32) float64 {
	person, ok := k.store.Persons[x]
	if !ok {
		return 0
	}
	if person.ConsanguinityKnown {
		return person.Consanguinity
	}

	if k.color[x] == colorGray {
		k.markLoop(x)
		return 0
	}
	if k.color[x] == colorBlack {
		return person.Consanguinity
	}

	k.color[x] = colorGray
	k.stack = append(k.stack, x)

	father, mother := k.store.Parents(x)
	father = k.validParent(father)
	mother = k.validParent(mother)

	// Descend into every known parent before computing K(father, mother),
	// even when only one side is known. This walks the actual ancestor
	// edges with the active DFS stack, so a parent chain that loops back
	// to x (directly, or with one side of the pair missing) re-enters
	// ensureF while x is still gray and is caught here instead of being
	// silently skipped by the father != 0 && mother != 0 guard below.
	if father != 0 {
		k.ensureF(father)
	}
	if mother != 0 {
		k.ensureF(mother)
	}

	var f float64
	if !person.ConsanguinityKnown && father != 0 && mother != 0 {
		f = k.kinship(father, mother)
	}

	// A loop detected while descending may already have finalized x
	// (markLoop marks everyone on the active stack, x included).
	if !person.ConsanguinityKnown {
		person.Consanguinity = f
		person.ConsanguinityKnown = true
		person.ConsanguinityIssue = pedigree.IssueNone
	}

	k.stack = k.stack[:len(k.stack)-1]
	k.color[x] = colorBlack
	return person.Consanguinity
}

// validParent returns idx unchanged if it names a real person, else records
// a missing_parent warning (once per person) and returns 0 ("unknown").
func (k *kernel) validParent(idx uint32) uint32 {
	if idx == 0 {
		return 0
	}
	if _, ok := k.store.Persons[idx]; !ok {
		if !k.seenMissingParent[idx] {
			k.seenMissingParent[idx] = true
			k.result.Warnings = append(k.result.Warnings,
				fmt.Sprintf("missing_parent: parent index %d does not exist", idx))
		}
		return 0
	}
	return idx
}

// markLoop marks every person currently on the active DFS stack, from the
// repeated node x onward, as an ancestral-loop casualty: F=0, known, issue
// tagged, with one warning emitted naming the first individual on the loop.
func (k *kernel) markLoop(x uint32) {
	start := 0
	for i, idx := range k.stack {
		if idx == x {
			start = i
			break
		}
	}
	loopMembers := k.stack[start:]
	if len(loopMembers) == 0 {
		return
	}
	first := loopMembers[0]
	if !k.seenLoop[first] {
		k.seenLoop[first] = true
		k.result.Warnings = append(k.result.Warnings,
			fmt.Sprintf("ancestral_loop: loop detected starting at individual index %d", first))
	}
	for _, idx := range loopMembers {
		k.store.Persons[idx].MarkIssue(pedigree.IssueAncestralLoop)
	}
}

// markPairLoop marks a and b as ancestral-loop casualties when the kinship
// pair recursion re-enters a pair it is already in the middle of computing
// (a cycle reachable only through the K(a, b) ancestor walk itself, not
// through ensureF's own parent descent).
func (k *kernel) markPairLoop(a, b uint32) {
	for _, idx := range [2]uint32{a, b} {
		if !k.seenLoop[idx] {
			k.seenLoop[idx] = true
			k.result.Warnings = append(k.result.Warnings,
				fmt.Sprintf("ancestral_loop: loop detected starting at individual index %d", idx))
		}
		if person, ok := k.store.Persons[idx]; ok {
			person.MarkIssue(pedigree.IssueAncestralLoop)
		}
	}
}

// kinship returns K(a, b), memoized for the duration of this Compute pass.
// kinshipActive guards against computeKinship's own pair recursion
// re-entering a pair it is already expanding (a mutual ancestor cycle with
// both parents known on each side), which would otherwise recurse forever
// before the memo ever gets a chance to record the pair.
func (k *kernel) kinship(a, b uint32) float64 {
	key := makeKinshipPair(a, b)
	if v, ok := k.kinshipMemo.Get(key); ok {
		return v
	}
	if k.kinshipActive[key] {
		k.markPairLoop(a, b)
		return 0
	}
	k.kinshipActive[key] = true
	v := k.computeKinship(a, b)
	delete(k.kinshipActive, key)
	k.kinshipMemo.Add(key, v)
	return v
}

// computeKinship implements the K(a, b) recurrence: same individual, both
// founders, or recursion on whichever of a/b has greater topological depth
// (ties broken by greater index) via that individual's parents.
func (k *kernel) computeKinship(a, b uint32) float64 {
	if a == b {
		return 0.5 * (1 + k.ensureF(a))
	}

	aFather, aMother := k.store.Parents(a)
	aFather, aMother = k.validParent(aFather), k.validParent(aMother)
	aIsFounder := aFather == 0 && aMother == 0

	bFather, bMother := k.store.Parents(b)
	bFather, bMother = k.validParent(bFather), k.validParent(bMother)
	bIsFounder := bFather == 0 && bMother == 0

	if aIsFounder && bIsFounder {
		return 0
	}

	// Recurse on whichever of a, b is younger (greater depth from founders);
	// ties broken by greater index, deterministically.
	recurseOnA := !aIsFounder && (bIsFounder || k.depth[a] > k.depth[b] ||
		(k.depth[a] == k.depth[b] && a > b))

	if recurseOnA {
		var sum float64
		if aFather != 0 {
			sum += k.kinship(aFather, b)
		}
		if aMother != 0 {
			sum += k.kinship(aMother, b)
		}
		return 0.5 * sum
	}

	var sum float64
	if bFather != 0 {
		sum += k.kinship(bFather, a)
	}
	if bMother != 0 {
		sum += k.kinship(bMother, a)
	}
	return 0.5 * sum
}
