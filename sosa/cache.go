package sosa

import (
	"math/big"
	"sort"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// Cache holds the Sosa numbering for every person reachable from one root,
// via the child -> origin-family -> parent ancestor edge. Numbers are
// arbitrary-precision (a deep tree can overflow 64 bits long before it
// overflows a big.Int); NumberUint64 exposes a capped view for callers
// that only need a display value and can tolerate a documented ceiling.
type Cache struct {
	RootIndex uint32

	// NumbersByPerson lists every Sosa number a person earns, one per
	// distinct ancestor path from the root, sorted ascending.
	NumbersByPerson map[uint32][]*big.Int
	// MinNumber is the smallest number in NumbersByPerson[idx], cached for
	// quick lookups (GetNumber, NumberUint64).
	MinNumber map[uint32]*big.Int
	// MaxGeneration is the greatest ancestor-BFS depth reached from root.
	MaxGeneration uint64
	// Overflowed flags persons for whom at least one Sosa number does not
	// fit in a uint64. NumberUint64 reports !ok only when the person's
	// smallest number does not fit.
	Overflowed map[uint32]bool
}

var bigOne = big.NewInt(1)
var bigTwo = big.NewInt(2)

func newCache(rootIndex uint32) *Cache {
	return &Cache{
		RootIndex:       rootIndex,
		NumbersByPerson: make(map[uint32][]*big.Int),
		MinNumber:       make(map[uint32]*big.Int),
		Overflowed:      make(map[uint32]bool),
	}
}

// GetNumber returns the smallest Sosa number recorded for personIndex and
// whether one was found at all.
func (c *Cache) GetNumber(personIndex uint32) (*big.Int, bool) {
	n, ok := c.MinNumber[personIndex]
	return n, ok
}

// NumberUint64 returns the smallest Sosa number for personIndex as a
// uint64, and false if the person is unknown to this cache or its number
// does not fit in 64 bits.
func (c *Cache) NumberUint64(personIndex uint32) (uint64, bool) {
	n, ok := c.MinNumber[personIndex]
	if !ok || !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

type queueEntry struct {
	index      uint32
	number     *big.Int
	generation uint64
}

// build runs the ancestor BFS from root: root gets number 1; a person's
// father earns 2n, their mother 2n+1, where n is the person's own number.
// A person reached by more than one ancestor path accumulates every
// distinct number it earns; re-expansion from a number already recorded
// for that person is skipped. A generation equal to the person count can
// only be reached around an ancestral loop, so ancestors are not expanded
// past it, which keeps the walk finite on cyclic input.
func build(store *pedigree.Store, rootIndex uint32) (*Cache, error) {
	if _, ok := store.Persons[rootIndex]; !ok {
		return nil, newMissingRootError(rootIndex, "root is not a known person")
	}

	cache := newCache(rootIndex)
	queue := []queueEntry{{index: rootIndex, number: bigOne, generation: 0}}

	for i := 0; i < len(queue); i++ {
		entry := queue[i]
		if !cache.record(entry.index, entry.number) {
			continue
		}
		if entry.generation > cache.MaxGeneration {
			cache.MaxGeneration = entry.generation
		}
		if entry.generation+1 >= uint64(len(store.Persons)) {
			continue
		}

		father, mother := store.Parents(entry.index)
		if father != 0 {
			fatherNumber := new(big.Int).Mul(entry.number, bigTwo)
			queue = append(queue, queueEntry{index: father, number: fatherNumber, generation: entry.generation + 1})
		}
		if mother != 0 {
			motherNumber := new(big.Int).Add(new(big.Int).Mul(entry.number, bigTwo), bigOne)
			queue = append(queue, queueEntry{index: mother, number: motherNumber, generation: entry.generation + 1})
		}
	}

	return cache, nil
}

// record inserts number into personIndex's number list if not already
// present, keeping the list sorted ascending and MinNumber current.
// Returns false when the number was already recorded, signaling the
// caller not to re-expand ancestors from it.
func (c *Cache) record(personIndex uint32, number *big.Int) bool {
	existing := c.NumbersByPerson[personIndex]
	pos := sort.Search(len(existing), func(i int) bool { return existing[i].Cmp(number) >= 0 })
	if pos < len(existing) && existing[pos].Cmp(number) == 0 {
		return false
	}

	updated := make([]*big.Int, len(existing)+1)
	copy(updated, existing[:pos])
	updated[pos] = number
	copy(updated[pos+1:], existing[pos:])
	c.NumbersByPerson[personIndex] = updated

	if !number.IsUint64() {
		c.Overflowed[personIndex] = true
	}

	if current, ok := c.MinNumber[personIndex]; !ok || number.Cmp(current) < 0 {
		c.MinNumber[personIndex] = number
	}
	return true
}
