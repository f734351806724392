package query

import (
	"github.com/lesfleursdelanuitdev/consang-go/consang"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/relationship"
	"github.com/lesfleursdelanuitdev/consang-go/sosa"
)

// Facade is the single entry point a CLI or other caller drives: it holds
// the store plus the search/Sosa configuration and exposes every analytics
// operation through an Envelope.
type Facade struct {
	store          *pedigree.Store
	sosaManager    *sosa.Manager
	fuzzyThreshold float64
}

// New builds a Facade over store, using fuzzyThreshold as the default
// fuzzy-search acceptance bound (see settings.FuzzyThreshold).
func New(store *pedigree.Store, fuzzyThreshold float64) *Facade {
	return &Facade{
		store:          store,
		sosaManager:    sosa.NewManager(store),
		fuzzyThreshold: fuzzyThreshold,
	}
}

// FindRelationship classifies the shortest relationship path between two
// person indices and wraps the result in an Envelope.
func (f *Facade) FindRelationship(a, b uint32) Envelope[relationship.Result] {
	if _, ok := f.store.Persons[a]; !ok {
		return fail[relationship.Result]("unknown_person", "person index not found")
	}
	if _, ok := f.store.Persons[b]; !ok {
		return fail[relationship.Result]("unknown_person", "person index not found")
	}
	return ok(relationship.FindRelationship(f.store, a, b))
}

// SosaNumber resolves rootIndex's cache (building it on first use) and
// returns personIndex's smallest Sosa number, capped to uint64.
func (f *Facade) SosaNumber(rootIndex, personIndex uint32) Envelope[uint64] {
	cache, err := f.sosaManager.GetCache(rootIndex)
	if err != nil {
		return fail[uint64]("sosa_error", err.Error())
	}
	number, ok2 := cache.NumberUint64(personIndex)
	if !ok2 {
		return fail[uint64]("not_found", "person has no Sosa number from this root, or it overflows uint64")
	}
	return ok(number)
}

// Consanguinity runs the consanguinity kernel over the whole store and
// wraps its Result.
func (f *Facade) Consanguinity(fromScratch bool) Envelope[*consang.Result] {
	return ok(consang.Compute(f.store, fromScratch))
}
