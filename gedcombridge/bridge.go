package gedcombridge

import (
	"fmt"

	"github.com/elliotchance/gedcom/v39"

	"github.com/lesfleursdelanuitdev/consang-go/consang"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree/adapter"
)

// options configures Convert. See WithConsanguinity.
type options struct {
	computeConsanguinity bool
}

// Option configures a Convert call.
type Option func(*options)

// WithConsanguinity runs the consanguinity kernel, from scratch, as part
// of conversion, matching the original loader's compute_consanguinity
// parameter.
func WithConsanguinity() Option {
	return func(o *options) { o.computeConsanguinity = true }
}

// Result is the outcome of Convert: the adapted store, any structural
// adapt-time errors, and (when WithConsanguinity was passed) the kernel's
// warnings.
type Result struct {
	Store    *pedigree.Store
	Errors   []string
	Warnings []string
}

// Convert walks doc's individuals and families into a pedigree.Store,
// addressed by GEDCOM pointer (xref) as the adapter key.
func Convert(doc *gedcom.Document, opts ...Option) (*Result, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	persons := make([]adapter.PersonRecord, 0, len(doc.Individuals()))
	for _, individual := range doc.Individuals() {
		persons = append(persons, adapter.PersonRecord{
			Key:        individual.Pointer(),
			FirstName:  individualGivenName(individual),
			Surname:    individualSurname(individual),
			Sex:        convertSex(individual.Sex()),
		})
	}

	families := make([]adapter.FamilyRecord, 0, len(doc.Families()))
	for _, family := range doc.Families() {
		rec := adapter.FamilyRecord{
			Relation: pedigree.RelationMarried,
		}
		if husband := family.Husband(); husband != nil {
			rec.Parent1Key = husband.Pointer()
		}
		if wife := family.Wife(); wife != nil {
			rec.Parent2Key = wife.Pointer()
		}
		for _, child := range family.Children() {
			if child != nil {
				rec.ChildKeys = append(rec.ChildKeys, child.Pointer())
			}
		}
		families = append(families, rec)
	}

	adapted := adapter.Adapt(persons, families)
	if len(adapted.Errors) != 0 {
		return &Result{Store: adapted.Store, Errors: adapted.Errors},
			fmt.Errorf("gedcombridge: %d structural error(s) during conversion", len(adapted.Errors))
	}

	result := &Result{Store: adapted.Store}
	if cfg.computeConsanguinity {
		computed := consang.Compute(adapted.Store, true)
		result.Warnings = computed.Warnings
		result.Errors = append(result.Errors, computed.Errors...)
	}
	return result, nil
}

func convertSex(sex gedcom.Sex) pedigree.Sex {
	switch sex {
	case gedcom.SexMale:
		return pedigree.SexMale
	case gedcom.SexFemale:
		return pedigree.SexFemale
	default:
		return pedigree.SexUnknown
	}
}

func individualGivenName(individual *gedcom.IndividualNode) string {
	name := individual.Name()
	if name == nil {
		return ""
	}
	return name.GivenName()
}

func individualSurname(individual *gedcom.IndividualNode) string {
	name := individual.Name()
	if name == nil {
		return ""
	}
	return name.Surname()
}
