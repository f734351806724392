package pedigree

import "fmt"

// IssueKind classifies why a person's consanguinity could not be trusted.
type IssueKind string

const (
	// IssueNone means the stored consanguinity value is valid.
	IssueNone IssueKind = "none"
	// IssueAncestralLoop means the person sits on a cycle in the
	// parent->child relation.
	IssueAncestralLoop IssueKind = "ancestral_loop"
	// IssueMissingParent means a parent reference pointed at an index the
	// store does not contain.
	IssueMissingParent IssueKind = "missing_parent"
	// IssueOther covers defects that do not fit the above two buckets.
	IssueOther IssueKind = "other"
)

// Sex enumerates the individual sex values the data model tracks.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexNeither Sex = "neither"
	SexUnknown Sex = "unknown"
)

// RelationKind is opaque to the analytics kernel; it is carried through for
// the benefit of the emitter and the query facade's statistics.
type RelationKind string

const (
	RelationMarried                RelationKind = "married"
	RelationNotMarried              RelationKind = "not_married"
	RelationEngaged                 RelationKind = "engaged"
	RelationPartnership             RelationKind = "partnership"
	RelationNoSexesCheckNotMarried  RelationKind = "no_sexes_check_not_married"
	RelationNoMention                RelationKind = "no_mention"
)

// InvariantError reports a fatal internal invariant violation: an index out
// of range in a supposedly dense store, or an annotation slot missing for an
// in-range individual. It indicates a bug in the core or the adapter, never
// a data-quality defect.
type InvariantError struct {
	Component string
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("pedigree: invariant violated in %s: %s", e.Component, e.Message)
}

// NewInvariantError builds an InvariantError naming the component that
// detected the violation.
func NewInvariantError(component, message string) *InvariantError {
	return &InvariantError{Component: component, Message: message}
}
