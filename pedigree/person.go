package pedigree

// Person is an individual in the pedigree, addressed by a dense integer
// Index assigned at adapt time (see pedigree/adapter). Index 0 means
// "unknown" wherever it appears as a cross-reference; no real person ever
// holds index 0.
type Person struct {
	Index uint32
	Key   string

	FirstName  string
	Surname    string
	Occupation string
	Sex        Sex

	// OriginFamily is the family in which this person is a child, or 0 if
	// the person is a founder (no recorded parents).
	OriginFamily uint32
	// UnionFamilies lists the families in which this person participates
	// as a spouse-level partner.
	UnionFamilies []uint32

	// Annotation slots, written only by the consanguinity kernel.
	Consanguinity      float64
	ConsanguinityKnown bool
	ConsanguinityIssue IssueKind
}

// IsFounder reports whether the person has no recorded origin family.
func (p *Person) IsFounder() bool {
	return p.OriginFamily == 0
}

// MarkIssue resets a person's consanguinity annotation to the documented
// defect value: F=0, known=true, issue set.
func (p *Person) MarkIssue(issue IssueKind) {
	p.Consanguinity = 0.0
	p.ConsanguinityKnown = true
	p.ConsanguinityIssue = issue
}

// ResetAnnotation clears the known flag so the kernel will recompute this
// person on the next incremental pass.
func (p *Person) ResetAnnotation() {
	p.ConsanguinityKnown = false
}
