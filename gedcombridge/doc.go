// Package gedcombridge converts a parsed elliotchance/gedcom/v39 Document
// into a pedigree.Store, the same dense index-addressed shape the gw
// loader produces, so the kernel, Sosa manager and query facade are
// format-agnostic. Conversion is pure by default; pass WithConsanguinity
// to run the consanguinity kernel as part of the conversion.
package gedcombridge
