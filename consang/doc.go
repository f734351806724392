// Package consang computes consanguinity (inbreeding) coefficients over a
// pedigree.Store: F(x) for every individual, derived from the kinship
// recurrence K(a, b), topologically ordered by BFS depth from founders.
//
// The kernel never aborts on data defects. Structurally impossible errors
// (caught earlier, at adapt time) and data-quality warnings (missing
// parents, ancestral loops) are both collected rather than raised.
package consang
