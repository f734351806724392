// Package adapter projects externally supplied pedigree records — arriving
// in arbitrary iteration order, addressed by string keys — into the dense,
// index-addressed pedigree.Store the analytics kernel consumes.
//
// The adapter never raises on a dangling reference: an unresolved parent or
// child key becomes index 0 ("unknown"), which the consanguinity kernel
// treats as an absent parent without a warning; the kernel's missing_parent
// warning covers a non-zero parent index the store does not contain.
package adapter
