// Package sosa builds and caches Sosa-Stradonitz ancestor numbering for a
// pedigree.Store rooted at a chosen person: the root is numbered 1, a
// person's father is 2n, their mother 2n+1, where n is the person's own
// number. A person reachable by more than one ancestor path carries the
// full set of numbers it earns.
//
// Caches are built lazily per root and are immutable once constructed; a
// Manager serializes construction and invalidation across roots.
package sosa
