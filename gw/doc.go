// Package gw loads and emits the line-oriented pedigree text format: a
// minimal grammar modeled on GeneWeb .gw files, scanned and re-emitted
// without ever raising on a malformed line — the loader records a
// diagnostic and keeps going, the same tolerant-scanning posture the
// GEDCOM line parser takes.
//
//	fam <parent1-key> + <parent2-key> [<relation-kind>]
//	  beg
//	  - <child-key> [sex]
//	  end
//
// A bare key line outside any fam block declares a founder. A key may
// carry an explicit "@<n>" suffix to pin its adapter key_index.
package gw
