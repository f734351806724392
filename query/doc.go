// Package query is the analytics facade over a pedigree.Store: search by
// name/occupation field, find_relationship, and a statistics report, each
// wrapped in a uniform envelope so a CLI or other caller need not branch
// on error type.
package query
