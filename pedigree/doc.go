// Package pedigree defines the dense, index-addressed data model consumed by
// the consanguinity kernel, the Sosa cache manager, and the relationship
// search: Individuals and Families stored by integer index in a Store,
// cross-referenced only by index, with mutable consanguinity annotations
// carried on each Individual.
package pedigree
