package adapter

import "github.com/lesfleursdelanuitdev/consang-go/pedigree"

// PersonRecord is the external representation of one individual, as
// produced by a collaborator loader (gw, gedcombridge, or a test fixture).
type PersonRecord struct {
	Key        string
	KeyIndex   uint32 // non-zero to pin a stable external index
	FirstName  string
	Surname    string
	Occupation string
	Sex        pedigree.Sex
}

// FamilyRecord is the external representation of one family.
type FamilyRecord struct {
	KeyIndex    uint32 // non-zero to pin a stable external index
	Parent1Key  string
	Parent2Key  string
	ChildKeys   []string
	Relation    pedigree.RelationKind
}
