package relationship

// Kind classifies what B is relative to A in find_relationship(a, b).
type Kind string

const (
	KindSelf           Kind = "SELF"
	KindParent         Kind = "PARENT"
	KindChild          Kind = "CHILD"
	KindSpouse         Kind = "SPOUSE"
	KindSibling        Kind = "SIBLING"
	KindAncestor       Kind = "ANCESTOR"
	KindDescendant     Kind = "DESCENDANT"
	KindCousin         Kind = "COUSIN"
	KindCommonAncestor Kind = "COMMON_ANCESTOR"
	KindNone           Kind = "NONE"
)

// mirror returns the kind that find_relationship(b, a) must report given
// this kind was found for find_relationship(a, b): direct kinds flip
// (PARENT<->CHILD, ANCESTOR<->DESCENDANT); everything else is symmetric.
func (k Kind) mirror() Kind {
	switch k {
	case KindParent:
		return KindChild
	case KindChild:
		return KindParent
	case KindAncestor:
		return KindDescendant
	case KindDescendant:
		return KindAncestor
	default:
		return k
	}
}
