package gedcombridge

import (
	"strings"
	"testing"

	"github.com/elliotchance/gedcom/v39"
)

const inbredGedcom = `0 HEAD
1 SOUR consang-go
0 @I1@ INDI
1 NAME Alan /Ancestor/
1 SEX M
1 FAMS @F1@
0 @I2@ INDI
1 NAME Alice /Ancestor/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Bernard /Ancestor/
1 SEX M
1 FAMC @F1@
1 FAMS @F2@
0 @I4@ INDI
1 NAME Beatrice /Ancestor/
1 SEX F
1 FAMC @F1@
1 FAMS @F2@
0 @I5@ INDI
1 NAME Charles /Ancestor/
1 SEX M
1 FAMC @F2@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
0 @F2@ FAM
1 HUSB @I3@
1 WIFE @I4@
1 CHIL @I5@
0 TRLR
`

func TestConvertIsPureByDefault(t *testing.T) {
	doc, err := gedcom.NewDocumentFromString(strings.NewReader(inbredGedcom))
	if err != nil {
		t.Fatalf("unexpected error parsing fixture: %v", err)
	}

	result, err := Convert(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child := result.Store.IndexForKey("@I5@")
	if result.Store.Persons[child].ConsanguinityKnown {
		t.Fatalf("expected conversion to be pure by default, consanguinity should not be computed")
	}
}

func TestConvertWithConsanguinity(t *testing.T) {
	doc, err := gedcom.NewDocumentFromString(strings.NewReader(inbredGedcom))
	if err != nil {
		t.Fatalf("unexpected error parsing fixture: %v", err)
	}

	result, err := Convert(doc, WithConsanguinity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child := result.Store.IndexForKey("@I5@")
	const want = 0.25
	got := result.Store.Persons[child].Consanguinity
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected consanguinity %v, got %v", want, got)
	}
}
