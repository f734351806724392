package gw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree/adapter"
)

const nuclearFamilyText = `
fam father + mother married
beg
- child m
end
`

func TestLoadNuclearFamily(t *testing.T) {
	result, err := Load(strings.NewReader(nuclearFamilyText))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if len(result.Persons) != 3 || len(result.Families) != 1 {
		t.Fatalf("expected 3 persons and 1 family, got %d/%d", len(result.Persons), len(result.Families))
	}

	adapted := adapter.Adapt(result.Persons, result.Families)
	if len(adapted.Errors) != 0 {
		t.Fatalf("unexpected adapt errors: %v", adapted.Errors)
	}

	childIdx := adapted.Store.IndexForKey("child")
	child := adapted.Store.Persons[childIdx]
	if child.Sex != pedigree.SexMale {
		t.Fatalf("expected child sex male, got %v", child.Sex)
	}
}

func TestLoadBareKeyDeclaresFounder(t *testing.T) {
	result, err := Load(strings.NewReader("solo\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Persons) != 1 || result.Persons[0].Key != "solo" {
		t.Fatalf("expected a single founder 'solo', got %v", result.Persons)
	}
}

func TestLoadPinnedKeyIndex(t *testing.T) {
	result, err := Load(strings.NewReader("john@7\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Persons) != 1 || result.Persons[0].KeyIndex != 7 {
		t.Fatalf("expected pinned index 7, got %+v", result.Persons)
	}
}

func TestLoadMalformedFamLineIsADiagnosticNotAnError(t *testing.T) {
	result, err := Load(strings.NewReader("fam only-one-key\n"))
	if err != nil {
		t.Fatalf("malformed line must not raise: %v", err)
	}
	if len(result.Diagnostics) == 0 {
		t.Fatalf("expected a diagnostic for the malformed fam line")
	}
}

func TestEmitRoundTrip(t *testing.T) {
	loaded, err := Load(strings.NewReader(nuclearFamilyText))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adapted := adapter.Adapt(loaded.Persons, loaded.Families)

	var buf bytes.Buffer
	if err := Emit(adapted.Store, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reLoaded, err := Load(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("unexpected error re-parsing emitted text: %v", err)
	}
	if len(reLoaded.Persons) != 3 || len(reLoaded.Families) != 1 {
		t.Fatalf("expected round-trip to preserve 3 persons and 1 family, got %d/%d",
			len(reLoaded.Persons), len(reLoaded.Families))
	}
}
