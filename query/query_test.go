package query

import (
	"testing"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree/adapter"
	"github.com/lesfleursdelanuitdev/consang-go/relationship"
	"github.com/lesfleursdelanuitdev/consang-go/settings"
)

func buildFacade(t *testing.T) *Facade {
	t.Helper()
	persons := []adapter.PersonRecord{
		{Key: "father", FirstName: "John", Surname: "Smith", Occupation: "farmer"},
		{Key: "mother", FirstName: "Mary", Surname: "Smith", Occupation: "weaver"},
		{Key: "child", FirstName: "Robert", Surname: "Smith"},
	}
	families := []adapter.FamilyRecord{
		{Parent1Key: "father", Parent2Key: "mother", ChildKeys: []string{"child"}},
	}
	result := adapter.Adapt(persons, families)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected adapt errors: %v", result.Errors)
	}
	return New(result.Store, settings.DefaultFuzzyThreshold)
}

func TestSearchPersonsExactMatch(t *testing.T) {
	facade := buildFacade(t)
	resp := facade.SearchPersons("John", FieldFirstName, SearchExact)
	if !resp.Success {
		t.Fatalf("expected success, got error: %v", resp.Error)
	}
	if len(resp.Data) != 1 || resp.Data[0].Score != 1.0 {
		t.Fatalf("expected one exact hit, got %+v", resp.Data)
	}
}

func TestSearchPersonsFuzzyTypo(t *testing.T) {
	facade := buildFacade(t)
	resp := facade.SearchPersons("Jon", FieldFirstName, SearchFuzzy)
	if !resp.Success {
		t.Fatalf("expected success, got error: %v", resp.Error)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected fuzzy match for a typo, got %+v", resp.Data)
	}
}

func TestSearchPersonsEmptyTermFails(t *testing.T) {
	facade := buildFacade(t)
	resp := facade.SearchPersons("", FieldFirstName, SearchExact)
	if resp.Success {
		t.Fatalf("expected failure for empty term")
	}
}

func TestSearchPersonsOrderedByDescendingScore(t *testing.T) {
	persons := []adapter.PersonRecord{
		{Key: "a", Surname: "Smithson"},
		{Key: "b", Surname: "Smith"},
		{Key: "c", Surname: "Smithy"},
	}
	result := adapter.Adapt(persons, nil)
	facade := New(result.Store, settings.DefaultFuzzyThreshold)

	resp := facade.SearchPersons("smith", FieldSurname, SearchPrefix)
	if !resp.Success || len(resp.Data) != 3 {
		t.Fatalf("expected three prefix hits, got %+v / %v", resp.Data, resp.Error)
	}
	if resp.Data[0].Index != result.Store.IndexForKey("b") {
		t.Fatalf("expected exact-length prefix match to score highest, got %+v", resp.Data)
	}
}

func TestFindRelationshipThroughFacade(t *testing.T) {
	facade := buildFacade(t)
	father := facade.store.IndexForKey("father")
	child := facade.store.IndexForKey("child")

	resp := facade.FindRelationship(father, child)
	if !resp.Success || resp.Data.Kind != relationship.KindChild {
		t.Fatalf("expected CHILD, got %+v / %v", resp.Data, resp.Error)
	}
}

func TestFindRelationshipUnknownPerson(t *testing.T) {
	facade := buildFacade(t)
	resp := facade.FindRelationship(999, facade.store.IndexForKey("father"))
	if resp.Success {
		t.Fatalf("expected failure for unknown person index")
	}
}

func TestGetStatisticsReport(t *testing.T) {
	facade := buildFacade(t)
	resp := facade.GetStatisticsReport()
	if !resp.Success {
		t.Fatalf("expected success, got error: %v", resp.Error)
	}

	report := resp.Data
	if report.TotalPersons != 3 {
		t.Fatalf("expected 3 persons, got %d", report.TotalPersons)
	}
	if report.TotalFamilies != 1 {
		t.Fatalf("expected 1 family, got %d", report.TotalFamilies)
	}
	if report.Roots != 2 {
		t.Fatalf("expected 2 roots (father, mother), got %d", report.Roots)
	}
	if report.AverageSibshipSize != 1.0 {
		t.Fatalf("expected average sibship size 1.0, got %v", report.AverageSibshipSize)
	}
}
