package query

import (
	"sort"
	"strings"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// SearchField names the person attribute a search term is matched against.
type SearchField string

const (
	FieldFirstName SearchField = "first_name"
	FieldSurname   SearchField = "surname"
	FieldOccupation SearchField = "occupation"
	FieldFree      SearchField = "free"
)

// SearchType names the matching strategy.
type SearchType string

const (
	SearchExact     SearchType = "exact"
	SearchPrefix    SearchType = "prefix"
	SearchSubstring SearchType = "substring"
	SearchFuzzy     SearchType = "fuzzy"
)

// SearchResult is one ranked hit.
type SearchResult struct {
	Index uint32
	Score float64
}

// SearchPersons matches term against field using searchType, returning
// hits sorted by descending score, ties broken by ascending index.
func (f *Facade) SearchPersons(term string, field SearchField, searchType SearchType) Envelope[[]SearchResult] {
	if term == "" {
		return fail[[]SearchResult]("invalid_argument", "search term must not be empty")
	}

	var results []SearchResult
	for _, idx := range f.store.PersonIndices() {
		person := f.store.Persons[idx]
		value := fieldValue(person, field)
		if value == "" {
			continue
		}
		score, matched := matchScore(term, value, searchType, f.fuzzyThreshold)
		if matched {
			results = append(results, SearchResult{Index: idx, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Index < results[j].Index
	})

	return ok(results)
}

func fieldValue(person *pedigree.Person, field SearchField) string {
	switch field {
	case FieldFirstName:
		return person.FirstName
	case FieldSurname:
		return person.Surname
	case FieldOccupation:
		return person.Occupation
	case FieldFree:
		return strings.TrimSpace(person.FirstName + " " + person.Surname + " " + person.Occupation)
	default:
		return ""
	}
}

func matchScore(term, value string, searchType SearchType, fuzzyThreshold float64) (float64, bool) {
	normalizedTerm := strings.ToLower(strings.TrimSpace(term))
	normalizedValue := strings.ToLower(strings.TrimSpace(value))

	switch searchType {
	case SearchExact:
		if normalizedTerm == normalizedValue {
			return 1.0, true
		}
		return 0, false

	case SearchPrefix:
		if strings.HasPrefix(normalizedValue, normalizedTerm) {
			return float64(len(normalizedTerm)) / float64(len(normalizedValue)), true
		}
		return 0, false

	case SearchSubstring:
		if strings.Contains(normalizedValue, normalizedTerm) {
			return float64(len(normalizedTerm)) / float64(len(normalizedValue)), true
		}
		return 0, false

	case SearchFuzzy:
		score := similarity(normalizedTerm, normalizedValue)
		if score >= fuzzyThreshold {
			return score, true
		}
		return 0, false

	default:
		return 0, false
	}
}
