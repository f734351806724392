package gw

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree/adapter"
)

// Diagnostic is one recoverable defect noticed while scanning: the loader
// never aborts on a malformed line, it records one of these and keeps
// going, mirroring the GEDCOM line parser's "log and continue" posture.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// LoadResult is the outcome of Load: the person/family records ready for
// adapter.Adapt, plus any diagnostics collected while scanning.
type LoadResult struct {
	Persons     []adapter.PersonRecord
	Families    []adapter.FamilyRecord
	Diagnostics []Diagnostic
}

// Load scans r line by line and builds the person/family records
// adapter.Adapt consumes. Malformed lines are skipped and recorded as
// diagnostics rather than raised.
func Load(r io.Reader) (*LoadResult, error) {
	result := &LoadResult{}
	personByKey := make(map[string]int) // key -> index into result.Persons

	declarePerson := func(key string, keyIndex uint32) {
		if key == "" {
			return
		}
		if _, ok := personByKey[key]; ok {
			return
		}
		personByKey[key] = len(result.Persons)
		result.Persons = append(result.Persons, adapter.PersonRecord{Key: key, KeyIndex: keyIndex})
	}

	setSex := func(key string, sex pedigree.Sex) {
		if sex == pedigree.SexUnknown {
			return
		}
		if i, ok := personByKey[key]; ok {
			result.Persons[i].Sex = sex
		}
	}

	var current *adapter.FamilyRecord
	inBeg := false
	lineNumber := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Fields(raw)

		switch fields[0] {
		case "fam":
			if len(fields) < 4 || fields[2] != "+" {
				result.Diagnostics = append(result.Diagnostics,
					Diagnostic{Line: lineNumber, Message: "malformed fam line, expected: fam <key1> + <key2> [relation]"})
				current = nil
				continue
			}
			key1, idx1 := splitKeyIndex(fields[1])
			key2, idx2 := splitKeyIndex(fields[3])
			// "-" is the emitter's token for an unknown parent.
			if key1 == "-" {
				key1 = ""
			}
			if key2 == "-" {
				key2 = ""
			}
			declarePerson(key1, idx1)
			declarePerson(key2, idx2)

			fam := adapter.FamilyRecord{Parent1Key: key1, Parent2Key: key2, Relation: pedigree.RelationMarried}
			if len(fields) >= 5 {
				if kind, ok := parseRelation(fields[4]); ok {
					fam.Relation = kind
				} else {
					result.Diagnostics = append(result.Diagnostics,
						Diagnostic{Line: lineNumber, Message: fmt.Sprintf("unknown relation kind %q, defaulting to married", fields[4])})
				}
			}
			current = &fam
			inBeg = false

		case "beg":
			if current == nil {
				result.Diagnostics = append(result.Diagnostics,
					Diagnostic{Line: lineNumber, Message: "beg outside a fam block"})
				continue
			}
			inBeg = true

		case "end":
			if current == nil {
				result.Diagnostics = append(result.Diagnostics,
					Diagnostic{Line: lineNumber, Message: "end outside a fam block"})
				continue
			}
			result.Families = append(result.Families, *current)
			current = nil
			inBeg = false

		case "-":
			if current == nil || !inBeg {
				result.Diagnostics = append(result.Diagnostics,
					Diagnostic{Line: lineNumber, Message: "child line outside a beg/end block"})
				continue
			}
			if len(fields) < 2 {
				result.Diagnostics = append(result.Diagnostics,
					Diagnostic{Line: lineNumber, Message: "child line missing a key"})
				continue
			}
			childKey, childIdx := splitKeyIndex(fields[1])
			declarePerson(childKey, childIdx)
			setSex(childKey, parseSex(firstOr(fields, 2, "")))
			current.ChildKeys = append(current.ChildKeys, childKey)

		default:
			key, idx := splitKeyIndex(fields[0])
			declarePerson(key, idx)
		}
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("gw: scanning input: %w", err)
	}
	if current != nil {
		result.Diagnostics = append(result.Diagnostics,
			Diagnostic{Line: lineNumber, Message: "unterminated fam block at end of input"})
	}

	return result, nil
}

func firstOr(fields []string, index int, fallback string) string {
	if index < len(fields) {
		return fields[index]
	}
	return fallback
}
