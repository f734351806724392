package gw

import (
	"strconv"
	"strings"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

var relationTokens = map[string]pedigree.RelationKind{
	"married":                   pedigree.RelationMarried,
	"not_married":                pedigree.RelationNotMarried,
	"engaged":                    pedigree.RelationEngaged,
	"partnership":                pedigree.RelationPartnership,
	"no_sexes_check_not_married": pedigree.RelationNoSexesCheckNotMarried,
	"no_mention":                 pedigree.RelationNoMention,
}

var relationTexts = map[pedigree.RelationKind]string{
	pedigree.RelationMarried:                  "married",
	pedigree.RelationNotMarried:                "not_married",
	pedigree.RelationEngaged:                   "engaged",
	pedigree.RelationPartnership:                "partnership",
	pedigree.RelationNoSexesCheckNotMarried:     "no_sexes_check_not_married",
	pedigree.RelationNoMention:                  "no_mention",
}

func parseRelation(token string) (pedigree.RelationKind, bool) {
	kind, ok := relationTokens[token]
	return kind, ok
}

func relationText(kind pedigree.RelationKind) string {
	if text, ok := relationTexts[kind]; ok {
		return text
	}
	return "married"
}

func parseSex(token string) pedigree.Sex {
	switch token {
	case "m", "M":
		return pedigree.SexMale
	case "f", "F":
		return pedigree.SexFemale
	case "n", "N":
		return pedigree.SexNeither
	default:
		return pedigree.SexUnknown
	}
}

func sexText(sex pedigree.Sex) string {
	switch sex {
	case pedigree.SexMale:
		return "m"
	case pedigree.SexFemale:
		return "f"
	case pedigree.SexNeither:
		return "n"
	default:
		return ""
	}
}

// splitKeyIndex splits a key token's optional "@<n>" pin suffix. The
// returned index is 0 when no pin is present or the suffix does not parse.
func splitKeyIndex(token string) (key string, index uint32) {
	at := strings.LastIndex(token, "@")
	if at < 0 {
		return token, 0
	}
	suffix := token[at+1:]
	n, err := strconv.ParseUint(suffix, 10, 32)
	if err != nil {
		return token, 0
	}
	return token[:at], uint32(n)
}

func formatKeyIndex(key string, index uint32) string {
	if index == 0 {
		return key
	}
	return key + "@" + strconv.FormatUint(uint64(index), 10)
}
