package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/elliotchance/gedcom/v39"

	"github.com/lesfleursdelanuitdev/consang-go/gedcombridge"
	"github.com/lesfleursdelanuitdev/consang-go/gw"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree/adapter"
)

// loadResult is the uniform outcome of loading either input format: the
// adapted store plus whatever non-fatal diagnostics the loader collected.
type loadResult struct {
	store    *pedigree.Store
	warnings []string
}

// detectFormat returns "gedcom" or "gw" by file extension; .ged/.gedcom is
// GEDCOM, everything else (including .gw) is the pedigree text grammar.
func detectFormat(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".ged") || strings.HasSuffix(lower, ".gedcom") {
		return "gedcom"
	}
	return "gw"
}

// loadInput reads path according to format ("auto", "gedcom", or "gw") and
// returns the adapted store. Neither branch computes consanguinity (the
// GEDCOM conversion runs without WithConsanguinity); that is always the
// caller's job via consang.Compute.
func loadInput(path, format string) (*loadResult, error) {
	if format == "" || format == "auto" {
		format = detectFormat(path)
	}

	switch format {
	case "gedcom":
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil, &usageError{msg: fmt.Sprintf("input file %s does not exist", path)}
		}
		doc, err := gedcom.NewDocumentFromGEDCOMFile(path)
		if err != nil {
			return nil, fmt.Errorf("parsing GEDCOM %s: %w", path, err)
		}
		converted, err := gedcombridge.Convert(doc)
		if err != nil {
			return nil, err
		}
		warnings := append([]string(nil), converted.Warnings...)
		for _, w := range doc.Warnings() {
			warnings = append(warnings, fmt.Sprint(w))
		}
		return &loadResult{store: converted.Store, warnings: warnings}, nil

	case "gw":
		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &usageError{msg: fmt.Sprintf("input file %s does not exist", path)}
			}
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer file.Close()

		loaded, err := gw.Load(file)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		var warnings []string
		for _, d := range loaded.Diagnostics {
			warnings = append(warnings, d.String())
		}
		adapted := adapter.Adapt(loaded.Persons, loaded.Families)
		warnings = append(warnings, adapted.Errors...)
		return &loadResult{store: adapted.Store, warnings: warnings}, nil

	default:
		return nil, fmt.Errorf("unknown format %q (must be gedcom or gw)", format)
	}
}
