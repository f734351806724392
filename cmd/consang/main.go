package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lesfleursdelanuitdev/consang-go/cmd/consang/internal"
	"github.com/lesfleursdelanuitdev/consang-go/consang"
	"github.com/lesfleursdelanuitdev/consang-go/gw"
	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
	"github.com/lesfleursdelanuitdev/consang-go/query"
	"github.com/lesfleursdelanuitdev/consang-go/relationship"
	"github.com/lesfleursdelanuitdev/consang-go/settings"
	"github.com/lesfleursdelanuitdev/consang-go/sosa"
)

var (
	outputPath string
	quietCount int
	scratch    bool
	fast       bool
	relPair    []string
	withSosa   bool
	format     string
)

// usageError marks a flag/argument misuse, exit code 2; anything else
// RunE returns is a fatal runtime error, exit code 1.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

var rootCmd = &cobra.Command{
	Use:   "consang [input]",
	Short: "Pedigree consanguinity, Sosa numbering, and relationship search",
	Long:  "Computes consanguinity coefficients over a pedigree, optionally numbers ancestors Sosa-style, and reports the shortest relationship between two individuals.",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
	// Cobra's own arg-count/flag-parse errors and its default stderr
	// rendering are both silenced here: main() classifies every error
	// itself (enteredRunE distinguishes a pre-RunE usage/parse failure
	// from a RunE-returned one) so there is exactly one diagnostic line
	// and exit code per failure.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// enteredRunE is set the moment run() starts. Any error Execute() returns
// while this is still false came from cobra's own arg-count or flag-parse
// validation, both of which are usage errors (spec.md SS6/SS7); main()
// cannot tell them apart from a type switch the way it can a *usageError
// returned from inside run().
var enteredRunE bool

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, written in the gw grammar (default: no re-emission)")
	rootCmd.Flags().CountVarP(&quietCount, "quiet", "q", "Suppress the progress bar and statistics summary (once), and warnings and other informational output (twice)")
	rootCmd.Flags().BoolVarP(&scratch, "scratch", "s", false, "Recompute every consanguinity coefficient from scratch instead of incrementally")
	rootCmd.Flags().BoolVarP(&fast, "fast", "f", false, "Accepted for compatibility; no approximate mode is implemented")
	rootCmd.Flags().StringArrayVar(&relPair, "relationship", nil, "Print the relationship between two person keys (pass the flag twice: --relationship A --relationship B)")
	rootCmd.Flags().BoolVar(&withSosa, "with-sosa", false, "Print Sosa ancestor numbers from the configured root (settings sosa_root or SOSA_ROOT) after computing")
	rootCmd.Flags().StringVar(&format, "format", "auto", "Input format: auto, gedcom, or gw")
}

func run(cmd *cobra.Command, args []string) error {
	enteredRunE = true
	input := args[0]
	if len(relPair) != 0 && len(relPair) != 2 {
		return &usageError{msg: "--relationship requires exactly two keys"}
	}
	if format != "auto" && format != "gedcom" && format != "gw" {
		return &usageError{msg: fmt.Sprintf("--format must be auto, gedcom, or gw, got %q", format)}
	}

	internal.SetQuietLevel(quietCount)
	internal.InitColor(true)

	source := loadSettings()

	loaded, err := loadInput(input, format)
	if err != nil {
		return err
	}
	reportWarnings(loaded.warnings)

	bar := internal.NewBar(int64(len(loaded.store.Persons)), "computing consanguinity")
	result := consang.Compute(loaded.store, scratch)
	bar.Finish()
	reportWarnings(result.Warnings)
	if len(result.Errors) != 0 {
		reportErrors(result.Errors)
	}

	if withSosa {
		if err := printSosaTable(loaded.store, source); err != nil {
			return err
		}
	}

	if len(relPair) == 2 {
		if err := printRelationship(loaded.store, relPair[0], relPair[1]); err != nil {
			return err
		}
	}

	facade := query.New(loaded.store, source.FuzzyThreshold())
	report := facade.GetStatisticsReport()
	if report.Success && quietCount == 0 {
		internal.PrintInfo("statistics:\n%s", query.FormatStatisticsTable(report.Data))
	}

	if outputPath == "" {
		return nil
	}
	return writeOutput(loaded.store)
}

func loadSettings() *settings.Source {
	candidates := []string{"consang.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".consang", "settings.yaml"))
	}
	for _, path := range candidates {
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		if source, err := settings.Load(path); err == nil {
			return source
		}
	}
	return settings.Default()
}

func reportWarnings(warnings []string) {
	if quietCount >= 2 {
		return
	}
	for _, w := range warnings {
		internal.PrintWarning("warning: %s\n", w)
	}
}

func reportErrors(errs []string) {
	for _, e := range errs {
		internal.PrintError("error: %s\n", e)
	}
}

func printRelationship(store *pedigree.Store, aKey, bKey string) error {
	a := store.IndexForKey(aKey)
	b := store.IndexForKey(bKey)
	if a == 0 {
		return fmt.Errorf("unknown person key %q", aKey)
	}
	if b == 0 {
		return fmt.Errorf("unknown person key %q", bKey)
	}

	result := relationship.FindRelationship(store, a, b)
	if quietCount < 2 {
		internal.PrintInfo("%s is the %s of %s (distance %d)\n", bKey, result.Kind, aKey, result.Distance)
	}
	return nil
}

// printSosaTable resolves the configured root (CLI override not exposed on
// this command, so settings/environment decide, see sosa.EnsureFromConfig)
// and prints every reachable person's smallest Sosa number.
func printSosaTable(store *pedigree.Store, source *settings.Source) error {
	manager := sosa.NewManager(store)
	cache, err := manager.EnsureFromConfig(nil, source)
	if err != nil {
		return err
	}
	if quietCount >= 2 {
		return nil
	}

	internal.PrintInfo("sosa numbers from root %s (max generation %d):\n", store.KeyForIndex(cache.RootIndex), cache.MaxGeneration)
	for _, idx := range store.PersonIndices() {
		number, ok := cache.GetNumber(idx)
		if !ok {
			continue
		}
		internal.PrintInfo("  %-20s %s\n", store.KeyForIndex(idx), number.String())
	}
	return nil
}

// writeOutput re-emits store in the gw grammar to outputPath. Only called
// when -o/--output was given; re-emission is optional (spec.md §6), not a
// default side effect of every run.
func writeOutput(store *pedigree.Store) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer file.Close()
	if err := gw.Emit(store, file); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if quietCount < 2 {
		internal.PrintSuccess("wrote %s\n", outputPath)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !enteredRunE {
			internal.PrintError("usage error: %v\n", err)
			os.Exit(2)
		}
		if _, ok := err.(*usageError); ok {
			internal.PrintError("usage error: %v\n", err)
			os.Exit(2)
		}
		internal.PrintError("error: %v\n", err)
		os.Exit(1)
	}
}
