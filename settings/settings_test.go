package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	source, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.FuzzyThreshold() != DefaultFuzzyThreshold {
		t.Fatalf("expected default threshold, got %v", source.FuzzyThreshold())
	}
}

func TestLoadYAMLNestedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "search:\n  fuzzy_threshold: 0.9\nsosa_root: \"3\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.FuzzyThreshold() != 0.9 {
		t.Fatalf("expected threshold 0.9, got %v", source.FuzzyThreshold())
	}
	root, ok := source.Lookup("sosa_root")
	if !ok || root != "3" {
		t.Fatalf("expected sosa_root '3', got %q (ok=%v)", root, ok)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("sosa_root: \"3\"\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	source, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	os.Setenv("CONSANG_SOSA_ROOT", "9")
	defer os.Unsetenv("CONSANG_SOSA_ROOT")

	root, ok := source.Lookup("sosa_root")
	if !ok || root != "9" {
		t.Fatalf("expected environment override '9', got %q (ok=%v)", root, ok)
	}
}
