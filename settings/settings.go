package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFuzzyThreshold is search.fuzzy_threshold's value when neither a
// settings file nor the environment supplies one.
const DefaultFuzzyThreshold = 0.75

// envPrefix maps a dotted settings key (e.g. "sosa_root") to the
// environment variable consulted as an override (e.g. CONSANG_SOSA_ROOT).
const envPrefix = "CONSANG_"

// Source is a read-only string-keyed mapping. Values loaded from YAML are
// flattened to dotted keys ("search.fuzzy_threshold"); an environment
// variable named envPrefix + the upper-cased, underscore-joined key
// overrides the file value.
type Source struct {
	values map[string]string
}

// Default returns a Source with no backing file, consulting only the
// environment.
func Default() *Source {
	return &Source{values: map[string]string{}}
}

// Load reads a YAML settings file and flattens its nested keys to dotted
// paths. A missing file is not an error: Load returns an empty Source that
// still consults the environment.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("settings: reading %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("settings: parsing %s: %w", path, err)
	}

	values := make(map[string]string)
	flatten("", raw, values)
	return &Source{values: values}, nil
}

// flatten walks a decoded YAML mapping, joining nested keys with ".".
func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for key, value := range node {
		dotted := key
		if prefix != "" {
			dotted = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flatten(dotted, v, out)
		default:
			out[dotted] = fmt.Sprintf("%v", v)
		}
	}
}

// Lookup returns key's value: an environment override if set, else the
// loaded settings value, else (false).
func (s *Source) Lookup(key string) (string, bool) {
	envKey := envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if v, ok := os.LookupEnv(envKey); ok {
		return v, true
	}
	v, ok := s.values[key]
	return v, ok
}

// FuzzyThreshold returns search.fuzzy_threshold, or DefaultFuzzyThreshold
// if unset or unparsable.
func (s *Source) FuzzyThreshold() float64 {
	raw, ok := s.Lookup("search.fuzzy_threshold")
	if !ok {
		return DefaultFuzzyThreshold
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultFuzzyThreshold
	}
	return v
}
