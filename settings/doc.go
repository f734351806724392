// Package settings is a read-only, string-keyed configuration mapping
// backed by YAML, with environment variables overriding file values. It
// supplies the settings-mapping precedence level for sosa.Manager's
// EnsureFromConfig and the query facade's fuzzy-search threshold.
package settings
