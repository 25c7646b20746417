// Package baseline holds the category reference statistics the engine
// scores against. A registry is immutable once constructed; categories
// may be absent, in which case baseline-relative checks are skipped.
package baseline

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/baselines.yaml
var defaultsFS embed.FS

// Baseline is the reference statistics for one category.
type Baseline struct {
	// AvgSentiment is the category's average compound polarity in [-1,1].
	// nil means the category carries no sentiment reference.
	AvgSentiment *float64 `yaml:"avg_sentiment"`

	// AvgLength is the category's average listing length in words.
	// Zero means the category carries no length reference.
	AvgLength int `yaml:"avg_length"`
}

// Registry maps category name to its baseline.
type Registry map[string]Baseline

// Lookup returns the baseline for a category, if one is registered.
func (r Registry) Lookup(category string) (Baseline, bool) {
	b, ok := r[category]
	return b, ok
}

// Load reads a registry from a YAML file.
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baselines: %w", err)
	}
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse baselines %s: %w", path, err)
	}
	return reg, nil
}

// Defaults returns the registry shipped with the binary.
func Defaults() Registry {
	data, err := defaultsFS.ReadFile("defaults/baselines.yaml")
	if err != nil {
		return Registry{}
	}
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return Registry{}
	}
	return reg
}
