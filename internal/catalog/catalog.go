// Package catalog loads product-listing catalogs for assessment. A
// catalog is a YAML document of items; listing text may be inline or
// referenced as an external file, optionally markdown.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trustlens/trustlens/internal/assess"
)

//go:embed sample/catalog.yaml
var sampleFS embed.FS

// Item is one catalog entry: the listing text plus the context the
// engine cross-checks it against.
type Item struct {
	Name             string           `yaml:"name"`
	Text             string           `yaml:"text"`
	TextFile         string           `yaml:"text_file"`
	Metadata         *assess.Metadata `yaml:"metadata"`
	HistoricalTexts  []string         `yaml:"historical_texts"`
	SimilarItemTexts []string         `yaml:"similar_item_texts"`
}

// Input converts the item into an assessment request.
func (it Item) Input() assess.Input {
	return assess.Input{
		Text:             it.Text,
		Metadata:         it.Metadata,
		HistoricalTexts:  it.HistoricalTexts,
		SimilarItemTexts: it.SimilarItemTexts,
	}
}

// Catalog is the YAML document shape.
type Catalog struct {
	Items []Item `yaml:"items"`
}

// Load reads a catalog file. text_file references are resolved relative
// to the catalog's directory; markdown files are reduced to plain text.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	items, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range items {
		if items[i].TextFile == "" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, items[i].TextFile))
		if err != nil {
			return nil, fmt.Errorf("read listing text for %q: %w", items[i].Name, err)
		}
		if strings.EqualFold(filepath.Ext(items[i].TextFile), ".md") {
			items[i].Text = PlainText(raw)
		} else {
			items[i].Text = strings.TrimSpace(string(raw))
		}
	}
	return items, nil
}

// Sample returns the catalog shipped with the binary.
func Sample() ([]Item, error) {
	data, err := sampleFS.ReadFile("sample/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Item, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c.Items, nil
}
