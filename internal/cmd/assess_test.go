package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trustlens/trustlens/internal/assess"
	"github.com/trustlens/trustlens/internal/baseline"
	"github.com/trustlens/trustlens/internal/catalog"
)

func TestAssessAll_SampleCatalog(t *testing.T) {
	items, err := catalog.Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	engine := assess.New(baseline.Defaults())

	assessed := assessAll(engine, items)

	if len(assessed) != len(items) {
		t.Fatalf("len(assessed) = %d, want %d", len(assessed), len(items))
	}
	for i, a := range assessed {
		if a.Name != items[i].Name {
			t.Errorf("assessed[%d].Name = %q, want %q", i, a.Name, items[i].Name)
		}
		if a.Result.OverallScore < 0 || a.Result.OverallScore > 10 {
			t.Errorf("%s: OverallScore = %v, out of [0,10]", a.Name, a.Result.OverallScore)
		}
		if len(a.Result.DimensionRisks) != len(assess.Dimensions) {
			t.Errorf("%s: DimensionRisks = %v, want all dimensions scored", a.Name, a.Result.DimensionRisks)
		}
	}
}

func TestLoadCatalogAndEngine(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	content := `
items:
  - name: Only Item
    text: "A single listing with 3 figures, 20 hours and 128 gigabytes."
`
	if err := os.WriteFile(catalogPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	items, engine, err := loadCatalogAndEngine([]string{catalogPath})
	if err != nil {
		t.Fatalf("loadCatalogAndEngine: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Only Item" {
		t.Errorf("items = %+v", items)
	}
	if engine == nil {
		t.Fatal("engine = nil")
	}
}

func TestLoadCatalogAndEngine_MissingCatalog(t *testing.T) {
	if _, _, err := loadCatalogAndEngine([]string{filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
		t.Error("missing catalog = nil error, want failure")
	}
}
