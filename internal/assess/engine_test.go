package assess

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/trustlens/trustlens/internal/baseline"
)

// fixedScorer returns a constant polarity, keeping tests independent of
// the VADER lexicon.
type fixedScorer struct {
	polarity float64
	err      error
}

func (f fixedScorer) Compound(string) (float64, error) {
	return f.polarity, f.err
}

func testEngine(reg baseline.Registry, polarity float64) *Engine {
	e := New(reg)
	e.scorer = fixedScorer{polarity: polarity}
	return e
}

func floatPtr(v float64) *float64 { return &v }

func electronicsBaselines() baseline.Registry {
	return baseline.Registry{
		"Electronics": {AvgSentiment: floatPtr(0.4), AvgLength: 120},
	}
}

func TestAssess_EmptyText(t *testing.T) {
	e := testEngine(nil, 0)

	result := e.Assess(Input{Text: ""})

	if result.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", result.OverallScore)
	}
	if len(result.DimensionRisks) != 0 {
		t.Errorf("DimensionRisks = %v, want empty", result.DimensionRisks)
	}
	if len(result.Labels) != 1 || result.Labels[0].Text != "input text empty" {
		t.Errorf("Labels = %v, want single 'input text empty'", result.Labels)
	}
	if result.RawSentiment != nil {
		t.Errorf("RawSentiment = %v, want nil", *result.RawSentiment)
	}
}

func TestAssess_Deterministic(t *testing.T) {
	e := testEngine(electronicsBaselines(), 0.6)
	price := 799.0
	input := Input{
		Text: "This solid state drive reads at a stunning 5000MB/s. Now only $599!",
		Metadata: &Metadata{
			Category: "Electronics",
			Price:    &price,
			Specs:    map[string]any{"read_speed_mbps": 3500},
		},
		HistoricalTexts:  []string{"1TB NVMe SSD with fast read and write speeds."},
		SimilarItemTexts: []string{"Large capacity solid state drive.", "NVMe SSD, fast and stable."},
	}

	first := e.Assess(input)
	second := e.Assess(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestAssess_Bounds(t *testing.T) {
	e := testEngine(electronicsBaselines(), 0.95)
	price := 1999.0
	inputs := []Input{
		{Text: "short"},
		{Text: "revolutionary perfect ultimate miracle flawless stunning"},
		{
			Text: "quantum cosmic energy guaranteed miracle cure, results absolutely perfect",
			Metadata: &Metadata{
				Category: "Accessories",
				Price:    &price,
				Specs:    map[string]any{"color": "gold"},
			},
			SimilarItemTexts: []string{"quantum cosmic energy guaranteed miracle cure, results absolutely perfect"},
		},
	}

	for i, input := range inputs {
		result := e.Assess(input)
		if result.OverallScore < 0 || result.OverallScore > 10 {
			t.Errorf("input %d: OverallScore = %v, out of [0,10]", i, result.OverallScore)
		}
		for dim, risk := range result.DimensionRisks {
			if risk < 0 || risk > 1 {
				t.Errorf("input %d: risk[%s] = %v, out of [0,1]", i, dim, risk)
			}
		}
	}
}

func TestAssess_PriceMismatchScenario(t *testing.T) {
	e := testEngine(nil, 0)
	price := 799.0
	result := e.Assess(Input{
		Text: "A very fast 1TB drive for gaming. Now only $599!",
		Metadata: &Metadata{
			Category: "Electronics",
			Price:    &price,
			Specs:    map[string]any{"color": "black"},
		},
	})

	if risk := result.DimensionRisks[DimConsistency]; risk < 0.9 {
		t.Errorf("consistency risk = %v, want >= 0.9", risk)
	}
	found := false
	for _, l := range result.Labels {
		if strings.Contains(l.Text, "severely contradicts the metadata price") {
			found = true
		}
		if strings.Contains(l.Text, "color") {
			t.Errorf("color check fired despite severe price mismatch: %v", l)
		}
	}
	if !found {
		t.Error("expected a price mismatch label")
	}
}

func TestAssess_LabelsOrderedBySeverity(t *testing.T) {
	e := testEngine(nil, 0)
	price := 1999.0
	// Severe price mismatch (high), vague keywords (medium tier via
	// count), plus low-severity notes.
	result := e.Assess(Input{
		Text: "A great nice good bracelet with quantum power. Only $99!",
		Metadata: &Metadata{
			Category: "Accessories",
			Price:    &price,
			Specs:    map[string]any{},
		},
	})

	if len(result.Labels) < 2 {
		t.Fatalf("expected several labels, got %v", result.Labels)
	}
	for i := 1; i < len(result.Labels); i++ {
		if result.Labels[i].Severity > result.Labels[i-1].Severity {
			t.Errorf("labels not ordered by descending severity at %d: %v", i, result.Labels)
		}
	}
}

func TestOverallScore_WeightSensitivity(t *testing.T) {
	e := testEngine(nil, 0)

	zero := map[Dimension]float64{
		DimExaggeration: 0, DimConsistency: 0, DimOriginality: 0, DimVagueness: 0,
	}
	if got := e.overallScore(zero); got != 10 {
		t.Fatalf("overallScore(all zero) = %v, want 10", got)
	}

	weights := DefaultWeights()
	for _, dim := range Dimensions {
		risks := map[Dimension]float64{
			DimExaggeration: 0, DimConsistency: 0, DimOriginality: 0, DimVagueness: 0,
		}
		risks[dim] = 1.0
		got := e.overallScore(risks)
		want := 10 - weights[dim]*10
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("overallScore with %s=1 -> %v, want %v", dim, got, want)
		}
	}
}

func TestAssess_RawSentimentRounded(t *testing.T) {
	e := testEngine(nil, 0.123456)
	result := e.Assess(Input{Text: "plain text with 5 words"})

	if result.RawSentiment == nil {
		t.Fatal("RawSentiment = nil, want value")
	}
	if *result.RawSentiment != 0.123 {
		t.Errorf("RawSentiment = %v, want 0.123", *result.RawSentiment)
	}
}

func TestAssess_DimensionRisksRounded(t *testing.T) {
	e := testEngine(nil, 0)
	result := e.Assess(Input{Text: "a word salad without figures"})

	for dim, risk := range result.DimensionRisks {
		if math.Round(risk*100)/100 != risk {
			t.Errorf("risk[%s] = %v, not rounded to 2 decimals", dim, risk)
		}
	}
}
