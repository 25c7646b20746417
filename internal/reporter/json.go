package reporter

import (
	"encoding/json"
	"io"

	"github.com/trustlens/trustlens/internal/assess"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Items   []JSONItem `json:"items"`
	Summary Summary    `json:"summary"`
}

// JSONItem represents one assessed listing in JSON format
type JSONItem struct {
	Name           string             `json:"name"`
	OverallScore   float64            `json:"overall_score"`
	RiskLevel      string             `json:"risk_level"`
	DimensionRisks map[string]float64 `json:"dimension_risks"`
	RiskLabels     []string           `json:"risk_labels"`
	RawSentiment   *float64           `json:"raw_sentiment,omitempty"`
}

// Report outputs assessed items as JSON
func (r *JSONReporter) Report(items []ItemAssessment) error {
	output := JSONOutput{
		Items:   make([]JSONItem, 0, len(items)),
		Summary: ComputeSummary(items),
	}

	for _, item := range items {
		risks := make(map[string]float64, len(item.Result.DimensionRisks))
		for dim, risk := range item.Result.DimensionRisks {
			risks[string(dim)] = risk
		}
		output.Items = append(output.Items, JSONItem{
			Name:           item.Name,
			OverallScore:   item.Result.OverallScore,
			RiskLevel:      string(assess.LevelForScore(item.Result.OverallScore)),
			DimensionRisks: risks,
			RiskLabels:     item.Result.DecoratedLabels(),
			RawSentiment:   item.Result.RawSentiment,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
