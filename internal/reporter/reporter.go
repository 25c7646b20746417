package reporter

import (
	"github.com/trustlens/trustlens/internal/assess"
)

// ItemAssessment pairs a catalog item with its assessment result.
type ItemAssessment struct {
	Name   string
	Text   string
	Result assess.Result
}

// Reporter defines the interface for outputting assessment results
type Reporter interface {
	// Report outputs the assessment results
	Report(items []ItemAssessment) error
}

// Summary holds summary statistics for an assessment run
type Summary struct {
	TotalItems  int `json:"total_items"`
	HighRisk    int `json:"high_risk"`
	MediumRisk  int `json:"medium_risk"`
	LowRisk     int `json:"low_risk"`
	TotalLabels int `json:"total_labels"`
}

// ComputeSummary computes summary statistics from assessed items
func ComputeSummary(items []ItemAssessment) Summary {
	s := Summary{
		TotalItems: len(items),
	}

	for _, item := range items {
		s.TotalLabels += len(item.Result.Labels)
		switch assess.LevelForScore(item.Result.OverallScore) {
		case assess.RiskHigh:
			s.HighRisk++
		case assess.RiskMedium:
			s.MediumRisk++
		case assess.RiskLow:
			s.LowRisk++
		}
	}

	return s
}
