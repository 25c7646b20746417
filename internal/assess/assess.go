package assess

// Severity represents the severity level of a risk label
type Severity int

const (
	Low Severity = iota
	Medium
	High
)

func (s Severity) String() string {
	switch s {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Marker returns the bracketed display prefix for a severity.
// Decoration is applied only at the presentation boundary; the engine
// itself carries severities as values, never as label substrings.
func (s Severity) Marker() string {
	switch s {
	case High:
		return "[high risk]"
	case Medium:
		return "[medium risk]"
	default:
		return "[note]"
	}
}

// Label is a human-readable risk finding tagged with its severity.
type Label struct {
	Severity Severity
	Text     string
}

// Decorated returns the label with its severity marker prefixed.
func (l Label) Decorated() string {
	return l.Marker() + " " + l.Text
}

// Marker returns the severity marker for this label.
func (l Label) Marker() string {
	return l.Severity.Marker()
}

// Dimension identifies one of the four independent risk axes.
type Dimension string

const (
	DimExaggeration Dimension = "exaggeration_sentiment"
	DimConsistency  Dimension = "consistency_factuality"
	DimOriginality  Dimension = "originality_anomaly"
	DimVagueness    Dimension = "vagueness_detail"
)

// Dimensions lists the risk axes in their fixed emission order.
// Aggregation, label ordering and reporter output all follow this order.
var Dimensions = []Dimension{
	DimExaggeration,
	DimConsistency,
	DimOriginality,
	DimVagueness,
}

// DefaultWeights returns the weighted-sum coefficients per dimension.
// Weights are non-negative and need not total 1.0; a dimension at maximum
// risk deducts weight*10 points from the 10-point budget.
func DefaultWeights() map[Dimension]float64 {
	return map[Dimension]float64{
		DimExaggeration: 0.35,
		DimConsistency:  0.30,
		DimOriginality:  0.15,
		DimVagueness:    0.20,
	}
}

// Metadata is the structured ground truth a listing is checked against.
type Metadata struct {
	Category string         `yaml:"category"`
	Price    *float64       `yaml:"price"`
	Specs    map[string]any `yaml:"specs"`
}

// Input is one assessment request. Only Text is required; every other
// field degrades gracefully when absent.
type Input struct {
	Text             string
	Metadata         *Metadata
	HistoricalTexts  []string
	SimilarItemTexts []string
}

// Result is the immutable outcome of one assessment.
type Result struct {
	// OverallScore is the 0-10 trust score, rounded to 1 decimal.
	OverallScore float64

	// DimensionRisks holds each dimension's [0,1] risk, rounded to 2 decimals.
	DimensionRisks map[Dimension]float64

	// Labels are ordered by descending severity; ties preserve the
	// dimension emission order.
	Labels []Label

	// RawSentiment is the compound polarity in [-1,1], rounded to 3
	// decimals, or nil when no text was analyzed.
	RawSentiment *float64
}

// DecoratedLabels renders all labels with their severity markers.
func (r Result) DecoratedLabels() []string {
	out := make([]string, 0, len(r.Labels))
	for _, l := range r.Labels {
		out = append(out, l.Decorated())
	}
	return out
}

// Thresholds holds the tunable cut-points of the assessors. The values
// are domain-tuned defaults, not derived; treat them as configuration.
type Thresholds struct {
	// SentimentDeviation is how far polarity may exceed a category's
	// average sentiment before it is flagged.
	SentimentDeviation float64

	// ExtremeSentiment flags polarity above this when no baseline applies.
	ExtremeSentiment float64

	// ExaggerationFreq is the keyword-per-token ratio for the highest
	// exaggeration tier.
	ExaggerationFreq float64

	// Similarity is the mean cosine similarity above which a listing is
	// considered template-like. 0.7x of it bounds the lower warning band.
	Similarity float64

	// VaguenessRatio is the vague-keyword-per-token ratio for the highest
	// vagueness tier.
	VaguenessRatio float64

	// SuspiciousKeywords is the count of distinct unverifiable-claim
	// keywords that, combined with price or category, marks high risk.
	SuspiciousKeywords int

	// MinNumbersTechnical is the concrete-figure floor for technical
	// categories (electronics, computers, hardware). Others expect 1.
	MinNumbersTechnical int
}

// DefaultThresholds returns the standard cut-points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SentimentDeviation:  0.3,
		ExtremeSentiment:    0.90,
		ExaggerationFreq:    0.015,
		Similarity:          0.8,
		VaguenessRatio:      0.08,
		SuspiciousKeywords:  2,
		MinNumbersTechnical: 3,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
