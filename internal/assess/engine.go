// Package assess implements the multi-dimensional trust-scoring engine
// for product-listing texts. Four independent heuristic assessors score
// exaggeration, factual consistency, originality and vagueness; an
// aggregator folds the dimension risks into a single 0-10 trust score
// and a severity-ordered list of human-readable risk labels.
//
// An Engine is stateless across calls beyond its read-only baseline
// registry and is safe for concurrent use.
package assess

import (
	"math"
	"sort"
	"sync"

	"github.com/trustlens/trustlens/internal/baseline"
)

// Engine evaluates listing texts. Construct once and reuse; all
// configuration is fixed at construction time.
type Engine struct {
	baselines baseline.Registry
	weights   map[Dimension]float64
	t         Thresholds
	scorer    SentimentScorer
}

// New returns an engine with the default thresholds, weights and
// VADER-backed sentiment scorer.
func New(baselines baseline.Registry) *Engine {
	return NewWithThresholds(baselines, DefaultThresholds())
}

// NewWithThresholds returns an engine with custom cut-points.
func NewWithThresholds(baselines baseline.Registry, t Thresholds) *Engine {
	return &Engine{
		baselines: baselines,
		weights:   DefaultWeights(),
		t:         t,
		scorer:    NewVaderScorer(),
	}
}

// dimOutput collects one assessor's contribution before aggregation.
type dimOutput struct {
	risk   float64
	labels []Label
}

// Assess validates the input, runs the four dimension assessors and
// aggregates their outputs. It never fails on well-formed input: missing
// context and primitive failures degrade to labels, not errors.
func (e *Engine) Assess(input Input) Result {
	if input.Text == "" {
		return Result{
			OverallScore:   0,
			DimensionRisks: map[Dimension]float64{},
			Labels:         []Label{{Low, "input text empty"}},
		}
	}

	category := ""
	if input.Metadata != nil {
		category = input.Metadata.Category
	}

	// The assessors share no mutable state, so they fan out and join
	// before aggregation.
	var (
		outputs      [4]dimOutput
		rawSentiment float64
		wg           sync.WaitGroup
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		outputs[0].risk, outputs[0].labels, rawSentiment = e.assessSentiment(input.Text, category)
	}()
	go func() {
		defer wg.Done()
		outputs[1].risk, outputs[1].labels = e.assessConsistency(input.Text, input.Metadata)
	}()
	go func() {
		defer wg.Done()
		outputs[2].risk, outputs[2].labels = e.assessOriginality(input.Text, input.HistoricalTexts, input.SimilarItemTexts, category)
	}()
	go func() {
		defer wg.Done()
		outputs[3].risk, outputs[3].labels = e.assessVagueness(input.Text, category)
	}()
	wg.Wait()

	risks := map[Dimension]float64{
		DimExaggeration: outputs[0].risk,
		DimConsistency:  outputs[1].risk,
		DimOriginality:  outputs[2].risk,
		DimVagueness:    outputs[3].risk,
	}

	var labels []Label
	for _, out := range outputs {
		labels = append(labels, out.labels...)
	}
	// Descending severity; a stable sort keeps dimension emission order
	// within each severity.
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Severity > labels[j].Severity
	})

	rounded := make(map[Dimension]float64, len(risks))
	for dim, risk := range risks {
		rounded[dim] = round2(risk)
	}

	sentiment := round3(rawSentiment)
	return Result{
		OverallScore:   round1(e.overallScore(risks)),
		DimensionRisks: rounded,
		Labels:         labels,
		RawSentiment:   &sentiment,
	}
}

// overallScore converts weighted dimension risks into the 0-10 trust
// score: each dimension's risk spends a weight*10 slice of a 10-point
// deduction budget.
func (e *Engine) overallScore(risks map[Dimension]float64) float64 {
	var totalWeightedRisk float64
	for _, dim := range Dimensions {
		totalWeightedRisk += risks[dim] * e.weights[dim]
	}
	score := 10 - totalWeightedRisk*10
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
