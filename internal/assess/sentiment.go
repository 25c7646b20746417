package assess

import (
	"fmt"

	"github.com/jonreiter/govader"
)

// SentimentScorer computes a compound polarity score in [-1,1] for a
// text. Implementations must be safe for concurrent read-only use.
type SentimentScorer interface {
	Compound(text string) (float64, error)
}

// vaderScorer backs SentimentScorer with a lexicon/rule-based VADER
// analyzer. The analyzer itself never returns errors; a panic inside it
// is converted into one so the assessor can degrade instead of aborting.
type vaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer returns the default VADER-backed sentiment scorer.
func NewVaderScorer() SentimentScorer {
	return &vaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderScorer) Compound(text string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sentiment analyzer: %v", r)
		}
	}()
	return v.sia.PolarityScores(text).Compound, nil
}

// assessSentiment scores the exaggeration/sentiment dimension.
func (e *Engine) assessSentiment(text, category string) (float64, []Label, float64) {
	var risk float64
	var labels []Label

	sentiment, err := e.scorer.Compound(text)
	if err != nil {
		labels = append(labels, Label{Low, "sentiment analysis failed; treating polarity as neutral"})
		sentiment = 0.0
	}

	// Baseline-relative deviation takes precedence over the absolute
	// extreme-positivity check.
	checkedBaseline := false
	if b, ok := e.baselines.Lookup(category); ok && category != "" {
		if b.AvgSentiment != nil {
			checkedBaseline = true
			if sentiment > *b.AvgSentiment+e.t.SentimentDeviation {
				risk += 0.3
				labels = append(labels, Label{Low, fmt.Sprintf(
					"sentiment score (%.2f) is well above the category average (%.2f)",
					sentiment, *b.AvgSentiment)})
			}
		}
	}
	if !checkedBaseline && sentiment > e.t.ExtremeSentiment {
		risk += 0.2
		labels = append(labels, Label{Low, fmt.Sprintf(
			"sentiment score (%.2f) is extremely positive", sentiment)})
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return clamp01(risk), labels, sentiment
	}

	count := countKeywords(tokens, exaggerationKeywords)
	freq := float64(count) / float64(len(tokens))

	// Mutually exclusive tiers, highest first.
	switch {
	case freq > e.t.ExaggerationFreq:
		risk += 0.8
		labels = append(labels, Label{High, fmt.Sprintf(
			"high density (%.2f%%) of promotional hype keywords (%d found)", freq*100, count)})
	case count >= 3:
		risk += 0.6
		labels = append(labels, Label{High, fmt.Sprintf(
			"multiple promotional hype keywords (%d found)", count)})
	case count >= 1:
		risk += 0.3
		labels = append(labels, Label{Medium, fmt.Sprintf(
			"some promotional hype keywords (%d found)", count)})
	}

	return clamp01(risk), labels, sentiment
}
