package assess

import (
	"fmt"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// assessOriginality scores the originality/anomaly dimension: vector-space
// similarity against competing listings, near-duplicate detection against
// the previous version, and category-relative length anomalies.
func (e *Engine) assessOriginality(text string, historical, similar []string, category string) (float64, []Label) {
	var risk float64
	var labels []Label

	if len(similar) > 0 {
		docs := append([]string{text}, similar...)
		mean, err := meanTFIDFSimilarity(docs)
		switch {
		case err != nil:
			// Degenerate vocabulary is non-fatal; no risk contribution.
			labels = append(labels, Label{Low, "similarity could not be computed for this text"})
		case mean > e.t.Similarity:
			risk += 0.6
			labels = append(labels, Label{Low, fmt.Sprintf(
				"average similarity to related listings is very high (%.2f); likely template text", mean)})
		case mean > e.t.Similarity*0.7:
			risk += 0.2
			labels = append(labels, Label{Low, fmt.Sprintf(
				"average similarity to related listings is high (%.2f)", mean)})
		}
	}

	if len(historical) > 0 {
		// Only the most recent prior version is consulted.
		last := historical[len(historical)-1]
		maxLen := utf8.RuneCountInString(text)
		if l := utf8.RuneCountInString(last); l > maxLen {
			maxLen = l
		}
		if maxLen > 0 {
			normalized := float64(levenshtein.ComputeDistance(text, last)) / float64(maxLen)
			if maxLen > 30 && normalized > 0 && normalized < 0.10 {
				risk += 0.15
				labels = append(labels, Label{Low, fmt.Sprintf(
					"minimal change from the previous version (distance: %.2f%%)", normalized*100)})
			}
		}
	}

	if b, ok := e.baselines.Lookup(category); ok && category != "" && b.AvgLength > 0 {
		words := wordCount(text)
		ratio := float64(words) / float64(b.AvgLength)
		if ratio < 0.2 || ratio > 5.0 {
			risk += 0.2
			labels = append(labels, Label{Low, fmt.Sprintf(
				"text length (%d words) is anomalous versus the category average (%d words)", words, b.AvgLength)})
		}
	}

	return clamp01(risk), labels
}
