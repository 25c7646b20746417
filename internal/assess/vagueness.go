package assess

import (
	"fmt"
	"strings"
)

// technicalCategories are expected to back their copy with several
// concrete figures; everything else is held to a floor of one.
var technicalCategories = map[string]bool{
	"electronics": true,
	"computers":   true,
	"hardware":    true,
}

// assessVagueness scores the vagueness/detail dimension: density of
// vague adjectives plus a category-dependent concrete-figure floor.
func (e *Engine) assessVagueness(text, category string) (float64, []Label) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0, []Label{{Low, "text is empty or contains no standard words"}}
	}

	var risk float64
	var labels []Label

	count := countKeywords(tokens, vagueKeywords)
	ratio := float64(count) / float64(len(tokens))

	// Mutually exclusive tiers, highest first.
	switch {
	case ratio > e.t.VaguenessRatio:
		risk += 0.7
		labels = append(labels, Label{High, fmt.Sprintf(
			"high proportion (%.2f%%) of vague keywords (%d found)", ratio*100, count)})
	case count >= 3:
		risk += 0.4
		labels = append(labels, Label{Medium, fmt.Sprintf(
			"multiple vague keywords (%d found)", count)})
	case count >= 1:
		risk += 0.15
		labels = append(labels, Label{Low, fmt.Sprintf(
			"some vague keywords (%d found)", count)})
	}

	expected := 1
	if technicalCategories[strings.ToLower(category)] {
		expected = e.t.MinNumbersTechnical
	}
	if numbers := countNumbers(text); numbers < expected {
		risk += 0.5
		displayCategory := category
		if displayCategory == "" {
			displayCategory = "this"
		}
		labels = append(labels, Label{Medium, fmt.Sprintf(
			"too few concrete figures for the %s category (%d found, at least %d expected)",
			displayCategory, numbers, expected)})
	}

	return clamp01(risk), labels
}
