package baseline

import (
	"math"
	"strings"
)

// Compute derives a registry from a corpus of listing texts grouped by
// category: mean compound polarity and mean word count per category.
// The polarity function is injected so this package stays independent
// of the sentiment backend.
func Compute(textsByCategory map[string][]string, polarity func(string) float64) Registry {
	reg := make(Registry, len(textsByCategory))
	for category, texts := range textsByCategory {
		if len(texts) == 0 {
			continue
		}
		var sentimentSum float64
		var lengthSum int
		for _, text := range texts {
			sentimentSum += polarity(text)
			lengthSum += len(strings.Fields(text))
		}
		avgSentiment := round3(sentimentSum / float64(len(texts)))
		reg[category] = Baseline{
			AvgSentiment: &avgSentiment,
			AvgLength:    int(math.Round(float64(lengthSum) / float64(len(texts)))),
		}
	}
	return reg
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
