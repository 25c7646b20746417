package assess

import (
	"regexp"
	"strings"
)

// wordPattern matches letter/digit/underscore runs, including CJK runs,
// mirroring how the keyword tables were tuned.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// numberPattern matches standalone numeric tokens like "20" or "3.5".
var numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

// tokenize splits text into lowercase word tokens.
func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// countKeywords counts tokens that appear in the given keyword set.
func countKeywords(tokens []string, set map[string]struct{}) int {
	count := 0
	for _, tok := range tokens {
		if _, ok := set[tok]; ok {
			count++
		}
	}
	return count
}

// countNumbers counts standalone numeric tokens in the raw text.
func countNumbers(text string) int {
	return len(numberPattern.FindAllString(text, -1))
}

// wordCount counts whitespace-delimited words, the unit the category
// length baselines are expressed in.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
