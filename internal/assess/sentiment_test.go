package assess

import (
	"errors"
	"strings"
	"testing"
)

func TestAssessSentiment_ScorerFailure(t *testing.T) {
	e := New(nil)
	e.scorer = fixedScorer{err: errors.New("boom")}

	risk, labels, polarity := e.assessSentiment("a plain description", "")

	if polarity != 0 {
		t.Errorf("polarity = %v, want 0 on failure", polarity)
	}
	if risk != 0 {
		t.Errorf("risk = %v, want 0", risk)
	}
	found := false
	for _, l := range labels {
		if strings.Contains(l.Text, "sentiment analysis failed") {
			found = true
		}
	}
	if !found {
		t.Errorf("labels = %v, want a failure note", labels)
	}
}

func TestAssessSentiment_BaselineDeviation(t *testing.T) {
	e := testEngine(electronicsBaselines(), 0.85)

	risk, labels, _ := e.assessSentiment("plain wording without hype", "Electronics")

	if risk != 0.3 {
		t.Errorf("risk = %v, want 0.3", risk)
	}
	if len(labels) != 1 || !strings.Contains(labels[0].Text, "category average") {
		t.Errorf("labels = %v, want a category deviation note", labels)
	}
}

func TestAssessSentiment_WithinDeviation(t *testing.T) {
	// 0.69 against a 0.4 average stays inside the 0.3 allowance.
	e := testEngine(electronicsBaselines(), 0.69)

	risk, labels, _ := e.assessSentiment("plain wording without hype", "Electronics")

	if risk != 0 || len(labels) != 0 {
		t.Errorf("risk = %v labels = %v, want no findings at the boundary", risk, labels)
	}
}

func TestAssessSentiment_ExtremeWithoutBaseline(t *testing.T) {
	e := testEngine(nil, 0.95)

	risk, labels, _ := e.assessSentiment("plain wording without hype", "Unknown")

	if risk != 0.2 {
		t.Errorf("risk = %v, want 0.2", risk)
	}
	if len(labels) != 1 {
		t.Errorf("labels = %v, want a single extremity note", labels)
	}
}

func TestAssessSentiment_KeywordFrequencyTier(t *testing.T) {
	e := testEngine(nil, 0)

	risk, labels, _ := e.assessSentiment("revolutionary perfect ultimate", "")

	if risk != 0.8 {
		t.Errorf("risk = %v, want 0.8", risk)
	}
	if len(labels) != 1 || labels[0].Severity != High {
		t.Errorf("labels = %v, want one high-severity label", labels)
	}
}

func TestAssessSentiment_KeywordCountTier(t *testing.T) {
	e := testEngine(nil, 0)
	// Dilute three hype words below the frequency cutoff.
	text := strings.Repeat("word ", 400) + "revolutionary perfect ultimate"

	risk, labels, _ := e.assessSentiment(text, "")

	if risk != 0.6 {
		t.Errorf("risk = %v, want 0.6", risk)
	}
	if len(labels) != 1 || labels[0].Severity != High {
		t.Errorf("labels = %v, want one high-severity label", labels)
	}
}

func TestAssessSentiment_SingleKeywordTier(t *testing.T) {
	e := testEngine(nil, 0)
	text := strings.Repeat("word ", 100) + "perfect"

	risk, labels, _ := e.assessSentiment(text, "")

	if risk != 0.3 {
		t.Errorf("risk = %v, want 0.3", risk)
	}
	if len(labels) != 1 || labels[0].Severity != Medium {
		t.Errorf("labels = %v, want one medium-severity label", labels)
	}
}

func TestAssessSentiment_NoTokens(t *testing.T) {
	e := testEngine(nil, 0)

	risk, labels, _ := e.assessSentiment("!!! ???", "")

	if risk != 0 || len(labels) != 0 {
		t.Errorf("risk = %v labels = %v, want nothing for symbol-only text", risk, labels)
	}
}
