package assess

import (
	"math"
	"strings"
	"testing"
)

func TestAssessOriginality_TemplateText(t *testing.T) {
	e := testEngine(nil, 0)
	text := "wireless headphones with active noise cancellation"

	risk, labels := e.assessOriginality(text, nil, []string{text}, "")

	if risk != 0.6 {
		t.Errorf("risk = %v, want 0.6 for an exact duplicate", risk)
	}
	if len(labels) != 1 || !strings.Contains(labels[0].Text, "likely template text") {
		t.Errorf("labels = %v, want the template-text label", labels)
	}
}

func TestAssessOriginality_HighSimilarityBand(t *testing.T) {
	e := testEngine(nil, 0)
	text := "wireless headphones active noise cancellation battery"
	// Two duplicates and one fully disjoint document give a mean
	// similarity of 2/3, inside the warning band (0.56, 0.8].
	similar := []string{text, text, "garden shovel spade compost soil"}

	risk, labels := e.assessOriginality(text, nil, similar, "")

	if risk != 0.2 {
		t.Errorf("risk = %v, want 0.2", risk)
	}
	if len(labels) != 1 || !strings.Contains(labels[0].Text, "similarity to related listings is high") {
		t.Errorf("labels = %v, want the high-similarity label", labels)
	}
}

func TestAssessOriginality_DisjointSimilar(t *testing.T) {
	e := testEngine(nil, 0)

	risk, labels := e.assessOriginality(
		"wireless headphones active noise cancellation",
		nil,
		[]string{"garden shovel spade compost soil"},
		"")

	if risk != 0 || len(labels) != 0 {
		t.Errorf("risk = %v labels = %v, want nothing for disjoint listings", risk, labels)
	}
}

func TestAssessOriginality_DegenerateVocabulary(t *testing.T) {
	e := testEngine(nil, 0)

	// Everything is a stop word, so no vector space can be built.
	risk, labels := e.assessOriginality("the of and", nil, []string{"to in was"}, "")

	if risk != 0 {
		t.Errorf("risk = %v, want 0", risk)
	}
	if len(labels) != 1 || !strings.Contains(labels[0].Text, "similarity could not be computed") {
		t.Errorf("labels = %v, want the degraded-similarity note", labels)
	}
}

func TestAssessOriginality_MinimalEdit(t *testing.T) {
	e := testEngine(nil, 0)
	text := strings.Repeat("ab", 20)
	previous := text[:38] + "zz"

	risk, labels := e.assessOriginality(text, []string{previous}, nil, "")

	if math.Abs(risk-0.15) > 1e-9 {
		t.Errorf("risk = %v, want 0.15 for a near-identical revision", risk)
	}
	if len(labels) != 1 || !strings.Contains(labels[0].Text, "minimal change from the previous version") {
		t.Errorf("labels = %v, want the minimal-change label", labels)
	}
}

func TestAssessOriginality_IdenticalHistory(t *testing.T) {
	e := testEngine(nil, 0)
	text := strings.Repeat("ab", 20)

	risk, labels := e.assessOriginality(text, []string{text}, nil, "")

	if risk != 0 || len(labels) != 0 {
		t.Errorf("risk = %v labels = %v, want nothing for an unchanged text", risk, labels)
	}
}

func TestAssessOriginality_ShortHistoryIgnored(t *testing.T) {
	e := testEngine(nil, 0)

	// Below the 30-rune floor; small edits are not meaningful there.
	risk, labels := e.assessOriginality("tiny text", []string{"tiny texts"}, nil, "")

	if risk != 0 || len(labels) != 0 {
		t.Errorf("risk = %v labels = %v, want nothing below the length floor", risk, labels)
	}
}

func TestAssessOriginality_LengthAnomaly(t *testing.T) {
	e := testEngine(electronicsBaselines(), 0)

	risk, labels := e.assessOriginality("too short for the category", nil, nil, "Electronics")

	if risk != 0.2 {
		t.Errorf("risk = %v, want 0.2", risk)
	}
	if len(labels) != 1 || !strings.Contains(labels[0].Text, "anomalous versus the category average") {
		t.Errorf("labels = %v, want the length-anomaly label", labels)
	}
}

func TestMeanTFIDFSimilarity(t *testing.T) {
	text := "wireless headphones active noise cancellation"

	identical, err := meanTFIDFSimilarity([]string{text, text})
	if err != nil {
		t.Fatalf("identical docs: %v", err)
	}
	if math.Abs(identical-1) > 1e-9 {
		t.Errorf("identical docs similarity = %v, want 1", identical)
	}

	disjoint, err := meanTFIDFSimilarity([]string{text, "garden shovel spade compost"})
	if err != nil {
		t.Fatalf("disjoint docs: %v", err)
	}
	if disjoint != 0 {
		t.Errorf("disjoint docs similarity = %v, want 0", disjoint)
	}

	if _, err := meanTFIDFSimilarity([]string{"the of", "and to"}); err == nil {
		t.Error("stop-word-only docs: want an error, got nil")
	}

	single, err := meanTFIDFSimilarity([]string{text})
	if err != nil || single != 0 {
		t.Errorf("single doc = (%v, %v), want (0, nil)", single, err)
	}
}
