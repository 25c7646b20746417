// Package feedback records reviewer verdicts on assessments. The engine
// never reads these records; they exist for later offline review.
package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Verdict is a reviewer's judgement of one assessment.
type Verdict string

const (
	VerdictAccurate   Verdict = "accurate"
	VerdictInaccurate Verdict = "inaccurate"
	VerdictSuspicious Verdict = "report_suspicious"
)

// Record is one captured verdict.
type Record struct {
	ID      uuid.UUID `json:"id"`
	Item    string    `json:"item"`
	Verdict Verdict   `json:"verdict"`
	Score   float64   `json:"score"`
	At      time.Time `json:"at"`
}

// Log appends verdict records to a JSONL file.
type Log struct {
	path string
}

// OpenLog returns a log writing to the given path. The parent directory
// is created on first append, not here.
func OpenLog(path string) *Log {
	return &Log{path: path}
}

// DefaultPath returns the per-user feedback log location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".trustlens", "feedback.jsonl"), nil
}

// Record appends a verdict for an item and returns the stored record.
func (l *Log) Record(item string, verdict Verdict, score float64) (Record, error) {
	rec := Record{
		ID:      uuid.New(),
		Item:    item,
		Verdict: verdict,
		Score:   score,
		At:      time.Now().UTC(),
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return Record{}, fmt.Errorf("create feedback dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Record{}, fmt.Errorf("open feedback log: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(rec)
	if err != nil {
		return Record{}, err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return Record{}, fmt.Errorf("append feedback: %w", err)
	}
	return rec, nil
}
