// Package report builds and persists the per-run outcome report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// State is the terminal classification of one position. Every position in
// the snapshot ends in exactly one of these; none stays merely discovered.
type State string

const (
	StateFilled         State = "filled"
	StateSkippedRemoved State = "skipped_removed"
	StateFailed         State = "failed"
)

// PositionResult records one position's outcome.
type PositionResult struct {
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
	State      State  `json:"state"`
	Reason     string `json:"reason,omitempty"`
	Screenshot string `json:"screenshot,omitempty"`
}

// Totals aggregates outcome counts for the run.
type Totals struct {
	Filled  int `json:"filled"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Report is the durable artifact of one workflow run.
type Report struct {
	RunID       uuid.UUID        `json:"run_id"`
	BaseURL     string           `json:"base_url"`
	Department  string           `json:"department"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
	Positions   []PositionResult `json:"positions"`
	Totals      Totals           `json:"totals"`
	Submissions []string         `json:"submissions"` // must stay empty; recorded to prove it
}

// New starts a report for a run against the given site and department.
func New(baseURL, department string) *Report {
	return &Report{
		RunID:      uuid.New(),
		BaseURL:    baseURL,
		Department: department,
		StartedAt:  time.Now().UTC(),
		Positions:  []PositionResult{},
	}
}

// Add records one position outcome and updates the totals.
func (r *Report) Add(result PositionResult) {
	r.Positions = append(r.Positions, result)
	switch result.State {
	case StateFilled:
		r.Totals.Filled++
	case StateSkippedRemoved:
		r.Totals.Skipped++
	case StateFailed:
		r.Totals.Failed++
	}
}

// Finish stamps the end time and the observed submission requests.
func (r *Report) Finish(submissions []string) {
	r.FinishedAt = time.Now().UTC()
	if submissions == nil {
		submissions = []string{}
	}
	r.Submissions = submissions
}

// HasFailures reports whether any position failed for a reason other than
// removal. Skips alone never fail a run.
func (r *Report) HasFailures() bool {
	return r.Totals.Failed > 0
}

// Write marshals the report to report.json under a per-run directory and
// returns the written path.
func (r *Report) Write(dir string) (string, error) {
	runDir := filepath.Join(dir, r.RunID.String())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(runDir, "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
