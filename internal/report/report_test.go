package report

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New("https://example.com/", "R&D")

	assert.NotEqual(t, uuid.Nil, r.RunID)
	assert.Equal(t, "https://example.com/", r.BaseURL)
	assert.Equal(t, "R&D", r.Department)
	assert.False(t, r.StartedAt.IsZero())
	assert.Empty(t, r.Positions)
}

func TestAdd_UpdatesTotals(t *testing.T) {
	r := New("https://example.com/", "R&D")

	r.Add(PositionResult{Title: "Backend Engineer", State: StateFilled})
	r.Add(PositionResult{Title: "Frontend Engineer", State: StateFilled})
	r.Add(PositionResult{Title: "Data Engineer", State: StateSkippedRemoved, Reason: "position removed"})
	r.Add(PositionResult{Title: "QA Engineer", State: StateFailed, Reason: "cv file not found"})

	assert.Equal(t, Totals{Filled: 2, Skipped: 1, Failed: 1}, r.Totals)
	assert.Len(t, r.Positions, 4)
}

func TestHasFailures(t *testing.T) {
	r := New("https://example.com/", "R&D")
	r.Add(PositionResult{Title: "A", State: StateFilled})
	r.Add(PositionResult{Title: "B", State: StateSkippedRemoved})
	assert.False(t, r.HasFailures(), "skips alone must not fail a run")

	r.Add(PositionResult{Title: "C", State: StateFailed})
	assert.True(t, r.HasFailures())
}

func TestFinish_NormalizesNilSubmissions(t *testing.T) {
	r := New("https://example.com/", "R&D")
	r.Finish(nil)

	assert.NotNil(t, r.Submissions)
	assert.Empty(t, r.Submissions)
	assert.False(t, r.FinishedAt.IsZero())
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	r := New("https://example.com/", "R&D")
	r.Add(PositionResult{Title: "Backend Engineer", State: StateFilled, URL: "https://example.com/careers/backend"})
	r.Finish(nil)

	path, err := r.Write(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, r.RunID, loaded.RunID)
	assert.Equal(t, r.Totals, loaded.Totals)
	require.Len(t, loaded.Positions, 1)
	assert.Equal(t, StateFilled, loaded.Positions[0].State)
}
