package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/careers-check/internal/report"
)

func TestPrintRunSummary(t *testing.T) {
	rep := report.New("https://example.com/", "R&D")
	rep.Add(report.PositionResult{Title: "Backend Engineer", State: report.StateFilled})
	rep.Add(report.PositionResult{Title: "Data Engineer", State: report.StateSkippedRemoved, Reason: "position removed"})
	rep.Add(report.PositionResult{Title: "QA Engineer", State: report.StateFailed, Reason: "cv missing"})
	rep.Finish(nil)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary(rep)

	out := buf.String()
	assert.Contains(t, out, "Run Summary")
	assert.Contains(t, out, "✓ Backend Engineer")
	assert.Contains(t, out, "- Data Engineer")
	assert.Contains(t, out, "✗ QA Engineer")
	assert.Contains(t, out, "Filled: 1  Skipped: 1  Failed: 1")
	assert.Contains(t, out, "Submissions observed: 0")
}

func TestPrintRunSummary_EmptyRun(t *testing.T) {
	rep := report.New("https://example.com/", "R&D")
	rep.Finish(nil)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary(rep)

	assert.Contains(t, buf.String(), "No positions in snapshot")
}

func TestPrintRunSummary_NilReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary(nil)
	assert.Empty(t, buf.String())
}
