package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath(SchemaRelativePath)
	require.NotEmpty(t, path, "run report schema should be resolvable from the package directory")
	assert.FileExists(t, path)
}

func TestValidateFile_ValidReport(t *testing.T) {
	dir := t.TempDir()

	r := New("https://example.com/", "R&D")
	r.Add(PositionResult{Title: "Backend Engineer", State: StateFilled})
	r.Add(PositionResult{Title: "Data Engineer", State: StateSkippedRemoved, Reason: "position removed"})
	r.Finish(nil)

	path, err := r.Write(dir)
	require.NoError(t, err)

	require.NoError(t, ValidateFile(path))
}

func TestValidateFile_SubmissionObservedIsInvalid(t *testing.T) {
	dir := t.TempDir()

	r := New("https://example.com/", "R&D")
	r.Add(PositionResult{Title: "Backend Engineer", State: StateFilled})
	r.Finish([]string{"https://boards-api.greenhouse.io/applications/1"})

	path, err := r.Write(dir)
	require.NoError(t, err)

	err = ValidateFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateFile_BadState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	content := `{
		"run_id": "7c8a1f2e-0b14-4b5d-9d87-0a1b2c3d4e5f",
		"base_url": "https://example.com/",
		"department": "R&D",
		"started_at": "2026-01-01T10:00:00Z",
		"finished_at": "2026-01-01T10:05:00Z",
		"positions": [{"title": "X", "state": "discovered"}],
		"totals": {"filled": 0, "skipped": 0, "failed": 0},
		"submissions": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err := ValidateFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateFile_MissingReport(t *testing.T) {
	err := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report file not found")
}
