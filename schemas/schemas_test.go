package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestRunReportSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "run_report.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
}

func TestRunReportSchema_LoadsAsJSONSchema(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "run_report.schema.json"))
	require.NoError(t, err)

	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	require.NoError(t, err, "schema file should compile as a JSON Schema")
}

func TestRunReportSchema_RejectsSubmissions(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "run_report.schema.json"))
	require.NoError(t, err)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	require.NoError(t, err)

	doc := map[string]interface{}{
		"run_id":      "7c8a1f2e-0b14-4b5d-9d87-0a1b2c3d4e5f",
		"base_url":    "https://example.com/",
		"department":  "R&D",
		"started_at":  "2026-01-01T10:00:00Z",
		"finished_at": "2026-01-01T10:05:00Z",
		"positions":   []interface{}{},
		"totals":      map[string]interface{}{"filled": 0, "skipped": 0, "failed": 0},
		"submissions": []interface{}{"https://boards-api.greenhouse.io/applications/1"},
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	require.NoError(t, err)
	assert.False(t, result.Valid(), "a report with an observed submission must be invalid")
}
