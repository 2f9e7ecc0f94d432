package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaRelativePath locates the run report schema relative to the repo
// root.
const SchemaRelativePath = "schemas/run_report.schema.json"

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("report validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ResolveSchemaPath attempts to find the schema file by trying path
// resolutions relative to likely working directories (repo root, package
// dir in tests). Returns empty string if none exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidateFile validates a written report file against the run report
// schema.
func ValidateFile(reportPath string) error {
	schemaPath := ResolveSchemaPath(SchemaRelativePath)
	if schemaPath == "" {
		return fmt.Errorf("report schema not found: %s", SchemaRelativePath)
	}

	reportAbsPath, err := filepath.Abs(reportPath)
	if err != nil {
		return fmt.Errorf("failed to resolve report path: %w", err)
	}
	if _, err := os.Stat(reportAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("report file not found: %s", reportAbsPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + reportAbsPath)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to load report schema %s: %w", schemaPath, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
