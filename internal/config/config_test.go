package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingBaseURL(t *testing.T) {
	cfg := Defaults()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")
}

func TestValidate_Success(t *testing.T) {
	cfg := Defaults()
	cfg.BaseURL = "https://example.com/"

	require.NoError(t, cfg.Validate())
}

func TestValidate_InvalidEmail(t *testing.T) {
	cfg := Defaults()
	cfg.BaseURL = "https://example.com/"
	cfg.Email = "not-an-email"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
}

func TestValidate_UnsupportedBrowser(t *testing.T) {
	cfg := Defaults()
	cfg.BaseURL = "https://example.com/"
	cfg.Browser = "firefox"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported browser")
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	cfg := Defaults()
	cfg.BaseURL = "https://example.com/"
	cfg.TimeoutSeconds = -3

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://example.com/")
	t.Setenv("TARGET_DEPARTMENT", "Marketing")
	t.Setenv("HEADLESS", "true")
	t.Setenv("TIMEOUT", "25")

	cfg := Load()
	assert.Equal(t, "https://example.com/", cfg.BaseURL)
	assert.Equal(t, "Marketing", cfg.Department)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 25, cfg.TimeoutSeconds)

	// Unset variables fall through to defaults
	assert.Equal(t, "R&D", Defaults().Department)
	assert.Equal(t, "Test", cfg.FirstName)
}

func TestLoad_UnsetBaseURLStaysEmpty(t *testing.T) {
	t.Setenv("BASE_URL", "")

	cfg := Load()
	assert.Empty(t, cfg.BaseURL)
	require.Error(t, cfg.Validate())
}

func TestLoadFile_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"base_url": "https://example.com/",
		"department": "R&D",
		"first_name": "Jane",
		"timeout_seconds": 20
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", cfg.BaseURL)
	assert.Equal(t, "Jane", cfg.FirstName)
	assert.Equal(t, 20, cfg.TimeoutSeconds)
}

func TestLoadFile_EmptyPath(t *testing.T) {
	_, err := LoadFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestMergeOver_OmittedBoolsKeepBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "https://example.com/"}`), 0o644))

	fileCfg, err := LoadFile(path)
	require.NoError(t, err)

	base := Load()
	base.Headless = true
	merged := fileCfg.MergeOver(base)

	assert.Equal(t, "https://example.com/", merged.BaseURL)
	// A file that only sets base_url must not flip the failure policy or
	// any other bool away from the resolved baseline.
	assert.True(t, merged.ContinueOnError, "default policy must survive an unrelated config file")
	assert.True(t, merged.Headless)
}

func TestMergeOver_ExplicitFalseWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"continue_on_error": false, "headless": true, "department": "Sales"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fileCfg, err := LoadFile(path)
	require.NoError(t, err)

	merged := fileCfg.MergeOver(Defaults())

	assert.False(t, merged.ContinueOnError)
	assert.True(t, merged.Headless)
	assert.Equal(t, "Sales", merged.Department)
	// Omitted strings keep the base values
	assert.Equal(t, "careers", merged.CareersPath)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		BaseURL:   "https://example.com/",
		FirstName: "Jane",
	}

	merged := cfg.MergeWithDefaults(Defaults())

	// Explicit values win
	assert.Equal(t, "https://example.com/", merged.BaseURL)
	assert.Equal(t, "Jane", merged.FirstName)

	// Empty fields filled from defaults
	assert.Equal(t, "R&D", merged.Department)
	assert.Equal(t, "Automation", merged.LastName)
	assert.Equal(t, 10, merged.TimeoutSeconds)
	assert.Equal(t, "screenshots", merged.ScreenshotDir)
}

func TestCareersURL(t *testing.T) {
	cfg := Config{BaseURL: "https://example.com/", CareersPath: "careers"}
	assert.Equal(t, "https://example.com/careers", cfg.CareersURL())

	cfg.BaseURL = "https://example.com"
	assert.Equal(t, "https://example.com/careers", cfg.CareersURL())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CC_TEST_STR", "value")
	t.Setenv("CC_TEST_BOOL", "true")
	t.Setenv("CC_TEST_INT", "42")
	t.Setenv("CC_TEST_BAD_INT", "nope")

	assert.Equal(t, "value", getEnvString("CC_TEST_STR", "default"))
	assert.Equal(t, "default", getEnvString("CC_TEST_MISSING", "default"))
	assert.True(t, getEnvBool("CC_TEST_BOOL", false))
	assert.Equal(t, 42, getEnvInt("CC_TEST_INT", 1))
	assert.Equal(t, 7, getEnvInt("CC_TEST_BAD_INT", 7))
}
