// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// SupportedBrowsers lists the browser kinds the session factory can drive.
// All of them speak the Chrome DevTools Protocol; anything else is rejected
// at validation time rather than failing mid-run.
var SupportedBrowsers = []string{"chrome", "chromium", "edge", "headless-shell"}

// Config represents the run configuration. Values are resolved once at
// process start from (in increasing priority) defaults, environment
// variables, an optional JSON config file, and CLI flags. The workflow
// only ever reads from the resolved struct, never from the environment.
type Config struct {
	// Target site
	BaseURL     string `json:"base_url,omitempty" validate:"required,url"`
	CareersPath string `json:"careers_path,omitempty"` // Path suffix of the careers page ("careers")
	Department  string `json:"department,omitempty" validate:"required"`

	// Applicant fixture data
	FirstName string `json:"first_name,omitempty" validate:"required"`
	LastName  string `json:"last_name,omitempty" validate:"required"`
	Email     string `json:"email,omitempty" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"required"`
	LinkedIn  string `json:"linkedin,omitempty"` // Optional profile URL
	CVPath    string `json:"cv_path,omitempty" validate:"required"`

	// Browser
	Browser        string `json:"browser,omitempty"`
	Headless       bool   `json:"headless,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Explicit-wait budget per element

	// Output
	ScreenshotDir string `json:"screenshot_dir,omitempty"`
	ReportDir     string `json:"report_dir,omitempty"`

	// Behavior
	ContinueOnError bool   `json:"continue_on_error,omitempty"` // Keep attempting positions after one fill fails
	SubmitPattern   string `json:"submit_pattern,omitempty"`    // URL substring identifying an application submission request
	Verbose         bool   `json:"verbose,omitempty"`
}

// Defaults returns the built-in default configuration. BaseURL deliberately
// has no default: an unset base URL must abort the run before any
// navigation happens.
func Defaults() Config {
	return Config{
		CareersPath:     "careers",
		Department:      "R&D",
		FirstName:       "Test",
		LastName:        "Automation",
		Email:           "test.automation@example.com",
		Phone:           "+1234567890",
		CVPath:          "example_cv.pdf",
		Browser:         "chrome",
		TimeoutSeconds:  10,
		ScreenshotDir:   "screenshots",
		ReportDir:       "reports",
		ContinueOnError: true,
		SubmitPattern:   "greenhouse.io/applications",
	}
}

// Load resolves configuration from environment variables on top of the
// built-in defaults.
func Load() Config {
	d := Defaults()
	return Config{
		BaseURL:         getEnvString("BASE_URL", ""),
		CareersPath:     getEnvString("CAREERS_PATH", d.CareersPath),
		Department:      getEnvString("TARGET_DEPARTMENT", d.Department),
		FirstName:       getEnvString("FIRST_NAME", d.FirstName),
		LastName:        getEnvString("LAST_NAME", d.LastName),
		Email:           getEnvString("EMAIL", d.Email),
		Phone:           getEnvString("PHONE", d.Phone),
		LinkedIn:        getEnvString("LINKEDIN_URL", ""),
		CVPath:          getEnvString("CV_FILE_PATH", d.CVPath),
		Browser:         getEnvString("BROWSER", d.Browser),
		Headless:        getEnvBool("HEADLESS", false),
		TimeoutSeconds:  getEnvInt("TIMEOUT", d.TimeoutSeconds),
		ScreenshotDir:   getEnvString("SCREENSHOT_DIR", d.ScreenshotDir),
		ReportDir:       getEnvString("REPORT_DIR", d.ReportDir),
		ContinueOnError: getEnvBool("CONTINUE_ON_ERROR", d.ContinueOnError),
		SubmitPattern:   getEnvString("SUBMIT_PATTERN", d.SubmitPattern),
	}
}

// FileConfig holds configuration overrides read from a JSON file. Bool
// fields are pointers so that an omitted key is distinguishable from an
// explicit false and leaves the base value untouched.
type FileConfig struct {
	BaseURL     string `json:"base_url,omitempty"`
	CareersPath string `json:"careers_path,omitempty"`
	Department  string `json:"department,omitempty"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	CVPath    string `json:"cv_path,omitempty"`

	Browser        string `json:"browser,omitempty"`
	Headless       *bool  `json:"headless,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`

	ScreenshotDir string `json:"screenshot_dir,omitempty"`
	ReportDir     string `json:"report_dir,omitempty"`

	ContinueOnError *bool  `json:"continue_on_error,omitempty"`
	SubmitPattern   string `json:"submit_pattern,omitempty"`
	Verbose         *bool  `json:"verbose,omitempty"`
}

// LoadFile loads configuration overrides from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeOver returns base with every field that the file set applied on
// top of it. Fields the file omitted keep the base values, including the
// bools.
func (f *FileConfig) MergeOver(base Config) Config {
	result := base

	if f.BaseURL != "" {
		result.BaseURL = f.BaseURL
	}
	if f.CareersPath != "" {
		result.CareersPath = f.CareersPath
	}
	if f.Department != "" {
		result.Department = f.Department
	}
	if f.FirstName != "" {
		result.FirstName = f.FirstName
	}
	if f.LastName != "" {
		result.LastName = f.LastName
	}
	if f.Email != "" {
		result.Email = f.Email
	}
	if f.Phone != "" {
		result.Phone = f.Phone
	}
	if f.LinkedIn != "" {
		result.LinkedIn = f.LinkedIn
	}
	if f.CVPath != "" {
		result.CVPath = f.CVPath
	}
	if f.Browser != "" {
		result.Browser = f.Browser
	}
	if f.TimeoutSeconds != 0 {
		result.TimeoutSeconds = f.TimeoutSeconds
	}
	if f.ScreenshotDir != "" {
		result.ScreenshotDir = f.ScreenshotDir
	}
	if f.ReportDir != "" {
		result.ReportDir = f.ReportDir
	}
	if f.SubmitPattern != "" {
		result.SubmitPattern = f.SubmitPattern
	}

	if f.Headless != nil {
		result.Headless = *f.Headless
	}
	if f.ContinueOnError != nil {
		result.ContinueOnError = *f.ContinueOnError
	}
	if f.Verbose != nil {
		result.Verbose = *f.Verbose
	}

	return result
}

// Timeout returns the per-element explicit-wait budget as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CareersURL returns the absolute URL of the careers page.
func (c *Config) CareersURL() string {
	base := c.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/" + c.CareersPath
}

// Validate checks that the configuration has valid values. A failure here
// is an environment error: the run must abort before a browser session is
// created.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	supported := false
	for _, b := range SupportedBrowsers {
		if c.Browser == b {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("config error: unsupported browser %q (supported: %v)", c.Browser, SupportedBrowsers)
	}

	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be positive")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bools are never filled here: their defaults are carried by
// Load and flag defaults, so a false at this point is an explicit false.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.CareersPath == "" {
		result.CareersPath = defaults.CareersPath
	}
	if result.Department == "" {
		result.Department = defaults.Department
	}
	if result.FirstName == "" {
		result.FirstName = defaults.FirstName
	}
	if result.LastName == "" {
		result.LastName = defaults.LastName
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.Phone == "" {
		result.Phone = defaults.Phone
	}
	if result.LinkedIn == "" {
		result.LinkedIn = defaults.LinkedIn
	}
	if result.CVPath == "" {
		result.CVPath = defaults.CVPath
	}
	if result.Browser == "" {
		result.Browser = defaults.Browser
	}
	if result.ScreenshotDir == "" {
		result.ScreenshotDir = defaults.ScreenshotDir
	}
	if result.ReportDir == "" {
		result.ReportDir = defaults.ReportDir
	}
	if result.SubmitPattern == "" {
		result.SubmitPattern = defaults.SubmitPattern
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
