package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/careers-check/internal/browser"
	"github.com/jonathan/careers-check/internal/config"
	"github.com/jonathan/careers-check/internal/observability"
	"github.com/jonathan/careers-check/internal/report"
	"github.com/jonathan/careers-check/internal/workflow"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the careers walkthrough end-to-end",
	Long: `Opens the configured site, navigates to the careers page, filters by
department, and fills the application form for every open position without
submitting it. Positions that are no longer available are skipped.

Configuration is resolved from environment variables (and .env), then an
optional JSON config file via --config, then command-line flags.`,
	RunE: runWorkflowCmd,
}

var (
	runConfigPath      string
	runBaseURL         string
	runDepartment      string
	runBrowser         string
	runHeadless        bool
	runTimeoutSeconds  int
	runFirstName       string
	runLastName        string
	runEmail           string
	runPhone           string
	runCVPath          string
	runReportDir       string
	runScreenshotDir   string
	runContinueOnError bool
	runVerbose         bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runBaseURL, "base-url", "u", "", "Base URL of the site under check (defaults to BASE_URL env var)")
	runCommand.Flags().StringVarP(&runDepartment, "department", "d", "", "Department filter to apply (defaults to TARGET_DEPARTMENT env var)")
	runCommand.Flags().StringVarP(&runBrowser, "browser", "b", "", "Browser to drive: chrome, chromium, edge, headless-shell")
	runCommand.Flags().BoolVar(&runHeadless, "headless", false, "Run the browser headless")
	runCommand.Flags().IntVarP(&runTimeoutSeconds, "timeout", "t", 0, "Explicit-wait budget per element, in seconds")
	runCommand.Flags().StringVar(&runFirstName, "first-name", "", "Applicant first name")
	runCommand.Flags().StringVar(&runLastName, "last-name", "", "Applicant last name")
	runCommand.Flags().StringVar(&runEmail, "email", "", "Applicant email")
	runCommand.Flags().StringVar(&runPhone, "phone", "", "Applicant phone")
	runCommand.Flags().StringVar(&runCVPath, "cv", "", "Path to the CV PDF attached to every application")
	runCommand.Flags().StringVar(&runReportDir, "report-dir", "", "Directory for the structured run report")
	runCommand.Flags().StringVar(&runScreenshotDir, "screenshot-dir", "", "Directory for failure screenshots")
	runCommand.Flags().BoolVar(&runContinueOnError, "continue-on-error", true, "Keep attempting remaining positions after one fails to fill")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress and the run summary")

	rootCmd.AddCommand(runCommand)
}

func runWorkflowCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Step 1: environment (and .env) is the baseline
	cfg := config.Load()

	// Step 2: config file overrides environment
	if runConfigPath != "" {
		fileCfg, err := config.LoadFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeOver(cfg)
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 3: CLI flags take priority, but only when explicitly set
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = runBaseURL
	}
	if cmd.Flags().Changed("department") {
		cfg.Department = runDepartment
	}
	if cmd.Flags().Changed("browser") {
		cfg.Browser = runBrowser
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = runHeadless
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = runTimeoutSeconds
	}
	if cmd.Flags().Changed("first-name") {
		cfg.FirstName = runFirstName
	}
	if cmd.Flags().Changed("last-name") {
		cfg.LastName = runLastName
	}
	if cmd.Flags().Changed("email") {
		cfg.Email = runEmail
	}
	if cmd.Flags().Changed("phone") {
		cfg.Phone = runPhone
	}
	if cmd.Flags().Changed("cv") {
		cfg.CVPath = runCVPath
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir = runReportDir
	}
	if cmd.Flags().Changed("screenshot-dir") {
		cfg.ScreenshotDir = runScreenshotDir
	}
	if cmd.Flags().Changed("continue-on-error") {
		cfg.ContinueOnError = runContinueOnError
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 4: fill remaining gaps and validate. A bad environment aborts
	// here, before any browser starts.
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	session, err := browser.NewSession(ctx, &cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	rep, err := workflow.Run(ctx, workflow.NewDeps(session, &cfg), &cfg)
	if err != nil {
		return err
	}

	reportPath, err := rep.Write(cfg.ReportDir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report written: %s\n", reportPath)

	// Schema validation is skipped when the binary runs outside the repo
	// and the schema file is not alongside it.
	if report.ResolveSchemaPath(report.SchemaRelativePath) != "" {
		if err := report.ValidateFile(reportPath); err != nil {
			return fmt.Errorf("run report failed validation: %w", err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRunSummary(rep)
	}

	if rep.HasFailures() && !cfg.ContinueOnError {
		return fmt.Errorf("run stopped after a position failed to fill")
	}
	if rep.HasFailures() {
		return fmt.Errorf("%d of %d positions failed to fill", rep.Totals.Failed, len(rep.Positions))
	}

	return nil
}
