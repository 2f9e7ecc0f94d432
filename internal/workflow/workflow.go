// Package workflow orchestrates the end-to-end careers walkthrough:
// open home, navigate to careers, filter by department, snapshot the
// listing, and fill (never submit) the application form for each open
// position.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/careers-check/internal/browser"
	"github.com/jonathan/careers-check/internal/config"
	"github.com/jonathan/careers-check/internal/pages"
	"github.com/jonathan/careers-check/internal/report"
)

// Site navigates from the landing page to the careers page.
type Site interface {
	Open(ctx context.Context) error
	GoToCareers(ctx context.Context) error
}

// Listing filters the careers page and snapshots the positions it shows.
type Listing interface {
	SelectDepartment(ctx context.Context, name string) error
	OpenPositions(ctx context.Context) ([]pages.Position, error)
}

// ApplicationForm drives one position's application form. It has no
// submit operation.
type ApplicationForm interface {
	Open(ctx context.Context, pos pages.Position) error
	Fill(ctx context.Context, a pages.Applicant) error
	AttachCV(ctx context.Context, path string) error
	Close(ctx context.Context) error
}

// Screenshotter captures failure evidence. Optional.
type Screenshotter interface {
	Screenshot(dir, name string) (string, error)
}

// SubmissionObserver reports submission requests seen during the run.
// Optional; a nil observer records an empty list.
type SubmissionObserver interface {
	Submissions() []string
}

// Deps are the collaborators the workflow drives. Swapping sites or
// layouts means swapping these implementations, not the workflow.
type Deps struct {
	Site    Site
	Listing Listing
	Form    ApplicationForm
	Shots   Screenshotter
	Guard   SubmissionObserver
}

// NewDeps binds the page objects for the real site to a browser session.
func NewDeps(session *browser.Session, cfg *config.Config) Deps {
	return Deps{
		Site:    pages.NewHome(session, cfg),
		Listing: pages.NewCareers(session, cfg),
		Form:    pages.NewForm(session, cfg),
		Shots:   session,
		Guard:   session.Guard(),
	}
}

// Run performs the scenario exactly once. Setup and navigation errors
// abort the run; per-position problems are recorded in the report and,
// with ContinueOnError set, never stop the remaining positions.
func Run(ctx context.Context, deps Deps, cfg *config.Config) (*report.Report, error) {
	rep := report.New(cfg.BaseURL, cfg.Department)

	log.Printf("[WORKFLOW] Opening %s", cfg.BaseURL)
	if err := deps.Site.Open(ctx); err != nil {
		return nil, err
	}

	if err := deps.Site.GoToCareers(ctx); err != nil {
		return nil, err
	}

	if err := deps.Listing.SelectDepartment(ctx, cfg.Department); err != nil {
		return nil, err
	}

	positions, err := deps.Listing.OpenPositions(ctx)
	if err != nil {
		return nil, err
	}

	applicant := pages.Applicant{
		FirstName: cfg.FirstName,
		LastName:  cfg.LastName,
		Email:     cfg.Email,
		Phone:     cfg.Phone,
		LinkedIn:  cfg.LinkedIn,
	}

	for i, pos := range positions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Printf("[WORKFLOW] Position %d/%d: %s", i+1, len(positions), pos.Title)
		result := applyTo(ctx, deps, cfg, pos, applicant)
		rep.Add(result)

		if result.State == report.StateFailed && !cfg.ContinueOnError {
			log.Printf("[WORKFLOW] Stopping after failure (continue-on-error disabled)")
			break
		}
	}

	var submissions []string
	if deps.Guard != nil {
		submissions = deps.Guard.Submissions()
	}
	rep.Finish(submissions)

	return rep, nil
}

// applyTo moves one position from discovered to a terminal state:
// skipped when removed, filled on success, failed otherwise.
func applyTo(ctx context.Context, deps Deps, cfg *config.Config, pos pages.Position, a pages.Applicant) report.PositionResult {
	result := report.PositionResult{Title: pos.Title, URL: pos.ApplyURL}

	// Snapshot already says removed: skip without touching the form, so
	// no field is ever written for a withdrawn listing.
	if pos.Removed || !pos.HasApply {
		log.Printf("[WORKFLOW] Skipping %q: no longer accepting applications", pos.Title)
		result.State = report.StateSkippedRemoved
		result.Reason = "position removed"
		return result
	}

	if err := deps.Form.Open(ctx, pos); err != nil {
		var removedErr *pages.PositionRemovedError
		if errors.As(err, &removedErr) {
			// Listing changed between snapshot and click. Expected,
			// recoverable, not a failure.
			log.Printf("[WORKFLOW] Skipping %q: removed after snapshot", pos.Title)
			result.State = report.StateSkippedRemoved
			result.Reason = "position removed"
			return result
		}
		return failed(deps, cfg, result, "open form", err)
	}

	if err := deps.Form.Fill(ctx, a); err != nil {
		closeQuietly(ctx, deps.Form, pos.Title)
		return failed(deps, cfg, result, "fill fields", err)
	}

	if err := deps.Form.AttachCV(ctx, cfg.CVPath); err != nil {
		closeQuietly(ctx, deps.Form, pos.Title)
		return failed(deps, cfg, result, "attach cv", err)
	}

	// Filled, not submitted. Closing is best-effort; the outcome stands.
	closeQuietly(ctx, deps.Form, pos.Title)

	result.State = report.StateFilled
	return result
}

// failed marks the result and captures a screenshot for the report.
func failed(deps Deps, cfg *config.Config, result report.PositionResult, step string, err error) report.PositionResult {
	log.Printf("[WORKFLOW] Position %q failed at %s: %v", result.Title, step, err)
	result.State = report.StateFailed
	result.Reason = fmt.Sprintf("%s: %v", step, err)

	if deps.Shots != nil {
		name := "failed_" + sanitize(result.Title)
		if path, shotErr := deps.Shots.Screenshot(cfg.ScreenshotDir, name); shotErr == nil {
			result.Screenshot = path
		}
	}
	return result
}

func closeQuietly(ctx context.Context, form ApplicationForm, title string) {
	if err := form.Close(ctx); err != nil {
		log.Printf("[WORKFLOW] Could not close form for %q: %v", title, err)
	}
}

// sanitize turns a position title into a safe file name fragment.
func sanitize(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "position"
	}
	return sb.String()
}
