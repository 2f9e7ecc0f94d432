package pages

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/careers-check/internal/browser"
	"github.com/jonathan/careers-check/internal/config"
)

// Careers is the page object for the careers listing page.
type Careers struct {
	session *browser.Session
	cfg     *config.Config
}

func NewCareers(session *browser.Session, cfg *config.Config) *Careers {
	return &Careers{session: session, cfg: cfg}
}

// SelectDepartment picks the entry matching name in the department filter.
// Returns FilterNotAvailableError when the control or the entry is absent.
func (c *Careers) SelectDepartment(ctx context.Context, name string) error {
	if err := c.session.WaitVisible(DepartmentSelect, 0); err != nil {
		return &FilterNotAvailableError{Department: name, Cause: err}
	}

	hasEntry, err := c.hasFilterEntry(name)
	if err != nil {
		return &FilterNotAvailableError{Department: name, Cause: err}
	}
	if !hasEntry {
		return &FilterNotAvailableError{Department: name}
	}

	if err := c.session.SelectOption(DepartmentSelect, name); err != nil {
		return &FilterNotAvailableError{Department: name, Cause: err}
	}

	// Give the filtered list a moment to re-render. An empty result set is
	// legitimate, so expiry here is not an error.
	if err := c.session.WaitCondition("filtered rows to render", rowsRenderedExpr(name), 3*time.Second); err != nil {
		log.Printf("[CAREERS] No rows rendered for department %q", name)
	}

	log.Printf("[CAREERS] Selected department: %s", name)
	return nil
}

// rowsRenderedExpr builds the predicate for at least one listing row of
// the department being in the DOM. Built from the shared row locator so a
// selector change cannot desynchronize the wait from the parse.
func rowsRenderedExpr(department string) string {
	return fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).some(r => r.getAttribute('data-department') === %q)`,
		JobRow, department,
	)
}

// hasFilterEntry checks the filter options for the department label.
func (c *Careers) hasFilterEntry(name string) (bool, error) {
	expr := fmt.Sprintf(
		`(() => {
			const sel = document.querySelector(%q);
			if (!sel) return false;
			return Array.from(sel.options).some(o => o.text.trim() === %q);
		})()`,
		DepartmentSelect, name,
	)
	return c.session.EvaluateBool(expr)
}

// OpenPositions captures one snapshot of the filtered listing and returns
// the positions it contains. The snapshot is not re-queried mid-iteration:
// the list the workflow walks is fixed at this moment.
func (c *Careers) OpenPositions(ctx context.Context) ([]Position, error) {
	html, err := c.session.OuterHTML()
	if err != nil {
		return nil, &NavigationError{
			URL:     c.cfg.CareersURL(),
			Message: "could not capture careers page snapshot",
			Cause:   err,
		}
	}

	positions, err := ParsePositions(html, c.cfg.Department)
	if err != nil {
		return nil, err
	}

	log.Printf("[CAREERS] Snapshot holds %d %s positions", len(positions), c.cfg.Department)
	return positions, nil
}
