package pages

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/careers-check/internal/browser"
	"github.com/jonathan/careers-check/internal/config"
)

// Applicant holds the fixture data typed into every application form.
type Applicant struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	LinkedIn  string // optional
}

// Form is the page object for the per-position application form. It
// deliberately exposes no submit operation: filling without submitting is
// the contract, and the type system enforces it.
type Form struct {
	session *browser.Session
	cfg     *config.Config
}

func NewForm(session *browser.Session, cfg *config.Config) *Form {
	return &Form{session: session, cfg: cfg}
}

// Open activates a position's apply affordance and waits for the form
// modal. Returns PositionRemovedError when the position is flagged removed
// in the snapshot, or when the affordance has disappeared since.
func (f *Form) Open(ctx context.Context, pos Position) error {
	if pos.Removed || !pos.HasApply {
		return &PositionRemovedError{Title: pos.Title}
	}

	applySel := fmt.Sprintf(`a[href=%q]`, pos.ApplyURL)
	if err := f.session.Click(applySel); err != nil {
		// The listing may have changed server-side between snapshot and
		// click. Check the distinguishing signal before deciding.
		if gone, checkErr := f.positionGone(applySel); checkErr == nil && gone {
			return &PositionRemovedError{Title: pos.Title}
		}
		return &ElementNotFoundError{
			Selector:    applySel,
			Description: fmt.Sprintf("apply link for %q", pos.Title),
			Cause:       err,
		}
	}

	if err := f.session.WaitVisible(FormContainer, 0); err != nil {
		return &ElementNotFoundError{
			Selector:    FormContainer,
			Description: fmt.Sprintf("application form for %q", pos.Title),
			Cause:       err,
		}
	}

	log.Printf("[FORM] Opened application form for %q", pos.Title)
	return nil
}

// positionGone reports whether the apply affordance is absent or the card
// now carries the removed indicator.
func (f *Form) positionGone(applySel string) (bool, error) {
	expr := fmt.Sprintf(
		`(() => {
			if (!document.querySelector(%q)) return true;
			const notice = document.querySelector(%q);
			return !!notice && notice.offsetParent !== null;
		})()`,
		applySel, RemovedNotice,
	)
	return f.session.EvaluateBool(expr)
}

// Fill types the applicant data into the form fields. Each field gets its
// own explicit wait; the first failure wins and is reported as a FillError
// for that field.
func (f *Form) Fill(ctx context.Context, a Applicant) error {
	fields := []struct {
		name     string
		selector string
		value    string
		optional bool
	}{
		{"first name", FirstNameInput, a.FirstName, false},
		{"last name", LastNameInput, a.LastName, false},
		{"email", EmailInput, a.Email, false},
		{"phone", PhoneInput, a.Phone, false},
		{"linkedin", LinkedInInput, a.LinkedIn, true},
	}

	for _, field := range fields {
		if field.value == "" && field.optional {
			continue
		}
		if err := f.session.SendKeys(field.selector, field.value); err != nil {
			if field.optional {
				log.Printf("[FORM] Optional field %s not fillable: %v", field.name, err)
				continue
			}
			return &FillError{Field: field.name, Cause: err}
		}
	}

	log.Printf("[FORM] Filled applicant fields for %s %s", a.FirstName, a.LastName)
	return nil
}

// AttachCV uploads the CV file into the resume input. The path is checked
// on disk first so a missing file reads as a file-not-found failure for
// this position rather than an opaque browser error.
func (f *Form) AttachCV(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &FillError{Field: "cv", Cause: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return &FillError{Field: "cv", Cause: err}
	}

	if err := f.session.Upload(CVUploadInput, abs); err != nil {
		return &FillError{Field: "cv", Cause: err}
	}

	log.Printf("[FORM] Attached CV: %s", abs)
	return nil
}

// Close dismisses the form modal so the next position can be handled.
// Falls back to an Escape keydown when the close button is not reachable.
func (f *Form) Close(ctx context.Context) error {
	if err := f.session.Click(CloseModalBtn); err != nil {
		log.Printf("[FORM] Close button click failed, sending Escape: %v", err)
		if evalErr := f.session.Evaluate(
			`document.dispatchEvent(new KeyboardEvent('keydown', {key: 'Escape'}))`,
		); evalErr != nil {
			return &ElementNotFoundError{
				Selector:    CloseModalBtn,
				Description: "close form modal button",
				Cause:       err,
			}
		}
	}

	// Wait briefly for the modal to leave; a stuck modal would swallow the
	// next position's clicks.
	if err := f.session.WaitHidden(FormContainer, 5*time.Second); err != nil {
		return &ElementNotFoundError{
			Selector:    FormContainer,
			Description: "form modal to close",
			Cause:       err,
		}
	}
	return nil
}
