// Package pages implements the page objects for the marketing site: home
// page, careers listing, and the per-position application form. Selectors
// live here so a site layout change is a one-file fix.
package pages

// Home page
const (
	// FooterCareersLink is the careers link in the page footer.
	FooterCareersLink = `footer a[href*="careers"]`

	// CookieBanner and CookieAcceptButton belong to the OneTrust consent
	// widget that covers the footer until dismissed.
	CookieBanner       = `#onetrust-banner-sdk`
	CookieAcceptButton = `#onetrust-accept-btn-handler`
)

// Careers page
const (
	// DepartmentSelect is the department filter control.
	DepartmentSelect = `#department-filter`

	// JobRow matches one listing row; the department it belongs to is in
	// the data-department attribute.
	JobRow = `tr[data-department]`

	// JobTitleCell and ApplyLink are resolved within a row.
	JobTitleCell = `td.title`
	ApplyLink    = `td.link a[href*="careers"]`

	// RemovedNotice marks a listing that no longer accepts applications.
	RemovedNotice = `.position-closed, .position-removed`
)

// Application form
const (
	FormContainer  = `div[data-testid="modal"]`
	FirstNameInput = `input[name="first_name"]`
	LastNameInput  = `input[name="last_name"]`
	EmailInput     = `input[name="email"]`
	PhoneInput     = `input[name="phone"]`
	LinkedInInput  = `input[name="linkedin"]`
	CVUploadInput  = `input[name="resume"]`
	CloseModalBtn  = `button[aria-label="Close"]`
)

// removedText is the stable in-card indicator for a withdrawn listing,
// checked case-insensitively against the row text.
const removedText = "no longer available"
