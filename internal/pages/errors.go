package pages

import "fmt"

// NavigationError represents a page that did not reach a usable state.
type NavigationError struct {
	URL     string
	Message string
	Cause   error
}

func (e *NavigationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("navigation error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("navigation error for %s: %s", e.URL, e.Message)
}

func (e *NavigationError) Unwrap() error {
	return e.Cause
}

// ElementNotFoundError represents an expected element that is absent,
// which usually signals a site layout change.
type ElementNotFoundError struct {
	Selector    string
	Description string
	Cause       error
}

func (e *ElementNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("element not found: %s (%s): %v", e.Description, e.Selector, e.Cause)
	}
	return fmt.Sprintf("element not found: %s (%s)", e.Description, e.Selector)
}

func (e *ElementNotFoundError) Unwrap() error {
	return e.Cause
}

// FilterNotAvailableError represents a department filter with no entry
// matching the requested department.
type FilterNotAvailableError struct {
	Department string
	Cause      error
}

func (e *FilterNotAvailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("department filter has no entry %q: %v", e.Department, e.Cause)
	}
	return fmt.Sprintf("department filter has no entry %q", e.Department)
}

func (e *FilterNotAvailableError) Unwrap() error {
	return e.Cause
}

// PositionRemovedError signals that a position stopped accepting
// applications between snapshot and interaction. The workflow treats it as
// a skip, not a failure.
type PositionRemovedError struct {
	Title string
}

func (e *PositionRemovedError) Error() string {
	return fmt.Sprintf("position %q is no longer available", e.Title)
}

// FillError represents a form field that could not be filled or a CV that
// could not be attached. Scoped to one position; never aborts the run by
// itself.
type FillError struct {
	Field string
	Cause error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("failed to fill %s: %v", e.Field, e.Cause)
}

func (e *FillError) Unwrap() error {
	return e.Cause
}
