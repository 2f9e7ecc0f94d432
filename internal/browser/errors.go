// Package browser provides the managed browser session and low-level page
// actions built on chromedp.
package browser

import (
	"fmt"
	"time"
)

// SessionError represents a failure to start or drive the browser process.
// This is an environment error: the run cannot continue without a session.
type SessionError struct {
	Message string
	Cause   error
}

func (e *SessionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("session error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("session error: %s", e.Message)
}

func (e *SessionError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents an explicit wait that expired before its
// condition became true.
type TimeoutError struct {
	Condition string
	Timeout   time.Duration
	Cause     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.Condition)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// ActionError represents a failed page interaction (click, type, upload).
type ActionError struct {
	Op       string
	Selector string
	Cause    error
}

func (e *ActionError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("%s failed for %q: %v", e.Op, e.Selector, e.Cause)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}
