package browser

import (
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// WaitVisible blocks until the element is visible or the timeout expires.
// A zero timeout uses the session default.
func (s *Session) WaitVisible(selector string, timeout time.Duration) error {
	return s.run(fmt.Sprintf("%s to be visible", selector), timeout,
		chromedp.WaitVisible(selector),
	)
}

// WaitHidden blocks until no visible element matches the selector.
func (s *Session) WaitHidden(selector string, timeout time.Duration) error {
	return s.run(fmt.Sprintf("%s to disappear", selector), timeout,
		chromedp.WaitNotVisible(selector),
	)
}

// WaitURLContains polls the browser location until it contains the given
// fragment. Used to confirm in-page navigations actually happened.
func (s *Session) WaitURLContains(fragment string, timeout time.Duration) error {
	expr := fmt.Sprintf(`window.location.href.toLowerCase().includes(%q)`, fragment)
	return s.run(fmt.Sprintf("URL to contain %q", fragment), timeout,
		chromedp.Poll(expr, nil, chromedp.WithPollingInterval(200*time.Millisecond)),
	)
}

// WaitCondition polls an arbitrary JavaScript predicate until it returns
// true or the timeout expires.
func (s *Session) WaitCondition(description, expression string, timeout time.Duration) error {
	return s.run(description, timeout,
		chromedp.Poll(expression, nil, chromedp.WithPollingInterval(200*time.Millisecond)),
	)
}

// IsVisible reports whether an element matching the selector is currently
// rendered. It answers immediately instead of waiting, so absence is cheap
// to detect.
func (s *Session) IsVisible(selector string) (bool, error) {
	expr := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return !!el && el.offsetParent !== null; })()`,
		selector,
	)
	var visible bool
	if err := s.run("visibility check", s.timeout, chromedp.Evaluate(expr, &visible)); err != nil {
		return false, &ActionError{Op: "visibility check", Selector: selector, Cause: err}
	}
	return visible, nil
}
