package browser

import (
	"fmt"

	"github.com/chromedp/chromedp"
)

// Navigate loads a URL and waits for the document body to be ready.
func (s *Session) Navigate(url string) error {
	err := s.run(fmt.Sprintf("page %s to load", url), s.timeout,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
	if err != nil {
		return &ActionError{Op: "navigate", Selector: url, Cause: err}
	}
	return nil
}

// Click waits for the element to become visible and clicks it.
func (s *Session) Click(selector string) error {
	err := s.run(fmt.Sprintf("%s to be clickable", selector), s.timeout,
		chromedp.WaitVisible(selector),
		chromedp.ScrollIntoView(selector),
		chromedp.Click(selector),
	)
	if err != nil {
		return &ActionError{Op: "click", Selector: selector, Cause: err}
	}
	return nil
}

// SendKeys clears the element and types the given text into it.
func (s *Session) SendKeys(selector, text string) error {
	err := s.run(fmt.Sprintf("%s to accept input", selector), s.timeout,
		chromedp.WaitVisible(selector),
		chromedp.Clear(selector),
		chromedp.SendKeys(selector, text),
	)
	if err != nil {
		return &ActionError{Op: "send keys", Selector: selector, Cause: err}
	}
	return nil
}

// Upload attaches a file to a file input. The input only needs to be
// present, not visible: upload inputs are commonly hidden behind styled
// buttons.
func (s *Session) Upload(selector, path string) error {
	err := s.run(fmt.Sprintf("%s to accept upload", selector), s.timeout,
		chromedp.WaitReady(selector),
		chromedp.SetUploadFiles(selector, []string{path}),
	)
	if err != nil {
		return &ActionError{Op: "upload", Selector: selector, Cause: err}
	}
	return nil
}

// Text returns the visible text of the first element matching the selector.
func (s *Session) Text(selector string) (string, error) {
	var text string
	err := s.run(fmt.Sprintf("%s to be visible", selector), s.timeout,
		chromedp.Text(selector, &text),
	)
	if err != nil {
		return "", &ActionError{Op: "get text", Selector: selector, Cause: err}
	}
	return text, nil
}

// OuterHTML returns the full rendered HTML of the current page.
func (s *Session) OuterHTML() (string, error) {
	var html string
	if err := s.run("document to render", s.timeout, chromedp.OuterHTML("html", &html)); err != nil {
		return "", &ActionError{Op: "capture html", Cause: err}
	}
	return html, nil
}

// CurrentURL returns the browser's current location.
func (s *Session) CurrentURL() (string, error) {
	var url string
	if err := s.run("location", s.timeout, chromedp.Location(&url)); err != nil {
		return "", &ActionError{Op: "read location", Cause: err}
	}
	return url, nil
}

// ScrollToBottom scrolls the window to the end of the document, where the
// footer lives.
func (s *Session) ScrollToBottom() error {
	err := s.run("scroll to bottom", s.timeout,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
	)
	if err != nil {
		return &ActionError{Op: "scroll", Cause: err}
	}
	return nil
}

// EvaluateBool runs a JavaScript expression and returns its boolean result.
func (s *Session) EvaluateBool(expression string) (bool, error) {
	var result bool
	if err := s.run("script", s.timeout, chromedp.Evaluate(expression, &result)); err != nil {
		return false, &ActionError{Op: "evaluate", Cause: err}
	}
	return result, nil
}

// Evaluate runs a JavaScript expression on the page, discarding the result.
func (s *Session) Evaluate(expression string) error {
	if err := s.run("script", s.timeout, chromedp.Evaluate(expression, nil)); err != nil {
		return &ActionError{Op: "evaluate", Cause: err}
	}
	return nil
}

// SelectOption selects a <select> option by its visible label and fires
// the change event the page's filter logic listens for.
func (s *Session) SelectOption(selector, label string) error {
	expr := fmt.Sprintf(
		`(() => {
			const sel = document.querySelector(%q);
			if (!sel) return false;
			const opt = Array.from(sel.options).find(o => o.text.trim() === %q);
			if (!opt) return false;
			sel.value = opt.value;
			sel.dispatchEvent(new Event('change', {bubbles: true}));
			return true;
		})()`,
		selector, label,
	)

	var selected bool
	err := s.run(fmt.Sprintf("%s to be selectable", selector), s.timeout,
		chromedp.WaitVisible(selector),
		chromedp.Evaluate(expr, &selected),
	)
	if err != nil {
		return &ActionError{Op: "select option", Selector: selector, Cause: err}
	}
	if !selected {
		return &ActionError{Op: "select option", Selector: selector,
			Cause: fmt.Errorf("no option with label %q", label)}
	}
	return nil
}
