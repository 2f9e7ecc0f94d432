package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scripts built from selectors must embed the shared locator constants, so
// a locator change propagates everywhere in one edit.

func TestCookieDismissScript_UsesLocators(t *testing.T) {
	assert.Contains(t, cookieDismissScript, CookieBanner)
	assert.Contains(t, cookieDismissScript, CookieAcceptButton)
}

func TestRowsRenderedExpr_UsesJobRowLocator(t *testing.T) {
	expr := rowsRenderedExpr("R&D")
	assert.Contains(t, expr, JobRow)
	assert.Contains(t, expr, "R&D")

	// The department label is quoted, not concatenated raw.
	assert.True(t, strings.Contains(expr, `"R&D"`) || strings.Contains(expr, `'R&D'`))
}
