package pages

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/careers-check/internal/browser"
	"github.com/jonathan/careers-check/internal/config"
)

// cookieDismissScript accepts or removes the consent banner in one pass so
// it cannot intercept footer clicks. Best-effort: a page without the
// banner is already in the state we want.
var cookieDismissScript = fmt.Sprintf(`(() => {
	const banner = document.querySelector(%q);
	if (!banner || !banner.offsetParent) {
		return true;
	}
	const accept = document.querySelector(%q);
	if (accept) {
		accept.click();
		return true;
	}
	banner.style.display = 'none';
	if (banner.parentNode) {
		banner.parentNode.removeChild(banner);
	}
	return true;
})()`, CookieBanner, CookieAcceptButton)

// Home is the page object for the marketing site landing page.
type Home struct {
	session *browser.Session
	cfg     *config.Config
}

func NewHome(session *browser.Session, cfg *config.Config) *Home {
	return &Home{session: session, cfg: cfg}
}

// Open navigates to the landing URL and dismisses the cookie banner.
func (h *Home) Open(ctx context.Context) error {
	if err := h.session.Navigate(h.cfg.BaseURL); err != nil {
		return &NavigationError{
			URL:     h.cfg.BaseURL,
			Message: "home page did not load",
			Cause:   err,
		}
	}

	if err := h.session.Evaluate(cookieDismissScript); err != nil {
		// Not fatal; the click path below scrolls past the banner anyway.
		log.Printf("[HOME] Cookie banner handling failed: %v", err)
	}

	return nil
}

// GoToCareers scrolls to the footer, activates the careers link, and waits
// for the careers page URL. The click is retried: footers on long pages
// re-render as lazy content loads in.
func (h *Home) GoToCareers(ctx context.Context) error {
	err := browser.Retry(ctx, 3, time.Second, func() error {
		if err := h.session.ScrollToBottom(); err != nil {
			return err
		}
		if err := h.session.Click(FooterCareersLink); err != nil {
			return err
		}
		return h.session.WaitURLContains(h.cfg.CareersPath, h.session.Timeout())
	})
	if err != nil {
		return &ElementNotFoundError{
			Selector:    FooterCareersLink,
			Description: "careers link in footer",
			Cause:       err,
		}
	}

	log.Printf("[HOME] Navigated to careers page")
	return nil
}
