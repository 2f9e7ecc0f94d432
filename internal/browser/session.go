package browser

import (
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/careers-check/internal/config"
)

// edgeCandidates are the usual msedge binary names, tried in order when the
// configured browser is "edge".
var edgeCandidates = []string{"msedge", "microsoft-edge", "microsoft-edge-stable"}

// Session wraps a chromedp browser context. It is a scoped resource: once
// NewSession returns successfully, Close must be called on every exit path.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
	timeout time.Duration
	guard   *RequestGuard
	verbose bool
}

// NewSession starts a browser according to the configuration and returns a
// ready session. The returned session observes outgoing requests so that
// the run report can prove no submission request was ever made.
func NewSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	opts := allocatorOptions(cfg)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	s := &Session{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
		timeout: cfg.Timeout(),
		verbose: cfg.Verbose,
	}

	s.guard = attachGuard(browserCtx, cfg.SubmitPattern)

	// Starting the browser process happens on the first Run. Do it eagerly
	// so a missing binary surfaces here, not in the middle of the workflow.
	if err := chromedp.Run(browserCtx, network.Enable()); err != nil {
		s.Close()
		return nil, &SessionError{Message: "failed to start browser", Cause: err}
	}

	if cfg.Verbose {
		log.Printf("[SESSION] Started %s (headless: %v)", cfg.Browser, cfg.Headless)
	}

	return s, nil
}

// allocatorOptions builds the exec allocator options for the configured
// browser kind.
func allocatorOptions(cfg *config.Config) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless || cfg.Browser == "headless-shell"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("incognito", true),
		chromedp.WindowSize(1920, 1080),
	)

	if cfg.Browser == "edge" {
		for _, name := range edgeCandidates {
			if path, err := exec.LookPath(name); err == nil {
				opts = append(opts, chromedp.ExecPath(path))
				break
			}
		}
	}

	return opts
}

// Guard returns the request guard attached to this session.
func (s *Session) Guard() *RequestGuard {
	return s.guard
}

// Timeout returns the per-action explicit-wait budget.
func (s *Session) Timeout() time.Duration {
	return s.timeout
}

// Close releases the browser process and all derived contexts. Safe to call
// more than once.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}

// run executes chromedp actions against the session with a bounded wait.
// Deadline expiry is reported as a TimeoutError so callers can distinguish
// slow pages from hard failures.
func (s *Session) run(condition string, timeout time.Duration, actions ...chromedp.Action) error {
	if timeout <= 0 {
		timeout = s.timeout
	}
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	err := chromedp.Run(ctx, actions...)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Condition: condition, Timeout: timeout, Cause: err}
	}
	return err
}

// Screenshot captures the visible viewport to a PNG file under dir. The
// directory is created if needed. Returns the written path.
func (s *Session) Screenshot(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ActionError{Op: "screenshot", Cause: err}
	}

	var buf []byte
	if err := s.run("screenshot", s.timeout, chromedp.CaptureScreenshot(&buf)); err != nil {
		return "", &ActionError{Op: "screenshot", Cause: err}
	}

	path := filepath.Join(dir, name+"_"+time.Now().Format("20060102-150405")+".png")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", &ActionError{Op: "screenshot", Cause: err}
	}

	if s.verbose {
		log.Printf("[SESSION] Screenshot saved: %s", path)
	}
	return path, nil
}
