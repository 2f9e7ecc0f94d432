package browser

import (
	"context"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// RequestGuard observes outgoing network requests and records any that look
// like an application submission. The workflow never triggers the submit
// control, and the guard turns that promise into something the report can
// assert: Submissions must be empty after every run.
type RequestGuard struct {
	mu      sync.Mutex
	pattern string
	matched []string
}

// attachGuard registers a network event listener on the browser context.
// CDP events arrive on a separate goroutine, hence the mutex.
func attachGuard(ctx context.Context, pattern string) *RequestGuard {
	g := &RequestGuard{pattern: strings.ToLower(pattern)}
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if req, ok := ev.(*network.EventRequestWillBeSent); ok {
			g.record(req.Request.Method, req.Request.URL)
		}
	})
	return g
}

func (g *RequestGuard) record(method, url string) {
	if g.pattern == "" || method != "POST" {
		return
	}
	if !strings.Contains(strings.ToLower(url), g.pattern) {
		return
	}
	g.mu.Lock()
	g.matched = append(g.matched, url)
	g.mu.Unlock()
}

// Submissions returns the URLs of observed submission requests.
func (g *RequestGuard) Submissions() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.matched))
	copy(out, g.matched)
	return out
}
