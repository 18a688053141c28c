package remote

import (
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/bookline/pkg/booking"
	"github.com/entrhq/bookline/pkg/logging"
)

// Session is one connected provider session, exclusively owned by a single
// booking attempt. It is never shared across attempts and is torn down
// unconditionally when the attempt ends.
type Session struct {
	id      string
	browser playwright.Browser
	page    *pageHandle
	log     *logging.Logger

	releaseOnce sync.Once
}

func newSession(id string, browser playwright.Browser, page playwright.Page, log *logging.Logger) *Session {
	return &Session{
		id:      id,
		browser: browser,
		page:    &pageHandle{page: page},
		log:     log,
	}
}

// ID returns the provider session id, used to build the replay reference.
func (s *Session) ID() string {
	return s.id
}

// Page returns the session's page handle.
func (s *Session) Page() booking.Page {
	return s.page
}

// Release closes the page and the browser connection, ignoring individual
// close errors so cleanup always completes. It runs at most once; extra
// calls are no-ops.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		_ = s.page.page.Close()
		_ = s.browser.Close()
		s.log.Infof("provider session %s released", s.id)
	})
}

// pageHandle adapts a Playwright page to the booking.Page surface.
type pageHandle struct {
	page playwright.Page
}

// Goto navigates to url, waiting for the requested load signal within the
// timeout.
func (p *pageHandle) Goto(url string, opts booking.GotoOptions) error {
	pwOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		pwOpts.WaitUntil = &waitUntil
	}

	if opts.Timeout > 0 {
		pwOpts.Timeout = playwright.Float(float64(opts.Timeout.Milliseconds()))
	}

	_, err := p.page.Goto(url, pwOpts)
	return err
}

// Title returns the current page title.
func (p *pageHandle) Title() (string, error) {
	return p.page.Title()
}

// Count returns how many elements match the selector.
func (p *pageHandle) Count(selector string) (int, error) {
	return p.page.Locator(selector).Count()
}

// Settle blocks for a fixed delay to let client-side rendering catch up.
func (p *pageHandle) Settle(d time.Duration) {
	p.page.WaitForTimeout(float64(d.Milliseconds()))
}

// Screenshot captures the current viewport to path.
func (p *pageHandle) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}
