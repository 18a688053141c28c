package remote

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/bookline/pkg/booking"
	"github.com/entrhq/bookline/pkg/logging"
)

// Config holds the automation provider credentials. Both fields are
// required before any attempt can acquire a session.
type Config struct {
	APIKey    string
	ProjectID string

	// APIBase overrides the provider endpoint (used in tests).
	APIBase string
}

// Manager acquires one remote browser session per booking attempt. It
// implements booking.SessionFactory. The Playwright driver is started
// lazily on first acquisition and shared across attempts; each acquired
// session owns its own provider session and browser connection.
type Manager struct {
	cfg    Config
	client *Client
	log    *logging.Logger

	initOnce sync.Once
	initErr  error
	pw       *playwright.Playwright
}

// NewManager creates a session manager for the given provider credentials.
// Credentials are validated at acquisition time, not here, so a manager
// can always be constructed and a misconfigured one fails each attempt
// with booking.ErrMissingCredentials. A nil logger disables tracing.
func NewManager(cfg Config, log *logging.Logger) *Manager {
	opts := []ClientOption{}
	if cfg.APIBase != "" {
		opts = append(opts, WithAPIBase(cfg.APIBase))
	}

	return &Manager{
		cfg:    cfg,
		client: NewClient(cfg.APIKey, opts...),
		log:    log,
	}
}

// initialize starts the Playwright driver once. Browsers are remote, so
// only the driver is installed, with output discarded to keep the CLI
// clean.
func (m *Manager) initialize() error {
	m.initOnce.Do(func() {
		runOpts := &playwright.RunOptions{
			SkipInstallBrowsers: true,
			Verbose:             false,
			Stdout:              io.Discard,
			Stderr:              io.Discard,
		}

		if err := playwright.Install(runOpts); err != nil {
			m.initErr = fmt.Errorf("failed to install playwright driver: %w", err)
			return
		}

		pw, err := playwright.Run(runOpts)
		if err != nil {
			m.initErr = fmt.Errorf("failed to start playwright driver: %w", err)
			return
		}
		m.pw = pw
	})
	return m.initErr
}

// Acquire opens exactly one provider session and connects a local
// automation handle to it over CDP. The returned session is exclusively
// owned by the calling attempt and must be released on every exit path.
func (m *Manager) Acquire(ctx context.Context) (booking.Session, error) {
	if m.cfg.APIKey == "" || m.cfg.ProjectID == "" {
		return nil, fmt.Errorf("browserbase api key and project id are required: %w", booking.ErrMissingCredentials)
	}

	if err := m.initialize(); err != nil {
		return nil, err
	}

	info, err := m.client.CreateSession(ctx, m.cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider session: %w", err)
	}
	m.log.Infof("provider session %s created", info.ID)

	browser, err := m.pw.Chromium.ConnectOverCDP(info.ConnectURL)
	if err != nil {
		// The orphaned provider session expires on its own; nothing local
		// to release yet.
		return nil, fmt.Errorf("failed to connect to session %s: %w", info.ID, err)
	}

	page, err := defaultPage(browser)
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("failed to open page on session %s: %w", info.ID, err)
	}

	m.log.Infof("connected to provider session %s", info.ID)
	return newSession(info.ID, browser, page, m.log), nil
}

// defaultPage returns the remote browser's existing default page, creating
// one only when the provider handed us an empty browser.
func defaultPage(browser playwright.Browser) (playwright.Page, error) {
	contexts := browser.Contexts()
	if len(contexts) > 0 {
		pages := contexts[0].Pages()
		if len(pages) > 0 {
			return pages[0], nil
		}
		return contexts[0].NewPage()
	}
	return browser.NewPage()
}

// Shutdown stops the shared Playwright driver. Sessions release their own
// browser connections; this only tears down the local driver process.
func (m *Manager) Shutdown() error {
	if m.pw == nil {
		return nil
	}
	if err := m.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright driver: %w", err)
	}
	return nil
}
