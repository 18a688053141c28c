package booking

import (
	"context"
	"time"

	"github.com/entrhq/bookline/pkg/search"
)

// Page is the minimal surface of a connected browser page the engine
// drives. The remote package provides the Playwright-backed implementation;
// tests substitute fakes.
type Page interface {
	// Goto navigates to url and blocks until the configured load signal
	// fires or the timeout elapses.
	Goto(url string, opts GotoOptions) error

	// Title returns the current page title.
	Title() (string, error)

	// Count returns the number of elements matching the selector.
	Count(selector string) (int, error)

	// Settle blocks for a fixed delay to let client-side rendering catch up.
	Settle(d time.Duration)

	// Screenshot captures the current viewport to path.
	Screenshot(path string) error
}

// Session is one exclusively-owned remote browser session. Release must be
// safe to call on every exit path and must tear the session down at most
// once.
type Session interface {
	ID() string
	Page() Page
	Release()
}

// SessionFactory acquires one remote session per attempt.
type SessionFactory interface {
	Acquire(ctx context.Context) (Session, error)
}

// SessionFactoryFunc adapts a function to the SessionFactory interface.
type SessionFactoryFunc func(ctx context.Context) (Session, error)

// Acquire implements SessionFactory.
func (f SessionFactoryFunc) Acquire(ctx context.Context) (Session, error) {
	return f(ctx)
}

// Searcher is the web-search collaborator used to locate candidate booking
// URLs. Only Result.URL is consumed by the resolver.
type Searcher interface {
	Search(ctx context.Context, query string, numResults int) ([]search.Result, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string, numResults int) ([]search.Result, error)

// Search implements Searcher.
func (f SearcherFunc) Search(ctx context.Context, query string, numResults int) ([]search.Result, error) {
	return f(ctx, query, numResults)
}
