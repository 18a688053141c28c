package booking

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/entrhq/bookline/pkg/search"
)

// fakePage is an in-memory booking.Page for driving the navigator, prober
// and engine without a browser.
type fakePage struct {
	// failWaits maps a WaitUntil value to an error Goto should return.
	failWaits map[string]error

	title    string
	titleErr error

	// counts maps selectors to match counts; countErrs maps selectors to
	// probe errors. Unlisted selectors count zero.
	counts    map[string]int
	countErrs map[string]error

	gotoCalls   []GotoOptions
	settleCalls []time.Duration
	countCalls  []string
	screenshots []string
}

func (p *fakePage) Goto(url string, opts GotoOptions) error {
	p.gotoCalls = append(p.gotoCalls, opts)
	if err, ok := p.failWaits[opts.WaitUntil]; ok {
		return err
	}
	return nil
}

func (p *fakePage) Title() (string, error) {
	return p.title, p.titleErr
}

func (p *fakePage) Count(selector string) (int, error) {
	p.countCalls = append(p.countCalls, selector)
	if err, ok := p.countErrs[selector]; ok {
		return 0, err
	}
	return p.counts[selector], nil
}

func (p *fakePage) Settle(d time.Duration) {
	p.settleCalls = append(p.settleCalls, d)
}

func (p *fakePage) Screenshot(path string) error {
	p.screenshots = append(p.screenshots, path)
	return nil
}

// fakeSession counts releases so tests can assert the exactly-once
// teardown property.
type fakeSession struct {
	id       string
	page     *fakePage
	releases atomic.Int32
}

func (s *fakeSession) ID() string { return s.id }
func (s *fakeSession) Page() Page { return s.page }
func (s *fakeSession) Release()   { s.releases.Add(1) }

// fakeFactory hands out a single fakeSession and records whether Acquire
// was ever called.
type fakeFactory struct {
	session  *fakeSession
	err      error
	acquired int
}

func (f *fakeFactory) Acquire(ctx context.Context) (Session, error) {
	f.acquired++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

// stubSearch returns fixed results for any query.
func stubSearch(results []search.Result, err error) SearcherFunc {
	return func(ctx context.Context, query string, numResults int) ([]search.Result, error) {
		return results, err
	}
}

// allStrategiesFail makes every Goto attempt error regardless of strategy.
func allStrategiesFail() map[string]error {
	return map[string]error{
		string(StrategyNetworkIdle):      fmt.Errorf("timeout waiting for networkidle"),
		string(StrategyDomContentLoaded): fmt.Errorf("timeout waiting for domcontentloaded"),
		string(StrategyLoad):             fmt.Errorf("timeout waiting for load"),
	}
}
