package booking

import (
	"context"
	"time"

	"github.com/entrhq/bookline/pkg/logging"
)

// loadStrategy describes one load-completion strategy: the signal to wait
// for, its timeout budget, and an optional settle delay applied after the
// signal fires.
type loadStrategy struct {
	Wait    LoadStrategy
	Timeout time.Duration
	Settle  time.Duration
}

// defaultLoadStrategies is the fixed escalation ladder applied to every
// navigation, ordered from strictest to most lenient. Network-idle is
// authoritative when it fires, but third-party trackers keep the network
// busy on many booking sites, so looser signals follow with fixed settle
// delays for JavaScript-heavy widgets. Total wait is bounded at 123s.
var defaultLoadStrategies = []loadStrategy{
	{Wait: StrategyNetworkIdle, Timeout: 60 * time.Second},
	{Wait: StrategyDomContentLoaded, Timeout: 30 * time.Second, Settle: 5 * time.Second},
	{Wait: StrategyLoad, Timeout: 30 * time.Second, Settle: 3 * time.Second},
}

// unknownTitle is reported when the page never loaded or its title could
// not be read.
const unknownTitle = "Unknown"

// Navigator drives a page to a URL using the ordered strategy ladder,
// stopping at the first strategy that completes without fault.
type Navigator struct {
	strategies []loadStrategy
	log        *logging.Logger
}

// NewNavigator creates a navigator with the default strategy ladder.
func NewNavigator(log *logging.Logger) *Navigator {
	return &Navigator{
		strategies: defaultLoadStrategies,
		log:        log,
	}
}

// Navigate applies each strategy in order and returns as soon as one
// succeeds. A strategy fault (timeout or navigation error) advances to the
// next strategy; it never aborts the attempt. If every strategy faults, or
// the context ends between strategies, the outcome reports Loaded=false.
func (n *Navigator) Navigate(ctx context.Context, page Page, url string) NavigationOutcome {
	for i, st := range n.strategies {
		if ctx.Err() != nil {
			n.log.Warnf("navigation aborted before strategy %d: %v", i+1, ctx.Err())
			break
		}

		n.log.Debugf("navigation strategy %d (%s) for %s", i+1, st.Wait, url)
		err := page.Goto(url, GotoOptions{WaitUntil: string(st.Wait), Timeout: st.Timeout})
		if err != nil {
			n.log.Debugf("navigation strategy %d (%s) failed: %v", i+1, st.Wait, err)
			continue
		}

		if st.Settle > 0 {
			page.Settle(st.Settle)
		}

		title, err := page.Title()
		if err != nil || title == "" {
			title = unknownTitle
		}

		n.log.Infof("navigation strategy %d (%s) succeeded, title: %s", i+1, st.Wait, title)
		return NavigationOutcome{Loaded: true, Strategy: st.Wait, Title: title}
	}

	n.log.Warnf("all navigation strategies failed for %s", url)
	return NavigationOutcome{Loaded: false, Strategy: StrategyNone, Title: unknownTitle}
}
