package booking

import (
	"fmt"

	"github.com/entrhq/bookline/pkg/logging"
)

// affordanceSelectors is the fixed priority list of reservation controls to
// look for on a loaded page.
var affordanceSelectors = []string{
	`button:has-text("Make a Reservation")`,
	`button:has-text("Book Now")`,
	`button:has-text("Reserve")`,
	`a:has-text("Reservation")`,
	`[data-testid*="reservation"]`,
	`.reservation-button`,
}

// Prober scans a loaded page for controls indicating a reservation flow is
// present.
type Prober struct {
	selectors []string
	log       *logging.Logger
}

// NewProber creates a prober with the default selector list.
func NewProber(log *logging.Logger) *Prober {
	return &Prober{
		selectors: affordanceSelectors,
		log:       log,
	}
}

// Probe tests each selector in priority order and records the first one
// with at least one match. A selector that errors (e.g. an unsupported
// query on the target engine) counts as no match and probing continues;
// probe failures are never fatal to the attempt.
func (p *Prober) Probe(page Page) AffordanceProbe {
	for _, sel := range p.selectors {
		count, err := page.Count(sel)
		if err != nil {
			p.log.Debugf("selector %s failed: %v", sel, err)
			continue
		}
		if count > 0 {
			p.log.Infof("found reservation element: %s", sel)
			return AffordanceProbe{
				Found:    true,
				Selector: sel,
				Info:     fmt.Sprintf("Found: %s", sel),
			}
		}
	}

	p.log.Infof("no reservation elements found")
	return AffordanceProbe{}
}
