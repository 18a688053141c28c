package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeFindsFirstMatch(t *testing.T) {
	page := &fakePage{
		counts: map[string]int{
			`button:has-text("Reserve")`: 2,
			`.reservation-button`:        1,
		},
	}
	prober := NewProber(nil)

	probe := prober.Probe(page)

	assert.True(t, probe.Found)
	assert.Equal(t, `button:has-text("Reserve")`, probe.Selector)
	assert.Equal(t, `Found: button:has-text("Reserve")`, probe.Info)

	// Probing short-circuits at the first selector with a match.
	require.Len(t, page.countCalls, 3)
	assert.Equal(t, `button:has-text("Reserve")`, page.countCalls[2])
}

func TestProbePriorityOrder(t *testing.T) {
	page := &fakePage{}
	prober := NewProber(nil)

	prober.Probe(page)

	assert.Equal(t, []string{
		`button:has-text("Make a Reservation")`,
		`button:has-text("Book Now")`,
		`button:has-text("Reserve")`,
		`a:has-text("Reservation")`,
		`[data-testid*="reservation"]`,
		`.reservation-button`,
	}, page.countCalls)
}

func TestProbeNoMatches(t *testing.T) {
	page := &fakePage{}
	prober := NewProber(nil)

	probe := prober.Probe(page)

	assert.False(t, probe.Found)
	assert.Empty(t, probe.Selector)
	assert.Len(t, page.countCalls, 6)
}

func TestProbeSelectorErrorContinues(t *testing.T) {
	page := &fakePage{
		countErrs: map[string]error{
			`button:has-text("Make a Reservation")`: fmt.Errorf("unsupported query"),
		},
		counts: map[string]int{
			`button:has-text("Book Now")`: 1,
		},
	}
	prober := NewProber(nil)

	probe := prober.Probe(page)

	// An individual probe failure is never fatal; the next pattern ran.
	assert.True(t, probe.Found)
	assert.Equal(t, `button:has-text("Book Now")`, probe.Selector)
}

func TestProbeAllSelectorsError(t *testing.T) {
	errs := make(map[string]error, len(affordanceSelectors))
	for _, sel := range affordanceSelectors {
		errs[sel] = fmt.Errorf("engine detached")
	}
	page := &fakePage{countErrs: errs}
	prober := NewProber(nil)

	probe := prober.Probe(page)

	assert.False(t, probe.Found)
}
