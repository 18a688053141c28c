package booking

import (
	"fmt"
	"strings"
)

// Reporter renders a BookingOutcome into the human-facing report consumed
// by the agent layer. Rendering is pure formatting: no side effects, no
// I/O, and byte-identical output for identical outcomes.
type Reporter struct {
	// ReplayBase is the automation provider domain used to build session
	// replay references, e.g. "https://www.browserbase.com".
	ReplayBase string
}

// NewReporter creates a reporter that builds replay references against the
// given provider domain.
func NewReporter(replayBase string) *Reporter {
	return &Reporter{ReplayBase: strings.TrimSuffix(replayBase, "/")}
}

// ReplayURL returns the session replay reference for an outcome, or an
// empty string when no session was ever created.
func (r *Reporter) ReplayURL(out BookingOutcome) string {
	if out.SessionID == "" {
		return ""
	}
	return fmt.Sprintf("%s/sessions/%s", r.ReplayBase, out.SessionID)
}

// Render maps the outcome's status to its report template. Every report
// carries a status line; non-success reports explain what is known and
// suggest a manual fallback.
func (r *Reporter) Render(out BookingOutcome) string {
	switch out.Status {
	case StatusSuccess:
		return r.renderSuccess(out)
	case StatusTimeout, StatusPartial:
		return r.renderTimeout(out)
	default:
		return r.renderError(out)
	}
}

func (r *Reporter) renderSuccess(out BookingOutcome) string {
	affordance := out.AffordanceInfo
	if affordance == "" {
		affordance = "None found"
	}

	return fmt.Sprintf(`BROWSER AUTOMATION SUCCESSFUL

Confirmation Number: %s
Restaurant: %s
Date: %s
Time: %s
Party Size: %d
Contact: %s
Platform: %s
Page Title: %s
Reservation Elements: %s

Status: SUCCESS - booking page reached and reservation controls probed
Session Replay: %s

The confirmation number is a local trace reference. Check the session
replay to verify the actual browser interaction.`,
		out.ConfirmationToken,
		out.Request.VenueName,
		out.Request.Date,
		out.Request.Time,
		out.Request.PartySize,
		out.Request.ContactInfo,
		out.Platform,
		out.PageTitle,
		affordance,
		r.ReplayURL(out),
	)
}

func (r *Reporter) renderTimeout(out BookingOutcome) string {
	return fmt.Sprintf(`BROWSER AUTOMATION ATTEMPTED

Restaurant: %s
Platform: %s
Issue: page loading timeout

Status: %s - browser launched but the booking page failed to load
Session Replay: %s

Next steps:
1. Check the session replay to see what happened
2. The website might be slow or have anti-bot protection
3. Try booking manually at %s`,
		out.Request.VenueName,
		out.Platform,
		out.Status,
		r.ReplayURL(out),
		out.BookingURL,
	)
}

func (r *Reporter) renderError(out BookingOutcome) string {
	detail := out.ErrorDetail
	if detail == "" {
		detail = "unknown error"
	}

	if out.Kind == KindNoPlatformFound {
		return fmt.Sprintf(`NO BOOKING PLATFORM FOUND

Restaurant: %s
Searched for: OpenTable, Resy, Yelp reservations

Status: ERROR - no online reservation system found
Next steps: try calling the restaurant directly`,
			out.Request.VenueName,
		)
	}

	report := fmt.Sprintf(`BROWSER AUTOMATION FAILED

Restaurant: %s
Error: %s

Status: ERROR - could not complete automation`,
		out.Request.VenueName,
		detail,
	)

	if replay := r.ReplayURL(out); replay != "" {
		report += fmt.Sprintf("\nSession Replay: %s", replay)
	}

	report += "\n\nNext steps:"
	if out.BookingURL != "" {
		report += fmt.Sprintf("\n1. Try booking manually at %s\n2. Call the restaurant directly", out.BookingURL)
	} else {
		report += "\n1. Call the restaurant directly"
	}

	return report
}
