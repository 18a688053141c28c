package booking

import (
	"fmt"
	"strings"
	"time"
)

// Platform identifies a known online reservation platform.
type Platform string

const (
	PlatformOpenTable Platform = "OpenTable"
	PlatformResy      Platform = "Resy"
	PlatformYelp      Platform = "Yelp"
	PlatformUnknown   Platform = "Unknown"
)

// Prefix returns the three-letter uppercase platform prefix used in
// confirmation tokens (e.g. "OPE" for OpenTable).
func (p Platform) Prefix() string {
	s := strings.ToUpper(string(p))
	if len(s) < 3 {
		return s
	}
	return s[:3]
}

// BookingRequest describes one reservation attempt. All fields are
// caller-supplied and immutable for the lifetime of the attempt.
type BookingRequest struct {
	VenueName   string
	Date        string
	Time        string
	PartySize   int
	ContactInfo string
}

// Validate checks that every field required to start an attempt is set.
func (r BookingRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.VenueName) == "":
		return fmt.Errorf("venue name is required")
	case strings.TrimSpace(r.Date) == "":
		return fmt.Errorf("date is required")
	case strings.TrimSpace(r.Time) == "":
		return fmt.Errorf("time is required")
	case r.PartySize <= 0:
		return fmt.Errorf("party size must be positive")
	case strings.TrimSpace(r.ContactInfo) == "":
		return fmt.Errorf("contact info is required")
	}
	return nil
}

// CandidateTarget is a booking URL matched to a known platform by the
// resolver.
type CandidateTarget struct {
	URL      string
	Platform Platform
}

// LoadStrategy names a page load-completion signal.
type LoadStrategy string

const (
	StrategyNetworkIdle      LoadStrategy = "networkidle"
	StrategyDomContentLoaded LoadStrategy = "domcontentloaded"
	StrategyLoad             LoadStrategy = "load"
	StrategyNone             LoadStrategy = "none"
)

// NavigationOutcome records how (and whether) the booking page loaded.
// Loaded is false only when every strategy failed.
type NavigationOutcome struct {
	Loaded   bool
	Strategy LoadStrategy
	Title    string
}

// AffordanceProbe records whether a reservation control was found on the
// loaded page, and which selector matched first.
type AffordanceProbe struct {
	Found    bool
	Selector string
	Info     string
}

// Status is the terminal classification of one attempt.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusPartial Status = "PARTIAL"
	StatusTimeout Status = "TIMEOUT"
	StatusError   Status = "ERROR"
)

// Kind refines non-success outcomes into the error taxonomy.
type Kind string

const (
	KindNone               Kind = ""
	KindMissingCredentials Kind = "MissingCredentials"
	KindNoPlatformFound    Kind = "NoPlatformFound"
	KindNavigationTimeout  Kind = "NavigationTimeout"
	KindAutomationFault    Kind = "AutomationFault"
	KindSystemFault        Kind = "SystemFault"
)

// BookingOutcome is the single artifact returned to callers, immutable once
// constructed.
//
// StatusSuccess asserts only that the booking page loaded and the attempt
// completed without fault. The affordance probe result is advisory evidence
// that a reservation control exists; it is not proof that a reservation was
// actually submitted or confirmed by the provider. The confirmation token is
// a local fingerprint for traceability, not a provider confirmation number.
type BookingOutcome struct {
	Status            Status
	Kind              Kind
	Request           BookingRequest
	ConfirmationToken string
	SessionID         string
	BookingURL        string
	Platform          Platform
	PageTitle         string
	AffordanceInfo    string
	ErrorDetail       string
}

// GotoOptions configures one navigation strategy attempt against a page.
type GotoOptions struct {
	// WaitUntil is the load-completion signal to wait for:
	// "networkidle", "domcontentloaded" or "load".
	WaitUntil string

	// Timeout bounds the navigation wait (0 means the page default).
	Timeout time.Duration
}
