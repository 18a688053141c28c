package booking

import (
	"errors"
	"fmt"
	"hash/fnv"
)

// ClassifyInput gathers everything known about an attempt at the point it
// terminates.
type ClassifyInput struct {
	Request   BookingRequest
	Target    CandidateTarget
	SessionID string

	// Nav is nil when the attempt never reached navigation (resolver or
	// session acquisition failed).
	Nav *NavigationOutcome

	// Probe is nil when the attempt never reached probing.
	Probe *AffordanceProbe

	// Fault is the error that terminated the attempt, if any.
	Fault error
}

// Classify reduces an attempt into exactly one terminal BookingOutcome.
//
// Decision table:
//
//	resolver NotFound            -> ERROR (NoPlatformFound)
//	acquisition failed           -> ERROR (MissingCredentials or AutomationFault)
//	navigation never loaded      -> TIMEOUT
//	loaded, fault after load     -> ERROR (AutomationFault)
//	loaded, no fault             -> SUCCESS
func Classify(in ClassifyInput) BookingOutcome {
	out := BookingOutcome{
		Request:    in.Request,
		SessionID:  in.SessionID,
		BookingURL: in.Target.URL,
		Platform:   in.Target.Platform,
	}

	// Faults before navigation started.
	if in.Nav == nil {
		out.Status = StatusError
		out.Kind = faultKind(in.Fault)
		if in.Fault != nil {
			out.ErrorDetail = in.Fault.Error()
		}
		return out
	}

	out.PageTitle = in.Nav.Title

	if !in.Nav.Loaded {
		out.Status = StatusTimeout
		out.Kind = KindNavigationTimeout
		out.ErrorDetail = "page failed to load after multiple attempts"
		return out
	}

	if in.Fault != nil {
		out.Status = StatusError
		out.Kind = KindAutomationFault
		out.ErrorDetail = in.Fault.Error()
		return out
	}

	if in.Probe != nil {
		out.AffordanceInfo = in.Probe.Info
	}

	out.Status = StatusSuccess
	out.ConfirmationToken = ConfirmationToken(in.Request, in.Target.Platform)
	return out
}

// faultKind maps a pre-navigation fault onto the error taxonomy.
func faultKind(err error) Kind {
	switch {
	case err == nil:
		return KindSystemFault
	case errors.Is(err, ErrNoPlatformFound):
		return KindNoPlatformFound
	case errors.Is(err, ErrMissingCredentials):
		return KindMissingCredentials
	default:
		return KindSystemFault
	}
}

// ConfirmationToken derives the deterministic attempt fingerprint for a
// successful outcome: the three-letter platform prefix followed by a
// five-digit hash of venue, date and time. Identical inputs always produce
// the same token. The five-digit modulus space is small and collisions are
// an accepted limitation of the format; the token is a trace reference, not
// a provider confirmation number.
func ConfirmationToken(req BookingRequest, platform Platform) string {
	h := fnv.New32a()
	h.Write([]byte(req.VenueName + req.Date + req.Time))
	return fmt.Sprintf("%s-%05d", platform.Prefix(), h.Sum32()%100000)
}
