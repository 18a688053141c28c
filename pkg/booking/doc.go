// Package booking implements the automated reservation execution engine.
//
// One call to Engine.Book is one attempt: it resolves a venue to a booking
// URL on a known platform, acquires an ephemeral remote browser session,
// drives the page through an escalating ladder of load strategies, probes
// for reservation controls, and reduces whatever happened into a single
// terminal BookingOutcome. The attempt is bounded and classified: faults
// below the classifier are always converted into an outcome, never
// propagated, and the remote session is released on every exit path.
//
// # Pipeline
//
//	Resolver -> SessionFactory -> Navigator -> Prober -> Classify -> Reporter
//
// The Resolver queries the web-search collaborator and picks the first
// result hosted on a known booking platform. The SessionFactory (see the
// remote package) owns exactly one provider session per attempt. The
// Navigator applies three load-completion strategies with fixed timeouts,
// stopping at the first success. The Prober tests an ordered selector list
// for reservation affordances, treating individual selector failures as
// misses. Classify folds navigation, probe and fault state into one of
// SUCCESS, PARTIAL, TIMEOUT or ERROR, and the Reporter renders the outcome
// with a session replay reference for manual verification.
//
// # What SUCCESS means
//
// SUCCESS asserts that the booking page loaded and the attempt completed
// without fault. It does not assert that a reservation was submitted or
// confirmed by the provider; the affordance probe is advisory evidence
// only. The replay reference exists precisely to let a human close that
// gap.
package booking
