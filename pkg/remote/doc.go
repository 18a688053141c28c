// Package remote manages ephemeral browser sessions on a Browserbase-style
// automation provider.
//
// One booking attempt maps to exactly one provider session: the Manager
// creates the session over the provider's REST API, connects a Playwright
// handle to it over CDP, and hands the attempt a Session that must be
// released on every exit path. Release closes the page and the browser
// connection exactly once, ignoring individual close errors so cleanup
// always completes; the provider records a replayable trace of the session
// either way.
//
// Missing credentials are reported as booking.ErrMissingCredentials before
// any provider call is made, which the engine classifies as a fatal,
// non-retryable condition for the attempt.
package remote
