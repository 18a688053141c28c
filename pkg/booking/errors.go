package booking

import "errors"

// Sentinel errors used to classify attempt failures. Collaborator
// implementations wrap these so the classifier can map faults onto the
// error taxonomy with errors.Is.
var (
	// ErrNoPlatformFound is returned by the resolver when no search result
	// matches a known booking platform. It is a legitimate terminal signal,
	// not a system fault; no session is created for it.
	ErrNoPlatformFound = errors.New("no booking platform found")

	// ErrMissingCredentials is returned by the session factory when the
	// automation provider credentials are absent. It is fatal for the
	// attempt before any provider call is made.
	ErrMissingCredentials = errors.New("automation provider credentials missing")
)
