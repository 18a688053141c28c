package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/entrhq/bookline/pkg/logging"
	"github.com/google/uuid"
)

// EngineOptions configures a reservation engine.
type EngineOptions struct {
	// AttemptTimeout bounds one whole attempt, including session
	// acquisition, all navigation strategies and probing. Zero disables
	// the overall deadline (per-strategy timeouts still apply).
	AttemptTimeout time.Duration

	// ScreenshotPath, when set, captures a best-effort screenshot of the
	// booking page after a successful load.
	ScreenshotPath string

	// Logger receives attempt tracing. A nil logger disables it.
	Logger *logging.Logger
}

// Engine executes one bounded, classified reservation attempt per call.
// Each attempt is strictly sequential: resolve, acquire, navigate, probe,
// classify. Attempts are independent and may run concurrently; they share
// no state beyond the automation provider's external session pool.
type Engine struct {
	resolver  *Resolver
	sessions  SessionFactory
	navigator *Navigator
	prober    *Prober

	attemptTimeout time.Duration
	screenshotPath string
	log            *logging.Logger
}

// NewEngine wires a reservation engine from its collaborators.
func NewEngine(searcher Searcher, sessions SessionFactory, opts EngineOptions) *Engine {
	log := opts.Logger

	return &Engine{
		resolver:       NewResolver(searcher),
		sessions:       sessions,
		navigator:      NewNavigator(log),
		prober:         NewProber(log),
		attemptTimeout: opts.AttemptTimeout,
		screenshotPath: opts.ScreenshotPath,
		log:            log,
	}
}

// Book runs one reservation attempt for the request. Faults never escape:
// every attempt terminates in exactly one of the four statuses, and any
// remote session created for the attempt is released exactly once on every
// exit path, including cancellation.
func (e *Engine) Book(ctx context.Context, req BookingRequest) (out BookingOutcome) {
	attemptID := uuid.New().String()
	e.log.Infof("attempt %s: venue=%q date=%s time=%s party=%d",
		attemptID, req.VenueName, req.Date, req.Time, req.PartySize)

	// The engine never lets a raw fault escape to its caller.
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorf("attempt %s: panic: %v", attemptID, r)
			out = Classify(ClassifyInput{
				Request: req,
				Fault:   fmt.Errorf("automation fault: %v", r),
			})
		}
	}()

	if err := req.Validate(); err != nil {
		return Classify(ClassifyInput{
			Request: req,
			Fault:   fmt.Errorf("invalid booking request: %w", err),
		})
	}

	if e.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.attemptTimeout)
		defer cancel()
	}

	target, err := e.resolver.Resolve(ctx, req.VenueName)
	if err != nil {
		e.log.Warnf("attempt %s: resolve failed: %v", attemptID, err)
		return Classify(ClassifyInput{Request: req, Fault: err})
	}
	e.log.Infof("attempt %s: resolved %s booking URL %s", attemptID, target.Platform, target.URL)

	session, err := e.sessions.Acquire(ctx)
	if err != nil {
		e.log.Errorf("attempt %s: session acquisition failed: %v", attemptID, err)
		return Classify(ClassifyInput{
			Request: req,
			Target:  target,
			Fault:   fmt.Errorf("session creation failed: %w", err),
		})
	}
	// Release is idempotent and must run on every exit path, including
	// panics and caller cancellation.
	defer session.Release()

	e.log.Infof("attempt %s: session %s acquired", attemptID, session.ID())

	nav := e.navigator.Navigate(ctx, session.Page(), target.URL)
	if !nav.Loaded {
		return Classify(ClassifyInput{
			Request:   req,
			Target:    target,
			SessionID: session.ID(),
			Nav:       &nav,
		})
	}

	if e.screenshotPath != "" {
		// Best effort only; a failed capture never affects the outcome.
		if err := session.Page().Screenshot(e.screenshotPath); err != nil {
			e.log.Debugf("attempt %s: screenshot failed: %v", attemptID, err)
		}
	}

	probe := e.prober.Probe(session.Page())

	out = Classify(ClassifyInput{
		Request:   req,
		Target:    target,
		SessionID: session.ID(),
		Nav:       &nav,
		Probe:     &probe,
	})
	e.log.Infof("attempt %s: status=%s token=%s", attemptID, out.Status, out.ConfirmationToken)
	return out
}
