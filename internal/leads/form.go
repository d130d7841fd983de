package leads

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/studyitalypro/landing/pkg/logging"
)

const (
	// DefaultSubmitDelay stands in for the round trip of a real lead API.
	DefaultSubmitDelay = 2 * time.Second
	// DefaultSuccessDisplay is how long the success notice stays up.
	DefaultSuccessDisplay = 5 * time.Second
)

// State is the lifecycle position of a contact form.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	}
	return "unknown"
}

// Submission outcomes and dismissal reasons reported to a Recorder.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeBusy     = "busy"

	DismissTimeout      = "timeout"
	DismissAcknowledged = "acknowledged"
)

// Recorder receives form events. metrics.FormMetrics satisfies it.
type Recorder interface {
	ObserveSubmission(outcome string)
	ObserveValidationFailure(field string)
	ObserveSubmitLatency(seconds float64)
	ObserveDismissal(reason string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSubmission(string)        {}
func (nopRecorder) ObserveValidationFailure(string) {}
func (nopRecorder) ObserveSubmitLatency(float64)    {}
func (nopRecorder) ObserveDismissal(string)         {}

// Options configures a Form. Zero durations fall back to the defaults.
type Options struct {
	SubmitDelay    time.Duration
	SuccessDisplay time.Duration
	Logger         *logging.Logger
	Recorder       Recorder
}

func (o Options) withDefaults() Options {
	if o.SubmitDelay <= 0 {
		o.SubmitDelay = DefaultSubmitDelay
	}
	if o.SuccessDisplay <= 0 {
		o.SuccessDisplay = DefaultSuccessDisplay
	}
	if o.Logger == nil {
		o.Logger = logging.Default()
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	return o
}

// Outcome is the result of one submit attempt.
type Outcome struct {
	State      State
	Submission *Submission
	Errors     FieldErrors
}

// Snapshot is everything a renderer needs to draw the form.
type Snapshot struct {
	State      string      `json:"state"`
	Values     Input       `json:"values"`
	Errors     FieldErrors `json:"errors,omitempty"`
	Submitting bool        `json:"submitting"`
	Succeeded  bool        `json:"succeeded"`
	// DismissIn is how long the success notice has left. Zero unless
	// succeeded.
	DismissIn time.Duration `json:"-"`
}

// Form is the contact form state machine:
// editing -> submitting -> succeeded -> editing.
// It is safe for concurrent use; a submit is never re-entered.
type Form struct {
	opts Options

	mu         sync.Mutex
	state      State
	values     Input
	errors     FieldErrors
	dismiss    *time.Timer
	dismissAt  time.Time
	generation uint64
}

// NewForm returns a form in the editing state.
func NewForm(opts Options) *Form {
	return &Form{opts: opts.withDefaults()}
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot copies the current values, errors and flags.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := Snapshot{
		State:      f.state.String(),
		Values:     f.values,
		Errors:     f.errors.clone(),
		Submitting: f.state == StateSubmitting,
		Succeeded:  f.state == StateSucceeded,
	}
	if snap.Succeeded {
		snap.DismissIn = max(time.Until(f.dismissAt), 0)
	}
	return snap
}

// Change records a new value for one field. A field that currently shows an
// error is re-validated and its error cleared once the value is valid. The
// returned error is the field's remaining validation error, if any.
func (f *Form) Change(field Field, value string) (*FieldValidationError, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateEditing {
		return nil, ErrFormBusy
	}
	if !f.values.Set(field, value) {
		return nil, ErrUnknownField
	}
	if !f.errors.Has(field) {
		return nil, nil
	}
	if e := ValidateField(field, value); e != nil {
		f.errors[field] = *e
		return e, nil
	}
	delete(f.errors, field)
	if len(f.errors) == 0 {
		f.errors = nil
	}
	return nil, nil
}

// Submit validates in and, when valid, runs the simulated delivery. Invalid
// input keeps the form editing with field errors recorded and returns a
// FieldErrors. A submit while submitting or succeeded returns ErrFormBusy and
// changes nothing. The delivery delay always runs to completion; ctx only
// scopes logging.
func (f *Form) Submit(ctx context.Context, in Input) (Outcome, error) {
	f.mu.Lock()
	if f.state != StateEditing {
		state := f.state
		f.mu.Unlock()
		f.opts.Recorder.ObserveSubmission(OutcomeBusy)
		return Outcome{State: state}, ErrFormBusy
	}

	f.values = in
	sub, err := Validate(in)
	if err != nil {
		var fe FieldErrors
		errors.As(err, &fe)
		f.errors = fe
		f.mu.Unlock()

		f.opts.Recorder.ObserveSubmission(OutcomeInvalid)
		for field := range fe {
			f.opts.Recorder.ObserveValidationFailure(string(field))
		}
		f.opts.Logger.DebugContext(ctx, "contact form rejected", "fields", len(fe))
		return Outcome{State: StateEditing, Errors: fe.clone()}, err
	}
	f.errors = nil
	f.state = StateSubmitting
	f.mu.Unlock()

	start := time.Now()
	sub.ID = uuid.NewString()
	sub.SubmittedAt = start.UTC()
	f.deliver(ctx, sub)
	f.opts.Recorder.ObserveSubmitLatency(time.Since(start).Seconds())
	f.opts.Recorder.ObserveSubmission(OutcomeAccepted)

	f.mu.Lock()
	f.state = StateSucceeded
	f.values = Input{}
	f.generation++
	gen := f.generation
	f.dismissAt = time.Now().Add(f.opts.SuccessDisplay)
	f.dismiss = time.AfterFunc(f.opts.SuccessDisplay, func() { f.expire(gen) })
	f.mu.Unlock()

	return Outcome{State: StateSucceeded, Submission: &sub}, nil
}

// deliver stands in for the lead API call: it waits SubmitDelay and always
// succeeds.
func (f *Form) deliver(ctx context.Context, sub Submission) {
	timer := time.NewTimer(f.opts.SubmitDelay)
	<-timer.C
	f.opts.Logger.InfoContext(ctx, "lead submitted",
		"submission_id", sub.ID,
		"education", string(sub.Education),
		"has_message", sub.Message != "",
	)
}

// Reset dismisses the success notice and returns the form to editing. It
// reports whether there was a notice to dismiss.
func (f *Form) Reset() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSucceeded {
		return false
	}
	f.resetLocked()
	f.opts.Recorder.ObserveDismissal(DismissAcknowledged)
	return true
}

func (f *Form) expire(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// A stale timer from an earlier success must not dismiss a newer one.
	if f.state != StateSucceeded || f.generation != gen {
		return
	}
	f.resetLocked()
	f.opts.Recorder.ObserveDismissal(DismissTimeout)
}

func (f *Form) resetLocked() {
	if f.dismiss != nil {
		f.dismiss.Stop()
		f.dismiss = nil
	}
	f.dismissAt = time.Time{}
	f.state = StateEditing
	f.errors = nil
}

// Close stops a pending auto-dismiss timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dismiss != nil {
		f.dismiss.Stop()
		f.dismiss = nil
	}
}
