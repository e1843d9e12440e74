package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
)

// Runner handles the execution loop of a machine.
// It is stateless between runs and may drive any number of engines sequentially.
type Runner struct {
	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Delay is the pause between consecutive steps.
	Delay time.Duration

	// MaxSteps bounds the number of applied transitions. A machine that halts
	// right after the last allowed transition completes normally.
	// Zero means unbounded.
	MaxSteps int

	Observers []Observer
}

// Result is the outcome of a run.
type Result struct {
	State  domain.StateID `json:"state"`
	Head   int            `json:"head"`
	Steps  int            `json:"steps"`
	Halted bool           `json:"halted"`

	// Accepted is only meaningful when Halted is true.
	Accepted bool `json:"accepted"`

	Tape map[int]domain.Symbol `json:"tape"`
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run initializes m with seed and steps it until it halts.
//
// A partial Result is returned alongside the error when the run stops early:
// domain.ErrStepLimit when the budget is exhausted, or the context error when
// ctx is cancelled between steps.
func (r *Runner) Run(ctx context.Context, m Machine, seed map[int]domain.Symbol) (*Result, error) {
	m.Initialize(seed)
	view := readOnly{m: m}
	r.Logger.Debug("run started", "state", m.CurrentState(), "seed_cells", len(seed), "max_steps", r.MaxSteps)

	for !m.Halted() {
		if err := r.observe(ctx, view); err != nil {
			return r.result(m), err
		}

		if r.MaxSteps > 0 && m.Steps() >= r.MaxSteps && hasTransition(m) {
			r.Logger.Warn("step limit reached", "steps", m.Steps(), "state", m.CurrentState())
			return r.result(m), fmt.Errorf("%w: %d", domain.ErrStepLimit, r.MaxSteps)
		}
		if err := ctx.Err(); err != nil {
			return r.result(m), err
		}

		if err := m.Step(); err != nil {
			return r.result(m), fmt.Errorf("step error: %w", err)
		}

		if !m.Halted() {
			if err := r.pace(ctx); err != nil {
				return r.result(m), err
			}
		}
	}

	res := r.result(m)
	accepted, err := m.Accepted()
	if err != nil {
		return res, fmt.Errorf("acceptance error: %w", err)
	}
	res.Accepted = accepted

	r.Logger.Debug("run finished", "state", res.State, "steps", res.Steps, "accepted", res.Accepted)

	for _, o := range r.Observers {
		if err := o.Finish(ctx, res); err != nil {
			return res, fmt.Errorf("output error: %w", err)
		}
	}
	return res, nil
}

func (r *Runner) observe(ctx context.Context, v View) error {
	for _, o := range r.Observers {
		if err := o.Observe(ctx, v); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}

func hasTransition(m Machine) bool {
	_, ok := m.Definition().Lookup(m.CurrentState(), m.Read(m.Head()))
	return ok
}

// pace sleeps for Delay unless ctx ends first.
func (r *Runner) pace(ctx context.Context) error {
	if r.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) result(m Machine) *Result {
	cfg := m.Configuration()
	return &Result{
		State:  cfg.State,
		Head:   cfg.Head,
		Steps:  cfg.Steps,
		Halted: cfg.Halted(),
		Tape:   cfg.Tape,
	}
}
