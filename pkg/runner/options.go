package runner

import (
	"log/slog"
	"time"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithDelay pauses between steps. Zero runs at full speed.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) {
		r.Delay = d
	}
}

// WithMaxSteps stops a run with domain.ErrStepLimit after n transitions. Zero means unbounded.
func WithMaxSteps(n int) Option {
	return func(r *Runner) {
		r.MaxSteps = n
	}
}

// WithObserver appends an observer. Observers are called in registration order.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.Observers = append(r.Observers, o)
		}
	}
}
