package turing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
)

// Engine is the high-level entry point for the turing library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine (and its log lines) with the machine name.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New validates def and builds an engine around it.
// The returned engine is halted until Initialize is called.
func New(def *domain.Definition, opts ...Option) (*Engine, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("machine", eng.Name)
	}

	eng.runtime = runtime.NewEngine(def,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng, nil
}

// MustNew is like New but panics on an invalid definition.
// Intended for package-level machines built from literals.
func MustNew(def *domain.Definition, opts ...Option) *Engine {
	eng, err := New(def, opts...)
	if err != nil {
		panic(fmt.Sprintf("turing: %v", err))
	}
	return eng
}

// Initialize resets the execution state and loads seed onto a fresh tape.
func (e *Engine) Initialize(seed map[int]domain.Symbol) {
	e.runtime.Initialize(seed)
}

// Step applies one transition, or halts when none matches.
// It returns domain.ErrStepAfterHalt when called on a halted machine.
func (e *Engine) Step() error {
	return e.runtime.Step()
}

// Accepted reports whether the machine halted in an accepting state.
// It returns domain.ErrQueryBeforeHalt while the machine is running.
func (e *Engine) Accepted() (bool, error) {
	return e.runtime.Accepted()
}

// Halted reports whether the machine has halted (or was never initialized).
func (e *Engine) Halted() bool {
	return e.runtime.Halted()
}

// Head returns the current head position.
func (e *Engine) Head() int {
	return e.runtime.Head()
}

// CurrentState returns the machine's current state.
func (e *Engine) CurrentState() domain.StateID {
	return e.runtime.CurrentState()
}

// Steps returns the number of transitions applied since Initialize.
func (e *Engine) Steps() int {
	return e.runtime.Steps()
}

// Read returns the tape symbol at pos.
func (e *Engine) Read(pos int) domain.Symbol {
	return e.runtime.Read(pos)
}

// Configuration returns a detached snapshot of the execution state.
func (e *Engine) Configuration() domain.Configuration {
	return e.runtime.Configuration()
}

// Definition returns a copy of the machine definition.
// Modifying it does not affect the engine.
func (e *Engine) Definition() *domain.Definition {
	return e.runtime.Definition()
}
