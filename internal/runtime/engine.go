package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
)

// Engine is the core Turing machine executor.
// It owns the execution state of exactly one run and is not safe for concurrent use.
type Engine struct {
	def    *domain.Definition
	hooks  domain.LifecycleHooks
	logger *slog.Logger

	exec *execution
}

// execution is the mutable state created by Initialize.
type execution struct {
	tape   *tape.Tape
	head   int
	state  domain.StateID
	steps  int
	halted bool
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine for a private copy of def.
// The engine starts halted; call Initialize before Step.
func NewEngine(def *domain.Definition, opts ...EngineOption) *Engine {
	e := &Engine{
		def:    def.Clone(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize replaces the execution state: head 0, initial state, running,
// and a fresh tape holding seed. Positions outside seed are blank.
func (e *Engine) Initialize(seed map[int]domain.Symbol) {
	e.exec = &execution{
		tape:  tape.New(e.def.Blank, seed),
		state: e.def.InitialState,
	}

	e.logger.Debug("machine initialized", "state", e.def.InitialState, "seed_cells", len(seed))
	if e.hooks.OnInitialize != nil {
		e.hooks.OnInitialize(&domain.InitializeEvent{
			Type:      domain.EventInitialize,
			State:     e.def.InitialState,
			SeedCells: len(seed),
		})
	}
}
