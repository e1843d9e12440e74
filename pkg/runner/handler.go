package runner

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// View is the read-only surface of a machine handed to observers.
type View interface {
	Head() int
	CurrentState() domain.StateID
	Halted() bool
	Steps() int
	Read(pos int) domain.Symbol

	// Configuration returns a detached snapshot, including every written cell.
	Configuration() domain.Configuration
}

// Machine is the engine surface driven by the Runner. *turing.Engine satisfies it.
type Machine interface {
	View
	Definition() *domain.Definition
	Initialize(seed map[int]domain.Symbol)
	Step() error
	Accepted() (bool, error)
}

// Observer renders or records configurations between steps.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type Observer interface {
	// Observe is called once per configuration, before the step that leaves it.
	Observe(ctx context.Context, v View) error

	// Finish is called once with the outcome of the run.
	Finish(ctx context.Context, res *Result) error
}

// readOnly hides the mutating methods of a Machine from observers.
type readOnly struct {
	m Machine
}

func (r readOnly) Head() int                           { return r.m.Head() }
func (r readOnly) CurrentState() domain.StateID        { return r.m.CurrentState() }
func (r readOnly) Halted() bool                        { return r.m.Halted() }
func (r readOnly) Steps() int                          { return r.m.Steps() }
func (r readOnly) Read(pos int) domain.Symbol          { return r.m.Read(pos) }
func (r readOnly) Configuration() domain.Configuration { return r.m.Configuration() }
