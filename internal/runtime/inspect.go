package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Definition returns a copy of the machine definition the engine was built with.
func (e *Engine) Definition() *domain.Definition {
	return e.def.Clone()
}

// Halted reports whether the engine is in the Halted lifecycle state.
// A machine that was never initialized is halted.
func (e *Engine) Halted() bool {
	return e.exec == nil || e.exec.halted
}

// Status returns the engine lifecycle state.
func (e *Engine) Status() domain.Status {
	if e.Halted() {
		return domain.StatusHalted
	}
	return domain.StatusRunning
}

// Head returns the current head position.
func (e *Engine) Head() int {
	if e.exec == nil {
		return 0
	}
	return e.exec.head
}

// CurrentState returns the machine state. It is empty before Initialize.
func (e *Engine) CurrentState() domain.StateID {
	if e.exec == nil {
		return ""
	}
	return e.exec.state
}

// Steps returns the number of transitions applied since Initialize.
func (e *Engine) Steps() int {
	if e.exec == nil {
		return 0
	}
	return e.exec.steps
}

// Read returns the symbol at pos without modifying the tape.
func (e *Engine) Read(pos int) domain.Symbol {
	if e.exec == nil {
		return e.def.Blank
	}
	return e.exec.tape.Read(pos)
}

// Configuration returns a snapshot of the execution state.
// The snapshot shares nothing with the engine.
func (e *Engine) Configuration() domain.Configuration {
	cfg := domain.Configuration{
		Head:   e.Head(),
		State:  e.CurrentState(),
		Status: e.Status(),
		Steps:  e.Steps(),
		Tape:   map[int]domain.Symbol{},
	}
	if e.exec != nil {
		cfg.Tape = e.exec.tape.Cells()
	}
	return cfg
}
