package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Step applies one transition.
//
// If a transition matches (state, symbol under head), the engine writes,
// changes state and moves the head as a single unit. Otherwise the machine
// halts and nothing else changes. Halting is not an error; calling Step on a
// halted (or never initialized) machine is.
func (e *Engine) Step() error {
	x := e.exec
	if x == nil || x.halted {
		return &domain.OperationError{Op: "step", Kind: domain.ErrStepAfterHalt}
	}

	read := x.tape.Read(x.head)
	action, ok := e.def.Lookup(x.state, read)
	if !ok {
		x.halted = true
		e.logger.Debug("machine halted", "state", x.state, "read", read, "head", x.head, "steps", x.steps)
		if e.hooks.OnHalt != nil {
			e.hooks.OnHalt(&domain.HaltEvent{
				Type:      domain.EventHalt,
				State:     x.state,
				Read:      read,
				Head:      x.head,
				Steps:     x.steps,
				Accepting: e.def.IsAccepting(x.state),
			})
		}
		return nil
	}

	from := domain.Key{State: x.state, Symbol: read}
	headFrom := x.head

	x.tape.Write(x.head, action.Write)
	x.state = action.Next
	x.head += action.Move
	x.steps++

	if e.hooks.OnStep != nil {
		e.hooks.OnStep(&domain.StepEvent{
			Type:     domain.EventStep,
			Step:     x.steps,
			From:     from,
			Action:   action,
			HeadFrom: headFrom,
			HeadTo:   x.head,
		})
	}
	return nil
}

// Accepted reports whether the halted machine stopped in an accepting state.
// It fails with ErrQueryBeforeHalt while the machine is still running.
func (e *Engine) Accepted() (bool, error) {
	if !e.Halted() {
		return false, &domain.OperationError{Op: "accepted", Kind: domain.ErrQueryBeforeHalt}
	}
	if e.exec == nil {
		return false, nil
	}
	return e.def.IsAccepting(e.exec.state), nil
}
