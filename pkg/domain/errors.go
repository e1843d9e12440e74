package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the kind shared by every misuse of the engine lifecycle.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrStepAfterHalt is returned when Step is called on a halted machine.
var ErrStepAfterHalt = fmt.Errorf("%w: step after halt", ErrInvalidOperation)

// ErrQueryBeforeHalt is returned when acceptance is queried while the machine is still running.
var ErrQueryBeforeHalt = fmt.Errorf("%w: query before halt", ErrInvalidOperation)

// ErrInvalidDefinition is returned when a Definition breaks its structural invariants.
var ErrInvalidDefinition = errors.New("invalid machine definition")

// ErrStepLimit is returned by drivers that stop a machine after a step budget.
var ErrStepLimit = errors.New("step limit reached")

// ErrMachineNotFound is returned when a named machine is not registered.
var ErrMachineNotFound = errors.New("machine not found")

// OperationError records which engine operation was misused.
type OperationError struct {
	Op   string
	Kind error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind.Error())
}

func (e *OperationError) Unwrap() error { return e.Kind }
