package runtime_test

import (
	"github.com/aretw0/turing/pkg/domain"
)

// flipper walks right inverting bits and halts on the first blank.
// State "done" is accepting; "stuck" is a reachable non-accepting sink.
func flipper() *domain.Definition {
	return &domain.Definition{
		States:          domain.NewSet[domain.StateID]("scan", "done", "stuck"),
		Symbols:         domain.NewSet[domain.Symbol]("0", "1", "x", "_"),
		Blank:           "_",
		InputSymbols:    domain.NewSet[domain.Symbol]("0", "1", "x"),
		InitialState:    "scan",
		AcceptingStates: domain.NewSet[domain.StateID]("done"),
		Transitions: domain.Transitions{
			domain.On("scan", "0"): domain.Do("scan", "1", domain.Right),
			domain.On("scan", "1"): domain.Do("scan", "0", domain.Right),
			domain.On("scan", "_"): domain.Do("done", "_", domain.Stay),
			domain.On("scan", "x"): domain.Do("stuck", "x", domain.Stay),
		},
	}
}
