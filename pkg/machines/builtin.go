package machines

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
)

// Adder adds two binary numbers written left to right and separated by one
// blank. It repeatedly decrements the right operand and increments the left
// one, then erases the right operand and halts in H.
func Adder() *domain.Definition {
	return &domain.Definition{
		States:          domain.NewSet[domain.StateID]("a", "b", "c", "d", "e", "f", "H"),
		Symbols:         domain.NewSet[domain.Symbol]("0", "1", "_"),
		Blank:           "_",
		InputSymbols:    domain.NewSet[domain.Symbol]("0", "1", "_"),
		InitialState:    "a",
		AcceptingStates: domain.NewSet[domain.StateID]("H"),
		Transitions: domain.Transitions{
			// a: skip the left operand.
			domain.On("a", "0"): domain.Do("a", "0", domain.Right),
			domain.On("a", "1"): domain.Do("a", "1", domain.Right),
			domain.On("a", "_"): domain.Do("b", "_", domain.Right),
			// b: skip the right operand.
			domain.On("b", "0"): domain.Do("b", "0", domain.Right),
			domain.On("b", "1"): domain.Do("b", "1", domain.Right),
			domain.On("b", "_"): domain.Do("c", "_", domain.Left),
			// c: decrement the right operand.
			domain.On("c", "0"): domain.Do("c", "1", domain.Left),
			domain.On("c", "1"): domain.Do("d", "0", domain.Left),
			domain.On("c", "_"): domain.Do("f", "_", domain.Right),
			// d: back to the separator.
			domain.On("d", "0"): domain.Do("d", "0", domain.Left),
			domain.On("d", "1"): domain.Do("d", "1", domain.Left),
			domain.On("d", "_"): domain.Do("e", "_", domain.Left),
			// e: increment the left operand.
			domain.On("e", "0"): domain.Do("a", "1", domain.Right),
			domain.On("e", "1"): domain.Do("e", "0", domain.Left),
			domain.On("e", "_"): domain.Do("a", "1", domain.Right),
			// f: erase the exhausted right operand.
			domain.On("f", "1"): domain.Do("f", "_", domain.Right),
			domain.On("f", "_"): domain.Do("H", "_", domain.Right),
		},
	}
}

// UnaryIncrement appends a 1 after a run of 1s.
func UnaryIncrement() *domain.Definition {
	return &domain.Definition{
		States:          domain.NewSet[domain.StateID]("scan", "H"),
		Symbols:         domain.NewSet[domain.Symbol]("1", "_"),
		Blank:           "_",
		InputSymbols:    domain.NewSet[domain.Symbol]("1"),
		InitialState:    "scan",
		AcceptingStates: domain.NewSet[domain.StateID]("H"),
		Transitions: domain.Transitions{
			domain.On("scan", "1"): domain.Do("scan", "1", domain.Right),
			domain.On("scan", "_"): domain.Do("H", "1", domain.Stay),
		},
	}
}

// Parity scans the input once and halts on the first blank in "even" or "odd".
// Only "even" accepts.
func Parity() *domain.Definition {
	return &domain.Definition{
		States:          domain.NewSet[domain.StateID]("even", "odd"),
		Symbols:         domain.NewSet[domain.Symbol]("0", "1", "_"),
		Blank:           "_",
		InputSymbols:    domain.NewSet[domain.Symbol]("0", "1"),
		InitialState:    "even",
		AcceptingStates: domain.NewSet[domain.StateID]("even"),
		Transitions: domain.Transitions{
			domain.On("even", "0"): domain.Do("even", "0", domain.Right),
			domain.On("even", "1"): domain.Do("odd", "1", domain.Right),
			domain.On("odd", "0"):  domain.Do("odd", "0", domain.Right),
			domain.On("odd", "1"):  domain.Do("even", "1", domain.Right),
		},
	}
}

// BusyBeaver2 is the two-state, two-symbol busy beaver champion.
func BusyBeaver2() *domain.Definition {
	b := dsl.New("A").Blank("0")
	b.State("A").
		Right("0", "1", "B").
		Left("1", "1", "B")
	b.State("B").
		Left("0", "1", "A").
		Right("1", "1", "H")
	b.State("H").Accepting()
	return b.MustBuild()
}

// BusyBeaver3 is a three-state, two-symbol busy beaver writing six marks.
func BusyBeaver3() *domain.Definition {
	b := dsl.New("A").Blank("0")
	b.State("A").
		Right("0", "1", "B").
		Right("1", "1", "H")
	b.State("B").
		Right("0", "0", "C").
		Right("1", "1", "B")
	b.State("C").
		Left("0", "1", "C").
		Left("1", "1", "A")
	b.State("H").Accepting()
	return b.MustBuild()
}
