package domain

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Symbol is a single tape alphabet element.
type Symbol string

// StateID identifies a state of the machine.
type StateID string

// Definition is the description of a machine.
// Engines keep their own copy (see Clone), so later changes by the caller do not reach a running machine.
type Definition struct {
	States          Set[StateID]
	Symbols         Set[Symbol]
	Blank           Symbol
	InputSymbols    Set[Symbol]
	InitialState    StateID
	AcceptingStates Set[StateID]
	Transitions     Transitions
}

// Lookup returns the action for (state, read), if the table defines one.
func (d *Definition) Lookup(state StateID, read Symbol) (Action, bool) {
	a, ok := d.Transitions[Key{State: state, Symbol: read}]
	return a, ok
}

// IsAccepting reports whether state is one of the accepting states.
func (d *Definition) IsAccepting(state StateID) bool {
	return d.AcceptingStates.Has(state)
}

// Validate checks the structural invariants of the definition.
//
// Only set membership of the declared fields is checked. Transition table
// totality and the alphabet of individual transitions are the machine
// designer's responsibility.
func (d *Definition) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}
	if !d.States.Has(d.InitialState) {
		return fmt.Errorf("%w: initial state %q is not a declared state", ErrInvalidDefinition, d.InitialState)
	}
	if !d.Symbols.Has(d.Blank) {
		return fmt.Errorf("%w: blank symbol %q is not in the tape alphabet", ErrInvalidDefinition, d.Blank)
	}
	if s, ok := d.AcceptingStates.SubsetOf(d.States); !ok {
		return fmt.Errorf("%w: accepting state %q is not a declared state", ErrInvalidDefinition, s)
	}
	if s, ok := d.InputSymbols.SubsetOf(d.Symbols); !ok {
		return fmt.Errorf("%w: input symbol %q is not in the tape alphabet", ErrInvalidDefinition, s)
	}
	return nil
}

// SortedKeys returns the transition keys ordered by state, then symbol.
// Used by renderers that need a stable listing of the table.
func (d *Definition) SortedKeys() []Key {
	keys := make([]Key, 0, len(d.Transitions))
	for k := range d.Transitions {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.State, b.State), cmp.Compare(a.Symbol, b.Symbol))
	})
	return keys
}

// Clone returns a deep copy of d. A nil definition clones to nil.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	c := *d
	c.States = maps.Clone(d.States)
	c.Symbols = maps.Clone(d.Symbols)
	c.InputSymbols = maps.Clone(d.InputSymbols)
	c.AcceptingStates = maps.Clone(d.AcceptingStates)
	c.Transitions = maps.Clone(d.Transitions)
	return &c
}
