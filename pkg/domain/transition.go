package domain

// Head displacements used by most machines. Any integer is a valid Move.
const (
	Left  = -1
	Stay  = 0
	Right = 1
)

// Key identifies a transition table entry: the current state and the symbol under the head.
type Key struct {
	State  StateID `json:"state"`
	Symbol Symbol  `json:"symbol"`
}

// Action is the right-hand side of a transition.
type Action struct {
	Next  StateID `json:"next"`
	Write Symbol  `json:"write"`

	// Move is added to the head position after the write.
	// It is not restricted to {-1, 0, +1}.
	Move int `json:"move"`
}

// Transitions is the partial mapping from (state, symbol) to Action.
type Transitions map[Key]Action

// On is a convenience constructor for table literals.
func On(state StateID, read Symbol) Key {
	return Key{State: state, Symbol: read}
}

// Do is a convenience constructor for table literals.
func Do(next StateID, write Symbol, move int) Action {
	return Action{Next: next, Write: write, Move: move}
}
