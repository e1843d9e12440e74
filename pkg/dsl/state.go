package dsl

import "github.com/aretw0/turing/pkg/domain"

// StateBuilder provides a fluent API for the rules leaving one state.
type StateBuilder struct {
	id      domain.StateID
	builder *Builder
}

// On adds the rule: reading read in this state, write, move by move and enter next.
func (s *StateBuilder) On(read, write domain.Symbol, move int, next domain.StateID) *StateBuilder {
	s.builder.rule(s.id, read, write, move, next)
	return s
}

// Left is On with a move of one cell to the left.
func (s *StateBuilder) Left(read, write domain.Symbol, next domain.StateID) *StateBuilder {
	return s.On(read, write, domain.Left, next)
}

// Right is On with a move of one cell to the right.
func (s *StateBuilder) Right(read, write domain.Symbol, next domain.StateID) *StateBuilder {
	return s.On(read, write, domain.Right, next)
}

// Stay is On without moving the head.
func (s *StateBuilder) Stay(read, write domain.Symbol, next domain.StateID) *StateBuilder {
	return s.On(read, write, domain.Stay, next)
}

// Accepting marks the state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.builder.def.AcceptingStates[s.id] = struct{}{}
	return s
}
