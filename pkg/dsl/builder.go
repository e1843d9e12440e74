package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Builder manages the definition construction.
type Builder struct {
	def  *domain.Definition
	errs []error
}

// New creates a new builder whose machine starts in initial.
// The blank defaults to "_".
func New(initial domain.StateID) *Builder {
	b := &Builder{
		def: &domain.Definition{
			States:          domain.NewSet(initial),
			Symbols:         domain.NewSet[domain.Symbol]("_"),
			Blank:           "_",
			InputSymbols:    domain.NewSet[domain.Symbol](),
			InitialState:    initial,
			AcceptingStates: domain.NewSet[domain.StateID](),
			Transitions:     make(domain.Transitions),
		},
	}
	return b
}

// Blank sets the blank symbol and adds it to the alphabet.
func (b *Builder) Blank(s domain.Symbol) *Builder {
	delete(b.def.Symbols, b.def.Blank)
	b.def.Blank = s
	b.def.Symbols[s] = struct{}{}
	for sym := range b.def.InputSymbols {
		b.def.Symbols[sym] = struct{}{}
	}
	for k, a := range b.def.Transitions {
		b.def.Symbols[k.Symbol] = struct{}{}
		b.def.Symbols[a.Write] = struct{}{}
	}
	return b
}

// Symbols adds symbols to the tape alphabet that no rule mentions.
func (b *Builder) Symbols(syms ...domain.Symbol) *Builder {
	for _, s := range syms {
		b.def.Symbols[s] = struct{}{}
	}
	return b
}

// Input declares the input alphabet. Its symbols join the tape alphabet.
func (b *Builder) Input(syms ...domain.Symbol) *Builder {
	for _, s := range syms {
		b.def.InputSymbols[s] = struct{}{}
		b.def.Symbols[s] = struct{}{}
	}
	return b
}

// State returns a builder for the rules leaving id, declaring the state if needed.
func (b *Builder) State(id domain.StateID) *StateBuilder {
	b.def.States[id] = struct{}{}
	return &StateBuilder{id: id, builder: b}
}

// Build returns the definition, validated.
// The builder must not be reused afterwards.
func (b *Builder) Build() (*domain.Definition, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, errors.Join(b.errs...))
	}
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	return b.def, nil
}

// MustBuild is like Build but panics on error.
// Intended for package-level machines built at init time.
func (b *Builder) MustBuild() *domain.Definition {
	def, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("dsl: %v", err))
	}
	return def
}

func (b *Builder) rule(state domain.StateID, read, write domain.Symbol, move int, next domain.StateID) {
	key := domain.On(state, read)
	if _, dup := b.def.Transitions[key]; dup {
		b.errs = append(b.errs, fmt.Errorf("duplicate rule for (%s, %s)", state, read))
		return
	}
	b.def.Transitions[key] = domain.Do(next, write, move)
	b.def.States[next] = struct{}{}
	b.def.Symbols[read] = struct{}{}
	b.def.Symbols[write] = struct{}{}
}
