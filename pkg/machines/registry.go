package machines

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Machine is a named machine supplier.
type Machine struct {
	Name        string
	Description string

	// SampleTape is a seed literal accepted by ParseTape.
	SampleTape string

	// Build returns a fresh definition.
	Build func() *domain.Definition
}

// Registry manages the available machines.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]Machine
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		machines: make(map[string]Machine),
	}
}

// Register adds a machine to the registry.
// If a machine with the same name exists, it is overwritten.
func (r *Registry) Register(m Machine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machines[m.Name] = m
}

// Get looks up a machine by name.
func (r *Registry) Get(name string) (Machine, error) {
	r.mu.RLock()
	m, ok := r.machines[name]
	r.mu.RUnlock()

	if !ok {
		return Machine{}, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, name)
	}
	return m, nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.machines))
	for name := range r.machines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var builtin = func() *Registry {
	r := NewRegistry()
	r.Register(Machine{
		Name:        "adder",
		Description: "Adds two binary numbers separated by a blank (11_10 -> 101).",
		SampleTape:  "11_10",
		Build:       Adder,
	})
	r.Register(Machine{
		Name:        "unary-increment",
		Description: "Appends one mark to a unary number.",
		SampleTape:  "111",
		Build:       UnaryIncrement,
	})
	r.Register(Machine{
		Name:        "parity",
		Description: "Accepts tapes holding an even number of 1s.",
		SampleTape:  "1011",
		Build:       Parity,
	})
	r.Register(Machine{
		Name:        "busy-beaver-2",
		Description: "Two-state busy beaver: 4 marks in 6 steps.",
		Build:       BusyBeaver2,
	})
	r.Register(Machine{
		Name:        "busy-beaver-3",
		Description: "Three-state busy beaver: 6 marks in 14 steps.",
		Build:       BusyBeaver3,
	})
	return r
}()

// Default returns the registry holding the built-in machines.
func Default() *Registry {
	return builtin
}

// Get looks up a built-in machine by name.
func Get(name string) (Machine, error) {
	return builtin.Get(name)
}

// Names lists the built-in machines.
func Names() []string {
	return builtin.Names()
}
