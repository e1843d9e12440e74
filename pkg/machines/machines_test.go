package machines_test

import (
	"math"
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToHalt(t *testing.T, def *domain.Definition, seed map[int]domain.Symbol) *runtime.Engine {
	t.Helper()
	engine := runtime.NewEngine(def)
	engine.Initialize(seed)
	for i := 0; !engine.Halted(); i++ {
		require.Less(t, i, 10_000, "machine did not halt")
		require.NoError(t, engine.Step())
	}
	return engine
}

func TestAdder_DocumentedRuns(t *testing.T) {
	tests := []struct {
		name  string
		seed  map[int]domain.Symbol
		steps int
		head  int
		sum   []domain.Symbol // cells -1..1
	}{
		{
			name:  "11 plus 10",
			seed:  map[int]domain.Symbol{0: "1", 1: "1", 2: "_", 3: "1", 4: "0"},
			steps: 32,
			head:  6,
			sum:   []domain.Symbol{"1", "0", "1"},
		},
		{
			name:  "1 plus 1",
			seed:  map[int]domain.Symbol{0: "1", 1: "_", 2: "1"},
			steps: 16,
			head:  4,
			sum:   []domain.Symbol{"1", "0", "_"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := runToHalt(t, machines.Adder(), tt.seed)

			accepted, err := engine.Accepted()
			require.NoError(t, err)
			assert.True(t, accepted)
			assert.Equal(t, domain.StateID("H"), engine.CurrentState())
			assert.Equal(t, tt.steps, engine.Steps())
			assert.Equal(t, tt.head, engine.Head())

			got := []domain.Symbol{engine.Read(-1), engine.Read(0), engine.Read(1)}
			assert.Equal(t, tt.sum, got)
			for pos := 2; pos <= 8; pos++ {
				assert.Equal(t, domain.Symbol("_"), engine.Read(pos), "right operand must be erased at %d", pos)
			}
		})
	}
}

func TestBuiltins_HaltAsDocumented(t *testing.T) {
	tests := []struct {
		name     string
		tape     string
		final    domain.StateID
		accepted bool
		steps    int
		marks    int
	}{
		{name: "adder", tape: "101_11", final: "H", accepted: true, steps: 45, marks: 1},
		{name: "unary-increment", tape: "111", final: "H", accepted: true, steps: 4, marks: 4},
		{name: "parity", tape: "1011", final: "odd", accepted: false, steps: 4, marks: 3},
		{name: "parity", tape: "1001", final: "even", accepted: true, steps: 4, marks: 2},
		{name: "busy-beaver-2", tape: "", final: "H", accepted: true, steps: 6, marks: 4},
		{name: "busy-beaver-3", tape: "", final: "H", accepted: true, steps: 14, marks: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.tape, func(t *testing.T) {
			m, err := machines.Get(tt.name)
			require.NoError(t, err)

			def := m.Build()
			require.NoError(t, def.Validate())

			engine := runToHalt(t, def, machines.ParseTape(tt.tape, 0))

			accepted, err := engine.Accepted()
			require.NoError(t, err)
			assert.Equal(t, tt.accepted, accepted)
			assert.Equal(t, tt.final, engine.CurrentState())
			assert.Equal(t, tt.steps, engine.Steps())

			marks := 0
			for _, sym := range engine.Configuration().Tape {
				if sym == "1" {
					marks++
				}
			}
			assert.Equal(t, tt.marks, marks)
		})
	}
}

func TestBuiltins_SampleTapesUseInputAlphabet(t *testing.T) {
	for _, name := range machines.Names() {
		m, err := machines.Get(name)
		require.NoError(t, err)

		def := m.Build()
		for pos, sym := range machines.ParseTape(m.SampleTape, 0) {
			assert.True(t, def.InputSymbols.Has(sym), "%s: sample symbol %q at %d", name, sym, pos)
		}
	}
}

func TestBuiltins_FreshDefinitions(t *testing.T) {
	m, err := machines.Get("adder")
	require.NoError(t, err)

	a := m.Build()
	b := m.Build()
	delete(a.Transitions, domain.On("a", "0"))

	_, ok := b.Lookup("a", "0")
	assert.True(t, ok)
}

func TestRegistry(t *testing.T) {
	r := machines.NewRegistry()
	r.Register(machines.Machine{Name: "z", Build: machines.Parity})
	r.Register(machines.Machine{Name: "a", Build: machines.Adder})

	assert.Equal(t, []string{"a", "z"}, r.Names())

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, domain.ErrMachineNotFound)
	assert.Contains(t, err.Error(), "missing")

	assert.Equal(t,
		[]string{"adder", "busy-beaver-2", "busy-beaver-3", "parity", "unary-increment"},
		machines.Names())
}

func TestParseTape(t *testing.T) {
	assert.Equal(t,
		map[int]domain.Symbol{0: "1", 1: "1", 2: "_", 3: "1", 4: "0"},
		machines.ParseTape("11_10", 0))
	assert.Equal(t,
		map[int]domain.Symbol{-2: "a", -1: "β"},
		machines.ParseTape("aβ", -2))
	assert.Empty(t, machines.ParseTape("", 5))
}

func TestCheckTape(t *testing.T) {
	assert.NoError(t, machines.CheckTape("11", math.MaxInt-1))
	assert.NoError(t, machines.CheckTape("", math.MaxInt))
	assert.NoError(t, machines.CheckTape("1", math.MaxInt))
	assert.NoError(t, machines.CheckTape("11", math.MinInt))

	err := machines.CheckTape("11", math.MaxInt)
	assert.ErrorIs(t, err, machines.ErrTapeRange)
	assert.ErrorIs(t, machines.CheckTape("aβc", math.MaxInt-1), machines.ErrTapeRange)
}

func TestParseTape_DoesNotWrap(t *testing.T) {
	seed := machines.ParseTape("11", math.MaxInt)
	assert.Equal(t, map[int]domain.Symbol{math.MaxInt: "1"}, seed)
}
