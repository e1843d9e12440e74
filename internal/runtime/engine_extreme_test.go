package runtime_test

import (
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jumper moves by arbitrary displacements, including zero and large jumps.
func jumper() *domain.Definition {
	return &domain.Definition{
		States:          domain.NewSet[domain.StateID]("s0", "s1", "s2", "s3"),
		Symbols:         domain.NewSet[domain.Symbol]("_", "a", "b", "c"),
		Blank:           "_",
		InitialState:    "s0",
		AcceptingStates: domain.NewSet[domain.StateID]("s3"),
		Transitions: domain.Transitions{
			domain.On("s0", "_"): domain.Do("s1", "a", -1_000_000),
			domain.On("s1", "_"): domain.Do("s2", "b", 0),
			domain.On("s2", "b"): domain.Do("s3", "c", 2_000_003),
		},
	}
}

func TestEngine_UnrestrictedDisplacement(t *testing.T) {
	engine := runtime.NewEngine(jumper())
	engine.Initialize(nil)

	require.NoError(t, engine.Step())
	assert.Equal(t, -1_000_000, engine.Head())

	require.NoError(t, engine.Step())
	assert.Equal(t, -1_000_000, engine.Head(), "zero displacement keeps the head in place")

	require.NoError(t, engine.Step())
	assert.Equal(t, 1_000_003, engine.Head())

	require.NoError(t, engine.Step())
	require.True(t, engine.Halted())

	accepted, err := engine.Accepted()
	require.NoError(t, err)
	assert.True(t, accepted)

	assert.Equal(t, map[int]domain.Symbol{0: "a", -1_000_000: "c"}, engine.Configuration().Tape)
}

func TestEngine_LongRunStaysSparse(t *testing.T) {
	// Walks right forever over blanks, writing nothing new: a budget-bound loop.
	def := &domain.Definition{
		States:          domain.NewSet[domain.StateID]("r"),
		Symbols:         domain.NewSet[domain.Symbol]("_"),
		Blank:           "_",
		InitialState:    "r",
		AcceptingStates: domain.NewSet[domain.StateID](),
		Transitions: domain.Transitions{
			domain.On("r", "_"): domain.Do("r", "_", domain.Right),
		},
	}
	engine := runtime.NewEngine(def)
	engine.Initialize(nil)

	for i := 0; i < 10_000; i++ {
		require.NoError(t, engine.Step())
	}

	assert.False(t, engine.Halted())
	assert.Equal(t, 10_000, engine.Head())
	assert.Equal(t, 10_000, engine.Steps())
	assert.Len(t, engine.Configuration().Tape, 10_000)

	_, err := engine.Accepted()
	assert.ErrorIs(t, err, domain.ErrQueryBeforeHalt)
}
