package runner_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockObserver implements runner.Observer
type MockObserver struct {
	mock.Mock
	states []domain.StateID
	heads  []int
}

func (m *MockObserver) Observe(ctx context.Context, v runner.View) error {
	m.states = append(m.states, v.CurrentState())
	m.heads = append(m.heads, v.Head())
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockObserver) Finish(ctx context.Context, res *runner.Result) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func TestRunner_RunsToAcceptance(t *testing.T) {
	tests := []struct {
		name  string
		tape  string
		steps int
		head  int
	}{
		{name: "11 plus 10", tape: "11_10", steps: 32, head: 6},
		{name: "1 plus 1", tape: "1_1", steps: 16, head: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runner.NewRunner()
			res, err := r.Run(context.Background(), turing.MustNew(machines.Adder()), machines.ParseTape(tt.tape, 0))

			require.NoError(t, err)
			assert.True(t, res.Halted)
			assert.True(t, res.Accepted)
			assert.Equal(t, domain.StateID("H"), res.State)
			assert.Equal(t, tt.steps, res.Steps)
			assert.Equal(t, tt.head, res.Head)
		})
	}
}

func TestRunner_RejectingRun(t *testing.T) {
	res, err := runner.NewRunner().Run(context.Background(), turing.MustNew(machines.Parity()), machines.ParseTape("111", 0))

	require.NoError(t, err)
	assert.True(t, res.Halted)
	assert.False(t, res.Accepted)
	assert.Equal(t, domain.StateID("odd"), res.State)
}

func TestRunner_ObserverSeesEveryConfiguration(t *testing.T) {
	obs := new(MockObserver)
	obs.On("Observe", mock.Anything, mock.Anything).Return(nil)
	obs.On("Finish", mock.Anything, mock.MatchedBy(func(res *runner.Result) bool {
		return res.Accepted && res.Steps == 4
	})).Return(nil).Once()

	r := runner.NewRunner(runner.WithObserver(obs))
	_, err := r.Run(context.Background(), turing.MustNew(machines.UnaryIncrement()), machines.ParseTape("111", 0))
	require.NoError(t, err)

	// Initial configuration plus one frame per applied transition.
	obs.AssertNumberOfCalls(t, "Observe", 5)
	obs.AssertExpectations(t)
	assert.Equal(t, []int{0, 1, 2, 3, 3}, obs.heads)
	assert.Equal(t, []domain.StateID{"scan", "scan", "scan", "scan", "H"}, obs.states)
}

func TestRunner_ObserverCannotStep(t *testing.T) {
	var sawMachine bool
	obs := observerFunc(func(v runner.View) {
		_, sawMachine = v.(runner.Machine)
	})

	_, err := runner.NewRunner(runner.WithObserver(obs)).
		Run(context.Background(), turing.MustNew(machines.UnaryIncrement()), nil)
	require.NoError(t, err)
	assert.False(t, sawMachine, "observers must only receive a read-only view")
}

func TestRunner_ObserverErrorStopsRun(t *testing.T) {
	boom := errors.New("broken pipe")
	obs := new(MockObserver)
	obs.On("Observe", mock.Anything, mock.Anything).Return(boom)

	res, err := runner.NewRunner(runner.WithObserver(obs)).
		Run(context.Background(), turing.MustNew(machines.Adder()), machines.ParseTape("11_10", 0))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, res.Steps)
	obs.AssertNotCalled(t, "Finish", mock.Anything, mock.Anything)
}

func TestRunner_StepLimit(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	r := runner.NewRunner(runner.WithMaxSteps(10), runner.WithLogger(logger))
	res, err := r.Run(context.Background(), turing.MustNew(machines.Adder()), machines.ParseTape("11_10", 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStepLimit)
	assert.False(t, res.Halted)
	assert.False(t, res.Accepted)
	assert.Equal(t, 10, res.Steps)
	assert.Contains(t, logs.String(), "step limit reached")
}

func TestRunner_BudgetEqualToRunLengthSucceeds(t *testing.T) {
	r := runner.NewRunner(runner.WithMaxSteps(6))
	res, err := r.Run(context.Background(), turing.MustNew(machines.BusyBeaver2()), nil)

	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 6, res.Steps)
}

func TestRunner_ReusableAcrossRuns(t *testing.T) {
	eng := turing.MustNew(machines.Adder())
	r := runner.NewRunner()

	first, err := r.Run(context.Background(), eng, machines.ParseTape("11_10", 0))
	require.NoError(t, err)
	second, err := r.Run(context.Background(), eng, machines.ParseTape("11_10", 0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type observerFunc func(v runner.View)

func (f observerFunc) Observe(_ context.Context, v runner.View) error {
	f(v)
	return nil
}

func (f observerFunc) Finish(context.Context, *runner.Result) error { return nil }
