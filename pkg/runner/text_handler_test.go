package runner_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Frame(t *testing.T) {
	eng := turing.MustNew(machines.Adder())
	eng.Initialize(machines.ParseTape("11_10", 0))

	h := runner.NewTextHandler(nil, runner.WithWindow(2))

	assert.Equal(t,
		"... _ _ 1 1 _ ... state=a\n"+
			"        ^\n",
		h.Frame(eng))
}

func TestTextHandler_DefaultWindowCaret(t *testing.T) {
	eng := turing.MustNew(machines.Adder())
	eng.Initialize(nil)

	frame := runner.NewTextHandler(nil).Frame(eng)
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	require.Len(t, lines, 2)

	// 2*window+4 spaces, like the classic trace layout.
	assert.Equal(t, strings.Repeat(" ", 2*runner.DefaultWindow+4)+"^", lines[1])
	assert.Equal(t, 21, strings.Count(lines[0], "_"))
}

func TestTextHandler_WideSymbolsAndStyler(t *testing.T) {
	def := &domain.Definition{
		States:          domain.NewSet[domain.StateID]("s"),
		Symbols:         domain.NewSet[domain.Symbol]("·", "世"),
		Blank:           "·",
		InitialState:    "s",
		AcceptingStates: domain.NewSet[domain.StateID](),
	}
	eng := turing.MustNew(def)
	eng.Initialize(map[int]domain.Symbol{-1: "世", 0: "世"})

	h := runner.NewTextHandler(nil,
		runner.WithWindow(1),
		runner.WithCellStyler(func(s string) string { return "[" + s + "]" }),
	)

	// "... " (4) + "世 " (3) = caret column 7.
	assert.Equal(t,
		"... 世 [世] · ... state=s\n"+
			"       ^\n",
		h.Frame(eng))
}

func TestTextHandler_FullRun(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(runner.WithObserver(runner.NewTextHandler(&out, runner.WithWindow(3))))

	_, err := r.Run(context.Background(), turing.MustNew(machines.UnaryIncrement()), machines.ParseTape("1", 0))
	require.NoError(t, err)

	assert.Equal(t,
		"... _ _ _ 1 _ _ _ ... state=scan\n"+
			"          ^\n"+
			"... _ _ 1 _ _ _ _ ... state=scan\n"+
			"          ^\n"+
			"... _ _ 1 1 _ _ _ ... state=H\n"+
			"          ^\n"+
			"accepted=true state=H steps=2\n",
		out.String())
}
