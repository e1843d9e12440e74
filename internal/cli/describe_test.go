package cli

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_PlainWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Describe(&out, "adder"))

	assert.True(t, strings.HasPrefix(out.String(), "# adder\n"))
	assert.Contains(t, out.String(), "## Transitions")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Graph(context.Background(), &out, GraphOptions{Machine: "busy-beaver-2"}))
	assert.Contains(t, out.String(), "[*] --> A")
	assert.Contains(t, out.String(), "B --> H : 1/1,R")
	assert.NotContains(t, out.String(), "Overlay")
}

func TestGraph_RunOverlay(t *testing.T) {
	tests := []struct {
		name     string
		opts     GraphOptions
		contains []string
	}{
		{
			name:     "Halted Run",
			opts:     GraphOptions{Machine: "parity", Tape: strPtr("1")},
			contains: []string{"class even visited\n", "class odd current\n"},
		},
		{
			name:     "Step Limit",
			opts:     GraphOptions{Machine: "busy-beaver-3", Tape: strPtr(""), MaxSteps: 1},
			contains: []string{"class A visited\n", "class B current\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Graph(context.Background(), &out, tt.opts))
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, List(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(machines.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "adder "))
	assert.Contains(t, lines[0], "11_10")
}

func TestUnknownMachine(t *testing.T) {
	assert.ErrorIs(t, Describe(&bytes.Buffer{}, "nope"), domain.ErrMachineNotFound)
	assert.ErrorIs(t, Graph(context.Background(), &bytes.Buffer{}, GraphOptions{Machine: "nope"}), domain.ErrMachineNotFound)
	assert.ErrorIs(t,
		Graph(context.Background(), &bytes.Buffer{}, GraphOptions{Machine: "parity", Tape: strPtr("11"), Offset: math.MaxInt}),
		machines.ErrTapeRange)
}
