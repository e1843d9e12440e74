package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		def      *domain.Definition
		overlay  *graph.GraphOverlay
		contains []string
		absent   []string
	}{
		{
			name: "Initial And Accepting",
			def:  machines.UnaryIncrement(),
			contains: []string{
				"stateDiagram-v2\n",
				"[*] --> scan\n",
				"scan --> scan : 1/1,R\n",
				"scan --> H : _/1,S\n",
				"H --> [*]\n",
				"class H accepting\n",
			},
		},
		{
			name: "Parallel Edges Merged",
			def:  machines.Adder(),
			contains: []string{
				"a --> a : 0/0,R<br/>1/1,R\n",
				"e --> a : 0/1,R<br/>_/1,R\n",
				"f --> H : _/_,R\n",
			},
		},
		{
			name: "ID Sanitization And Large Moves",
			def: &domain.Definition{
				States:       domain.NewSet[domain.StateID]("go-left", "x.y"),
				InitialState: "go-left",
				Transitions: domain.Transitions{
					domain.On("go-left", ":"): domain.Do("x.y", ":", -5),
				},
			},
			contains: []string{
				`state "go-left" as go_left`,
				`state "x.y" as x_y`,
				"[*] --> go_left\n",
				"go_left --> x_y : #colon;/#colon;,-5\n",
			},
			absent: []string{"accepting"},
		},
		{
			name:    "Overlay",
			def:     machines.Adder(),
			overlay: &graph.GraphOverlay{VisitedStates: []domain.StateID{"a", "b", "a", "c"}, CurrentState: "c"},
			contains: []string{
				"%% Overlay Styles",
				"class a,b visited\n",
				"class c current\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.def, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnwanted substring: %v", got, unwanted)
				}
			}
		})
	}
}

func TestMoveLabel(t *testing.T) {
	cases := map[int]string{-1: "L", 0: "S", 1: "R", 2: "+2", -7: "-7"}
	for move, want := range cases {
		if got := graph.MoveLabel(move); got != want {
			t.Errorf("MoveLabel(%d) = %q, want %q", move, got, want)
		}
	}
}

func TestDescribeMarkdown(t *testing.T) {
	got := graph.DescribeMarkdown("adder", "Adds binary numbers.", machines.Adder())

	for _, want := range []string{
		"# adder\n\nAdds binary numbers.\n",
		"| States | H, a, b, c, d, e, f |\n",
		"| Blank | `_` |\n",
		"| Accepting | H |\n",
		"| a | `_` | `_` | R | b |\n",
		"| c | `1` | `0` | L | d |\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DescribeMarkdown() = \n%v\nWant substring: %v", got, want)
		}
	}

	if n := strings.Count(got, "\n| ") - 8; n != 17 {
		t.Errorf("expected 17 transition rows, got %d", n)
	}
}
