package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains dynamic run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.StateID
	CurrentState  domain.StateID
}

// GenerateMermaid produces a Mermaid state diagram from a machine definition.
// Edges are labelled "read/write,move"; parallel edges between the same pair
// of states are merged into one multi-line label.
// - Initial state: [*] --> state
// - Accepting state: state --> [*], styled "accepting"
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(def *domain.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for _, s := range def.States.Sorted() {
		if safe := sanitizeMermaidID(s); safe != string(s) {
			sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", strings.ReplaceAll(string(s), "\"", "'"), safe))
		}
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(def.InitialState)))

	type edge struct{ from, to domain.StateID }
	var order []edge
	labels := make(map[edge][]string)
	for _, k := range def.SortedKeys() {
		a := def.Transitions[k]
		e := edge{from: k.State, to: a.Next}
		if _, seen := labels[e]; !seen {
			order = append(order, e)
		}
		labels[e] = append(labels[e], fmt.Sprintf("%s/%s,%s", escapeLabel(k.Symbol), escapeLabel(a.Write), MoveLabel(a.Move)))
	}
	for _, e := range order {
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n",
			sanitizeMermaidID(e.from), sanitizeMermaidID(e.to), strings.Join(labels[e], "<br/>")))
	}

	accepting := def.AcceptingStates.Sorted()
	for _, s := range accepting {
		sb.WriteString(fmt.Sprintf("    %s --> [*]\n", sanitizeMermaidID(s)))
	}
	if len(accepting) > 0 {
		sb.WriteString("\n    classDef accepting stroke-width:3px,stroke:#15803d;\n")
		sb.WriteString(fmt.Sprintf("    class %s accepting\n", joinIDs(accepting)))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		// Deduplicate visited states
		var visited []domain.StateID
		for _, s := range overlay.VisitedStates {
			if s != "" && s != overlay.CurrentState && !slices.Contains(visited, s) {
				visited = append(visited, s)
			}
		}
		if len(visited) > 0 {
			sb.WriteString(fmt.Sprintf("    class %s visited\n", joinIDs(visited)))
		}
		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// MoveLabel renders a head displacement: L, S and R for the unit moves, a signed number otherwise.
func MoveLabel(move int) string {
	switch move {
	case domain.Left:
		return "L"
	case domain.Stay:
		return "S"
	case domain.Right:
		return "R"
	}
	return fmt.Sprintf("%+d", move)
}

func joinIDs(states []domain.StateID) string {
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = sanitizeMermaidID(s)
	}
	return strings.Join(ids, ",")
}

func escapeLabel(s domain.Symbol) string {
	switch s {
	case ":":
		return "#colon;"
	case ";":
		return "#59;"
	}
	return string(s)
}

func sanitizeMermaidID(id domain.StateID) string {
	s := strings.ReplaceAll(string(id), ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "\"", "_")
	return s
}
