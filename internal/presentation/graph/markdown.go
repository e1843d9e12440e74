package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// DescribeMarkdown renders a definition as a Markdown document:
// a summary table followed by the full transition table.
func DescribeMarkdown(name, description string, def *domain.Definition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", name)
	if description != "" {
		fmt.Fprintf(&sb, "%s\n\n", description)
	}

	sb.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| States | %s |\n", joinStates(def.States.Sorted()))
	fmt.Fprintf(&sb, "| Alphabet | %s |\n", joinSymbols(def.Symbols.Sorted()))
	fmt.Fprintf(&sb, "| Blank | %s |\n", code(def.Blank))
	fmt.Fprintf(&sb, "| Input | %s |\n", joinSymbols(def.InputSymbols.Sorted()))
	fmt.Fprintf(&sb, "| Initial | %s |\n", def.InitialState)
	fmt.Fprintf(&sb, "| Accepting | %s |\n", joinStates(def.AcceptingStates.Sorted()))

	sb.WriteString("\n## Transitions\n\n")
	sb.WriteString("| State | Read | Write | Move | Next |\n|---|---|---|---|---|\n")
	for _, k := range def.SortedKeys() {
		a := def.Transitions[k]
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			k.State, code(k.Symbol), code(a.Write), MoveLabel(a.Move), a.Next)
	}
	return sb.String()
}

func code(s domain.Symbol) string {
	return "`" + strings.ReplaceAll(string(s), "|", `\|`) + "`"
}

func joinSymbols(syms []domain.Symbol) string {
	if len(syms) == 0 {
		return "-"
	}
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = code(s)
	}
	return strings.Join(parts, " ")
}

func joinStates(states []domain.StateID) string {
	if len(states) == 0 {
		return "-"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
