package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/aretw0/turing/pkg/runner"
)

// describeWidth is the word-wrap width used for rendered descriptions.
const describeWidth = 100

// Describe writes a Markdown description of the named machine.
// On a terminal the Markdown is rendered with styles; otherwise it is written raw.
func Describe(w io.Writer, name string) error {
	m, err := machines.Get(name)
	if err != nil {
		return err
	}
	doc := graph.DescribeMarkdown(m.Name, m.Description, m.Build())

	if !isTerminal(w) {
		_, err = io.WriteString(w, doc)
		return err
	}

	render, err := tui.NewRenderer(true, describeWidth)
	if err != nil {
		return fmt.Errorf("error creating renderer: %w", err)
	}
	out, err := render(doc)
	if err != nil {
		return fmt.Errorf("error rendering description: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// GraphOptions configures the graph command.
type GraphOptions struct {
	Machine string

	// Tape, when set, runs the machine on it first and highlights the
	// visited states and the state it stopped in.
	Tape     *string
	Offset   int
	MaxSteps int
}

// Graph writes the Mermaid diagram of a machine, optionally overlaid with a run.
// A run stopped by the step limit is still drawn, up to where it stopped.
func Graph(ctx context.Context, w io.Writer, opts GraphOptions) error {
	m, err := machines.Get(opts.Machine)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if opts.Tape != nil {
		seed, err := resolveSeed(m, opts.Tape, opts.Offset)
		if err != nil {
			return err
		}
		rec := graph.NewRecorder()
		eng, err := turing.New(m.Build(), turing.WithName(m.Name), turing.WithLifecycleHooks(rec.Hooks()))
		if err != nil {
			return fmt.Errorf("error building %s: %w", m.Name, err)
		}
		_, err = runner.NewRunner(runner.WithMaxSteps(opts.MaxSteps)).Run(ctx, eng, seed)
		if err != nil && !errors.Is(err, domain.ErrStepLimit) {
			return err
		}
		overlay = rec.Overlay()
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(m.Build(), overlay))
	return err
}

// List writes one line per built-in machine: name, sample tape and description.
func List(w io.Writer) error {
	for _, name := range machines.Names() {
		m, err := machines.Get(name)
		if err != nil {
			return err
		}
		sample := m.SampleTape
		if sample == "" {
			sample = "-"
		}
		if _, err := fmt.Fprintf(w, "%-16s %-8s %s\n", m.Name, sample, m.Description); err != nil {
			return err
		}
	}
	return nil
}
