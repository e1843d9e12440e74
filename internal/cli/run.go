package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/aretw0/turing/pkg/tape"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Machine string

	// Tape is the seed literal. Nil selects the machine's sample tape.
	Tape   *string
	Offset int

	Delay time.Duration

	// Window is the number of cells printed on each side of the head.
	// Zero prints the head cell only.
	Window int

	MaxSteps int
	Headless bool
	JSON     bool
	Debug    bool

	// Stdout receives frames and results. Defaults to os.Stdout.
	Stdout io.Writer
}

// Execute handles the 'run' command logic.
// The run stops early, without error, when ctx is cancelled or a SIGINT/SIGTERM arrives.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Headless && opts.JSON {
		return errors.New("--headless and --json cannot be used together")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	m, err := machines.Get(opts.Machine)
	if err != nil {
		return err
	}
	seed, err := resolveSeed(m, opts.Tape, opts.Offset)
	if err != nil {
		return err
	}

	sctx := NewSignalContext(ctx)
	defer sctx.Cancel()

	logger := createLogger(opts.Debug)
	eng, err := turing.New(m.Build(),
		turing.WithName(m.Name),
		turing.WithLogger(logger),
		turing.WithLifecycleHooks(createDebugHooks(logger)),
	)
	if err != nil {
		return fmt.Errorf("error building %s: %w", m.Name, err)
	}

	interactive := !opts.Headless && !opts.JSON
	color := interactive && isTerminal(opts.Stdout)
	if color {
		tui.PrintBanner(opts.Stdout, turing.Version)
	}

	r := runner.NewRunner(createRunnerOptions(logger, opts, color)...)
	res, err := r.Run(sctx, eng, seed)

	if isInterrupted(err) {
		if !opts.JSON {
			logInterruption(opts.Stdout, res, sctx.Signal())
		}
		return nil
	}
	if err != nil {
		return err
	}

	if opts.Headless {
		printResult(opts.Stdout, res, eng.Definition().Blank)
	}
	return nil
}

// resolveSeed parses tape (or the machine's sample tape when nil) at offset.
func resolveSeed(m machines.Machine, tape *string, offset int) (map[int]domain.Symbol, error) {
	literal := m.SampleTape
	if tape != nil {
		literal = *tape
	}
	if err := machines.CheckTape(literal, offset); err != nil {
		return nil, err
	}
	return machines.ParseTape(literal, offset), nil
}

// printResult writes the final verdict followed by the written span of the tape.
func printResult(w io.Writer, res *runner.Result, blank domain.Symbol) {
	fmt.Fprintf(w, "accepted=%t state=%s steps=%d head=%d\n", res.Accepted, res.State, res.Steps, res.Head)
	fmt.Fprintf(w, "tape=%s\n", renderCells(res.Tape, blank))
}

// renderCells concatenates the cells between the leftmost and rightmost
// non-blank positions and suffixes the leftmost position. A blank tape renders empty.
func renderCells(cells map[int]domain.Symbol, blank domain.Symbol) string {
	t := tape.New(blank, cells)
	if t.Len() == 0 {
		return ""
	}
	lo, hi, _ := t.Bounds()
	for lo <= hi && t.Read(lo) == t.Blank() {
		lo++
	}
	for hi >= lo && t.Read(hi) == t.Blank() {
		hi--
	}
	syms := t.Window(lo, hi)
	if len(syms) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, sym := range syms {
		sb.WriteString(string(sym))
	}
	fmt.Fprintf(&sb, "@%d", lo)
	return sb.String()
}
