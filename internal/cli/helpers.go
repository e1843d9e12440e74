package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the tape trace on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(logger *slog.Logger, opts RunOptions, color bool) []runner.Option {
	ropts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithDelay(opts.Delay),
		runner.WithMaxSteps(opts.MaxSteps),
	}

	switch {
	case opts.JSON:
		ropts = append(ropts, runner.WithObserver(runner.NewJSONHandler(opts.Stdout)))
	case !opts.Headless:
		textOpts := []runner.TextHandlerOption{runner.WithWindow(opts.Window)}
		if color {
			textOpts = append(textOpts, runner.WithCellStyler(tui.HeadStyler(opts.Stdout)))
		}
		ropts = append(ropts, runner.WithObserver(runner.NewTextHandler(opts.Stdout, textOpts...)))
	}

	return ropts
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInitialize: func(e *domain.InitializeEvent) {
			logger.Debug("Initialize", "state", e.State, "seed_cells", e.SeedCells)
		},
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("Step",
				"step", e.Step,
				"state", e.From.State,
				"read", e.From.Symbol,
				"write", e.Action.Write,
				"move", e.Action.Move,
				"next", e.Action.Next,
			)
		},
		OnHalt: func(e *domain.HaltEvent) {
			logger.Debug("Halt", "state", e.State, "read", e.Read, "steps", e.Steps, "accepting", e.Accepting)
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func logInterruption(w io.Writer, res *runner.Result, sig os.Signal) {
	if res == nil {
		return
	}
	switch {
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted at '%s' state after %d steps.", res.State, res.Steps)
	case sig != nil:
		// SIGTERM or others
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated at '%s' state after %d steps.", res.State, res.Steps)
	default:
		// Parent context cancelled without a signal.
		printSystemMessage(w, "Interrupted at '%s' state after %d steps.", res.State, res.Steps)
	}
}
