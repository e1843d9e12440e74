package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machines"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultStepLimit caps runs whose request does not ask for a tighter budget.
	DefaultStepLimit = 1_000_000

	// DefaultTapeLimit caps the number of cells in a request tape.
	DefaultTapeLimit = 64 * 1024

	// DefaultBodyLimit caps the size of a run request body, in bytes.
	DefaultBodyLimit = 1 << 20

	// StatusClientClosedRequest is reported when the client goes away mid-run.
	StatusClientClosedRequest = 499
)

// Server exposes the machine registry over HTTP.
// It holds no execution state: every run request gets its own engine.
type Server struct {
	Machines  *machines.Registry
	Metrics   *observability.Metrics
	Logger    *slog.Logger
	StepLimit int
	TapeLimit int
	BodyLimit int64

	metricsHandler http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithRegistry replaces the built-in machine registry.
func WithRegistry(r *machines.Registry) Option {
	return func(s *Server) {
		s.Machines = r
	}
}

// WithLogger sets the logger used for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetrics instruments every run with m and mounts h on GET /metrics.
func WithMetrics(m *observability.Metrics, h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = m
		s.metricsHandler = h
	}
}

// WithStepLimit sets the upper bound applied to every run.
func WithStepLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.StepLimit = n
		}
	}
}

// WithTapeLimit sets the maximum number of cells a request tape may hold.
func WithTapeLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.TapeLimit = n
		}
	}
}

// WithBodyLimit sets the maximum size of a run request body, in bytes.
func WithBodyLimit(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.BodyLimit = n
		}
	}
}

// RunRequest is the body of POST /machines/{name}/run.
type RunRequest struct {
	Tape     *string `json:"tape,omitempty"` // defaults to the machine's sample tape
	Offset   int     `json:"offset"`
	MaxSteps int     `json:"max_steps"`
}

// RunResponse carries the outcome of a run. Error is set when the run stopped early.
type RunResponse struct {
	Machine string         `json:"machine"`
	Result  *runner.Result `json:"result"`
	Error   string         `json:"error,omitempty"`
}

// MachineSummary is one entry of GET /machines.
type MachineSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SampleTape  string `json:"sample_tape,omitempty"`
}

// MachineDetail is the body of GET /machines/{name}.
type MachineDetail struct {
	MachineSummary
	States      []domain.StateID `json:"states"`
	Symbols     []domain.Symbol  `json:"symbols"`
	Blank       domain.Symbol    `json:"blank"`
	Input       []domain.Symbol  `json:"input"`
	Initial     domain.StateID   `json:"initial"`
	Accepting   []domain.StateID `json:"accepting"`
	Transitions []TransitionRow  `json:"transitions"`
}

// TransitionRow is one flattened entry of a transition table.
type TransitionRow struct {
	State domain.StateID `json:"state"`
	Read  domain.Symbol  `json:"read"`
	Write domain.Symbol  `json:"write"`
	Move  int            `json:"move"`
	Next  domain.StateID `json:"next"`
}

// NewHandler creates a new HTTP handler serving the machine registry.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		Machines:  machines.Default(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		StepLimit: DefaultStepLimit,
		TapeLimit: DefaultTapeLimit,
		BodyLimit: DefaultBodyLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/machines", func(r chi.Router) {
		r.Get("/", s.ListMachines)
		r.Get("/{name}", s.GetMachine)
		r.Get("/{name}/graph", s.GetGraph)
		r.Post("/{name}/run", s.RunMachine)
	})
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}
	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "turing-http",
		"version": turing.Version,
	})
}

// ListMachines handles GET /machines.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	names := s.Machines.Names()
	out := make([]MachineSummary, 0, len(names))
	for _, name := range names {
		m, err := s.Machines.Get(name)
		if err != nil {
			continue
		}
		out = append(out, summarize(m))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetMachine handles GET /machines/{name}.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	def := m.Build()

	detail := MachineDetail{
		MachineSummary: summarize(m),
		States:         def.States.Sorted(),
		Symbols:        def.Symbols.Sorted(),
		Blank:          def.Blank,
		Input:          def.InputSymbols.Sorted(),
		Initial:        def.InitialState,
		Accepting:      def.AcceptingStates.Sorted(),
	}
	for _, k := range def.SortedKeys() {
		a := def.Transitions[k]
		detail.Transitions = append(detail.Transitions, TransitionRow{
			State: k.State, Read: k.Symbol, Write: a.Write, Move: a.Move, Next: a.Next,
		})
	}
	s.writeJSON(w, http.StatusOK, detail)
}

// GetGraph handles GET /machines/{name}/graph.
// The default is a Mermaid diagram; ?format=markdown returns the transition table instead.
// With ?tape= (and optionally ?offset=) the machine is run first and the diagram
// highlights the visited states and the state it stopped in.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	def := m.Build()
	query := r.URL.Query()

	switch query.Get("format") {
	case "", "mermaid":
		var overlay *graph.GraphOverlay
		if query.Has("tape") {
			offset, err := parseOffset(query.Get("offset"))
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err)
				return
			}
			rec := graph.NewRecorder()
			if _, err := s.run(w, r, m, query.Get("tape"), offset, 0, rec.Hooks()); err != nil && !errors.Is(err, domain.ErrStepLimit) {
				s.failRun(w, r, m, nil, err)
				return
			}
			overlay = rec.Overlay()
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, graph.GenerateMermaid(def, overlay))
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, graph.DescribeMarkdown(m.Name, m.Description, def))
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", query.Get("format")))
	}
}

// RunMachine handles POST /machines/{name}/run.
func (s *Server) RunMachine(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var body RunRequest
	if r.ContentLength != 0 {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.BodyLimit))
		if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
				return
			}
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
	}
	if body.MaxSteps < 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("max_steps must not be negative"))
		return
	}

	tape := m.SampleTape
	if body.Tape != nil {
		tape = *body.Tape
	}

	res, err := s.run(w, r, m, tape, body.Offset, body.MaxSteps)
	if err != nil {
		s.failRun(w, r, m, res, err)
		return
	}
	s.writeJSON(w, http.StatusOK, RunResponse{Machine: m.Name, Result: res})
}

// errRejected marks a run refused before it started; the response is already written.
var errRejected = errors.New("request rejected")

// run executes m on a fresh engine, bounded by the server limits.
// maxSteps lowers the step limit when positive.
func (s *Server) run(w http.ResponseWriter, r *http.Request, m machines.Machine, tape string, offset, maxSteps int, hooks ...domain.LifecycleHooks) (*runner.Result, error) {
	if n := utf8.RuneCountInString(tape); n > s.TapeLimit {
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("tape has %d cells, limit is %d", n, s.TapeLimit))
		return nil, errRejected
	}
	if err := machines.CheckTape(tape, offset); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, errRejected
	}

	engineOpts := []turing.Option{turing.WithName(m.Name), turing.WithLogger(s.Logger)}
	if s.Metrics != nil {
		engineOpts = append(engineOpts, turing.WithLifecycleHooks(s.Metrics.Hooks(m.Name)))
	}
	for _, h := range hooks {
		engineOpts = append(engineOpts, turing.WithLifecycleHooks(h))
	}
	eng, err := turing.New(m.Build(), engineOpts...)
	if err != nil {
		return nil, err
	}

	limit := s.StepLimit
	if maxSteps > 0 && maxSteps < limit {
		limit = maxSteps
	}
	return runner.NewRunner(
		runner.WithLogger(s.Logger),
		runner.WithMaxSteps(limit),
	).Run(r.Context(), eng, machines.ParseTape(tape, offset))
}

// failRun reports a run that did not complete.
func (s *Server) failRun(w http.ResponseWriter, r *http.Request, m machines.Machine, res *runner.Result, err error) {
	resp := RunResponse{Machine: m.Name, Result: res, Error: err.Error()}
	switch {
	case errors.Is(err, errRejected):
		// Already answered.
	case errors.Is(err, domain.ErrStepLimit):
		s.writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, context.Canceled):
		s.Logger.Debug("run abandoned by client", "machine", m.Name)
		s.writeJSON(w, StatusClientClosedRequest, resp)
	default:
		s.Logger.Error("run failed", "machine", m.Name, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, resp)
	}
}

// -- Helpers --

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (machines.Machine, bool) {
	m, err := s.Machines.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return machines.Machine{}, false
	}
	return m, true
}

func summarize(m machines.Machine) MachineSummary {
	return MachineSummary{Name: m.Name, Description: m.Description, SampleTape: m.SampleTape}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

func parseOffset(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", raw)
	}
	return offset, nil
}
