package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/turing/pkg/domain"
)

// Event is one NDJSON line emitted by JSONHandler.
type Event struct {
	Type   string                    `json:"type"` // "frame" or "result"
	Frame  *domain.ConfigurationDiff `json:"frame,omitempty"`
	Result *Result                   `json:"result,omitempty"`
}

// JSONHandler implements Observer for structured JSON-Lines traces.
// The first frame carries the whole configuration; later frames carry only what changed.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	last *domain.Configuration
}

// NewJSONHandler creates a handler writing NDJSON to w (os.Stdout if nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Observe(ctx context.Context, v View) error {
	cfg := v.Configuration()
	diff := domain.Diff(h.last, &cfg)
	h.last = &cfg
	if diff == nil {
		return nil
	}
	return h.Encoder.Encode(Event{Type: "frame", Frame: diff})
}

func (h *JSONHandler) Finish(ctx context.Context, res *Result) error {
	h.last = nil
	return h.Encoder.Encode(Event{Type: "result", Result: res})
}
