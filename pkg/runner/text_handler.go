package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWindow is the number of cells shown on each side of the head.
const DefaultWindow = 10

// CellStyler decorates the symbol under the head (e.g. ANSI colours).
// It must not change the printed width of the cell.
type CellStyler func(string) string

// TextHandler prints a window of the tape around the head, one frame per step:
//
//	... _ _ 1 1 _ 1 0 _ _ ... state=a
//	          ^
type TextHandler struct {
	Writer io.Writer
	Window int
	Styler CellStyler
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithWindow sets the number of cells shown on each side of the head.
func WithWindow(n int) TextHandlerOption {
	return func(h *TextHandler) {
		if n >= 0 {
			h.Window = n
		}
	}
}

// WithCellStyler configures how the head cell is highlighted.
func WithCellStyler(s CellStyler) TextHandlerOption {
	return func(h *TextHandler) {
		h.Styler = s
	}
}

// NewTextHandler creates a handler writing to w (os.Stdout if nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w, Window: DefaultWindow}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Observe prints the current frame.
func (h *TextHandler) Observe(ctx context.Context, v View) error {
	_, err := io.WriteString(h.Writer, h.Frame(v))
	return err
}

// Frame renders the tape window and the caret line for v.
func (h *TextHandler) Frame(v View) string {
	head := v.Head()

	var sb strings.Builder
	sb.WriteString("... ")
	caret := runewidth.StringWidth("... ")

	for pos := head - h.Window; pos <= head+h.Window; pos++ {
		cell := string(v.Read(pos))
		if pos < head {
			caret += runewidth.StringWidth(cell) + 1
		}
		if pos == head && h.Styler != nil {
			cell = h.Styler(cell)
		}
		sb.WriteString(cell)
		if pos < head+h.Window {
			sb.WriteByte(' ')
		}
	}

	fmt.Fprintf(&sb, " ... state=%s\n", v.CurrentState())
	sb.WriteString(strings.Repeat(" ", caret))
	sb.WriteString("^\n")
	return sb.String()
}

// Finish prints the acceptance verdict.
func (h *TextHandler) Finish(ctx context.Context, res *Result) error {
	_, err := fmt.Fprintf(h.Writer, "accepted=%t state=%s steps=%d\n", res.Accepted, res.State, res.Steps)
	return err
}
