// Package tape implements the sparse, logically infinite tape of a Turing machine.
package tape

import (
	"maps"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is an unbounded integer-indexed sequence of symbols.
// Cells that were never written read as the blank symbol.
// A Tape is owned by a single engine and is not safe for concurrent use.
type Tape struct {
	blank domain.Symbol
	cells map[int]domain.Symbol
}

// New creates a tape holding a copy of seed. Every other position is blank.
func New(blank domain.Symbol, seed map[int]domain.Symbol) *Tape {
	cells := make(map[int]domain.Symbol, len(seed))
	maps.Copy(cells, seed)
	return &Tape{blank: blank, cells: cells}
}

// Blank returns the default symbol of unwritten cells.
func (t *Tape) Blank() domain.Symbol {
	return t.blank
}

// Read returns the symbol at pos. Reading never materializes a cell.
func (t *Tape) Read(pos int) domain.Symbol {
	if sym, ok := t.cells[pos]; ok {
		return sym
	}
	return t.blank
}

// Write stores sym at pos, overwriting any prior value.
func (t *Tape) Write(pos int, sym domain.Symbol) {
	t.cells[pos] = sym
}

// Len returns the number of written cells, including cells written with the blank symbol.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Bounds returns the lowest and highest written positions.
// ok is false when nothing has been written.
func (t *Tape) Bounds() (lo, hi int, ok bool) {
	for pos := range t.cells {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return lo, hi, ok
}

// Window returns the symbols in [from, to]. It returns nil if to < from.
func (t *Tape) Window(from, to int) []domain.Symbol {
	if to < from {
		return nil
	}
	out := make([]domain.Symbol, 0, to-from+1)
	for pos := from; pos <= to; pos++ {
		out = append(out, t.Read(pos))
	}
	return out
}

// Cells returns a copy of every written cell.
func (t *Tape) Cells() map[int]domain.Symbol {
	return maps.Clone(t.cells)
}
