package machines

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
)

// ErrTapeRange is returned when a seed literal would run past the largest tape position.
var ErrTapeRange = errors.New("tape out of range")

// CheckTape reports whether s fits on the tape when placed at offset.
func CheckTape(s string, offset int) error {
	n := utf8.RuneCountInString(s)
	if n > 0 && offset > math.MaxInt-(n-1) {
		return fmt.Errorf("%w: %d cells from offset %d", ErrTapeRange, n, offset)
	}
	return nil
}

// ParseTape turns a seed literal into a tape mapping: one symbol per rune,
// placed at consecutive positions starting at offset.
// Runes that would land past math.MaxInt are dropped; use CheckTape to reject them.
//
//	ParseTape("11_10", 0) == {0:"1", 1:"1", 2:"_", 3:"1", 4:"0"}
func ParseTape(s string, offset int) map[int]domain.Symbol {
	seed := make(map[int]domain.Symbol, len(s))
	pos := offset
	for _, r := range s {
		seed[pos] = domain.Symbol(r)
		if pos == math.MaxInt {
			break
		}
		pos++
	}
	return seed
}
