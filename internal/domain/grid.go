package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads a puzzle from its textual form: 81 cells row-major, each a
// digit 1-9 or a blank marker ('0' or '.'). Whitespace and newlines are
// ignored, so both single-line and 9-line layouts parse.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\r' || r == '\t':
			continue
		case r == '0' || r == '.' || r == '_':
			i++
		case r >= '1' && r <= '9':
			if i < 81 {
				g[i/9][i%9] = uint8(r - '0')
			}
			i++
		default:
			return Grid{}, fmt.Errorf("%w: illegal symbol %q", ErrInvalidInput, r)
		}
	}
	if i != 81 {
		return Grid{}, fmt.Errorf("%w: got %d cells, want 81", ErrInvalidInput, i)
	}
	return g, nil
}

// Line renders the grid as the canonical 81-character row-major form,
// '.' for empty cells.
func (g Grid) Line() string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + v)
			}
		}
	}
	return b.String()
}

// String renders the grid with box separators for terminal display.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("---------+---------+---------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteByte('|')
			}
			if v := g[r][c]; v == 0 {
				b.WriteString(" _ ")
			} else {
				fmt.Fprintf(&b, " %d ", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Complete reports whether every cell holds a digit.
func (g Grid) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
