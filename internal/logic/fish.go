package logic

import (
	"math/bits"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

// XWing finds a digit restricted to the same two columns in two rows (or
// the transpose) and removes it from those columns everywhere else.
type XWing struct{}

func (XWing) Name() string { return "x-wing" }
func (XWing) Tier() domain.StrategyTier { return domain.StrategyXWing }

func (XWing) Apply(b *board.Board) Outcome {
	before := b.Moves()
	for d := uint8(1); d <= 9; d++ {
		if fish(b, d, false) == Contradiction || fish(b, d, true) == Contradiction {
			return Contradiction
		}
	}
	return outcome(b, before, nil)
}

// fish scans line pairs for the pattern; transposed swaps the roles of
// rows and columns.
func fish(b *board.Board, d uint8, transposed bool) Outcome {
	var masks [9]uint16
	for a := 0; a < 9; a++ {
		for o := 0; o < 9; o++ {
			if b.Has(cellAt(a, o, transposed), d) {
				masks[a] |= 1 << o
			}
		}
	}
	for a1 := 0; a1 < 9; a1++ {
		if bits.OnesCount16(masks[a1]) != 2 {
			continue
		}
		for a2 := a1 + 1; a2 < 9; a2++ {
			if masks[a2] != masks[a1] {
				continue
			}
			for m := masks[a1]; m != 0; m &= m - 1 {
				o := bits.TrailingZeros16(m)
				for a := 0; a < 9; a++ {
					if a == a1 || a == a2 {
						continue
					}
					i := cellAt(a, o, transposed)
					if !b.Has(i, d) {
						continue
					}
					if err := b.Eliminate(i, d); err != nil {
						return Contradiction
					}
				}
			}
		}
	}
	return NoProgress
}

func cellAt(line, off int, transposed bool) int {
	if transposed {
		return board.Index(off, line)
	}
	return board.Index(line, off)
}
