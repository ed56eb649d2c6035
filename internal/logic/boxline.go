package logic

import (
	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

// BoxLine covers both directions of box/line interaction: a digit confined
// to one row or column inside a box is pointed out of the rest of that
// line, and a digit confined to one box inside a line is claimed out of the
// rest of that box.
type BoxLine struct{}

func (BoxLine) Name() string { return "box-line reduction" }
func (BoxLine) Tier() domain.StrategyTier { return domain.StrategyAdvanced }

func (BoxLine) Apply(b *board.Board) Outcome {
	before := b.Moves()
	for d := uint8(1); d <= 9; d++ {
		// pointing: box -> row/column
		for bx := 0; bx < 9; bx++ {
			row, col := -1, -1
			n := 0
			for _, i := range board.Unit(18 + bx) {
				if !b.Has(i, d) {
					continue
				}
				r, c := board.Coord(i)
				if n == 0 {
					row, col = r, c
				} else {
					if r != row {
						row = -1
					}
					if c != col {
						col = -1
					}
				}
				n++
			}
			if n < 2 {
				continue // singles territory
			}
			if row >= 0 {
				if clearLine(b, d, board.Unit(row), bx) == Contradiction {
					return Contradiction
				}
			}
			if col >= 0 {
				if clearLine(b, d, board.Unit(9+col), bx) == Contradiction {
					return Contradiction
				}
			}
		}
		// claiming: row/column -> box
		for u := 0; u < 18; u++ {
			bx, n := -1, 0
			for _, i := range board.Unit(u) {
				if !b.Has(i, d) {
					continue
				}
				if n == 0 {
					bx = board.BoxOf(i)
				} else if board.BoxOf(i) != bx {
					bx = -1
				}
				n++
			}
			if n < 2 || bx < 0 {
				continue
			}
			if clearBox(b, d, bx, u) == Contradiction {
				return Contradiction
			}
		}
	}
	return outcome(b, before, nil)
}

// clearLine drops digit d from the line cells outside box bx.
func clearLine(b *board.Board, d uint8, line [9]int, bx int) Outcome {
	for _, i := range line {
		if board.BoxOf(i) == bx || !b.Has(i, d) {
			continue
		}
		if err := b.Eliminate(i, d); err != nil {
			return Contradiction
		}
	}
	return NoProgress
}

// clearBox drops digit d from the box cells outside line unit u.
func clearBox(b *board.Board, d uint8, bx, u int) Outcome {
	for _, i := range board.Unit(18 + bx) {
		if onLine(i, u) || !b.Has(i, d) {
			continue
		}
		if err := b.Eliminate(i, d); err != nil {
			return Contradiction
		}
	}
	return NoProgress
}

func onLine(i, u int) bool {
	r, c := board.Coord(i)
	if u < 9 {
		return r == u
	}
	return c == u-9
}
