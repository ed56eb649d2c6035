package search

import (
	"context"
	"math/bits"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/logic"
)

// node is one open branch point: the board as it was before guessing, the
// branching cell, and the ordered digits still to try.
type node struct {
	snap   board.Board
	cell   int
	digits []uint8
	next   int
}

// Controller drives deduce-then-branch over an explicit node stack, so the
// worst-case branch depth never touches the call stack and cancellation
// has a single safe checkpoint.
type Controller struct {
	engine *logic.Engine
}

func New(e *logic.Engine) *Controller { return &Controller{engine: e} }

// Tally reports the work done by one search.
type Tally struct {
	Guesses    int
	Deductions int
}

// First solves the board and returns its completed grid, or ErrUnsolvable
// once every branch is exhausted.
func (s *Controller) First(ctx context.Context, b *board.Board) (domain.Grid, Tally, error) {
	grid, found, tally, err := s.run(ctx, b, 1)
	if err != nil {
		return domain.Grid{}, tally, err
	}
	if found == 0 {
		return domain.Grid{}, tally, domain.ErrUnsolvable
	}
	return grid, tally, nil
}

// Count explores until limit solutions are found or the space is
// exhausted, returning the number found (capped at limit) and the first
// solution grid.
func (s *Controller) Count(ctx context.Context, b *board.Board, limit int) (int, domain.Grid, Tally, error) {
	grid, found, tally, err := s.run(ctx, b, limit)
	return found, grid, tally, err
}

// run is the state machine: Deducing until fixpoint, then Solved,
// Contradicted (pop to the nearest untried candidate) or Branching (MRV
// cell, snapshot, first candidate). Only ErrTimeout escapes as an error.
func (s *Controller) run(ctx context.Context, b *board.Board, limit int) (domain.Grid, int, Tally, error) {
	var (
		stack []node
		tally Tally
		first domain.Grid
		found int
		dead  bool
	)
	for {
		if !dead {
			// Deducing
			before := b.Moves()
			out := s.engine.Run(b)
			if b.Moves() > before {
				tally.Deductions += b.Moves() - before
			}
			switch {
			case out == logic.Contradiction:
				dead = true
			case b.Solved():
				if found == 0 {
					first = b.Grid()
				}
				found++
				if found >= limit {
					return first, found, tally, nil
				}
				dead = true // keep exploring other branches
			}
		}
		if dead {
			// Contradicted: rewind to the most recent untried candidate.
			for len(stack) > 0 && stack[len(stack)-1].next >= len(stack[len(stack)-1].digits) {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return first, found, tally, nil
			}
			n := &stack[len(stack)-1]
			b.Restore(n.snap)
			d := n.digits[n.next]
			n.next++
			tally.Guesses++
			dead = b.Assign(n.cell, d) != nil
			continue
		}
		// Branching: the only cooperative cancellation point.
		if ctx.Err() != nil {
			return first, found, tally, domain.ErrTimeout
		}
		cell := mrvCell(b)
		digits := candidateDigits(b, cell)
		stack = append(stack, node{snap: b.Snapshot(), cell: cell, digits: digits, next: 1})
		tally.Guesses++
		dead = b.Assign(cell, digits[0]) != nil
	}
}

// mrvCell picks the open cell with the fewest candidates, lowest
// (row, col) on ties, for determinism.
func mrvCell(b *board.Board) int {
	best, bestN := -1, 10
	for i := 0; i < 81; i++ {
		if b.Digit(i) != 0 {
			continue
		}
		if n := b.CandCount(i); n < bestN {
			best, bestN = i, n
			if n == 2 {
				break
			}
		}
	}
	return best
}

// candidateDigits lists a cell's candidates in ascending digit order.
func candidateDigits(b *board.Board, i int) []uint8 {
	out := make([]uint8, 0, b.CandCount(i))
	for m := b.Candidates(i); m != 0; m &= m - 1 {
		out = append(out, uint8(bits.TrailingZeros16(m))+1)
	}
	return out
}
