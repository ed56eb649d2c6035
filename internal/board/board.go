package board

import (
	"errors"
	"math/bits"

	"svw.info/sudokulogic/internal/domain"
)

// ErrContradiction signals that a cell lost its last candidate or a digit
// was forced onto two peers. It drives backtracking and never reaches
// callers outside the solving engine.
var ErrContradiction = errors.New("contradiction")

// AllCandidates has bits 0-8 set, one per digit 1-9.
const AllCandidates uint16 = 0x1FF

// Board tracks the solving state: each cell is either fixed to a digit or
// carries a non-empty candidate bitmask, never both. Copying the struct by
// value is a complete snapshot.
type Board struct {
	digits [81]uint8  // 0 while unfixed
	cands  [81]uint16 // bit d-1 set when digit d remains possible; 0 once fixed
	fixed  int
	moves  int // assignments + eliminations, monotone

	// work-list of cells reduced to a single candidate, awaiting
	// promotion; always drained before an exported call returns
	queue [81]int
	qlen  int
}

// New seeds a board from raw givens, initialising every open cell's
// candidates and propagating each given. Returns ErrContradiction when the
// givens admit no completion; callers distinguish construction-time peer
// conflicts separately (see solver).
func New(g domain.Grid) (*Board, error) {
	b := &Board{}
	for i := range b.cands {
		b.cands[i] = AllCandidates
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				if err := b.Assign(Index(r, c), v); err != nil {
					return nil, err
				}
			}
		}
	}
	return b, nil
}

// Digit returns the fixed digit of cell i, 0 while unfixed.
func (b *Board) Digit(i int) uint8 { return b.digits[i] }

// Candidates returns the candidate bitmask of cell i (0 once fixed).
func (b *Board) Candidates(i int) uint16 { return b.cands[i] }

// CandCount returns how many candidates remain for cell i.
func (b *Board) CandCount(i int) int { return bits.OnesCount16(b.cands[i]) }

// Has reports whether digit d is still a candidate of cell i.
func (b *Board) Has(i int, d uint8) bool { return b.cands[i]&(1<<(d-1)) != 0 }

// FixedCount returns the number of fixed cells.
func (b *Board) FixedCount() int { return b.fixed }

// Moves returns the monotone count of assignments and eliminations; the
// engine compares it across a technique application to detect progress.
func (b *Board) Moves() int { return b.moves }

// Assign fixes cell i to digit d and eliminates d from all peers,
// promoting any peer left with a single candidate.
func (b *Board) Assign(i int, d uint8) error {
	if err := b.place(i, d); err != nil {
		return err
	}
	return b.flush()
}

// Eliminate removes digit d from cell i's candidates. A cell reduced to one
// candidate is promoted to fixed, cascading through the work-list.
func (b *Board) Eliminate(i int, d uint8) error {
	if err := b.remove(i, d); err != nil {
		return err
	}
	return b.flush()
}

// place fixes a cell without draining the work-list.
func (b *Board) place(i int, d uint8) error {
	if cur := b.digits[i]; cur != 0 {
		if cur != d {
			return ErrContradiction
		}
		return nil
	}
	b.digits[i] = d
	b.cands[i] = 0
	b.fixed++
	b.moves++
	for _, p := range peers[i] {
		if b.digits[p] == d {
			return ErrContradiction
		}
		if err := b.remove(p, d); err != nil {
			return err
		}
	}
	return nil
}

// remove clears one candidate bit and queues the cell when a single
// candidate remains.
func (b *Board) remove(i int, d uint8) error {
	if b.digits[i] != 0 {
		if b.digits[i] == d {
			return ErrContradiction
		}
		return nil
	}
	bit := uint16(1) << (d - 1)
	if b.cands[i]&bit == 0 {
		return nil
	}
	b.cands[i] &^= bit
	b.moves++
	switch bits.OnesCount16(b.cands[i]) {
	case 0:
		return ErrContradiction
	case 1:
		b.queue[b.qlen] = i
		b.qlen++
	}
	return nil
}

// flush promotes queued naked singles until the work-list is empty. An
// explicit loop rather than recursion keeps the cascade bounded.
func (b *Board) flush() error {
	for b.qlen > 0 {
		b.qlen--
		i := b.queue[b.qlen]
		if b.digits[i] != 0 {
			continue
		}
		m := b.cands[i]
		if m == 0 {
			return ErrContradiction
		}
		if bits.OnesCount16(m) != 1 {
			continue
		}
		d := uint8(bits.TrailingZeros16(m)) + 1
		if err := b.place(i, d); err != nil {
			return err
		}
	}
	return nil
}

// Solved reports whether every cell is fixed and every unit holds each
// digit exactly once.
func (b *Board) Solved() bool {
	if b.fixed != 81 {
		return false
	}
	for u := 0; u < NumUnits; u++ {
		var m uint16
		for _, i := range units[u] {
			m |= 1 << (b.digits[i] - 1)
		}
		if m != AllCandidates {
			return false
		}
	}
	return true
}

// Snapshot returns a copy that later restores the exact current state.
func (b *Board) Snapshot() Board { return *b }

// Restore rewinds the board to a snapshot.
func (b *Board) Restore(s Board) { *b = s }

// Grid extracts the fixed digits as a raw grid, 0 for open cells.
func (b *Board) Grid() domain.Grid {
	var g domain.Grid
	for i, d := range b.digits {
		g[i/9][i%9] = d
	}
	return g
}
