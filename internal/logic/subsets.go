package logic

import (
	"math/bits"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

// NakedSubset finds Size open cells in a unit whose candidates union to
// exactly Size digits, then strips those digits from the rest of the unit.
// Size 2 is the naked pair, size 3 the naked triple.
type NakedSubset struct {
	Size int
}

func (t NakedSubset) Name() string {
	if t.Size == 2 {
		return "naked pair"
	}
	return "naked triple"
}

func (t NakedSubset) Tier() domain.StrategyTier {
	if t.Size == 2 {
		return domain.StrategyPairs
	}
	return domain.StrategyAdvanced
}

func (t NakedSubset) Apply(b *board.Board) Outcome {
	before := b.Moves()
	for u := 0; u < board.NumUnits; u++ {
		var open []int
		for _, i := range board.Unit(u) {
			// only cells small enough to be part of the subset
			if b.Digit(i) == 0 && b.CandCount(i) <= t.Size {
				open = append(open, i)
			}
		}
		if len(open) < t.Size {
			continue
		}
		var pick [3]int
		if t.combine(b, u, open, pick[:0]) == Contradiction {
			return Contradiction
		}
	}
	return outcome(b, before, nil)
}

// combine walks Size-cell combinations of open and applies any subset found.
func (t NakedSubset) combine(b *board.Board, u int, open []int, chosen []int) Outcome {
	if len(chosen) == t.Size {
		var union uint16
		for _, i := range chosen {
			// a cascade may have fixed the cell since collection
			if b.Digit(i) != 0 {
				return NoProgress
			}
			union |= b.Candidates(i)
		}
		if bits.OnesCount16(union) != t.Size {
			return NoProgress
		}
		return t.strip(b, u, chosen, union)
	}
	res := NoProgress
	for k, i := range open {
		switch t.combine(b, u, open[k+1:], append(chosen, i)) {
		case Contradiction:
			return Contradiction
		case Progress:
			res = Progress
		}
	}
	return res
}

func (t NakedSubset) strip(b *board.Board, u int, subset []int, union uint16) Outcome {
	progress := NoProgress
	for _, i := range board.Unit(u) {
		if b.Digit(i) != 0 || contains(subset, i) {
			continue
		}
		for m := b.Candidates(i) & union; m != 0; m &= m - 1 {
			d := uint8(bits.TrailingZeros16(m)) + 1
			if err := b.Eliminate(i, d); err != nil {
				return Contradiction
			}
			progress = Progress
		}
	}
	return progress
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
