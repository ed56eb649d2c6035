package logic

import (
	"math/bits"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

// NakedSingle fixes any cell left with exactly one candidate.
type NakedSingle struct{}

func (NakedSingle) Name() string { return "naked single" }
func (NakedSingle) Tier() domain.StrategyTier { return domain.StrategySingles }

func (NakedSingle) Apply(b *board.Board) Outcome {
	before := b.Moves()
	for i := 0; i < 81; i++ {
		if b.Digit(i) != 0 {
			continue
		}
		m := b.Candidates(i)
		if bits.OnesCount16(m) == 1 {
			d := uint8(bits.TrailingZeros16(m)) + 1
			if err := b.Assign(i, d); err != nil {
				return Contradiction
			}
		}
	}
	return outcome(b, before, nil)
}

// HiddenSingle fixes a digit that has exactly one possible cell left in a
// unit; a digit with no possible cell and no placement is a contradiction.
type HiddenSingle struct{}

func (HiddenSingle) Name() string { return "hidden single" }
func (HiddenSingle) Tier() domain.StrategyTier { return domain.StrategySingles }

func (HiddenSingle) Apply(b *board.Board) Outcome {
	before := b.Moves()
	for u := 0; u < board.NumUnits; u++ {
		cells := board.Unit(u)
		for d := uint8(1); d <= 9; d++ {
			spot, count := -1, 0
			placed := false
			for _, i := range cells {
				if b.Digit(i) == d {
					placed = true
					break
				}
				if b.Has(i, d) {
					spot = i
					count++
				}
			}
			if placed {
				continue
			}
			if count == 0 {
				return Contradiction
			}
			if count == 1 {
				if err := b.Assign(spot, d); err != nil {
					return Contradiction
				}
			}
		}
	}
	return outcome(b, before, nil)
}
