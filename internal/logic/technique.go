package logic

import (
	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

// Outcome is the result of applying one technique across the whole board.
type Outcome int

const (
	NoProgress Outcome = iota
	Progress
	Contradiction
)

// Technique inspects a board and either narrows it or reports no progress.
// Implementations must only eliminate candidates or fix cells, never widen.
type Technique interface {
	Name() string
	Tier() domain.StrategyTier
	Apply(b *board.Board) Outcome
}

// Techniques returns the canonical list, cheapest first, capped at the
// given tier. The ordering is the contract: new techniques slot in by
// increasing cost.
func Techniques(max domain.StrategyTier) []Technique {
	all := []Technique{
		NakedSingle{},
		HiddenSingle{},
		NakedSubset{Size: 2},
		BoxLine{},
		NakedSubset{Size: 3},
		XWing{},
	}
	out := make([]Technique, 0, len(all))
	for _, t := range all {
		if t.Tier() <= max {
			out = append(out, t)
		}
	}
	return out
}

// outcome folds a mutation error and the board's move counter into an
// Outcome; shared by every technique.
func outcome(b *board.Board, before int, err error) Outcome {
	if err != nil {
		return Contradiction
	}
	if b.Moves() > before {
		return Progress
	}
	return NoProgress
}
