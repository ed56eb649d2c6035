package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/logic"
	"svw.info/sudokulogic/internal/ports"
	"svw.info/sudokulogic/internal/search"
	"svw.info/sudokulogic/internal/validator"
)

// LogicSolver combines constraint propagation with guided backtracking.
// The technique list is fixed at construction; an empty list leaves pure
// backtracking, which is slower but still complete.
type LogicSolver struct {
	techs []logic.Technique
	check ports.Validator
}

// New builds a solver over an explicit technique list.
func New(techs []logic.Technique) *LogicSolver {
	return &LogicSolver{techs: techs, check: validator.New()}
}

// NewDefault enables the full canonical technique list.
func NewDefault() *LogicSolver {
	return New(logic.Techniques(domain.StrategyXWing))
}

// NewBacktrackOnly disables all deduction techniques.
func NewBacktrackOnly() *LogicSolver {
	return New(nil)
}

// Solve returns the completed grid. Conflicting givens are an input error,
// detected before any search; exhausting every branch is ErrUnsolvable.
func (s *LogicSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	b, err := s.prepare(ctx, g)
	if err != nil {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, err
	}
	out, tally, err := search.New(logic.NewEngine(s.techs)).First(ctx, b)
	st := ports.Stats{Guesses: tally.Guesses, Deductions: tally.Deductions, Duration: time.Since(start)}
	if err != nil {
		return domain.Grid{}, st, err
	}
	return out, st, nil
}

// Unique reports whether the puzzle has exactly one solution.
func (s *LogicSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	b, err := s.prepare(ctx, g)
	if err != nil {
		if errors.Is(err, domain.ErrUnsolvable) {
			return false, ports.Stats{Duration: time.Since(start)}, nil
		}
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	found, _, tally, err := search.New(logic.NewEngine(s.techs)).Count(ctx, b, 2)
	st := ports.Stats{Guesses: tally.Guesses, Deductions: tally.Deductions, Duration: time.Since(start)}
	if err != nil {
		return false, st, err
	}
	return found == 1, st, nil
}

// prepare screens the givens and seeds the candidate board. A direct peer
// conflict among givens is invalid input; a conflict that only appears
// while propagating them means the puzzle cannot be completed.
func (s *LogicSolver) prepare(ctx context.Context, g domain.Grid) (*board.Board, error) {
	ok, conflicts, err := s.check.Validate(ctx, g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: duplicate givens at %v", domain.ErrInvalidInput, conflicts)
	}
	b, err := board.New(g)
	if err != nil {
		return nil, fmt.Errorf("%w: givens admit no completion", domain.ErrUnsolvable)
	}
	return b, nil
}
