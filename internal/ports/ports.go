package ports

import (
	"context"
	"time"

	"svw.info/sudokulogic/internal/domain"
)

// Stats captures how much work a solve took.
type Stats struct {
	Guesses    int           // branch candidates tried by the search
	Deductions int           // assignments/eliminations made by logic
	Duration   time.Duration
}

// Solver solves a grid and can test solution uniqueness.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error)
}
