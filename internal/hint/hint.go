package hint

import (
	"context"
	"fmt"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/logic"
)

// TechniqueHinter surfaces the first logical step the engine's techniques
// would take, up to a caller-chosen strategy tier.
type TechniqueHinter struct{}

func New() *TechniqueHinter { return &TechniqueHinter{} }

// Hint seeds a candidate board from the grid and reports the cheapest
// applicable step. Propagating the givens already fixes sole candidates,
// so those surface as singles before any pattern technique runs.
func (h *TechniqueHinter) Hint(ctx context.Context, g domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	b, err := board.New(g)
	if err != nil {
		return domain.Hint{}, false, nil // contradictory position, nothing to suggest
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				if d := b.Digit(board.Index(r, c)); d != 0 {
					return domain.Hint{
						Message:  fmt.Sprintf("Single: only %d fits here", d),
						Cells:    []domain.CellCoord{{Row: r, Col: c}},
						Strategy: domain.StrategySingles,
					}, true, nil
				}
			}
		}
	}
	for _, t := range logic.Techniques(max) {
		snap := b.Snapshot()
		if t.Apply(b) != logic.Progress {
			b.Restore(snap)
			continue
		}
		cells := changed(&snap, b)
		b.Restore(snap)
		return domain.Hint{
			Message:  fmt.Sprintf("Try %s", t.Name()),
			Cells:    cells,
			Strategy: t.Tier(),
		}, true, nil
	}
	return domain.Hint{}, false, nil
}

// changed lists the cells a technique touched, row-major.
func changed(before, after *board.Board) []domain.CellCoord {
	var out []domain.CellCoord
	for i := 0; i < 81; i++ {
		if before.Digit(i) != after.Digit(i) || before.Candidates(i) != after.Candidates(i) {
			r, c := board.Coord(i)
			out = append(out, domain.CellCoord{Row: r, Col: c})
		}
	}
	return out
}
