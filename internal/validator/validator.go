package validator

import (
	"context"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

// FastValidator runs a bitmask duplicate scan over all 27 units.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the grid holds no duplicate digit in any unit,
// returning the coordinates of each offending cell. Empty cells are
// ignored, so partial grids validate.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	var conf []domain.CellCoord
	for u := 0; u < board.NumUnits; u++ {
		var m uint16
		for _, i := range board.Unit(u) {
			r, c := board.Coord(i)
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := uint16(1) << (val - 1)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// Solved reports whether the grid is complete and every unit is a
// permutation of 1..9.
func (v *FastValidator) Solved(ctx context.Context, g domain.Grid) bool {
	if !g.Complete() {
		return false
	}
	ok, _, _ := v.Validate(ctx, g)
	return ok
}
