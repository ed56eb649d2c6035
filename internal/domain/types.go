package domain

// Grid holds raw cell values, 0 for empty. Row-major, rows and columns 0..8.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes the next logical step a technique found.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}
