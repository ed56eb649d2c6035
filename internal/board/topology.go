package board

// The 27 units (rows 0-8, columns 9-17, boxes 18-26) and each cell's 20
// peers are fixed for every standard puzzle, so they are built once at
// package init and shared read-only by all boards.

const (
	// NumUnits counts rows, columns and boxes.
	NumUnits = 27
)

var (
	units [NumUnits][9]int
	peers [81][20]int
)

// Index converts (row, col) to a 0..80 cell index.
func Index(r, c int) int { return r*9 + c }

// Coord converts a cell index back to (row, col).
func Coord(i int) (r, c int) { return i / 9, i % 9 }

// BoxOf returns the 0..8 box number of a cell.
func BoxOf(i int) int {
	r, c := Coord(i)
	return (r/3)*3 + c/3
}

// Unit returns the 9 cell indices of a unit: 0-8 rows, 9-17 columns,
// 18-26 boxes.
func Unit(u int) [9]int { return units[u] }

// Peers returns the 20 cells sharing a row, column or box with i.
func Peers(i int) [20]int { return peers[i] }

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			units[r][c] = Index(r, c)
			units[9+c][r] = Index(r, c)
		}
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for p := 0; p < 9; p++ {
			units[18+b][p] = Index(br+p/3, bc+p%3)
		}
	}
	for i := 0; i < 81; i++ {
		seen := [81]bool{}
		seen[i] = true
		n := 0
		r, c := Coord(i)
		for _, u := range []int{r, 9 + c, 18 + BoxOf(i)} {
			for _, j := range units[u] {
				if !seen[j] {
					seen[j] = true
					peers[i][n] = j
					n++
				}
			}
		}
	}
}
