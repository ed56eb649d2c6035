package logic

import (
	"testing"

	"svw.info/sudokulogic/internal/board"
	"svw.info/sudokulogic/internal/domain"
)

func emptyBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(domain.Grid{})
	if err != nil {
		t.Fatalf("empty board: %v", err)
	}
	return b
}

// strip removes digit d from every listed cell.
func strip(t *testing.T, b *board.Board, d uint8, cells ...int) {
	t.Helper()
	for _, i := range cells {
		if err := b.Eliminate(i, d); err != nil {
			t.Fatalf("eliminate %d from %d: %v", d, i, err)
		}
	}
}

func TestHiddenSingleInRow(t *testing.T) {
	b := emptyBoard(t)
	// digit 1 ruled out of row 8 everywhere but (8,0)
	for c := 1; c < 9; c++ {
		strip(t, b, 1, board.Index(8, c))
	}
	if out := (HiddenSingle{}).Apply(b); out != Progress {
		t.Fatalf("outcome = %v, want Progress", out)
	}
	if got := b.Digit(board.Index(8, 0)); got != 1 {
		t.Fatalf("(8,0) = %d, want 1", got)
	}
}

func TestHiddenSingleInColumnAndBox(t *testing.T) {
	b := emptyBoard(t)
	// digit 2 only possible at (0,8) within column 8
	for r := 1; r < 9; r++ {
		strip(t, b, 2, board.Index(r, 8))
	}
	// digit 3 only possible at (3,3) within the center box
	for _, i := range board.Unit(18 + 4) {
		if i != board.Index(3, 3) {
			strip(t, b, 3, i)
		}
	}
	if out := (HiddenSingle{}).Apply(b); out != Progress {
		t.Fatalf("outcome = %v, want Progress", out)
	}
	if got := b.Digit(board.Index(0, 8)); got != 2 {
		t.Fatalf("(0,8) = %d, want 2", got)
	}
	if got := b.Digit(board.Index(3, 3)); got != 3 {
		t.Fatalf("(3,3) = %d, want 3", got)
	}
}

func TestHiddenSingleContradiction(t *testing.T) {
	b := emptyBoard(t)
	// digit 5 impossible everywhere in row 0, nowhere placed
	for c := 0; c < 9; c++ {
		strip(t, b, 5, board.Index(0, c))
	}
	if out := (HiddenSingle{}).Apply(b); out != Contradiction {
		t.Fatalf("outcome = %v, want Contradiction", out)
	}
}

func TestNakedSingleAssigns(t *testing.T) {
	b := emptyBoard(t)
	i := board.Index(2, 2)
	// leave only digit 4; stop at two candidates so the board's own
	// cascade does not fire first
	for d := uint8(1); d <= 9; d++ {
		if d != 4 && d != 9 {
			strip(t, b, d, i)
		}
	}
	if b.Digit(i) != 0 {
		t.Fatalf("cell fixed prematurely")
	}
	strip(t, b, 9, i)
	// the cascade already promoted it; NakedSingle must agree silently
	if b.Digit(i) != 4 {
		t.Fatalf("(2,2) = %d, want 4", b.Digit(i))
	}
	if out := (NakedSingle{}).Apply(b); out == Contradiction {
		t.Fatalf("unexpected contradiction")
	}
}
