package logic

import (
	"testing"

	"svw.info/sudokulogic/internal/board"
)

func TestPointingPair(t *testing.T) {
	b := emptyBoard(t)
	// digit 1 confined to row 0 within box 0
	for _, i := range []int{
		board.Index(1, 0), board.Index(1, 1), board.Index(1, 2),
		board.Index(2, 0), board.Index(2, 1), board.Index(2, 2),
	} {
		strip(t, b, 1, i)
	}
	if out := (BoxLine{}).Apply(b); out != Progress {
		t.Fatalf("outcome = %v, want Progress", out)
	}
	for c := 3; c < 9; c++ {
		if b.Has(board.Index(0, c), 1) {
			t.Fatalf("(0,%d) kept digit 1 outside the box", c)
		}
	}
	// the box cells keep it
	for c := 0; c < 3; c++ {
		if !b.Has(board.Index(0, c), 1) {
			t.Fatalf("(0,%d) lost digit 1 inside the box", c)
		}
	}
}

func TestPointingColumn(t *testing.T) {
	b := emptyBoard(t)
	// digit 4 confined to column 3 within box 1
	for _, i := range board.Unit(18 + 1) {
		if _, c := board.Coord(i); c != 3 {
			strip(t, b, 4, i)
		}
	}
	if out := (BoxLine{}).Apply(b); out != Progress {
		t.Fatalf("outcome = %v, want Progress", out)
	}
	for r := 3; r < 9; r++ {
		if b.Has(board.Index(r, 3), 4) {
			t.Fatalf("(%d,3) kept digit 4 outside the box", r)
		}
	}
}

func TestClaiming(t *testing.T) {
	b := emptyBoard(t)
	// digit 7 confined to box 0 within row 0
	for c := 3; c < 9; c++ {
		strip(t, b, 7, board.Index(0, c))
	}
	if out := (BoxLine{}).Apply(b); out != Progress {
		t.Fatalf("outcome = %v, want Progress", out)
	}
	for r := 1; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b.Has(board.Index(r, c), 7) {
				t.Fatalf("(%d,%d) kept digit 7 off the claiming line", r, c)
			}
		}
	}
	for c := 0; c < 3; c++ {
		if !b.Has(board.Index(0, c), 7) {
			t.Fatalf("(0,%d) lost digit 7 on the claiming line", c)
		}
	}
}
