package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseGridForms(t *testing.T) {
	line := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	multi := strings.ReplaceAll(line, ".", "0")

	g1, err := ParseGrid(line)
	if err != nil {
		t.Fatalf("parse line form: %v", err)
	}
	g2, err := ParseGrid(multi)
	if err != nil {
		t.Fatalf("parse zero form: %v", err)
	}
	if g1 != g2 {
		t.Fatalf("dot and zero blanks should parse identically")
	}
	if g1[0][0] != 5 || g1[0][1] != 3 || g1[8][8] != 9 {
		t.Fatalf("wrong cells: %v", g1)
	}
	if got := g1.Line(); got != line {
		t.Fatalf("Line() roundtrip:\n got %s\nwant %s", got, line)
	}
}

func TestParseGridRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"short", strings.Repeat(".", 80)},
		{"long", strings.Repeat(".", 82)},
		{"symbol", strings.Repeat(".", 80) + "x"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGrid(tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestGridStringHasBoxSeparators(t *testing.T) {
	var g Grid
	g[0][0] = 5
	s := g.String()
	if !strings.Contains(s, "---------+---------+---------") {
		t.Fatalf("missing horizontal separator:\n%s", s)
	}
	if !strings.Contains(s, " 5 ") || !strings.Contains(s, " _ ") {
		t.Fatalf("missing cell rendering:\n%s", s)
	}
}
