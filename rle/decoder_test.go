package rle

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestDecodeBlock(t *testing.T) {
	outcome, p, err := Decode([]string{"x = 2, y = 2", "2o$2o!"})
	if err != nil || outcome != Decoded {
		t.Fatalf("Decode: outcome=%v err=%v", outcome, err)
	}
	if p.Width != 2 || p.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", p.Width, p.Height)
	}
	if p.LiveCells() != 4 {
		t.Fatalf("LiveCells = %d, want 4", p.LiveCells())
	}
}

func TestDecodeGlider(t *testing.T) {
	lines := []string{
		"x = 3, y = 3, rule = B3/S23",
		"bo$2bo$3o!",
	}
	outcome, p, err := Decode(lines)
	if err != nil || outcome != Decoded {
		t.Fatalf("Decode: outcome=%v err=%v", outcome, err)
	}
	want := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	got := p.Rows()
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Fatalf("row %d = %v, want %v", r, got[r], want[r])
		}
	}
}

func TestDecodeMultiLineBodyAndRowRuns(t *testing.T) {
	lines := []string{
		"#N comment kept by caller",
		"x=3,y=4",
		"  o  ",
		"#C a comment in the middle",
		"3$",
		"2bo!",
		"3o",
	}
	_, p, err := Decode(lines)
	if err != nil {
		t.Fatal(err)
	}
	if !p.At(0, 0) || !p.At(3, 2) {
		t.Fatalf("expected live cells at (0,0) and (3,2): %v", p.Rows())
	}
	if p.LiveCells() != 2 {
		t.Fatalf("LiveCells = %d, want 2 (decoding stops at '!')", p.LiveCells())
	}
}

func TestDecodeDropsOutOfRangeAndStrayCharacters(t *testing.T) {
	_, p, err := Decode([]string{"x = 2, y = 1", "5oz$$o!"})
	if err != nil {
		t.Fatal(err)
	}
	if p.LiveCells() != 2 {
		t.Fatalf("LiveCells = %d, want 2", p.LiveCells())
	}
	if p.At(5, 5) || p.At(-1, 0) {
		t.Fatal("At outside pattern must be false")
	}
}

func TestDecodeNoHeader(t *testing.T) {
	for _, lines := range [][]string{nil, {}, {"2o$2o!"}, {"#N only comments"}} {
		outcome, p, err := Decode(lines)
		if outcome != NoHeader || p != nil || err != nil {
			t.Errorf("Decode(%q) = %v, %v, %v; want NoHeader, nil, nil", lines, outcome, p, err)
		}
	}
}

func TestDecodeMalformedHeader(t *testing.T) {
	for _, header := range []string{
		"x = two, y = 2",
		"x = 2, y = ",
		"x, y = 2",
		"x = -1, y = 2",
		"x = 2.5, y = 2",
		"x = 4000000000, y = 2",
		"x = 2, y = 99999999999999999999",
		"x = 2147483647, y = 2147483647",
		"x = 8192, y = 8192",
	} {
		outcome, p, err := Decode([]string{header, "o!"})
		if outcome != Malformed || p != nil {
			t.Errorf("Decode(%q) outcome=%v pattern=%v", header, outcome, p)
		}
		if !errors.Is(err, ErrMalformedHeader) {
			t.Errorf("Decode(%q) err = %v, want ErrMalformedHeader", header, err)
		}
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		line          string
		width, height int
	}{
		{"x = 3, y = 5", 3, 5},
		{"x=10,y=1,rule=B3/S23", 10, 1},
		{"x = 4", 4, 0},
		{"  x = 7 ,  y = 8  ", 7, 8},
		{"x = 2 = 9, y = 3", 2, 3},
		{"x = 4096, y = 4096", 4096, 4096},
	}
	for _, tt := range tests {
		w, h, err := ParseHeader(tt.line)
		if err != nil {
			t.Fatalf("ParseHeader(%q): %v", tt.line, err)
		}
		if w != tt.width || h != tt.height {
			t.Errorf("ParseHeader(%q) = %d,%d want %d,%d", tt.line, w, h, tt.width, tt.height)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if Decoded.String() != "decoded" || NoHeader.String() != "no-header" || Malformed.String() != "malformed" {
		t.Fatal("unexpected Outcome strings")
	}
}
