package model

import (
	"bytes"
	"testing"
)

func TestTextRenderer(t *testing.T) {
	g := NewGrid(2, 3)
	_ = g.Set(0, 1, NewCell(true))
	_ = g.Set(1, 2, NewCell(true))

	r := NewTextRenderer()
	want := ".O.\n..O\n"
	if got := r.String(g); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, g); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Fatalf("Render wrote %q, want %q", buf.String(), want)
	}

	custom := &TextRenderer{Alive: "##", Dead: "  "}
	if got := custom.String(g); got != "  ##  \n    ##\n" {
		t.Fatalf("custom String() = %q", got)
	}
}
