package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "O"
	gridPosDead  = "."
)

// TextRenderer formats a grid as plain text, one line per row
type TextRenderer struct {
	Alive string
	Dead  string
}

// NewTextRenderer returns a renderer using "O" for live and "." for dead cells
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Alive: gridPosAlive, Dead: gridPosDead}
}

// String renders the grid
func (r *TextRenderer) String(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols*max(len(r.Alive), len(r.Dead)) + 1))
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row*g.cols+col].alive {
				sb.WriteString(r.Alive)
			} else {
				sb.WriteString(r.Dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render writes the grid to w
func (r *TextRenderer) Render(w io.Writer, g *Grid) error {
	if _, err := io.WriteString(w, r.String(g)); err != nil {
		return errors.Wrap(err, "[Render] failed to write grid")
	}
	return nil
}
