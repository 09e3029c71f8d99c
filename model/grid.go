package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is returned by low-level grid access outside [0,rows)x[0,cols).
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid stores exactly one Cell for every coordinate in [0,rows)x[0,cols),
// laid out row-major.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an all-dead grid with the specified dimensions.
// Negative dimensions are treated as 0.
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// GetRows returns the number of rows in the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns in the grid
func (g *Grid) GetCols() int {
	return g.cols
}

// Reset resizes the grid to new dimensions and kills every cell
func (g *Grid) Reset(rows, cols int) {
	rows, cols = max(rows, 0), max(cols, 0)
	g.rows = rows
	g.cols = cols

	// Reuse the backing array if it is large enough
	if cap(g.cells) < rows*cols {
		g.cells = make([]Cell, rows*cols)
		return
	}
	g.cells = g.cells[:rows*cols]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns a copy of the cell at (row, col)
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// Set replaces the cell at (row, col)
func (g *Grid) Set(row, col int, cell Cell) error {
	if !g.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row*g.cols+col] = cell
	return nil
}

// cell returns a pointer into the grid; callers have already validated bounds.
func (g *Grid) cell(row, col int) *Cell {
	return &g.cells[row*g.cols+col]
}

// IsAlive returns the state of a cell, false outside the grid
func (g *Grid) IsAlive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col].alive
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of
// (row, col), clipped at the grid edges
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		base := r * g.cols
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[base+c].alive {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].alive {
			count++
		}
	}
	return
}

// AgeSummary scans the grid once and returns the live cell count, the sum of
// their ages and the largest age (0 when nothing is alive).
func (g *Grid) AgeSummary() (alive, totalAge, maxAge int) {
	for i := range g.cells {
		c := &g.cells[i]
		if !c.alive {
			continue
		}
		alive++
		totalAge += c.age
		maxAge = max(maxAge, c.age)
	}
	return
}

// GetGridHash returns an MD5 hash of the alive/dead layout. Ages are ignored.
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells)+16)
	buf = fmt.Appendf(buf[:0], "%dx%d;", g.rows, g.cols)
	for i := range g.cells {
		if g.cells[i].alive {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
