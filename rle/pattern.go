package rle

// Pattern is a decoded rectangular matrix of live and dead cells.
type Pattern struct {
	Width  int
	Height int
	cells  []bool
}

// NewPattern returns an all-dead pattern of the given size.
func NewPattern(width, height int) *Pattern {
	width, height = max(width, 0), max(height, 0)
	return &Pattern{Width: width, Height: height, cells: make([]bool, width*height)}
}

// At reports whether the cell at (row, col) is alive. Coordinates outside the
// pattern are dead.
func (p *Pattern) At(row, col int) bool {
	if !p.contains(row, col) {
		return false
	}
	return p.cells[row*p.Width+col]
}

// set marks (row, col) alive, dropping addresses outside the pattern.
func (p *Pattern) set(row, col int) bool {
	if !p.contains(row, col) {
		return false
	}
	p.cells[row*p.Width+col] = true
	return true
}

// LiveCells returns the number of live cells in the pattern.
func (p *Pattern) LiveCells() (count int) {
	for _, alive := range p.cells {
		if alive {
			count++
		}
	}
	return
}

// Rows returns the pattern as a row-major boolean matrix.
func (p *Pattern) Rows() [][]bool {
	out := make([][]bool, p.Height)
	for r := range p.Height {
		out[r] = append([]bool(nil), p.cells[r*p.Width:(r+1)*p.Width]...)
	}
	return out
}

func (p *Pattern) contains(row, col int) bool {
	return row >= 0 && row < p.Height && col >= 0 && col < p.Width
}
