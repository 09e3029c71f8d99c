package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sim/rle"
)

// LoadPattern decodes RLE lines (comments already stripped or not) and
// replaces the grid with the pattern centered, or cropped to its center on
// any axis where the grid is smaller than the pattern.
//
// Input without a header line is ignored. A malformed header returns an error
// and leaves the current grid untouched.
func (s *Simulation) LoadPattern(lines []string) error {
	outcome, pattern, err := s.decoder.Decode(lines)
	switch outcome {
	case rle.NoHeader:
		return nil
	case rle.Malformed:
		return errors.Wrap(err, "[LoadPattern] failed to parse header")
	}

	grid := newGrid(s.pool, s.rows, s.cols)
	rowOffset := patternOffset(s.rows, pattern.Height)
	colOffset := patternOffset(s.cols, pattern.Width)
	s.logger.Printf("placing %dx%d pattern on %dx%d grid, offset row=%d col=%d",
		pattern.Width, pattern.Height, s.cols, s.rows, rowOffset, colOffset)

	for row := range s.rows {
		prow := row + rowOffset
		if prow < 0 || prow >= pattern.Height {
			continue
		}
		for col := range s.cols {
			pcol := col + colOffset
			if pcol < 0 || pcol >= pattern.Width {
				continue
			}
			if pattern.At(prow, pcol) {
				grid.cell(row, col).SetAlive()
			} else {
				grid.cell(row, col).Reset()
			}
		}
	}

	s.replaceGrid(grid)
	return nil
}

// patternOffset maps a grid index to a pattern index along one axis
// (pattern index = grid index + offset). A pattern that fits is centered; a
// pattern that does not is cropped to its center.
func patternOffset(gridSize, patternSize int) int {
	if gridSize >= patternSize {
		return -((gridSize - patternSize) / 2)
	}
	return (patternSize - gridSize) / 2
}

// ApplyPattern resets the simulation, including the generation counter, and
// brings to life the pattern's live cells around the grid center. Cells that
// fall outside the grid are dropped.
func (s *Simulation) ApplyPattern(pattern *rle.Pattern) {
	s.Reset()
	if pattern == nil {
		return
	}

	g := s.current.Load()
	startRow := s.rows/2 - pattern.Height/2
	startCol := s.cols/2 - pattern.Width/2
	for prow := range pattern.Height {
		for pcol := range pattern.Width {
			if !pattern.At(prow, pcol) {
				continue
			}
			if row, col := startRow+prow, startCol+pcol; g.InBounds(row, col) {
				g.cell(row, col).SetAlive()
			}
		}
	}
}
