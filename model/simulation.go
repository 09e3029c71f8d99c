package model

import (
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-sim/rle"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

// historySize is the number of recent grid hashes kept for cycle detection
const historySize = 5

// Simulation owns a grid and advances it one generation at a time.
//
// The published grid is swapped atomically on every Evolve, so a concurrent
// reader holding Snapshot() sees either the previous or the new generation.
// The grid it holds becomes the write buffer of the following Evolve. A grid
// superseded by LoadPattern or Resize goes back to the GridPool and may be
// cleared and reused by a later reload, so readers must drop it first.
type Simulation struct {
	rows int
	cols int

	current     atomic.Pointer[Grid]
	spare       *Grid
	generations int

	workers int
	pool    *GridPool
	history []string

	logger  *log.Logger
	decoder *rle.Decoder
}

// NewSimulation creates a simulation with an all-dead rows x cols grid
func NewSimulation(rows, cols int) *Simulation {
	return newSimulation(rows, cols, 1, nil, nil)
}

// NewSimulationWithConfig creates a simulation sized and tuned by config.
// A nil logger discards debug output.
func NewSimulationWithConfig(config utils.Config, logger *log.Logger) *Simulation {
	var pool *GridPool
	if config.UseMemoryPool {
		pool = NewGridPool()
	}
	return newSimulation(config.Rows, config.Cols, config.Workers, pool, logger)
}

func newSimulation(rows, cols, workers int, pool *GridPool, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = utils.DiscardLogger()
	}
	s := &Simulation{
		rows:    max(rows, 0),
		cols:    max(cols, 0),
		workers: max(workers, 1),
		pool:    pool,
		logger:  logger,
		decoder: rle.NewDecoder(logger),
	}
	s.current.Store(newGrid(pool, s.rows, s.cols))
	return s
}

// Snapshot returns the currently published grid
func (s *Simulation) Snapshot() *Grid {
	return s.current.Load()
}

// GetRows returns the number of rows in the grid
func (s *Simulation) GetRows() int {
	return s.rows
}

// GetCols returns the number of columns in the grid
func (s *Simulation) GetCols() int {
	return s.cols
}

// SetRows changes the row count and rebuilds the grid all-dead
func (s *Simulation) SetRows(rows int) {
	s.Resize(rows, s.cols)
}

// SetCols changes the column count and rebuilds the grid all-dead
func (s *Simulation) SetCols(cols int) {
	s.Resize(s.rows, cols)
}

// Resize rebuilds the grid all-dead at the new dimensions. The generation
// counter is kept.
func (s *Simulation) Resize(rows, cols int) {
	s.rows, s.cols = max(rows, 0), max(cols, 0)
	s.logger.Printf("resize to %dx%d", s.rows, s.cols)
	s.replaceGrid(newGrid(s.pool, s.rows, s.cols))
}

// ToggleCell brings the cell at (row, col) to life if it is dead.
// It never kills a live cell, and out-of-bounds coordinates are ignored.
func (s *Simulation) ToggleCell(row, col int) {
	g := s.current.Load()
	if !g.InBounds(row, col) {
		return
	}
	g.cell(row, col).SetAlive()
}

// CountLiveNeighbors returns the number of live cells around (row, col)
func (s *Simulation) CountLiveNeighbors(row, col int) int {
	return s.current.Load().CountLiveNeighbors(row, col)
}

// Evolve advances the grid by exactly one generation. Every next-state is
// computed from the pre-step grid before the new grid is published.
func (s *Simulation) Evolve() {
	cur := s.current.Load()
	next := s.spare
	if next == nil || next.rows != cur.rows || next.cols != cur.cols {
		next = NewGrid(cur.rows, cur.cols)
	}

	s.nextGeneration(cur, next)

	s.spare = cur
	s.current.Store(next)
	s.generations++
	s.logger.Printf("generation %d", s.generations)
}

// nextGeneration fills next from cur, splitting rows across workers
func (s *Simulation) nextGeneration(cur, next *Grid) {
	if s.workers <= 1 || cur.rows <= 1 {
		evolveRows(cur, next, 0, cur.rows)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (cur.rows + s.workers - 1) / s.workers // Ceiling division
	)
	eg.SetLimit(s.workers)

	for startRow := 0; startRow < cur.rows; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker, cur.rows)
		eg.Go(func() error {
			evolveRows(cur, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		s.logger.Printf("error in parallel processing: %v", err)
	}
}

// evolveRows writes rows [startRow, endRow) of next. Every cell in the band is
// replaced, so next does not need clearing beforehand.
func evolveRows(cur, next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		base := row * cur.cols
		for col := 0; col < cur.cols; col++ {
			next.cells[base+col] = cur.cells[base+col].Next(cur.CountLiveNeighbors(row, col))
		}
	}
}

// Reset kills every cell and sets the generation counter to 0.
// Dimensions are unchanged.
func (s *Simulation) Reset() {
	s.current.Load().Clear()
	s.generations = 0
	s.history = nil
}

// GetAliveCells returns the number of live cells
func (s *Simulation) GetAliveCells() int {
	return s.current.Load().CountLivingCells()
}

// GetAverageAge returns the mean age of live cells, or 0 when none are alive
func (s *Simulation) GetAverageAge() float64 {
	alive, total, _ := s.current.Load().AgeSummary()
	if alive == 0 {
		return 0.0
	}
	return float64(total) / float64(alive)
}

// GetMaxAge returns the largest age among live cells, or 0 when none are alive
func (s *Simulation) GetMaxAge() int {
	_, _, maxAge := s.current.Load().AgeSummary()
	return maxAge
}

// GetGenerations returns the number of generations evolved since the last Reset
func (s *Simulation) GetGenerations() int {
	return s.generations
}

// UpdateHistory records the current layout and reports whether it repeats
// one of the last three recorded layouts (a still life or an oscillator of
// period 2 or 3)
func (s *Simulation) UpdateHistory() (stagnant bool) {
	currentHash := s.current.Load().GetGridHash()
	for i := 1; i <= min(3, len(s.history)); i++ {
		if s.history[len(s.history)-i] == currentHash {
			stagnant = true
			break
		}
	}

	s.history = append(s.history, currentHash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return stagnant
}

// replaceGrid publishes g and recycles the grids it supersedes
func (s *Simulation) replaceGrid(g *Grid) {
	old := s.current.Swap(g)
	GridToPool(old, s.pool)
	GridToPool(s.spare, s.pool)
	s.spare = nil
	s.history = nil
}
