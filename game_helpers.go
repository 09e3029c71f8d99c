package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/rle"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

// loadPatternFile seeds sim from an RLE file; an empty name leaves the grid empty
func loadPatternFile(sim *model.Simulation, filename string) error {
	if filename == "" {
		return nil
	}

	lines, err := rle.ReadFile(filename)
	if err != nil {
		return err
	}
	if err = sim.LoadPattern(lines.Slice()); err != nil {
		return errors.Wrapf(err, "[loadPatternFile] failed to load pattern: %+v", filename)
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, sim *model.Simulation) {
	fmt.Fprintf(w, "Features: Memory Pool: %v, Workers: %d, Stop on stagnation: %v\n",
		config.UseMemoryPool, config.Workers, config.StopOnStagnation)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		sim.GetRows(), sim.GetCols(), sim.GetAliveCells())
	fmt.Fprintln(w)
}

// updateStats copies the simulation's statistics into stats
func updateStats(sim *model.Simulation, stats *utils.Stats, frameDuration time.Duration) {
	stats.Update(sim.GetGenerations(), sim.GetAliveCells(), sim.GetAverageAge(), sim.GetMaxAge(), frameDuration)
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, sim *model.Simulation, stats *utils.Stats) {
	density := 0.0
	if cells := sim.GetRows() * sim.GetCols(); cells > 0 {
		density = float64(stats.ActiveCells) / float64(cells) * 100
	}
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Avg age: %.2f | Max age: %d | %.1f gen/sec\n",
		stats.TotalGenerations, stats.ActiveCells, density, stats.AverageAge, stats.MaxAge, stats.GenerationsPerSecond)
}

// checkStopConditions determines if the run should end
func checkStopConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
