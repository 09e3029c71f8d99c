package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

func main() {
	config, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	logger := utils.DiscardLogger()
	if config.DebugLog != "" {
		debugLogger, closer, err := utils.NewDebugLogger(config.DebugLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer closer.Close()
		logger = debugLogger
	}

	sim := model.NewSimulationWithConfig(config, logger)
	if err = loadPatternFile(sim, config.PatternFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	displayGameInfo(os.Stdout, config, sim)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	stats := runGame(os.Stdout, sim, config, sigChan)

	fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.AveragePopulation)
	if config.PrintGrid {
		if err = model.NewTextRenderer().Render(os.Stdout, sim.Snapshot()); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

// runGame advances sim until the generation limit, extinction, stagnation or
// a signal, printing a status line per generation
func runGame(w io.Writer, sim *model.Simulation, config utils.Config, stop <-chan os.Signal) *utils.Stats {
	var (
		stats         = utils.NewStats()
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	sim.UpdateHistory()
	for {
		select {
		case <-stop:
			fmt.Fprintln(w, "\nShutting down gracefully...")
			return stats
		default:
		}

		if config.Generations > 0 && sim.GetGenerations() >= config.Generations {
			fmt.Fprintf(w, "Reached generation limit (%d)\n", config.Generations)
			return stats
		}

		frameStart := time.Now()
		sim.Evolve()
		updateStats(sim, stats, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if sim.UpdateHistory() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		displayGameStatus(w, sim, stats)

		if done, reason := checkStopConditions(sim.GetAliveCells(), stagnantCount, config); done {
			fmt.Fprintf(w, "Stopping: %s\n", reason)
			return stats
		}

		time.Sleep(config.FrameRate)
	}
}

// loadConfig reads an optional -config JSON file, then applies flags on top
func loadConfig(args []string) (utils.Config, error) {
	var configFile string
	config := utils.DefaultConfig()
	if err := newFlagSet(&config, &configFile).Parse(args); err != nil || configFile == "" {
		if err != nil {
			return config, err
		}
		return config, config.Validate()
	}

	config, err := utils.LoadConfig(configFile)
	if err != nil {
		return config, err
	}
	if err = newFlagSet(&config, &configFile).Parse(args); err != nil {
		return config, err
	}
	return config, config.Validate()
}

func newFlagSet(config *utils.Config, configFile *string) *flag.FlagSet {
	fs := flag.NewFlagSet("go-gol-sim", flag.ContinueOnError)
	fs.StringVar(configFile, "config", *configFile, "JSON configuration file")
	config.Bind(fs)
	return fs
}
