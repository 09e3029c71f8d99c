package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	Generations         int           `json:"generations"`
	FrameRate           time.Duration `json:"frame_rate"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	PatternFile         string        `json:"pattern_file"`
	DebugLog            string        `json:"debug_log"`
	PrintGrid           bool          `json:"print_grid"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                50,
		Cols:                50,
		Generations:         100,
		Workers:             1,
		UseMemoryPool:       true,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults, so a loaded file can be overridden per flag.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run (0 runs until extinction or interrupt)")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle discarded grids")
	fs.BoolVar(&c.StopOnStagnation, "stop-on-stagnation", c.StopOnStagnation, "stop when the grid repeats")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "consecutive stagnant generations before stopping")
	fs.StringVar(&c.PatternFile, "pattern", c.PatternFile, "RLE pattern file to load")
	fs.StringVar(&c.DebugLog, "debug-log", c.DebugLog, "append debug output to this file")
	fs.BoolVar(&c.PrintGrid, "print", c.PrintGrid, "print the final grid")
}

// Validate reports settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] rows must be positive: %d", c.Rows)
	case c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cols must be positive: %d", c.Cols)
	case c.Workers <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be positive: %d", c.Workers)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative: %d", c.Generations)
	}
	return nil
}
