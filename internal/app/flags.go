package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"life-canvas/pkg/core"
	"life-canvas/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	CellSize float64
	Tick     time.Duration
	Width    int
	Height   int
	Mode     string
	Seed     int64
	Density  float64
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		CellSize: life.DefaultCellSize,
		Tick:     core.DefaultTickInterval,
		Width:    1280,
		Height:   720,
		Mode:     "single",
		Seed:     42,
		Density:  0.35,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in world units")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between generations while running")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial brush: single, 3x3 or 5x5")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "soup density in [0,1]")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %v", c.CellSize))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %v", c.Tick))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be within [0,1], got %v", c.Density))
	}
	if _, err := core.ParseDrawMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// WorldConfig converts the flags into a simulation configuration.
func (c *Config) WorldConfig() (life.Config, error) {
	mode, err := core.ParseDrawMode(c.Mode)
	if err != nil {
		return life.Config{}, err
	}
	cfg := life.DefaultConfig()
	cfg.CellSize = c.CellSize
	cfg.TickInterval = c.Tick
	cfg.DrawMode = mode
	return cfg, nil
}
