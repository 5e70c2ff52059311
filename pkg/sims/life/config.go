package life

import (
	"time"

	"life-canvas/pkg/core"
)

// DefaultCellSize is the side of one cell in world units.
const DefaultCellSize = 10.0

// Config holds the session constants of a World.
type Config struct {
	CellSize     float64
	TickInterval time.Duration
	DrawMode     core.DrawMode
	Paused       bool

	// MaxTicksPerFrame caps the generations one AdvanceTime call may fire.
	MaxTicksPerFrame int
}

// DefaultConfig returns the default configuration: paused, single-cell brush.
func DefaultConfig() Config {
	return Config{
		CellSize:         DefaultCellSize,
		TickInterval:     core.DefaultTickInterval,
		DrawMode:         core.Single,
		Paused:           true,
		MaxTicksPerFrame: core.DefaultMaxTicksPerFrame,
	}
}

func (c Config) normalized() Config {
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.TickInterval <= 0 {
		c.TickInterval = core.DefaultTickInterval
	}
	if c.DrawMode > core.Block5x5 {
		c.DrawMode = core.Single
	}
	return c
}
