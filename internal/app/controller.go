package app

import (
	"log/slog"
	"time"

	"life-canvas/internal/render"
	"life-canvas/pkg/core"
	"life-canvas/pkg/sims/life"
)

// Action is a discrete user command decoded from the keyboard.
type Action int

// Keyboard actions understood by Controller.Handle.
const (
	ActionNone Action = iota
	ActionTogglePause
	ActionClear
	ActionModeSingle
	ActionMode3x3
	ActionMode5x5
	ActionCycleMode
	ActionStep
	ActionSeed
	ActionQuit
)

// Pointer is the per-frame mouse state in screen pixels.
type Pointer struct {
	X, Y   float64
	Inside bool

	Paint bool
	Erase bool
	Pan   bool
	Wheel float64
}

// Controller applies input to a World and camera independent of any window
// library. One frame is: Handle each action, then Pointer, then Tick.
type Controller struct {
	World  *life.World
	Camera *render.Camera

	width, height int
	seed          int64
	density       float64

	lastPan  core.Vec
	panning  bool
	hover    core.Cell
	hasHover bool
	log      *slog.Logger
}

// NewController wires a fresh World built from cfg.
func NewController(cfg *Config, log *slog.Logger) (*Controller, error) {
	wc, err := cfg.WorldConfig()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	world := life.NewWorld(wc)
	world.SetLogger(log)
	return &Controller{
		World:   world,
		Camera:  render.NewCamera(),
		width:   cfg.Width,
		height:  cfg.Height,
		seed:    cfg.Seed,
		density: cfg.Density,
		log:     log,
	}, nil
}

// Resize records the viewport size in pixels.
func (c *Controller) Resize(w, h int) {
	if w > 0 && h > 0 {
		c.width, c.height = w, h
	}
}

// Viewport returns the viewport size in pixels.
func (c *Controller) Viewport() (int, int) { return c.width, c.height }

// Handle applies a keyboard action. It returns false when the user asked to
// quit.
func (c *Controller) Handle(a Action) bool {
	switch a {
	case ActionTogglePause:
		c.World.TogglePause()
	case ActionClear:
		c.World.Clear()
	case ActionModeSingle:
		c.World.SetDrawMode(core.Single)
	case ActionMode3x3:
		c.World.SetDrawMode(core.Block3x3)
	case ActionMode5x5:
		c.World.SetDrawMode(core.Block5x5)
	case ActionCycleMode:
		c.World.SetDrawMode(c.World.DrawMode().Next())
	case ActionStep:
		c.World.StepOnce()
	case ActionSeed:
		area := c.Camera.VisibleCells(c.width, c.height, c.World.CellSize())
		c.World.Seed(area, c.seed, c.density)
		c.seed++
	case ActionQuit:
		c.log.Info("quit requested", "generation", c.World.Generation(), "alive", c.World.AliveCount())
		return false
	}
	return true
}

// CellAt maps a screen position to the grid cell under it.
func (c *Controller) CellAt(sx, sy float64) core.Cell {
	return core.WorldToCell(c.Camera.ScreenToWorld(sx, sy, c.width, c.height), c.World.CellSize())
}

// Pointer applies mouse painting, panning and zooming for one frame.
func (c *Controller) Pointer(p Pointer) {
	if p.Wheel != 0 {
		c.Camera.ZoomBy(p.Wheel)
	}

	if p.Pan && p.Inside {
		cur := core.Vec{X: p.X, Y: p.Y}
		if c.panning {
			c.Camera.Pan(cur.X-c.lastPan.X, cur.Y-c.lastPan.Y)
		}
		c.lastPan = cur
		c.panning = true
	} else {
		c.panning = false
	}

	c.hasHover = p.Inside
	if !p.Inside {
		return
	}
	c.hover = c.CellAt(p.X, p.Y)
	switch {
	case p.Paint:
		c.World.Paint(c.hover)
	case p.Erase:
		c.World.Erase(c.hover)
	}
}

// Tick feeds the frame's elapsed time to the simulation.
func (c *Controller) Tick(delta time.Duration) int {
	return c.World.AdvanceTime(delta)
}

// Preview returns the cells under the brush at the last hover position.
func (c *Controller) Preview() []core.Cell {
	if !c.hasHover {
		return nil
	}
	return c.World.PreviewCells(c.hover, c.World.DrawMode())
}
