package life

import (
	"log/slog"
	"time"

	"life-canvas/pkg/core"
)

// Status is a read-only snapshot of the simulation for status displays.
type Status struct {
	Mode       core.DrawMode
	Paused     bool
	Alive      int
	Generation int
	Version    uint64
}

// World owns the state of one Game of Life session: the alive cells, the
// active brush, the pause flag and the tick scheduler. It is meant to be
// driven from a single goroutine, one frame at a time: apply input first,
// then call AdvanceTime.
type World struct {
	cfg   Config
	cells *core.CellSet
	mode  core.DrawMode

	paused bool
	clock  *core.FixedStep

	generation int
	version    uint64

	log *slog.Logger
}

// NewWorld returns an empty World configured by cfg.
func NewWorld(cfg Config) *World {
	cfg = cfg.normalized()
	clock := core.NewFixedStep(cfg.TickInterval)
	clock.SetMaxTicks(cfg.MaxTicksPerFrame)
	return &World{
		cfg:    cfg,
		cells:  core.NewCellSet(),
		mode:   cfg.DrawMode,
		paused: cfg.Paused,
		clock:  clock,
		log:    slog.New(slog.DiscardHandler),
	}
}

// SetLogger routes debug events to l. nil silences the World again.
func (w *World) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	w.log = l
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// CellSize returns the fixed world-space side of a cell.
func (w *World) CellSize() float64 { return w.cfg.CellSize }

// TickInterval returns the time between generations while running.
func (w *World) TickInterval() time.Duration { return w.clock.Interval() }

// Paint brings every cell under the brush at anchor to life.
func (w *World) Paint(anchor core.Cell) bool {
	changed := false
	for _, c := range core.AffectedCells(anchor, w.mode) {
		if w.cells.Insert(c) {
			changed = true
		}
	}
	if changed {
		w.version++
	}
	return changed
}

// Erase kills every cell under the brush at anchor.
func (w *World) Erase(anchor core.Cell) bool {
	changed := false
	for _, c := range core.AffectedCells(anchor, w.mode) {
		if w.cells.Remove(c) {
			changed = true
		}
	}
	if changed {
		w.version++
	}
	return changed
}

// SetDrawMode switches the active brush.
func (w *World) SetDrawMode(mode core.DrawMode) bool {
	if mode == w.mode || mode > core.Block5x5 {
		return false
	}
	w.mode = mode
	w.version++
	return true
}

// TogglePause flips between running and paused and returns the new state.
func (w *World) TogglePause() bool {
	w.SetPaused(!w.paused)
	return w.paused
}

// SetPaused sets the pause flag and reports whether it changed.
func (w *World) SetPaused(paused bool) bool {
	if paused == w.paused {
		return false
	}
	w.paused = paused
	w.version++
	w.log.Debug("pause toggled", "paused", paused, "generation", w.generation)
	return true
}

// Clear kills every cell and restarts the generation counter.
func (w *World) Clear() bool {
	removed := w.cells.Clear()
	hadGenerations := w.generation != 0
	w.generation = 0
	if removed == 0 && !hadGenerations {
		return false
	}
	w.version++
	w.log.Debug("board cleared", "removed", removed)
	return true
}

// AdvanceTime feeds elapsed frame time to the scheduler and runs every
// generation that became due. It returns the number of generations run.
// While paused the time is discarded.
func (w *World) AdvanceTime(delta time.Duration) int {
	if w.paused {
		return 0
	}
	ticks := w.clock.Advance(delta)
	for i := 0; i < ticks; i++ {
		w.advance()
	}
	return ticks
}

// StepOnce runs a single generation regardless of the pause flag.
func (w *World) StepOnce() {
	w.advance()
}

func (w *World) advance() {
	w.cells = Step(w.cells)
	w.generation++
	w.version++
}

// Seed sprinkles a noise soup over area and returns how many cells were born.
func (w *World) Seed(area core.Rect, seed int64, density float64) int {
	born := 0
	for _, c := range Soup(area, seed, density) {
		if w.cells.Insert(c) {
			born++
		}
	}
	if born > 0 {
		w.version++
	}
	w.log.Debug("soup seeded", "seed", seed, "born", born, "width", area.Width(), "height", area.Height())
	return born
}

// AliveCells returns a snapshot of the alive cells.
func (w *World) AliveCells() []core.Cell { return w.cells.Cells() }

// Contains reports whether c is alive.
func (w *World) Contains(c core.Cell) bool { return w.cells.Contains(c) }

// AliveCount returns the population.
func (w *World) AliveCount() int { return w.cells.Len() }

// IsPaused reports whether generations are suspended.
func (w *World) IsPaused() bool { return w.paused }

// DrawMode returns the active brush.
func (w *World) DrawMode() core.DrawMode { return w.mode }

// PreviewCells returns the cells a brush of the given mode would touch at
// anchor, for cursor hover feedback.
func (w *World) PreviewCells(anchor core.Cell, mode core.DrawMode) []core.Cell {
	return core.AffectedCells(anchor, mode)
}

// Generation returns how many generations ran since start or the last Clear.
func (w *World) Generation() int { return w.generation }

// Version increases whenever anything a renderer shows has changed.
func (w *World) Version() uint64 { return w.version }

// Status returns a snapshot for status displays.
func (w *World) Status() Status {
	return Status{
		Mode:       w.mode,
		Paused:     w.paused,
		Alive:      w.cells.Len(),
		Generation: w.generation,
		Version:    w.version,
	}
}
