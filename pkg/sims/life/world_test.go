package life

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"life-canvas/pkg/core"
)

func blinker(w *World) {
	for x := 0; x < 3; x++ {
		w.Paint(core.Cell{X: x, Y: 0})
	}
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(DefaultConfig())
	if !w.IsPaused() {
		t.Fatal("world must start paused")
	}
	if w.DrawMode() != core.Single {
		t.Fatalf("default draw mode = %v, expected Single", w.DrawMode())
	}
	if w.AliveCount() != 0 || w.Generation() != 0 {
		t.Fatalf("fresh world has %d cells at generation %d", w.AliveCount(), w.Generation())
	}
	if w.TickInterval() != core.DefaultTickInterval {
		t.Fatalf("tick interval = %v", w.TickInterval())
	}
}

func TestNewWorldNormalizesConfig(t *testing.T) {
	w := NewWorld(Config{CellSize: -1, DrawMode: core.DrawMode(9)})
	if w.CellSize() != DefaultCellSize {
		t.Fatalf("cell size = %v, expected default", w.CellSize())
	}
	if w.DrawMode() != core.Single {
		t.Fatalf("invalid draw mode should fall back to Single, got %v", w.DrawMode())
	}
}

func TestPaintAndEraseUseBrush(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.SetDrawMode(core.Block5x5)
	if !w.Paint(core.Cell{X: 0, Y: 0}) {
		t.Fatal("painting on an empty board must report a change")
	}
	if w.AliveCount() != 25 {
		t.Fatalf("5x5 paint produced %d cells", w.AliveCount())
	}
	if w.Paint(core.Cell{X: 0, Y: 0}) {
		t.Fatal("repainting the same block must be a no-op")
	}

	w.SetDrawMode(core.Block3x3)
	w.Erase(core.Cell{X: 0, Y: 0})
	if w.AliveCount() != 16 {
		t.Fatalf("3x3 erase left %d cells, expected the 16-cell ring", w.AliveCount())
	}
	if w.Contains(core.Cell{X: 1, Y: 1}) || !w.Contains(core.Cell{X: 2, Y: 2}) {
		t.Fatal("erase touched the wrong cells")
	}

	w.SetDrawMode(core.Single)
	if w.Erase(core.Cell{X: 100, Y: 100}) {
		t.Fatal("erasing a dead cell must not report a change")
	}
}

func TestSetDrawModeReportsChange(t *testing.T) {
	w := NewWorld(DefaultConfig())
	if w.SetDrawMode(core.Single) {
		t.Fatal("selecting the active mode is not a change")
	}
	if !w.SetDrawMode(core.Block3x3) {
		t.Fatal("switching mode must report a change")
	}
	if w.SetDrawMode(core.DrawMode(42)) {
		t.Fatal("unknown modes are rejected")
	}
}

func TestPausedWorldIgnoresTime(t *testing.T) {
	w := NewWorld(DefaultConfig())
	blinker(w)
	before := w.AliveCells()

	for i := 0; i < 20; i++ {
		if n := w.AdvanceTime(time.Second); n != 0 {
			t.Fatalf("paused world advanced %d generations", n)
		}
	}
	after := core.NewCellSet(w.AliveCells()...)
	if !after.Equal(core.NewCellSet(before...)) || w.Generation() != 0 {
		t.Fatal("paused world must not change")
	}
}

func TestRunningWorldTicksPerInterval(t *testing.T) {
	w := NewWorld(DefaultConfig())
	blinker(w)
	if w.TogglePause() {
		t.Fatal("toggle from paused must resume")
	}

	interval := w.TickInterval()
	if n := w.AdvanceTime(interval / 2); n != 0 {
		t.Fatalf("half an interval fired %d generations", n)
	}
	if n := w.AdvanceTime(interval / 2); n != 1 {
		t.Fatalf("a full interval fired %d generations, expected 1", n)
	}
	vertical := core.NewCellSet(core.Cell{X: 1, Y: -1}, core.Cell{X: 1, Y: 0}, core.Cell{X: 1, Y: 1})
	if !core.NewCellSet(w.AliveCells()...).Equal(vertical) {
		t.Fatalf("after one tick cells = %v", w.AliveCells())
	}

	// A slow frame covering two intervals fires two generations.
	if n := w.AdvanceTime(2 * interval); n != 2 {
		t.Fatalf("two intervals fired %d generations", n)
	}
	if !core.NewCellSet(w.AliveCells()...).Equal(vertical) {
		t.Fatalf("blinker should be vertical after three generations, got %v", w.AliveCells())
	}
	if w.Generation() != 3 {
		t.Fatalf("generation = %d, expected 3", w.Generation())
	}
}

func TestPauseKeepsEditsEffective(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Paint(core.Cell{X: 4, Y: 4})
	if !w.Contains(core.Cell{X: 4, Y: 4}) {
		t.Fatal("paint must apply while paused")
	}
	if !w.Clear() || w.AliveCount() != 0 {
		t.Fatal("clear must apply while paused")
	}
	if w.Clear() {
		t.Fatal("clearing an empty board is not a change")
	}
}

func TestStepOnceIgnoresPause(t *testing.T) {
	w := NewWorld(DefaultConfig())
	blinker(w)
	w.StepOnce()
	if w.Generation() != 1 || !w.Contains(core.Cell{X: 1, Y: 1}) {
		t.Fatal("StepOnce must advance one generation while paused")
	}
}

func TestClearResetsGeneration(t *testing.T) {
	w := NewWorld(DefaultConfig())
	blinker(w)
	w.StepOnce()
	w.Clear()
	if w.Generation() != 0 {
		t.Fatalf("generation after clear = %d", w.Generation())
	}
}

func TestVersionTracksVisibleChanges(t *testing.T) {
	w := NewWorld(DefaultConfig())
	v := w.Version()

	w.Erase(core.Cell{})
	if w.Version() != v {
		t.Fatal("no-op erase must not bump the version")
	}
	w.Paint(core.Cell{})
	if w.Version() == v {
		t.Fatal("paint must bump the version")
	}
	v = w.Version()
	w.TogglePause()
	if w.Version() == v {
		t.Fatal("pause toggle must bump the version")
	}
	v = w.Version()
	w.AdvanceTime(w.TickInterval())
	if w.Version() == v {
		t.Fatal("a generation must bump the version")
	}
}

func TestStatusSnapshot(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.SetDrawMode(core.Block3x3)
	w.Paint(core.Cell{})
	st := w.Status()
	if st.Mode != core.Block3x3 || !st.Paused || st.Alive != 9 || st.Generation != 0 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestPreviewMatchesPaint(t *testing.T) {
	w := NewWorld(DefaultConfig())
	anchor := core.Cell{X: -7, Y: 12}
	preview := w.PreviewCells(anchor, core.Block3x3)
	w.SetDrawMode(core.Block3x3)
	w.Paint(anchor)
	if !core.NewCellSet(preview...).Equal(core.NewCellSet(w.AliveCells()...)) {
		t.Fatal("preview and paint must cover the same cells")
	}
}

func TestSeedLogsAndBumpsVersion(t *testing.T) {
	var buf bytes.Buffer
	w := NewWorld(DefaultConfig())
	w.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	area := core.Rect{Min: core.Cell{X: 0, Y: 0}, Max: core.Cell{X: 31, Y: 31}}
	v := w.Version()
	born := w.Seed(area, 3, 0.5)
	if born == 0 || born != w.AliveCount() {
		t.Fatalf("seed born %d, alive %d", born, w.AliveCount())
	}
	if w.Version() == v {
		t.Fatal("seeding must bump the version")
	}
	if !strings.Contains(buf.String(), "soup seeded") {
		t.Fatalf("expected a debug log line, got %q", buf.String())
	}
}
