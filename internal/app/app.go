//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"life-canvas/internal/render"
	"life-canvas/internal/ui"
	"life-canvas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyDigit1, ActionModeSingle},
	{ebiten.KeyDigit2, ActionMode3x3},
	{ebiten.KeyDigit3, ActionMode5x5},
	{ebiten.KeyTab, ActionCycleMode},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyR, ActionSeed},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.Painter
	hud     *ui.HUD
	preview *ui.Preview

	last time.Time

	cells        []core.Cell
	cellsVersion uint64
	cellsPrimed  bool
}

// New constructs a Game from the command-line configuration.
func New(cfg *Config, log *slog.Logger) (*Game, error) {
	ctl, err := NewController(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		ctl:     ctl,
		painter: render.NewPainter(color.White, color.Black),
		hud:     ui.NewHUD(ctl.World),
		preview: ui.NewPreview(),
	}, nil
}

// Update handles per-frame input, then advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) && !g.ctl.Handle(ka.action) {
			return ebiten.Termination
		}
	}

	mx, my := ebiten.CursorPosition()
	w, h := g.ctl.Viewport()
	_, wheel := ebiten.Wheel()
	g.ctl.Pointer(Pointer{
		X:      float64(mx),
		Y:      float64(my),
		Inside: mx >= 0 && my >= 0 && mx < w && my < h,
		Paint:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Erase:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Pan:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Wheel:  wheel,
	})

	now := time.Now()
	if !g.last.IsZero() {
		g.ctl.Tick(now.Sub(g.last))
	}
	g.last = now

	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.ctl.World
	if !g.cellsPrimed || world.Version() != g.cellsVersion {
		g.cells = world.AliveCells()
		g.cellsVersion = world.Version()
		g.cellsPrimed = true
	}
	g.painter.Draw(screen, g.ctl.Camera, g.cells, world.CellSize())
	g.preview.Draw(screen, g.ctl.Camera, g.ctl.Preview(), world.CellSize())
	g.hud.Draw(screen)
}

// Layout tracks the window size so screen coordinates map one to one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctl.Resize(outsideWidth, outsideHeight)
	return g.ctl.Viewport()
}
