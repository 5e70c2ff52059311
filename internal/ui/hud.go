//go:build ebiten

package ui

import (
	"image/color"

	"life-canvas/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type statusProvider interface {
	Status() life.Status
}

// HUD renders the status panel in the top-left corner.
type HUD struct {
	sim     statusProvider
	version uint64
	primed  bool
	lines   string
}

// NewHUD constructs a HUD reading from the provided simulation.
func NewHUD(sim statusProvider) *HUD {
	return &HUD{sim: sim}
}

// Update rebuilds the text only when the simulation reports a change.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	st := h.sim.Status()
	if h.primed && st.Version == h.version {
		return
	}
	h.version = st.Version
	h.primed = true
	h.lines = StatusText(st)
}

// Draw paints the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.lines == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.lines)
	vector.DrawFilledRect(screen,
		float32(panelPadding-4), float32(panelPadding-4),
		float32(bounds.Dx()+8), float32(bounds.Dy()+8),
		color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	text.Draw(screen, h.lines, face, panelPadding, panelPadding-bounds.Min.Y, color.White)
}

const panelPadding = 10
