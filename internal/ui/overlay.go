//go:build ebiten

package ui

import (
	"image/color"

	"life-canvas/internal/render"
	"life-canvas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Preview draws the translucent brush outline under the cursor.
type Preview struct {
	fill color.NRGBA
}

// NewPreview constructs a preview drawn in white at 30% opacity.
func NewPreview() *Preview {
	return &Preview{fill: color.NRGBA{R: 255, G: 255, B: 255, A: 77}}
}

// Draw renders the brush square covering cells.
func (p *Preview) Draw(screen *ebiten.Image, cam *render.Camera, cells []core.Cell, cellSize float64) {
	b := screen.Bounds()
	r, ok := render.BrushRect(cam, cells, b.Dx(), b.Dy(), cellSize)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), p.fill, false)
}
