//go:build ebiten

package render

import (
	"image/color"

	"life-canvas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws alive cells as filled squares through a camera.
type Painter struct {
	on  color.Color
	off color.Color
}

// NewPainter returns a painter using the given alive and background colours.
func NewPainter(on, off color.Color) *Painter {
	return &Painter{on: on, off: off}
}

// Draw clears dst and paints every visible cell.
func (p *Painter) Draw(dst *ebiten.Image, cam *Camera, cells []core.Cell, cellSize float64) {
	dst.Fill(p.off)
	b := dst.Bounds()
	for _, r := range CellRects(cam, cells, b.Dx(), b.Dy(), cellSize) {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), p.on, false)
	}
}
