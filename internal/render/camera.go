package render

import (
	"math"

	"life-canvas/pkg/core"
)

const (
	// MinZoom is the smallest world-units-per-pixel scale the camera accepts.
	MinZoom = 0.1
	// MaxZoom is unbounded: zooming out never stops.
	MaxZoom = math.MaxFloat64
	// ZoomSpeed is the scale change per wheel notch.
	ZoomSpeed = 0.1
)

// Camera maps between screen pixels (origin top-left, Y down) and world
// space (Y up). X and Y are the world position shown at the screen centre;
// Scale is the number of world units per screen pixel.
type Camera struct {
	X, Y  float64
	Scale float64
}

// NewCamera returns a camera centred on the world origin at scale 1.
func NewCamera() *Camera { return &Camera{Scale: 1} }

// ScreenToWorld converts a screen pixel position to world space for a
// viewport of w by h pixels.
func (c *Camera) ScreenToWorld(sx, sy float64, w, h int) core.Vec {
	return core.Vec{
		X: c.X + (sx-float64(w)/2)*c.Scale,
		Y: c.Y - (sy-float64(h)/2)*c.Scale,
	}
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p core.Vec, w, h int) (float64, float64) {
	return (p.X-c.X)/c.Scale + float64(w)/2, (c.Y-p.Y)/c.Scale + float64(h)/2
}

// Pan moves the view by a cursor drag of (dx, dy) screen pixels so that the
// world under the cursor follows it.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx * c.Scale
	c.Y += dy * c.Scale
}

// ZoomBy applies wheel notches: positive values zoom in.
func (c *Camera) ZoomBy(wheel float64) {
	c.Scale = min(max(c.Scale-wheel*ZoomSpeed, MinZoom), MaxZoom)
}

// VisibleCells returns the range of cells overlapping a w by h viewport.
func (c *Camera) VisibleCells(w, h int, cellSize float64) core.Rect {
	topLeft := core.WorldToCell(c.ScreenToWorld(0, 0, w, h), cellSize)
	bottomRight := core.WorldToCell(c.ScreenToWorld(float64(w), float64(h), w, h), cellSize)
	return core.Rect{
		Min: core.Cell{X: topLeft.X, Y: bottomRight.Y},
		Max: core.Cell{X: bottomRight.X, Y: topLeft.Y},
	}
}
