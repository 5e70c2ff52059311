package render

import "life-canvas/pkg/core"

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// CellRect returns the screen rectangle covered by cell c.
func CellRect(cam *Camera, c core.Cell, w, h int, cellSize float64) Rect {
	o := core.CellToWorld(c, cellSize)
	// The cell origin is its lower-left corner; screen rectangles start top-left.
	x, y := cam.WorldToScreen(core.Vec{X: o.X, Y: o.Y + cellSize}, w, h)
	side := cellSize / cam.Scale
	return Rect{X: x, Y: y, W: side, H: side}
}

// CellRects converts the cells inside the viewport into screen rectangles,
// dropping everything off screen.
func CellRects(cam *Camera, cells []core.Cell, w, h int, cellSize float64) []Rect {
	visible := cam.VisibleCells(w, h, cellSize)
	out := make([]Rect, 0, len(cells))
	for _, c := range cells {
		if !visible.Contains(c) {
			continue
		}
		out = append(out, CellRect(cam, c, w, h, cellSize))
	}
	return out
}

// BrushRect returns the screen rectangle covering a set of cells, used for the
// hover preview. ok is false for an empty set.
func BrushRect(cam *Camera, cells []core.Cell, w, h int, cellSize float64) (r Rect, ok bool) {
	if len(cells) == 0 {
		return Rect{}, false
	}
	bounds, _ := core.NewCellSet(cells...).Bounds()
	tl := CellRect(cam, core.Cell{X: bounds.Min.X, Y: bounds.Max.Y}, w, h, cellSize)
	side := cellSize / cam.Scale
	return Rect{X: tl.X, Y: tl.Y, W: float64(bounds.Width()) * side, H: float64(bounds.Height()) * side}, true
}
