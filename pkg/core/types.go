package core

// Cell identifies one square of the unbounded grid.
type Cell struct {
	X int
	Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// Vec is a continuous position in world space. Y grows upwards.
type Vec struct {
	X float64
	Y float64
}

// Rect is an inclusive range of cells.
type Rect struct {
	Min Cell
	Max Cell
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y }

// Width returns the number of columns covered by r.
func (r Rect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows covered by r.
func (r Rect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.Max.Y - r.Min.Y + 1
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Neighborhood lists the eight Moore-neighborhood offsets.
var Neighborhood = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Union returns the smallest rectangle covering both r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	return Rect{
		Min: Cell{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Cell{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}

// Around returns the square of the given side centred on c.
func Around(c Cell, side int) Rect {
	if side <= 0 {
		return Rect{Min: c, Max: c.Add(-1, -1)}
	}
	half := side / 2
	lo := c.Add(-half, -half)
	return Rect{Min: lo, Max: lo.Add(side-1, side-1)}
}
