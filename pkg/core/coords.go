package core

import "math"

// WorldToCell returns the cell whose square of side cellSize contains p.
// Both axes use floor division so negative positions map to negative cells
// and exact multiples of cellSize land on the cell starting there.
func WorldToCell(p Vec, cellSize float64) Cell {
	return Cell{
		X: int(math.Floor(p.X / cellSize)),
		Y: int(math.Floor(p.Y / cellSize)),
	}
}

// CellToWorld returns the origin (lower-left corner) of c.
func CellToWorld(c Cell, cellSize float64) Vec {
	return Vec{X: float64(c.X) * cellSize, Y: float64(c.Y) * cellSize}
}
