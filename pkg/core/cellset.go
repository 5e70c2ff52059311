package core

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// CellSet stores the alive cells of an unbounded grid. The zero value is not
// usable; construct with NewCellSet.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet returns a set holding the provided cells.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Insert marks c alive and reports whether it was previously dead.
func (s *CellSet) Insert(c Cell) bool {
	if _, ok := s.cells[c]; ok {
		return false
	}
	s.cells[c] = struct{}{}
	return true
}

// Remove marks c dead and reports whether it was previously alive.
func (s *CellSet) Remove(c Cell) bool {
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	return true
}

// Contains reports whether c is alive.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of alive cells.
func (s *CellSet) Len() int { return len(s.cells) }

// Clear removes every cell and returns how many were removed.
func (s *CellSet) Clear() int {
	n := len(s.cells)
	clear(s.cells)
	return n
}

// Cells returns a snapshot of the alive cells in no particular order.
func (s *CellSet) Cells() []Cell {
	return slices.Collect(maps.Keys(s.cells))
}

// All iterates the alive cells. The set must not be mutated while iterating.
func (s *CellSet) All() iter.Seq[Cell] {
	return maps.Keys(s.cells)
}

// Clone returns an independent copy of the set.
func (s *CellSet) Clone() *CellSet {
	return &CellSet{cells: maps.Clone(s.cells)}
}

// Equal reports whether both sets hold exactly the same cells.
func (s *CellSet) Equal(other *CellSet) bool {
	if other == nil {
		return s.Len() == 0
	}
	return maps.Equal(s.cells, other.cells)
}

// Bounds returns the tightest rectangle containing every alive cell. ok is
// false when the set is empty.
func (s *CellSet) Bounds() (r Rect, ok bool) {
	for c := range s.cells {
		if !ok {
			r = Rect{Min: c, Max: c}
			ok = true
			continue
		}
		r.Min.X = min(r.Min.X, c.X)
		r.Min.Y = min(r.Min.Y, c.Y)
		r.Max.X = max(r.Max.X, c.X)
		r.Max.Y = max(r.Max.Y, c.Y)
	}
	return r, ok
}

// SortCells orders cells row by row, then column, for stable output.
func SortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
