package life

import "life-canvas/pkg/core"

// Step computes the next Conway generation (B3/S23) of cur on an unbounded
// grid. cur is left untouched; the result is a new set.
//
// Only cells with at least one alive neighbour are ever examined, so the cost
// is proportional to the population rather than the canvas size.
func Step(cur *core.CellSet) *core.CellSet {
	counts := make(map[core.Cell]uint8, cur.Len()*4)
	for c := range cur.All() {
		for _, off := range core.Neighborhood {
			counts[c.Add(off.X, off.Y)]++
		}
	}

	next := core.NewCellSet()
	for c, n := range counts {
		if n == 3 || (n == 2 && cur.Contains(c)) {
			next.Insert(c)
		}
	}
	return next
}

// StepN applies Step n times and returns the final generation. n <= 0
// returns a clone of cur.
func StepN(cur *core.CellSet, n int) *core.CellSet {
	out := cur.Clone()
	for i := 0; i < n; i++ {
		out = Step(out)
	}
	return out
}
