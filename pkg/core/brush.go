package core

import (
	"errors"
	"fmt"
	"strings"
)

// DrawMode selects the brush shape used to paint or erase cells.
type DrawMode uint8

const (
	// Single affects only the anchor cell.
	Single DrawMode = iota
	// Block3x3 affects the 3x3 square centred on the anchor.
	Block3x3
	// Block5x5 affects the 5x5 square centred on the anchor.
	Block5x5
)

// ErrUnknownDrawMode is returned when a draw mode name cannot be parsed.
var ErrUnknownDrawMode = errors.New("unknown draw mode")

// Radius returns how far the brush reaches from its anchor on each axis.
func (m DrawMode) Radius() int {
	switch m {
	case Block3x3:
		return 1
	case Block5x5:
		return 2
	default:
		return 0
	}
}

// Side returns the brush width in cells.
func (m DrawMode) Side() int { return 2*m.Radius() + 1 }

// Next cycles to the following mode.
func (m DrawMode) Next() DrawMode {
	switch m {
	case Single:
		return Block3x3
	case Block3x3:
		return Block5x5
	default:
		return Single
	}
}

func (m DrawMode) String() string {
	switch m {
	case Single:
		return "Single"
	case Block3x3:
		return "3x3 Block"
	case Block5x5:
		return "5x5 Block"
	default:
		return fmt.Sprintf("DrawMode(%d)", uint8(m))
	}
}

// ParseDrawMode accepts "single", "3x3" or "5x5" (case-insensitive).
func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1", "1x1":
		return Single, nil
	case "3x3", "block3x3", "2":
		return Block3x3, nil
	case "5x5", "block5x5", "3":
		return Block5x5, nil
	}
	return Single, fmt.Errorf("%w: %q", ErrUnknownDrawMode, s)
}

// AffectedCells returns the cells a paint or erase at anchor touches.
func AffectedCells(anchor Cell, mode DrawMode) []Cell {
	r := mode.Radius()
	out := make([]Cell, 0, mode.Side()*mode.Side())
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			out = append(out, anchor.Add(dx, dy))
		}
	}
	return out
}
