package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"

	"life-canvas/pkg/core"
)

// ErrEmptyArea is returned when a snapshot would produce a zero-sized image.
var ErrEmptyArea = errors.New("snapshot area is empty")

// SnapshotOptions controls how a board is rasterised to an image.
type SnapshotOptions struct {
	// Area is the range of cells captured. Cells outside are skipped.
	Area core.Rect
	// CellPx is the side of one cell in pixels.
	CellPx int
	// Alive and Dead are the fill colours of live cells and the background.
	Alive gg.RGBA
	Dead  gg.RGBA
}

// DefaultSnapshotOptions returns white cells on black, 4 pixels per cell.
func DefaultSnapshotOptions(area core.Rect) SnapshotOptions {
	return SnapshotOptions{Area: area, CellPx: 4, Alive: gg.White, Dead: gg.Black}
}

// Snapshot draws cells into a new gg context. The caller owns the context and
// must Close it.
func Snapshot(cells []core.Cell, opts SnapshotOptions) (*gg.Context, error) {
	if opts.Area.Empty() {
		return nil, ErrEmptyArea
	}
	if opts.CellPx <= 0 {
		opts.CellPx = 1
	}
	px := float64(opts.CellPx)
	dc := gg.NewContext(opts.Area.Width()*opts.CellPx, opts.Area.Height()*opts.CellPx)
	dc.ClearWithColor(opts.Dead)
	dc.SetColor(opts.Alive.Color())

	drawn := 0
	for _, c := range cells {
		if !opts.Area.Contains(c) {
			continue
		}
		// World Y grows upwards, image rows grow downwards.
		x := float64(c.X-opts.Area.Min.X) * px
		y := float64(opts.Area.Max.Y-c.Y) * px
		dc.DrawRectangle(x, y, px, px)
		drawn++
	}
	if drawn > 0 {
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("fill cells: %w", err)
		}
	}
	gg.Logger().Debug("snapshot rendered", "cells", drawn, "width", dc.Width(), "height", dc.Height())
	return dc, nil
}

// WritePNG renders cells and encodes the result as PNG into w.
func WritePNG(w io.Writer, cells []core.Cell, opts SnapshotOptions) error {
	dc, err := Snapshot(cells, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the snapshot to path.
func SavePNG(path string, cells []core.Cell, opts SnapshotOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WritePNG(f, cells, opts)
}
