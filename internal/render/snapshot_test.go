package render

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"life-canvas/pkg/core"
)

func TestWritePNG(t *testing.T) {
	area := core.Rect{Min: core.Cell{X: -2, Y: -2}, Max: core.Cell{X: 2, Y: 2}}
	opts := DefaultSnapshotOptions(area)
	opts.CellPx = 8
	cells := []core.Cell{{X: -2, Y: 2}, {X: 0, Y: 0}, {X: 9, Y: 9}}

	var buf bytes.Buffer
	if err := WritePNG(&buf, cells, opts); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("image is %dx%d, expected 40x40", b.Dx(), b.Dy())
	}

	lit := func(x, y int) bool {
		r, _, _, _ := img.At(x, y).RGBA()
		return r > 0xc000
	}
	// (-2, 2) is the top-left cell, (0, 0) the centre one.
	if !lit(4, 4) {
		t.Fatal("top-left cell should be lit")
	}
	if !lit(20, 20) {
		t.Fatal("centre cell should be lit")
	}
	if lit(36, 36) || lit(12, 20) {
		t.Fatal("dead cells should stay dark")
	}
}

func TestSnapshotEmptyArea(t *testing.T) {
	opts := DefaultSnapshotOptions(core.Rect{Min: core.Cell{X: 1}, Max: core.Cell{X: 0}})
	if _, err := Snapshot(nil, opts); !errors.Is(err, ErrEmptyArea) {
		t.Fatalf("expected ErrEmptyArea, got %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	area := core.Rect{Max: core.Cell{X: 3, Y: 3}}
	if err := SavePNG(path, []core.Cell{{X: 1, Y: 1}}, DefaultSnapshotOptions(area)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), nil, DefaultSnapshotOptions(area)); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
