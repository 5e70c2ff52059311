// Command lifeshot seeds a random soup, runs it for a number of generations
// and writes the final board as a PNG. It needs no display.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gogpu/gg"

	"life-canvas/internal/app"
	"life-canvas/internal/render"
	"life-canvas/pkg/core"
	"life-canvas/pkg/sims/life"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("lifeshot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	gens := fs.Int("gens", 100, "generations to run before the snapshot")
	size := fs.Int("size", 64, "side of the seeded square in cells")
	px := fs.Int("px", 4, "pixels per cell")
	out := fs.String("out", "life.png", "output PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if *size <= 0 || *gens < 0 {
		return errors.New("invalid flags: size must be positive and gens non-negative")
	}

	logger := app.NewLogger(stderr, cfg.Verbose)
	gg.SetLogger(logger)
	defer gg.SetLogger(nil)

	wc, err := cfg.WorldConfig()
	if err != nil {
		return err
	}
	world := life.NewWorld(wc)
	world.SetLogger(logger)

	area := core.Around(core.Cell{}, *size)
	world.Seed(area, cfg.Seed, cfg.Density)
	for i := 0; i < *gens; i++ {
		world.StepOnce()
	}

	cells := world.AliveCells()
	frame := area
	if b, ok := core.NewCellSet(cells...).Bounds(); ok {
		frame = frame.Union(b)
	}
	opts := render.DefaultSnapshotOptions(frame)
	opts.CellPx = *px
	if err := render.SavePNG(*out, cells, opts); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", *out, "generation", world.Generation(), "alive", world.AliveCount())
	return nil
}
