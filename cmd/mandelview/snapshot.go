package main

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	mandel "github.com/marben/mandelview"
)

// pngWriter presents a raster by encoding it as PNG to w.
type pngWriter struct {
	w io.Writer
}

func (p pngWriter) Present(r *mandel.Raster) error {
	if err := png.Encode(p.w, r.Image()); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

// renderPNG runs a single tick with no input and writes the frame to w.
func renderPNG(cfg mandel.Config, w io.Writer) error {
	cycle, err := mandel.NewCycle(cfg, mandel.NewEventQueue(1), pngWriter{w: w})
	if err != nil {
		return err
	}
	return cycle.Tick()
}

func snapshot(cfg mandel.Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := renderPNG(cfg, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("rendered %dx%d saved to %q", cfg.Width, cfg.Height, filename)
	return nil
}
