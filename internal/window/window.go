//go:build cgo

// Package window runs the render cycle in a desktop window.
package window

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	mandel "github.com/marben/mandelview"
)

const title = "Mandelbrot"

// Run opens a window of the configured size and drives a render cycle from
// the window's update loop. It blocks until the cycle quits or the window
// closes.
func Run(cfg mandel.Config, opts ...mandel.Option) error {
	g := &game{
		input:  mandel.NewEventQueue(256),
		width:  cfg.Width,
		height: cfg.Height,
	}
	cycle, err := mandel.NewCycle(cfg, g.input, g, opts...)
	if err != nil {
		return err
	}
	g.cycle = cycle
	g.frame = ebiten.NewImage(cfg.Width, cfg.Height)
	g.pix = make([]byte, 4*cfg.Width*cfg.Height)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ticksPerSecond(cfg.Params.TickDelay))

	log.Printf("window %dx%d open", cfg.Width, cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	log.Printf("window closed after %d frames", cycle.Frames())
	return nil
}

func ticksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return 240
	}
	tps := int(time.Second / delay)
	if tps < 1 {
		return 1
	}
	if tps > 240 {
		return 240
	}
	return tps
}

// game is the ebiten.Game and the cycle's Presenter.
type game struct {
	cycle *mandel.Cycle
	input *mandel.EventQueue

	width, height int
	frame         *ebiten.Image
	pix           []byte
	hud           string
}

func (g *game) Update() error {
	pollInput(g.input, g.width, g.height)
	if err := g.cycle.Tick(); err != nil {
		return err
	}
	if !g.cycle.Running() {
		return ebiten.Termination
	}
	return nil
}

// Present implements mandel.Presenter.
func (g *game) Present(r *mandel.Raster) error {
	if r.Width != g.width || r.Height != g.height {
		return fmt.Errorf("raster %dx%d does not fit window %dx%d", r.Width, r.Height, g.width, g.height)
	}
	r.CopyRGBA(g.pix)
	g.frame.WritePixels(g.pix)

	v := g.cycle.State().Viewport
	g.hud = fmt.Sprintf("%.10g %+.10gi  %.3g x %.3g", real(v.Center), imag(v.Center), v.RealRange, v.ImagRange)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, g.hud)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
