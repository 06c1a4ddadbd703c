// Command mandelview is an interactive Mandelbrot set explorer. It renders
// into a desktop window, serves a browser viewer, or writes a single PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/webview"
	"github.com/marben/mandelview/internal/window"
)

type options struct {
	cfg    mandel.Config
	mode   string
	listen string
	out    string
	debug  bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.debug {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	switch opts.mode {
	case "window":
		return window.Run(opts.cfg)
	case "web":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serveWeb(ctx, opts.cfg, opts.listen)
	case "snapshot":
		return snapshot(opts.cfg, opts.out)
	default:
		return fmt.Errorf("%w: unknown mode %q", mandel.ErrInvalidConfig, opts.mode)
	}
}

func parseFlags(args []string) (options, error) {
	var (
		o       options
		region  string
		centerR float64
		centerI float64
	)
	def := mandel.DefaultConfig()
	o.cfg = def

	fs := flag.NewFlagSet("mandelview", flag.ContinueOnError)
	fs.IntVar(&o.cfg.Width, "width", def.Width, "window width in pixels")
	fs.IntVar(&o.cfg.Height, "height", def.Height, "window height in pixels")
	fs.Float64Var(&o.cfg.RealRange, "real-range", def.RealRange, "initial width of the view on the real axis")
	fs.Float64Var(&o.cfg.ImagRange, "imag-range", def.ImagRange, "initial height of the view on the imaginary axis")
	fs.Float64Var(&centerR, "center-re", real(def.Center), "initial centre, real part")
	fs.Float64Var(&centerI, "center-im", imag(def.Center), "initial centre, imaginary part")
	fs.StringVar(&region, "region", "", "start at a named region, one of: "+strings.Join(mandel.RegionNames(), ", "))
	fs.IntVar(&o.cfg.Params.MaxIteration, "max-iter", def.Params.MaxIteration, "iteration bound per point")
	fs.StringVar(&o.mode, "mode", "window", "window, web or snapshot")
	fs.StringVar(&o.listen, "listen", ":8080", "listen address for -mode web")
	fs.StringVar(&o.out, "out", "mandel.png", "output file for -mode snapshot")
	fs.BoolVar(&o.debug, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.cfg.Center = complex(centerR, centerI)

	if region != "" {
		r, err := mandel.LookupRegion(region)
		if err != nil {
			return o, err
		}
		o.cfg.SetRegion(r)
	}
	if err := o.cfg.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

// serveWeb runs the cycle against the browser viewer until ctx is done.
func serveWeb(ctx context.Context, cfg mandel.Config, addr string) error {
	srv := webview.NewServer()
	cycle, err := mandel.NewCycle(cfg, srv, srv)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return cycle.Run(ctx)
	})
	g.Go(func() error {
		return srv.ListenAndServe(ctx, addr)
	})
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		log.Printf("stopped after %d frames", cycle.Frames())
		return nil
	}
	return err
}
