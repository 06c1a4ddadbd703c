package mandel

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RenderState is owned by a single Cycle and never shared.
type RenderState struct {
	Viewport Viewport
	Width    int
	Height   int
	// Dirty is set by every accepted event and cleared after a frame has
	// been presented.
	Dirty   bool
	Running bool
}

// Cycle drains input, applies it to the viewport and repaints when the
// viewport changed. It is not safe for concurrent use.
type Cycle struct {
	state   RenderState
	initial Viewport
	params  Params

	renderer  Renderer
	events    EventSource
	presenter Presenter

	frames uint64
}

type Option func(*Cycle)

// WithRenderer replaces the palette-backed Builder.
func WithRenderer(r Renderer) Option {
	return func(c *Cycle) { c.renderer = r }
}

// NewCycle builds the palette and the initial state. The first Tick always
// paints a frame.
func NewCycle(cfg Config, events EventSource, presenter Presenter, opts ...Option) (*Cycle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	if events == nil || presenter == nil {
		return nil, fmt.Errorf("%w: event source and presenter are required", ErrInitialization)
	}

	c := &Cycle{
		state: RenderState{
			Viewport: cfg.Viewport(),
			Width:    cfg.Width,
			Height:   cfg.Height,
			Dirty:    true,
			Running:  true,
		},
		initial:   cfg.Viewport(),
		params:    cfg.Params,
		events:    events,
		presenter: presenter,
	}
	for _, o := range opts {
		o(c)
	}

	if c.renderer == nil {
		b, err := NewBuilder(cfg.Params)
		if err != nil {
			return nil, fmt.Errorf("build palette: %w", err)
		}
		c.renderer = b
	}
	return c, nil
}

// State returns a copy of the current state.
func (c *Cycle) State() RenderState { return c.state }

func (c *Cycle) Running() bool { return c.state.Running }

// Frames counts the frames presented so far.
func (c *Cycle) Frames() uint64 { return c.frames }

// Stop ends the cycle as a quit event would.
func (c *Cycle) Stop() { c.Apply(Quit{}) }

// Apply performs the state transition for one event.
func (c *Cycle) Apply(ev Event) {
	s := &c.state
	p := c.params

	switch e := ev.(type) {
	case Quit:
		s.Running = false
		return
	case Pan:
		if e.Dir < Up || e.Dir > Right {
			return
		}
		s.Viewport = s.Viewport.Pan(e.Dir, p.MoveRatio)
	case ZoomIn:
		s.Viewport = s.Viewport.ZoomIn(p.ZoomRatio)
	case ZoomOut:
		s.Viewport = s.Viewport.ZoomOut(p.ZoomRatio)
	case Wheel:
		switch {
		case e.DeltaY > 0:
			s.Viewport = s.Viewport.ZoomOut(p.ZoomRatio)
		case e.DeltaY < 0:
			s.Viewport = s.Viewport.ZoomIn(p.ZoomRatio)
		default:
			return
		}
	case Recenter:
		s.Viewport = s.Viewport.RecenterAt(e.X, e.Y, s.Width, s.Height)
	case Reset:
		s.Viewport = c.initial
	default:
		return
	}
	s.Dirty = true
}

// Tick drains every queued event, then paints one frame if any of them
// changed the viewport. Events queued behind a quit are left unread.
func (c *Cycle) Tick() error {
	for c.state.Running {
		ev, ok := c.events.PollEvent()
		if !ok {
			break
		}
		c.Apply(ev)
	}
	if !c.state.Running || !c.state.Dirty {
		return nil
	}
	return c.repaint()
}

func (c *Cycle) repaint() error {
	start := time.Now()
	bounds := c.state.Viewport.Bounds()

	raster, err := c.renderer.Render(bounds, c.state.Width, c.state.Height)
	if err != nil {
		return renderErr("build frame", err)
	}
	if err := c.presenter.Present(raster); err != nil {
		return renderErr("present frame", err)
	}

	c.state.Dirty = false
	c.frames++
	Logger().Debug("frame presented",
		"frame", c.frames,
		"center", c.state.Viewport.Center,
		"real_range", c.state.Viewport.RealRange,
		"imag_range", c.state.Viewport.ImagRange,
		"took", time.Since(start))
	return nil
}

func renderErr(op string, err error) error {
	if errors.Is(err, ErrRender) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrRender, op, err)
}

// Run ticks until a quit event arrives or ctx is done, pausing TickDelay
// between ticks. It returns nil on quit.
func (c *Cycle) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if d := c.params.TickDelay; d > 0 {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	for {
		if err := c.Tick(); err != nil {
			return err
		}
		if !c.state.Running {
			Logger().Info("render cycle stopped", "frames", c.frames)
			return nil
		}

		if tick == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}
