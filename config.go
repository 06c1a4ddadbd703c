package mandel

import (
	"fmt"
	"math"
	"math/cmplx"
	"time"
)

// Params holds the algorithm constants. It is immutable once a cycle is
// built from it.
type Params struct {
	// MaxIteration bounds the escape loop and sizes the palette.
	MaxIteration int
	// EscapeThreshold is the modulus past which a point escapes.
	EscapeThreshold float64

	PaletteStart Color
	PaletteEnd   Color
	InSetColor   Color

	ZoomRatio float64
	MoveRatio float64

	// TickDelay is the pause between two render cycle ticks.
	TickDelay time.Duration
}

// DefaultParams returns the stock colours and ratios.
func DefaultParams() Params {
	return Params{
		MaxIteration:    50,
		EscapeThreshold: 2.0,
		PaletteStart:    0x000022,
		PaletteEnd:      0xd62f2f,
		InSetColor:      0x050505,
		ZoomRatio:       1.1,
		MoveRatio:       10,
		TickDelay:       2 * time.Millisecond,
	}
}

func (p Params) Validate() error {
	if p.MaxIteration < 1 {
		return fmt.Errorf("%w: max iteration %d < 1", ErrInvalidConfig, p.MaxIteration)
	}
	if !(p.EscapeThreshold > 0) || math.IsInf(p.EscapeThreshold, 0) {
		return fmt.Errorf("%w: escape threshold %v must be finite and positive", ErrInvalidConfig, p.EscapeThreshold)
	}
	if !(p.ZoomRatio > 0) || math.IsInf(p.ZoomRatio, 0) {
		return fmt.Errorf("%w: zoom ratio %v", ErrInvalidConfig, p.ZoomRatio)
	}
	if !(p.MoveRatio > 0) || math.IsInf(p.MoveRatio, 0) {
		return fmt.Errorf("%w: move ratio %v", ErrInvalidConfig, p.MoveRatio)
	}
	if p.TickDelay < 0 {
		return fmt.Errorf("%w: tick delay %s", ErrInvalidConfig, p.TickDelay)
	}
	return nil
}

// Config is everything a render cycle needs at startup.
type Config struct {
	Width, Height int

	Center    complex128
	RealRange float64
	ImagRange float64

	Params Params
}

// DefaultConfig shows the whole set in an 800x800 window.
func DefaultConfig() Config {
	v := FullSet.Viewport()
	return Config{
		Width:     800,
		Height:    800,
		Center:    v.Center,
		RealRange: v.RealRange,
		ImagRange: v.ImagRange,
		Params:    DefaultParams(),
	}
}

// Viewport returns the configured initial viewport.
func (c Config) Viewport() Viewport {
	return Viewport{Center: c.Center, RealRange: c.RealRange, ImagRange: c.ImagRange}
}

// SetRegion replaces the initial viewport with the bounds of r.
func (c *Config) SetRegion(r Region) {
	v := r.Viewport()
	c.Center, c.RealRange, c.ImagRange = v.Center, v.RealRange, v.ImagRange
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !validRange(c.RealRange) || !validRange(c.ImagRange) {
		return fmt.Errorf("%w: ranges %v x %v must be finite and positive", ErrInvalidConfig, c.RealRange, c.ImagRange)
	}
	if cmplx.IsNaN(c.Center) || cmplx.IsInf(c.Center) {
		return fmt.Errorf("%w: center %v", ErrInvalidConfig, c.Center)
	}
	return c.Params.Validate()
}

func validRange(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
