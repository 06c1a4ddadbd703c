package mandel

import (
	"errors"
	"testing"
)

func TestColorChannels(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if got := c.Packed(); got != 0x123456 {
		t.Fatalf("Packed() = %#x, want 0x123456", got)
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 {
		t.Fatalf("channels = %#x %#x %#x, want 0x12 0x34 0x56", c.R(), c.G(), c.B())
	}
	r, g, b, a := c.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xFFFF {
		t.Fatalf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
	if s := c.String(); s != "#123456" {
		t.Fatalf("String() = %q, want #123456", s)
	}
}

func TestBuildPaletteBlackToRed(t *testing.T) {
	const maxIter = 51
	start, end := RGB(0, 0, 0), RGB(255, 0, 0)

	p, err := BuildPalette(start, end, maxIter)
	if err != nil {
		t.Fatalf("BuildPalette: %v", err)
	}
	if len(p) != maxIter+1 {
		t.Fatalf("len = %d, want %d", len(p), maxIter+1)
	}
	if p[0] != start {
		t.Fatalf("p[0] = %v, want %v", p[0], start)
	}

	step := 255 / maxIter
	last := int(p[maxIter-1].R())
	if 255-last > step {
		t.Fatalf("p[%d].R = %d, want within %d of 255", maxIter-1, last, step)
	}

	prev := -1
	for i := 0; i < maxIter; i++ {
		c := p[i]
		if c.G() != 0 || c.B() != 0 {
			t.Fatalf("p[%d] = %v, want pure red", i, c)
		}
		if int(c.R()) < prev {
			t.Fatalf("p[%d].R = %d decreased from %d", i, c.R(), prev)
		}
		prev = int(c.R())
	}
	if p[maxIter] != 0 {
		t.Fatalf("sentinel = %v, want 0", p[maxIter])
	}
}

func TestBuildPaletteDefaults(t *testing.T) {
	d := DefaultParams()
	p, err := BuildPalette(d.PaletteStart, d.PaletteEnd, d.MaxIteration)
	if err != nil {
		t.Fatalf("BuildPalette: %v", err)
	}
	// red 0x00 -> 0xd6 in steps of 214/50 = 4; green and blue steps truncate to 0.
	want := RGB(49*4, 0, 0x22)
	if got := p[49]; got != want {
		t.Fatalf("p[49] = %v, want %v", got, want)
	}
}

func TestBuildPaletteClampsOvershoot(t *testing.T) {
	// end below start walks upwards anyway and must clamp, not wrap.
	p, err := BuildPalette(RGB(250, 0, 0), RGB(0, 0, 0), 2)
	if err != nil {
		t.Fatalf("BuildPalette: %v", err)
	}
	if got := p[1].R(); got != 255 {
		t.Fatalf("p[1].R = %d, want 255", got)
	}
}

func TestBuildPaletteRejectsEmpty(t *testing.T) {
	_, err := BuildPalette(0, 0, 0)
	if !errors.Is(err, ErrInitialization) {
		t.Fatalf("BuildPalette(size 0) err = %v, want ErrInitialization", err)
	}
}

func TestPaletteAtClamps(t *testing.T) {
	p, _ := BuildPalette(RGB(0, 0, 0), RGB(100, 0, 0), 10)
	if p.At(-3) != p[0] {
		t.Fatalf("At(-3) = %v, want %v", p.At(-3), p[0])
	}
	if p.At(99) != p[10] {
		t.Fatalf("At(99) = %v, want sentinel", p.At(99))
	}
	if p.MaxIteration() != 10 {
		t.Fatalf("MaxIteration() = %d, want 10", p.MaxIteration())
	}
}
