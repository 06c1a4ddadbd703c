package mandel

import (
	"errors"
	"image"
	"math"
	"testing"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPixelToPlaneCorners(t *testing.T) {
	r := Region{Xmin: -2, Xmax: 1, Ymin: -1.5, Ymax: 1.5}
	const w, h = 300, 200

	if got := PixelToPlane(r, w, h, 0, 0); got != complex(r.Xmin, r.Ymin) {
		t.Fatalf("PixelToPlane(0, 0) = %v, want (%v, %v)", got, r.Xmin, r.Ymin)
	}

	stepX := (r.Xmax - r.Xmin) / w
	stepY := (r.Ymax - r.Ymin) / h
	got := PixelToPlane(r, w, h, w-1, h-1)
	if !near(real(got), r.Xmax, stepX+1e-12) || !near(imag(got), r.Ymax, stepY+1e-12) {
		t.Fatalf("PixelToPlane(w-1, h-1) = %v, want within one step of (%v, %v)", got, r.Xmax, r.Ymax)
	}
}

func TestPixelToPlaneIsAffine(t *testing.T) {
	r := Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	const w, h = 640, 480
	for i := 0; i+20 < h; i += 37 {
		a := PixelToPlane(r, w, h, i, i)
		b := PixelToPlane(r, w, h, i+20, i+20)
		mid := PixelToPlane(r, w, h, i+10, i+10)
		sum := a + b
		if !near(real(sum), 2*real(mid), 1e-12) || !near(imag(sum), 2*imag(mid), 1e-12) {
			t.Fatalf("map(%d)+map(%d) = %v, want 2*map(%d) = %v", i, i+20, sum, i+10, 2*mid)
		}
	}
}

func TestNewRasterRejectsBadSizes(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {MaxRasterPixels, 2}} {
		if _, err := NewRaster(sz[0], sz[1]); !errors.Is(err, ErrRender) {
			t.Fatalf("NewRaster(%d, %d) err = %v, want ErrRender", sz[0], sz[1], err)
		}
	}
}

func TestBuilderMatchesEvaluator(t *testing.T) {
	p := DefaultParams()
	b, err := NewBuilder(p)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	r := FullSet
	const w, h = 24, 16

	raster, err := b.Render(r, w, h)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if raster.Width != w || raster.Height != h || len(raster.Pix) != w*h {
		t.Fatalf("raster %dx%d (%d px), want %dx%d", raster.Width, raster.Height, len(raster.Pix), w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := p.InSetColor
			if n, ok := Escape(PixelToPlane(r, w, h, x, y), p.MaxIteration, p.EscapeThreshold); ok {
				want = b.Palette()[n]
			}
			if got := raster.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// (0, 0) is (-2, -1.5), which escapes on the first step.
	if got := raster.At(0, 0); got != p.PaletteStart {
		t.Fatalf("pixel (0, 0) = %v, want palette start %v", got, p.PaletteStart)
	}
}

func TestRenderTileStaysInTile(t *testing.T) {
	b, err := NewBuilder(DefaultParams())
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	dst, err := NewRaster(8, 8)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	b.RenderTile(dst, FullSet, image.Rect(0, 0, 4, 4))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x < 4 && y < 4
			if painted := dst.At(x, y) != 0; painted != inside {
				t.Fatalf("pixel (%d, %d) painted = %v, want %v", x, y, painted, inside)
			}
		}
	}
}

func TestRasterImage(t *testing.T) {
	r, err := NewRaster(2, 1)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	r.Set(0, 0, RGB(1, 2, 3))
	r.Set(1, 0, RGB(0xd6, 0x2f, 0x2f))

	img := r.Image()
	want := []byte{1, 2, 3, 0xFF, 0xd6, 0x2f, 0x2f, 0xFF}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Fatalf("Pix[%d] = %#x, want %#x", i, img.Pix[i], b)
		}
	}
}
