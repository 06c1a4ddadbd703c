package mandel

import (
	"fmt"
	"image"
)

// MaxRasterPixels bounds a single raster allocation.
const MaxRasterPixels = 1 << 26

// Raster is a width x height grid of colours in row-major order.
type Raster struct {
	Width, Height int
	Pix           []Color
}

// NewRaster allocates a raster, failing on dimensions it cannot hold.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster size %dx%d", ErrRender, width, height)
	}
	if width > MaxRasterPixels/height {
		return nil, fmt.Errorf("%w: raster size %dx%d exceeds %d pixels", ErrRender, width, height, MaxRasterPixels)
	}
	return &Raster{Width: width, Height: height, Pix: make([]Color, width*height)}, nil
}

func (r *Raster) At(x, y int) Color { return r.Pix[y*r.Width+x] }

func (r *Raster) Set(x, y int, c Color) { r.Pix[y*r.Width+x] = c }

// Bounds returns the pixel rectangle the raster covers.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// Image copies the raster into an opaque RGBA image.
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	r.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA writes the raster as RGBA bytes (4 per pixel) into dst, which
// must hold at least 4*Width*Height bytes.
func (r *Raster) CopyRGBA(dst []byte) {
	for i, c := range r.Pix {
		j := i * 4
		dst[j+0] = c.R()
		dst[j+1] = c.G()
		dst[j+2] = c.B()
		dst[j+3] = 0xFF
	}
}

// mapRange maps v linearly from [inLo, inHi] onto [outLo, outHi].
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// PixelToPlane maps pixel (x, y) of a width x height grid onto the plane
// point inside r. Pixel (0, 0) is (Xmin, Ymin); the row index grows with
// the imaginary part.
func PixelToPlane(r Region, width, height, x, y int) complex128 {
	re := mapRange(float64(x), 0, float64(width), r.Xmin, r.Xmax)
	im := mapRange(float64(y), 0, float64(height), r.Ymin, r.Ymax)
	return complex(re, im)
}

// Builder evaluates every pixel of a region and paints it from a palette.
type Builder struct {
	palette   Palette
	inSet     Color
	threshold float64
}

// NewBuilder builds the palette described by p.
func NewBuilder(p Params) (*Builder, error) {
	palette, err := BuildPalette(p.PaletteStart, p.PaletteEnd, p.MaxIteration)
	if err != nil {
		return nil, err
	}
	return &Builder{palette: palette, inSet: p.InSetColor, threshold: p.EscapeThreshold}, nil
}

func (b *Builder) Palette() Palette { return b.palette }

// Render implements Renderer.
func (b *Builder) Render(r Region, width, height int) (*Raster, error) {
	raster, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	b.RenderTile(raster, r, raster.Bounds())
	return raster, nil
}

// RenderTile paints only the pixels of tile (clipped to the raster), mapping
// them against the full raster size.
func (b *Builder) RenderTile(dst *Raster, r Region, tile image.Rectangle) {
	tile = tile.Intersect(dst.Bounds())
	maxIter := b.palette.MaxIteration()

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			c := PixelToPlane(r, dst.Width, dst.Height, px, py)

			col := b.inSet
			if n, escaped := Escape(c, maxIter, b.threshold); escaped {
				col = b.palette[n]
			}
			dst.Set(px, py, col)
		}
	}
}

var _ Renderer = (*Builder)(nil)
