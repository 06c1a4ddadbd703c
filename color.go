package mandel

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB colour packed as 0x00RRGGBB.
type Color uint32

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// clampedRGB builds a Color from int channels, clamping each to [0, 255].
func clampedRGB(r, g, b int) Color {
	return RGB(clamp255(r), clamp255(g), clamp255(b))
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Packed returns the 0x00RRGGBB form.
func (c Color) Packed() uint32 { return uint32(c) & 0xFFFFFF }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the colour as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Packed())
}

var _ color.Color = Color(0)
