package mandel

import "fmt"

// Palette maps an escape iteration to a colour. It has maxIter+1 entries:
// indices [0, maxIter) form the gradient, the last slot is a zero sentinel.
// Bounded points are painted with the separately held in-set colour, never
// through the sentinel.
type Palette []Color

// BuildPalette walks each channel from start towards end in maxIter steps of
// |end-start|/maxIter (truncating). Channels that would leave [0, 255]
// because end < start are clamped.
func BuildPalette(start, end Color, maxIter int) (Palette, error) {
	if maxIter < 1 {
		return nil, fmt.Errorf("%w: palette size %d", ErrInitialization, maxIter)
	}

	rStep := absInt(int(end.R())-int(start.R())) / maxIter
	gStep := absInt(int(end.G())-int(start.G())) / maxIter
	bStep := absInt(int(end.B())-int(start.B())) / maxIter

	p := make(Palette, maxIter+1)
	for i := 0; i < maxIter; i++ {
		p[i] = clampedRGB(
			int(start.R())+i*rStep,
			int(start.G())+i*gStep,
			int(start.B())+i*bStep,
		)
	}
	p[maxIter] = 0
	return p, nil
}

// MaxIteration is the iteration bound the palette was built for.
func (p Palette) MaxIteration() int { return len(p) - 1 }

// At returns the gradient colour for escape iteration n.
func (p Palette) At(n int) Color {
	if n < 0 {
		n = 0
	}
	if n >= len(p) {
		n = len(p) - 1
	}
	return p[n]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
