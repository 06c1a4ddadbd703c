package mandel

// Viewport is the rectangle of the complex plane mapped onto the window.
// Both ranges are strictly positive.
type Viewport struct {
	Center    complex128
	RealRange float64
	ImagRange float64
}

// Bounds derives the plane region the viewport covers.
func (v Viewport) Bounds() Region {
	re, im := real(v.Center), imag(v.Center)
	return Region{
		Xmin: re - v.RealRange/2,
		Xmax: re + v.RealRange/2,
		Ymin: im - v.ImagRange/2,
		Ymax: im + v.ImagRange/2,
	}
}

// Pan moves the centre by one ratio-th of the extent along dir.
// Up lowers the imaginary part, matching the raster's top row at Ymin.
func (v Viewport) Pan(dir Direction, ratio float64) Viewport {
	re, im := real(v.Center), imag(v.Center)
	switch dir {
	case Up:
		im -= v.ImagRange / ratio
	case Down:
		im += v.ImagRange / ratio
	case Left:
		re -= v.RealRange / ratio
	case Right:
		re += v.RealRange / ratio
	}
	v.Center = complex(re, im)
	return v
}

// ZoomIn shrinks both extents by ratio. There is no lower bound: deep zooms
// run into float64 precision.
func (v Viewport) ZoomIn(ratio float64) Viewport {
	v.RealRange /= ratio
	v.ImagRange /= ratio
	return v
}

// ZoomOut grows both extents by ratio.
func (v Viewport) ZoomOut(ratio float64) Viewport {
	v.RealRange *= ratio
	v.ImagRange *= ratio
	return v
}

// RecenterAt moves the centre to the plane point under pixel (x, y) of a
// width x height window, using the bounds before the move.
func (v Viewport) RecenterAt(x, y, width, height int) Viewport {
	v.Center = PixelToPlane(v.Bounds(), width, height, x, y)
	return v
}
