package geom

// Rect is a pixel rectangle with its origin at the bottom-left, the way
// glViewport and glScissor take it.
type Rect struct {
	X, Y, W, H int
}

// FitSquare returns the largest square that fits a width x height window,
// centered on the longer axis.
func FitSquare(width, height int) Rect {
	size := min(width, height)
	if size < 0 {
		size = 0
	}
	return Rect{
		X: (width - size) / 2,
		Y: (height - size) / 2,
		W: size,
		H: size,
	}
}

// FitAspect returns the largest centered rectangle with the given
// width/height ratio inside a width x height window.
func FitAspect(width, height int, aspect float32) Rect {
	if aspect <= 0 || width <= 0 || height <= 0 {
		return Rect{W: max(width, 0), H: max(height, 0)}
	}
	w, h := width, int(float32(width)/aspect)
	if h > height {
		w, h = int(float32(height)*aspect), height
	}
	return Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

// Quadrants splits r into its top-right, top-left, bottom-left and
// bottom-right quarters.
func Quadrants(r Rect) [4]Rect {
	hw, hh := r.W/2, r.H/2
	return [4]Rect{
		{X: r.X + hw, Y: r.Y + hh, W: r.W - hw, H: r.H - hh},
		{X: r.X, Y: r.Y + hh, W: hw, H: r.H - hh},
		{X: r.X, Y: r.Y, W: hw, H: hh},
		{X: r.X + hw, Y: r.Y, W: r.W - hw, H: hh},
	}
}

// Aspect returns W/H, or 1 for an empty rectangle.
func (r Rect) Aspect() float32 {
	if r.H == 0 {
		return 1
	}
	return float32(r.W) / float32(r.H)
}
