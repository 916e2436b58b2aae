package entity

// Rectangle is an axis-aligned box in world units.
// Zero width or height is allowed; collision probes use degenerate
// rectangles to test a single edge.
type Rectangle struct {
	X, Y, W, H float64
}

// NewRectangle creates a rectangle from its top-left corner and size.
func NewRectangle(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// Left returns the left edge coordinate.
func (r Rectangle) Left() float64 {
	return r.X
}

// Right returns the right edge coordinate.
func (r Rectangle) Right() float64 {
	return r.X + r.W
}

// Top returns the top edge coordinate.
func (r Rectangle) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge coordinate.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.H
}

// CollidesWith reports whether the two rectangles overlap or touch.
func (r Rectangle) CollidesWith(other Rectangle) bool {
	return r.Right() >= other.Left() &&
		r.Left() <= other.Right() &&
		r.Top() <= other.Bottom() &&
		r.Bottom() >= other.Top()
}
