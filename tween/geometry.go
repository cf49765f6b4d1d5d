package tween

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Vectorize flattens the point into x, y components.
func (p Point) Vectorize() Vectorized {
	return Vectorized{Kind: KindPoint, Components: []float64{p.X, p.Y}}
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Vectorize flattens the size into width, height components.
func (s Size) Vectorize() Vectorized {
	return Vectorized{Kind: KindSize, Components: []float64{s.Width, s.Height}}
}

// Rect is an origin plus a size, the natural shape of a target's frame.
type Rect struct {
	Origin Point
	Size   Size
}

// MakeRect builds a Rect from origin and size coordinates.
func MakeRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Vectorize flattens the rect into x, y, width, height components.
func (r Rect) Vectorize() Vectorized {
	return Vectorized{
		Kind:       KindRect,
		Components: []float64{r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height},
	}
}

// Insets are distances from each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Vectorize flattens the insets into top, left, bottom, right components.
func (i Insets) Vectorize() Vectorized {
	return Vectorized{Kind: KindInsets, Components: []float64{i.Top, i.Left, i.Bottom, i.Right}}
}
