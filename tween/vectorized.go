// Package tween interpolates numeric, geometric and colour values over time
// and applies them to target object properties each animation frame.
package tween

import "fmt"

// Kind identifies the semantic type a Vectorized value was flattened from.
// Two Vectorized values can only be interpolated when their kinds match.
type Kind int

const (
	KindScalar Kind = iota
	KindPoint
	KindSize
	KindRect
	KindInsets
	KindAffine
	KindTransform3D
	KindColorRGB
	KindColorGray
	KindColorHSB
	KindNumeric
)

var kindNames = map[Kind]string{
	KindScalar:      "scalar",
	KindPoint:       "point",
	KindSize:        "size",
	KindRect:        "rect",
	KindInsets:      "insets",
	KindAffine:      "affine",
	KindTransform3D: "transform3d",
	KindColorRGB:    "color-rgb",
	KindColorGray:   "color-gray",
	KindColorHSB:    "color-hsb",
	KindNumeric:     "numeric",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Arity reports the fixed component count for the kind.
func (k Kind) Arity() int {
	switch k {
	case KindScalar, KindNumeric:
		return 1
	case KindPoint, KindSize, KindColorGray:
		return 2
	case KindRect, KindColorRGB, KindColorHSB, KindInsets:
		return 4
	case KindAffine:
		return 6
	case KindTransform3D:
		return 16
	}
	return 0
}

// Vectorized is a kind tag plus an ordered list of scalar components. It is
// the uniform representation every animatable value passes through so that
// one linear interpolation covers all of them.
type Vectorized struct {
	Kind       Kind
	Components []float64
}

// Lerp linearly interpolates towards another Vectorized of the same kind.
// The parameter is deliberately not clamped to [0, 1]; easing curves that
// overshoot pass values outside that range. Mismatched kinds are a caller
// contract violation and panic.
func (v Vectorized) Lerp(to Vectorized, t float64) Vectorized {
	if v.Kind != to.Kind || len(v.Components) != len(to.Components) {
		panic(fmt.Sprintf("tween: cannot interpolate %v with %v", v.Kind, to.Kind))
	}

	out := Vectorized{Kind: v.Kind, Components: make([]float64, len(v.Components))}
	for i, a := range v.Components {
		out.Components[i] = a + (to.Components[i]-a)*t
	}
	return out
}

// A Vectorizable can flatten itself into a Vectorized value. Every animatable
// value type implements it; Reconstruct is its inverse.
type Vectorizable interface {
	Vectorize() Vectorized
}

// Reconstruct rebuilds the typed value a Vectorized was flattened from.
// It exactly inverts Vectorize for any value produced by one.
func Reconstruct(v Vectorized) Vectorizable {
	switch v.Kind {
	case KindScalar:
		return Scalar(v.Components[0])
	case KindNumeric:
		return Numeric(v.Components[0])
	case KindPoint:
		return Point{X: v.Components[0], Y: v.Components[1]}
	case KindSize:
		return Size{Width: v.Components[0], Height: v.Components[1]}
	case KindRect:
		return Rect{
			Origin: Point{X: v.Components[0], Y: v.Components[1]},
			Size:   Size{Width: v.Components[2], Height: v.Components[3]},
		}
	case KindInsets:
		return Insets{
			Top:    v.Components[0],
			Left:   v.Components[1],
			Bottom: v.Components[2],
			Right:  v.Components[3],
		}
	case KindAffine:
		return affineFromComponents(v.Components)
	case KindTransform3D:
		return transformFromComponents(v.Components)
	case KindColorRGB, KindColorGray, KindColorHSB:
		return colorFromComponents(v.Kind, v.Components)
	}
	panic(fmt.Sprintf("tween: cannot reconstruct %v", v.Kind))
}

// Scalar is a plain float value (x, y, width, height, opacity and friends).
type Scalar float64

// Vectorize flattens the scalar into a single component.
func (s Scalar) Vectorize() Vectorized {
	return Vectorized{Kind: KindScalar, Components: []float64{float64(s)}}
}

// Numeric is the payload of a generic keyed property: a float looked up
// dynamically on the target rather than tied to a known attribute.
type Numeric float64

// Vectorize flattens the numeric into a single component.
func (n Numeric) Vectorize() Vectorized {
	return Vectorized{Kind: KindNumeric, Components: []float64{float64(n)}}
}
