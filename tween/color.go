package tween

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorModel selects the component space a Color is vectorized in.
type ColorModel int

const (
	// ModelAuto picks the first model that successfully decomposes the
	// colour, trying RGB, then grayscale, then HSB, in that order.
	ModelAuto ColorModel = iota
	ModelRGB
	ModelGray
	ModelHSB
)

// Color is an animatable colour with an alpha channel. Once vectorized, the
// chosen model is recorded in the Vectorized kind so interpolation and
// reconstruction stay in the same space for the value's whole lifetime.
type Color struct {
	C     colorful.Color
	Alpha float64
	Model ColorModel
}

// RGB builds a colour from red, green, blue and alpha in [0, 1].
func RGB(r, g, b, a float64) Color {
	return Color{C: colorful.Color{R: r, G: g, B: b}, Alpha: a}
}

// Gray builds an achromatic colour from a white level and alpha.
func Gray(white, a float64) Color {
	return Color{C: colorful.Color{R: white, G: white, B: white}, Alpha: a, Model: ModelGray}
}

// HSB builds a colour from hue (degrees), saturation, brightness and alpha.
func HSB(h, s, b, a float64) Color {
	return Color{C: colorful.Hsv(h, s, b), Alpha: a, Model: ModelHSB}
}

// Hex parses a "#rrggbb" colour with full alpha.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{C: c, Alpha: 1}, nil
}

// model resolves ModelAuto by the fixed decomposition order: RGB succeeds
// for in-gamut colours, grayscale for achromatic ones, HSB always.
func (c Color) model() ColorModel {
	if c.Model != ModelAuto {
		return c.Model
	}
	if c.C.IsValid() {
		return ModelRGB
	}
	if c.C.R == c.C.G && c.C.G == c.C.B {
		return ModelGray
	}
	return ModelHSB
}

// Vectorize flattens the colour in its decomposition model.
func (c Color) Vectorize() Vectorized {
	switch c.model() {
	case ModelGray:
		return Vectorized{Kind: KindColorGray, Components: []float64{c.C.R, c.Alpha}}
	case ModelHSB:
		h, s, v := c.C.Hsv()
		return Vectorized{Kind: KindColorHSB, Components: []float64{h, s, v, c.Alpha}}
	default:
		return Vectorized{Kind: KindColorRGB, Components: []float64{c.C.R, c.C.G, c.C.B, c.Alpha}}
	}
}

func colorFromComponents(kind Kind, c []float64) Color {
	switch kind {
	case KindColorGray:
		return Color{C: colorful.Color{R: c[0], G: c[0], B: c[0]}, Alpha: c[1], Model: ModelGray}
	case KindColorHSB:
		return Color{C: colorful.Hsv(c[0], c[1], c[2]), Alpha: c[3], Model: ModelHSB}
	default:
		return Color{C: colorful.Color{R: c[0], G: c[1], B: c[2]}, Alpha: c[3], Model: ModelRGB}
	}
}
