package tween

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestColorDecompositionOrder(t *testing.T) {
	// In-gamut colours decompose as RGB, the first model tried.
	if kind := RGB(0.2, 0.4, 0.6, 1).Vectorize().Kind; kind != KindColorRGB {
		t.Errorf("in-gamut colour kind = %v, want %v", kind, KindColorRGB)
	}

	// Achromatic colours that fall outside the RGB gamut fall back to
	// grayscale.
	over := Color{C: colorful.Color{R: 1.2, G: 1.2, B: 1.2}, Alpha: 1}
	if kind := over.Vectorize().Kind; kind != KindColorGray {
		t.Errorf("out-of-gamut gray kind = %v, want %v", kind, KindColorGray)
	}

	// Chromatic out-of-gamut colours land on the final fallback, HSB.
	wild := Color{C: colorful.Color{R: 1.5, G: 0.2, B: 0.1}, Alpha: 1}
	if kind := wild.Vectorize().Kind; kind != KindColorHSB {
		t.Errorf("out-of-gamut chromatic kind = %v, want %v", kind, KindColorHSB)
	}
}

func TestColorExplicitModel(t *testing.T) {
	c := RGB(0.5, 0.25, 0.75, 1)
	c.Model = ModelHSB
	if kind := c.Vectorize().Kind; kind != KindColorHSB {
		t.Errorf("explicit model kind = %v, want %v", kind, KindColorHSB)
	}
}

func TestColorModelPinnedThroughLifetime(t *testing.T) {
	// Interpolating two vectorized colours keeps the model chosen at
	// vectorization time from start to finish.
	a := HSB(0, 1, 1, 1).Vectorize()
	b := HSB(120, 1, 1, 1).Vectorize()
	mid := a.Lerp(b, 0.5)
	if mid.Kind != KindColorHSB {
		t.Fatalf("mid kind = %v, want %v", mid.Kind, KindColorHSB)
	}
	if !almostEqual(mid.Components[0], 60) {
		t.Errorf("mid hue = %v, want 60", mid.Components[0])
	}
}

func TestColorRoundTripAlphaEdges(t *testing.T) {
	for _, alpha := range []float64{0, 1} {
		c := RGB(0.1, 0.9, 0.3, alpha)
		back := Reconstruct(c.Vectorize()).(Color)
		if !almostEqual(back.Alpha, alpha) {
			t.Errorf("alpha = %v, want %v", back.Alpha, alpha)
		}
		if !almostEqual(back.C.R, 0.1) || !almostEqual(back.C.G, 0.9) || !almostEqual(back.C.B, 0.3) {
			t.Errorf("rgb = %+v, want (0.1, 0.9, 0.3)", back.C)
		}
	}
}

func TestHexParse(t *testing.T) {
	c, err := Hex("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(c.Alpha, 1) {
		t.Errorf("alpha = %v, want 1", c.Alpha)
	}
	if _, err := Hex("nope"); err == nil {
		t.Error("expected error for invalid hex")
	}
}
