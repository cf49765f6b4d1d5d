package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandomiseSaturation picks a saturation between min and max.
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric eased gain curve: zero at both ends,
// full gain in the middle. Used to shape a pulse's brightness over its
// lifetime.
func GenerateLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// Clamp01 bounds a gain value to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
