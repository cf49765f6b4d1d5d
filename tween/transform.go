package tween

import "math"

// Affine is a 2D affine transform in the usual
//
//	| A C Tx |
//	| B D Ty |
//
// layout.
type Affine struct {
	A, B, C, D, Tx, Ty float64
}

// IdentityAffine returns the 2D identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, D: 1}
}

// Vectorize flattens the affine into its six matrix components.
func (m Affine) Vectorize() Vectorized {
	return Vectorized{Kind: KindAffine, Components: []float64{m.A, m.B, m.C, m.D, m.Tx, m.Ty}}
}

func affineFromComponents(c []float64) Affine {
	return Affine{A: c[0], B: c[1], C: c[2], D: c[3], Tx: c[4], Ty: c[5]}
}

// Transform3D is a column-major 4x4 matrix. Element m[col*4+row] holds
// column col, row row, matching the layout UI layer transforms use.
type Transform3D [16]float64

// Identity3D returns the 3D identity transform.
func Identity3D() Transform3D {
	var m Transform3D
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// IsIdentity reports whether the transform is exactly the identity.
func (m Transform3D) IsIdentity() bool {
	return m == Identity3D()
}

// Mul returns m * n, so n's effect is applied before m's.
func (m Transform3D) Mul(n Transform3D) Transform3D {
	var out Transform3D
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Translated composes a translation onto the transform.
func (m Transform3D) Translated(x, y, z float64) Transform3D {
	n := Identity3D()
	n[12], n[13], n[14] = x, y, z
	return m.Mul(n)
}

// Scaled composes a scale onto the transform.
func (m Transform3D) Scaled(sx, sy, sz float64) Transform3D {
	n := Identity3D()
	n[0], n[5], n[10] = sx, sy, sz
	return m.Mul(n)
}

// RotatedZ composes a rotation about the z axis onto the transform.
// The angle is in radians.
func (m Transform3D) RotatedZ(rad float64) Transform3D {
	sin, cos := math.Sincos(rad)
	n := Identity3D()
	n[0], n[1] = cos, sin
	n[4], n[5] = -sin, cos
	return m.Mul(n)
}

// RotatedX composes a rotation about the x axis onto the transform.
func (m Transform3D) RotatedX(rad float64) Transform3D {
	sin, cos := math.Sincos(rad)
	n := Identity3D()
	n[5], n[6] = cos, sin
	n[9], n[10] = -sin, cos
	return m.Mul(n)
}

// RotatedY composes a rotation about the y axis onto the transform.
func (m Transform3D) RotatedY(rad float64) Transform3D {
	sin, cos := math.Sincos(rad)
	n := Identity3D()
	n[0], n[2] = cos, -sin
	n[8], n[10] = sin, cos
	return m.Mul(n)
}

// Vectorize flattens the transform into its sixteen matrix components.
func (m Transform3D) Vectorize() Vectorized {
	c := make([]float64, 16)
	copy(c, m[:])
	return Vectorized{Kind: KindTransform3D, Components: c}
}

func transformFromComponents(c []float64) Transform3D {
	var m Transform3D
	copy(m[:], c)
	return m
}
