package vecmath

import "math"

// Mat4 is a 4x4 matrix in row-major order.
// Layout: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
type Mat4 [16]float64

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a * b.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mul(m, other)
}

// Transpose returns the transposed matrix.
// Transposing converts to and from column-major layouts such as mgl64.Mat4.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// RotateX rotates m by angle radians about the X axis.
// The rotation is pre-multiplied, so it acts in the frame m already defines.
func RotateX(m Mat4, angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	r := Identity()
	r[5], r[6] = c, -s
	r[9], r[10] = s, c
	return Mul(r, m)
}

// RotateY rotates m by angle radians about the Y axis (pre-multiplied).
func RotateY(m Mat4, angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	r := Identity()
	r[0], r[2] = c, s
	r[8], r[10] = -s, c
	return Mul(r, m)
}

// RotateZ rotates m by angle radians about the Z axis (pre-multiplied).
func RotateZ(m Mat4, angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	r := Identity()
	r[0], r[1] = c, -s
	r[4], r[5] = s, c
	return Mul(r, m)
}

// Translation returns a matrix that moves points by d.
func Translation(d Vec3) Mat4 {
	t := Identity()
	t[3], t[7], t[11] = d[0], d[1], d[2]
	return t
}

// Translate returns Translation(d) * m.
func Translate(m Mat4, d Vec3) Mat4 {
	return Mul(Translation(d), m)
}

// ApproxEqual reports whether every element of a and b differs by at most eps.
func ApproxEqual(a, b Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
