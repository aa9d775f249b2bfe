// Package vecmath holds the vector and matrix math behind the wireframe pipeline.
package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a point in model, world or screen space. z is depth in camera space.
type Vec3 = mgl64.Vec3

// Near is the closest depth a point may have and still be projected.
const Near = 0.0001

// TransformPoint applies m to v as a homogeneous point with w = 1.
// The result is divided by the resulting w only when w is neither 0 nor 1.
func TransformPoint(m Mat4, v Vec3) Vec3 {
	x := m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]
	y := m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]
	z := m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]

	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Project divides x and y by depth (pinhole, unit focal length).
// Points at or behind Near are not visible.
func Project(p Vec3) (Vec3, bool) {
	if p[2] <= Near {
		return Vec3{}, false
	}
	return Vec3{p[0] / p[2], p[1] / p[2], p[2]}, true
}

// ToViewport maps x,y from [-1,1] to pixel space with y growing downward.
// z passes through untouched.
func ToViewport(ndc Vec3, width, height float64) Vec3 {
	return Vec3{
		(ndc[0] + 1) / 2 * width,
		(1 - (ndc[1]+1)/2) * height,
		ndc[2],
	}
}
