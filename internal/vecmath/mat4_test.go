package vecmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func sample() Mat4 {
	return Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
}

// fromMgl converts a column-major mgl64 matrix to row-major.
func fromMgl(m mgl64.Mat4) Mat4 {
	return Mat4(m).Transpose()
}

func toMgl(m Mat4) mgl64.Mat4 {
	return mgl64.Mat4(m.Transpose())
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 || m[3] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := sample()
	if got := Mul(Identity(), m); got != m {
		t.Errorf("I * M should equal M, got %v", got)
	}
	if got := Mul(m, Identity()); got != m {
		t.Errorf("M * I should equal M, got %v", got)
	}
}

func TestMulLeavesInputs(t *testing.T) {
	a := sample()
	b := Translation(Vec3{1, 2, 3})
	aCopy, bCopy := a, b
	_ = a.Mul(b)
	if a != aCopy || b != bCopy {
		t.Error("Mul modified its inputs")
	}
}

func TestMulMatchesMgl(t *testing.T) {
	a := RotateY(Translation(Vec3{1, -2, 3}), 0.3)
	b := RotateX(sample(), 1.1)

	want := fromMgl(toMgl(a).Mul4(toMgl(b)))
	if got := Mul(a, b); !ApproxEqual(got, want, 1e-9) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestMulNotCommutative(t *testing.T) {
	a := Translation(Vec3{1, 0, 0})
	b := RotateZ(Identity(), math.Pi/2)
	if ApproxEqual(Mul(a, b), Mul(b, a), 1e-9) {
		t.Error("expected A*B != B*A for a translation and a rotation")
	}
}

func TestRotateZeroIsNoop(t *testing.T) {
	m := sample()
	rotations := map[string]func(Mat4, float64) Mat4{
		"x": RotateX,
		"y": RotateY,
		"z": RotateZ,
	}
	for name, rotate := range rotations {
		if got := rotate(m, 0); got != m {
			t.Errorf("Rotate%s(M, 0): got %v, want %v", name, got, m)
		}
	}
}

func TestRotateMatchesMgl(t *testing.T) {
	const angle = 0.7
	tests := []struct {
		name string
		got  Mat4
		want mgl64.Mat4
	}{
		{"x", RotateX(Identity(), angle), mgl64.HomogRotate3DX(angle)},
		{"y", RotateY(Identity(), angle), mgl64.HomogRotate3DY(angle)},
		{"z", RotateZ(Identity(), angle), mgl64.HomogRotate3DZ(angle)},
	}
	for _, tt := range tests {
		if !ApproxEqual(tt.got, fromMgl(tt.want), 1e-12) {
			t.Errorf("Rotate%s: got %v, want %v", tt.name, tt.got, fromMgl(tt.want))
		}
	}
}

func TestRotatePreMultiplies(t *testing.T) {
	m0 := Translation(Vec3{0, 0, 5})
	m1 := RotateX(m0, 0.4)
	m2 := RotateY(m1, -0.9)

	r1 := RotateX(Identity(), 0.4)
	r2 := RotateY(Identity(), -0.9)
	want := Mul(r2, Mul(r1, m0))
	if !ApproxEqual(m2, want, 1e-12) {
		t.Errorf("rotations should compose as R2*R1*M0: got %v, want %v", m2, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Identity(), Vec3{5, 10, 15})
	if m[3] != 5 || m[7] != 10 || m[11] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[3], m[7], m[11])
	}
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		t.Errorf("Translate bottom row: got %v", m[12:])
	}

	want := fromMgl(mgl64.Translate3D(5, 10, 15))
	if m != want {
		t.Errorf("Translate: got %v, want %v", m, want)
	}
}

func TestTranslateAccumulates(t *testing.T) {
	m := Translate(Identity(), Vec3{1, 2, 3})
	m = Translate(m, Vec3{-4, 0, 1})
	if m[3] != -3 || m[7] != 2 || m[11] != 4 {
		t.Errorf("accumulated translation: got (%f, %f, %f), want (-3, 2, 4)", m[3], m[7], m[11])
	}
}

func TestTranspose(t *testing.T) {
	m := sample()
	if m.Transpose().Transpose() != m {
		t.Error("double transpose should be identity")
	}
	if m.Transpose()[1] != 5 {
		t.Errorf("Transpose()[1]: got %f, want 5", m.Transpose()[1])
	}
}
