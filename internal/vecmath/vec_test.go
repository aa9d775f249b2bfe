package vecmath

import (
	"math"
	"testing"
)

func TestTransformPointTranslate(t *testing.T) {
	m := Translation(Vec3{10, 20, 30})
	got := TransformPoint(m, Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointRotate(t *testing.T) {
	m := RotateZ(Identity(), math.Pi/2)
	got := TransformPoint(m, Vec3{1, 0, 0})
	if !got.ApproxEqualThreshold(Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("TransformPoint: got %v, want (0, 1, 0)", got)
	}
}

func TestTransformPointHomogeneousDivide(t *testing.T) {
	tests := []struct {
		name string
		w    float64
		want Vec3
	}{
		{"w=2 divides", 2, Vec3{1, 2, 3}},
		{"w=1 untouched", 1, Vec3{2, 4, 6}},
		{"w=0 untouched", 0, Vec3{2, 4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Identity()
			m[15] = tt.w
			got := TransformPoint(m, Vec3{2, 4, 6})
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		z       float64
		visible bool
	}{
		{-1, false},
		{0, false},
		{0.00005, false},
		{Near, false},
		{0.01, true},
		{10, true},
	}
	for _, tt := range tests {
		p, ok := Project(Vec3{1, 2, tt.z})
		if ok != tt.visible {
			t.Errorf("Project z=%g: visible=%v, want %v", tt.z, ok, tt.visible)
			continue
		}
		if ok {
			want := Vec3{1 / tt.z, 2 / tt.z, tt.z}
			if p != want {
				t.Errorf("Project z=%g: got %v, want %v", tt.z, p, want)
			}
			if math.IsInf(p[0], 0) || math.IsNaN(p[0]) {
				t.Errorf("Project z=%g: not finite %v", tt.z, p)
			}
		}
	}
}

func TestToViewport(t *testing.T) {
	tests := []struct {
		ndc  Vec3
		want Vec3
	}{
		{Vec3{0, 0, 7}, Vec3{50, 50, 7}},
		{Vec3{-1, 1, 1}, Vec3{0, 0, 1}},
		{Vec3{1, -1, 1}, Vec3{100, 100, 1}},
	}
	for _, tt := range tests {
		if got := ToViewport(tt.ndc, 100, 100); got != tt.want {
			t.Errorf("ToViewport(%v): got %v, want %v", tt.ndc, got, tt.want)
		}
	}
}
