package scene

import (
	"math"

	"meshwire/internal/vecmath"
)

const (
	// TranslationScale is world units per pixel of drag.
	TranslationScale = 1.0 / 7
	// ScrollScale is world units per wheel unit.
	ScrollScale = 0.05
)

// RotationScale is radians per pixel of drag for a surface of the given width,
// so a drag across the full width turns the scene by half a revolution.
func RotationScale(surfaceWidth float64) float64 {
	if surfaceWidth <= 0 {
		surfaceWidth = 1
	}
	return math.Pi / surfaceWidth
}

// Rotate turns every object by a drag of (dx, dy) pixels.
// Vertical drag rotates about X, horizontal about Y; both act in each
// object's current frame.
func (s *Scene) Rotate(dx, dy, surfaceWidth float64) {
	k := RotationScale(surfaceWidth)
	for _, o := range s.objects {
		o.Rotation = vecmath.RotateX(o.Rotation, -dy*k)
		o.Rotation = vecmath.RotateY(o.Rotation, -dx*k)
	}
}

// Pan moves every object by a drag of (dx, dy) pixels. Screen y grows downward.
func (s *Scene) Pan(dx, dy float64) {
	d := vecmath.Vec3{dx * TranslationScale, -dy * TranslationScale, 0}
	for _, o := range s.objects {
		o.Translation = vecmath.Translate(o.Translation, d)
	}
}

// Dolly moves every object along the view axis for a wheel delta.
// Positive deltas (wheel down) bring objects closer.
func (s *Scene) Dolly(wheelDelta float64) {
	d := vecmath.Vec3{0, 0, -wheelDelta * ScrollScale}
	for _, o := range s.objects {
		o.Translation = vecmath.Translate(o.Translation, d)
	}
}
