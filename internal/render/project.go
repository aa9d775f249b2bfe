package render

import (
	"meshwire/internal/scene"
	"meshwire/internal/vecmath"
)

// Projected is a vertex in surface pixels. z keeps the camera-space depth.
// OK is false when the vertex sits behind or too close to the camera.
type Projected struct {
	P  vecmath.Vec3
	OK bool
}

// Projector maps object vertices onto a surface of the given pixel size.
type Projector struct {
	Width  float64
	Height float64
}

// Vertex runs one vertex through rotation, translation, perspective divide and
// viewport mapping.
func (p Projector) Vertex(obj *scene.Object, v vecmath.Vec3) (vecmath.Vec3, bool) {
	world := vecmath.TransformPoint(obj.Translation, vecmath.TransformPoint(obj.Rotation, v))
	ndc, ok := vecmath.Project(world)
	if !ok {
		return vecmath.Vec3{}, false
	}
	return vecmath.ToViewport(ndc, p.Width, p.Height), true
}

// Object projects every vertex of obj independently.
func (p Projector) Object(obj *scene.Object) []Projected {
	out := make([]Projected, len(obj.Vertices))
	for i, v := range obj.Vertices {
		out[i].P, out[i].OK = p.Vertex(obj, v)
	}
	return out
}
