// Package scene holds the loaded meshes and the transforms the user applies to them.
package scene

import "meshwire/internal/vecmath"

// Object is a named rigid body.
//
// Lines are open polylines and Faces are closed loops; both hold 0-based indices
// into Vertices. Indices are not validated, so renderers must range-check them.
// Rotation and Translation are accumulated separately and applied every frame
// as Translation * (Rotation * v).
type Object struct {
	Name        string
	Vertices    []vecmath.Vec3
	Lines       [][]int
	Faces       [][]int
	Rotation    vecmath.Mat4
	Translation vecmath.Mat4
}

// NewObject returns an empty object with identity transforms.
func NewObject(name string) *Object {
	return &Object{
		Name:        name,
		Rotation:    vecmath.Identity(),
		Translation: vecmath.Identity(),
	}
}

// Scene is an ordered, append-only list of objects.
type Scene struct {
	objects []*Object
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Append adds objects in order. Nil entries are dropped.
func (s *Scene) Append(objs ...*Object) {
	for _, o := range objs {
		if o != nil {
			s.objects = append(s.objects, o)
		}
	}
}

// Objects returns the objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Counts returns the total number of vertices, polylines and faces.
func (s *Scene) Counts() (vertices, lines, faces int) {
	for _, o := range s.objects {
		vertices += len(o.Vertices)
		lines += len(o.Lines)
		faces += len(o.Faces)
	}
	return vertices, lines, faces
}

// Offset moves each object by d. Hosts use it to place freshly loaded
// meshes in front of the camera.
func Offset(objs []*Object, d vecmath.Vec3) {
	for _, o := range objs {
		o.Translation = vecmath.Translate(o.Translation, d)
	}
}
