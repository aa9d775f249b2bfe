package meshfile

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"meshwire/internal/logger"
	"meshwire/internal/scene"
	"meshwire/internal/vecmath"
)

// LoadGLTF reads a .gltf or .glb file and converts its meshes to scene objects.
func LoadGLTF(path string) ([]*scene.Object, []Warning, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open gltf %s", path)
	}
	objs, warnings := ObjectsFromGLTF(doc)
	return objs, warnings, nil
}

// ObjectsFromGLTF turns every mesh primitive into one object named after its
// mesh. Triangles become 3-index faces, line lists 2-index polylines, line
// strips a single polyline and line loops a single face. Primitives that cannot
// be read are skipped with a warning. Warning.Line holds the mesh index.
func ObjectsFromGLTF(doc *gltf.Document) ([]*scene.Object, []Warning) {
	var (
		objects  []*scene.Object
		warnings []Warning
	)
	warn := func(mesh int, name, msg string) {
		warnings = append(warnings, Warning{Line: mesh, Token: name, Msg: msg})
		logger.Warn("gltf: skipped primitive", zap.Int("mesh", mesh), zap.String("name", name), zap.String("reason", msg))
	}

	for iMesh, mesh := range doc.Meshes {
		name := mesh.Name
		if name == "" {
			name = fmt.Sprintf("mesh_%d", iMesh)
		}
		for iPrim, prim := range mesh.Primitives {
			objName := name
			if len(mesh.Primitives) > 1 {
				objName = fmt.Sprintf("%s.%d", name, iPrim)
			}

			posIdx, ok := prim.Attributes["POSITION"]
			if !ok || int(posIdx) >= len(doc.Accessors) {
				warn(iMesh, objName, "primitive has no POSITION attribute")
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				warn(iMesh, objName, "read positions: "+err.Error())
				continue
			}

			var indices []uint32
			if prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors) {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					warn(iMesh, objName, "read indices: "+err.Error())
					continue
				}
			} else {
				indices = make([]uint32, len(positions))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			obj := scene.NewObject(objName)
			obj.Vertices = make([]vecmath.Vec3, len(positions))
			for i, p := range positions {
				obj.Vertices[i] = vecmath.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
			}
			if !addTopology(obj, prim.Mode, indices) {
				warn(iMesh, objName, "points primitives have no edges")
				continue
			}
			objects = append(objects, obj)
		}
	}
	return objects, warnings
}

// addTopology converts an index buffer into lines or faces for the given mode.
// It reports false for modes without edges.
func addTopology(obj *scene.Object, mode gltf.PrimitiveMode, idx []uint32) bool {
	at := func(i int) int { return int(idx[i]) }

	switch mode {
	case gltf.PrimitiveTriangles:
		for i := 0; i+2 < len(idx); i += 3 {
			obj.Faces = append(obj.Faces, []int{at(i), at(i + 1), at(i + 2)})
		}
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				obj.Faces = append(obj.Faces, []int{at(i), at(i + 1), at(i + 2)})
			} else {
				obj.Faces = append(obj.Faces, []int{at(i + 1), at(i), at(i + 2)})
			}
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			obj.Faces = append(obj.Faces, []int{at(0), at(i), at(i + 1)})
		}
	case gltf.PrimitiveLines:
		for i := 0; i+1 < len(idx); i += 2 {
			obj.Lines = append(obj.Lines, []int{at(i), at(i + 1)})
		}
	case gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		loop := make([]int, len(idx))
		for i := range idx {
			loop[i] = at(i)
		}
		if mode == gltf.PrimitiveLineLoop {
			obj.Faces = append(obj.Faces, loop)
		} else {
			obj.Lines = append(obj.Lines, loop)
		}
	default:
		return false
	}
	return true
}
