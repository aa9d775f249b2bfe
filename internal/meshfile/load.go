package meshfile

import (
	"path/filepath"

	"github.com/pkg/errors"

	"meshwire/internal/scene"
)

// ErrUnsupportedType is returned for files whose extension no loader handles.
var ErrUnsupportedType = errors.New("unsupported mesh file type")

// Extensions lists the file extensions Load understands.
var Extensions = []string{".obj", ".gltf", ".glb"}

// Supported reports whether Load handles path's extension. Matching is case
// sensitive.
func Supported(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load picks a loader by file extension. Callers should treat any error as an
// empty result; partial geometry is reported through warnings instead.
func Load(path string) ([]*scene.Object, []Warning, error) {
	switch filepath.Ext(path) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, nil, errors.Wrap(ErrUnsupportedType, path)
	}
}
