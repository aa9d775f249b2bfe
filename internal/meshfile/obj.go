// Package meshfile reads mesh descriptions into scene objects.
package meshfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"meshwire/internal/logger"
	"meshwire/internal/scene"
	"meshwire/internal/vecmath"
)

// Warning describes a token or line the parser skipped.
type Warning struct {
	Line  int
	Token string
	Msg   string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s (%q)", w.Line, w.Msg, w.Token)
}

// ParseOBJ reads Wavefront OBJ text and returns the objects it describes.
//
// Only o, v, l and f statements are interpreted. Malformed coordinates skip the
// vertex and malformed indices skip the single index; both are reported as
// warnings and parsing continues. Indices are not range-checked.
func ParseOBJ(r io.Reader) ([]*scene.Object, []Warning) {
	var (
		objects  []*scene.Object
		current  *scene.Object
		warnings []Warning
	)
	warn := func(line int, token, msg string) {
		w := Warning{Line: line, Token: token, Msg: msg}
		warnings = append(warnings, w)
		logger.Warn("obj: skipped input", zap.Int("line", line), zap.String("token", token), zap.String("reason", msg))
	}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			warn(lineNo+1, "", "read stopped: "+err.Error())
			break
		}
		if line == "" && err == io.EOF {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "o":
			name := strings.Join(parts[1:], " ")
			if name == "" {
				name = fmt.Sprintf("object_%d", len(objects))
			}
			current = scene.NewObject(name)
			objects = append(objects, current)
		case "v":
			if current == nil {
				current = scene.NewObject("default")
				objects = append(objects, current)
			}
			v, bad, ok := parseVertex(parts[1:])
			if !ok {
				warn(lineNo, bad, "vertex coordinate is not a finite number")
				continue
			}
			current.Vertices = append(current.Vertices, v)
		case "l", "f":
			if current == nil {
				continue
			}
			indices := make([]int, 0, len(parts)-1)
			for _, tok := range parts[1:] {
				idx, ok := resolveIndex(tok, len(current.Vertices))
				if !ok {
					warn(lineNo, tok, "vertex index is not a non-zero integer")
					continue
				}
				indices = append(indices, idx)
			}
			if parts[0] == "l" {
				current.Lines = append(current.Lines, indices)
			} else {
				current.Faces = append(current.Faces, indices)
			}
		}
	}

	return objects, warnings
}

// parseVertex parses the x, y, z tokens of a v statement. A missing token
// counts as invalid. On failure it returns the offending token.
func parseVertex(fields []string) (vecmath.Vec3, string, bool) {
	var v vecmath.Vec3
	for i := 0; i < 3; i++ {
		if i >= len(fields) {
			return v, "", false
		}
		f, ok := parseNumber(fields[i])
		if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
			return v, fields[i], false
		}
		v[i] = f
	}
	return v, "", true
}

// resolveIndex turns an OBJ index token into a 0-based vertex index.
// Only the part before the first '/' is used, and "3.0" counts as 3.
// Negative indices count back from vertexCount, the number of vertices read so far.
func resolveIndex(tok string, vertexCount int) (int, bool) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	f, ok := parseNumber(tok)
	if !ok || f != math.Trunc(f) || f == 0 || math.IsInf(f, 0) {
		return 0, false
	}
	idx := int(f)
	if idx > 0 {
		return idx - 1, true
	}
	return vertexCount + idx, true
}

// parseNumber reads a decimal float, or an unsigned 0x/0o/0b integer literal.
// Hex floats and digit separators are rejected.
func parseNumber(tok string) (float64, bool) {
	if len(tok) > 2 && tok[0] == '0' {
		base := 0
		switch tok[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(tok[2:], base, 64)
			return float64(u), err == nil
		}
	}
	if strings.ContainsAny(tok, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	return f, err == nil
}

// LoadOBJ parses the OBJ file at path. Paths not ending in ".obj" (case
// sensitive) are rejected before the file is opened.
func LoadOBJ(path string) ([]*scene.Object, []Warning, error) {
	if !strings.HasSuffix(path, ".obj") {
		return nil, nil, errors.Wrap(ErrUnsupportedType, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open obj")
	}
	defer f.Close()

	objs, warnings := ParseOBJ(f)
	return objs, warnings, nil
}
