package render

import (
	"image/color"
	"math"
	"testing"

	"meshwire/internal/scene"
	"meshwire/internal/vecmath"
)

type segment struct {
	x0, y0, x1, y1 float64
	c              color.NRGBA
	width          float64
}

// recorder is a Surface that keeps every call.
type recorder struct {
	w, h     int
	clears   int
	bg       color.Color
	c        color.NRGBA
	width    float64
	segments []segment
}

func (r *recorder) Size() (int, int)                   { return r.w, r.h }
func (r *recorder) Clear(bg color.Color)               { r.clears++; r.bg = bg }
func (r *recorder) SetStroke(c color.NRGBA, w float64) { r.c, r.width = c, w }
func (r *recorder) DrawSegment(x0, y0, x1, y1 float64) {
	r.segments = append(r.segments, segment{x0, y0, x1, y1, r.c, r.width})
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestProjectorVertex(t *testing.T) {
	obj := scene.NewObject("o")
	obj.Translation = vecmath.Translate(obj.Translation, vecmath.Vec3{0, 0, 10})
	p := Projector{Width: 100, Height: 100}

	got, ok := p.Vertex(obj, vecmath.Vec3{0, 0, 0})
	if !ok || got != (vecmath.Vec3{50, 50, 10}) {
		t.Errorf("center: got %v ok=%v, want (50, 50, 10)", got, ok)
	}

	got, ok = p.Vertex(obj, vecmath.Vec3{-10, 10, 0})
	if !ok || !near(got[0], 0) || !near(got[1], 0) {
		t.Errorf("top-left: got %v ok=%v, want (0, 0)", got, ok)
	}

	if _, ok := p.Vertex(obj, vecmath.Vec3{0, 0, -10}); ok {
		t.Error("vertex at camera depth 0 should not be visible")
	}
}

func TestProjectorAppliesRotationBeforeTranslation(t *testing.T) {
	obj := scene.NewObject("o")
	obj.Rotation = vecmath.RotateY(obj.Rotation, math.Pi)
	obj.Translation = vecmath.Translate(obj.Translation, vecmath.Vec3{0, 0, 10})
	p := Projector{Width: 100, Height: 100}

	// Rotating (0,0,5) by pi about Y gives (0,0,-5); then +10 puts it at z=5.
	got, ok := p.Vertex(obj, vecmath.Vec3{0, 0, 5})
	if !ok || !near(got[2], 5) {
		t.Errorf("got %v ok=%v, want depth 5", got, ok)
	}
}

func TestProjectorObjectIndependent(t *testing.T) {
	obj := scene.NewObject("o")
	obj.Vertices = []vecmath.Vec3{{0, 0, 1}, {0, 0, -1}, {1, 1, 2}}
	pts := Projector{Width: 10, Height: 10}.Object(obj)
	if len(pts) != 3 || !pts[0].OK || pts[1].OK || !pts[2].OK {
		t.Errorf("visibility: got %+v", pts)
	}
}

func TestDepthStyling(t *testing.T) {
	tests := []struct {
		z       float64
		width   float64
		alpha   float64
		opacity float64
	}{
		{0, 6, 1, 1},
		{5, 6, 1, 1},
		{27.5, 3.25, 1 - 22.5/145, 0.15 + 0.85*(1-22.5/145)},
		{50, 0.5, 1 - 45.0/145, 0.15 + 0.85*(1-45.0/145)},
		{100, 0.5, 1 - 95.0/145, 0.15 + 0.85*(1-95.0/145)},
		{150, 0.5, 0, 0.15},
		{1000, 0.5, 0, 0.15},
	}
	for _, tt := range tests {
		if got := StrokeWidth(tt.z); !near(got, tt.width) {
			t.Errorf("StrokeWidth(%g): got %f, want %f", tt.z, got, tt.width)
		}
		if got := DepthAlpha(tt.z); !near(got, tt.alpha) {
			t.Errorf("DepthAlpha(%g): got %f, want %f", tt.z, got, tt.alpha)
		}
		if got := Opacity(tt.z); !near(got, tt.opacity) {
			t.Errorf("Opacity(%g): got %f, want %f", tt.z, got, tt.opacity)
		}
	}
}

func TestStrokeColor(t *testing.T) {
	s := DefaultStyle()
	if c := s.StrokeColor(5); c != (color.NRGBA{60, 255, 0, 255}) {
		t.Errorf("near colour: got %v", c)
	}
	if c := s.StrokeColor(150); c.A != 38 || c.R != 60 || c.G != 255 {
		t.Errorf("far colour: got %v, want alpha 38", c)
	}
}

func cube(depth float64) *scene.Object {
	o := scene.NewObject("square")
	o.Vertices = []vecmath.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	o.Faces = [][]int{{0, 1, 2, 3}}
	o.Translation = vecmath.Translate(o.Translation, vecmath.Vec3{0, 0, depth})
	return o
}

func TestDrawFaceIsClosed(t *testing.T) {
	sc := scene.New()
	sc.Append(cube(5))
	rec := &recorder{w: 100, h: 100}

	st := NewRasterizer().Draw(rec, sc)
	if rec.clears != 1 || rec.bg != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("expected one clear to black, got %d %v", rec.clears, rec.bg)
	}
	if st.Drawn != 4 || st.Skipped != 0 || len(rec.segments) != 4 {
		t.Fatalf("expected 4 segments, got %+v (%d recorded)", st, len(rec.segments))
	}
	// Closing edge: vertex 3 back to vertex 0. (-1,1,5) -> (40, 40); (-1,-1,5) -> (40, 60).
	last := rec.segments[3]
	if !near(last.x0, 40) || !near(last.y0, 40) || !near(last.x1, 40) || !near(last.y1, 60) {
		t.Errorf("closing segment: got %+v", last)
	}
	if last.width != 6 || last.c.A != 255 {
		t.Errorf("depth 5 should use width 6 and full opacity, got %f %d", last.width, last.c.A)
	}
}

func TestDrawPolylineIsOpen(t *testing.T) {
	o := cube(20)
	o.Faces = nil
	o.Lines = [][]int{{0, 1, 2, 3}}
	sc := scene.New()
	sc.Append(o)
	rec := &recorder{w: 100, h: 100}

	st := NewRasterizer().Draw(rec, sc)
	if st.Drawn != 3 {
		t.Errorf("expected 3 segments for an open polyline, got %+v", st)
	}
}

func TestDrawSkipsOutOfRange(t *testing.T) {
	o := cube(10)
	o.Faces = nil
	o.Lines = [][]int{{0, 1, 7, 2, 3}, {-1, 0}}
	sc := scene.New()
	sc.Append(o)
	rec := &recorder{w: 100, h: 100}

	st := NewRasterizer().Draw(rec, sc)
	// 0-1 and 2-3 draw; 1-7, 7-2 and -1-0 are skipped.
	if st.Drawn != 2 || st.Skipped != 3 {
		t.Errorf("got %+v, want 2 drawn and 3 skipped", st)
	}
}

func TestDrawSkipsInvisible(t *testing.T) {
	o := cube(10)
	o.Vertices[2] = vecmath.Vec3{1, 1, -20}
	sc := scene.New()
	sc.Append(o)
	rec := &recorder{w: 100, h: 100}

	st := NewRasterizer().Draw(rec, sc)
	// Edges 1-2 and 2-3 touch the hidden vertex.
	if st.Drawn != 2 || st.Skipped != 2 {
		t.Errorf("got %+v, want 2 drawn and 2 skipped", st)
	}
}

func TestDrawOrder(t *testing.T) {
	a := cube(5)
	a.Name = "a"
	a.Faces = [][]int{{0, 1}}
	a.Lines = [][]int{{2, 3}}
	b := cube(100)
	b.Name = "b"
	b.Faces = nil
	b.Lines = [][]int{{0, 1}}

	sc := scene.New()
	sc.Append(a, b)
	rec := &recorder{w: 100, h: 100}
	NewRasterizer().Draw(rec, sc)

	if len(rec.segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(rec.segments))
	}
	// a's polyline, then a's face (two edges), then b.
	if !near(rec.segments[0].y0, 40) {
		t.Errorf("first segment should be a's polyline, got %+v", rec.segments[0])
	}
	if rec.segments[3].width != 0.5 {
		t.Errorf("last segment should be b at depth 100, got %+v", rec.segments[3])
	}
}

func TestDrawEmptyScene(t *testing.T) {
	rec := &recorder{w: 10, h: 10}
	st := NewRasterizer().Draw(rec, scene.New())
	if st != (Stats{}) || rec.clears != 1 {
		t.Errorf("got %+v with %d clears", st, rec.clears)
	}
}
