package render

import (
	"meshwire/internal/scene"
)

// Stats counts the segments of one draw.
type Stats struct {
	Drawn   int
	Skipped int
}

// Rasterizer draws scenes as wireframes onto a Surface.
type Rasterizer struct {
	Style Style
}

// NewRasterizer returns a rasterizer using DefaultStyle.
func NewRasterizer() Rasterizer {
	return Rasterizer{Style: DefaultStyle()}
}

// Draw clears s and draws every object in scene order: polylines first, then
// faces. There is no depth test, so later segments paint over earlier ones.
// A segment with an out-of-range or invisible endpoint is skipped whole.
func (r Rasterizer) Draw(s Surface, sc *scene.Scene) Stats {
	w, h := s.Size()
	s.Clear(r.Style.Background)

	proj := Projector{Width: float64(w), Height: float64(h)}
	var st Stats
	for _, obj := range sc.Objects() {
		r.drawObject(s, proj.Object(obj), obj, &st)
	}
	return st
}

func (r Rasterizer) drawObject(s Surface, pts []Projected, obj *scene.Object, st *Stats) {
	for _, line := range obj.Lines {
		for i := 0; i+1 < len(line); i++ {
			r.segment(s, pts, line[i], line[i+1], st)
		}
	}
	for _, face := range obj.Faces {
		for i := range face {
			r.segment(s, pts, face[i], face[(i+1)%len(face)], st)
		}
	}
}

func (r Rasterizer) segment(s Surface, pts []Projected, i, j int, st *Stats) {
	if i < 0 || j < 0 || i >= len(pts) || j >= len(pts) || !pts[i].OK || !pts[j].OK {
		st.Skipped++
		return
	}
	a, b := pts[i].P, pts[j].P
	z := (a[2] + b[2]) / 2
	s.SetStroke(r.Style.StrokeColor(z), r.Style.StrokeWidth(z))
	s.DrawSegment(a[0], a[1], b[0], b[1])
	st.Drawn++
}
