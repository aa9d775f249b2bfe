// Package render projects scene objects and rasterizes them as depth-styled wireframes.
package render

import "image/color"

// Surface is a 2D target for segment draws. Coordinates are in surface pixels
// with the origin at the top-left corner.
type Surface interface {
	Size() (width, height int)
	Clear(bg color.Color)
	SetStroke(c color.NRGBA, width float64)
	DrawSegment(x0, y0, x1, y1 float64)
}
