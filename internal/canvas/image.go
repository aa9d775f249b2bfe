package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// Image is an offscreen surface that strokes segments with exact width and alpha.
type Image struct {
	img   *image.NRGBA
	c     color.NRGBA
	width float64
}

// NewImage returns a transparent w x h image surface.
func NewImage(w, h int) *Image {
	return &Image{
		img:   image.NewNRGBA(image.Rect(0, 0, w, h)),
		c:     color.NRGBA{255, 255, 255, 255},
		width: 1,
	}
}

// Size returns the image size in pixels.
func (m *Image) Size() (int, int) {
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the image with bg.
func (m *Image) Clear(bg color.Color) {
	draw.Draw(m.img, m.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// SetStroke sets the colour and width of the next segments.
func (m *Image) SetStroke(c color.NRGBA, width float64) {
	m.c = c
	m.width = width
}

// DrawSegment fills the rectangle of the stroked segment, composited over
// what is already there.
func (m *Image) DrawSegment(x0, y0, x1, y1 float64) {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return
	}
	hw := m.width / 2
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, -hw, -hw, float64(w)+hw, float64(h)+hw)
	if !ok {
		return
	}

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	var nx, ny, tx, ty float64
	if length == 0 {
		// A degenerate segment still leaves a square dot.
		nx, ny, tx, ty = 0, hw, hw, 0
	} else {
		nx, ny = -dy/length*hw, dx/length*hw
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	z.MoveTo(float32(x0+nx-tx), float32(y0+ny-ty))
	z.LineTo(float32(x1+nx+tx), float32(y1+ny+ty))
	z.LineTo(float32(x1-nx+tx), float32(y1-ny+ty))
	z.LineTo(float32(x0-nx-tx), float32(y0-ny-ty))
	z.ClosePath()
	z.Draw(m.img, m.img.Bounds(), image.NewUniform(m.c), image.Point{})
}

// Image returns the underlying pixels.
func (m *Image) Image() *image.NRGBA {
	return m.img
}

// WritePNG encodes the surface as PNG.
func (m *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, m.img)
}
