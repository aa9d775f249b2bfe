// Package canvas provides render.Surface implementations for the terminal and for images.
package canvas

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille is a terminal surface where each cell holds a 2x4 grid of dots.
// Its pixel space is 2*cols by 4*rows. Each cell keeps the colour of the last
// stroke that touched it.
type Braille struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	fg   [][]string

	bg     colorful.Color
	stroke string
	brush  int
}

// NewBraille returns a blank canvas of cols x rows cells.
func NewBraille(cols, rows int) *Braille {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	m := make([][]uint8, rows)
	fg := make([][]string, rows)
	for i := range m {
		m[i] = make([]uint8, cols)
		fg[i] = make([]string, cols)
	}
	return &Braille{w: cols, h: rows, m: m, fg: fg, brush: 1, stroke: "#FFFFFF"}
}

// Size returns the canvas size in dots.
func (b *Braille) Size() (int, int) {
	return b.w * 2, b.h * 4
}

// Clear removes every dot and remembers bg for blending.
func (b *Braille) Clear(bg color.Color) {
	for y := range b.m {
		for x := range b.m[y] {
			b.m[y][x] = 0
			b.fg[y][x] = ""
		}
	}
	b.bg, _ = colorful.MakeColor(bg)
}

// SetStroke blends c over the background by its alpha, since terminal cells
// have no transparency. The brush is width/2 dots wide, at least one.
func (b *Braille) SetStroke(c color.NRGBA, width float64) {
	base := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b.stroke = b.bg.BlendRgb(base, float64(c.A)/255).Clamped().Hex()
	b.brush = int(math.Round(width / 2))
	if b.brush < 1 {
		b.brush = 1
	}
}

// DrawSegment draws a line between two dot coordinates using Bresenham.
func (b *Braille) DrawSegment(x0, y0, x1, y1 float64) {
	pw, ph := b.Size()
	pad := float64(b.brush)
	cx0, cy0, cx1, cy1, ok := clipSegment(x0, y0, x1, y1, -pad, -pad, float64(pw)+pad, float64(ph)+pad)
	if !ok {
		return
	}
	b.drawLineMicro(int(math.Round(cx0)), int(math.Round(cy0)), int(math.Round(cx1)), int(math.Round(cy1)))
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *Braille) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.fg[cy][cx] = b.stroke
}

// stamp sets a brush-sized square of dots around (mx, my).
func (b *Braille) stamp(mx, my int) {
	if b.brush == 1 {
		b.setPixel(mx, my)
		return
	}
	lo := -(b.brush - 1) / 2
	for dy := lo; dy < lo+b.brush; dy++ {
		for dx := lo; dx < lo+b.brush; dx++ {
			b.setPixel(mx+dx, my+dy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (b *Braille) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.stamp(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines returns the canvas as plain braille text, one string per row.
func (b *Braille) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the canvas with per-cell colours applied. Runs of cells that
// share a colour are styled together.
func (b *Braille) Render() string {
	bg := lipgloss.Color(b.bg.Hex())
	lines := b.Lines()
	out := make([]string, len(lines))
	for y, line := range lines {
		cells := []rune(line)
		var sb strings.Builder
		start := 0
		for x := 1; x <= len(cells); x++ {
			if x < len(cells) && b.fg[y][x] == b.fg[y][start] {
				continue
			}
			st := lipgloss.NewStyle().Background(bg)
			if fg := b.fg[y][start]; fg != "" {
				st = st.Foreground(lipgloss.Color(fg))
			}
			sb.WriteString(st.Render(string(cells[start:x])))
			start = x
		}
		out[y] = sb.String()
	}
	return strings.Join(out, "\n")
}
