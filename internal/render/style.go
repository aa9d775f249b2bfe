package render

import "image/color"

// Style controls how segment depth maps to stroke width and opacity.
type Style struct {
	Background color.NRGBA
	Stroke     color.NRGBA // alpha is ignored; opacity comes from depth

	MaxWidth   float64 // width at WidthNear and closer
	MinWidth   float64 // width at WidthFar and beyond
	WidthNear  float64
	WidthFar   float64
	AlphaNear  float64
	AlphaFar   float64
	MinOpacity float64
}

// DefaultStyle is green strokes on black.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{0, 0, 0, 255},
		Stroke:     color.NRGBA{60, 255, 0, 255},
		MaxWidth:   6,
		MinWidth:   0.5,
		WidthNear:  5,
		WidthFar:   50,
		AlphaNear:  5,
		AlphaFar:   150,
		MinOpacity: 0.15,
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// StrokeWidth interpolates linearly from MaxWidth at WidthNear to MinWidth at
// WidthFar, clamped outside that range.
func (s Style) StrokeWidth(z float64) float64 {
	t := clamp01((z - s.WidthNear) / (s.WidthFar - s.WidthNear))
	return s.MaxWidth + (s.MinWidth-s.MaxWidth)*t
}

// DepthAlpha is 1 at AlphaNear and closer, 0 at AlphaFar and beyond.
func (s Style) DepthAlpha(z float64) float64 {
	return 1 - clamp01((z-s.AlphaNear)/(s.AlphaFar-s.AlphaNear))
}

// Opacity never drops below MinOpacity.
func (s Style) Opacity(z float64) float64 {
	return s.MinOpacity + (1-s.MinOpacity)*s.DepthAlpha(z)
}

// StrokeColor is the stroke colour with alpha set from Opacity(z).
func (s Style) StrokeColor(z float64) color.NRGBA {
	c := s.Stroke
	c.A = uint8(s.Opacity(z)*255 + 0.5)
	return c
}

// StrokeWidth uses DefaultStyle.
func StrokeWidth(z float64) float64 { return DefaultStyle().StrokeWidth(z) }

// DepthAlpha uses DefaultStyle.
func DepthAlpha(z float64) float64 { return DefaultStyle().DepthAlpha(z) }

// Opacity uses DefaultStyle.
func Opacity(z float64) float64 { return DefaultStyle().Opacity(z) }
