package config

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"meshwire/internal/render"
)

// Style builds the render style from the viewer colours.
func (v ViewerConfig) Style() (render.Style, error) {
	st := render.DefaultStyle()
	bg, err := parseHex(v.Background)
	if err != nil {
		return st, errors.Wrap(err, "viewer.background")
	}
	fg, err := parseHex(v.Stroke)
	if err != nil {
		return st, errors.Wrap(err, "viewer.stroke")
	}
	st.Background = bg
	st.Stroke = fg
	return st, nil
}

func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}
