package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/colorgrad"
	"github.com/mazznoer/csscolorparser"
)

// Sequential ColorBrewer ramps, light to dark. "Reds" is the default for
// geopotential height, "Greens" for dewpoint.
var brewerStops = map[string][]string{
	"reds": {
		"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
		"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
	},
	"greens": {
		"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476",
		"#41ab5d", "#238b45", "#006d2c", "#00441b",
	},
	"blues": {
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	},
}

// Palette resolves a colormap name to a gradient. Names are case-insensitive.
func Palette(name string) (colorgrad.Gradient, error) {
	key := strings.ToLower(name)
	if stops, ok := brewerStops[key]; ok {
		return colorgrad.NewGradient().HtmlColors(stops...).Build()
	}
	switch key {
	case "viridis":
		return colorgrad.Viridis(), nil
	case "inferno":
		return colorgrad.Inferno(), nil
	case "magma":
		return colorgrad.Magma(), nil
	case "plasma":
		return colorgrad.Plasma(), nil
	}
	return colorgrad.Gradient{}, fmt.Errorf("unknown colormap %q", name)
}

// ParseColor resolves a CSS color name or spec ("darkblue", "#1f77b4", ...).
func ParseColor(name string) (color.Color, error) {
	c, err := csscolorparser.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", name, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
