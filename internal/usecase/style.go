package usecase

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/colorgrad"

	"github.com/narrmaps/narr-maps/internal/domain"
	"github.com/narrmaps/narr-maps/internal/render"
)

// plotStyle is the resolved presentation of one map: gradient, contour band
// boundaries and barb color.
type plotStyle struct {
	grad      colorgrad.Gradient
	levels    []float64
	barbColor color.Color
}

// resolveStyle applies defaults and resolves names to concrete colors before
// any file is opened, so bad styling fails fast.
func resolveStyle(cmap, defaultCmap, barb, defaultBarb string, contours domain.ContourSpec) (plotStyle, error) {
	if cmap == "" {
		cmap = defaultCmap
	}
	if barb == "" {
		barb = defaultBarb
	}
	if err := contours.Validate(); err != nil {
		return plotStyle{}, err
	}
	levels := contours.Levels()
	if len(levels) < 2 {
		return plotStyle{}, fmt.Errorf("contour spec %+v yields fewer than two band boundaries", contours)
	}
	grad, err := render.Palette(cmap)
	if err != nil {
		return plotStyle{}, err
	}
	col, err := render.ParseColor(barb)
	if err != nil {
		return plotStyle{}, err
	}
	return plotStyle{grad: grad, levels: levels, barbColor: col}, nil
}
