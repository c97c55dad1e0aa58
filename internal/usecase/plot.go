// Package usecase orchestrates the two NARR map renderings: a pressure-level
// height/wind map and a surface dewpoint/wind map.
package usecase

import (
	"fmt"

	"github.com/narrmaps/narr-maps/internal/adapter/basemap"
	"github.com/narrmaps/narr-maps/internal/adapter/interp"
	"github.com/narrmaps/narr-maps/internal/adapter/narr"
	"github.com/narrmaps/narr-maps/internal/domain"
	"github.com/narrmaps/narr-maps/internal/render"
)

// Barbs are drawn at every second grid point in both axes.
const barbStride = 2

// PressureLevelRequest describes a pressure-level map: wind and height at a
// constant-pressure surface. The three files must share time, level, lat and
// lon axes; this is assumed, not verified. Wind is expected in m/s and
// height in meters (the stock NARR pressure files).
type PressureLevelRequest struct {
	UwndPath string // 4-D "uwnd" variable
	VwndPath string // 4-D "vwnd" variable
	HgtPath  string // 4-D "hgt" variable

	Level int    // pressure level in hPa; exact match against the level axis
	Date  string // "YYYY-MM-DD HH:MM:SS" UTC; exact match against the time axis

	Cmap      string              // colormap name; default "Reds"
	BarbColor string              // CSS color; default "darkblue"
	Extent    *render.Extent      // nil means the full grid
	Contours  *domain.ContourSpec // nil means domain.DefaultHeightContours
}

// Validate checks the request parameters that do not require file access.
func (r *PressureLevelRequest) Validate() error {
	if r.UwndPath == "" || r.VwndPath == "" || r.HgtPath == "" {
		return fmt.Errorf("uwnd, vwnd and hgt file paths are all required")
	}
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	if r.Level <= 0 {
		return fmt.Errorf("level must be a positive pressure in hPa, got %d", r.Level)
	}
	return nil
}

// SurfaceRequest describes a surface map: 10 m wind and 2 m dewpoint.
// Wind is expected in m/s and dewpoint in Kelvin (the stock NARR monolevel
// files); dewpoint is converted to Celsius before contouring.
type SurfaceRequest struct {
	UwndPath string // 3-D "uwnd" variable
	VwndPath string // 3-D "vwnd" variable
	DptPath  string // 3-D "dpt" variable

	Date string

	Cmap      string              // default "Greens"
	BarbColor string              // default "blue"
	Extent    *render.Extent      // nil means the full grid
	Contours  *domain.ContourSpec // nil means domain.DefaultDewpointContours
}

// Validate checks the request parameters that do not require file access.
func (r *SurfaceRequest) Validate() error {
	if r.UwndPath == "" || r.VwndPath == "" || r.DptPath == "" {
		return fmt.Errorf("uwnd, vwnd and dpt file paths are all required")
	}
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	return nil
}

// MapResult is a finished rendering: the extracted scalar field (height in
// meters or dewpoint in Celsius) and the map it was drawn on. Ownership
// passes to the caller; the use case keeps nothing.
type MapResult struct {
	Field [][]float64
	Map   *render.Map
}

// PlotUseCase renders NARR maps. Calls share the basemap and canvas size but
// no per-call state; every call reopens and rescans its input files.
type PlotUseCase struct {
	basemap *basemap.Basemap
	size    int
}

// NewPlotUseCase creates a plot use case drawing size x size pixel maps.
func NewPlotUseCase(bm *basemap.Basemap, size int) *PlotUseCase {
	if size <= 0 {
		size = 800
	}
	return &PlotUseCase{basemap: bm, size: size}
}

// PressureLevelMap renders wind barbs over filled height contours at a
// pressure level. Returns the height field (meters) and the map handle.
func (uc *PlotUseCase) PressureLevelMap(req PressureLevelRequest) (*MapResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	contours := domain.DefaultHeightContours
	if req.Contours != nil {
		contours = *req.Contours
	}
	style, err := resolveStyle(req.Cmap, "Reds", req.BarbColor, "darkblue", contours)
	if err != nil {
		return nil, err
	}

	uwndDS, err := narr.Open(req.UwndPath)
	if err != nil {
		return nil, err
	}
	defer uwndDS.Close()
	vwndDS, err := narr.Open(req.VwndPath)
	if err != nil {
		return nil, err
	}
	defer vwndDS.Close()
	hgtDS, err := narr.Open(req.HgtPath)
	if err != nil {
		return nil, err
	}
	defer hgtDS.Close()

	timeAxis, err := uwndDS.TimeAxis()
	if err != nil {
		return nil, err
	}
	t, err := timeAxis.Lookup(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.UwndPath, err)
	}
	levelAxis, err := uwndDS.LevelAxis()
	if err != nil {
		return nil, err
	}
	l, err := levelAxis.Lookup(req.Level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.UwndPath, err)
	}

	uwnd, err := uwndDS.Plane("uwnd", t, l)
	if err != nil {
		return nil, err
	}
	vwnd, err := vwndDS.Plane("vwnd", t, l)
	if err != nil {
		return nil, err
	}
	hgt, err := hgtDS.Plane("hgt", t, l)
	if err != nil {
		return nil, err
	}

	toKnots(uwnd)
	toKnots(vwnd)

	label := fmt.Sprintf("%d mb Geopotential Height (meters)", req.Level)
	m := uc.compose(hgt, uwnd, vwnd, req.Extent, style, label)
	return &MapResult{Field: hgt.Values, Map: m}, nil
}

// SurfaceMap renders 10 m wind barbs over filled 2 m dewpoint contours.
// Returns the dewpoint field (Celsius) and the map handle.
func (uc *PlotUseCase) SurfaceMap(req SurfaceRequest) (*MapResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	contours := domain.DefaultDewpointContours
	if req.Contours != nil {
		contours = *req.Contours
	}
	style, err := resolveStyle(req.Cmap, "Greens", req.BarbColor, "blue", contours)
	if err != nil {
		return nil, err
	}

	uwndDS, err := narr.Open(req.UwndPath)
	if err != nil {
		return nil, err
	}
	defer uwndDS.Close()
	vwndDS, err := narr.Open(req.VwndPath)
	if err != nil {
		return nil, err
	}
	defer vwndDS.Close()
	dptDS, err := narr.Open(req.DptPath)
	if err != nil {
		return nil, err
	}
	defer dptDS.Close()

	timeAxis, err := uwndDS.TimeAxis()
	if err != nil {
		return nil, err
	}
	t, err := timeAxis.Lookup(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.UwndPath, err)
	}

	uwnd, err := uwndDS.Plane("uwnd", t)
	if err != nil {
		return nil, err
	}
	vwnd, err := vwndDS.Plane("vwnd", t)
	if err != nil {
		return nil, err
	}
	dpt, err := dptDS.Plane("dpt", t)
	if err != nil {
		return nil, err
	}

	toKnots(uwnd)
	toKnots(vwnd)
	for _, row := range dpt.Values {
		for j, v := range row {
			row[j] = domain.KelvinToCelsius(v)
		}
	}

	m := uc.compose(dpt, uwnd, vwnd, req.Extent, style, "2-Meter Dewpoint (Celsius)")
	return &MapResult{Field: dpt.Values, Map: m}, nil
}

// compose draws the shared figure: polygon layers under the data, contour
// fill, barbs, line layers on top, then frame and colorbar.
func (uc *PlotUseCase) compose(field, u, v *interp.Grid2D, extent *render.Extent, style plotStyle, label string) *render.Map {
	box := render.GridExtent(field)
	if extent != nil {
		box = *extent
	}
	m := render.NewMap(uc.size, uc.size, box)
	m.DrawLayers(uc.basemap, true)
	m.FillContours(field, style.levels, style.grad)
	m.Barbs(u, v, barbStride, style.barbColor)
	m.DrawLayers(uc.basemap, false)
	m.Frame()
	m.Colorbar(style.grad, style.levels, label)
	return m
}

func toKnots(g *interp.Grid2D) {
	for _, row := range g.Values {
		for j, v := range row {
			row[j] = domain.MSToKnots(v)
		}
	}
}
