// Package render draws gridded fields as equirectangular map images: filled
// contour bands, wind barbs, geographic reference layers and a colorbar.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/mazznoer/colorgrad"
	"github.com/paulmach/orb"
	"golang.org/x/image/font/basicfont"

	"github.com/narrmaps/narr-maps/internal/adapter/basemap"
	"github.com/narrmaps/narr-maps/internal/adapter/interp"
)

// Extent is a geographic bounding box in degrees.
type Extent struct {
	West  float64
	East  float64
	South float64
	North float64
}

// Validate checks that the box is non-degenerate.
func (e Extent) Validate() error {
	if e.East <= e.West {
		return fmt.Errorf("extent east (%g) must exceed west (%g)", e.East, e.West)
	}
	if e.North <= e.South {
		return fmt.Errorf("extent north (%g) must exceed south (%g)", e.North, e.South)
	}
	return nil
}

// ParseExtent parses "west,east,south,north".
func ParseExtent(s string) (*Extent, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("extent must be west,east,south,north, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid extent component %q: %w", p, err)
		}
		vals[i] = v
	}
	e := Extent{West: vals[0], East: vals[1], South: vals[2], North: vals[3]}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// GridExtent is the full coverage of a grid, used when no extent is given.
func GridExtent(g *interp.Grid2D) Extent {
	return Extent{
		West:  g.X[0],
		East:  g.X[len(g.X)-1],
		South: g.Y[0],
		North: g.Y[len(g.Y)-1],
	}
}

// Plot-area insets, leaving room for the colorbar on the right.
const (
	insetLeft   = 12.0
	insetTop    = 12.0
	insetBottom = 12.0
	insetRight  = 86.0
)

// Map is one rendered figure. Each call to NewMap creates an independent
// drawing context; nothing is shared between maps.
type Map struct {
	dc     *gg.Context
	extent Extent

	// Plot area in pixels (top-left / bottom-right).
	px0, py0, px1, py1 float64
}

// NewMap creates a white canvas with the given pixel size whose plot area
// shows exactly extent under an equirectangular projection.
func NewMap(width, height int, extent Extent) *Map {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return &Map{
		dc:     dc,
		extent: extent,
		px0:    insetLeft,
		py0:    insetTop,
		px1:    float64(width) - insetRight,
		py1:    float64(height) - insetBottom,
	}
}

// Bounds returns the visible geographic bounding box.
func (m *Map) Bounds() Extent {
	return m.extent
}

// Context exposes the drawing context so callers can add annotations before
// encoding. There is no ambient current-figure state; all drawing goes
// through an explicit handle.
func (m *Map) Context() *gg.Context {
	return m.dc
}

// project maps degrees to pixel coordinates.
func (m *Map) project(lon, lat float64) (float64, float64) {
	x := m.px0 + (lon-m.extent.West)/(m.extent.East-m.extent.West)*(m.px1-m.px0)
	y := m.py0 + (m.extent.North-lat)/(m.extent.North-m.extent.South)*(m.py1-m.py0)
	return x, y
}

// unproject maps pixel coordinates back to degrees.
func (m *Map) unproject(x, y float64) (lon, lat float64) {
	lon = m.extent.West + (x-m.px0)/(m.px1-m.px0)*(m.extent.East-m.extent.West)
	lat = m.extent.North - (y-m.py0)/(m.py1-m.py0)*(m.extent.North-m.extent.South)
	return lon, lat
}

// FillContours paints the banded contour fill of g. levels are the band
// boundaries; samples below the first or at/above the last boundary are left
// unfilled, as are masked (NaN) regions and pixels outside the grid.
func (m *Map) FillContours(g *interp.Grid2D, levels []float64, grad colorgrad.Gradient) {
	nBands := len(levels) - 1
	if nBands < 1 {
		return
	}
	for py := int(m.py0); py < int(m.py1); py++ {
		for px := int(m.px0); px < int(m.px1); px++ {
			lon, lat := m.unproject(float64(px)+0.5, float64(py)+0.5)
			v, err := g.InterpolateAt(lon, lat)
			if err != nil || math.IsNaN(v) {
				continue
			}
			if v < levels[0] || v >= levels[nBands] {
				continue
			}
			band := sort.SearchFloat64s(levels, v)
			if band == len(levels) || levels[band] > v {
				band--
			}
			if band >= nBands {
				band = nBands - 1
			}
			t := 0.0
			if nBands > 1 {
				t = float64(band) / float64(nBands-1)
			}
			m.dc.SetColor(grad.At(t))
			m.dc.SetPixel(px, py)
		}
	}
}

// Barbs draws wind barbs at every step-th grid point in both axes. u and v
// are wind components in knots on identical axes.
func (m *Map) Barbs(u, v *interp.Grid2D, step int, col color.Color) {
	if step < 1 {
		step = 1
	}
	m.clip()
	for i := 0; i < len(u.Y); i += step {
		for j := 0; j < len(u.X); j += step {
			lon, lat := u.X[j], u.Y[i]
			if lon < m.extent.West || lon > m.extent.East || lat < m.extent.South || lat > m.extent.North {
				continue
			}
			uk, vk := u.Values[i][j], v.Values[i][j]
			if math.IsNaN(uk) || math.IsNaN(vk) {
				continue
			}
			x, y := m.project(lon, lat)
			drawBarb(m.dc, x, y, uk, vk, col)
		}
	}
	m.dc.ResetClip()
}

// DrawLayers draws the basemap layers whose Filled flag matches filled.
// Polygon fills go under the data; line work goes on top.
func (m *Map) DrawLayers(bm *basemap.Basemap, filled bool) {
	if bm == nil {
		return
	}
	m.clip()
	for i := range bm.Layers {
		layer := &bm.Layers[i]
		if layer.Filled() != filled {
			continue
		}
		for _, geom := range layer.Geoms {
			m.addGeometry(geom)
		}
		m.paint(layer)
	}
	m.dc.ResetClip()
}

func (m *Map) paint(layer *basemap.Layer) {
	if layer.Fill != nil {
		m.dc.SetFillRuleEvenOdd()
		m.dc.SetColor(layer.Fill)
		if layer.Stroke != nil {
			m.dc.FillPreserve()
		} else {
			m.dc.Fill()
		}
	}
	if layer.Stroke != nil {
		m.dc.SetColor(layer.Stroke)
		w := layer.Width
		if w <= 0 {
			w = 1
		}
		m.dc.SetLineWidth(w)
		m.dc.Stroke()
	}
}

func (m *Map) addGeometry(geom orb.Geometry) {
	switch g := geom.(type) {
	case orb.Polygon:
		for _, ring := range g {
			m.addPath(orb.LineString(ring), true)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				m.addPath(orb.LineString(ring), true)
			}
		}
	case orb.LineString:
		m.addPath(g, false)
	case orb.MultiLineString:
		for _, ls := range g {
			m.addPath(ls, false)
		}
	case orb.Collection:
		for _, sub := range g {
			m.addGeometry(sub)
		}
	}
}

func (m *Map) addPath(ls orb.LineString, closed bool) {
	for i, p := range ls {
		x, y := m.project(p.Lon(), p.Lat())
		if i == 0 {
			m.dc.MoveTo(x, y)
		} else {
			m.dc.LineTo(x, y)
		}
	}
	if closed {
		m.dc.ClosePath()
	}
}

// clip restricts subsequent drawing to the plot area.
func (m *Map) clip() {
	m.dc.DrawRectangle(m.px0, m.py0, m.px1-m.px0, m.py1-m.py0)
	m.dc.Clip()
}

// Colorbar draws a labeled vertical colorbar to the right of the plot area,
// one swatch per contour band.
func (m *Map) Colorbar(grad colorgrad.Gradient, levels []float64, label string) {
	nBands := len(levels) - 1
	if nBands < 1 {
		return
	}

	plotH := m.py1 - m.py0
	barH := plotH * 0.7
	barTop := m.py0 + (plotH-barH)/2
	barX := m.px1 + 16
	barW := 14.0

	bandH := barH / float64(nBands)
	for i := 0; i < nBands; i++ {
		t := 0.0
		if nBands > 1 {
			t = float64(i) / float64(nBands-1)
		}
		// Band 0 sits at the bottom of the bar.
		y := barTop + barH - float64(i+1)*bandH
		m.dc.SetColor(grad.At(t))
		m.dc.DrawRectangle(barX, y, barW, bandH)
		m.dc.Fill()
	}
	m.dc.SetColor(color.Black)
	m.dc.SetLineWidth(1)
	m.dc.DrawRectangle(barX, barTop, barW, barH)
	m.dc.Stroke()

	// Tick labels on a handful of boundaries.
	tickEvery := len(levels) / 6
	if tickEvery < 1 {
		tickEvery = 1
	}
	for i := 0; i < len(levels); i += tickEvery {
		y := barTop + barH - float64(i)*bandH
		m.dc.DrawStringAnchored(trimFloat(levels[i]), barX+barW+4, y, 0, 0.35)
	}

	// Rotated axis label along the right edge.
	cx := barX + barW + 46
	cy := barTop + barH/2
	m.dc.Push()
	m.dc.RotateAbout(-math.Pi/2, cx, cy)
	m.dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
	m.dc.Pop()
}

// Frame strokes the plot-area border.
func (m *Map) Frame() {
	m.dc.SetColor(color.Black)
	m.dc.SetLineWidth(1)
	m.dc.DrawRectangle(m.px0, m.py0, m.px1-m.px0, m.py1-m.py0)
	m.dc.Stroke()
}

// Image returns the rendered figure.
func (m *Map) Image() image.Image {
	return m.dc.Image()
}

// EncodePNG writes the figure as PNG.
func (m *Map) EncodePNG(w io.Writer) error {
	return m.dc.EncodePNG(w)
}

// SavePNG writes the figure to a PNG file.
func (m *Map) SavePNG(path string) error {
	return m.dc.SavePNG(path)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
