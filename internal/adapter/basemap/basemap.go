// Package basemap loads the geographic reference layers drawn under and over
// the data: ocean, land, lakes, rivers, borders, coastlines and US counties.
// Layers are GeoJSON files with conventional names inside a data directory
// (Natural Earth and the Census 500k county set export cleanly to these).
package basemap

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Layer is a styled group of geometries. Fill set means the geometries are
// painted as polygons before stroking; Stroke nil means fill only.
type Layer struct {
	Name   string
	Geoms  []orb.Geometry
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

// Filled reports whether the layer paints polygon interiors.
func (l *Layer) Filled() bool {
	return l.Fill != nil
}

// Basemap holds the loaded layers in draw order.
type Basemap struct {
	Layers []Layer
}

type layerSpec struct {
	name   string
	file   string
	fill   color.Color
	stroke color.Color
	width  float64
}

// Draw order and styles, bottom to top. Fill tones follow the usual
// land/water palette of atlas-style maps.
var layerSpecs = []layerSpec{
	{name: "ocean", file: "ocean.geojson", fill: color.NRGBA{R: 0x97, G: 0xb6, B: 0xe1, A: 0xff}},
	{name: "land", file: "land.geojson", fill: color.NRGBA{R: 0xef, G: 0xef, B: 0xdb, A: 0xff}},
	{name: "lakes", file: "lakes.geojson", fill: color.NRGBA{R: 0x97, G: 0xb6, B: 0xe1, A: 0xff}},
	{name: "rivers", file: "rivers.geojson", stroke: color.NRGBA{R: 0x97, G: 0xb6, B: 0xe1, A: 0xff}, width: 1},
	{name: "borders", file: "borders.geojson", stroke: color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}, width: 1},
	{name: "coastline", file: "coastline.geojson", stroke: color.Black, width: 1},
	{name: "gshhs", file: "gshhs.geojson", stroke: color.Black, width: 1.2},
	{name: "counties", file: "counties_500k.geojson", stroke: color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}, width: 0.6},
}

// Load reads the reference layers found in dir. A missing layer file is
// skipped (the map is drawn without it); a malformed one is an error.
// Load("") returns an empty basemap.
func Load(dir string) (*Basemap, error) {
	bm := &Basemap{}
	if dir == "" {
		return bm, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("basemap directory %s: %w", dir, err)
	}

	for _, spec := range layerSpecs {
		path := filepath.Join(dir, spec.file)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read basemap layer %s: %w", path, err)
		}
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse basemap layer %s: %w", path, err)
		}
		layer := Layer{
			Name:   spec.name,
			Fill:   spec.fill,
			Stroke: spec.stroke,
			Width:  spec.width,
		}
		for _, f := range fc.Features {
			if f.Geometry != nil {
				layer.Geoms = append(layer.Geoms, f.Geometry)
			}
		}
		bm.Layers = append(bm.Layers, layer)
	}
	return bm, nil
}
