// Package main provides a command-line NARR map renderer.
//
// With -level it renders wind barbs over geopotential height at a pressure
// level from uwnd/vwnd/hgt files; without it, 10 m wind barbs over 2 m
// dewpoint from uwnd/vwnd/dpt files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/narrmaps/narr-maps/internal/adapter/basemap"
	"github.com/narrmaps/narr-maps/internal/domain"
	"github.com/narrmaps/narr-maps/internal/render"
	"github.com/narrmaps/narr-maps/internal/usecase"
)

func main() {
	uwndPath := flag.String("uwnd", "", "u-wind NetCDF file (required)")
	vwndPath := flag.String("vwnd", "", "v-wind NetCDF file (required)")
	hgtPath := flag.String("hgt", "", "geopotential height NetCDF file (pressure-level mode)")
	dptPath := flag.String("dpt", "", "dewpoint NetCDF file (surface mode)")
	level := flag.Int("level", 0, "pressure level in hPa; selects pressure-level mode")
	date := flag.String("date", "", "timestamp to plot, \"YYYY-MM-DD HH:MM:SS\" UTC (required)")
	cmap := flag.String("cmap", "", "colormap name (default Reds for pressure, Greens for surface)")
	barbColor := flag.String("barb-color", "", "CSS barb color (default darkblue for pressure, blue for surface)")
	extentStr := flag.String("extent", "", "map extent as west,east,south,north (default: full grid)")
	contourStr := flag.String("contours", "", "contour bands as min,max,step (default: per mode)")
	basemapDir := flag.String("basemap", "", "GeoJSON basemap directory (optional)")
	size := flag.Int("size", 800, "canvas size in pixels")
	output := flag.String("o", "map.png", "output PNG file")
	flag.Parse()

	if *uwndPath == "" || *vwndPath == "" || *date == "" {
		flag.Usage()
		os.Exit(2)
	}

	var extent *render.Extent
	if *extentStr != "" {
		var err error
		extent, err = render.ParseExtent(*extentStr)
		if err != nil {
			log.Fatalf("Invalid -extent: %v", err)
		}
	}

	var contours *domain.ContourSpec
	if *contourStr != "" {
		spec := domain.ContourSpec{}
		if n, err := fmt.Sscanf(*contourStr, "%f,%f,%f", &spec.Min, &spec.Max, &spec.Step); n != 3 || err != nil {
			log.Fatalf("Invalid -contours %q: expected min,max,step", *contourStr)
		}
		if err := spec.Validate(); err != nil {
			log.Fatalf("Invalid -contours: %v", err)
		}
		contours = &spec
	}

	bm := &basemap.Basemap{}
	if *basemapDir != "" {
		var err error
		bm, err = basemap.Load(*basemapDir)
		if err != nil {
			log.Fatalf("Failed to load basemap: %v", err)
		}
	}

	uc := usecase.NewPlotUseCase(bm, *size)

	var result *usecase.MapResult
	var err error
	if *level > 0 {
		if *hgtPath == "" {
			log.Fatal("-hgt is required with -level")
		}
		result, err = uc.PressureLevelMap(usecase.PressureLevelRequest{
			UwndPath:  *uwndPath,
			VwndPath:  *vwndPath,
			HgtPath:   *hgtPath,
			Level:     *level,
			Date:      *date,
			Cmap:      *cmap,
			BarbColor: *barbColor,
			Extent:    extent,
			Contours:  contours,
		})
	} else {
		if *dptPath == "" {
			log.Fatal("-dpt is required without -level")
		}
		result, err = uc.SurfaceMap(usecase.SurfaceRequest{
			UwndPath:  *uwndPath,
			VwndPath:  *vwndPath,
			DptPath:   *dptPath,
			Date:      *date,
			Cmap:      *cmap,
			BarbColor: *barbColor,
			Extent:    extent,
			Contours:  contours,
		})
	}
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if err := result.Map.SavePNG(*output); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Wrote %s", *output)
}
