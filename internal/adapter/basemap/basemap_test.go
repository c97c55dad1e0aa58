package basemap

import (
	"os"
	"path/filepath"
	"testing"
)

const landGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-89, 31], [-85, 31], [-85, 36], [-89, 36], [-89, 31]]]
      }
    }
  ]
}`

const coastlineGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "LineString",
        "coordinates": [[-89, 31], [-85, 36]]
      }
    }
  ]
}`

func TestLoad_PresentLayersOnly(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "land.geojson"), []byte(landGeoJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "coastline.geojson"), []byte(coastlineGeoJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	bm, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(bm.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(bm.Layers))
	}

	// Draw order: land before coastline.
	if bm.Layers[0].Name != "land" || bm.Layers[1].Name != "coastline" {
		t.Errorf("unexpected layer order: %s, %s", bm.Layers[0].Name, bm.Layers[1].Name)
	}
	if !bm.Layers[0].Filled() {
		t.Error("land layer should be filled")
	}
	if bm.Layers[1].Filled() {
		t.Error("coastline layer should not be filled")
	}
	if len(bm.Layers[0].Geoms) != 1 || len(bm.Layers[1].Geoms) != 1 {
		t.Errorf("expected one geometry per layer, got %d and %d",
			len(bm.Layers[0].Geoms), len(bm.Layers[1].Geoms))
	}
}

func TestLoad_EmptyDirAndNoDir(t *testing.T) {
	bm, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(bm.Layers) != 0 {
		t.Errorf("expected no layers, got %d", len(bm.Layers))
	}

	bm, err = Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load(empty dir): %v", err)
	}
	if len(bm.Layers) != 0 {
		t.Errorf("expected no layers for empty dir, got %d", len(bm.Layers))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoad_MalformedLayer(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "land.geojson"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed layer file")
	}
}
