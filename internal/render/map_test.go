package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/narrmaps/narr-maps/internal/adapter/interp"
)

func testGrid() *interp.Grid2D {
	// Values rise from 0 to 90 west to east.
	return &interp.Grid2D{
		X: []float64{-89, -88, -87, -86, -85},
		Y: []float64{31, 32.25, 33.5, 34.75, 36},
		Values: [][]float64{
			{0, 22.5, 45, 67.5, 90},
			{0, 22.5, 45, 67.5, 90},
			{0, 22.5, 45, 67.5, 90},
			{0, 22.5, 45, 67.5, 90},
			{0, 22.5, 45, 67.5, 90},
		},
	}
}

// TestNewMap_BoundsMatchExtent tests that the visible bounds are exactly the
// requested box.
func TestNewMap_BoundsMatchExtent(t *testing.T) {
	extent := Extent{West: -89.0, East: -85.0, South: 31.0, North: 36.0}
	m := NewMap(400, 400, extent)
	if m.Bounds() != extent {
		t.Errorf("Bounds() = %+v, expected %+v", m.Bounds(), extent)
	}
}

// TestMap_Independent tests that two maps share no drawing state.
func TestMap_Independent(t *testing.T) {
	extent := Extent{West: -89, East: -85, South: 31, North: 36}
	m1 := NewMap(200, 200, extent)
	m2 := NewMap(200, 200, extent)
	if m1 == m2 || m1.Context() == m2.Context() {
		t.Fatal("maps must have independent contexts")
	}

	grad, err := Palette("Reds")
	if err != nil {
		t.Fatal(err)
	}
	m1.FillContours(testGrid(), []float64{0, 30, 60, 90}, grad)

	// m2 stayed white where m1 got painted.
	x, y := 100, 100
	if m1.Image().At(x, y) == m2.Image().At(x, y) {
		t.Error("drawing on one map affected the other")
	}
}

// TestMap_FillContours tests band painting and the unfilled outside range.
func TestMap_FillContours(t *testing.T) {
	extent := Extent{West: -89, East: -85, South: 31, North: 36}
	m := NewMap(200, 200, extent)
	grad, err := Palette("Reds")
	if err != nil {
		t.Fatal(err)
	}

	// Bands cover only values in [40, 80): the west edge stays white.
	m.FillContours(testGrid(), []float64{40, 60, 80}, grad)
	img := m.Image()

	wr, wg, wb, _ := img.At(20, 100).RGBA()
	if wr != 0xffff || wg != 0xffff || wb != 0xffff {
		t.Errorf("west edge should be unfilled white, got (%d, %d, %d)", wr, wg, wb)
	}
	cr, cg, cb, _ := img.At(100, 100).RGBA()
	if cr == 0xffff && cg == 0xffff && cb == 0xffff {
		t.Error("in-range region should be painted")
	}
}

// TestMap_EncodePNG tests that output decodes as a PNG of the right size.
func TestMap_EncodePNG(t *testing.T) {
	m := NewMap(320, 240, Extent{West: -89, East: -85, South: 31, North: 36})
	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 240 {
		t.Errorf("unexpected image size %v", img.Bounds())
	}
}

// TestParseExtent tests extent string parsing.
func TestParseExtent(t *testing.T) {
	e, err := ParseExtent("-89.0,-85.0,31.0,36.0")
	if err != nil {
		t.Fatalf("ParseExtent: %v", err)
	}
	want := Extent{West: -89, East: -85, South: 31, North: 36}
	if *e != want {
		t.Errorf("got %+v, expected %+v", *e, want)
	}

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "-85,-89,31,36", "-89,-85,36,31"} {
		if _, err := ParseExtent(bad); err == nil {
			t.Errorf("ParseExtent(%q): expected error", bad)
		}
	}
}

// TestGridExtent tests the full-coverage fallback box.
func TestGridExtent(t *testing.T) {
	e := GridExtent(testGrid())
	want := Extent{West: -89, East: -85, South: 31, North: 36}
	if e != want {
		t.Errorf("got %+v, expected %+v", e, want)
	}
}
