package interp

import (
	"math"
	"testing"
)

// TestBilinearInterpolate_CenterPoint tests interpolation at the center of a grid cell
func TestBilinearInterpolate_CenterPoint(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 2.0,
		Y0: 0.0, Y1: 2.0,
		V00: 1.0, V10: 3.0,
		V01: 5.0, V11: 7.0,
	}

	// At center (1.0, 1.0), t=0.5, u=0.5
	// Result = 0.25 * (1 + 3 + 5 + 7) = 4.0
	result, err := BilinearInterpolate(cell, 1.0, 1.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := 4.0
	if math.Abs(result-expected) > 1e-9 {
		t.Errorf("Center point: expected %.10f, got %.10f", expected, result)
	}
}

// TestBilinearInterpolate_CornerPoints tests that corners return exact values
func TestBilinearInterpolate_CornerPoints(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 10.0,
		Y0: 0.0, Y1: 10.0,
		V00: 1.0, V10: 2.0,
		V01: 3.0, V11: 4.0,
	}

	tests := []struct {
		x, y     float64
		expected float64
		name     string
	}{
		{0.0, 0.0, 1.0, "bottom-left"},
		{10.0, 0.0, 2.0, "bottom-right"},
		{0.0, 10.0, 3.0, "top-left"},
		{10.0, 10.0, 4.0, "top-right"},
	}

	for _, tt := range tests {
		result, err := BilinearInterpolate(cell, tt.x, tt.y)
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", tt.name, err)
		}

		if math.Abs(result-tt.expected) > 1e-9 {
			t.Errorf("%s corner: expected %.10f, got %.10f", tt.name, tt.expected, result)
		}
	}
}

// TestBilinearInterpolate_OutOfBounds tests error handling for out-of-bounds points
func TestBilinearInterpolate_OutOfBounds(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 10.0,
		Y0: 0.0, Y1: 10.0,
		V00: 1.0, V10: 2.0,
		V01: 3.0, V11: 4.0,
	}

	tests := []struct {
		x, y float64
		name string
	}{
		{-1.0, 5.0, "x too small"},
		{11.0, 5.0, "x too large"},
		{5.0, -1.0, "y too small"},
		{5.0, 11.0, "y too large"},
	}

	for _, tt := range tests {
		_, err := BilinearInterpolate(cell, tt.x, tt.y)
		if err == nil {
			t.Errorf("%s: expected error for point (%.1f, %.1f), got nil", tt.name, tt.x, tt.y)
		}
	}
}

// TestBilinearInterpolate_NaNCorner tests that masked corners poison the sample.
func TestBilinearInterpolate_NaNCorner(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 1.0,
		Y0: 0.0, Y1: 1.0,
		V00: math.NaN(), V10: 2.0,
		V01: 3.0, V11: 4.0,
	}
	result, err := BilinearInterpolate(cell, 0.5, 0.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !math.IsNaN(result) {
		t.Errorf("expected NaN for cell with masked corner, got %g", result)
	}
}

// TestGrid2D_InterpolateAt tests sampling across a multi-cell grid.
func TestGrid2D_InterpolateAt(t *testing.T) {
	// V = x + 10*y, exactly reproduced by bilinear interpolation.
	grid := &Grid2D{
		X: []float64{-90, -88, -86, -84},
		Y: []float64{30, 32, 34},
		Values: [][]float64{
			{210, 212, 214, 216},
			{230, 232, 234, 236},
			{250, 252, 254, 256},
		},
	}
	if err := grid.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tests := []struct {
		x, y     float64
		expected float64
	}{
		{-90, 30, 210},   // grid corner
		{-84, 34, 256},   // opposite corner
		{-87, 31, 223},   // cell interior
		{-88, 33, 242},   // on a column boundary
		{-85.5, 32, 234.5},
	}
	for _, tt := range tests {
		got, err := grid.InterpolateAt(tt.x, tt.y)
		if err != nil {
			t.Fatalf("InterpolateAt(%g, %g): %v", tt.x, tt.y, err)
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("InterpolateAt(%g, %g): expected %g, got %g", tt.x, tt.y, tt.expected, got)
		}
	}

	if _, err := grid.InterpolateAt(-95, 31); err == nil {
		t.Error("expected out-of-range error west of the grid")
	}
	if _, err := grid.InterpolateAt(-87, 36); err == nil {
		t.Error("expected out-of-range error north of the grid")
	}
}

// TestGrid2D_Validate tests grid shape and ordering checks.
func TestGrid2D_Validate(t *testing.T) {
	grid := &Grid2D{
		X:      []float64{0, 1},
		Y:      []float64{0, 1},
		Values: [][]float64{{1, 2}, {3, 4}},
	}
	if err := grid.Validate(); err != nil {
		t.Errorf("valid grid rejected: %v", err)
	}

	grid.X = []float64{1, 0}
	if err := grid.Validate(); err == nil {
		t.Error("expected error for descending X axis")
	}

	grid.X = []float64{0, 1}
	grid.Values = [][]float64{{1, 2}}
	if err := grid.Validate(); err == nil {
		t.Error("expected error for row/Y mismatch")
	}
}
