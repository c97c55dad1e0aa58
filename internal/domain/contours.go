package domain

import (
	"fmt"
	"math"
)

// ContourSpec configures the filled-contour banding of a scalar field:
// band boundaries run from Min (inclusive) to Max (exclusive) in Step
// increments. Values outside [Min, last boundary) are left unfilled.
type ContourSpec struct {
	Min  float64
	Max  float64
	Step float64
}

// Default contour bands, tuned for the example NARR cases these renderers
// were written for (500 mb height over the southeastern US in summer, and
// the matching 2 m dewpoint range). Callers plotting other regions or
// seasons should supply their own spec.
var (
	DefaultHeightContours   = ContourSpec{Min: 5910, Max: 6000, Step: 5}
	DefaultDewpointContours = ContourSpec{Min: 18.5, Max: 24.0, Step: 0.3}
)

// Validate checks that the spec describes at least one band boundary.
func (s ContourSpec) Validate() error {
	if s.Step <= 0 {
		return fmt.Errorf("contour step must be positive, got %g", s.Step)
	}
	if s.Max <= s.Min {
		return fmt.Errorf("contour max (%g) must exceed min (%g)", s.Max, s.Min)
	}
	return nil
}

// Levels expands the spec into its band boundaries: Min, Min+Step, ...
// strictly below Max.
func (s ContourSpec) Levels() []float64 {
	n := int(math.Ceil((s.Max-s.Min)/s.Step - 1e-9))
	if n < 1 {
		n = 1
	}
	levels := make([]float64, n)
	for i := range levels {
		levels[i] = s.Min + float64(i)*s.Step
	}
	return levels
}
