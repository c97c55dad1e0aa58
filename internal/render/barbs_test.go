package render

import "testing"

// TestBarbComponents tests the speed-to-feature decomposition.
func TestBarbComponents(t *testing.T) {
	tests := []struct {
		speed    float64
		pennants int
		fulls    int
		halves   int
		calm     bool
	}{
		{0, 0, 0, 0, true},
		{2.4, 0, 0, 0, true},
		{2.5, 0, 0, 1, false},
		{5, 0, 0, 1, false},
		{10, 0, 1, 0, false},
		{12.4, 0, 1, 0, false},
		{12.6, 0, 1, 1, false},
		{15, 0, 1, 1, false},
		{50, 1, 0, 0, false},
		{65, 1, 1, 1, false},
		{107, 2, 0, 1, false},
	}
	for _, tt := range tests {
		p, f, h, calm := barbComponents(tt.speed)
		if p != tt.pennants || f != tt.fulls || h != tt.halves || calm != tt.calm {
			t.Errorf("barbComponents(%g) = (%d, %d, %d, %v), expected (%d, %d, %d, %v)",
				tt.speed, p, f, h, calm, tt.pennants, tt.fulls, tt.halves, tt.calm)
		}
	}
}
