package domain

import (
	"errors"
	"strings"
	"testing"
)

// TestDecodeTimeStamps_Epoch tests the fixed points of the NARR time origin.
func TestDecodeTimeStamps_Epoch(t *testing.T) {
	got := DecodeTimeStamps([]float64{0})
	if got[0] != "1800-01-01 00:00:00" {
		t.Errorf("decode(0): expected 1800-01-01 00:00:00, got %s", got[0])
	}

	// 1800 is not a leap year, so one year is exactly 8760 hours.
	got = DecodeTimeStamps([]float64{8760})
	if got[0] != "1801-01-01 00:00:00" {
		t.Errorf("decode(8760): expected 1801-01-01 00:00:00, got %s", got[0])
	}
}

// TestDecodeTimeStamps_OrderAndLength tests that decoding preserves the
// input ordering one-to-one.
func TestDecodeTimeStamps_OrderAndLength(t *testing.T) {
	hours := []float64{1946712, 1946715, 1946718, 1946721}
	got := DecodeTimeStamps(hours)
	if len(got) != len(hours) {
		t.Fatalf("expected %d stamps, got %d", len(hours), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("stamps out of order at %d: %s then %s", i, got[i-1], got[i])
		}
	}
}

// TestDecodeTimeStamps_TruncatesFractionalHours tests that non-integer
// offsets are truncated to whole hours.
func TestDecodeTimeStamps_TruncatesFractionalHours(t *testing.T) {
	got := DecodeTimeStamps([]float64{5.9})
	if got[0] != "1800-01-01 05:00:00" {
		t.Errorf("decode(5.9): expected 1800-01-01 05:00:00, got %s", got[0])
	}
}

// TestDecodeTimeStamps_Empty tests that an empty axis is not an error.
func TestDecodeTimeStamps_Empty(t *testing.T) {
	if got := DecodeTimeStamps(nil); len(got) != 0 {
		t.Errorf("expected empty sequence, got %v", got)
	}
}

// TestTimeAxis_Lookup tests exact-match lookup and its failure mode.
func TestTimeAxis_Lookup(t *testing.T) {
	// 2022-01-01 00:00 UTC is 1946712 hours past the epoch; steps are 3-hourly.
	axis := NewTimeAxis([]float64{1946712, 1946715, 1946718})

	i, err := axis.Lookup("2022-01-01 03:00:00")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}

	_, err = axis.Lookup("2022-01-01 04:00:00")
	if err == nil {
		t.Fatal("expected lookup error for absent timestamp")
	}
	if !errors.Is(err, ErrNoMatchingTime) {
		t.Errorf("expected ErrNoMatchingTime, got %v", err)
	}
	// The error must report the requested value and the axis range.
	for _, want := range []string{"2022-01-01 04:00:00", "2022-01-01 00:00:00", "2022-01-01 06:00:00"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

// TestTimeAxis_LookupEmpty tests lookup against an empty axis.
func TestTimeAxis_LookupEmpty(t *testing.T) {
	axis := NewTimeAxis(nil)
	if axis.Len() != 0 {
		t.Fatalf("expected empty axis, got %d records", axis.Len())
	}
	_, err := axis.Lookup("2022-01-01 00:00:00")
	if !errors.Is(err, ErrNoMatchingTime) {
		t.Errorf("expected ErrNoMatchingTime, got %v", err)
	}
}

// TestLevelAxis_Lookup tests level lookup and its failure mode.
func TestLevelAxis_Lookup(t *testing.T) {
	axis := NewLevelAxis([]float64{1000, 850, 700, 500, 300})

	i, err := axis.Lookup(500)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if i != 3 {
		t.Errorf("expected index 3, got %d", i)
	}

	_, err = axis.Lookup(925)
	if err == nil {
		t.Fatal("expected lookup error for absent level")
	}
	if !errors.Is(err, ErrNoMatchingLevel) {
		t.Errorf("expected ErrNoMatchingLevel, got %v", err)
	}
	if !strings.Contains(err.Error(), "925") || !strings.Contains(err.Error(), "850") {
		t.Errorf("error %q does not report requested and available levels", err)
	}
}
