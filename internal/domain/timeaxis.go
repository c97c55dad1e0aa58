package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used throughout the module, matching the
// analysis-hour strings accepted by the renderers (e.g. "2022-01-01 18:00:00").
const TimeLayout = "2006-01-02 15:04:05"

// narrEpoch is the origin of the NARR time coordinate. The "time" variable in
// NARR files counts hours elapsed since this instant (UTC).
var narrEpoch = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)

// DecodeTimeStamps converts raw hour offsets from a file's time variable into
// formatted timestamp strings, one per input element, preserving order.
// Fractional offsets are truncated to whole hours. No timezone conversion is
// applied; offsets are assumed to already be UTC.
func DecodeTimeStamps(hours []float64) []string {
	stamps := make([]string, len(hours))
	for i, h := range hours {
		t := narrEpoch.Add(time.Duration(int64(h)) * time.Hour)
		stamps[i] = t.Format(TimeLayout)
	}
	return stamps
}

// TimeAxis is the decoded time dimension of a dataset: an ordered sequence of
// timestamp strings plus an exact-match index built once at construction.
type TimeAxis struct {
	Stamps []string
	index  map[string]int
}

// NewTimeAxis decodes raw hour offsets into a time axis. An empty offset
// slice yields an empty (but usable) axis.
func NewTimeAxis(hours []float64) *TimeAxis {
	stamps := DecodeTimeStamps(hours)
	index := make(map[string]int, len(stamps))
	for i, s := range stamps {
		// First occurrence wins, matching first-match scan semantics.
		if _, ok := index[s]; !ok {
			index[s] = i
		}
	}
	return &TimeAxis{Stamps: stamps, index: index}
}

// Len returns the number of records on the axis.
func (a *TimeAxis) Len() int {
	return len(a.Stamps)
}

// Lookup returns the index of the record whose timestamp exactly equals date.
// A miss reports the requested value and the span of the axis.
func (a *TimeAxis) Lookup(date string) (int, error) {
	if i, ok := a.index[date]; ok {
		return i, nil
	}
	if len(a.Stamps) == 0 {
		return 0, fmt.Errorf("%w: %q (time axis is empty)", ErrNoMatchingTime, date)
	}
	return 0, fmt.Errorf("%w: %q not in time axis (%s .. %s, %d records)",
		ErrNoMatchingTime, date, a.Stamps[0], a.Stamps[len(a.Stamps)-1], len(a.Stamps))
}
