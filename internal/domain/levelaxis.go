package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LevelAxis is the vertical pressure coordinate of a dataset, in hPa.
// Pressure-level files carry one; monolevel (surface) files do not.
type LevelAxis struct {
	Levels []float64
	index  map[float64]int
}

// NewLevelAxis builds a level axis with an exact-match index.
func NewLevelAxis(levels []float64) *LevelAxis {
	index := make(map[float64]int, len(levels))
	for i, l := range levels {
		if _, ok := index[l]; !ok {
			index[l] = i
		}
	}
	return &LevelAxis{Levels: levels, index: index}
}

// Len returns the number of pressure levels on the axis.
func (a *LevelAxis) Len() int {
	return len(a.Levels)
}

// Lookup returns the index of the entry exactly equal to level hPa.
// A miss reports the requested level and the available ones.
func (a *LevelAxis) Lookup(level int) (int, error) {
	if i, ok := a.index[float64(level)]; ok {
		return i, nil
	}
	if len(a.Levels) == 0 {
		return 0, fmt.Errorf("%w: %d hPa (level axis is empty)", ErrNoMatchingLevel, level)
	}
	avail := make([]string, len(a.Levels))
	for i, l := range a.Levels {
		avail[i] = strconv.FormatFloat(l, 'f', -1, 64)
	}
	return 0, fmt.Errorf("%w: %d hPa not in level axis (available: %s)",
		ErrNoMatchingLevel, level, strings.Join(avail, ", "))
}
