package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTable is returned when intensity levels break the cumulative
// bound invariant.
var ErrInvalidTable = errors.New("grid: invalid intensity table")

// Level is one reachable shade. Bound is the upper end of its cumulative
// probability interval; the lower end is the previous level's bound.
type Level struct {
	Shade uint8   `json:"shade"`
	Bound float64 `json:"bound"`
}

// Table is an ordered, immutable set of intensity levels.
type Table struct {
	levels []Level
}

// NewTable validates levels and returns a table over a private copy.
// Bounds must be strictly increasing, start at or above 0 and end at
// exactly 1.
func NewTable(levels []Level) (*Table, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidTable)
	}
	prev := 0.0
	for i, l := range levels {
		if l.Bound < 0 || math.IsNaN(l.Bound) {
			return nil, fmt.Errorf("%w: level %d bound %v is not a probability", ErrInvalidTable, i, l.Bound)
		}
		if i > 0 && l.Bound <= prev {
			return nil, fmt.Errorf("%w: level %d bound %v does not exceed %v", ErrInvalidTable, i, l.Bound, prev)
		}
		prev = l.Bound
	}
	if last := levels[len(levels)-1].Bound; last != 1 {
		return nil, fmt.Errorf("%w: last bound is %v, want 1", ErrInvalidTable, last)
	}

	return &Table{levels: append([]Level(nil), levels...)}, nil
}

// Pick returns the shade of the first level whose bound is >= u.
// Draws above every bound fall back to the last level.
func (t *Table) Pick(u float64) uint8 {
	for _, l := range t.levels {
		if u <= l.Bound {
			return l.Shade
		}
	}
	return t.levels[len(t.levels)-1].Shade
}
