package lineage

import (
	"maps"
	"slices"
)

// Density holds, for every branch, the probability of sampling each of its
// pseudotime points. The package only checks its shape; values pass through
// untouched.
type Density map[Branch][]float64

// DefaultDensity returns a uniform density: every pseudotime point of every
// branch gets probability 1/total, where total is the sum of all durations.
func (t *Tree) DefaultDensity() Density {
	total := 0
	for _, d := range t.durations {
		total += d
	}

	density := make(Density, len(t.durations))
	for b, d := range t.durations {
		arr := make([]float64, d)
		for i := range arr {
			arr[i] = 1 / float64(total)
		}
		density[b] = arr
	}
	return density
}

// ValidateDensity checks that d holds exactly one array per branch and that
// each array has one entry per pseudotime point of its branch.
func (t *Tree) ValidateDensity(d Density) error {
	if len(d) != len(t.durations) {
		return mismatch("density has %d arrays, tree has %d branches", len(d), len(t.durations))
	}
	for _, b := range slices.Sorted(maps.Keys(d)) {
		want, ok := t.durations[b]
		if !ok {
			return unknown(b)
		}
		if got := len(d[b]); got != want {
			return mismatch("density of branch %q has length %d, want %d", b, got, want)
		}
	}
	return nil
}

// Shaper is satisfied by any two-dimensional payload, such as an expression
// matrix with one row per pseudotime point and one column per feature.
type Shaper interface {
	Dims() (rows, cols int)
}

// ValidateExpression checks a per-branch expression payload: one matrix per
// branch, each shaped (duration, features).
func (t *Tree) ValidateExpression(payload map[Branch]Shaper, features int) error {
	if features <= 0 {
		return mismatch("feature count must be positive, got %d", features)
	}
	if len(payload) != len(t.durations) {
		return mismatch("payload has %d matrices, tree has %d branches", len(payload), len(t.durations))
	}
	for _, b := range slices.Sorted(maps.Keys(payload)) {
		want, ok := t.durations[b]
		if !ok {
			return unknown(b)
		}
		if payload[b] == nil {
			return mismatch("branch %q has no matrix", b)
		}
		rows, cols := payload[b].Dims()
		if rows != want || cols != features {
			return mismatch("branch %q expected shape (%d, %d), got (%d, %d)", b, want, features, rows, cols)
		}
	}
	return nil
}
