package lineage

import "fmt"

// Interval is a closed range [Start, End] of pseudotime points. It is used
// both for the absolute span of a branch and for timezones.
type Interval struct {
	Start int `json:"start" toml:"start"`
	End   int `json:"end" toml:"end"`
}

// Len returns the number of pseudotime points covered, End-Start+1.
func (iv Interval) Len() int { return iv.End - iv.Start + 1 }

// Contains reports whether pseudotime point p lies inside the interval.
func (iv Interval) Contains(p int) bool { return p >= iv.Start && p <= iv.End }

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval) Overlaps(o Interval) bool { return iv.Start <= o.End && o.Start <= iv.End }

// String formats the interval as "[start, end]".
func (iv Interval) String() string { return fmt.Sprintf("[%d, %d]", iv.Start, iv.End) }

// BranchTimes converts per-branch durations into absolute intervals. The
// root spans [0, duration-1]; a child starts one point after its parent
// ends and spans exactly its own duration.
//
// Branches are resolved breadth-first from the root, so parents are always
// resolved before their children regardless of edge declaration order.
// [ErrBrokenChain] is returned if that invariant is ever violated.
func (t *Tree) BranchTimes() (map[Branch]Interval, error) {
	times := make(map[Branch]Interval, len(t.order))
	times[t.root] = Interval{Start: 0, End: t.durations[t.root] - 1}

	for _, b := range t.order[1:] {
		p := t.parent[b]
		pt, ok := times[p]
		if !ok {
			return nil, fmt.Errorf("%w: parent %q of %q unresolved", ErrBrokenChain, p, b)
		}
		times[b] = Interval{Start: pt.End + 1, End: pt.End + t.durations[b]}
	}
	return times, nil
}
