package lineage

import (
	"fmt"
	"math"
)

// Segment is a half-open range [Start, End) of pseudotime along one path.
// Consecutive segments of a path share their boundary: the End of one is the
// Start of the next.
type Segment struct {
	Start int
	End   int
}

// Morph lays durations end to end starting at 0. Durations [d0, d1, ...]
// become [0, d0), [d0, d0+d1), and so on.
func Morph(durations []int) []Segment {
	segs := make([]Segment, len(durations))
	prev := 0
	for i, d := range durations {
		segs[i] = Segment{Start: prev, End: prev + d}
		prev += d
	}
	return segs
}

// cursor tracks progress through one path's immutable segment list. start
// overrides the current segment's Start after it has been split.
type cursor struct {
	segs  []Segment
	i     int
	start int
}

func (c *cursor) current() Segment { return Segment{Start: c.start, End: c.segs[c.i].End} }

func (c *cursor) advance() {
	c.i++
	if c.i < len(c.segs) {
		c.start = c.segs[c.i].Start
	}
}

func (c *cursor) done() bool { return c.i >= len(c.segs) }

// Partition merges the segment stacks of all paths into a sorted,
// non-overlapping, gap-free sequence of closed timezones.
//
// Each round looks at the current segment of every path that still has
// segments. It emits the timezone [max(starts), min(ends)-1]. Paths whose
// current segment ends at min(ends) move on to their next segment; the
// others keep the remainder [min(ends), end) as their current segment. So a
// breakpoint on any path becomes a timezone boundary on every path still
// active at that point. When all ends agree, every path advances.
//
// The result depends only on the set of coordinates, never on the order of
// stacks. Every round advances at least one cursor, so Partition performs at
// most as many rounds as there are segments in total. Empty stacks are
// ignored. A timezone with start > end is reported as [ErrTimezoneInversion].
func Partition(stacks [][]Segment) ([]Interval, error) {
	active := make([]*cursor, 0, len(stacks))
	for _, s := range stacks {
		if len(s) > 0 {
			active = append(active, &cursor{segs: s, start: s[0].Start})
		}
	}

	var zones []Interval
	for len(active) > 0 {
		maxStart, minEnd := math.MinInt, math.MaxInt
		for _, c := range active {
			seg := c.current()
			maxStart = max(maxStart, seg.Start)
			minEnd = min(minEnd, seg.End)
		}

		zone := Interval{Start: maxStart, End: minEnd - 1}
		if zone.Start > zone.End {
			return nil, fmt.Errorf("%w: %v", ErrTimezoneInversion, zone)
		}
		zones = append(zones, zone)

		next := active[:0]
		for _, c := range active {
			if c.current().End == minEnd {
				c.advance()
			} else {
				c.start = minEnd
			}
			if !c.done() {
				next = append(next, c)
			}
		}
		active = next
	}
	return zones, nil
}

// Timezones partitions the pseudotime range [0, MaxTime-1] of the tree into
// timezones: maximal intervals during which the same set of branches is
// alive. See [Partition] for the merge rule.
func (t *Tree) Timezones() ([]Interval, error) {
	paths := t.paths(t.root)
	stacks := make([][]Segment, len(paths))
	for i, p := range paths {
		stacks[i] = Morph(t.pathDurations(p))
	}
	return Partition(stacks)
}

// TimezoneIndex assigns every pseudotime point its timezone. The result has
// MaxTime entries; entry p holds the index into [Tree.Timezones] of the zone
// containing p.
func (t *Tree) TimezoneIndex() ([]int, error) {
	zones, err := t.Timezones()
	if err != nil {
		return nil, err
	}
	total, err := t.MaxTime()
	if err != nil {
		return nil, err
	}

	index := make([]int, total)
	for i, z := range zones {
		for p := z.Start; p <= z.End && p < total; p++ {
			index[p] = i
		}
	}
	return index, nil
}

// Zone is a timezone together with the branches alive during it.
type Zone struct {
	Interval
	Branches []Branch `json:"branches"`
}

// Zones returns every timezone with the branches whose absolute interval
// overlaps it, listed in [Tree.Branches] order.
func (t *Tree) Zones() ([]Zone, error) {
	zones, err := t.Timezones()
	if err != nil {
		return nil, err
	}
	times, err := t.BranchTimes()
	if err != nil {
		return nil, err
	}

	out := make([]Zone, len(zones))
	for i, z := range zones {
		out[i].Interval = z
		for _, b := range t.order {
			if times[b].Overlaps(z) {
				out[i].Branches = append(out[i].Branches, b)
			}
		}
	}
	return out, nil
}
