package lineage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

func TestBranchTimes(t *testing.T) {
	tests := []struct {
		name      string
		edges     []lineage.Edge
		durations map[lineage.Branch]int
		want      map[lineage.Branch]lineage.Interval
	}{
		{
			name:      "bifurcation",
			edges:     []lineage.Edge{{"A", "B"}, {"A", "C"}},
			durations: map[lineage.Branch]int{"A": 40, "B": 40, "C": 40},
			want: map[lineage.Branch]lineage.Interval{
				"A": {0, 39},
				"B": {40, 79},
				"C": {40, 79},
			},
		},
		{
			name:      "single branch",
			durations: map[lineage.Branch]int{"R": 10},
			want:      map[lineage.Branch]lineage.Interval{"R": {0, 9}},
		},
		{
			name:      "child edge declared before parent edge",
			edges:     []lineage.Edge{{"B", "C"}, {"A", "B"}},
			durations: map[lineage.Branch]int{"A": 3, "B": 4, "C": 5},
			want: map[lineage.Branch]lineage.Interval{
				"A": {0, 2},
				"B": {3, 6},
				"C": {7, 11},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mustNew(t, tt.edges, tt.durations, "")
			got, err := tr.BranchTimes()
			if err != nil {
				t.Fatalf("BranchTimes() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BranchTimes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBranchTimesInvariants(t *testing.T) {
	tr := deepTree(t)
	times, err := tr.BranchTimes()
	if err != nil {
		t.Fatalf("BranchTimes() error: %v", err)
	}

	if times[tr.Root()].Start != 0 {
		t.Errorf("root starts at %d, want 0", times[tr.Root()].Start)
	}
	for _, b := range tr.Branches() {
		d, _ := tr.Duration(b)
		if got := times[b].Len(); got != d {
			t.Errorf("branch %q spans %d points, want %d", b, got, d)
		}
	}
	for _, e := range tr.Edges() {
		if times[e.Child].Start != times[e.Parent].End+1 {
			t.Errorf("edge %s->%s: child starts at %d, parent ends at %d",
				e.Parent, e.Child, times[e.Child].Start, times[e.Parent].End)
		}
	}
}

func TestIntervalHelpers(t *testing.T) {
	iv := lineage.Interval{Start: 10, End: 14}

	if iv.Len() != 5 {
		t.Errorf("Len() = %d, want 5", iv.Len())
	}
	if !iv.Contains(10) || !iv.Contains(14) || iv.Contains(15) || iv.Contains(9) {
		t.Error("Contains() boundaries are wrong")
	}
	if !iv.Overlaps(lineage.Interval{Start: 14, End: 20}) {
		t.Error("Overlaps() should include a shared endpoint")
	}
	if iv.Overlaps(lineage.Interval{Start: 15, End: 20}) {
		t.Error("Overlaps() should reject adjacent intervals")
	}
	if got := iv.String(); got != "[10, 14]" {
		t.Errorf("String() = %q, want %q", got, "[10, 14]")
	}
}
