package lineage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

func TestPaths(t *testing.T) {
	tr := deepTree(t)

	got, err := tr.Paths(tr.Root())
	if err != nil {
		t.Fatalf("Paths() error: %v", err)
	}
	want := []lineage.Path{{"A", "B", "D"}, {"A", "B", "E"}, {"A", "C"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paths(A) mismatch (-want +got):\n%s", diff)
	}
}

func TestPathsFromSubtree(t *testing.T) {
	tr := deepTree(t)

	got, err := tr.Paths("B")
	if err != nil {
		t.Fatalf("Paths(B) error: %v", err)
	}
	want := []lineage.Path{{"B", "D"}, {"B", "E"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paths(B) mismatch (-want +got):\n%s", diff)
	}

	leaf, err := tr.Paths("E")
	if err != nil {
		t.Fatalf("Paths(E) error: %v", err)
	}
	if diff := cmp.Diff([]lineage.Path{{"E"}}, leaf); diff != "" {
		t.Errorf("Paths(E) mismatch (-want +got):\n%s", diff)
	}
}

func TestPathsProperties(t *testing.T) {
	tr := deepTree(t)
	paths, err := tr.Paths(tr.Root())
	if err != nil {
		t.Fatalf("Paths() error: %v", err)
	}

	if len(paths) != len(tr.Leaves()) {
		t.Errorf("got %d paths, want one per leaf (%d)", len(paths), len(tr.Leaves()))
	}

	lengths := map[lineage.Branch]int{"D": 25, "E": 18, "C": 30}
	for _, p := range paths {
		if p[0] != tr.Root() {
			t.Errorf("path %v does not start at root", p)
		}
		if children, _ := tr.Children(p.Leaf()); len(children) != 0 {
			t.Errorf("path %v ends at %q, which has children", p, p.Leaf())
		}
		n, err := tr.PathLength(p)
		if err != nil {
			t.Fatalf("PathLength(%v) error: %v", p, err)
		}
		if n != lengths[p.Leaf()] {
			t.Errorf("PathLength(%v) = %d, want %d", p, n, lengths[p.Leaf()])
		}
	}
}

func TestMaxTime(t *testing.T) {
	tests := []struct {
		name      string
		edges     []lineage.Edge
		durations map[lineage.Branch]int
		want      int
	}{
		{
			name:      "single branch",
			durations: map[lineage.Branch]int{"R": 10},
			want:      10,
		},
		{
			name:      "equal siblings",
			edges:     []lineage.Edge{{"A", "B"}, {"A", "C"}},
			durations: map[lineage.Branch]int{"A": 40, "B": 40, "C": 40},
			want:      80,
		},
		{
			name:      "uneven siblings",
			edges:     []lineage.Edge{{"A", "B"}, {"A", "C"}},
			durations: map[lineage.Branch]int{"A": 25, "B": 25, "C": 30},
			want:      55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mustNew(t, tt.edges, tt.durations, "")
			got, err := tr.MaxTime()
			if err != nil {
				t.Fatalf("MaxTime() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MaxTime() = %d, want %d", got, tt.want)
			}
		})
	}

	deep, err := deepTree(t).MaxTime()
	if err != nil || deep != 30 {
		t.Errorf("deepTree MaxTime() = %d, %v; want 30", deep, err)
	}
}

func TestPathLeafEmpty(t *testing.T) {
	if got := (lineage.Path{}).Leaf(); got != "" {
		t.Errorf("empty Path.Leaf() = %q, want empty", got)
	}
}
