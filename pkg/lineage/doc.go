// Package lineage models a branching differentiation lineage as a rooted
// out-tree of branches and derives a global pseudotime coordinate system
// across all of them.
//
// # Overview
//
// Each branch of the lineage covers a fixed number of pseudotime units (its
// duration). A child branch starts the pseudotime unit right after its parent
// ends, so every branch owns an absolute closed interval of pseudotime. The
// package answers the questions a trajectory simulator asks of such a tree:
//
//   - which root-to-leaf paths exist ([Tree.Paths])
//   - where each branch starts and ends ([Tree.BranchTimes])
//   - how long the longest path is ([Tree.MaxTime])
//   - how pseudotime splits into timezones ([Tree.Timezones])
//   - which branches share a parent ([Tree.ParallelGroups])
//
// # Basic Usage
//
// Build a tree from an edge list, a duration per branch and the root:
//
//	t, err := lineage.New(
//	    []lineage.Edge{{Parent: "A", Child: "B"}, {Parent: "A", Child: "C"}},
//	    map[lineage.Branch]int{"A": 40, "B": 40, "C": 40},
//	    "A",
//	)
//	if err != nil {
//	    return err
//	}
//	zones, err := t.Timezones() // [[0 39] [40 79]]
//
// [New] rejects anything that is not a single-rooted out-tree with
// [ErrMalformedTopology]. Passing an empty root selects the unique branch that
// never appears as a child.
//
// # Timezones
//
// A timezone is a maximal pseudotime interval during which the same set of
// branches is alive. Paths of different lengths, and sibling branches of
// different durations, introduce breakpoints that must hold across every
// path. [Partition] walks all paths in lockstep with one cursor per path and
// cuts every path at the earliest segment end it sees, so a breakpoint on any
// path becomes a timezone boundary for all of them. The resulting sequence is
// sorted, non-overlapping and exactly covers [0, MaxTime-1].
//
// Path segments produced by [Morph] are half-open ([Segment]); branch
// intervals and timezones are closed ([Interval]).
//
// # Payloads
//
// Sampling densities and expression matrices are carried by callers. The
// package only checks their shape against the branch durations
// ([Tree.ValidateDensity], [Tree.ValidateExpression]) and reports
// [ErrDimensionMismatch] on disagreement.
//
// # Concurrency
//
// A [Tree] is immutable after [New] returns. All queries recompute their result
// from the edge list and durations, so a Tree may be shared freely between
// goroutines. To change a topology, build a new Tree.
package lineage
