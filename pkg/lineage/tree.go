package lineage

import (
	"maps"
	"slices"
)

// Branch identifies one segment of the lineage tree. Identifiers are opaque;
// the package only compares them for equality.
type Branch string

// Edge connects a parent branch to one of its children. The order of edges
// passed to [New] fixes the order of children everywhere in the package.
type Edge struct {
	Parent Branch
	Child  Branch
}

// Tree is the topology store: the authoritative edge list and per-branch
// durations, plus adjacency indexes derived from them at construction.
//
// The zero value is not usable - use [New]. A Tree is never mutated after
// construction and is safe for concurrent use.
type Tree struct {
	root      Branch
	edges     []Edge
	durations map[Branch]int
	children  map[Branch][]Branch
	parent    map[Branch]Branch
	order     []Branch // breadth-first from root, children in edge order
}

// New validates the topology and returns an immutable Tree.
//
// Every branch referenced by an edge must have a positive duration, every
// non-root branch must have exactly one parent and every branch must be
// reachable from root. If root is empty, the single branch that is never a
// child becomes the root. Violations are reported as [ErrMalformedTopology].
//
// New copies edges and durations; later changes by the caller have no effect.
func New(edges []Edge, durations map[Branch]int, root Branch) (*Tree, error) {
	if len(durations) == 0 {
		return nil, malformed("no branches")
	}
	for _, b := range slices.Sorted(maps.Keys(durations)) {
		if durations[b] <= 0 {
			return nil, malformed("branch %q has non-positive duration %d", b, durations[b])
		}
	}

	t := &Tree{
		edges:     slices.Clone(edges),
		durations: maps.Clone(durations),
		children:  make(map[Branch][]Branch, len(durations)),
		parent:    make(map[Branch]Branch, len(durations)),
	}

	for _, e := range t.edges {
		if _, ok := t.durations[e.Parent]; !ok {
			return nil, malformed("edge %s->%s: parent has no duration", e.Parent, e.Child)
		}
		if _, ok := t.durations[e.Child]; !ok {
			return nil, malformed("edge %s->%s: child has no duration", e.Parent, e.Child)
		}
		if e.Parent == e.Child {
			return nil, malformed("branch %q is its own parent", e.Parent)
		}
		if p, ok := t.parent[e.Child]; ok {
			return nil, malformed("branch %q has multiple parents (%q, %q)", e.Child, p, e.Parent)
		}
		t.parent[e.Child] = e.Parent
		t.children[e.Parent] = append(t.children[e.Parent], e.Child)
	}

	r, err := t.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	t.root = r
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) resolveRoot(root Branch) (Branch, error) {
	if root != "" {
		if _, ok := t.durations[root]; !ok {
			return "", malformed("root %q has no duration", root)
		}
		if p, ok := t.parent[root]; ok {
			return "", malformed("root %q has parent %q", root, p)
		}
		return root, nil
	}

	var roots []Branch
	for _, b := range slices.Sorted(maps.Keys(t.durations)) {
		if _, ok := t.parent[b]; !ok {
			roots = append(roots, b)
		}
	}
	switch len(roots) {
	case 0:
		return "", malformed("no root: every branch has a parent")
	case 1:
		return roots[0], nil
	default:
		return "", malformed("multiple roots %q", roots)
	}
}

// index computes the breadth-first order and rejects branches the root
// cannot reach. Since the root has no parent and no branch has two, any
// cycle is unreachable and is reported here.
func (t *Tree) index() error {
	t.order = make([]Branch, 0, len(t.durations))
	seen := make(map[Branch]bool, len(t.durations))
	queue := []Branch{t.root}
	seen[t.root] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		t.order = append(t.order, curr)
		for _, c := range t.children[curr] {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}

	if len(t.order) == len(t.durations) {
		return nil
	}
	for _, b := range slices.Sorted(maps.Keys(t.durations)) {
		if seen[b] {
			continue
		}
		if _, ok := t.parent[b]; !ok {
			return malformed("multiple roots %q and %q", t.root, b)
		}
		if t.onCycle(b) {
			return malformed("cycle through branch %q", b)
		}
		return malformed("branch %q is not reachable from root %q", b, t.root)
	}
	return nil
}

func (t *Tree) onCycle(b Branch) bool {
	curr := b
	for range len(t.durations) {
		p, ok := t.parent[curr]
		if !ok {
			return false
		}
		if p == b {
			return true
		}
		curr = p
	}
	return false
}

// Root returns the root branch.
func (t *Tree) Root() Branch { return t.root }

// Len returns the number of branches.
func (t *Tree) Len() int { return len(t.durations) }

// HasBranch reports whether b belongs to the tree.
func (t *Tree) HasBranch(b Branch) bool {
	_, ok := t.durations[b]
	return ok
}

// Branches returns all branches, root first, then breadth-first with
// children in edge declaration order. The slice is a copy.
func (t *Tree) Branches() []Branch { return slices.Clone(t.order) }

// Edges returns a copy of the edge list in declaration order.
func (t *Tree) Edges() []Edge { return slices.Clone(t.edges) }

// Durations returns a copy of the duration mapping.
func (t *Tree) Durations() map[Branch]int { return maps.Clone(t.durations) }

// Children returns the direct children of b in edge declaration order. Leaves
// have no children and yield an empty slice. The slice is a copy.
func (t *Tree) Children(b Branch) ([]Branch, error) {
	if !t.HasBranch(b) {
		return nil, unknown(b)
	}
	return slices.Clone(t.children[b]), nil
}

// Parent returns the parent of b. The boolean is false for the root.
func (t *Tree) Parent(b Branch) (Branch, bool, error) {
	if !t.HasBranch(b) {
		return "", false, unknown(b)
	}
	p, ok := t.parent[b]
	return p, ok, nil
}

// Duration returns the number of pseudotime units covered by b.
func (t *Tree) Duration(b Branch) (int, error) {
	d, ok := t.durations[b]
	if !ok {
		return 0, unknown(b)
	}
	return d, nil
}

// Leaves returns the branches without children, in [Tree.Branches] order.
func (t *Tree) Leaves() []Branch {
	var leaves []Branch
	for _, b := range t.order {
		if len(t.children[b]) == 0 {
			leaves = append(leaves, b)
		}
	}
	return leaves
}
