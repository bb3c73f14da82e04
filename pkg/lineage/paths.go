package lineage

// Path is a sequence of branches from a start branch down to a leaf, each
// consecutive pair joined by an edge.
type Path []Branch

// Leaf returns the last branch of the path, or "" for an empty path.
func (p Path) Leaf() Branch {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Paths lists every path from start to a leaf of its subtree. A leaf yields
// the single path [start]. Paths are ordered depth-first with children
// visited in edge declaration order, so the result is deterministic.
//
// Paths accepts any branch, not only the root, to support subtree queries.
func (t *Tree) Paths(start Branch) ([]Path, error) {
	if !t.HasBranch(start) {
		return nil, unknown(start)
	}
	return t.paths(start), nil
}

// paths recurses once per tree level; the depth is bounded because New
// rejects cycles.
func (t *Tree) paths(start Branch) []Path {
	children := t.children[start]
	if len(children) == 0 {
		return []Path{{start}}
	}

	var rooted []Path
	for _, c := range children {
		for _, sub := range t.paths(c) {
			p := make(Path, 0, len(sub)+1)
			p = append(p, start)
			p = append(p, sub...)
			rooted = append(rooted, p)
		}
	}
	return rooted
}

// PathLength returns the summed duration of the branches in p.
func (t *Tree) PathLength(p Path) (int, error) {
	total := 0
	for _, b := range p {
		d, err := t.Duration(b)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// MaxTime returns the length of the longest root-to-leaf path, which is the
// total number of pseudotime points in the tree.
func (t *Tree) MaxTime() (int, error) {
	longest := 0
	for _, p := range t.paths(t.root) {
		n, err := t.PathLength(p)
		if err != nil {
			return 0, err
		}
		longest = max(longest, n)
	}
	return longest, nil
}

// pathDurations returns the branch durations along p, in path order.
func (t *Tree) pathDurations(p Path) []int {
	ds := make([]int, len(p))
	for i, b := range p {
		ds[i] = t.durations[b]
	}
	return ds
}
