package lineage

// ParallelGroups maps every branch that has children to its children, in
// edge declaration order. Siblings in one group run in parallel over the
// same pseudotime range and are sampled jointly within a timezone.
// Leaves have no entry.
func (t *Tree) ParallelGroups() map[Branch][]Branch {
	groups := make(map[Branch][]Branch)
	for _, e := range t.edges {
		groups[e.Parent] = append(groups[e.Parent], e.Child)
	}
	return groups
}
