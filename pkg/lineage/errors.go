package lineage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBranch is returned by queries that name a branch absent from
	// the tree.
	ErrUnknownBranch = errors.New("unknown branch")

	// ErrMalformedTopology is returned by [New] when the edges and durations do
	// not describe a single-rooted out-tree: cycles, several or zero roots,
	// branches with two parents, unreachable branches, or edge endpoints
	// without a duration.
	ErrMalformedTopology = errors.New("malformed topology")

	// ErrDimensionMismatch is returned when a caller-supplied payload does not
	// have the shape its branch requires.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrBrokenChain signals that a branch interval was requested before its
	// parent interval was resolved. It indicates a defect, never a user error.
	ErrBrokenChain = errors.New("broken interval chain")

	// ErrTimezoneInversion signals that the partitioner produced an empty or
	// negative-length timezone. It indicates a defect, never a user error.
	ErrTimezoneInversion = errors.New("timezone inversion")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedTopology, fmt.Sprintf(format, args...))
}

func unknown(b Branch) error {
	return fmt.Errorf("%w: %q", ErrUnknownBranch, b)
}

func mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDimensionMismatch, fmt.Sprintf(format, args...))
}
