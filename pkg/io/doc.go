// Package io reads and writes topology descriptions in JSON and TOML.
//
// # Overview
//
// A topology description is everything the lineage core needs from the
// outside world: the branches with their durations, the parent-to-child
// edges, an optional root and an optional per-branch sampling density. How a
// description was produced (hand-authored, generated with
// [github.com/scottgigante/prosstt/pkg/lineage/random], exported by another
// tool) is irrelevant to the core.
//
// # JSON Format
//
//	{
//	  "root": "A",
//	  "branches": [
//	    {"id": "A", "duration": 40},
//	    {"id": "B", "duration": 40},
//	    {"id": "C", "duration": 40}
//	  ],
//	  "edges": [
//	    {"parent": "A", "child": "B"},
//	    {"parent": "A", "child": "C"}
//	  ]
//	}
//
// The compact pair form is accepted as well:
//
//	{"topology": [["A", "B"], ["A", "C"]], "time": {"A": 40, "B": 40, "C": 40}}
//
// # TOML Format
//
//	root = "A"
//
//	[[branches]]
//	id = "A"
//	duration = 40
//
//	[[edges]]
//	parent = "A"
//	child = "B"
//
// # Fields
//
// Required:
//   - branches (or time): every branch with a positive duration
//   - edges (or topology): may be empty for a single-branch tree
//
// Optional:
//   - root: the root branch; inferred when omitted
//   - density: per-branch arrays, one entry per pseudotime point
//
// # Errors
//
// Decode failures carry [errors.ErrCodeInvalidFormat]. Topologies rejected by
// [lineage.New] carry [errors.ErrCodeInvalidTopology], densities of the wrong
// shape [errors.ErrCodeDimensionMismatch], and missing files
// [errors.ErrCodeFileNotFound]. The lineage sentinel stays reachable through
// errors.Is.
//
// # Round Trip
//
// [WriteJSON] and [WriteTOML] always emit the long form, with branches in
// [lineage.Tree.Branches] order and edges in declaration order. Reading the
// output back yields an identical tree.
//
// [errors.ErrCodeInvalidFormat]: github.com/scottgigante/prosstt/pkg/errors.ErrCodeInvalidFormat
// [errors.ErrCodeInvalidTopology]: github.com/scottgigante/prosstt/pkg/errors.ErrCodeInvalidTopology
// [errors.ErrCodeDimensionMismatch]: github.com/scottgigante/prosstt/pkg/errors.ErrCodeDimensionMismatch
// [errors.ErrCodeFileNotFound]: github.com/scottgigante/prosstt/pkg/errors.ErrCodeFileNotFound
package io
