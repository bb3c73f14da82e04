// Package pkg provides the libraries behind prosstt, a pseudotime layout
// tool for branching differentiation lineages.
//
// # Overview
//
// A lineage is a rooted tree of branches, each lasting a fixed number of
// pseudotime units. The libraries turn such a tree into the coordinates a
// trajectory simulator needs:
//
//  1. [lineage] - the tree model and every derived query (core)
//  2. [io] - topology descriptions in TOML and JSON
//  3. [pipeline] - all outputs in one cached [pipeline.Report]
//  4. [render/nodelink] - Graphviz diagrams of the tree
//  5. [cache], [observability], [errors], [buildinfo] - supporting packages
//
// # Architecture
//
//	lineage.toml / lineage.json
//	         ↓
//	    [io] package (decode, validate)
//	         ↓
//	    [lineage] package (paths, times, timezones, parallel groups)
//	         ↓
//	    [pipeline] package (report, cache, hooks)
//	         ↓
//	    tables / JSON / SVG / DOT
//
// # Quick Start
//
//	import (
//	    "github.com/scottgigante/prosstt/pkg/io"
//	    "github.com/scottgigante/prosstt/pkg/pipeline"
//	)
//
//	top, err := io.Import("lineage.toml")
//	if err != nil {
//	    return err
//	}
//	report, err := pipeline.Analyze(top.Tree)
//	fmt.Println(report.Timezones)
//
// Random topologies for simulation studies come from [lineage/random]:
//
//	t, err := random.New(3, 40, rand.New(rand.NewPCG(42, 0)))
//
// # Errors
//
// The core reports sentinel errors ([lineage.ErrMalformedTopology] and
// friends). Boundary packages attach a machine-readable code with
// [errors.FromLineage] while keeping the sentinel reachable via errors.Is.
//
// [lineage]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/lineage
// [lineage/random]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/lineage/random
// [io]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/pipeline
// [pipeline.Report]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/pipeline#Report
// [render/nodelink]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/cache
// [observability]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/observability
// [errors]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/errors
// [errors.FromLineage]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/errors#FromLineage
// [buildinfo]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/buildinfo
// [lineage.ErrMalformedTopology]: https://pkg.go.dev/github.com/scottgigante/prosstt/pkg/lineage#ErrMalformedTopology
package pkg
