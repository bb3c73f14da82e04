// Package pipeline computes the full set of lineage outputs for a topology.
//
// The lineage core answers one question per call. Downstream consumers (a
// trajectory simulator, the CLI, a batch job) usually want all of them at
// once, so this package bundles paths, branch times, timezones and parallel
// groups into a single [Report].
//
// # Usage
//
// One-shot analysis:
//
//	report, err := pipeline.Analyze(t)
//
// Cached analysis through a [Runner]:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//	report, cached, err := runner.Analyze(ctx, t, false)
//
// Reports are keyed by the content hash of the topology ([TopologyHash]), so
// a cached report always belongs to an identical tree.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/scottgigante/prosstt/pkg/cache"
	"github.com/scottgigante/prosstt/pkg/lineage"
)

// Cache TTLs.
const (
	TTLReport = 7 * 24 * time.Hour
	TTLRender = 7 * 24 * time.Hour
)

// Output formats accepted by [Runner.Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
}

type canonical struct {
	Root      lineage.Branch         `json:"root"`
	Durations map[lineage.Branch]int `json:"durations"`
	Edges     []lineage.Edge         `json:"edges"`
}

// TopologyHash returns the SHA-256 of a canonical encoding of t. Edge order
// is part of the hash because it decides path and parallel group order.
func TopologyHash(t *lineage.Tree) string {
	data, _ := json.Marshal(canonical{
		Root:      t.Root(),
		Durations: t.Durations(),
		Edges:     t.Edges(),
	})
	return cache.Hash(data)
}
