// Package cache stores computed lineage reports and rendered diagrams.
//
// The lineage core never caches; callers that analyze the same topology
// repeatedly (the CLI, batch jobs) put a [Cache] in front of it. Entries are
// addressed by the content hash of the topology description, so a cached
// report can never be served for a different tree.
//
// Three backends are provided:
//   - [NullCache] stores nothing
//   - [FileCache] stores entries under a local directory
//   - [RedisCache] stores entries in Redis, for shared runners
//
// [Open] selects one from a URL.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// Keyer builds cache keys for the values the pipeline stores.
type Keyer interface {
	// ReportKey addresses the analysis report of a topology.
	ReportKey(topologyHash string) string

	// RenderKey addresses a rendered diagram of a topology.
	RenderKey(topologyHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts holds the render options that change the output bytes.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer produces "report:<hash>" and "render:<hash>:<opts>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ReportKey returns "report:<hash>".
func (DefaultKeyer) ReportKey(topologyHash string) string {
	return "report:" + topologyHash
}

// RenderKey returns "render:<hash>:<digest of opts>".
func (DefaultKeyer) RenderKey(topologyHash string, opts RenderKeyOpts) string {
	return hashKey("render:"+topologyHash, opts)
}
