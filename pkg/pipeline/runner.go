package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scottgigante/prosstt/pkg/cache"
	"github.com/scottgigante/prosstt/pkg/lineage"
	"github.com/scottgigante/prosstt/pkg/observability"
	"github.com/scottgigante/prosstt/pkg/render/nodelink"
)

// Runner wraps analysis and rendering with caching and logging.
//
// The Runner holds no results of its own. Multiple goroutines can share one
// Runner as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Analyze returns the report for t, reading it from the cache unless refresh
// is set. The boolean reports whether the report came from the cache. Cache
// failures are logged and never fail the analysis.
func (r *Runner) Analyze(ctx context.Context, t *lineage.Tree, refresh bool) (*Report, bool, error) {
	hash := TopologyHash(t)
	key := r.Keyer.ReportKey(hash)
	hooks := observability.Cache()

	if !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "key", key, "error", err)
		}
		if hit {
			if report, err := UnmarshalReport(data); err == nil && report.Hash == hash {
				hooks.OnCacheHit(ctx, "report")
				r.Logger.Debug("report cache hit", "hash", hash[:12])
				return report, true, nil
			}
			r.Logger.Debug("discarding unreadable cached report", "key", key)
		}
		hooks.OnCacheMiss(ctx, "report")
	}

	start := time.Now()
	report, err := analyze(ctx, t)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Info("analyzed lineage",
		"branches", report.Branches,
		"paths", len(report.Paths),
		"timezones", len(report.Timezones),
		"duration", time.Since(start))

	r.store(ctx, key, "report", report)
	return report, false, nil
}

// Render returns t as DOT source or a rendered diagram in format, cached by
// topology hash and options.
func (r *Runner) Render(ctx context.Context, t *lineage.Tree, format string, opts nodelink.Options) ([]byte, bool, error) {
	if !ValidFormats[format] {
		return nil, false, fmt.Errorf("unsupported render format: %q", format)
	}
	key := r.Keyer.RenderKey(TopologyHash(t), cache.RenderKeyOpts{Format: format, Detailed: opts.Detailed})
	hooks := observability.Cache()

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, "render")
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, "render")

	start := time.Now()
	dot, err := nodelink.ToDOT(t, opts)
	if err != nil {
		return nil, false, err
	}

	var data []byte
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = nodelink.RenderSVG(dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(dot)
	}
	if err != nil {
		return nil, false, fmt.Errorf("render %s: %w", format, err)
	}
	r.Logger.Info("rendered lineage", "format", format, "bytes", len(data), "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, TTLRender); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
	} else {
		hooks.OnCacheSet(ctx, "render", len(data))
	}
	return data, false, nil
}

func (r *Runner) store(ctx context.Context, key, keyType string, report *Report) {
	data, err := MarshalReport(report)
	if err != nil {
		r.Logger.Warn("encode report failed", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, TTLReport); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
