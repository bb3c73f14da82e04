// Package cli implements the prosstt command-line interface.
//
// The commands load a topology description (TOML or JSON), hand it to the
// lineage core and print the results as tables, JSON or diagrams:
//   - analyze: every output at once, cached by topology hash
//   - paths, times, timezones, parallel: a single query each
//   - random: generate a random bifurcating topology
//   - render: draw the tree with Graphviz
//   - explore: browse timezones interactively
//   - cache: manage the local report cache
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/scottgigante/prosstt/pkg/buildinfo"
	"github.com/scottgigante/prosstt/pkg/cache"
	perrors "github.com/scottgigante/prosstt/pkg/errors"
	pio "github.com/scottgigante/prosstt/pkg/io"
	"github.com/scottgigante/prosstt/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "prosstt"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "prosstt builds pseudotime coordinates for branching lineages",
		Long: `prosstt models a differentiation lineage as a tree of branches, each
lasting a fixed number of pseudotime units, and derives the global
pseudotime layout: root-to-leaf paths, absolute branch intervals,
timezones and parallel sibling groups.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.analyzeCommand())
	for _, q := range queries {
		root.AddCommand(c.queryCommand(q))
	}
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheFlags are shared by commands that go through a pipeline.Runner.
type cacheFlags struct {
	noCache bool
	url     string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().StringVar(&f.url, "cache-url", "", "cache backend: file, file:///dir, redis://host:port/db or none")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(flags cacheFlags) (*pipeline.Runner, error) {
	store, err := c.openCache(flags)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// openCache falls back to a NullCache when the default directory cannot be
// determined. An explicit but unusable URL is an error.
func (c *CLI) openCache(flags cacheFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil && flags.url == "" {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	store, err := cache.Open(flags.url, dir)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "open cache")
	}
	return store, nil
}

// loadTopology validates path and reads the topology description.
func (c *CLI) loadTopology(path string) (*pio.Topology, error) {
	if err := perrors.ValidatePath(path, pio.ExtJSON, pio.ExtTOML); err != nil {
		return nil, err
	}
	top, err := pio.Import(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded topology", "file", path, "branches", top.Tree.Len(), "root", top.Tree.Root())
	return top, nil
}
