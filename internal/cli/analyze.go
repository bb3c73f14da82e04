package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
	"github.com/scottgigante/prosstt/pkg/lineage"
	"github.com/scottgigante/prosstt/pkg/pipeline"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		flags   cacheFlags
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Compute paths, branch times, timezones and parallel groups",
		Long: `Analyze loads a topology description and prints every derived output.

Reports are cached by the content hash of the topology, so repeated runs on
an unchanged file are served from the cache. Use --refresh to recompute.`,
		Example: `  prosstt analyze lineage.toml
  prosstt analyze lineage.json --json > report.json
  prosstt analyze lineage.toml --cache-url redis://localhost:6379/0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			top, err := c.loadTopology(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			report, cached, err := runner.Analyze(cmd.Context(), top.Tree, refresh)
			if err != nil {
				return perrors.FromLineage(err)
			}
			prog.done("Analyzed " + args[0])

			if asJSON {
				data, err := pipeline.MarshalReport(report)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			printReport(cmd, top.Tree, report, cached)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute and overwrite the cached report")

	return cmd
}

func printReport(cmd *cobra.Command, t *lineage.Tree, r *pipeline.Report, cached bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, StyleTitle.Render("Lineage"))
	fmt.Fprintln(out, keyValue("Root", string(r.Root)))
	fmt.Fprintln(out, keyValue("Max time", strconv.Itoa(r.MaxTime)))
	fmt.Fprintln(out, keyValue("Hash", r.Hash[:12]))
	fmt.Fprintln(out, statsLine(r.Branches, len(r.Timezones), cached))

	sections := []struct {
		title string
		body  string
	}{
		{"Paths", pathsTable(t, r.Paths)},
		{"Branch times", timesTable(t, r.BranchTimes)},
		{"Timezones", zonesTable(r.Zones)},
	}
	if len(r.Parallel) > 0 {
		sections = append(sections, struct{ title, body string }{"Parallel groups", parallelTable(r.Parallel)})
	}
	for _, s := range sections {
		fmt.Fprintln(out)
		fmt.Fprintln(out, StyleTitle.Render(s.title))
		fmt.Fprintln(out, s.body)
	}
}

// query is a single-output command over a loaded tree.
type query struct {
	use   string
	short string
	run   func(cmd *cobra.Command, t *lineage.Tree) (string, error)
	flags func(cmd *cobra.Command)
}

var queries = []query{
	{
		use:   "paths FILE",
		short: "List every root-to-leaf path",
		run: func(_ *cobra.Command, t *lineage.Tree) (string, error) {
			paths, err := t.Paths(t.Root())
			if err != nil {
				return "", err
			}
			return pathsTable(t, paths), nil
		},
	},
	{
		use:   "times FILE",
		short: "Print the absolute pseudotime interval of every branch",
		run: func(_ *cobra.Command, t *lineage.Tree) (string, error) {
			times, err := t.BranchTimes()
			if err != nil {
				return "", err
			}
			return timesTable(t, times), nil
		},
	},
	{
		use:   "timezones FILE",
		short: "Partition pseudotime into timezones",
		run: func(cmd *cobra.Command, t *lineage.Tree) (string, error) {
			zones, err := t.Zones()
			if err != nil {
				return "", err
			}
			body := zonesTable(zones)
			if showIndex, _ := cmd.Flags().GetBool("index"); showIndex {
				index, err := t.TimezoneIndex()
				if err != nil {
					return "", err
				}
				body += "\n" + StyleDim.Render("index: ") + indexRuns(index)
			}
			return body, nil
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().Bool("index", false, "also print the timezone of every pseudotime point")
		},
	},
	{
		use:   "parallel FILE",
		short: "List sibling groups that share a parent",
		run: func(_ *cobra.Command, t *lineage.Tree) (string, error) {
			groups := t.ParallelGroups()
			if len(groups) == 0 {
				return StyleDim.Render("no branch points"), nil
			}
			return parallelTable(groups), nil
		},
	},
}

// queryCommand wraps a query in a cobra command that loads FILE first.
func (c *CLI) queryCommand(q query) *cobra.Command {
	cmd := &cobra.Command{
		Use:   q.use,
		Short: q.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			top, err := c.loadTopology(args[0])
			if err != nil {
				return err
			}
			body, err := q.run(cmd, top.Tree)
			if err != nil {
				return perrors.FromLineage(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(body, "\n"))
			return err
		},
	}
	if q.flags != nil {
		q.flags(cmd)
	}
	return cmd
}
