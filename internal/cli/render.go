package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
	"github.com/scottgigante/prosstt/pkg/pipeline"
	"github.com/scottgigante/prosstt/pkg/render/nodelink"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags    cacheFlags
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the lineage tree with Graphviz",
		Long: `Render draws every branch as a box and every edge as an arrow, with sibling
branches on the same rank. The output format follows the extension of -o:
.svg, .png, or .dot for the Graphviz source. The default output is FILE
with its extension replaced by .svg.`,
		Example: `  prosstt render lineage.toml
  prosstt render lineage.toml -o lineage.dot --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = replaceExt(args[0], ".svg")
			}
			format, err := outputFormat(output)
			if err != nil {
				return err
			}

			top, err := c.loadTopology(args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			spin := newSpinnerWithContext(cmd.Context(), "Rendering "+format+"...")
			spin.Start()
			data, cached, err := runner.Render(cmd.Context(), top.Tree, format, nodelink.Options{Detailed: detailed})
			spin.Stop()
			if err != nil {
				return perrors.FromLineage(err)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return perrors.Wrap(perrors.ErrCodeInvalidPath, err, "write %s", output)
			}
			status := iconFresh
			if cached {
				status = iconCached
			}
			printSuccess("Rendered %s (%s)", strings.ToUpper(format), status)
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg, .png or .dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label branches with duration and interval")

	return cmd
}

// outputFormat maps an output path to a render format.
func outputFormat(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !pipeline.ValidFormats[ext] {
		return "", perrors.New(perrors.ErrCodeInvalidFormat, "unsupported output %q (want .svg, .png or .dot)", path)
	}
	return ext, nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
