package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
	pio "github.com/scottgigante/prosstt/pkg/io"
	"github.com/scottgigante/prosstt/pkg/lineage/random"
)

// randomCommand creates the random topology generator command.
func (c *CLI) randomCommand() *cobra.Command {
	var (
		branchPoints int
		duration     int
		seed         uint64
		density      bool
		output       string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random bifurcating topology",
		Long: `Random grows a tree from root "0" by repeatedly splitting a random leaf in
two. Every branch gets the same duration. The description is written as
JSON to stdout, or to -o in the format given by its extension.`,
		Example: `  prosstt random --branch-points 3 --duration 40 -o lineage.toml
  prosstt random --branch-points 5 --seed 7 > lineage.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if branchPoints < 0 {
				return perrors.New(perrors.ErrCodeInvalidInput, "--branch-points must be non-negative, got %d", branchPoints)
			}
			if duration <= 0 {
				return perrors.New(perrors.ErrCodeInvalidInput, "--duration must be positive, got %d", duration)
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, 0))
			}
			t, err := random.New(branchPoints, duration, rng)
			if err != nil {
				return perrors.FromLineage(err)
			}
			top := &pio.Topology{Tree: t}
			if density {
				top.Density = t.DefaultDensity()
			}
			c.Logger.Debug("generated topology", "branches", t.Len(), "seed", seed)

			if output == "" {
				return pio.WriteJSON(top, cmd.OutOrStdout())
			}
			if err := perrors.ValidatePath(output, pio.ExtJSON, pio.ExtTOML); err != nil {
				return err
			}
			if err := pio.Export(top, output); err != nil {
				return err
			}
			printSuccess("Generated %d branches", t.Len())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&branchPoints, "branch-points", "n", 2, "number of bifurcations")
	cmd.Flags().IntVarP(&duration, "duration", "d", 40, "pseudotime units per branch")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (random when unset)")
	cmd.Flags().BoolVar(&density, "density", false, "include a uniform sampling density")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml)")

	return cmd
}
