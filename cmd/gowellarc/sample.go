package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	opts := &requestOptions{}
	var step float64

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Solve and list positions along the curve",
		Long: `Sample solves like the solve command and prints measured depth, position
and direction every --step length units. Both stations are always listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(cmd)
			if err != nil {
				return err
			}

			sol := solve(cmd.Context(), c)
			if !sol.Valid() {
				return fmt.Errorf("%w: solver %s after %d iterations", errInvalidSolution, sol.Status, sol.Iterations)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%12s %12s %12s %12s %9s %9s\n", "md", "x", "y", "z", "azimuth", "incl")
			for _, p := range sol.Result.Sample(step) {
				fmt.Fprintf(out, "%12.3f %12.3f %12.3f %12.3f %9.3f %9.3f\n",
					p.MD, p.Position.X, p.Position.Y, p.Position.Z,
					p.Direction.AzimuthDegrees(), p.Direction.InclinationDegrees())
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().Float64Var(&step, "step", 10, "measured depth between samples")
	return cmd
}
