package main

import (
	"fmt"

	"github.com/philipparndt/gowellarc/pkg/analysis"
	"github.com/philipparndt/gowellarc/pkg/arcpair"
	"github.com/philipparndt/gowellarc/pkg/geometry"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var p1, q1, p2, q2 geometry.Vector3

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Construct the S-curve from explicit control points",
		Long: `Build runs the closed-form construction for the stations P1 and P2 and the
control points Q1 and Q2. The start direction points from P1 to Q1 and the
end direction from Q2 to P2.`,
		Example: `  gowellarc build --p1 0,0,0 --q1 0,10,0 --p2 100,0,0 --q2 100,10,0`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := arcpair.FromControlPoints(p1, q1, p2, q2)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, r)
			fmt.Fprintln(out)
			printSummary(out, analysis.Summarize(r))

			if !r.Valid {
				return fmt.Errorf("%w: the control points do not form a realizable curve", errInvalidSolution)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(pointValue{&p1}, "p1", "start station")
	flags.Var(pointValue{&q1}, "q1", "first control point")
	flags.Var(pointValue{&p2}, "p2", "end station")
	flags.Var(pointValue{&q2}, "q2", "second control point")
	for _, name := range []string{"p1", "q1", "p2", "q2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
