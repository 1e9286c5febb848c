package main

import (
	"context"
	"fmt"
	"io"

	"github.com/philipparndt/gowellarc/internal/config"
	"github.com/philipparndt/gowellarc/pkg/analysis"
	"github.com/philipparndt/gowellarc/pkg/arcpair"
	"github.com/spf13/cobra"
)

// requestOptions select the stations and the solver settings
type requestOptions struct {
	casePath string
	from     stationFlags
	to       stationFlags
	solver   solverFlags
}

func (o *requestOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.casePath, "case", "", "read stations and solver settings from a YAML or TOML case file")
	o.from.register(flags, "from", "start station")
	o.to.register(flags, "to", "end station")
	o.solver.register(flags)
}

// load builds the case from the case file or from the station flags.
// Solver flags override the case file.
func (o *requestOptions) load(cmd *cobra.Command) (*config.Case, error) {
	c := &config.Case{
		Units: config.Degrees,
		From:  o.from.station(),
		To:    o.to.station(),
	}
	if o.casePath != "" {
		loaded, err := config.Load(o.casePath)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	o.solver.apply(cmd, c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return c, nil
}

func solve(ctx context.Context, c *config.Case) arcpair.Solution {
	from, to := c.Stations()
	return arcpair.NewSolver(c.Options(), loggerFrom(ctx)).SolveContext(ctx, from, to)
}

func newSolveCmd() *cobra.Command {
	opts := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the S-curve matching two target radii",
		Long: `Solve searches the control point distances so that the arcs at both
stations get their target radii, then prints the curve and its well
planning summary. The command exits with code 2 when no valid curve
was found.`,
		Example: `  gowellarc solve --from-inclination 90 --from-radius 30 \
    --to-x 100 --to-azimuth 180 --to-inclination 90 --to-radius 30
  gowellarc solve --case build-section.yaml --method jacobian`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return report(cmd.Context(), cmd.OutOrStdout(), c)
		},
	}

	opts.register(cmd)
	return cmd
}

// report solves the case and prints the solution with its summary
func report(ctx context.Context, out io.Writer, c *config.Case) error {
	sol := solve(ctx, c)

	if c.Name != "" {
		fmt.Fprintf(out, "Case: %s\n", c.Name)
	}
	fmt.Fprint(out, sol)
	fmt.Fprintln(out)
	printSummary(out, analysis.Summarize(sol.Result))

	if !sol.Valid() {
		return fmt.Errorf("%w: solver %s after %d iterations", errInvalidSolution, sol.Status, sol.Iterations)
	}
	return nil
}

func printSummary(out io.Writer, s *analysis.Summary) {
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  Total length:     %s\n", analysis.FormatMeasurement(s.TotalLength, ""))
	printArc(out, "First arc", s.FirstArc)
	fmt.Fprintf(out, "  Tangent section:  %s\n", analysis.FormatMeasurement(s.TangentLength, ""))
	printArc(out, "Second arc", s.SecondArc)
	fmt.Fprintf(out, "  Max DLS:          %.3f°/30\n", s.MaxSeverity)
	fmt.Fprintf(out, "  Vertical depth:   %s\n", analysis.FormatMeasurement(s.VerticalDepth, ""))
	fmt.Fprintf(out, "  Horizontal drift: %s\n", analysis.FormatMeasurement(s.HorizontalDrift, ""))
	fmt.Fprintf(out, "  Start direction:  %s\n", analysis.FormatDirection(s.StartDirection))
	fmt.Fprintf(out, "  End direction:    %s\n", analysis.FormatDirection(s.EndDirection))
}

func printArc(out io.Writer, name string, arc analysis.ArcInfo) {
	fmt.Fprintf(out, "  %-17s radius %s, length %.6f, dogleg %.3f°, DLS %.3f°/30\n",
		name+":", analysis.FormatRadius(arc.Radius), arc.Length, arc.Dogleg, arc.DoglegSeverity)
}
