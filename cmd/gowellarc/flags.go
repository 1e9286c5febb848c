package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gowellarc/internal/config"
	"github.com/philipparndt/gowellarc/pkg/analysis"
	"github.com/philipparndt/gowellarc/pkg/geometry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// pointValue is a pflag.Value reading "x,y,z"
type pointValue struct {
	v *geometry.Vector3
}

func (p pointValue) String() string {
	if p.v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", p.v.X, p.v.Y, p.v.Z)
}

func (p pointValue) Set(text string) error {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected x,y,z but got %q", text)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		coords[i] = v
	}
	*p.v = geometry.NewVector3(coords[0], coords[1], coords[2])
	return nil
}

func (pointValue) Type() string { return "x,y,z" }

// radiusValue is a pflag.Value accepting numbers and "inf"
type radiusValue struct {
	r *config.Radius
}

func (r radiusValue) String() string {
	if r.r == nil || !r.r.Set {
		return "inf"
	}
	return analysis.FormatRadius(r.r.Value)
}

func (r radiusValue) Set(text string) error {
	parsed, err := config.ParseRadius(text)
	if err != nil {
		return err
	}
	*r.r = parsed
	return nil
}

func (radiusValue) Type() string { return "radius" }

// stationFlags are the flags describing one station
type stationFlags struct {
	position    geometry.Vector3
	azimuth     float64
	inclination float64
	radius      config.Radius
}

func (s *stationFlags) register(flags *pflag.FlagSet, prefix, what string) {
	flags.Float64Var(&s.position.X, prefix+"-x", 0, what+" east coordinate")
	flags.Float64Var(&s.position.Y, prefix+"-y", 0, what+" north coordinate")
	flags.Float64Var(&s.position.Z, prefix+"-z", 0, what+" vertical coordinate, up is positive")
	flags.Float64Var(&s.azimuth, prefix+"-azimuth", 0, what+" azimuth, clockwise from north")
	flags.Float64Var(&s.inclination, prefix+"-inclination", 0, what+" inclination, 0 is straight down")
	flags.Var(radiusValue{&s.radius}, prefix+"-radius", what+" target radius, inf for no constraint")
}

func (s *stationFlags) station() config.Station {
	return config.Station{
		Position:    []float64{s.position.X, s.position.Y, s.position.Z},
		Azimuth:     s.azimuth,
		Inclination: s.inclination,
		Radius:      s.radius,
	}
}

// solverFlags override the solver section of a case
type solverFlags struct {
	method        string
	backstepping  bool
	maxIterations int
	maxError      float64
	radians       bool
}

func (s *solverFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&s.method, "method", "decoupled", "update method: decoupled or jacobian")
	flags.BoolVar(&s.backstepping, "backstepping", false, "damp steps whose residual changes sign")
	flags.IntVar(&s.maxIterations, "max-iterations", 0, "iteration budget (default 40)")
	flags.Float64Var(&s.maxError, "max-error", 0, "radius tolerance (default 0.01)")
	flags.BoolVar(&s.radians, "radians", false, "angles are given in radians instead of degrees")
}

// apply copies the flags the user set onto the case
func (s *solverFlags) apply(cmd *cobra.Command, c *config.Case) {
	flags := cmd.Flags()
	if flags.Changed("radians") {
		c.Units = config.Degrees
		if s.radians {
			c.Units = config.Radians
		}
	}
	if flags.Changed("method") {
		c.Solver.Method = s.method
	}
	if flags.Changed("backstepping") {
		c.Solver.Backstepping = s.backstepping
	}
	if flags.Changed("max-iterations") {
		c.Solver.MaxIterations = s.maxIterations
	}
	if flags.Changed("max-error") {
		c.Solver.MaxError = s.maxError
	}
}
