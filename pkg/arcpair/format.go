package arcpair

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gowellarc/pkg/geometry"
)

// String dumps the solved geometry in a human readable form
func (r Result) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Valid: %t\n", r.Valid)
	fmt.Fprintf(&b, "P1:               %s\n", formatPoint(r.P1))
	fmt.Fprintf(&b, "First arc end:    %s\n", formatPoint(r.FirstArcEnd))
	fmt.Fprintf(&b, "First center:     %s\n", formatPoint(r.FirstCenter))
	fmt.Fprintf(&b, "First normal:     %s\n", formatPoint(r.FirstNormal))
	fmt.Fprintf(&b, "First radius:     %s\n", formatLength(r.FirstRadius))
	fmt.Fprintf(&b, "Second arc start: %s\n", formatPoint(r.SecondArcStart))
	fmt.Fprintf(&b, "Second center:    %s\n", formatPoint(r.SecondCenter))
	fmt.Fprintf(&b, "Second normal:    %s\n", formatPoint(r.SecondNormal))
	fmt.Fprintf(&b, "Second radius:    %s\n", formatLength(r.SecondRadius))
	fmt.Fprintf(&b, "P2:               %s\n", formatPoint(r.P2))

	return b.String()
}

// String summarizes how the solver ended, followed by the geometry
func (s Solution) String() string {
	return fmt.Sprintf("Status: %s after %d iterations (q1=%.6f, q2=%.6f, error1=%.6g, error2=%.6g)\n%s",
		s.Status, s.Iterations, s.Q1, s.Q2, s.Error1, s.Error2, s.Result)
}

func formatPoint(v geometry.Vector3) string {
	if v.IsUndefined() {
		return "undefined"
	}
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func formatLength(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.6f", f)
}
