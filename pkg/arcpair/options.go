package arcpair

import (
	"fmt"
	"strings"
)

// Method selects how the solver estimates the radius derivatives
type Method int

const (
	// DecoupledSecant treats each radius as depending on its own control
	// distance only and refines the two derivatives by secant updates.
	DecoupledSecant Method = iota
	// FullJacobian recomputes the full 2x2 Jacobian by forward differences
	// at every iterate and takes a Newton step through its inverse.
	FullJacobian
)

func (m Method) String() string {
	switch m {
	case DecoupledSecant:
		return "decoupled"
	case FullJacobian:
		return "jacobian"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses the names printed by Method.String
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "decoupled", "secant", "decoupled-secant":
		return DecoupledSecant, nil
	case "jacobian", "full-jacobian", "full":
		return FullJacobian, nil
	default:
		return 0, fmt.Errorf("unknown solver method %q (expected decoupled or jacobian)", name)
	}
}

// Options controls the radius matching iteration
type Options struct {
	Method Method

	// Backstepping undoes a step whose residual jumps across the tolerance
	// band and retries with a step shortened towards the estimated root.
	Backstepping bool

	MaxIterations int     // Upper bound on solver iterations
	MaxError      float64 // Radius tolerance, in length units
	MaxStepSize   float64 // Steps longer than this stop the solver
	MaxLengthToQ  float64 // Control distances beyond this count as divergence

	// InitialGuess and Perturbation are fractions of the distance between
	// the two stations.
	InitialGuess float64
	Perturbation float64
}

// DefaultOptions returns the options used by Solve
func DefaultOptions() Options {
	return Options{
		Method:        DecoupledSecant,
		MaxIterations: 40,
		MaxError:      0.01,
		MaxStepSize:   1e9,
		MaxLengthToQ:  1e10,
		InitialGuess:  0.2,
		Perturbation:  0.01,
	}
}

// withDefaults replaces unset numeric fields by their defaults
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxIterations <= 0 {
		o.MaxIterations = def.MaxIterations
	}
	if o.MaxError <= 0 {
		o.MaxError = def.MaxError
	}
	if o.MaxStepSize <= 0 {
		o.MaxStepSize = def.MaxStepSize
	}
	if o.MaxLengthToQ <= 0 {
		o.MaxLengthToQ = def.MaxLengthToQ
	}
	if o.InitialGuess <= 0 {
		o.InitialGuess = def.InitialGuess
	}
	if o.Perturbation <= 0 {
		o.Perturbation = def.Perturbation
	}
	return o
}
