package arcpair

import (
	"context"
	"fmt"
	"math"

	"github.com/philipparndt/gowellarc/internal/logging"
	"github.com/philipparndt/gowellarc/pkg/geometry"
)

// minStationDistance is the separation below which two stations cannot be
// connected
const minStationDistance = 1e-9

// Station is a directed survey point together with the radius the arc
// touching it should have.
type Station struct {
	Position  geometry.Vector3
	Direction geometry.Direction
	Radius    float64 // Target radius, +Inf for no curvature constraint
}

// Status tells why the solver stopped
type Status int

const (
	Converged    Status = iota // Both radii are within tolerance
	Exhausted                  // MaxIterations reached
	Diverged                   // A control distance grew beyond MaxLengthToQ
	StepTooLarge               // A step grew beyond MaxStepSize
	NonFinite                  // A step or residual became NaN or infinite
	Degenerate                 // The stations cannot be connected at all
	Canceled                   // The context was done
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Diverged:
		return "diverged"
	case StepTooLarge:
		return "step too large"
	case NonFinite:
		return "non-finite"
	case Degenerate:
		return "degenerate"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution is the outcome of a radius matching solve. When the solver did
// not converge, Result holds the closest iterate and Result.Valid is false.
type Solution struct {
	Result     Result
	Status     Status
	Iterations int

	Q1, Q2         float64 // Control point distances along the tangents
	Error1, Error2 float64 // Radius minus target, 0 for an unconstrained side
}

// Valid reports whether the solver converged to a realizable curve
func (s Solution) Valid() bool {
	return s.Result.Valid
}

// Solver finds the control point distances for which FromControlPoints
// yields two requested radii. A Solver holds no state between calls and
// may be shared between goroutines.
type Solver struct {
	opts   Options
	logger logging.Logger
}

// NewSolver creates a solver. Zero numeric options take their defaults and
// a nil logger discards all output.
func NewSolver(opts Options, logger logging.Logger) *Solver {
	if logger == nil {
		logger = logging.Noop()
	}
	return &Solver{opts: opts.withDefaults(), logger: logger}
}

// Options returns the effective options
func (s *Solver) Options() Options {
	return s.opts
}

// Solve connects two stations using the default options
func Solve(from, to Station) Solution {
	return NewSolver(DefaultOptions(), nil).Solve(from, to)
}

// Solve connects two stations
func (s *Solver) Solve(from, to Station) Solution {
	return s.SolveContext(context.Background(), from, to)
}

// SolveContext connects two stations. A logger stored in ctx takes
// precedence over the solver's own, and the iteration stops early with
// Canceled once ctx is done.
func (s *Solver) SolveContext(ctx context.Context, from, to Station) Solution {
	logger := s.logger
	if l := logging.LoggerFromContext(ctx); l != nil {
		logger = l
	}

	pr := newProblem(from, to)
	dist := from.Position.Distance(to.Position)
	delta := s.opts.Perturbation * dist
	q0 := s.opts.InitialGuess * dist

	if dist < minStationDistance || !isFinite(dist) || !validTarget(from.Radius) || !validTarget(to.Radius) {
		logger.Warn(ctx, "cannot connect stations",
			logging.Float("distance", dist),
			logging.Float("target_radius1", from.Radius),
			logging.Float("target_radius2", to.Radius))
		return s.finish(ctx, logger, pr.at(q0, q0), Degenerate, 0)
	}

	cur := pr.at(q0, q0)
	if s.converged(cur) {
		return s.finish(ctx, logger, cur, Converged, 0)
	}
	best := cur

	jac := pr.jacobianAt(cur, delta)
	step1, step2, ok := s.step(pr, jac, cur)

	status := Exhausted
	iterations := 0
	for iterations < s.opts.MaxIterations {
		if ctx.Err() != nil {
			status = Canceled
			break
		}
		if !ok {
			status = NonFinite
			break
		}
		if math.Abs(step1) > s.opts.MaxStepSize || math.Abs(step2) > s.opts.MaxStepSize {
			status = StepTooLarge
			break
		}

		iterations++
		q1 := cur.q1 + step1
		q2 := cur.q2 + step2
		if math.Abs(q1) > s.opts.MaxLengthToQ || math.Abs(q2) > s.opts.MaxLengthToQ {
			status = Diverged
			break
		}

		next := pr.at(q1, q2)
		logger.Debug(ctx, "arc pair iteration",
			logging.Int("iteration", iterations),
			logging.Float("q1", q1),
			logging.Float("q2", q2),
			logging.Float("error1", next.e1),
			logging.Float("error2", next.e2))

		if !next.finite() {
			if s.opts.Backstepping {
				step1 *= 0.5
				step2 *= 0.5
				continue
			}
			status = NonFinite
			break
		}
		if next.maxError() < best.maxError() {
			best = next
		}

		if s.opts.Backstepping {
			cross1 := isZeroCrossing(next.e1, cur.e1, s.opts.MaxError)
			cross2 := isZeroCrossing(next.e2, cur.e2, s.opts.MaxError)
			if cross1 || cross2 {
				if cross1 {
					step1 *= dampingFactor(next.e1, cur.e1)
				}
				if cross2 {
					step2 *= dampingFactor(next.e2, cur.e2)
				}
				logger.Debug(ctx, "arc pair backstep", logging.Int("iteration", iterations))
				continue
			}
		}

		if s.converged(next) {
			cur = next
			status = Converged
			break
		}

		if s.opts.Method == FullJacobian {
			jac = pr.jacobianAt(next, delta)
		} else {
			// Secant update over the step just taken
			if step1 != 0 {
				jac.d11 = (next.e1 - cur.e1) / step1
			}
			if step2 != 0 {
				jac.d22 = (next.e2 - cur.e2) / step2
			}
		}

		cur = next
		step1, step2, ok = s.step(pr, jac, cur)
	}

	if status == Converged {
		return s.finish(ctx, logger, cur, status, iterations)
	}
	return s.finish(ctx, logger, best, status, iterations)
}

func (s *Solver) finish(ctx context.Context, logger logging.Logger, it iterate, status Status, iterations int) Solution {
	result := it.result
	result.Valid = result.Valid && status == Converged

	logger.Debug(ctx, "arc pair solved",
		logging.String("status", status.String()),
		logging.Bool("valid", result.Valid),
		logging.Int("iterations", iterations),
		logging.Float("radius1", result.FirstRadius),
		logging.Float("radius2", result.SecondRadius))

	return Solution{
		Result:     result,
		Status:     status,
		Iterations: iterations,
		Q1:         it.q1,
		Q2:         it.q2,
		Error1:     it.e1,
		Error2:     it.e2,
	}
}

func (s *Solver) converged(it iterate) bool {
	return math.Abs(it.e1) < s.opts.MaxError && math.Abs(it.e2) < s.opts.MaxError
}

// step computes the next Newton step. The result is false when the step is
// not a finite number, e.g. for a vanishing derivative.
func (s *Solver) step(pr problem, jac jacobian, cur iterate) (float64, float64, bool) {
	var step1, step2 float64
	if pr.constrained1 && pr.constrained2 && s.opts.Method == FullJacobian {
		det := jac.d11*jac.d22 - jac.d12*jac.d21
		step1 = -(jac.d22*cur.e1 - jac.d12*cur.e2) / det
		step2 = -(jac.d11*cur.e2 - jac.d21*cur.e1) / det
	} else {
		if pr.constrained1 {
			step1 = newtonStep(cur.e1, jac.d11)
		}
		if pr.constrained2 {
			step2 = newtonStep(cur.e2, jac.d22)
		}
	}

	if !isFinite(step1) || !isFinite(step2) {
		return step1, step2, false
	}
	return clampStep(cur.q1, step1), clampStep(cur.q2, step2), true
}

func newtonStep(residual, derivative float64) float64 {
	if residual == 0 {
		return 0
	}
	return -residual / derivative
}

// clampStep keeps a control distance strictly positive
func clampStep(q, step float64) float64 {
	if q+step <= 0 {
		return -0.9 * q
	}
	return step
}

// isZeroCrossing reports whether the residual jumped from one side of the
// tolerance band to the other
func isZeroCrossing(newError, oldError, maxError float64) bool {
	return (newError > maxError && oldError < -maxError) ||
		(newError < -maxError && oldError > maxError)
}

// dampingFactor is the fraction of the last step at which a linear
// interpolation of the residual crosses zero
func dampingFactor(newError, oldError float64) float64 {
	return math.Abs(oldError) / (math.Abs(oldError) + math.Abs(newError))
}

func validTarget(radius float64) bool {
	return radius > 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// problem is one solve request reduced to its tangents
type problem struct {
	p1, p2 geometry.Vector3
	t1, t2 geometry.Vector3

	target1, target2 float64

	// An infinite target radius leaves that side unconstrained
	constrained1, constrained2 bool
}

func newProblem(from, to Station) problem {
	return problem{
		p1:           from.Position,
		p2:           to.Position,
		t1:           from.Direction.Tangent(),
		t2:           to.Direction.Tangent(),
		target1:      from.Radius,
		target2:      to.Radius,
		constrained1: !math.IsInf(from.Radius, 1),
		constrained2: !math.IsInf(to.Radius, 1),
	}
}

type iterate struct {
	q1, q2 float64
	result Result
	e1, e2 float64
}

func (pr problem) at(q1, q2 float64) iterate {
	r := FromControlPoints(pr.p1, pr.p1.Add(pr.t1.Mul(q1)), pr.p2, pr.p2.Sub(pr.t2.Mul(q2)))
	it := iterate{q1: q1, q2: q2, result: r}
	if pr.constrained1 {
		it.e1 = r.FirstRadius - pr.target1
	}
	if pr.constrained2 {
		it.e2 = r.SecondRadius - pr.target2
	}
	return it
}

func (it iterate) finite() bool {
	return isFinite(it.e1) && isFinite(it.e2)
}

func (it iterate) maxError() float64 {
	return math.Max(math.Abs(it.e1), math.Abs(it.e2))
}

// jacobian holds dRi/dqj as dij
type jacobian struct {
	d11, d12 float64
	d21, d22 float64
}

// jacobianAt estimates all four partial derivatives by forward differences
func (pr problem) jacobianAt(cur iterate, delta float64) jacobian {
	a := pr.at(cur.q1+delta, cur.q2)
	b := pr.at(cur.q1, cur.q2+delta)
	return jacobian{
		d11: (a.e1 - cur.e1) / delta,
		d21: (a.e2 - cur.e2) / delta,
		d12: (b.e1 - cur.e1) / delta,
		d22: (b.e2 - cur.e2) / delta,
	}
}
