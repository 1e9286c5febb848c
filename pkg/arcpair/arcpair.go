// Package arcpair connects two directed survey stations with an S-curve:
// a circular arc leaving the first station, a straight tangent section and
// a second circular arc entering the last station.
//
// The curve is parameterized by two control points. Q1 lies on the tangent
// line leaving P1 and Q2 on the tangent line entering P2. FromControlPoints
// builds the curve for given control points in closed form, and a Solver
// searches for the control point distances that give two requested radii.
package arcpair

import (
	"math"

	"github.com/philipparndt/gowellarc/pkg/geometry"
)

// straightEpsilon is the bisector length below which an arc is treated as
// a straight line
const straightEpsilon = 1e-10

// Result is an S-curve between two points. It is a value: a new
// construction always produces a new Result.
type Result struct {
	Valid bool

	P1 geometry.Vector3 // Start point
	P2 geometry.Vector3 // End point

	FirstArcEnd    geometry.Vector3 // Where the first arc meets the tangent section
	SecondArcStart geometry.Vector3 // Where the tangent section meets the second arc

	FirstCenter  geometry.Vector3 // geometry.Undefined for an infinite radius
	SecondCenter geometry.Vector3 // geometry.Undefined for an infinite radius

	FirstNormal  geometry.Vector3 // Zero when the arc plane is undefined
	SecondNormal geometry.Vector3 // Zero when the arc plane is undefined

	FirstRadius  float64 // May be +Inf
	SecondRadius float64 // May be +Inf

	// Unit directions of the tangent lines and the connecting segment.
	// Zero when the corresponding points coincide.
	StartTangent   geometry.Vector3
	SegmentTangent geometry.Vector3
	EndTangent     geometry.Vector3
}

// FromControlPoints builds the curve that is tangent to p1→q1 at p1,
// tangent to q2→p2 at p2, and whose two arcs are joined by a segment
// tangent to both.
//
// Coinciding points leave a direction undefined and make the result
// invalid. So does a pair of tangent lengths that overlap along the
// chord q1→q2. All fields are still filled in for diagnosis.
func FromControlPoints(p1, q1, p2, q2 geometry.Vector3) Result {
	tQ, okQ := q2.Sub(q1).Normalize()
	t1, ok1 := q1.Sub(p1).Normalize()
	t2, ok2 := p2.Sub(q2).Normalize()

	len1 := q1.Distance(p1)
	len2 := q2.Distance(p2)

	r := Result{
		Valid:          okQ && ok1 && ok2,
		P1:             p1,
		P2:             p2,
		StartTangent:   t1,
		SegmentTangent: tQ,
		EndTangent:     t2,
	}

	// The center lies on the bisector of the corner at the control point,
	// at tangent length / cos(half angle) from it.
	r.FirstCenter, r.FirstRadius = arcCenter(p1, q1, tQ.Sub(t1), t1.Mul(-1), len1, ok1 && okQ)
	r.SecondCenter, r.SecondRadius = arcCenter(p2, q2, t2.Sub(tQ), t2, len2, ok2 && okQ)

	r.FirstArcEnd = q1.Add(tQ.Mul(len1))
	r.SecondArcStart = q2.Sub(tQ.Mul(len2))

	if len1+len2 > q2.Distance(q1) {
		r.Valid = false
	}

	r.FirstNormal, _ = t1.Cross(tQ).Normalize()
	r.SecondNormal, _ = tQ.Cross(t2).Normalize()

	return r
}

// arcCenter places the center on the corner bisector at q. toP is the unit
// direction from q back towards the arc's end point p.
func arcCenter(p, q, bisector, toP geometry.Vector3, tangentLength float64, defined bool) (geometry.Vector3, float64) {
	if !defined || bisector.Length() <= straightEpsilon {
		return geometry.Undefined, math.Inf(1)
	}
	d, _ := bisector.Normalize()
	center := q.Add(d.Mul(tangentLength / d.Dot(toP)))
	return center, center.Distance(p)
}

// IsStraight reports whether neither arc curves
func (r Result) IsStraight() bool {
	return math.IsInf(r.FirstRadius, 1) && math.IsInf(r.SecondRadius, 1)
}
