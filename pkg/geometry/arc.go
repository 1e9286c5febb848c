package geometry

import "math"

// Arc is a circular arc in 3D. It leaves Start along the unit vector
// Tangent and bends towards Center, sweeping Sweep radians.
type Arc struct {
	Center  Vector3 // Arc center
	Start   Vector3 // First point of the arc
	Tangent Vector3 // Unit tangent at Start
	Radius  float64 // Distance from Center to every point of the arc
	Sweep   float64 // Turning angle in radians, in [0, π]
}

// NewArc creates the arc that starts at start with direction startTangent,
// turns around center and ends heading along endTangent.
// Both tangents must be unit vectors.
func NewArc(start, startTangent, endTangent, center Vector3) Arc {
	return Arc{
		Center:  center,
		Start:   start,
		Tangent: startTangent,
		Radius:  start.Distance(center),
		Sweep:   AngleBetween(startTangent, endTangent),
	}
}

// Length returns the arc length
func (a Arc) Length() float64 {
	return a.Radius * a.Sweep
}

// PointAt returns the point at arc length s from Start
func (a Arc) PointAt(s float64) Vector3 {
	if a.Radius == 0 {
		return a.Start
	}
	phi := s / a.Radius
	sin, cos := math.Sincos(phi)
	radial := a.Start.Sub(a.Center)
	return a.Center.Add(radial.Mul(cos)).Add(a.Tangent.Mul(a.Radius * sin))
}

// TangentAt returns the unit direction of travel at arc length s from Start
func (a Arc) TangentAt(s float64) Vector3 {
	if a.Radius == 0 {
		return a.Tangent
	}
	phi := s / a.Radius
	sin, cos := math.Sincos(phi)
	outward := a.Start.Sub(a.Center).Mul(1 / a.Radius)
	return a.Tangent.Mul(cos).Sub(outward.Mul(sin))
}

// End returns the last point of the arc
func (a Arc) End() Vector3 {
	return a.PointAt(a.Length())
}

// AngleBetween returns the angle between two vectors in [0, π]
func AngleBetween(a, b Vector3) float64 {
	return math.Atan2(a.Cross(b).Length(), a.Dot(b))
}
