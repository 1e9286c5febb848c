package geometry

import "math"

// Direction is a well bore heading. Azimuth is the clockwise bearing from
// north (+Y) in the horizontal plane, inclination the angle from vertical
// down (-Z). Both are in radians.
type Direction struct {
	Azimuth     float64
	Inclination float64
}

// NewDirection creates a direction from radians
func NewDirection(azimuth, inclination float64) Direction {
	return Direction{Azimuth: azimuth, Inclination: inclination}
}

// Degrees creates a direction from degrees
func Degrees(azimuth, inclination float64) Direction {
	return Direction{
		Azimuth:     azimuth * math.Pi / 180,
		Inclination: inclination * math.Pi / 180,
	}
}

// Tangent returns the unit vector pointing along the direction
func (d Direction) Tangent() Vector3 {
	sinAz, cosAz := math.Sincos(d.Azimuth)
	sinInc, cosInc := math.Sincos(d.Inclination)
	return Vector3{
		X: sinAz * sinInc,
		Y: cosAz * sinInc,
		Z: -cosInc,
	}
}

// AzimuthDegrees returns the azimuth in degrees
func (d Direction) AzimuthDegrees() float64 {
	return d.Azimuth * 180 / math.Pi
}

// InclinationDegrees returns the inclination in degrees
func (d Direction) InclinationDegrees() float64 {
	return d.Inclination * 180 / math.Pi
}

// DirectionOf converts a vector back into azimuth and inclination.
// The azimuth is in [0, 2π). A vertical or zero vector reports azimuth 0.
func DirectionOf(v Vector3) Direction {
	unit, ok := v.Normalize()
	if !ok {
		return Direction{}
	}

	// Clamp against rounding just outside [-1, 1]
	inclination := math.Acos(math.Max(-1, math.Min(1, -unit.Z)))

	azimuth := 0.0
	if math.Hypot(unit.X, unit.Y) > 1e-12 {
		azimuth = math.Atan2(unit.X, unit.Y)
		if azimuth < 0 {
			azimuth += 2 * math.Pi
		}
	}

	return Direction{Azimuth: azimuth, Inclination: inclination}
}
