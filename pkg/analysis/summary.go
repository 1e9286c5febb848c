package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gowellarc/pkg/arcpair"
	"github.com/philipparndt/gowellarc/pkg/geometry"
)

// doglegLength is the course length dogleg severity is quoted over
const doglegLength = 30.0

// ArcInfo describes one of the two arcs of an S-curve
type ArcInfo struct {
	Radius         float64 // +Inf for a straight section
	Length         float64
	Dogleg         float64 // Turning angle in degrees
	DoglegSeverity float64 // Degrees per 30 length units
}

// Summary contains well-planning measurements of an S-curve
type Summary struct {
	Valid           bool
	TotalLength     float64
	TangentLength   float64 // Straight section between the arcs
	FirstArc        ArcInfo
	SecondArc       ArcInfo
	MaxSeverity     float64
	VerticalDepth   float64 // Drop in Z from P1 to P2
	HorizontalDrift float64
	StartDirection  geometry.Direction
	EndDirection    geometry.Direction
}

// Summarize measures a solved curve
func Summarize(r arcpair.Result) *Summary {
	first := arcInfo(r.FirstRadius, r.StartTangent, r.SegmentTangent, r.P1.Distance(r.FirstArcEnd))
	second := arcInfo(r.SecondRadius, r.SegmentTangent, r.EndTangent, r.SecondArcStart.Distance(r.P2))

	offset := r.P2.Sub(r.P1)
	return &Summary{
		Valid:           r.Valid,
		TotalLength:     r.Length(),
		TangentLength:   r.FirstArcEnd.Distance(r.SecondArcStart),
		FirstArc:        first,
		SecondArc:       second,
		MaxSeverity:     math.Max(first.DoglegSeverity, second.DoglegSeverity),
		VerticalDepth:   -offset.Z,
		HorizontalDrift: math.Hypot(offset.X, offset.Y),
		StartDirection:  geometry.DirectionOf(r.StartTangent),
		EndDirection:    geometry.DirectionOf(r.EndTangent),
	}
}

// arcInfo measures one arc. An arc with infinite radius is a straight line
// spanning the chord from station to junction.
func arcInfo(radius float64, from, to geometry.Vector3, chord float64) ArcInfo {
	angle := geometry.AngleBetween(from, to)
	info := ArcInfo{
		Radius: radius,
		Dogleg: angle * 180 / math.Pi,
		Length: chord,
	}
	if !math.IsInf(radius, 1) {
		info.Length = radius * angle
		info.DoglegSeverity = DoglegSeverity(radius)
	}
	return info
}

// DoglegSeverity converts a radius of curvature into degrees per 30 length
// units. A straight section has severity 0.
func DoglegSeverity(radius float64) float64 {
	if radius <= 0 || math.IsInf(radius, 1) || math.IsNaN(radius) {
		return 0
	}
	return doglegLength * 180 / (math.Pi * radius)
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatRadius formats a radius, printing inf for a straight section
func FormatRadius(radius float64) string {
	if math.IsInf(radius, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.6f", radius)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	if v.IsUndefined() {
		return "undefined"
	}
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatDirection formats azimuth and inclination in degrees
func FormatDirection(d geometry.Direction) string {
	return fmt.Sprintf("az %.3f°, inc %.3f°", d.AzimuthDegrees(), d.InclinationDegrees())
}
