package arcpair

import (
	"math"

	"github.com/philipparndt/gowellarc/pkg/geometry"
)

// SectionKind distinguishes curved and straight parts of the path
type SectionKind int

const (
	ArcSection SectionKind = iota
	StraightSection
)

func (k SectionKind) String() string {
	if k == ArcSection {
		return "arc"
	}
	return "straight"
}

// Section is one piece of the path. Arc is only set for ArcSection.
type Section struct {
	Kind      SectionKind
	Start     geometry.Vector3
	End       geometry.Vector3
	Direction geometry.Vector3 // Unit direction at Start
	Length    float64
	Arc       geometry.Arc
}

// PathPoint is a sampled position along the path
type PathPoint struct {
	MD        float64 // Measured depth from P1
	Position  geometry.Vector3
	Direction geometry.Direction
}

// Sections splits the curve into first arc, tangent section and second arc.
// An arc with infinite radius becomes a straight section. Sections of zero
// length are left out.
func (r Result) Sections() []Section {
	var sections []Section
	add := func(s Section) {
		if s.Length > 0 {
			sections = append(sections, s)
		}
	}

	add(curveSection(r.P1, r.FirstArcEnd, r.StartTangent, r.SegmentTangent, r.FirstCenter, r.FirstRadius))
	add(straightSection(r.FirstArcEnd, r.SecondArcStart, r.SegmentTangent))
	add(curveSection(r.SecondArcStart, r.P2, r.SegmentTangent, r.EndTangent, r.SecondCenter, r.SecondRadius))

	return sections
}

func curveSection(start, end, startTangent, endTangent, center geometry.Vector3, radius float64) Section {
	if math.IsInf(radius, 1) || center.IsUndefined() {
		return straightSection(start, end, startTangent)
	}
	arc := geometry.NewArc(start, startTangent, endTangent, center)
	return Section{
		Kind:      ArcSection,
		Start:     start,
		End:       end,
		Direction: startTangent,
		Length:    arc.Length(),
		Arc:       arc,
	}
}

func straightSection(start, end, direction geometry.Vector3) Section {
	return Section{
		Kind:      StraightSection,
		Start:     start,
		End:       end,
		Direction: direction,
		Length:    start.Distance(end),
	}
}

// Length returns the measured length of the whole path
func (r Result) Length() float64 {
	total := 0.0
	for _, s := range r.Sections() {
		total += s.Length
	}
	return total
}

// PointAt returns the position and travel direction at measured depth md.
// Depths outside the path are clamped to its ends.
func (r Result) PointAt(md float64) (geometry.Vector3, geometry.Vector3) {
	sections := r.Sections()
	if len(sections) == 0 {
		return r.P1, r.StartTangent
	}
	if md < 0 {
		md = 0
	}

	for i, s := range sections {
		if md <= s.Length || i == len(sections)-1 {
			md = math.Min(md, s.Length)
			return s.pointAt(md)
		}
		md -= s.Length
	}
	return r.P2, r.EndTangent
}

func (s Section) pointAt(offset float64) (geometry.Vector3, geometry.Vector3) {
	if s.Kind == ArcSection {
		return s.Arc.PointAt(offset), s.Arc.TangentAt(offset)
	}
	return s.Start.Add(s.Direction.Mul(offset)), s.Direction
}

// Sample returns points every step along the path, always including both
// end points. A non-positive step yields just the end points.
func (r Result) Sample(step float64) []PathPoint {
	length := r.Length()

	var mds []float64
	if step > 0 && isFinite(length) {
		for md := 0.0; md < length; md += step {
			mds = append(mds, md)
			if md+step == md {
				break
			}
		}
	} else {
		mds = append(mds, 0)
	}
	if length > 0 {
		mds = append(mds, length)
	}

	points := make([]PathPoint, 0, len(mds))
	for _, md := range mds {
		pos, dir := r.PointAt(md)
		points = append(points, PathPoint{
			MD:        md,
			Position:  pos,
			Direction: geometry.DirectionOf(dir),
		})
	}
	return points
}
