package arcpair

import (
	"math"
	"testing"

	"github.com/philipparndt/gowellarc/pkg/geometry"
)

func quarterTurns() Result {
	return FromControlPoints(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0),
		geometry.NewVector3(100, 0, 0),
		geometry.NewVector3(100, 10, 0),
	)
}

func TestSections(t *testing.T) {
	sections := quarterTurns().Sections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	kinds := []SectionKind{ArcSection, StraightSection, ArcSection}
	lengths := []float64{5 * math.Pi, 80, 5 * math.Pi}
	for i, s := range sections {
		if s.Kind != kinds[i] {
			t.Errorf("section %d: expected %s, got %s", i, kinds[i], s.Kind)
		}
		if math.Abs(s.Length-lengths[i]) > 1e-9 {
			t.Errorf("section %d: expected length %v, got %v", i, lengths[i], s.Length)
		}
	}

	if got := quarterTurns().Length(); math.Abs(got-(10*math.Pi+80)) > 1e-9 {
		t.Errorf("Length failed: expected %v, got %v", 10*math.Pi+80, got)
	}
}

func TestSectionsStraight(t *testing.T) {
	r := FromControlPoints(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, -1),
		geometry.NewVector3(0, 0, -6),
		geometry.NewVector3(0, 0, -5),
	)

	sections := r.Sections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, s := range sections {
		if s.Kind != StraightSection {
			t.Errorf("section %d: expected straight, got %s", i, s.Kind)
		}
		if math.Abs(s.Length-2) > 1e-12 {
			t.Errorf("section %d: expected length 2, got %v", i, s.Length)
		}
	}

	pos, dir := r.PointAt(3)
	if pos.Distance(geometry.NewVector3(0, 0, -3)) > 1e-12 {
		t.Errorf("PointAt failed: expected (0, 0, -3), got %v", pos)
	}
	if dir.Distance(geometry.NewVector3(0, 0, -1)) > 1e-12 {
		t.Errorf("PointAt direction failed: expected straight down, got %v", dir)
	}
}

func TestPointAt(t *testing.T) {
	r := quarterTurns()

	tests := []struct {
		name     string
		md       float64
		position geometry.Vector3
		tangent  geometry.Vector3
	}{
		{"start", 0, geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 0)},
		{"before start", -5, geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 0)},
		{"first junction", 5 * math.Pi, geometry.NewVector3(10, 10, 0), geometry.NewVector3(1, 0, 0)},
		{"middle", 5*math.Pi + 40, geometry.NewVector3(50, 10, 0), geometry.NewVector3(1, 0, 0)},
		{"end", 10*math.Pi + 80, geometry.NewVector3(100, 0, 0), geometry.NewVector3(0, -1, 0)},
		{"past end", 1000, geometry.NewVector3(100, 0, 0), geometry.NewVector3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, dir := r.PointAt(tt.md)
			if pos.Distance(tt.position) > 1e-9 {
				t.Errorf("expected position %v, got %v", tt.position, pos)
			}
			if dir.Distance(tt.tangent) > 1e-9 {
				t.Errorf("expected direction %v, got %v", tt.tangent, dir)
			}
		})
	}
}

func TestSample(t *testing.T) {
	r := quarterTurns()
	points := r.Sample(10)

	// 0, 10, ..., 110 and the end point at 10π + 80
	if len(points) != 13 {
		t.Fatalf("expected 13 points, got %d", len(points))
	}
	if points[0].MD != 0 || points[0].Position.Distance(r.P1) > 1e-12 {
		t.Errorf("first sample should be P1 at md 0, got %+v", points[0])
	}
	last := points[len(points)-1]
	if math.Abs(last.MD-r.Length()) > 1e-12 || last.Position.Distance(r.P2) > 1e-9 {
		t.Errorf("last sample should be P2 at the full length, got %+v", last)
	}

	north := geometry.Degrees(0, 90)
	if math.Abs(points[0].Direction.Azimuth-north.Azimuth) > 1e-12 || math.Abs(points[0].Direction.Inclination-north.Inclination) > 1e-12 {
		t.Errorf("expected the first sample to head north, got %+v", points[0].Direction)
	}

	for i := 1; i < len(points); i++ {
		if points[i].MD <= points[i-1].MD {
			t.Errorf("measured depth must increase: %v then %v", points[i-1].MD, points[i].MD)
		}
	}
}

func TestSampleWithoutStep(t *testing.T) {
	points := quarterTurns().Sample(0)
	if len(points) != 2 {
		t.Fatalf("expected only the end points, got %d", len(points))
	}
}
