package analysis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/philipparndt/gowellarc/pkg/arcpair"
	"github.com/philipparndt/gowellarc/pkg/geometry"
)

func TestSummarizeQuarterTurns(t *testing.T) {
	r := arcpair.FromControlPoints(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0),
		geometry.NewVector3(100, 0, -20),
		geometry.NewVector3(100, 10, -20),
	)
	s := Summarize(r)

	if !s.Valid {
		t.Fatal("expected a valid summary")
	}
	if math.Abs(s.VerticalDepth-20) > 1e-12 {
		t.Errorf("VerticalDepth failed: expected 20, got %v", s.VerticalDepth)
	}
	if math.Abs(s.HorizontalDrift-100) > 1e-12 {
		t.Errorf("HorizontalDrift failed: expected 100, got %v", s.HorizontalDrift)
	}
	if math.Abs(s.TotalLength-(s.FirstArc.Length+s.TangentLength+s.SecondArc.Length)) > 1e-9 {
		t.Errorf("section lengths %v + %v + %v do not add up to %v",
			s.FirstArc.Length, s.TangentLength, s.SecondArc.Length, s.TotalLength)
	}
	if math.Abs(s.FirstArc.Dogleg-90) > 1e-9 {
		t.Errorf("first dogleg failed: expected 90, got %v", s.FirstArc.Dogleg)
	}
}

func TestSummarizeStraight(t *testing.T) {
	r := arcpair.FromControlPoints(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, -1),
		geometry.NewVector3(0, 0, -6),
		geometry.NewVector3(0, 0, -5),
	)

	want := &Summary{
		Valid:         true,
		TotalLength:   6,
		TangentLength: 2,
		FirstArc:      ArcInfo{Radius: math.Inf(1), Length: 2},
		SecondArc:     ArcInfo{Radius: math.Inf(1), Length: 2},
		VerticalDepth: 6,
	}
	got := Summarize(r)
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestDoglegSeverity(t *testing.T) {
	tests := []struct {
		radius   float64
		expected float64
	}{
		{30 * 180 / math.Pi, 1},
		{1718.873385, 1},
		{math.Inf(1), 0},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := DoglegSeverity(tt.radius); math.Abs(got-tt.expected) > 1e-6 {
			t.Errorf("DoglegSeverity(%v) failed: expected %v, got %v", tt.radius, tt.expected, got)
		}
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatRadius(math.Inf(1)); got != "inf" {
		t.Errorf("FormatRadius failed: expected inf, got %s", got)
	}
	if got := FormatVector(geometry.Undefined); got != "undefined" {
		t.Errorf("FormatVector failed: expected undefined, got %s", got)
	}
	if got := FormatVector(geometry.NewVector3(1, 2.5, -3)); got != "(1.000000, 2.500000, -3.000000)" {
		t.Errorf("FormatVector failed: got %s", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("FormatMeasurement failed: got %s", got)
	}
	if got := FormatDirection(geometry.Degrees(90, 45)); got != "az 90.000°, inc 45.000°" {
		t.Errorf("FormatDirection failed: got %s", got)
	}
}
