package geometry

import (
	"math"
	"testing"
)

func TestDirectionTangent(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		expected Vector3
	}{
		{"vertical down", Degrees(0, 0), NewVector3(0, 0, -1)},
		{"north", Degrees(0, 90), NewVector3(0, 1, 0)},
		{"east", Degrees(90, 90), NewVector3(1, 0, 0)},
		{"south", Degrees(180, 90), NewVector3(0, -1, 0)},
		{"west", Degrees(270, 90), NewVector3(-1, 0, 0)},
		{"vertical up", Degrees(0, 180), NewVector3(0, 0, 1)},
		{"north east 45", Degrees(45, 45), NewVector3(0.5, 0.5, -math.Sqrt2/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dir.Tangent()
			if result.Distance(tt.expected) > 1e-12 {
				t.Errorf("Tangent failed: expected %v, got %v", tt.expected, result)
			}
			if math.Abs(result.Length()-1) > 1e-12 {
				t.Errorf("Tangent should be a unit vector, got length %v", result.Length())
			}
		})
	}
}

func TestDirectionOfRoundTrip(t *testing.T) {
	for _, az := range []float64{0, 30, 135, 200, 359} {
		for _, inc := range []float64{10, 45, 90, 170} {
			dir := Degrees(az, inc)
			back := DirectionOf(dir.Tangent().Mul(7))

			if math.Abs(back.AzimuthDegrees()-az) > 1e-9 {
				t.Errorf("azimuth round trip failed for (%v, %v): got %v", az, inc, back.AzimuthDegrees())
			}
			if math.Abs(back.InclinationDegrees()-inc) > 1e-9 {
				t.Errorf("inclination round trip failed for (%v, %v): got %v", az, inc, back.InclinationDegrees())
			}
		}
	}
}

func TestDirectionOfVertical(t *testing.T) {
	down := DirectionOf(NewVector3(0, 0, -3))
	if down.Azimuth != 0 || down.Inclination != 0 {
		t.Errorf("expected straight down to be (0, 0), got %+v", down)
	}

	zero := DirectionOf(Vector3{})
	if zero != (Direction{}) {
		t.Errorf("expected zero direction for zero vector, got %+v", zero)
	}
}
