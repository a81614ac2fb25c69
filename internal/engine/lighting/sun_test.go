package lighting

import (
	"math"
	"testing"
)

func TestDirectionStraightUp(t *testing.T) {
	dir := Direction(0, 90)

	if math.Abs(float64(dir[1]-1)) > 1e-6 {
		t.Errorf("Direction(0, 90) = %v, want (0, 1, 0)", dir)
	}
}

func TestDirectionOnHorizon(t *testing.T) {
	dir := Direction(0, 0)

	want := [3]float32{0, 0, 1}
	for i := range want {
		if math.Abs(float64(dir[i]-want[i])) > 1e-6 {
			t.Errorf("Direction(0, 0) = %v, want %v", dir, want)
			break
		}
	}
}

func TestDirectionNormalized(t *testing.T) {
	angles := [][2]float32{{35, 55}, {120, 10}, {280, 75}}
	for _, a := range angles {
		dir := Direction(a[0], a[1])
		l := math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]))
		if math.Abs(l-1) > 1e-6 {
			t.Errorf("Direction(%v, %v) has length %v, want 1", a[0], a[1], l)
		}
	}
}

func TestSunDirectionMatchesAngles(t *testing.T) {
	s := NewSun()
	if got, want := s.Direction(), Direction(s.Azimuth, s.Elevation); got != want {
		t.Errorf("Sun.Direction() = %v, want %v", got, want)
	}
}
