// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// Sun is the single directional light of the scene.
type Sun struct {
	// Azimuth is the rotation around the Y axis (degrees), Elevation
	// the angle above the horizon (degrees).
	Azimuth   float32
	Elevation float32

	Ambient [3]float32
	Diffuse [3]float32
}

// NewSun returns a late-morning sun with slightly warm light.
func NewSun() *Sun {
	return &Sun{
		Azimuth:   35,
		Elevation: 55,
		Ambient:   [3]float32{0.45, 0.45, 0.48},
		Diffuse:   [3]float32{1.0, 0.98, 0.92},
	}
}

// Direction returns the normalized direction pointing towards the sun.
func (s *Sun) Direction() [3]float32 {
	return Direction(s.Azimuth, s.Elevation)
}

// Direction converts azimuth/elevation angles in degrees to a light
// direction vector. Azimuth is rotation around the Y axis, elevation
// the angle above the horizon. Returns a normalized vector pointing
// towards the light.
func Direction(azimuth, elevation float32) [3]float32 {
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	// Spherical to Cartesian conversion
	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return [3]float32{x, y, z}
}
