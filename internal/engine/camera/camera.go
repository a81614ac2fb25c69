// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/VxTi/voxel-game/pkg/math"
)

// FlyCamera is a free-flying first-person camera. Yaw 0 looks down the
// negative Z axis; positive pitch looks up.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32 // Horizontal angle (radians)
	Pitch    float32 // Vertical angle (radians)

	// Projection
	FOV    float32 // Vertical field of view (radians)
	Aspect float32
	Near   float32
	Far    float32

	// Sensitivity
	MoveSpeed   float32 // World units per second
	Sensitivity float32 // Degrees per pixel of mouse motion

	// Constraints
	MinPitch float32
	MaxPitch float32
}

// NewFlyCamera creates a fly camera with default settings.
func NewFlyCamera(fov, aspect, near, far float32) *FlyCamera {
	return &FlyCamera{
		FOV:         fov,
		Aspect:      aspect,
		Near:        near,
		Far:         far,
		MoveSpeed:   40.0,
		Sensitivity: 0.15,
		MinPitch:    -1.55,
		MaxPitch:    1.55,
	}
}

// Forward returns the view direction in world space.
func (c *FlyCamera) Forward() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))) * cosPitch,
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -float32(gomath.Cos(float64(c.Yaw))) * cosPitch,
	}
}

// Right returns the camera's right direction on the XZ plane.
func (c *FlyCamera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Y: 0,
		Z: float32(gomath.Sin(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	target := c.Position.Add(c.Forward())
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, target, up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *FlyCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns the combined projection*view matrix.
func (c *FlyCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Frustum returns the view frustum for visibility culling.
func (c *FlyCamera) Frustum() math.Frustum {
	return math.FrustumFromMatrix(c.ViewProjection())
}

// HandleMouse updates orientation from relative mouse motion in pixels.
func (c *FlyCamera) HandleMouse(deltaX, deltaY float32) {
	radPerPixel := c.Sensitivity * gomath.Pi / 180.0
	c.Yaw += deltaX * radPerPixel
	c.Pitch -= deltaY * radPerPixel

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Move displaces the camera along its local axes. forward follows the
// full view direction, right stays on the XZ plane and up is world up.
func (c *FlyCamera) Move(forward, right, up float32, dt float64) {
	step := c.MoveSpeed * float32(dt)
	c.Position = c.Position.Add(c.Forward().Scale(forward * step))
	c.Position = c.Position.Add(c.Right().Scale(right * step))
	c.Position.Y += up * step
}

// SetAspect updates the projection aspect ratio after a window resize.
func (c *FlyCamera) SetAspect(width, height int) {
	if height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}
