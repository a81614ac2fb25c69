package camera

import (
	gomath "math"
	"testing"

	"github.com/VxTi/voxel-game/pkg/math"
)

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func vecNear(a, b math.Vec3, eps float32) bool {
	return absf(a.X-b.X) < eps && absf(a.Y-b.Y) < eps && absf(a.Z-b.Z) < eps
}

func TestFlyCameraForward(t *testing.T) {
	c := NewFlyCamera(gomath.Pi/2, 1, 0.1, 100)

	if got := c.Forward(); !vecNear(got, math.Vec3{Z: -1}, 1e-5) {
		t.Errorf("Forward() at rest = %v, want (0, 0, -1)", got)
	}

	c.Yaw = gomath.Pi / 2
	if got := c.Forward(); !vecNear(got, math.Vec3{X: 1}, 1e-5) {
		t.Errorf("Forward() after quarter turn = %v, want (1, 0, 0)", got)
	}

	c.Yaw = 0
	c.Pitch = gomath.Pi / 2
	if got := c.Forward(); !vecNear(got, math.Vec3{Y: 1}, 1e-5) {
		t.Errorf("Forward() looking up = %v, want (0, 1, 0)", got)
	}
}

func TestFlyCameraRightStaysLevel(t *testing.T) {
	c := NewFlyCamera(gomath.Pi/2, 1, 0.1, 100)
	c.Pitch = 0.8

	if got := c.Right(); !vecNear(got, math.Vec3{X: 1}, 1e-5) {
		t.Errorf("Right() = %v, want (1, 0, 0)", got)
	}
}

func TestFlyCameraHandleMouseClampsPitch(t *testing.T) {
	c := NewFlyCamera(gomath.Pi/2, 1, 0.1, 100)

	c.HandleMouse(0, -1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v after looking far up, want %v", c.Pitch, c.MaxPitch)
	}

	c.HandleMouse(0, 1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v after looking far down, want %v", c.Pitch, c.MinPitch)
	}
}

func TestFlyCameraMove(t *testing.T) {
	c := NewFlyCamera(gomath.Pi/2, 1, 0.1, 100)
	c.MoveSpeed = 10

	c.Move(1, 0, 0, 0.5)
	if !vecNear(c.Position, math.Vec3{Z: -5}, 1e-5) {
		t.Errorf("Position after forward move = %v, want (0, 0, -5)", c.Position)
	}

	c.Move(0, 0, 1, 0.5)
	if !vecNear(c.Position, math.Vec3{Y: 5, Z: -5}, 1e-5) {
		t.Errorf("Position after up move = %v, want (0, 5, -5)", c.Position)
	}
}

func TestFlyCameraFrustumContainsViewTarget(t *testing.T) {
	c := NewFlyCamera(gomath.Pi/2, 1, 0.1, 100)
	c.Position = math.Vec3{Y: 20, Z: 10}

	f := c.Frustum()

	ahead := c.Position.Add(c.Forward().Scale(50))
	if !f.ContainsPoint(ahead) {
		t.Errorf("point %v ahead of the camera is not in the frustum", ahead)
	}

	behind := c.Position.Add(c.Forward().Scale(-50))
	if f.ContainsPoint(behind) {
		t.Errorf("point %v behind the camera is in the frustum", behind)
	}
}

func TestFlyCameraSetAspect(t *testing.T) {
	c := NewFlyCamera(gomath.Pi/2, 1, 0.1, 100)

	c.SetAspect(1920, 1080)
	want := float32(1920) / float32(1080)
	if absf(c.Aspect-want) > 1e-6 {
		t.Errorf("Aspect = %v, want %v", c.Aspect, want)
	}

	c.SetAspect(100, 0)
	if absf(c.Aspect-want) > 1e-6 {
		t.Error("Aspect changed on zero height")
	}
}
