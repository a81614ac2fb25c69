// Package world manages procedural terrain chunks and world objects.
package world

import (
	"github.com/VxTi/voxel-game/pkg/math"
)

// Transformation describes position, scale and orientation of an object
// in the world. Rotation components are pitch (X), yaw (Y) and roll (Z)
// in radians.
type Transformation struct {
	Position math.Vec3
	Scale    math.Vec3
	Rotation math.Vec3
}

// NewTransformation returns a transformation with unit scale.
func NewTransformation() Transformation {
	return Transformation{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrix returns the model matrix for this transformation.
func (t *Transformation) Matrix() math.Mat4 {
	m := math.Translate(t.Position.X, t.Position.Y, t.Position.Z)
	m = m.Mul(math.RotateY(t.Rotation.Y))
	m = m.Mul(math.RotateX(t.Rotation.X))
	m = m.Mul(math.RotateZ(t.Rotation.Z))
	return m.Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Drawable is anything the world renders each frame.
type Drawable interface {
	Draw(dt float64)
	Transform() *Transformation
}

// Updatable is anything the world advances each tick.
type Updatable interface {
	Update(dt float64)
}
