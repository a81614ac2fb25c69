package world

import (
	"testing"

	"github.com/VxTi/voxel-game/pkg/math"
)

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestTransformationMatrixTranslates(t *testing.T) {
	tf := NewTransformation()
	tf.Position = math.Vec3{X: 2, Y: 3, Z: 4}

	p := tf.Matrix().MulVec4(math.Vec4{1, 0, 0, 1})

	want := math.Vec4{3, 3, 4, 1}
	for i := range want {
		if absf(p[i]-want[i]) > 1e-5 {
			t.Fatalf("transformed point = %v, want %v", p, want)
		}
	}
}

func TestTransformationMatrixScales(t *testing.T) {
	tf := NewTransformation()
	tf.Scale = math.Vec3{X: 2, Y: 2, Z: 2}

	p := tf.Matrix().MulVec4(math.Vec4{1, 1, 1, 1})

	want := math.Vec4{2, 2, 2, 1}
	for i := range want {
		if absf(p[i]-want[i]) > 1e-5 {
			t.Fatalf("scaled point = %v, want %v", p, want)
		}
	}
}
