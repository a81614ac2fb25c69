package terrain

import (
	"github.com/ojrac/opensimplex-go"
)

// NoiseSource produces 2D gradient noise in [-1, 1].
// Implementations must be deterministic for a given seed and safe for
// concurrent use.
type NoiseSource interface {
	Sample(x, y float32) float32
}

// SimplexSource is an OpenSimplex-backed noise source.
type SimplexSource struct {
	noise opensimplex.Noise32
}

// NewSimplexSource creates a noise source seeded with the given value.
func NewSimplexSource(seed int64) *SimplexSource {
	return &SimplexSource{noise: opensimplex.New32(seed)}
}

// Sample returns the noise value at (x, y).
func (s *SimplexSource) Sample(x, y float32) float32 {
	return s.noise.Eval2(x, y)
}
