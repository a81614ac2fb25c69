package terrain

// Octave is one noise layer of the height function.
type Octave struct {
	Wavelength float32
	Amplitude  float32
}

// Params configures a HeightField.
type Params struct {
	// Octaves are summed as noise(x/wavelength, z/wavelength) * amplitude.
	Octaves []Octave

	// BiomeFactors scales the summed height per biome band. The band is
	// picked by the biome noise value; the table length is the biome count.
	BiomeFactors []float32

	// MaxHeight scales the summed octave noise into world units.
	MaxHeight float32

	// Scale divides world coordinates before any noise lookup.
	Scale float32

	// NormalDelta is the sampling distance for normal estimation.
	NormalDelta float32
}

// HeightField computes terrain heights, biome noise and surface normals
// from a noise source. All methods are pure and safe for concurrent use.
type HeightField struct {
	noise  NoiseSource
	params Params
}

// NewHeightField creates a height field over the given noise source.
func NewHeightField(noise NoiseSource, params Params) *HeightField {
	if params.Scale <= 0 {
		params.Scale = 1
	}
	if params.NormalDelta <= 0 {
		params.NormalDelta = 0.1
	}
	return &HeightField{noise: noise, params: params}
}

// BiomeNoise returns the low-frequency biome noise at (x, z), in [0, 1].
func (h *HeightField) BiomeNoise(x, z float32) float32 {
	return (h.noise.Sample(x/100, z/100) + 1) / 2
}

// BiomeIndex returns the biome band for a biome noise value.
// The index clamps into the factor table, so a value of exactly 1.0
// selects the last band.
func (h *HeightField) BiomeIndex(biomeNoise float32) int {
	idx := int(biomeNoise * float32(len(h.params.BiomeFactors)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(h.params.BiomeFactors) {
		idx = len(h.params.BiomeFactors) - 1
	}
	return idx
}

// HeightAt returns the terrain height at world coordinates (x, z).
func (h *HeightField) HeightAt(x, z float32) float32 {
	x /= h.params.Scale
	z /= h.params.Scale

	biomeNoise := h.BiomeNoise(x, z)
	factor := h.params.BiomeFactors[h.BiomeIndex(biomeNoise)] * biomeNoise

	var height float32
	for _, o := range h.params.Octaves {
		height += h.noise.Sample(x/o.Wavelength, z/o.Wavelength) * o.Amplitude
	}
	height *= h.params.MaxHeight

	return factor * height
}

// NormalAt estimates the surface normal at world coordinates (x, z)
// by central difference of the surrounding heights.
func (h *HeightField) NormalAt(x, z float32) [3]float32 {
	d := h.params.NormalDelta

	left := h.HeightAt(x-d, z)
	right := h.HeightAt(x+d, z)
	back := h.HeightAt(x, z-d)
	front := h.HeightAt(x, z+d)

	return normalize([3]float32{left - right, 2 * d, back - front})
}

// BiomeCount returns the number of biome bands.
func (h *HeightField) BiomeCount() int {
	return len(h.params.BiomeFactors)
}
