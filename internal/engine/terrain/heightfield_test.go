package terrain

import (
	"testing"
)

// constNoise returns the same value everywhere.
type constNoise float32

func (c constNoise) Sample(x, y float32) float32 { return float32(c) }

func testParams() Params {
	return Params{
		Octaves:      []Octave{{Wavelength: 2, Amplitude: 1}, {Wavelength: 4, Amplitude: 0.5}},
		BiomeFactors: []float32{0.25, 0.5, 0.75, 1.0},
		MaxHeight:    10,
		Scale:        10,
		NormalDelta:  0.25,
	}
}

func TestBiomeNoiseRange(t *testing.T) {
	hf := NewHeightField(NewSimplexSource(3), testParams())

	for x := -50; x <= 50; x += 7 {
		for z := -50; z <= 50; z += 7 {
			v := hf.BiomeNoise(float32(x), float32(z))
			if v < 0 || v > 1 {
				t.Fatalf("BiomeNoise(%d, %d) = %v, want within [0, 1]", x, z, v)
			}
		}
	}
}

func TestBiomeIndexClamp(t *testing.T) {
	hf := NewHeightField(constNoise(0), testParams())

	tests := []struct {
		noise float32
		want  int
	}{
		{0, 0},
		{0.1, 0},
		{0.26, 1},
		{0.99, 3},
		{1.0, 3},  // exactly 1.0 must select the last band
		{-0.1, 0}, // defensive lower clamp
	}
	for _, tt := range tests {
		if got := hf.BiomeIndex(tt.noise); got != tt.want {
			t.Errorf("BiomeIndex(%v) = %d, want %d", tt.noise, got, tt.want)
		}
	}
}

func TestHeightAtConstantNoise(t *testing.T) {
	// With noise pinned to 1.0 the biome noise is exactly 1.0, the last
	// factor applies, and every octave contributes its full amplitude.
	p := testParams()
	hf := NewHeightField(constNoise(1), p)

	var amplitudeSum float32
	for _, o := range p.Octaves {
		amplitudeSum += o.Amplitude
	}
	want := p.BiomeFactors[len(p.BiomeFactors)-1] * 1.0 * amplitudeSum * p.MaxHeight

	got := hf.HeightAt(123, -456)
	if got != want {
		t.Errorf("HeightAt = %v, want %v", got, want)
	}
}

func TestHeightAtDeterministic(t *testing.T) {
	a := NewHeightField(NewSimplexSource(99), testParams())
	b := NewHeightField(NewSimplexSource(99), testParams())

	for x := -40; x <= 40; x += 5 {
		for z := -40; z <= 40; z += 5 {
			ha := a.HeightAt(float32(x), float32(z))
			hb := b.HeightAt(float32(x), float32(z))
			if ha != hb {
				t.Fatalf("HeightAt(%d, %d) diverged: %v != %v", x, z, ha, hb)
			}
		}
	}
}

func TestNormalAtFlatField(t *testing.T) {
	hf := NewHeightField(constNoise(0), testParams())

	got := hf.NormalAt(10, 20)
	want := [3]float32{0, 1, 0}
	if got != want {
		t.Errorf("NormalAt on flat terrain = %v, want %v", got, want)
	}
}

func TestNormalAtUnitLength(t *testing.T) {
	hf := NewHeightField(NewSimplexSource(5), testParams())

	for x := -20; x <= 20; x += 4 {
		for z := -20; z <= 20; z += 4 {
			n := hf.NormalAt(float32(x), float32(z))
			l := sqrtf(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
			if l < 0.999 || l > 1.001 {
				t.Fatalf("NormalAt(%d, %d) length = %v, want ~1", x, z, l)
			}
		}
	}
}

func TestNormalAtPointsUp(t *testing.T) {
	hf := NewHeightField(NewSimplexSource(5), testParams())

	for x := -20; x <= 20; x += 4 {
		for z := -20; z <= 20; z += 4 {
			n := hf.NormalAt(float32(x), float32(z))
			if n[1] <= 0 {
				t.Fatalf("NormalAt(%d, %d) = %v, want positive Y", x, z, n)
			}
		}
	}
}

func TestBiomeCount(t *testing.T) {
	hf := NewHeightField(constNoise(0), testParams())
	if got := hf.BiomeCount(); got != 4 {
		t.Errorf("BiomeCount() = %d, want 4", got)
	}
}
