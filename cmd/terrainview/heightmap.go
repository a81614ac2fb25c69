package main

import (
	"image"
	"image/color"
	"image/png"
	gomath "math"
	"os"

	"github.com/AllenDang/cimgui-go/backend"

	"github.com/VxTi/voxel-game/internal/engine/terrain"
)

// biomePalette colors one band per biome factor, low to high.
var biomePalette = []color.RGBA{
	{R: 66, G: 135, B: 245, A: 255},
	{R: 94, G: 182, B: 99, A: 255},
	{R: 181, G: 153, B: 101, A: 255},
	{R: 235, G: 235, B: 235, A: 255},
}

// regenerate rebuilds the height field from the current seed and
// refreshes the preview texture.
func (app *App) regenerate() {
	octaves := make([]terrain.Octave, len(app.cfg.World.Octaves))
	for i, o := range app.cfg.World.Octaves {
		octaves[i] = terrain.Octave{Wavelength: o.Wavelength, Amplitude: o.Amplitude}
	}

	app.hf = terrain.NewHeightField(terrain.NewSimplexSource(app.seed), terrain.Params{
		Octaves:      octaves,
		BiomeFactors: app.cfg.World.BiomeFactors,
		MaxHeight:    app.cfg.World.MaxHeight,
		Scale:        app.cfg.World.TerrainScale,
		NormalDelta:  app.cfg.World.NormalDelta,
	})

	app.rebuildTexture()
}

// rebuildTexture samples the height field over a square area centered
// on the world origin and converts it to a preview texture.
func (app *App) rebuildTexture() {
	size := int(app.size)
	half := float32(size) / 2
	scale := app.cfg.World.TerrainScale
	if scale <= 0 {
		scale = 1
	}

	heights := make([]float32, size*size)
	minH := float32(gomath.MaxFloat32)
	maxH := float32(-gomath.MaxFloat32)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			h := app.hf.HeightAt(float32(x)-half, float32(z)-half)
			heights[z*size+x] = h
			if h < minH {
				minH = h
			}
			if h > maxH {
				maxH = h
			}
		}
	}
	app.minHeight = minH
	app.maxHeight = maxH

	hRange := maxH - minH
	if hRange == 0 {
		hRange = 1 // Avoid division by zero
	}

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			var c color.RGBA
			if app.biomeView {
				// Height evaluation scales coordinates before the biome
				// lookup, so the overlay has to match.
				bn := app.hf.BiomeNoise((float32(x)-half)/scale, (float32(z)-half)/scale)
				c = biomePalette[app.hf.BiomeIndex(bn)%len(biomePalette)]
			} else {
				c = heightColor((heights[z*size+x] - minH) / hRange)
			}
			rgba.SetRGBA(x, z, c)
		}
	}

	app.img = rgba

	// Release previous texture before replacing it
	if app.tex != nil {
		app.tex.Release()
	}
	app.tex = backend.NewTextureFromRgba(rgba)
}

// heightColor maps a normalized height to the preview gradient:
// blue (low) through green and brown to white (high).
func heightColor(normalized float32) color.RGBA {
	var r, g, b uint8
	if normalized < 0.25 {
		t := normalized * 4
		r = uint8(20 * t)
		g = uint8(50 + 50*t)
		b = uint8(100 + 100*t)
	} else if normalized < 0.5 {
		t := (normalized - 0.25) * 4
		r = uint8(20 + 80*t)
		g = uint8(100 + 100*t)
		b = uint8(200 - 100*t)
	} else if normalized < 0.75 {
		t := (normalized - 0.5) * 4
		r = uint8(100 + 155*t)
		g = uint8(200 + 55*t)
		b = uint8(100 - 50*t)
	} else {
		t := (normalized - 0.75) * 4
		r = 255
		g = 255
		b = uint8(50 + 205*t)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
