// Package terrain generates procedural height-field terrain and chunk meshes.
package terrain

// Vertex represents a terrain mesh vertex with all attributes.
// TexCoord is part of the GPU layout but currently unused by the shader.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// MeshData holds CPU-side mesh data for one chunk, ready for GPU upload.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32

	// HeightMap stores the vertex heights of the chunk interior,
	// row-major [i*size+j], one entry per cell.
	HeightMap []float32

	Bounds Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns the radius of the bounding sphere around Center.
func (b Bounds) Radius() float32 {
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	dz := b.Max[2] - b.Min[2]
	return sqrtf(dx*dx+dy*dy+dz*dz) / 2
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func newBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}
