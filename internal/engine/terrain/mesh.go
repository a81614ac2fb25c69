package terrain

import "math"

// BuildChunkMesh builds the mesh data for a square chunk of the height
// field. originX and originZ are the chunk's world origin, size is the
// number of cells per side. The mesh has (size+1)^2 vertices and
// size^2*6 indices; two counter-clockwise triangles per cell.
//
// The result only depends on the height field and the arguments, so the
// same inputs always produce the same mesh.
func BuildChunkMesh(hf *HeightField, originX, originZ, size int) *MeshData {
	meshWidth := size + 1

	vertices := make([]Vertex, 0, meshWidth*meshWidth)
	indices := make([]uint32, 0, size*size*6)
	heightMap := make([]float32, size*size)
	bounds := newBounds()

	for i := 0; i < meshWidth; i++ {
		for j := 0; j < meshWidth; j++ {
			// Sample between grid points, half a unit off the lattice.
			cx := float32(originX+i) - 0.5
			cz := float32(originZ+j) - 0.5
			cy := hf.HeightAt(cx, cz)

			pos := [3]float32{cx, cy, cz}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   hf.NormalAt(cx, cz),
				TexCoord: [2]float32{
					float32(i) / float32(size),
					float32(j) / float32(size),
				},
			})

			// The last row and column close quads but start none.
			if i < size && j < size {
				heightMap[i*size+j] = cy

				topLeft := uint32(i*meshWidth + j)
				topRight := uint32(i*meshWidth + j + 1)
				bottomLeft := uint32((i+1)*meshWidth + j)
				bottomRight := uint32((i+1)*meshWidth + j + 1)

				indices = append(indices,
					topLeft, topRight, bottomLeft,
					topRight, bottomRight, bottomLeft,
				)
			}
		}
	}

	return &MeshData{
		Vertices:  vertices,
		Indices:   indices,
		HeightMap: heightMap,
		Bounds:    bounds,
	}
}

func normalize(v [3]float32) [3]float32 {
	l := sqrtf(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
