package world

import (
	"fmt"

	"github.com/VxTi/voxel-game/internal/engine/terrain"
	"github.com/VxTi/voxel-game/pkg/math"
)

// ChunkCoord identifies a chunk by the world coordinates of its origin.
// Both components are multiples of the chunk size.
type ChunkCoord struct {
	X, Z int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// GPUMesh is a mesh that has been uploaded to the GPU.
type GPUMesh interface {
	Draw()
	Delete()
}

// MeshUploader turns CPU mesh data into a drawable GPU mesh. The real
// implementation lives in the scene package; tests substitute their own.
type MeshUploader interface {
	Upload(data *terrain.MeshData) (GPUMesh, error)
}

// Chunk is a finalized terrain chunk: its height map snapshot plus the
// uploaded mesh.
type Chunk struct {
	Coord  ChunkCoord
	Size   int
	Bounds terrain.Bounds

	// HeightMap stores vertex heights row-major, [i*Size+j].
	HeightMap []float32

	mesh GPUMesh
}

// Draw renders the chunk mesh.
func (c *Chunk) Draw(dt float64) {
	if c.mesh != nil {
		c.mesh.Draw()
	}
}

// HeightAtCell returns the stored height of cell (i, j).
func (c *Chunk) HeightAtCell(i, j int) float32 {
	return c.HeightMap[i*c.Size+j]
}

// BoundsCenter returns the center of the chunk bounding sphere.
func (c *Chunk) BoundsCenter() math.Vec3 {
	ctr := c.Bounds.Center()
	return math.Vec3{X: ctr[0], Y: ctr[1], Z: ctr[2]}
}

// BoundsRadius returns the radius of the chunk bounding sphere.
func (c *Chunk) BoundsRadius() float32 {
	return c.Bounds.Radius()
}

// destroy releases the GPU mesh.
func (c *Chunk) destroy() {
	if c.mesh != nil {
		c.mesh.Delete()
		c.mesh = nil
	}
}

// PendingChunkMesh is a chunk whose mesh data has been generated but not
// yet uploaded. Ownership moves with the value: after a successful queue
// push the producer must not touch it again.
type PendingChunkMesh struct {
	Coord ChunkCoord
	Data  *terrain.MeshData
}
