// Package scene renders the procedural terrain world.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/VxTi/voxel-game/internal/engine/lighting"
	"github.com/VxTi/voxel-game/internal/engine/scene/shaders"
	"github.com/VxTi/voxel-game/internal/engine/shader"
	"github.com/VxTi/voxel-game/internal/engine/terrain"
	"github.com/VxTi/voxel-game/internal/game/world"
	"github.com/VxTi/voxel-game/pkg/math"
)

// TerrainRenderer owns the terrain shader and uploads generated chunk
// meshes to the GPU. It implements world.MeshUploader.
type TerrainRenderer struct {
	// Shader
	program uint32

	// Uniform locations
	locViewProj  int32
	locLightDir  int32
	locAmbient   int32
	locDiffuse   int32
	locMaxHeight int32
}

// NewTerrainRenderer creates a new terrain renderer.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	tr := &TerrainRenderer{}

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	tr.program = program

	// Get uniform locations
	tr.locViewProj = shader.GetUniform(program, "uViewProj")
	tr.locLightDir = shader.GetUniform(program, "uLightDir")
	tr.locAmbient = shader.GetUniform(program, "uAmbient")
	tr.locDiffuse = shader.GetUniform(program, "uDiffuse")
	tr.locMaxHeight = shader.GetUniform(program, "uMaxHeight")

	return tr, nil
}

// Begin activates the terrain shader and sets the per-frame uniforms.
// Chunk draws for the rest of the frame reuse this state.
func (tr *TerrainRenderer) Begin(viewProj math.Mat4, sun *lighting.Sun, maxHeight float32) {
	gl.UseProgram(tr.program)

	gl.UniformMatrix4fv(tr.locViewProj, 1, false, viewProj.Ptr())

	dir := sun.Direction()
	gl.Uniform3f(tr.locLightDir, dir[0], dir[1], dir[2])
	gl.Uniform3f(tr.locAmbient, sun.Ambient[0], sun.Ambient[1], sun.Ambient[2])
	gl.Uniform3f(tr.locDiffuse, sun.Diffuse[0], sun.Diffuse[1], sun.Diffuse[2])
	gl.Uniform1f(tr.locMaxHeight, maxHeight)
}

// Upload creates GPU buffers for a generated chunk mesh. Must be called
// on the render thread with the GL context current.
func (tr *TerrainRenderer) Upload(data *terrain.MeshData) (world.GPUMesh, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("empty chunk mesh")
	}

	m := &ChunkMesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// VBO
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*vertexSize, unsafe.Pointer(&data.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// EBO
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return m, nil
}

// Destroy releases the shader program. Chunk meshes are owned by the
// world and released through their Delete method.
func (tr *TerrainRenderer) Destroy() {
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}

// ChunkMesh is one terrain chunk resident on the GPU.
type ChunkMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Draw renders the chunk. The terrain shader must be active.
func (m *ChunkMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *ChunkMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
