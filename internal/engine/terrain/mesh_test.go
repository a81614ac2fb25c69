package terrain

import (
	"reflect"
	"testing"
)

func testHeightField() *HeightField {
	return NewHeightField(NewSimplexSource(42), testParams())
}

func TestBuildChunkMeshCounts(t *testing.T) {
	const size = 16
	md := BuildChunkMesh(testHeightField(), 0, 0, size)

	wantVertices := (size + 1) * (size + 1)
	if len(md.Vertices) != wantVertices {
		t.Errorf("vertex count = %d, want %d", len(md.Vertices), wantVertices)
	}

	wantIndices := size * size * 6
	if len(md.Indices) != wantIndices {
		t.Errorf("index count = %d, want %d", len(md.Indices), wantIndices)
	}

	if len(md.HeightMap) != size*size {
		t.Errorf("height map length = %d, want %d", len(md.HeightMap), size*size)
	}
}

func TestBuildChunkMeshDeterministic(t *testing.T) {
	a := BuildChunkMesh(testHeightField(), 32, -16, 16)
	b := BuildChunkMesh(testHeightField(), 32, -16, 16)

	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different meshes")
	}
}

func TestBuildChunkMeshFirstQuadWinding(t *testing.T) {
	const size = 16
	md := BuildChunkMesh(testHeightField(), 0, 0, size)

	// First cell: top-left, top-right, bottom-left / top-right, bottom-right, bottom-left
	w := uint32(size + 1)
	want := []uint32{0, 1, w, 1, w + 1, w}
	got := md.Indices[:6]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("first quad indices = %v, want %v", got, want)
		}
	}
}

func TestBuildChunkMeshIndicesInRange(t *testing.T) {
	md := BuildChunkMesh(testHeightField(), -64, 128, 8)

	limit := uint32(len(md.Vertices))
	for i, idx := range md.Indices {
		if idx >= limit {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, limit)
		}
	}
}

func TestBuildChunkMeshHeightMapMatchesVertices(t *testing.T) {
	const size = 8
	md := BuildChunkMesh(testHeightField(), 16, 16, size)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			vertexY := md.Vertices[i*(size+1)+j].Position[1]
			mapY := md.HeightMap[i*size+j]
			if vertexY != mapY {
				t.Fatalf("height map (%d, %d) = %v, want vertex height %v", i, j, mapY, vertexY)
			}
		}
	}
}

func TestBuildChunkMeshVertexPositions(t *testing.T) {
	const size = 4
	md := BuildChunkMesh(testHeightField(), 16, -16, size)

	// Vertex (i, j) sits at origin + (i, j) shifted half a unit.
	first := md.Vertices[0].Position
	if first[0] != 15.5 || first[2] != -16.5 {
		t.Errorf("first vertex at (%v, %v), want (15.5, -16.5)", first[0], first[2])
	}

	last := md.Vertices[len(md.Vertices)-1].Position
	if last[0] != 19.5 || last[2] != -12.5 {
		t.Errorf("last vertex at (%v, %v), want (19.5, -12.5)", last[0], last[2])
	}
}

func TestBuildChunkMeshUVCorners(t *testing.T) {
	const size = 8
	md := BuildChunkMesh(testHeightField(), 0, 0, size)

	first := md.Vertices[0].TexCoord
	if first != ([2]float32{0, 0}) {
		t.Errorf("first UV = %v, want (0, 0)", first)
	}

	last := md.Vertices[len(md.Vertices)-1].TexCoord
	if last != ([2]float32{1, 1}) {
		t.Errorf("last UV = %v, want (1, 1)", last)
	}
}

func TestBuildChunkMeshBoundsContainVertices(t *testing.T) {
	md := BuildChunkMesh(testHeightField(), -32, -32, 16)

	for _, v := range md.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < md.Bounds.Min[axis] || v.Position[axis] > md.Bounds.Max[axis] {
				t.Fatalf("vertex %v outside bounds %+v", v.Position, md.Bounds)
			}
		}
	}
}
