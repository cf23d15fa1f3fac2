package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestNewMeshCounts(t *testing.T) {
	m := NewMesh([]float32{0, 0, 0, 1, 0, 0, 0, 0, 1}, nil)
	assert.Equal(t, int32(3), m.VertexCount)
	assert.Equal(t, int32(1), m.TriangleCount)
	assert.Nil(t, m.Indices)

	indexed := floorMesh(1)
	assert.Equal(t, int32(4), indexed.VertexCount)
	assert.Equal(t, int32(2), indexed.TriangleCount)
	assert.Equal(t, 2, triangleCount([]rl.Mesh{indexed}))
}

func TestForEachTriangleOffsetAndStop(t *testing.T) {
	var seen [][3]rl.Vector3
	meshes := []rl.Mesh{floorMesh(1), floorMesh(2)}

	forEachTriangle(meshes, vec(0, 3, 0), func(v1, v2, v3 rl.Vector3) bool {
		seen = append(seen, [3]rl.Vector3{v1, v2, v3})
		return len(seen) < 3
	})

	assert.Len(t, seen, 3)
	assert.Equal(t, vec(-1, 3, -1), seen[0][0])
	assert.Equal(t, vec(-2, 3, -2), seen[2][0])
}

func TestForEachTriangleSkipsBadIndices(t *testing.T) {
	vertices := []float32{0, 0, 0, 1, 0, 0, 0, 0, 1}
	m := NewMesh(vertices, []uint16{0, 1, 2, 0, 1, 9})

	assert.Equal(t, 1, triangleCount([]rl.Mesh{m}))
}

func TestMeshBounds(t *testing.T) {
	meshes := []rl.Mesh{
		NewMesh([]float32{-1, 0, 2, 3, 4, -5, 0, 1, 0}, nil),
		NewMesh([]float32{0, -2, 0}, nil),
	}

	min, max, ok := meshBounds(meshes)
	assert.True(t, ok)
	assert.Equal(t, vec(-1, -2, -5), min)
	assert.Equal(t, vec(3, 4, 2), max)

	_, _, ok = meshBounds([]rl.Mesh{{}})
	assert.False(t, ok)
}

func TestMeshTriangles(t *testing.T) {
	tris := MeshTriangles(floorMesh(1))
	assert.Len(t, tris, 2)
	assert.Equal(t, vec(1, 0, 1), tris[0][2])
	assert.Equal(t, vec(1, 0, -1), tris[1][2])
}
