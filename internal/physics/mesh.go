package physics

import (
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewMesh wraps CPU-side vertex data (x, y, z triplets) and optional
// triangle indices into an rl.Mesh without uploading it. The slices are
// borrowed and must outlive the mesh.
func NewMesh(vertices []float32, indices []uint16) rl.Mesh {
	m := rl.Mesh{VertexCount: int32(len(vertices) / 3)}
	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
	}
	if len(indices) > 0 {
		m.Indices = &indices[0]
		m.TriangleCount = int32(len(indices) / 3)
	} else {
		m.TriangleCount = m.VertexCount / 3
	}
	return m
}

func meshVertices(m *rl.Mesh) []float32 {
	if m.Vertices == nil || m.VertexCount <= 0 {
		return nil
	}
	return unsafe.Slice(m.Vertices, m.VertexCount*3)
}

func meshIndices(m *rl.Mesh) []uint16 {
	if m.Indices == nil || m.TriangleCount <= 0 {
		return nil
	}
	return unsafe.Slice(m.Indices, m.TriangleCount*3)
}

func vertexAt(vs []float32, i int, offset rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: vs[i*3+0] + offset.X,
		Y: vs[i*3+1] + offset.Y,
		Z: vs[i*3+2] + offset.Z,
	}
}

// forEachTriangle walks every triangle of meshes with vertices shifted by
// offset. Indexed meshes use their index buffer, others take vertices in
// threes. Iteration stops when fn returns false.
func forEachTriangle(meshes []rl.Mesh, offset rl.Vector3, fn func(v1, v2, v3 rl.Vector3) bool) {
	for m := range meshes {
		vs := meshVertices(&meshes[m])
		if vs == nil {
			continue
		}
		count := len(vs) / 3

		if idx := meshIndices(&meshes[m]); idx != nil {
			for i := 0; i+2 < len(idx); i += 3 {
				i0, i1, i2 := int(idx[i]), int(idx[i+1]), int(idx[i+2])
				if i0 >= count || i1 >= count || i2 >= count {
					continue
				}
				if !fn(vertexAt(vs, i0, offset), vertexAt(vs, i1, offset), vertexAt(vs, i2, offset)) {
					return
				}
			}
			continue
		}

		for i := 0; i+2 < count; i += 3 {
			if !fn(vertexAt(vs, i, offset), vertexAt(vs, i+1, offset), vertexAt(vs, i+2, offset)) {
				return
			}
		}
	}
}

// meshBounds scans every vertex for the local extrema. ok is false when the
// meshes hold no vertices at all.
func meshBounds(meshes []rl.Mesh) (min, max rl.Vector3, ok bool) {
	min = rl.Vector3{X: math.MaxFloat32, Y: math.MaxFloat32, Z: math.MaxFloat32}
	max = rl.Vector3{X: -math.MaxFloat32, Y: -math.MaxFloat32, Z: -math.MaxFloat32}

	for m := range meshes {
		vs := meshVertices(&meshes[m])
		for i := 0; i+2 < len(vs); i += 3 {
			v := rl.Vector3{X: vs[i], Y: vs[i+1], Z: vs[i+2]}
			min = vector3Min(min, v)
			max = vector3Max(max, v)
			ok = true
		}
	}
	return min, max, ok
}

func triangleCount(meshes []rl.Mesh) int {
	n := 0
	forEachTriangle(meshes, rl.Vector3{}, func(_, _, _ rl.Vector3) bool {
		n++
		return true
	})
	return n
}

// MeshTriangles returns the triangles of meshes in local space, in the
// order the narrow phase visits them
func MeshTriangles(meshes ...rl.Mesh) [][3]rl.Vector3 {
	var tris [][3]rl.Vector3
	forEachTriangle(meshes, rl.Vector3{}, func(v1, v2, v3 rl.Vector3) bool {
		tris = append(tris, [3]rl.Vector3{v1, v2, v3})
		return true
	})
	return tris
}
