package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

// floorMesh is a 2*half square at y=0 facing up, as two indexed triangles
func floorMesh(half float32) rl.Mesh {
	vertices := []float32{
		-half, 0, -half,
		-half, 0, half,
		half, 0, half,
		half, 0, -half,
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}
	return NewMesh(vertices, indices)
}

func vec(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func newTestWorld(t *testing.T, mutate func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)
	return w
}

func mustBox(t *testing.T, w *World, bt BodyType, pos, size rl.Vector3) Handle {
	t.Helper()
	h, err := w.CreateRigidBody(bt, pos, size)
	require.NoError(t, err)
	return h
}

func mustMesh(t *testing.T, w *World, bt BodyType, pos rl.Vector3, meshes ...rl.Mesh) Handle {
	t.Helper()
	h, err := w.CreateRigidBodyFromMesh(bt, meshes, pos)
	require.NoError(t, err)
	return h
}

func mustBody(t *testing.T, w *World, h Handle) *RigidBody {
	t.Helper()
	b, ok := w.Body(h)
	require.True(t, ok, "body %s not found", h)
	return b
}
