package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastBox(t *testing.T) {
	w := newTestWorld(t, nil)
	target := mustBox(t, w, RigidFixed, vec(0, 0, 5), vec(1, 1, 1))

	hit, ok := w.Raycast(vec(0, 0, 0), vec(0, 0, 1), 100)
	require.True(t, ok)
	assert.Equal(t, target, hit.Body)
	assert.InDelta(t, 4.5, hit.Distance, 1e-5)
	assert.Equal(t, vec(0, 0, -1), hit.Normal)
	assert.InDelta(t, 4.5, hit.Point.Z, 1e-5)
}

func TestRaycastClosestWins(t *testing.T) {
	w := newTestWorld(t, nil)
	mustBox(t, w, RigidFixed, vec(10, 0, 0), vec(1, 1, 1))
	near := mustBox(t, w, RigidFixed, vec(4, 0, 0), vec(1, 1, 1))

	hit, ok := w.Raycast(vec(0, 0, 0), vec(2, 0, 0), 100)
	require.True(t, ok)
	assert.Equal(t, near, hit.Body)
	assert.InDelta(t, 3.5, hit.Distance, 1e-5)
	assert.Equal(t, vec(-1, 0, 0), hit.Normal)
}

func TestRaycastMesh(t *testing.T) {
	w := newTestWorld(t, nil)
	floor := mustMesh(t, w, RigidFixed, vec(0, 1, 0), floorMesh(5))

	hit, ok := w.Raycast(vec(1, 10, 2), vec(0, -1, 0), 100)
	require.True(t, ok)
	assert.Equal(t, floor, hit.Body)
	assert.InDelta(t, 9, hit.Distance, 1e-5)
	assert.InDelta(t, 1, hit.Normal.Y, 1e-5)

	// past the mesh edge
	_, ok = w.Raycast(vec(6, 10, 0), vec(0, -1, 0), 100)
	assert.False(t, ok)
}

func TestRaycastSkipsPhantomAndRange(t *testing.T) {
	w := newTestWorld(t, nil)
	mustBox(t, w, Phantom, vec(0, 0, 3), vec(1, 1, 1))
	mustBox(t, w, RigidFixed, vec(0, 0, 20), vec(1, 1, 1))

	_, ok := w.Raycast(vec(0, 0, 0), vec(0, 0, 1), 10)
	assert.False(t, ok)

	_, ok = w.Raycast(vec(0, 0, 0), vec(0, 0, 0), 10)
	assert.False(t, ok)
}

func TestRaycastFromInsideHitsExitFace(t *testing.T) {
	w := newTestWorld(t, nil)
	mustBox(t, w, RigidFixed, vec(0, 0, 0), vec(2, 2, 2))

	hit, ok := w.Raycast(vec(0, 0, 0), vec(0, 1, 0), 10)
	require.True(t, ok)
	assert.InDelta(t, 1, hit.Distance, 1e-6)
	assert.Equal(t, vec(0, 1, 0), hit.Normal)
}
