package components

import (
	"testing"

	"alpha3d/internal/engine"
	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T) *physics.World {
	t.Helper()
	w, err := physics.NewWorld(physics.DefaultConfig())
	require.NoError(t, err)
	return w
}

func spawn(t *testing.T, w *physics.World, scene *engine.Scene, name string, bt physics.BodyType, pos, size rl.Vector3) (*engine.GameObject, *RigidBody) {
	t.Helper()
	h, err := w.CreateRigidBody(bt, pos, size)
	require.NoError(t, err)

	g := engine.NewGameObject(name)
	g.Transform.Scale = size
	rb := NewRigidBody(w, h)
	g.AddComponent(rb)
	scene.AddGameObject(g)
	return g, rb
}

func TestRigidBodySyncsTransform(t *testing.T) {
	w := newWorld(t)
	scene := engine.NewScene("test")
	g, rb := spawn(t, w, scene, "crate", physics.Rigid, rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})

	scene.Start()
	assert.Equal(t, float32(3), g.Transform.Position.Y)

	w.Step(0.1)
	scene.Update(0.1)

	assert.Less(t, g.Transform.Position.Y, float32(3))
	assert.Less(t, rb.Velocity().Y, float32(0))
	assert.False(t, rb.Grounded())
}

func TestRigidBodyMoveAndTeleport(t *testing.T) {
	w := newWorld(t)
	scene := engine.NewScene("test")
	spawn(t, w, scene, "wall", physics.RigidFixed, rl.Vector3{X: 2}, rl.Vector3{X: 1, Y: 3, Z: 3})
	g, rb := spawn(t, w, scene, "player", physics.Rigid, rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	scene.Start()

	moved, err := rb.Move(rl.Vector3{X: 1.5})
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, float32(0), g.Transform.Position.X)

	require.NoError(t, rb.Teleport(rl.Vector3{Z: 4}))
	assert.Equal(t, float32(4), g.Transform.Position.Z)

	require.NoError(t, w.Free(rb.Handle))
	assert.Nil(t, rb.Body())
	_, err = rb.Move(rl.Vector3{X: 1})
	assert.ErrorIs(t, err, physics.ErrInvalidHandle)
}

func TestContactRouterDeliversToTrigger(t *testing.T) {
	w := newWorld(t)
	router := NewContactRouter(w)
	scene := engine.NewScene("test")

	zone, zoneBody := spawn(t, w, scene, "zone", physics.Phantom, rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	trigger := &Trigger{}
	var seen []string
	trigger.OnEnter = func(other *engine.GameObject) { seen = append(seen, other.Name) }
	zone.AddComponent(trigger)

	player, playerBody := spawn(t, w, scene, "player", physics.Rigid, rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})

	router.Bind(zoneBody.Handle, zone)
	router.Bind(playerBody.Handle, player)
	assert.Same(t, zone, router.Object(zoneBody.Handle))
	scene.Start()

	w.Step(0.1)
	assert.Equal(t, 0, trigger.Inside)

	require.NoError(t, playerBody.Teleport(rl.Vector3{X: 0.5}))
	w.Step(0.1)
	assert.Equal(t, 1, trigger.Inside)
	assert.Equal(t, []string{"player"}, seen)

	require.NoError(t, playerBody.Teleport(rl.Vector3{X: 5}))
	w.Step(0.1)
	assert.Equal(t, 0, trigger.Inside)
}

func TestContactRouterIgnoresUnbound(t *testing.T) {
	w := newWorld(t)
	router := NewContactRouter(w)
	scene := engine.NewScene("test")

	zone, zoneBody := spawn(t, w, scene, "zone", physics.Phantom, rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	trigger := &Trigger{}
	zone.AddComponent(trigger)
	spawn(t, w, scene, "stranger", physics.Rigid, rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	router.Bind(zoneBody.Handle, zone)
	w.Step(0.1)
	assert.Equal(t, 0, trigger.Inside)

	router.Unbind(zoneBody.Handle)
	assert.Nil(t, router.Object(zoneBody.Handle))
}

func TestMeshRendererCachesTriangles(t *testing.T) {
	mesh := physics.NewMesh([]float32{0, 0, 0, 0, 0, 1, 1, 0, 0}, nil)
	r := NewMeshRenderer(rl.Green, mesh)
	assert.Equal(t, 1, r.TriangleCount())
	assert.Equal(t, ShapeMesh, r.Shape)
}
