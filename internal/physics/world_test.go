package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 0
	_, err := NewWorld(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.BroadPhase = "octree"
	_, err = NewWorld(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCapacityBoundary(t *testing.T) {
	w := newTestWorld(t, func(c *Config) { c.Capacity = 2 })

	mustBox(t, w, Rigid, vec(0, 0, 0), vec(1, 1, 1))
	mustBox(t, w, Rigid, vec(5, 0, 0), vec(1, 1, 1))

	h, err := w.CreateRigidBody(Rigid, vec(10, 0, 0), vec(1, 1, 1))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.True(t, h.IsZero())
	assert.Equal(t, 2, w.Len())

	_, err = w.CreateRigidBodyFromMesh(RigidFixed, []rl.Mesh{floorMesh(5)}, vec(0, 0, 0))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestCreateFromEmptyMesh(t *testing.T) {
	w := newTestWorld(t, nil)

	_, err := w.CreateRigidBodyFromMesh(RigidFixed, []rl.Mesh{{}}, vec(0, 0, 0))
	assert.ErrorIs(t, err, ErrEmptyMesh)
	assert.Equal(t, 0, w.Len())
}

func TestFreeInvalidatesHandle(t *testing.T) {
	w := newTestWorld(t, nil)

	first := mustBox(t, w, Rigid, vec(0, 0, 0), vec(1, 1, 1))
	second := mustBox(t, w, Rigid, vec(5, 0, 0), vec(1, 1, 1))
	third := mustBox(t, w, Rigid, vec(9, 0, 0), vec(1, 1, 1))

	require.NoError(t, w.Free(first))
	assert.Equal(t, 2, w.Len())

	_, ok := w.Body(first)
	assert.False(t, ok)
	_, err := w.Position(first)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.ErrorIs(t, w.Free(first), ErrInvalidHandle)

	// the swapped-in body keeps answering through its own handle
	pos, err := w.Position(third)
	require.NoError(t, err)
	assert.Equal(t, vec(9, 0, 0), pos)
	pos, err = w.Position(second)
	require.NoError(t, err)
	assert.Equal(t, vec(5, 0, 0), pos)

	// a reused slot issues a new generation
	reused := mustBox(t, w, Rigid, vec(-5, 0, 0), vec(1, 1, 1))
	assert.NotEqual(t, first, reused)
	_, ok = w.Body(first)
	assert.False(t, ok)
	assert.Equal(t, 3, w.Len())

	for _, b := range w.Bodies() {
		got, ok := w.Body(b.Handle())
		require.True(t, ok)
		assert.Same(t, b, got)
	}
}

func TestZeroHandleIsInvalid(t *testing.T) {
	w := newTestWorld(t, nil)
	mustBox(t, w, Rigid, vec(0, 0, 0), vec(1, 1, 1))

	_, err := w.Velocity(Handle{})
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.ErrorIs(t, w.SetVelocity(Handle{}, vec(1, 0, 0)), ErrInvalidHandle)
}

func TestStepBoxOnDownwardFloorStaysPut(t *testing.T) {
	w := newTestWorld(t, func(c *Config) { c.Gravity = 2 })

	// floor covering x, z in [-5, 5] with both triangles facing down
	floor := NewMesh([]float32{
		-5, 0, -5,
		5, 0, 5,
		-5, 0, 5,
		5, 0, -5,
	}, []uint16{0, 1, 2, 0, 3, 1})
	mustMesh(t, w, RigidFixed, vec(0, 0, 0), floor)
	box := mustBox(t, w, Rigid, vec(0, 0, 0), vec(1, 1, 1))

	w.Step(0.1)

	pos, err := w.Position(box)
	require.NoError(t, err)
	assert.Equal(t, float32(0), pos.Y)
	vel, err := w.Velocity(box)
	require.NoError(t, err)
	assert.Equal(t, vec(0, 0, 0), vel)

	// the box sits at the ground-level threshold, so gravity never starts.
	// Both triangles face away from it and fail the centroid test, so there
	// is no contact to ground it either.
	grounded, err := w.Grounded(box)
	require.NoError(t, err)
	assert.False(t, grounded)
	assert.Empty(t, w.Contacts())
}

func TestStepSplitsRigidPenetration(t *testing.T) {
	w := newTestWorld(t, nil)

	a := mustBox(t, w, Rigid, vec(-0.3, 0, 0), vec(1, 1, 1))
	b := mustBox(t, w, Rigid, vec(0.3, 0, 0), vec(1, 1, 1))

	w.Step(0.1)

	posA, _ := w.Position(a)
	posB, _ := w.Position(b)
	assert.InDelta(t, -0.5, posA.X, 1e-5)
	assert.InDelta(t, 0.5, posB.X, 1e-5)
	assert.Len(t, w.Contacts(), 1)
}

func TestStepRestingBodyIsGrounded(t *testing.T) {
	w := newTestWorld(t, nil)

	mustMesh(t, w, RigidFixed, vec(0, 0, 0), floorMesh(5))
	box := mustBox(t, w, Rigid, vec(0, 0.5, 0), vec(1, 1, 1))

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}

	grounded, err := w.Grounded(box)
	require.NoError(t, err)
	assert.True(t, grounded)

	pos, _ := w.Position(box)
	vel, _ := w.Velocity(box)
	assert.InDelta(t, 0.5, pos.Y, 1e-4)
	assert.InDelta(t, 0, vel.Y, 1e-6)

	// once grounded, further steps do not drift
	w.Step(1.0 / 60)
	after, _ := w.Position(box)
	assert.InDelta(t, pos.Y, after.Y, 1e-6)
}

func TestStepFallingBodyLands(t *testing.T) {
	w := newTestWorld(t, nil)

	mustMesh(t, w, RigidFixed, vec(0, 0, 0), floorMesh(5))
	box := mustBox(t, w, Rigid, vec(0, 2, 0), vec(1, 1, 1))

	w.Step(1.0 / 60)
	grounded, _ := w.Grounded(box)
	assert.False(t, grounded)

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60)
	}

	pos, _ := w.Position(box)
	grounded, _ = w.Grounded(box)
	assert.True(t, grounded)
	assert.InDelta(t, 0.5, pos.Y, 1e-3)
}

func TestStepFixedAndPhantomDoNotMove(t *testing.T) {
	w := newTestWorld(t, nil)

	fixed := mustBox(t, w, RigidFixed, vec(0, 3, 0), vec(1, 1, 1))
	trigger := mustBox(t, w, Phantom, vec(5, 3, 0), vec(1, 1, 1))
	require.NoError(t, w.SetVelocity(fixed, vec(1, 0, 0)))

	w.Step(0.5)

	pos, _ := w.Position(fixed)
	assert.Equal(t, vec(0, 3, 0), pos)
	pos, _ = w.Position(trigger)
	assert.Equal(t, vec(5, 3, 0), pos)
}

func TestStepKinematicIgnoresGravityAndPushes(t *testing.T) {
	w := newTestWorld(t, nil)

	pusher := mustBox(t, w, Kinematic, vec(0, 2, 0), vec(1, 1, 1))
	crate := mustBox(t, w, Rigid, vec(1.05, 2, 0), vec(1, 1, 1))
	require.NoError(t, w.SetVelocity(pusher, vec(1, 0, 0)))

	w.Step(0.1)

	pos, _ := w.Position(pusher)
	assert.InDelta(t, 0.1, pos.X, 1e-6)
	assert.Equal(t, float32(2), pos.Y)

	crateBody := mustBody(t, w, crate)
	assert.InDelta(t, 1.1, crateBody.Pos.X, 1e-5)
}

func TestStepPhantomReportsWithoutResolving(t *testing.T) {
	w := newTestWorld(t, nil)

	trigger := mustBox(t, w, Phantom, vec(0, 0, 0), vec(2, 2, 2))
	box := mustBox(t, w, Rigid, vec(0.5, 0, 0), vec(1, 1, 1))

	var entered, exited []Contact
	w.OnContactEnter.AddListener(func(c Contact) { entered = append(entered, c) })
	w.OnContactExit.AddListener(func(c Contact) { exited = append(exited, c) })

	w.Step(0.1)
	require.Len(t, entered, 1)
	assert.Equal(t, box, entered[0].A)
	assert.Equal(t, trigger, entered[0].B)

	pos, _ := w.Position(box)
	assert.Equal(t, vec(0.5, 0, 0), pos)

	// still inside, no repeat
	w.Step(0.1)
	assert.Len(t, entered, 1)
	assert.Empty(t, exited)

	require.NoError(t, w.SetPosition(box, vec(10, 0, 0)))
	w.Step(0.1)
	assert.Len(t, exited, 1)
}

func TestFreeFiresContactExit(t *testing.T) {
	w := newTestWorld(t, nil)

	trigger := mustBox(t, w, Phantom, vec(0, 0, 0), vec(2, 2, 2))
	mustBox(t, w, Rigid, vec(0, 0, 0), vec(1, 1, 1))

	exits := 0
	w.OnContactExit.AddListener(func(Contact) { exits++ })

	w.Step(0.1)
	require.NoError(t, w.Free(trigger))
	assert.Equal(t, 1, exits)

	w.Step(0.1)
	assert.Equal(t, 1, exits)
}

func TestResolveRoundTrip(t *testing.T) {
	w := newTestWorld(t, nil)

	floor := mustMesh(t, w, RigidFixed, vec(0, 0, 0), floorMesh(5))
	box := mustBox(t, w, Rigid, vec(0.3, 0.35, -0.2), vec(1, 1, 1))

	info, err := w.Check(box, floor)
	require.NoError(t, err)
	require.True(t, info.Colliding())
	assert.InDelta(t, 0.15, info.Length, 1e-5)

	supported, floorSupported, err := w.Resolve(box, floor, info, 1.0/60)
	require.NoError(t, err)
	assert.True(t, supported)
	assert.False(t, floorSupported)

	after, err := w.Check(box, floor)
	require.NoError(t, err)
	if after.Colliding() {
		assert.LessOrEqual(t, after.Length, float32(DefaultContactSlop))
	}
}

func TestCheckAABBThroughWorld(t *testing.T) {
	w := newTestWorld(t, nil)

	a := mustBox(t, w, Rigid, vec(0, 0, 0), vec(1, 1, 1))
	b := mustBox(t, w, Rigid, vec(0.9, 0, 0), vec(1, 1, 1))

	info, err := w.CheckAABB(a, b)
	require.NoError(t, err)
	assert.True(t, info.Overlapping())
	assert.InDelta(t, 0.1, info.BaseLength, 1e-5)
	assert.False(t, info.Colliding(), "broad phase alone leaves the narrow fields empty")

	require.NoError(t, w.Free(b))
	_, err = w.CheckAABB(a, b)
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestGridMatchesAllPairs(t *testing.T) {
	build := func(mode string) *World {
		w := newTestWorld(t, func(c *Config) {
			c.BroadPhase = mode
			c.CellSize = 2
		})
		mustMesh(t, w, RigidFixed, vec(0, 0, 0), floorMesh(40))
		for i := 0; i < 10; i++ {
			x := float32(i*4 - 20)
			mustBox(t, w, Rigid, vec(x, 1+float32(i)*0.3, 0), vec(1, 1, 1))
			mustBox(t, w, Rigid, vec(x+0.4, 2.5+float32(i)*0.3, 0.2), vec(1, 1, 1))
		}
		mustBox(t, w, Phantom, vec(0, 0.5, 10), vec(3, 1, 3))
		return w
	}

	allPairs := build(BroadPhaseAllPairs)
	grid := build(BroadPhaseGrid)

	for step := 0; step < 90; step++ {
		allPairs.Step(1.0 / 60)
		grid.Step(1.0 / 60)
		require.Equal(t, len(allPairs.Contacts()), len(grid.Contacts()), "step %d", step)
	}

	for i, b := range allPairs.Bodies() {
		assert.Equal(t, b.Pos, grid.Bodies()[i].Pos, "body %d", i)
		assert.Equal(t, b.Grounded, grid.Bodies()[i].Grounded, "body %d", i)
	}
}

func TestStepRigidOnKinematicPlatformIsGrounded(t *testing.T) {
	for _, platformFirst := range []bool{true, false} {
		w := newTestWorld(t, nil)
		mustMesh(t, w, RigidFixed, vec(0, 0, 0), floorMesh(5))

		var box Handle
		if !platformFirst {
			box = mustBox(t, w, Rigid, vec(0, 1.2, 0), vec(0.6, 0.6, 0.6))
		}
		mustBox(t, w, Kinematic, vec(0, 0.5, 0), vec(3, 0.4, 3))
		if platformFirst {
			box = mustBox(t, w, Rigid, vec(0, 1.2, 0), vec(0.6, 0.6, 0.6))
		}

		for i := 0; i < 120; i++ {
			w.Step(1.0 / 60)
		}

		grounded, err := w.Grounded(box)
		require.NoError(t, err)
		assert.True(t, grounded, "platform first: %v", platformFirst)

		pos, _ := w.Position(box)
		assert.InDelta(t, 1.0, pos.Y, 1e-3, "platform first: %v", platformFirst)
	}
}

func TestStepStackedCratesRest(t *testing.T) {
	for _, bottomFirst := range []bool{true, false} {
		w := newTestWorld(t, nil)
		mustMesh(t, w, RigidFixed, vec(0, 0, 0), floorMesh(5))

		var bottom, top Handle
		if bottomFirst {
			bottom = mustBox(t, w, Rigid, vec(0, 0.5, 0), vec(1, 1, 1))
			top = mustBox(t, w, Rigid, vec(0, 1.5, 0), vec(1, 1, 1))
		} else {
			top = mustBox(t, w, Rigid, vec(0, 1.5, 0), vec(1, 1, 1))
			bottom = mustBox(t, w, Rigid, vec(0, 0.5, 0), vec(1, 1, 1))
		}

		for i := 0; i < 120; i++ {
			w.Step(1.0 / 60)
		}

		topBody, bottomBody := mustBody(t, w, top), mustBody(t, w, bottom)
		assert.True(t, topBody.Grounded, "bottom first: %v", bottomFirst)
		assert.True(t, bottomBody.Grounded, "bottom first: %v", bottomFirst)
		assert.InDelta(t, 1.5, topBody.Pos.Y, 1e-3, "bottom first: %v", bottomFirst)
		assert.InDelta(t, 0.5, bottomBody.Pos.Y, 1e-3, "bottom first: %v", bottomFirst)
	}
}

func TestGridFollowsBodiesMovedMidStep(t *testing.T) {
	// resolving (0, 1) pushes body 1 into cells it did not touch when the
	// grid was built, where it now overlaps body 2
	build := func(mode string) *World {
		w := newTestWorld(t, func(c *Config) {
			c.BroadPhase = mode
			c.CellSize = 0.5
		})
		for _, x := range []float32{0.5, 0.9, 2.05} {
			mustBox(t, w, Rigid, vec(x, 0, 0), vec(1, 1, 1))
		}
		return w
	}

	allPairs := build(BroadPhaseAllPairs)
	grid := build(BroadPhaseGrid)
	require.Equal(t, BroadPhaseGrid, grid.Config().BroadPhase)
	allPairs.Step(1.0 / 60)
	grid.Step(1.0 / 60)

	assert.Len(t, allPairs.Contacts(), 2)
	assert.Len(t, grid.Contacts(), 2)
	assert.InDelta(t, 2.125, allPairs.Bodies()[2].Pos.X, 1e-5)
	for i, b := range allPairs.Bodies() {
		assert.Equal(t, b.Pos, grid.Bodies()[i].Pos, "body %d", i)
	}
}
