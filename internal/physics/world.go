package physics

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Handle identifies a body in a World. A handle stays valid until its body
// is freed; after that every lookup fails with ErrInvalidHandle even if the
// slot is reused. The zero Handle is never issued.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero Handle
func (h Handle) IsZero() bool {
	return h.generation == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("body#%d.%d", h.index, h.generation)
}

type slot struct {
	dense      int
	generation uint32
	live       bool
}

// Contact is a touching pair recorded during a step
type Contact struct {
	A, B Handle
	Info CollisionInfo
}

// pairID orders a handle pair so A/B and B/A match
type pairID struct {
	lo, hi Handle
}

func makePairID(a, b Handle) pairID {
	if a.index > b.index || (a.index == b.index && a.generation > b.generation) {
		a, b = b, a
	}
	return pairID{lo: a, hi: b}
}

// World owns a bounded set of bodies and steps them under gravity
type World struct {
	// Gravity is the downward acceleration, may be changed between steps
	Gravity float32

	cfg         Config
	tol         tolerance
	minWalkable float32

	bodies []*RigidBody // dense, step order
	slots  []slot
	free   []uint32

	grid *spatialGrid // nil for all-pairs

	contacts      []Contact
	activeContact map[pairID]Contact

	// OnContactEnter fires after a step for pairs that started touching
	OnContactEnter Event[Contact]
	// OnContactExit fires after a step for pairs that stopped touching or were freed
	OnContactExit Event[Contact]
}

// NewWorld creates an empty world from a validated config
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Gravity:       cfg.Gravity,
		cfg:           cfg,
		tol:           cfg.tolerance(),
		minWalkable:   cfg.minWalkable(),
		bodies:        make([]*RigidBody, 0, cfg.Capacity),
		activeContact: make(map[pairID]Contact),
	}
	if cfg.BroadPhase == BroadPhaseGrid {
		w.grid = newSpatialGrid(cfg.CellSize)
		log.Printf("Physics: grid broad-phase (cell %.1f, capacity %d)", cfg.CellSize, cfg.Capacity)
	} else {
		log.Printf("Physics: all-pairs broad-phase (capacity %d)", cfg.Capacity)
	}
	return w, nil
}

// Config returns the settings the world was created with
func (w *World) Config() Config {
	return w.cfg
}

// CreateRigidBody registers a box body of full size 'size' centered on position
func (w *World) CreateRigidBody(t BodyType, position, size rl.Vector3) (Handle, error) {
	if err := w.checkCapacity(); err != nil {
		return Handle{}, err
	}
	return w.register(newBoxBody(t, position, size)), nil
}

// CreateRigidBodyFromMesh registers a body colliding through the triangles
// of meshes, bounded by their vertex extrema. The meshes are borrowed.
func (w *World) CreateRigidBodyFromMesh(t BodyType, meshes []rl.Mesh, position rl.Vector3) (Handle, error) {
	if err := w.checkCapacity(); err != nil {
		return Handle{}, err
	}
	b, err := newMeshBody(t, meshes, position)
	if err != nil {
		return Handle{}, err
	}
	return w.register(b), nil
}

func (w *World) checkCapacity() error {
	if len(w.bodies) >= w.cfg.Capacity {
		log.Printf("Physics: refused body, %d/%d slots used", len(w.bodies), w.cfg.Capacity)
		return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, w.cfg.Capacity)
	}
	return nil
}

func (w *World) register(b *RigidBody) Handle {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[index]
	s.generation++
	s.live = true
	s.dense = len(w.bodies)

	b.handle = Handle{index: index, generation: s.generation}
	w.bodies = append(w.bodies, b)
	return b.handle
}

// Free removes a body. The last body in step order takes its place.
// Contacts still open with the body fire OnContactExit.
func (w *World) Free(h Handle) error {
	if _, err := w.lookup(h); err != nil {
		return err
	}

	s := &w.slots[h.index]
	last := len(w.bodies) - 1
	if s.dense != last {
		moved := w.bodies[last]
		w.bodies[s.dense] = moved
		w.slots[moved.handle.index].dense = s.dense
	}
	w.bodies[last] = nil
	w.bodies = w.bodies[:last]

	s.live = false
	s.generation++
	w.free = append(w.free, h.index)

	for id, c := range w.activeContact {
		if id.lo == h || id.hi == h {
			delete(w.activeContact, id)
			w.OnContactExit.Invoke(c)
		}
	}
	return nil
}

func (w *World) lookup(h Handle) (*RigidBody, error) {
	if h.IsZero() || int(h.index) >= len(w.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	s := w.slots[h.index]
	if !s.live || s.generation != h.generation {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return w.bodies[s.dense], nil
}

// Body returns the body behind h
func (w *World) Body(h Handle) (*RigidBody, bool) {
	b, err := w.lookup(h)
	return b, err == nil
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return len(w.bodies)
}

// Capacity returns the maximum number of live bodies
func (w *World) Capacity() int {
	return w.cfg.Capacity
}

// Bodies returns the live bodies in step order. The slice is owned by the
// world and only valid until the next create or free.
func (w *World) Bodies() []*RigidBody {
	return w.bodies
}

// Position returns the world position of a body
func (w *World) Position(h Handle) (rl.Vector3, error) {
	b, err := w.lookup(h)
	if err != nil {
		return rl.Vector3{}, err
	}
	return b.Pos, nil
}

// SetPosition places a body, refreshing its box
func (w *World) SetPosition(h Handle, pos rl.Vector3) error {
	b, err := w.lookup(h)
	if err != nil {
		return err
	}
	b.SetPosition(pos)
	return nil
}

// Velocity returns the velocity of a body
func (w *World) Velocity(h Handle) (rl.Vector3, error) {
	b, err := w.lookup(h)
	if err != nil {
		return rl.Vector3{}, err
	}
	return b.Vel, nil
}

// SetVelocity replaces the velocity of a body
func (w *World) SetVelocity(h Handle, vel rl.Vector3) error {
	b, err := w.lookup(h)
	if err != nil {
		return err
	}
	b.Vel = vel
	return nil
}

// Grounded reports whether the body had a supporting contact last step
func (w *World) Grounded(h Handle) (bool, error) {
	b, err := w.lookup(h)
	if err != nil {
		return false, err
	}
	return b.Grounded, nil
}

// CheckAABB runs the broad phase between two bodies
func (w *World) CheckAABB(a, b Handle) (CollisionInfo, error) {
	ba, bb, err := w.lookupPair(a, b)
	if err != nil {
		return noContact(), err
	}
	return checkAABB(ba, bb, w.tol), nil
}

// Check runs broad and narrow phase between two bodies without resolving
func (w *World) Check(a, b Handle) (CollisionInfo, error) {
	ba, bb, err := w.lookupPair(a, b)
	if err != nil {
		return noContact(), err
	}
	return checkCollision(ba, bb, w.tol), nil
}

// Resolve applies a contact between a and b as the step would and reports
// whether it supports a and whether it supports b
func (w *World) Resolve(a, b Handle, info CollisionInfo, dt float32) (aSupported, bSupported bool, err error) {
	ba, bb, err := w.lookupPair(a, b)
	if err != nil {
		return false, false, err
	}
	if !info.Colliding() {
		return false, false, nil
	}
	aSupported, bSupported = w.resolve(ba, bb, info, dt)
	return aSupported, bSupported, nil
}

func (w *World) lookupPair(a, b Handle) (*RigidBody, *RigidBody, error) {
	ba, err := w.lookup(a)
	if err != nil {
		return nil, nil, err
	}
	bb, err := w.lookup(b)
	if err != nil {
		return nil, nil, err
	}
	return ba, bb, nil
}

func (w *World) resolve(a, b *RigidBody, info CollisionInfo, dt float32) (bool, bool) {
	c := contact{a: a, b: b, info: info, dt: dt, minWalkable: w.minWalkable}
	return resolverFor(a.Type, b.Type)(&c)
}

// Contacts returns the contacts recorded by the last step. The slice is
// reused by the next step.
func (w *World) Contacts() []Contact {
	return w.contacts
}
