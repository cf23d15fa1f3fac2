package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyType selects how a body takes part in resolution
type BodyType uint8

const (
	// Rigid bodies fall under gravity and are pushed out of contacts
	Rigid BodyType = iota
	// RigidFixed bodies never move
	RigidFixed
	// Phantom bodies overlap freely and only report contacts (triggers)
	Phantom
	// Kinematic bodies move by their own velocity, ignore gravity and are
	// never pushed by rigid bodies
	Kinematic
)

func (t BodyType) String() string {
	switch t {
	case Rigid:
		return "Rigid"
	case RigidFixed:
		return "RigidFixed"
	case Phantom:
		return "Phantom"
	case Kinematic:
		return "Kinematic"
	}
	return fmt.Sprintf("BodyType(%d)", uint8(t))
}

// movable reports whether the body integrates its own velocity
func (t BodyType) movable() bool {
	return t == Rigid || t == Kinematic
}

// RigidBody is a box, optionally backed by borrowed triangle meshes used as
// its exact collision shape.
type RigidBody struct {
	Type BodyType
	Pos  rl.Vector3
	Vel  rl.Vector3
	Box  Box

	// Meshes are owned by the caller; vertices are local to Pos
	Meshes []rl.Mesh

	// Grounded is set when the last step resolved a supporting contact
	Grounded bool

	triangles int
	handle    Handle
}

// newBoxBody creates a body whose box spans size, centered on pos
func newBoxBody(t BodyType, pos, size rl.Vector3) *RigidBody {
	half := rl.Vector3Scale(size, 0.5)
	return &RigidBody{
		Type: t,
		Pos:  pos,
		Box:  NewBox(rl.Vector3Negate(half), half, pos),
	}
}

// newMeshBody creates a body bounded by the vertex extrema of meshes
func newMeshBody(t BodyType, meshes []rl.Mesh, pos rl.Vector3) (*RigidBody, error) {
	min, max, ok := meshBounds(meshes)
	if !ok {
		return nil, ErrEmptyMesh
	}
	return &RigidBody{
		Type:      t,
		Pos:       pos,
		Box:       NewBox(min, max, pos),
		Meshes:    meshes,
		triangles: triangleCount(meshes),
	}, nil
}

// SetPosition moves the body and refreshes its world-space box
func (r *RigidBody) SetPosition(pos rl.Vector3) {
	r.Pos = pos
	r.Box.Translate(pos)
}

// Translate moves the body by delta
func (r *RigidBody) Translate(delta rl.Vector3) {
	r.SetPosition(rl.Vector3Add(r.Pos, delta))
}

// HasMesh reports whether the body collides through triangles
func (r *RigidBody) HasMesh() bool {
	return r.triangles > 0
}

// TriangleCount returns the number of triangles across all meshes
func (r *RigidBody) TriangleCount() int {
	return r.triangles
}

// Handle returns the handle the body was registered under
func (r *RigidBody) Handle() Handle {
	return r.handle
}

// Bounds returns the world-space AABB of the body's box
func (r *RigidBody) Bounds() AABB {
	return boxAABB(&r.Box)
}
