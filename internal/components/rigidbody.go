package components

import (
	"alpha3d/internal/engine"
	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RigidBody ties a GameObject to a body in a physics world. The body is the
// source of truth: every update copies its position into the transform.
type RigidBody struct {
	engine.BaseComponent
	World  *physics.World
	Handle physics.Handle
}

func NewRigidBody(world *physics.World, h physics.Handle) *RigidBody {
	return &RigidBody{World: world, Handle: h}
}

func (r *RigidBody) Start() {
	r.sync()
}

func (r *RigidBody) Update(deltaTime float32) {
	r.sync()
}

func (r *RigidBody) sync() {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	if pos, err := r.World.Position(r.Handle); err == nil {
		g.Transform.Position = pos
	}
}

// Body returns the underlying body, nil once it has been freed
func (r *RigidBody) Body() *physics.RigidBody {
	b, _ := r.World.Body(r.Handle)
	return b
}

func (r *RigidBody) Velocity() rl.Vector3 {
	v, _ := r.World.Velocity(r.Handle)
	return v
}

func (r *RigidBody) SetVelocity(v rl.Vector3) error {
	return r.World.SetVelocity(r.Handle, v)
}

func (r *RigidBody) Grounded() bool {
	grounded, _ := r.World.Grounded(r.Handle)
	return grounded
}

// Teleport places the body and its GameObject at pos
func (r *RigidBody) Teleport(pos rl.Vector3) error {
	if err := r.World.SetPosition(r.Handle, pos); err != nil {
		return err
	}
	r.sync()
	return nil
}

// Move translates the body by delta unless that would push it into a solid
// body, and reports whether it moved
func (r *RigidBody) Move(delta rl.Vector3) (bool, error) {
	moved, err := r.World.TryMove(r.Handle, delta)
	if err != nil {
		return false, err
	}
	if moved {
		r.sync()
	}
	return moved, nil
}
