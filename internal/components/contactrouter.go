package components

import (
	"alpha3d/internal/engine"
	"alpha3d/internal/physics"
)

// ContactRouter delivers world contact events to the CollisionHandler
// components of the GameObjects bound to each body.
type ContactRouter struct {
	objects map[physics.Handle]*engine.GameObject
}

// NewContactRouter subscribes a router to the contact events of world
func NewContactRouter(world *physics.World) *ContactRouter {
	r := &ContactRouter{objects: make(map[physics.Handle]*engine.GameObject)}
	world.OnContactEnter.AddListener(r.enter)
	world.OnContactExit.AddListener(r.exit)
	return r
}

// Bind associates a body with a GameObject
func (r *ContactRouter) Bind(h physics.Handle, g *engine.GameObject) {
	r.objects[h] = g
}

// Unbind drops a body; later events for it are ignored
func (r *ContactRouter) Unbind(h physics.Handle) {
	delete(r.objects, h)
}

// Object returns the GameObject bound to h
func (r *ContactRouter) Object(h physics.Handle) *engine.GameObject {
	return r.objects[h]
}

func (r *ContactRouter) enter(c physics.Contact) {
	a, b := r.objects[c.A], r.objects[c.B]
	if a == nil || b == nil {
		return
	}
	for _, h := range a.CollisionHandlers() {
		h.OnCollisionEnter(b)
	}
	for _, h := range b.CollisionHandlers() {
		h.OnCollisionEnter(a)
	}
}

func (r *ContactRouter) exit(c physics.Contact) {
	a, b := r.objects[c.A], r.objects[c.B]
	if a == nil || b == nil {
		return
	}
	for _, h := range a.CollisionHandlers() {
		h.OnCollisionExit(b)
	}
	for _, h := range b.CollisionHandlers() {
		h.OnCollisionExit(a)
	}
}
