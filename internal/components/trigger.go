package components

import (
	"log"

	"alpha3d/internal/engine"
)

// Trigger logs and counts GameObjects entering its body. Pair it with a
// Phantom body so nothing is pushed.
type Trigger struct {
	engine.BaseComponent
	Inside int

	// OnEnter is called after the count is updated
	OnEnter func(other *engine.GameObject)
}

func (t *Trigger) OnCollisionEnter(other *engine.GameObject) {
	t.Inside++
	log.Printf("Trigger: %s entered %s", other.Name, t.name())
	if t.OnEnter != nil {
		t.OnEnter(other)
	}
}

func (t *Trigger) OnCollisionExit(other *engine.GameObject) {
	if t.Inside > 0 {
		t.Inside--
	}
	log.Printf("Trigger: %s left %s", other.Name, t.name())
}

func (t *Trigger) name() string {
	if g := t.GetGameObject(); g != nil {
		return g.Name
	}
	return "trigger"
}
