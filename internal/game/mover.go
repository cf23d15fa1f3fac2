package game

import (
	"alpha3d/internal/components"
	"alpha3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mover drives a kinematic body back and forth along Axis, up to Range
// from where it started
type Mover struct {
	engine.BaseComponent
	Axis  rl.Vector3
	Range float32
	Speed float32

	origin rl.Vector3
	dir    float32
	body   *components.RigidBody
}

func (m *Mover) Start() {
	m.body = engine.GetComponent[*components.RigidBody](m.GetGameObject())
	m.origin = m.GetGameObject().Transform.Position
	m.dir = 1
}

func (m *Mover) Update(deltaTime float32) {
	if m.body == nil {
		return
	}

	offset := rl.Vector3DotProduct(rl.Vector3Subtract(m.GetGameObject().Transform.Position, m.origin), m.Axis)
	if offset >= m.Range {
		m.dir = -1
	} else if offset <= -m.Range {
		m.dir = 1
	}
	m.body.SetVelocity(rl.Vector3Scale(m.Axis, m.dir*m.Speed))
}
