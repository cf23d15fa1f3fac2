package game

import (
	"alpha3d/internal/components"
	"alpha3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// dashDistance is how far a dash jumps ahead when the way is clear
const dashDistance = 2

// MoveInput is one frame of player intent
type MoveInput struct {
	// Direction is the wished horizontal direction, any length
	Direction rl.Vector3
	Jump      bool
	Dash      bool
}

// PlayerController steers its GameObject's body. Horizontal velocity
// follows the input directly; the world applies gravity and resolves
// slopes, walls and crates.
type PlayerController struct {
	engine.BaseComponent
	Speed     float32
	JumpSpeed float32

	// Input is read at the next Update
	Input MoveInput

	body *components.RigidBody
}

func NewPlayerController(speed, jumpSpeed float32) *PlayerController {
	return &PlayerController{Speed: speed, JumpSpeed: jumpSpeed}
}

func (p *PlayerController) Start() {
	p.body = engine.GetComponent[*components.RigidBody](p.GetGameObject())
}

func (p *PlayerController) Update(deltaTime float32) {
	if p.body == nil {
		return
	}
	p.Drive(p.Input)
	p.Input = MoveInput{}
}

// Drive applies one frame of input to the body
func (p *PlayerController) Drive(in MoveInput) {
	vel := p.body.Velocity()

	dir := rl.Vector3{X: in.Direction.X, Z: in.Direction.Z}
	if rl.Vector3Length(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	vel.X = dir.X * p.Speed
	vel.Z = dir.Z * p.Speed

	grounded := p.body.Grounded()
	if in.Jump && grounded {
		vel.Y = p.JumpSpeed
	}
	p.body.SetVelocity(vel)

	if in.Dash && rl.Vector3Length(dir) > 0 {
		p.body.Move(rl.Vector3Scale(dir, dashDistance))
	}
}
