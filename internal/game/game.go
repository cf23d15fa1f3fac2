package game

import (
	"fmt"
	"log"
	"time"

	"alpha3d/internal/camera"
	"alpha3d/internal/config"
	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxFrameTime caps the step after a stall (window drag, breakpoint) so
// bodies do not tunnel through the ground
const maxFrameTime = 1.0 / 20

type Game struct {
	Config config.Config
	Level  *Level
	Camera *camera.Follow

	Paused    bool
	DebugMode bool
	panel     panel

	// Debug timing (ms)
	stepMs float64
	drawMs float64
	drawn  int
}

// New builds the level; the window is opened by Run
func New(cfg config.Config) (*Game, error) {
	g := &Game{Config: cfg, DebugMode: cfg.Sandbox.ShowContacts}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	g.Camera = camera.New(g.Level.Player.Transform.Position)
	g.panel = newPanel(g)
	return g, nil
}

// Reset rebuilds the level from the current config, keeping the gravity
// and broad phase chosen in the panel
func (g *Game) Reset() error {
	level, err := buildLevel(g.Config)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}
	g.Level = level
	log.Printf("Sandbox: %d bodies, broad phase %s", level.World.Len(), g.Config.Physics.BroadPhase)
	return nil
}

func (g *Game) Run() {
	s := g.Config.Sandbox
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(s.ScreenWidth), int32(s.ScreenHeight), s.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(s.TargetFPS)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	deltaTime := min(rl.GetFrameTime(), maxFrameTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.Paused = !g.Paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.resetOrDie()
	}

	g.readInput()

	stepStart := time.Now()
	if !g.Paused {
		g.Level.Update(deltaTime)
	}
	g.stepMs = float64(time.Since(stepStart).Microseconds()) / 1000.0

	g.Camera.Update(g.Level.Player.Transform.Position)
}

func (g *Game) resetOrDie() {
	if err := g.Reset(); err != nil {
		log.Fatalf("Sandbox: %v", err)
	}
}

// readInput turns keys into camera-relative player intent
func (g *Game) readInput() {
	pc := g.player()
	if pc == nil {
		return
	}

	forward, right := g.Camera.Directions()
	var dir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		dir = rl.Vector3Add(dir, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		dir = rl.Vector3Subtract(dir, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		dir = rl.Vector3Add(dir, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		dir = rl.Vector3Subtract(dir, right)
	}

	pc.Input = MoveInput{
		Direction: dir,
		Jump:      rl.IsKeyPressed(rl.KeySpace),
		Dash:      rl.IsKeyPressed(rl.KeyLeftShift),
	}
}

func (g *Game) player() *PlayerController {
	for _, c := range g.Level.Player.Components() {
		if pc, ok := c.(*PlayerController); ok {
			return pc
		}
	}
	return nil
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := camera.NewFrustum(cam, aspect)

	rl.BeginMode3D(cam)
	g.drawn = g.Level.Draw(&frustum)
	if g.DebugMode {
		g.drawContacts()
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

// drawContacts marks each contact of the last step with its push-out normal
func (g *Game) drawContacts() {
	for _, c := range g.Level.World.Contacts() {
		body, ok := g.Level.World.Body(c.A)
		if !ok {
			continue
		}
		from := body.Box.WCenter
		if c.Info.Triangle != ([3]rl.Vector3{}) {
			rl.DrawTriangle3D(c.Info.Triangle[0], c.Info.Triangle[1], c.Info.Triangle[2], rl.Yellow)
		}
		rl.DrawLine3D(from, rl.Vector3Add(from, c.Info.Direction), rl.Magenta)
	}
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD move, Space jump, Shift dash, RMB orbit, P pause, R reset", 10, 10, 20, rl.LightGray)
	rl.DrawFPS(10, 35)

	g.panel.Draw()

	if g.DebugMode {
		w := g.Level.World
		grounded := false
		if rb := g.playerBody(); rb != nil {
			grounded = rb.Grounded
		}
		rl.DrawText(fmt.Sprintf("Bodies:   %d/%d", w.Len(), w.Capacity()), 10, 60, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Contacts: %d", len(w.Contacts())), 10, 80, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Grounded: %v", grounded), 10, 100, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("In zone:  %d", g.Level.Zone.Inside), 10, 120, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Drawn:    %d/%d", g.drawn, len(g.Level.Scene.GameObjects)), 10, 140, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Step:     %.2f ms", g.stepMs), 10, 160, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:     %.2f ms", g.drawMs), 10, 180, 16, rl.Lime)
	}
}

func (g *Game) playerBody() *physics.RigidBody {
	pc := g.player()
	if pc == nil || pc.body == nil {
		return nil
	}
	return pc.body.Body()
}
