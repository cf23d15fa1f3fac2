package game

import (
	"fmt"
	"math"
	"math/rand"

	"alpha3d/internal/camera"
	"alpha3d/internal/components"
	"alpha3d/internal/config"
	"alpha3d/internal/engine"
	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const groundHalf = 20

var (
	playerSize  = rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6}
	playerSpawn = rl.Vector3{X: 0, Y: 1.2, Z: 0}
)

// Level is the sandbox content: the scene graph, the physics world it is
// bound to, and the objects the game drives directly.
type Level struct {
	World  *physics.World
	Scene  *engine.Scene
	Router *components.ContactRouter

	Player   *engine.GameObject
	Platform *engine.GameObject
	Zone     *components.Trigger

	renderers []*components.Renderer
}

// buildLevel creates a fresh world from cfg and populates it
func buildLevel(cfg config.Config) (*Level, error) {
	world, err := physics.NewWorld(cfg.Physics)
	if err != nil {
		return nil, err
	}

	l := &Level{
		World:  world,
		Scene:  engine.NewScene("Sandbox"),
		Router: components.NewContactRouter(world),
	}
	rng := rand.New(rand.NewSource(cfg.Sandbox.Seed))

	if _, err := l.addMesh("Ground", rl.Vector3{}, rl.NewColor(70, 110, 70, 255), groundMesh(groundHalf)); err != nil {
		return nil, err
	}
	if _, err := l.addMesh("Ramp", rl.Vector3{X: 4, Z: -6}, rl.Beige, rampMesh(6, 2, 3)); err != nil {
		return nil, err
	}
	if _, err := l.addMesh("Cliff", rl.Vector3{X: -8, Z: -6}, rl.Brown, rampMesh(1.5, 2.6, 3)); err != nil {
		return nil, err
	}
	if _, err := l.addBox("Wall", physics.RigidFixed, rl.Vector3{X: 8, Y: 1, Z: 4}, rl.Vector3{X: 1, Y: 2, Z: 6}, rl.Gray); err != nil {
		return nil, err
	}

	for i := 0; i < cfg.Sandbox.Trees; i++ {
		pos := ringPosition(rng, 10, 18)
		if _, err := l.addMesh(fmt.Sprintf("Tree_%d", i), pos, rl.DarkGreen,
			prismMesh(0.3, 0, 2.5, 6), prismMesh(1.2, 2.5, 1.5, 8)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.Sandbox.Crates; i++ {
		pos := ringPosition(rng, 3, 8)
		pos.Y = 2 + float32(i)
		if _, err := l.addBox(fmt.Sprintf("Crate_%d", i), physics.Rigid, pos, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Orange); err != nil {
			return nil, err
		}
	}

	platform, err := l.addBox("Platform", physics.Kinematic, rl.Vector3{Y: 0.5, Z: 10}, rl.Vector3{X: 3, Y: 0.4, Z: 3}, rl.SkyBlue)
	if err != nil {
		return nil, err
	}
	platform.AddComponent(&Mover{Axis: rl.Vector3{X: 1}, Range: 5, Speed: 2})
	l.Platform = platform

	zone, err := l.addBox("Zone", physics.Phantom, rl.Vector3{X: -6, Y: 1, Z: 6}, rl.Vector3{X: 3, Y: 2, Z: 3}, rl.NewColor(112, 31, 126, 80))
	if err != nil {
		return nil, err
	}
	l.Zone = &components.Trigger{}
	zone.AddComponent(l.Zone)

	player, err := l.addBox("Player", physics.Rigid, playerSpawn, playerSize, rl.Red)
	if err != nil {
		return nil, err
	}
	player.Tags = []string{"player"}
	player.AddComponent(NewPlayerController(cfg.Sandbox.PlayerSpeed, cfg.Sandbox.JumpSpeed))
	l.Player = player

	l.Scene.Start()
	return l, nil
}

func (l *Level) bind(g *engine.GameObject, h physics.Handle, r *components.Renderer) {
	g.AddComponent(components.NewRigidBody(l.World, h))
	g.AddComponent(r)
	l.Router.Bind(h, g)
	l.Scene.AddGameObject(g)
	l.renderers = append(l.renderers, r)
}

func (l *Level) addBox(name string, t physics.BodyType, pos, size rl.Vector3, color rl.Color) (*engine.GameObject, error) {
	h, err := l.World.CreateRigidBody(t, pos, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	g := engine.NewGameObject(name)
	g.Transform.Scale = size
	r := components.NewBoxRenderer(color)
	r.Wireframe = t == physics.Phantom
	l.bind(g, h, r)
	return g, nil
}

func (l *Level) addMesh(name string, pos rl.Vector3, color rl.Color, meshes ...rl.Mesh) (*engine.GameObject, error) {
	h, err := l.World.CreateRigidBodyFromMesh(physics.RigidFixed, meshes, pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	g := engine.NewGameObject(name)
	l.bind(g, h, components.NewMeshRenderer(color, meshes...))
	return g, nil
}

// Update advances the world, then lets every GameObject read it back
func (l *Level) Update(deltaTime float32) {
	l.World.Step(deltaTime)
	l.Scene.Update(deltaTime)
}

// Draw renders the objects whose bodies reach into f and returns how many
// were drawn
func (l *Level) Draw(f *camera.Frustum) int {
	drawn := 0
	for _, r := range l.renderers {
		if rb := engine.GetComponent[*components.RigidBody](r.GetGameObject()); rb != nil {
			if body := rb.Body(); body != nil {
				bounds := body.Bounds()
				if !f.ContainsAABB(bounds.Min, bounds.Max) {
					continue
				}
			}
		}
		r.Draw()
		drawn++
	}
	return drawn
}

// ringPosition picks a point on the ground between two radii of the origin
func ringPosition(rng *rand.Rand, inner, outer float64) rl.Vector3 {
	a := rng.Float64() * 2 * math.Pi
	d := inner + rng.Float64()*(outer-inner)
	return rl.Vector3{X: float32(math.Cos(a) * d), Z: float32(math.Sin(a) * d)}
}
