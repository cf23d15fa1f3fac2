package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform places a GameObject. Bodies never rotate, so there is no
// rotation; Scale is the drawn size.
type Transform struct {
	Position rl.Vector3
	Scale    rl.Vector3
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

// AddComponent attaches c. Components added after Start are started on the
// spot.
func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, or the zero T
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

// CollisionHandlers returns the components that react to contacts
func (g *GameObject) CollisionHandlers() []CollisionHandler {
	var handlers []CollisionHandler
	for _, c := range g.components {
		if h, ok := c.(CollisionHandler); ok {
			handlers = append(handlers, h)
		}
	}
	return handlers
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}
