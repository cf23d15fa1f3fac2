package components

import (
	"alpha3d/internal/engine"
	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ShapeType int

const (
	ShapeBox ShapeType = iota
	ShapeMesh
)

// Renderer draws a GameObject at its transform: a box of Transform.Scale,
// or the triangles of the CPU mesh its body collides with.
type Renderer struct {
	engine.BaseComponent
	Shape     ShapeType
	Color     rl.Color
	Wireframe bool

	triangles [][3]rl.Vector3
}

func NewBoxRenderer(color rl.Color) *Renderer {
	return &Renderer{Shape: ShapeBox, Color: color}
}

func NewMeshRenderer(color rl.Color, meshes ...rl.Mesh) *Renderer {
	return &Renderer{
		Shape:     ShapeMesh,
		Color:     color,
		triangles: physics.MeshTriangles(meshes...),
	}
}

// TriangleCount returns the number of triangles a mesh renderer draws
func (r *Renderer) TriangleCount() int {
	return len(r.triangles)
}

// Draw must be called between BeginMode3D and EndMode3D
func (r *Renderer) Draw() {
	g := r.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.Transform.Position
	switch r.Shape {
	case ShapeBox:
		if !r.Wireframe {
			rl.DrawCubeV(pos, g.Transform.Scale, r.Color)
		}
		rl.DrawCubeWiresV(pos, g.Transform.Scale, rl.Black)
	case ShapeMesh:
		for _, tri := range r.triangles {
			v1 := rl.Vector3Add(tri[0], pos)
			v2 := rl.Vector3Add(tri[1], pos)
			v3 := rl.Vector3Add(tri[2], pos)
			if !r.Wireframe {
				rl.DrawTriangle3D(v1, v2, v3, r.Color)
			}
			rl.DrawLine3D(v1, v2, rl.DarkGray)
			rl.DrawLine3D(v2, v3, rl.DarkGray)
			rl.DrawLine3D(v3, v1, rl.DarkGray)
		}
	}
}
