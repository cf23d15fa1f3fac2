package game

import (
	"math"

	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collision meshes are generated on the CPU and never uploaded; the
// renderer draws their triangles directly. Every generator winds triangles
// counter-clockwise seen from outside, so normals face out.

// groundMesh is a square of side 2*half at y=0
func groundMesh(half float32) rl.Mesh {
	return physics.NewMesh([]float32{
		-half, 0, -half,
		-half, 0, half,
		half, 0, half,
		half, 0, -half,
	}, []uint16{0, 1, 2, 0, 2, 3})
}

// rampMesh is a wedge rising along +X from (0,0) to (length, height),
// width wide on Z, without a bottom face
func rampMesh(length, height, width float32) rl.Mesh {
	w := width / 2
	vertices := []float32{
		0, 0, -w, // 0 A
		0, 0, w, // 1 B
		length, height, w, // 2 C
		length, height, -w, // 3 D
		length, 0, -w, // 4 E
		length, 0, w, // 5 F
	}
	indices := []uint16{
		0, 1, 2, 0, 2, 3, // slope
		4, 3, 2, 4, 2, 5, // back
		1, 5, 2, // +z side
		0, 3, 4, // -z side
	}
	return physics.NewMesh(vertices, indices)
}

// prismMesh is an upright n-sided prism of the given radius spanning
// base..base+height on Y, with a top cap and no bottom
func prismMesh(radius, base, height float32, sides int) rl.Mesh {
	top := base + height
	vertices := make([]float32, 0, (2*sides+1)*3)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		x := radius * float32(math.Cos(a))
		z := radius * float32(math.Sin(a))
		vertices = append(vertices, x, base, z, x, top, z)
	}
	center := uint16(2 * sides)
	vertices = append(vertices, 0, top, 0)

	indices := make([]uint16, 0, sides*9)
	for i := 0; i < sides; i++ {
		p0, t0 := uint16(2*i), uint16(2*i+1)
		j := (i + 1) % sides
		p1, t1 := uint16(2*j), uint16(2*j+1)
		indices = append(indices,
			p0, t0, p1,
			p1, t0, t1,
			center, t1, t0,
		)
	}
	return physics.NewMesh(vertices, indices)
}
