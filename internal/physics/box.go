package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is the SAT view of a body's axis-aligned box.
//
// Corner order is fixed and the broad phase depends on it:
//
//	0 (min.x, min.y, max.z)   4 (min.x, min.y, min.z)
//	1 (min.x, max.y, max.z)   5 (min.x, max.y, min.z)
//	2 (max.x, max.y, max.z)   6 (max.x, max.y, min.z)
//	3 (max.x, min.y, max.z)   7 (max.x, min.y, min.z)
type Box struct {
	Min rl.Vector3 // local min extent
	Max rl.Vector3 // local max extent

	V  [8]rl.Vector3 // local corners
	VW [8]rl.Vector3 // world corners, always V[i] + body position
	N  [3]rl.Vector3 // unit face normals (+Z, +X, +Y)

	Center  rl.Vector3 // local center
	WCenter rl.Vector3 // world center, always Center + body position
}

// NewBox builds a box from its local extrema placed at pos
func NewBox(min, max, pos rl.Vector3) Box {
	b := Box{Min: min, Max: max}
	b.V = [8]rl.Vector3{
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
	}

	up := rl.Vector3Normalize(rl.Vector3Subtract(b.V[1], b.V[0]))
	right := rl.Vector3Normalize(rl.Vector3Subtract(b.V[3], b.V[0]))
	forward := rl.Vector3Normalize(rl.Vector3Subtract(b.V[0], b.V[4]))

	// Flat boxes (a terrain plane's bounds) lose an edge, fall back to the
	// axis the normal would have had.
	b.N[0] = axisOr(CrossNormalized(right, up), rl.Vector3{Z: 1})
	b.N[1] = axisOr(CrossNormalized(up, forward), rl.Vector3{X: 1})
	b.N[2] = axisOr(CrossNormalized(forward, right), rl.Vector3{Y: 1})

	b.Center = rl.Vector3Scale(rl.Vector3Add(min, max), 0.5)
	b.Translate(pos)
	return b
}

// Translate recomputes the world corners and world center for a body at pos.
// Both are always written together.
func (b *Box) Translate(pos rl.Vector3) {
	for i := range b.V {
		b.VW[i] = rl.Vector3Add(b.V[i], pos)
	}
	b.WCenter = rl.Vector3Add(b.Center, pos)
}

// HalfExtents returns half the box size on each axis
func (b *Box) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(b.Max, b.Min), 0.5)
}
