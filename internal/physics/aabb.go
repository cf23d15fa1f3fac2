package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is a world-space axis-aligned bounding box
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// boxAABB reads the world extents from the fixed corner slots of a box:
// x from corners 0 and 3, y from 0 and 1, z from 4 and 0.
func boxAABB(b *Box) AABB {
	return AABB{
		Min: rl.Vector3{X: b.VW[0].X, Y: b.VW[0].Y, Z: b.VW[4].Z},
		Max: rl.Vector3{X: b.VW[3].X, Y: b.VW[1].Y, Z: b.VW[0].Z},
	}
}

// Intersects reports overlap, counting gaps up to slop as touching
func (a AABB) Intersects(b AABB, slop float32) bool {
	return a.Min.X <= b.Max.X+slop && a.Max.X >= b.Min.X-slop &&
		a.Min.Y <= b.Max.Y+slop && a.Max.Y >= b.Min.Y-slop &&
		a.Min.Z <= b.Max.Z+slop && a.Max.Z >= b.Min.Z-slop
}

// Resolve returns the minimum penetration depth and the unit axis that
// pushes 'a' out of 'b'. The boxes must intersect; touching boxes give 0.
func (a AABB) Resolve(b AABB) (float32, rl.Vector3) {
	// Penetration depth in each direction
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	depth := dx1
	axis := rl.Vector3{X: 1}

	if dx2 < depth {
		depth = dx2
		axis = rl.Vector3{X: -1}
	}
	if dy1 < depth {
		depth = dy1
		axis = rl.Vector3{Y: 1}
	}
	if dy2 < depth {
		depth = dy2
		axis = rl.Vector3{Y: -1}
	}
	if dz1 < depth {
		depth = dz1
		axis = rl.Vector3{Z: 1}
	}
	if dz2 < depth {
		depth = dz2
		axis = rl.Vector3{Z: -1}
	}

	return max(depth, 0), axis
}

// Center returns the midpoint of the box
func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}
