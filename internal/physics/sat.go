package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollideBoxMesh tests the box of 'box' against every triangle of the
// target's meshes. The governing contact is the shallowest intersecting
// triangle whose normal points from the triangle toward the box center;
// its normal is the resolution axis. The broad phase is not run.
func CollideBoxMesh(box, target *RigidBody) CollisionInfo {
	return collideBoxMesh(box, target, defaultTolerance)
}

func collideBoxMesh(box, target *RigidBody, tol tolerance) CollisionInfo {
	info := noContact()
	bestDepth := float32(math.MaxFloat32)

	forEachTriangle(target.Meshes, target.Pos, func(v1, v2, v3 rl.Vector3) bool {
		depth, normal, ok := intersectBoxTriangle(&box.Box, v1, v2, v3, tol)
		if !ok {
			return true
		}

		centroid := rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(v1, v2), v3), 1.0/3.0)
		toBox := rl.Vector3Subtract(box.Box.WCenter, centroid)
		if Dot(toBox, normal) <= 0 || depth >= bestDepth {
			return true
		}

		bestDepth = depth
		info.Length = depth
		info.Direction = normal
		info.Triangle = [3]rl.Vector3{v1, v2, v3}
		return true
	})

	return info
}

// IntersectBoxTriangle runs the separating axis test between a box and one
// world-space triangle. On intersection it returns the penetration along
// the triangle normal and that normal. Degenerate triangles never intersect.
func IntersectBoxTriangle(b *Box, v1, v2, v3 rl.Vector3) (float32, rl.Vector3, bool) {
	return intersectBoxTriangle(b, v1, v2, v3, defaultTolerance)
}

func intersectBoxTriangle(b *Box, v1, v2, v3 rl.Vector3, tol tolerance) (float32, rl.Vector3, bool) {
	tri := [3]rl.Vector3{v1, v2, v3}
	edges := [3]rl.Vector3{
		rl.Vector3Subtract(v2, v1),
		rl.Vector3Subtract(v3, v2),
		rl.Vector3Subtract(v1, v3),
	}

	normal := Cross(edges[0], edges[1])
	if rl.Vector3Length(normal) <= tol.parallel {
		return 0, rl.Vector3{}, false
	}
	normal = rl.Vector3Normalize(normal)

	// Triangle plane first, it rejects most far triangles
	depth, ok := overlapOnAxis(&b.VW, &tri, normal, tol.slop)
	if !ok {
		return 0, rl.Vector3{}, false
	}

	for _, n := range b.N {
		if _, ok := overlapOnAxis(&b.VW, &tri, n, tol.slop); !ok {
			return 0, rl.Vector3{}, false
		}
		for _, e := range edges {
			axis := Cross(n, e)
			// Near-parallel edge pairs give no usable axis
			if rl.Vector3Length(axis) <= tol.parallel {
				continue
			}
			if _, ok := overlapOnAxis(&b.VW, &tri, rl.Vector3Normalize(axis), tol.slop); !ok {
				return 0, rl.Vector3{}, false
			}
		}
	}

	return depth, normal, true
}

// overlapOnAxis projects the box corners and triangle vertices onto axis.
// It returns the smaller of the two interval overlaps, the distance needed
// to separate along axis. Gaps up to slop count as touching with length 0.
func overlapOnAxis(verts *[8]rl.Vector3, tri *[3]rl.Vector3, axis rl.Vector3, slop float32) (float32, bool) {
	boxMin, boxMax := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for i := range verts {
		p := Dot(verts[i], axis)
		boxMin = min(boxMin, p)
		boxMax = max(boxMax, p)
	}

	triMin, triMax := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for i := range tri {
		p := Dot(tri[i], axis)
		triMin = min(triMin, p)
		triMax = max(triMax, p)
	}

	if boxMax < triMin-slop || boxMin > triMax+slop {
		return 0, false
	}
	return max(0, min(boxMax-triMin, triMax-boxMin)), true
}
