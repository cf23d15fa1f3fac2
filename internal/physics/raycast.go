package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes the closest body along a ray
type RaycastHit struct {
	Body     Handle
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest non-phantom body hit within maxDistance.
// Box bodies are hit on their bounds, mesh bodies on their triangles.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := RaycastHit{Distance: maxDistance}
	hit := false

	for _, b := range w.bodies {
		if b.Type == Phantom {
			continue
		}

		bounds := boxAABB(&b.Box)
		t, normal, ok := raycastAABB(origin, direction, bounds, closest.Distance)
		if !ok {
			continue
		}
		if b.HasMesh() {
			t, normal, ok = raycastMesh(origin, direction, b, closest.Distance)
			if !ok {
				continue
			}
		}

		closest = RaycastHit{
			Body:     b.handle,
			Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
			Normal:   normal,
			Distance: t,
		}
		hit = true
	}

	return closest, hit
}

// raycastAABB is a slab test. A ray starting inside the box reports the
// exit face.
func raycastAABB(origin, dir rl.Vector3, box AABB, maxDistance float32) (float32, rl.Vector3, bool) {
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin, tmax := float32(-math.MaxFloat32), float32(math.MaxFloat32)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, rl.Vector3{}, false
			}
			continue
		}

		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, -sign
		}
		if tmin > tmax {
			return 0, rl.Vector3{}, false
		}
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t < 0 || t > maxDistance || axis < 0 {
		return 0, rl.Vector3{}, false
	}

	var n [3]float32
	n[axis] = sign
	return t, rl.Vector3{X: n[0], Y: n[1], Z: n[2]}, true
}

// raycastMesh returns the nearest triangle hit of a mesh body. The normal
// faces the ray origin.
func raycastMesh(origin, dir rl.Vector3, b *RigidBody, maxDistance float32) (float32, rl.Vector3, bool) {
	best := maxDistance
	var normal rl.Vector3
	hit := false

	forEachTriangle(b.Meshes, b.Pos, func(v1, v2, v3 rl.Vector3) bool {
		t, ok := rayTriangle(origin, dir, v1, v2, v3)
		if !ok || t > best {
			return true
		}
		n := rl.Vector3Normalize(Cross(rl.Vector3Subtract(v2, v1), rl.Vector3Subtract(v3, v1)))
		if Dot(n, dir) > 0 {
			n = rl.Vector3Negate(n)
		}
		best, normal, hit = t, n, true
		return true
	})

	return best, normal, hit
}

// rayTriangle is the Moller-Trumbore intersection, both faces count
func rayTriangle(origin, dir, v1, v2, v3 rl.Vector3) (float32, bool) {
	const eps = 1e-7

	e1 := rl.Vector3Subtract(v2, v1)
	e2 := rl.Vector3Subtract(v3, v1)
	p := Cross(dir, e2)
	det := Dot(e1, p)
	if absf(det) < eps {
		return 0, false
	}
	inv := 1 / det

	s := rl.Vector3Subtract(origin, v1)
	u := Dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := Cross(s, e1)
	v := Dot(dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := Dot(e2, q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
