package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// NoContact is the length sentinel of a CollisionInfo without contact
const NoContact float32 = -1

// CollisionInfo is the result of a pairwise test.
//
// BaseLength/BaseDirection come from the broad phase: the minimum AABB
// overlap and its axis, or NoContact. Length/Direction are the narrow-phase
// penetration and unit axis pushing the first body out of the second, or
// NoContact. Always check the lengths before reading a direction.
type CollisionInfo struct {
	BaseLength    float32
	BaseDirection rl.Vector3

	Length    float32
	Direction rl.Vector3

	// Triangle is the governing triangle of a mesh contact, in world space
	Triangle [3]rl.Vector3
}

func noContact() CollisionInfo {
	return CollisionInfo{BaseLength: NoContact, Length: NoContact}
}

// Overlapping reports whether the broad phase found overlapping bounds
func (c CollisionInfo) Overlapping() bool {
	return c.BaseLength >= 0
}

// Colliding reports whether the narrow phase found a genuine contact
func (c CollisionInfo) Colliding() bool {
	return c.Length >= 0
}

// MTV returns the translation that separates the first body, or zero
func (c CollisionInfo) MTV() rl.Vector3 {
	if !c.Colliding() {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(c.Direction, c.Length)
}

// CheckCollisionAABB runs the broad phase on two bodies. Only the Base
// fields of the result are filled.
func CheckCollisionAABB(a, b *RigidBody) CollisionInfo {
	return checkAABB(a, b, defaultTolerance)
}

// CheckCollision runs the broad phase and, when bounds overlap, the narrow
// phase matching the shapes: box against mesh through SAT, box against box
// through the exact axis-aligned overlap.
func CheckCollision(a, b *RigidBody) CollisionInfo {
	return checkCollision(a, b, defaultTolerance)
}

func checkAABB(a, b *RigidBody, tol tolerance) CollisionInfo {
	info := noContact()
	boxA, boxB := boxAABB(&a.Box), boxAABB(&b.Box)
	if !boxA.Intersects(boxB, tol.slop) {
		return info
	}
	info.BaseLength, info.BaseDirection = boxA.Resolve(boxB)
	return info
}

func checkCollision(a, b *RigidBody, tol tolerance) CollisionInfo {
	base := checkAABB(a, b, tol)
	if !base.Overlapping() {
		return base
	}

	var info CollisionInfo
	switch {
	case b.HasMesh():
		info = collideBoxMesh(a, b, tol)
	case a.HasMesh():
		info = collideBoxMesh(b, a, tol)
		if info.Colliding() {
			info.Direction = rl.Vector3Negate(info.Direction)
		}
	default:
		info = base
		info.Length, info.Direction = base.BaseLength, base.BaseDirection
	}

	info.BaseLength, info.BaseDirection = base.BaseLength, base.BaseDirection
	return info
}
