package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// contact is one pair handed to a resolver. info.Direction pushes a out of b.
type contact struct {
	a, b        *RigidBody
	info        CollisionInfo
	dt          float32
	minWalkable float32
}

// resolver applies a contact and reports whether it supports body a and
// body b
type resolver func(c *contact) (aSupported, bSupported bool)

type pairKey struct {
	a, b BodyType
}

// resolvers selects the response for each body-type pairing. Pairs missing
// from the table, phantoms among them, are left overlapping.
var resolvers = map[pairKey]resolver{
	{Rigid, Rigid}:          resolveSplit,
	{Rigid, RigidFixed}:     resolveAgainstFixed,
	{RigidFixed, Rigid}:     resolveFixedAgainst,
	{Rigid, Kinematic}:      resolveAgainstMoving,
	{Kinematic, Rigid}:      resolvePushOther,
	{Kinematic, RigidFixed}: resolveAgainstFixed,
	{RigidFixed, Kinematic}: resolveFixedAgainst,
}

func resolverFor(a, b BodyType) resolver {
	if r, ok := resolvers[pairKey{a, b}]; ok {
		return r
	}
	return resolveNone
}

func resolveNone(*contact) (bool, bool) {
	return false, false
}

// supports reports whether a contact pushing a body along n holds it up
func supports(n rl.Vector3, minWalkable float32) bool {
	return Dot(n, worldUp) >= minWalkable
}

// resolveSplit pushes two rigid bodies half the penetration each. The
// upper body of a stack is the supported one.
func resolveSplit(c *contact) (bool, bool) {
	dir := c.info.Direction
	half := rl.Vector3Scale(dir, c.info.Length/2)

	c.a.Translate(half)
	c.b.Translate(rl.Vector3Negate(half))

	removeApproach(c.a, dir)
	removeApproach(c.b, rl.Vector3Negate(dir))

	return supports(dir, c.minWalkable), supports(rl.Vector3Negate(dir), c.minWalkable)
}

// resolveAgainstFixed moves a the full penetration out of an immovable b.
// Contacts steeper than the walkable slope are resolved horizontally only,
// so a body slides off them instead of climbing.
func resolveAgainstFixed(c *contact) (bool, bool) {
	offset, normal, supported := slopeOffset(c.info.Direction, c.info.Length, c.minWalkable)
	c.a.Translate(offset)
	removeApproach(c.a, normal)
	return supported, false
}

// resolveFixedAgainst mirrors resolveAgainstFixed for an immovable a
func resolveFixedAgainst(c *contact) (bool, bool) {
	mirrored := *c
	mirrored.a, mirrored.b = c.b, c.a
	mirrored.info.Direction = rl.Vector3Negate(c.info.Direction)
	mirrored.info.BaseDirection = rl.Vector3Negate(c.info.BaseDirection)
	supported, _ := resolveAgainstFixed(&mirrored)
	return false, supported
}

// resolveAgainstMoving corrects a against a body that moves on its own.
// A body still approaching (or at rest) takes the full offset; one already
// separating is corrected along its own velocity by the broad-phase depth,
// never further than it travelled this step.
func resolveAgainstMoving(c *contact) (bool, bool) {
	if Dot(c.a.Vel, c.info.BaseDirection) <= 0 {
		c.a.Translate(c.info.MTV())
		removeApproach(c.a, c.info.Direction)
	} else {
		speed := rl.Vector3Length(c.a.Vel)
		if speed > 0 {
			step := min(c.info.BaseLength, speed*c.dt)
			c.a.Translate(rl.Vector3Scale(c.a.Vel, step/speed))
		}
	}
	return supports(c.info.Direction, c.minWalkable), false
}

// resolvePushOther moves b fully out of a kinematic a; b rests on a when
// pushed upward
func resolvePushOther(c *contact) (bool, bool) {
	out := rl.Vector3Negate(c.info.Direction)
	c.b.Translate(rl.Vector3Negate(c.info.MTV()))
	removeApproach(c.b, out)
	return false, supports(out, c.minWalkable)
}

// slopeOffset returns the correction for a contact normal n, the normal the
// velocity should be clipped against, and whether the contact is walkable.
func slopeOffset(n rl.Vector3, length, minWalkable float32) (rl.Vector3, rl.Vector3, bool) {
	slope := Dot(n, worldUp)
	if slope >= minWalkable {
		return rl.Vector3Scale(n, length), n, true
	}
	if slope <= 0 {
		// walls and ceilings
		return rl.Vector3Scale(n, length), n, false
	}

	// Too steep: push along the horizontal part of n, scaled so the
	// separation along n is unchanged.
	h := rl.Vector3{X: n.X, Z: n.Z}
	hl := rl.Vector3Length(h)
	if hl < 1e-6 {
		return rl.Vector3Scale(n, length), n, false
	}
	return rl.Vector3Scale(h, length/(hl*hl)), rl.Vector3Scale(h, 1/hl), false
}

// removeApproach drops the part of the body velocity heading into the
// contact along n
func removeApproach(r *RigidBody, n rl.Vector3) {
	if d := Dot(r.Vel, n); d < 0 {
		r.Vel = rl.Vector3Subtract(r.Vel, rl.Vector3Scale(n, d))
	}
}
