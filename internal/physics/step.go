package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Step advances the world by dt seconds: gravity and integration, then
// pairwise detection and resolution in pair-index order, then contact
// events. Bodies corrected by one pair are seen corrected by later pairs.
func (w *World) Step(dt float32) {
	w.integrate(dt)
	w.resolveContacts(dt)
	w.dispatchContactEvents()
}

func (w *World) integrate(dt float32) {
	for _, b := range w.bodies {
		switch b.Type {
		case Rigid:
			if !b.Grounded && b.Pos.Y > w.cfg.GroundLevel {
				b.Vel.Y -= w.Gravity * dt
			}
		case Kinematic:
		default:
			continue
		}
		b.SetPosition(rl.Vector3Add(b.Pos, rl.Vector3Scale(b.Vel, dt)))
	}
}

func (w *World) resolveContacts(dt float32) {
	for _, b := range w.bodies {
		if b.Type.movable() {
			b.Grounded = false
		}
	}
	w.contacts = w.contacts[:0]

	w.forEachPair(func(i, j int) {
		a, b, ok := orient(w.bodies[i], w.bodies[j])
		if !ok {
			return
		}

		info := checkCollision(a, b, w.tol)
		if !info.Colliding() {
			return
		}

		w.contacts = append(w.contacts, Contact{A: a.handle, B: b.handle, Info: info})
		aSupported, bSupported := w.resolve(a, b, info, dt)
		if aSupported {
			a.Grounded = true
		}
		if bSupported && b.Type.movable() {
			b.Grounded = true
		}
	})
}

// forEachPair visits candidate pairs with i < j, i ascending then j
// ascending. In grid mode bodies moved by a correction are re-inserted
// before the next pair, and the remaining partners of i are queried again
// whenever i itself moves, so every pair overlapping at its turn is visited
// just as in the all-pairs loop.
func (w *World) forEachPair(fn func(i, j int)) {
	if w.grid == nil {
		for i := 0; i < len(w.bodies); i++ {
			for j := i + 1; j < len(w.bodies); j++ {
				fn(i, j)
			}
		}
		return
	}

	w.grid.rebuild(w.bodies, w.tol.slop)
	for i := 0; i < len(w.bodies); i++ {
		bi := w.bodies[i]
		candidates := w.grid.candidatesAfter(i, i)
		for k := 0; k < len(candidates); k++ {
			j := candidates[k]
			bj := w.bodies[j]
			prevI, prevJ := bi.Pos, bj.Pos

			fn(i, j)

			if bj.Pos != prevJ {
				w.grid.update(j, bj)
			}
			if bi.Pos != prevI {
				w.grid.update(i, bi)
				candidates = append(candidates[:k+1], w.grid.candidatesAfter(i, j)...)
			}
		}
	}
}

// orient puts the body that moves first. A rigid body goes before a
// kinematic one whatever their order, so that pairing always takes the
// velocity-aware response. Pairs where neither body moves are skipped.
func orient(a, b *RigidBody) (*RigidBody, *RigidBody, bool) {
	switch {
	case a.Type == Kinematic && b.Type == Rigid:
		return b, a, true
	case a.Type.movable():
		return a, b, true
	case b.Type.movable():
		return b, a, true
	}
	return nil, nil, false
}

// dispatchContactEvents sends enter/exit for pairs that changed since the
// last step
func (w *World) dispatchContactEvents() {
	current := make(map[pairID]Contact, len(w.contacts))
	for _, c := range w.contacts {
		current[makePairID(c.A, c.B)] = c
	}

	for _, c := range w.contacts {
		if _, ok := w.activeContact[makePairID(c.A, c.B)]; !ok {
			w.OnContactEnter.Invoke(c)
		}
	}
	for id, c := range w.activeContact {
		if _, ok := current[id]; !ok {
			w.OnContactExit.Invoke(c)
		}
	}

	w.activeContact = current
}
