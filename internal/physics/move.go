package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// TryMove translates a body by delta and keeps the move only if it leaves
// the body clear of every solid body. Touching contacts within the contact
// slop do not block. It reports whether the move was kept.
func (w *World) TryMove(h Handle, delta rl.Vector3) (bool, error) {
	b, err := w.lookup(h)
	if err != nil {
		return false, err
	}

	prev := b.Pos
	b.Translate(delta)

	for _, other := range w.bodies {
		if other == b || other.Type == Phantom {
			continue
		}
		info := checkCollision(b, other, w.tol)
		if info.Colliding() && info.Length > w.tol.slop {
			b.SetPosition(prev)
			return false, nil
		}
	}
	return true, nil
}
