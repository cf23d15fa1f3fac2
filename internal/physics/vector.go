package physics

import rl "github.com/gen2brain/raylib-go/raylib"

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// Dot returns the dot product of a and b
func Dot(a, b rl.Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b
func Cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// CrossNormalized returns the unit cross product of a and b.
// Parallel or zero inputs yield the zero vector.
func CrossNormalized(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3Normalize(Cross(a, b))
}

// Distance returns the euclidean distance between two points
func Distance(a, b rl.Vector3) float32 {
	return rl.Vector3Distance(a, b)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vector3Min(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

func vector3Max(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}

// axisOr returns n, or fallback when n collapsed to zero
func axisOr(n, fallback rl.Vector3) rl.Vector3 {
	if rl.Vector3Length(n) < 0.5 {
		return fallback
	}
	return n
}
