package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// Clip distances of the sandbox projection
const (
	nearPlane = 0.1
	farPlane  = 1000.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0 with a unit normal pointing inside
type plane struct {
	normal   rl.Vector3
	distance float32
}

// NewFrustum extracts the planes of cam's view-projection (Gribb/Hartmann).
// aspect is width over height of the viewport.
func NewFrustum(cam rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)

	var proj rl.Matrix
	if cam.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	} else {
		halfH := cam.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
	}

	// VP = P * V
	m := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		f.planes[2*i] = planeFrom(rows[3], rows[i], 1)
		f.planes[2*i+1] = planeFrom(rows[3], rows[i], -1)
	}
	return f
}

// planeFrom builds w + sign*r and normalizes it
func planeFrom(w, r [4]float32, sign float32) plane {
	p := plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	}

	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1.0/length)
	p.distance /= length
	return p
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, point)+p.distance < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB reports whether the box is at least partly inside. It tests
// the corner furthest along each plane normal, so a box straddling two
// planes outside a frustum corner can still pass.
func (f *Frustum) ContainsAABB(min, max rl.Vector3) bool {
	for _, p := range f.planes {
		corner := min
		if p.normal.X >= 0 {
			corner.X = max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = max.Z
		}
		if rl.Vector3DotProduct(p.normal, corner)+p.distance < 0 {
			return false
		}
	}
	return true
}
