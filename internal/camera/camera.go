package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Follow orbits a target at a fixed distance. Yaw and Pitch are degrees.
type Follow struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	ZoomSpeed float32
}

func New(target rl.Vector3) *Follow {
	return &Follow{
		Target:    target,
		Distance:  10,
		Yaw:       -135.0,
		Pitch:     30.0,
		LookSpeed: 0.2,
		ZoomSpeed: 1.0,
	}
}

// Update follows target; the right mouse button orbits, the wheel zooms
func (c *Follow) Update(target rl.Vector3) {
	c.Target = target

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Orbit(delta.X*c.LookSpeed, delta.Y*c.LookSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(-wheel * c.ZoomSpeed)
	}
}

// Orbit turns the camera, keeping pitch between 5 and 85 degrees
func (c *Follow) Orbit(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch = min(max(c.Pitch+pitch, 5), 85)
}

// Zoom changes the distance, kept between 2 and 50
func (c *Follow) Zoom(delta float32) {
	c.Distance = min(max(c.Distance+delta, 2), 50)
}

// Position returns the eye position for the current orbit
func (c *Follow) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	return rl.Vector3{
		X: c.Target.X - c.Distance*float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: c.Target.Y + c.Distance*float32(math.Sin(pitchRad)),
		Z: c.Target.Z - c.Distance*float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}
}

// Directions returns the horizontal forward and right vectors, for
// camera-relative movement
func (c *Follow) Directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (c *Follow) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
