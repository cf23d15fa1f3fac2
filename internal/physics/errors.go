package physics

import "errors"

var (
	// ErrCapacityExceeded is returned when a body is created in a full world.
	ErrCapacityExceeded = errors.New("physics: world capacity exceeded")

	// ErrInvalidHandle is returned for handles that were never issued or whose body was freed.
	ErrInvalidHandle = errors.New("physics: invalid body handle")

	// ErrEmptyMesh is returned when a mesh-backed body has no vertices to bound.
	ErrEmptyMesh = errors.New("physics: mesh has no vertices")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("physics: invalid config")
)
