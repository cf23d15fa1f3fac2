package physics

import (
	"fmt"
	"math"
)

// Broad-phase modes
const (
	BroadPhaseAllPairs = "all-pairs"
	BroadPhaseGrid     = "grid"
)

// Tolerances used when no world config is involved
const (
	DefaultContactSlop     = 1e-4
	DefaultParallelEpsilon = 1e-6
)

// Config holds the tunables of a World
type Config struct {
	// Gravity is the downward acceleration applied to ungrounded rigid bodies
	Gravity float32 `yaml:"gravity"`

	// Capacity is the hard ceiling on live bodies
	Capacity int `yaml:"capacity"`

	// GroundLevel is the height at or below which gravity is not applied
	GroundLevel float32 `yaml:"groundLevel"`

	// MaxSlopeDegrees is the steepest contact, measured from world up, that
	// still supports a body
	MaxSlopeDegrees float32 `yaml:"maxSlopeDegrees"`

	// ContactSlop is the projection gap still treated as touching
	ContactSlop float32 `yaml:"contactSlop"`

	// ParallelEpsilon drops edge-cross axes shorter than this
	ParallelEpsilon float32 `yaml:"parallelEpsilon"`

	BroadPhase string  `yaml:"broadPhase"`
	CellSize   float32 `yaml:"cellSize"`
}

// DefaultConfig returns the settings used by the sandbox scene
func DefaultConfig() Config {
	return Config{
		Gravity:         9.81,
		Capacity:        256,
		GroundLevel:     0.15,
		MaxSlopeDegrees: 45,
		ContactSlop:     DefaultContactSlop,
		ParallelEpsilon: DefaultParallelEpsilon,
		BroadPhase:      BroadPhaseAllPairs,
		CellSize:        5.0,
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.MaxSlopeDegrees <= 0 || c.MaxSlopeDegrees > 90:
		return fmt.Errorf("%w: maxSlopeDegrees must be in (0, 90], got %g", ErrInvalidConfig, c.MaxSlopeDegrees)
	case c.ContactSlop < 0:
		return fmt.Errorf("%w: contactSlop must not be negative, got %g", ErrInvalidConfig, c.ContactSlop)
	case c.ParallelEpsilon < 0:
		return fmt.Errorf("%w: parallelEpsilon must not be negative, got %g", ErrInvalidConfig, c.ParallelEpsilon)
	case c.BroadPhase != BroadPhaseAllPairs && c.BroadPhase != BroadPhaseGrid:
		return fmt.Errorf("%w: unknown broadPhase %q", ErrInvalidConfig, c.BroadPhase)
	case c.BroadPhase == BroadPhaseGrid && c.CellSize <= 0:
		return fmt.Errorf("%w: cellSize must be positive, got %g", ErrInvalidConfig, c.CellSize)
	}
	return nil
}

// minWalkable is the smallest n·up a supporting contact normal may have
func (c Config) minWalkable() float32 {
	return float32(math.Cos(float64(c.MaxSlopeDegrees) * math.Pi / 180))
}

type tolerance struct {
	slop     float32
	parallel float32
}

var defaultTolerance = tolerance{slop: DefaultContactSlop, parallel: DefaultParallelEpsilon}

func (c Config) tolerance() tolerance {
	return tolerance{slop: c.ContactSlop, parallel: c.ParallelEpsilon}
}
