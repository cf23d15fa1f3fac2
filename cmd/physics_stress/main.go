// Stress test comparing the all-pairs and grid broad phases on a world of
// falling crates
package main

import (
	"fmt"
	"math/rand"
	"time"

	"alpha3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	steps = 60
	dt    = 1.0 / 60
)

func main() {
	testCounts := []int{50, 100, 200, 500, 1000}

	for _, count := range testCounts {
		all, allContacts := runWorld(count, physics.BroadPhaseAllPairs)
		grid, gridContacts := runWorld(count, physics.BroadPhaseGrid)
		if all < 0 || grid < 0 {
			continue
		}

		speedup := float64(all) / float64(grid)
		fmt.Printf("%5d bodies: all-pairs %10v (%5d contacts) | grid %10v (%5d contacts) | %.1fx speedup\n",
			count, all.Round(time.Microsecond), allContacts,
			grid.Round(time.Microsecond), gridContacts, speedup)
	}
}

// runWorld returns the mean step time and the contact count of the last step
func runWorld(count int, broadPhase string) (time.Duration, int) {
	cfg := physics.DefaultConfig()
	cfg.BroadPhase = broadPhase
	cfg.Capacity = count + 1

	w, err := physics.NewWorld(cfg)
	if err != nil {
		fmt.Printf("%5d bodies: %s ERROR: %v\n", count, broadPhase, err)
		return -1, 0
	}

	// Spawn area scales with count to keep density reasonable
	half := float32(20) + float32(count)/20
	floor := physics.NewMesh([]float32{
		-half, 0, -half,
		-half, 0, half,
		half, 0, half,
		half, 0, -half,
	}, []uint16{0, 1, 2, 0, 2, 3})
	if _, err := w.CreateRigidBodyFromMesh(physics.RigidFixed, []rl.Mesh{floor}, rl.Vector3{}); err != nil {
		fmt.Printf("%5d bodies: %s ERROR: %v\n", count, broadPhase, err)
		return -1, 0
	}

	rng := rand.New(rand.NewSource(42)) // Consistent results
	for i := 0; i < count; i++ {
		pos := rl.Vector3{
			X: rng.Float32()*2*half - half,
			Y: 0.5 + rng.Float32()*10,
			Z: rng.Float32()*2*half - half,
		}
		size := 0.5 + rng.Float32()
		if _, err := w.CreateRigidBody(physics.Rigid, pos, rl.Vector3{X: size, Y: size, Z: size}); err != nil {
			fmt.Printf("%5d bodies: %s ERROR: %v\n", count, broadPhase, err)
			return -1, 0
		}
	}

	// Warm up
	w.Step(dt)

	start := time.Now()
	for i := 0; i < steps; i++ {
		w.Step(dt)
	}
	return time.Since(start) / steps, len(w.Contacts())
}
