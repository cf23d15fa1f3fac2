package physics

import (
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bodies spanning more cells than this skip the grid and are paired with
// everything (terrain, long bridges).
const maxCellsPerBody = 64

// cellKey for spatial hashing
type cellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3, cellSize float32) cellKey {
	return cellKey{
		X: int(math.Floor(float64(pos.X / cellSize))),
		Y: int(math.Floor(float64(pos.Y / cellSize))),
		Z: int(math.Floor(float64(pos.Z / cellSize))),
	}
}

// spatialGrid maps cells to the dense indices of the bodies whose padded
// bounds touch them. Bodies are re-inserted as soon as they move, so a
// query always reflects the current poses.
type spatialGrid struct {
	cellSize float32
	slop     float32
	cells    map[cellKey][]int

	// per body: its cells, or nil when oversized
	bodyCells [][]cellKey
	oversized []bool

	seen map[int]struct{}
}

func newSpatialGrid(cellSize float32) *spatialGrid {
	return &spatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
		seen:     make(map[int]struct{}),
	}
}

// rebuild clears and repopulates the grid from the current body bounds
func (g *spatialGrid) rebuild(bodies []*RigidBody, slop float32) {
	clear(g.cells)
	g.slop = slop
	g.bodyCells = slices.Grow(g.bodyCells[:0], len(bodies))[:len(bodies)]
	g.oversized = slices.Grow(g.oversized[:0], len(bodies))[:len(bodies)]

	for i, b := range bodies {
		g.bodyCells[i] = g.bodyCells[i][:0]
		g.insert(i, b)
	}
}

func (g *spatialGrid) insert(i int, b *RigidBody) {
	bounds := boxAABB(&b.Box)
	pad := rl.Vector3{X: g.slop, Y: g.slop, Z: g.slop}
	lo := posToCell(rl.Vector3Subtract(bounds.Min, pad), g.cellSize)
	hi := posToCell(rl.Vector3Add(bounds.Max, pad), g.cellSize)

	span := (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1) * (hi.Z - lo.Z + 1)
	g.oversized[i] = span > maxCellsPerBody
	if g.oversized[i] {
		return
	}

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				key := cellKey{x, y, z}
				g.cells[key] = append(g.cells[key], i)
				g.bodyCells[i] = append(g.bodyCells[i], key)
			}
		}
	}
}

// update moves body i to the cells of its current bounds
func (g *spatialGrid) update(i int, b *RigidBody) {
	for _, key := range g.bodyCells[i] {
		members := g.cells[key]
		if k := slices.Index(members, i); k >= 0 {
			members = slices.Delete(members, k, k+1)
		}
		if len(members) == 0 {
			delete(g.cells, key)
		} else {
			g.cells[key] = members
		}
	}
	g.bodyCells[i] = g.bodyCells[i][:0]
	g.insert(i, b)
}

// candidatesAfter returns, ascending, the bodies above index after that
// share a cell with body i, plus every oversized body above after. An
// oversized i gets every body above after.
func (g *spatialGrid) candidatesAfter(i, after int) []int {
	var out []int
	if g.oversized[i] {
		for j := after + 1; j < len(g.oversized); j++ {
			if j != i {
				out = append(out, j)
			}
		}
		return out
	}

	clear(g.seen)
	for _, key := range g.bodyCells[i] {
		for _, j := range g.cells[key] {
			if j <= after || j == i {
				continue
			}
			if _, ok := g.seen[j]; ok {
				continue
			}
			g.seen[j] = struct{}{}
			out = append(out, j)
		}
	}
	for j := after + 1; j < len(g.oversized); j++ {
		if g.oversized[j] && j != i {
			if _, ok := g.seen[j]; !ok {
				out = append(out, j)
			}
		}
	}
	slices.Sort(out)
	return out
}
