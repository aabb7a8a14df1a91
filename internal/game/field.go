package game

import (
	"math/rand"

	"github.com/vovakirdan/raket/internal/core"
)

// SweepResult reports what happened during one obstacle sweep.
type SweepResult struct {
	Passed  int  // Obstacles newly passed this sweep
	Removed int  // Obstacles that left the screen
	Hit     bool // Whether the hitbox collided with a barrier
}

// ObstacleField handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order, which is also left-to-right order
// because they all move at the same speed.
type ObstacleField struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	spawnTimer float64
	spawned    int
}

// NewObstacleField creates an empty field with the given RNG.
func NewObstacleField(rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
	}
}

// Clear removes all obstacles. The spawn timer keeps running.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Tick accumulates the spawn timer and spawns an obstacle when it is due.
// Returns true if an obstacle was spawned.
func (f *ObstacleField) Tick(dt float64) bool {
	f.spawnTimer += dt
	if f.spawnTimer < SpawnPeriod {
		return false
	}
	f.spawnTimer = 0
	f.Spawn()
	return true
}

// Spawn appends a new obstacle at the right edge with a random gap center.
func (f *ObstacleField) Spawn() {
	gap := float64(GapCenterMin + f.rng.Intn(GapCenterRange))
	f.obstacles = append(f.obstacles, Obstacle{
		X:         SpawnX,
		GapCenter: gap,
	})
	f.spawned++
}

// Advance moves every obstacle left by Speed*dt.
func (f *ObstacleField) Advance(dt float64) {
	dx := -Speed * dt
	for i := range f.obstacles {
		f.obstacles[i].Move(dx)
	}
}

// Sweep removes off-screen obstacles, scores obstacles the player has passed,
// and tests the hitbox against each remaining obstacle, all in one pass.
//
// The sweep stops at the first collision. Obstacles after it keep their
// state for this tick; the caller is expected to end the round.
func (f *ObstacleField) Sweep(playerX float64, hitbox core.Rect) SweepResult {
	var res SweepResult

	kept := f.obstacles[:0]
	for i := range f.obstacles {
		o := f.obstacles[i]
		if res.Hit {
			kept = append(kept, o)
			continue
		}
		if o.OffScreen() {
			res.Removed++
			continue
		}
		if !o.Passed && o.PassedBy(playerX) {
			o.Passed = true
			res.Passed++
		}
		if o.Collides(hitbox) {
			res.Hit = true
		}
		kept = append(kept, o)
	}
	f.obstacles = kept

	return res
}

// Obstacles returns the active obstacles in spawn order.
// The returned slice must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of active obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Spawned returns the total number of obstacles spawned since creation.
func (f *ObstacleField) Spawned() int {
	return f.spawned
}

// SpawnTimer returns the seconds accumulated toward the next spawn.
func (f *ObstacleField) SpawnTimer() float64 {
	return f.spawnTimer
}
