package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/raket/internal/core"
)

// farHitbox is a hitbox that can never touch an obstacle.
var farHitbox = core.NewRect(-5000, -5000, 1, 1)

func newTestField(seed int64) *ObstacleField {
	return NewObstacleField(rand.New(rand.NewSource(seed)))
}

// runField drives a field the way World does, without a player.
func runField(f *ObstacleField, seconds, dt float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		f.Tick(dt)
		f.Advance(dt)
		f.Sweep(-1000, farHitbox)
	}
}

func TestFieldSpawnsEveryPeriod(t *testing.T) {
	const dt = 0.25
	f := newTestField(1)

	runField(f, 2.0-dt, dt)
	if f.Len() != 0 {
		t.Fatalf("Expected no obstacle before 2s, got %d", f.Len())
	}

	runField(f, dt, dt)
	if f.Len() != 1 {
		t.Fatalf("Expected one obstacle at 2s, got %d", f.Len())
	}
	// Spawned at SpawnX, then advanced within the same tick.
	if got := f.Obstacles()[0].X; got != SpawnX-Speed*dt {
		t.Errorf("Obstacle x at 2s = %v, expected %v", got, SpawnX-Speed*dt)
	}
}

func TestFieldObstacleTravelsSpeedPerSecond(t *testing.T) {
	const dt = 0.25
	f := newTestField(2)

	runField(f, 2.0, dt)
	start := f.Obstacles()[0].X

	runField(f, 2.0, dt)
	if got := start - f.Obstacles()[0].X; got != 400 {
		t.Errorf("Obstacle moved %v units in 2s, expected 400", got)
	}
}

func TestFieldTenSeconds(t *testing.T) {
	const dt = 0.25
	f := newTestField(3)

	runField(f, 10.0, dt)

	if f.Spawned() != 5 {
		t.Errorf("Expected 5 obstacles spawned after 10s, got %d", f.Spawned())
	}
	// The first two have scrolled off the left edge.
	if f.Len() != 3 {
		t.Errorf("Expected 3 obstacles still on screen after 10s, got %d", f.Len())
	}
	for _, o := range f.Obstacles() {
		if o.OffScreen() {
			t.Errorf("Off-screen obstacle at x=%v should have been removed", o.X)
		}
	}
}

func TestFieldSpawnOrderIsSpatialOrder(t *testing.T) {
	f := newTestField(4)
	runField(f, 9.0, 1.0/60)

	obs := f.Obstacles()
	for i := 1; i < len(obs); i++ {
		if obs[i-1].X >= obs[i].X {
			t.Errorf("Obstacle %d at x=%v is not left of obstacle %d at x=%v", i-1, obs[i-1].X, i, obs[i].X)
		}
	}
}

func TestFieldGapCenterRange(t *testing.T) {
	f := newTestField(5)
	for i := 0; i < 500; i++ {
		f.Spawn()
	}

	for _, o := range f.Obstacles() {
		if o.GapCenter < GapCenterMin || o.GapCenter >= GapCenterMin+GapCenterRange {
			t.Fatalf("Gap center %v outside [%d, %d)", o.GapCenter, GapCenterMin, GapCenterMin+GapCenterRange)
		}
	}
}

func TestFieldRemovalIffOffScreen(t *testing.T) {
	f := newTestField(6)
	f.obstacles = append(f.obstacles,
		Obstacle{X: -ObstacleWidth - 1, GapCenter: 300},
		Obstacle{X: -ObstacleWidth, GapCenter: 300},
		Obstacle{X: 300, GapCenter: 300},
	)

	res := f.Sweep(-1000, farHitbox)

	if res.Removed != 1 {
		t.Errorf("Expected 1 removed obstacle, got %d", res.Removed)
	}
	if f.Len() != 2 {
		t.Fatalf("Expected 2 remaining obstacles, got %d", f.Len())
	}
	if f.Obstacles()[0].X != -ObstacleWidth {
		t.Errorf("Obstacle with trailing edge at 0 should remain, got x=%v", f.Obstacles()[0].X)
	}
}

func TestFieldPassScoredOnce(t *testing.T) {
	f := newTestField(7)
	f.obstacles = append(f.obstacles, Obstacle{X: 40, GapCenter: 300})

	total := 0
	for i := 0; i < 10; i++ {
		total += f.Sweep(PlayerStartX, farHitbox).Passed
		f.Advance(0.01)
	}

	if total != 1 {
		t.Errorf("Obstacle should be scored exactly once, got %d", total)
	}
	if !f.Obstacles()[0].Passed {
		t.Error("Obstacle should be flagged as passed")
	}
}

func TestFieldCollisionShortCircuits(t *testing.T) {
	f := newTestField(8)
	hitbox := core.NewRect(60, 270, 80, 105)
	f.obstacles = append(f.obstacles,
		Obstacle{X: 80, GapCenter: 600},                  // Upper barrier covers the hitbox
		Obstacle{X: -ObstacleWidth - 50, GapCenter: 300}, // Unvisited: would be removed
	)

	res := f.Sweep(PlayerStartX, hitbox)

	if !res.Hit {
		t.Fatal("Expected a collision")
	}
	if res.Removed != 0 {
		t.Errorf("Sweep should stop at the first collision, removed %d", res.Removed)
	}
	if f.Len() != 2 {
		t.Errorf("Unvisited obstacles should be kept, got %d", f.Len())
	}
}

func TestFieldClearKeepsTimer(t *testing.T) {
	f := newTestField(9)
	runField(f, 3.0, 0.5)

	timer := f.SpawnTimer()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Clear should remove all obstacles, got %d", f.Len())
	}
	if f.SpawnTimer() != timer {
		t.Errorf("Clear should not touch the spawn timer, got %v, expected %v", f.SpawnTimer(), timer)
	}
}
