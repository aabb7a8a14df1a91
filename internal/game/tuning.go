// Package game implements the raket simulation: a rocket that falls under
// gravity, climbs on impulses, and threads through a stream of gap obstacles.
//
// The package is pure logic. Front-ends feed it a core.InputFrame and the
// elapsed frame time, then draw the World read-only.
package game

// World dimensions in world units.
const (
	WorldWidth  = 1080.0
	WorldHeight = 720.0
)

// Player tuning.
const (
	Gravity      = 1000.0 // Downward acceleration, units/s²
	FlapStrength = -350.0 // Velocity set by an impulse (negative = up)

	PlayerStartX = 100.0
	PlayerStartY = 300.0

	// Visual bounds of the rocket sprite, centered on the player position.
	PlayerWidth  = 200.0
	PlayerHeight = 260.0

	// Hitbox inset from the visual bounds.
	HitboxInsetLeft   = 60.0
	HitboxInsetTop    = 100.0
	HitboxInsetRight  = 60.0
	HitboxInsetBottom = 55.0

	// Vertical range outside of which the player dies.
	DeathCeiling = -100.0
	DeathFloor   = 700.0
)

// Obstacle tuning.
const (
	ObstacleWidth  = 104.0
	GapSize        = 250.0
	GapCenterMin   = 200 // Inclusive
	GapCenterRange = 250 // Gap center sampled from [GapCenterMin, GapCenterMin+GapCenterRange)

	SpawnX      = 1100.0
	SpawnPeriod = 2.0   // Seconds between spawns
	Speed       = 200.0 // Leftward speed, units/s

	// An obstacle counts as passed once X+PassOffset is behind the player.
	PassOffset = 52.0
)

// Flyby tuning.
const (
	FlybySpeed         = 450.0
	FlybyStartX        = -300.0
	FlybyStartY        = 100.0
	FlybyExitX         = 1200.0
	FlybyFirstInterval = 8.0
	FlybyIntervalMin   = 6
	FlybyIntervalRange = 6
	FlybyAltitudeMin   = 50
	FlybyAltitudeRange = 200
	FlybyWidth         = 240.0
	FlybyHeight        = 80.0
)
