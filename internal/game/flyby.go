package game

import (
	"math/rand"

	"github.com/vovakirdan/raket/internal/core"
)

// Flyby is the decorative jet that crosses the sky from time to time.
// It has no effect on gameplay.
type Flyby struct {
	Pos      core.Vec
	timer    float64
	interval float64
	cued     bool
	rng      *rand.Rand
}

// NewFlyby creates a jet parked off the left edge.
func NewFlyby(rng *rand.Rand) *Flyby {
	return &Flyby{
		Pos:      core.Vec{X: FlybyStartX, Y: FlybyStartY},
		interval: FlybyFirstInterval,
		rng:      rng,
	}
}

// Update advances the jet. It idles until its interval has elapsed, then
// flies right until it leaves the screen and parks again at a random altitude.
// Returns true the first time the jet enters the visible area during a pass.
func (f *Flyby) Update(dt float64) bool {
	f.timer += dt
	if f.timer < f.interval {
		return false
	}

	f.Pos.X += FlybySpeed * dt

	entered := false
	if f.Pos.X > 0 && !f.cued {
		f.cued = true
		entered = true
	}

	if f.Pos.X > FlybyExitX {
		f.Pos = core.Vec{
			X: FlybyStartX,
			Y: float64(FlybyAltitudeMin + f.rng.Intn(FlybyAltitudeRange)),
		}
		f.cued = false
		f.timer = 0
		f.interval = float64(FlybyIntervalMin + f.rng.Intn(FlybyIntervalRange))
	}

	return entered
}

// Flying reports whether the jet is currently crossing the screen.
func (f *Flyby) Flying() bool {
	return f.timer >= f.interval
}

// Interval returns the idle time before the next pass.
func (f *Flyby) Interval() float64 {
	return f.interval
}

// Bounds returns the jet's visual bounds.
func (f *Flyby) Bounds() core.Rect {
	return core.NewRect(f.Pos.X, f.Pos.Y, FlybyWidth, FlybyHeight)
}
