package game

import "github.com/vovakirdan/raket/internal/core"

// Obstacle is a pair of barriers with a gap the player must fly through.
type Obstacle struct {
	X         float64 // Left edge
	GapCenter float64 // Vertical center of the gap
	Passed    bool    // Whether the player has passed this obstacle (scored once)
}

// GapTop returns the y-coordinate where the upper barrier ends.
func (o Obstacle) GapTop() float64 {
	return o.GapCenter - GapSize/2
}

// GapBottom returns the y-coordinate where the lower barrier starts.
func (o Obstacle) GapBottom() float64 {
	return o.GapCenter + GapSize/2
}

// TopRect returns the collision rectangle of the upper barrier.
// It reaches one world height above the visible area so the player
// cannot slip over the top of it.
func (o Obstacle) TopRect() core.Rect {
	top := -WorldHeight
	return core.NewRect(o.X, top, ObstacleWidth, o.GapTop()-top)
}

// BottomRect returns the collision rectangle of the lower barrier.
// It reaches one world height below the visible area.
func (o Obstacle) BottomRect() core.Rect {
	return core.NewRect(o.X, o.GapBottom(), ObstacleWidth, 2*WorldHeight-o.GapBottom())
}

// Move translates the obstacle horizontally by dx.
func (o *Obstacle) Move(dx float64) {
	o.X += dx
}

// OffScreen reports whether the trailing edge has left the visible area.
func (o Obstacle) OffScreen() bool {
	return o.X+ObstacleWidth < 0
}

// PassedBy reports whether something at horizontal position x has flown
// past the obstacle's scoring edge.
func (o Obstacle) PassedBy(x float64) bool {
	return o.X+PassOffset < x
}

// Collides reports whether the hitbox overlaps either barrier.
func (o Obstacle) Collides(hitbox core.Rect) bool {
	return hitbox.Intersects(o.TopRect()) || hitbox.Intersects(o.BottomRect())
}
