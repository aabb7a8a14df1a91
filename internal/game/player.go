package game

import "github.com/vovakirdan/raket/internal/core"

// Player is the rocket controlled by the user.
// Its x-position never changes; only gravity and impulses move it vertically.
type Player struct {
	Pos      core.Vec // Sprite center
	Velocity float64  // Vertical velocity, positive = down
}

// NewPlayer creates a player at the start position.
func NewPlayer() Player {
	p := Player{}
	p.Reset()
	return p
}

// Reset puts the player back at the start position, at rest.
func (p *Player) Reset() {
	p.Pos = core.Vec{X: PlayerStartX, Y: PlayerStartY}
	p.Velocity = 0
}

// Flap overrides the vertical velocity with the impulse constant.
// Repeated impulses simply override each other.
func (p *Player) Flap() {
	p.Velocity = FlapStrength
}

// Update integrates gravity over dt seconds.
func (p *Player) Update(dt float64) {
	p.Velocity += Gravity * dt
	p.Pos.Y += p.Velocity * dt
}

// Bounds returns the full visual bounds of the sprite.
func (p Player) Bounds() core.Rect {
	return core.RectFromCenter(p.Pos, PlayerWidth, PlayerHeight)
}

// Hitbox returns the inset rectangle used for collision tests.
func (p Player) Hitbox() core.Rect {
	return p.Bounds().Inset(HitboxInsetLeft, HitboxInsetTop, HitboxInsetRight, HitboxInsetBottom)
}

// OutOfBounds reports whether the player has left the survivable vertical range.
func (p Player) OutOfBounds() bool {
	return p.Pos.Y > DeathFloor || p.Pos.Y < DeathCeiling
}
