package tui

import (
	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/game"
)

// Glyphs used to draw the world.
const (
	BarrierChar    = '█'
	BarrierCapTop  = '▀'
	BarrierCapDown = '▄'
	RocketNose     = '▲'
	RocketBody     = '█'
	RocketFlame    = '▼'
	JetBody        = '='
	JetNose        = '>'
	StarChar       = '·'
)

// Title shown above the menu buttons.
const Title = "R A K E T"

// Draw renders the world into dst using vp for the world-to-cell mapping.
// The world is only read.
func Draw(dst *core.Screen, w *game.World, vp Viewport) {
	dst.Clear()
	drawSky(dst)

	drawJet(dst, vp, w.Flyby())
	for _, o := range w.Obstacles() {
		drawObstacle(dst, vp, o)
	}
	drawRocket(dst, vp, w.Player())

	if w.ShowHitboxes() {
		drawHitboxes(dst, vp, w)
	}

	dst.DrawTextColored(1, 0, w.ScoreText(), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, w.DeathText(), core.ColorGray)

	if w.Mode().InMenu() {
		drawMenu(dst, vp, w.Mode())
	}
}

// drawSky scatters a fixed star pattern so motion is easier to read.
func drawSky(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := (y * 7) % 13; x < dst.Width(); x += 13 + y%5 {
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}
}

func drawObstacle(dst *core.Screen, vp Viewport, o game.Obstacle) {
	top := vp.ToCells(o.TopRect())
	bottom := vp.ToCells(o.BottomRect())

	dst.DrawRect(top, BarrierChar, core.ColorGreen)
	dst.DrawRect(bottom, BarrierChar, core.ColorGreen)

	// Caps on the gap edges
	dst.DrawHLine(top.X, top.Bottom()-1, top.W, BarrierCapDown, core.ColorBrightGreen)
	dst.DrawHLine(bottom.X, bottom.Y, bottom.W, BarrierCapTop, core.ColorBrightGreen)
}

// drawRocket draws the rocket inside its hitbox; the sprite padding is empty.
func drawRocket(dst *core.Screen, vp Viewport, p game.Player) {
	c := vp.ToCells(p.Hitbox())
	mid := c.X + c.W/2

	dst.DrawRect(core.NewCells(c.X, c.Y+1, c.W, max(c.H-2, 1)), RocketBody, core.ColorWhite)
	dst.SetColored(mid, c.Y, RocketNose, core.ColorBrightRed)
	if c.H > 1 {
		dst.DrawHLine(c.X, c.Bottom()-1, c.W, RocketFlame, core.ColorOrange)
	}
}

func drawJet(dst *core.Screen, vp Viewport, bounds core.Rect) {
	c := vp.ToCells(bounds)
	row := c.Y + c.H/2
	dst.DrawHLine(c.X, row, c.W, JetBody, core.ColorGray)
	dst.SetColored(c.Right()-1, row, JetNose, core.ColorWhite)
}

func drawHitboxes(dst *core.Screen, vp Viewport, w *game.World) {
	dst.DrawBox(vp.ToCells(w.Player().Hitbox()), core.ColorBrightRed)
	for _, o := range w.Obstacles() {
		dst.DrawBox(vp.ToCells(o.TopRect()), core.ColorRed)
		dst.DrawBox(vp.ToCells(o.BottomRect()), core.ColorRed)
	}
}

func drawMenu(dst *core.Screen, vp Viewport, mode game.Mode) {
	first := vp.ToCells(game.ButtonRect(game.PrimaryButton(mode)))

	titleY := max(first.Y-3, 0)
	dst.DrawTextColored((dst.Width()-len([]rune(Title)))/2, titleY, Title, core.ColorBrightYellow)

	switch mode {
	case game.ModePaused:
		drawCaption(dst, titleY+1, "PAUSED", core.ColorYellow)
	case game.ModeGameOver:
		drawCaption(dst, titleY+1, "GAME OVER", core.ColorBrightRed)
	}

	for _, b := range game.Buttons(mode) {
		drawButton(dst, vp.ToCells(game.ButtonRect(b)), b.String())
	}
}

func drawCaption(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextColored((dst.Width()-len([]rune(text)))/2, y, text, c)
}

// drawButton draws a boxed label, or a bracketed one if the button is too
// short for a box.
func drawButton(dst *core.Screen, c core.Cells, label string) {
	dst.DrawRect(c, ' ', core.ColorDefault)
	if c.H >= 3 {
		dst.DrawBox(c, core.ColorBrightBlue)
	} else {
		label = "[ " + label + " ]"
	}

	n := len([]rune(label))
	x := c.X + (c.W-n)/2
	dst.DrawTextColored(x, c.Y+c.H/2, label, core.ColorBrightWhite)
}
