package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/game"
)

// Flat colors used when no sprite is loaded.
var (
	skyColor     = color.RGBA{0x10, 0x14, 0x2c, 0xff}
	menuSkyColor = color.RGBA{0x08, 0x0a, 0x18, 0xff}
	barrierColor = color.RGBA{0x1e, 0xc8, 0x0f, 0xff}
	rocketColor  = color.RGBA{0xe0, 0xe0, 0xe8, 0xff}
	jetColor     = color.RGBA{0x80, 0x84, 0x90, 0xff}
	hitboxColor  = color.RGBA{0xff, 0x30, 0x30, 0xff}
	buttonColor  = color.RGBA{0x30, 0x40, 0x80, 0xe0}
	hoverColor   = color.RGBA{0x50, 0x68, 0xc0, 0xf0}
	shadowColor  = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	textColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	titleColor   = color.RGBA{0xff, 0xd0, 0x40, 0xff}
	captionColor = color.RGBA{0xff, 0x60, 0x60, 0xff}
)

const (
	shadowOffset  = 3.0
	hitboxStroke  = 2
	hudMargin     = 20.0
	hudLineHeight = 44.0
)

// Title shown above the menu buttons.
const Title = "RAKET"

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.world
	inMenu := w.Mode().InMenu()

	if inMenu && g.art.menuBackground != nil {
		drawSprite(screen, g.art.menuBackground, core.NewRect(0, 0, game.WorldWidth, game.WorldHeight), false)
	} else if !inMenu && g.art.background != nil {
		drawSprite(screen, g.art.background, core.NewRect(0, 0, game.WorldWidth, game.WorldHeight), false)
	} else if inMenu {
		screen.Fill(menuSkyColor)
	} else {
		screen.Fill(skyColor)
	}

	if g.art.jet != nil {
		drawSprite(screen, g.art.jet, w.Flyby(), false)
	} else {
		fillRect(screen, w.Flyby(), jetColor)
	}
	for _, o := range w.Obstacles() {
		g.drawObstacle(screen, o)
	}
	// The flat rocket fills its hitbox since the sprite bounds are padded.
	if g.art.rocket != nil {
		drawSprite(screen, g.art.rocket, w.Player().Bounds(), false)
	} else {
		fillRect(screen, w.Player().Hitbox(), rocketColor)
	}

	if w.ShowHitboxes() {
		strokeRect(screen, w.Player().Hitbox())
		for _, o := range w.Obstacles() {
			strokeRect(screen, o.TopRect())
			strokeRect(screen, o.BottomRect())
		}
	}

	drawShadowText(screen, w.ScoreText(), g.art.hudFace, hudMargin, hudMargin, text.AlignStart, textColor)
	drawShadowText(screen, w.DeathText(), g.art.hudFace, hudMargin, hudMargin+hudLineHeight, text.AlignStart, textColor)

	if inMenu {
		g.drawMenu(screen)
	}
}

// drawObstacle draws both barriers. The upper pipe is flipped so its cap
// faces the gap.
func (g *Game) drawObstacle(screen *ebiten.Image, o game.Obstacle) {
	top := visible(o.TopRect())
	bottom := visible(o.BottomRect())

	if g.art.pipe == nil {
		fillRect(screen, top, barrierColor)
		fillRect(screen, bottom, barrierColor)
		return
	}
	drawSprite(screen, g.art.pipe, top, true)
	drawSprite(screen, g.art.pipe, bottom, false)
}

// visible clips r vertically to the world so stretched sprites keep their caps
// on screen.
func visible(r core.Rect) core.Rect {
	y0 := max(r.Y, 0)
	y1 := min(r.Bottom(), game.WorldHeight)
	return core.NewRect(r.X, y0, r.W, max(y1-y0, 0))
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	mode := g.world.Mode()
	primary := game.ButtonRect(game.PrimaryButton(mode))
	cx := game.WorldWidth / 2

	drawShadowText(screen, Title, g.art.titleFace, cx, primary.Y-180, text.AlignCenter, titleColor)
	switch mode {
	case game.ModePaused:
		drawCaption(screen, "PAUSED", g.art.buttonFace, cx, primary.Y-80)
	case game.ModeGameOver:
		drawCaption(screen, "GAME OVER", g.art.buttonFace, cx, primary.Y-80)
	}

	hover := g.hovered()
	for _, b := range game.Buttons(mode) {
		r := game.ButtonRect(b)
		fillRect(screen, r, buttonFill(b == hover))

		_, h := text.Measure(b.String(), g.art.buttonFace, 0)
		c := r.Center()
		drawShadowText(screen, b.String(), g.art.buttonFace, c.X, c.Y-h/2, text.AlignCenter, textColor)
	}
}

// buttonFill brightens a hovered button.
func buttonFill(hovered bool) color.Color {
	if hovered {
		return hoverColor
	}
	return buttonColor
}

func drawCaption(screen *ebiten.Image, s string, face text.Face, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(captionColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// drawShadowText draws s in clr with a drop shadow at (x, y).
func drawShadowText(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Translate(x+shadowOffset, y+shadowOffset)
	op.ColorScale.ScaleWithColor(shadowColor)
	text.Draw(screen, s, face, op)

	op = &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawSprite stretches img over r, optionally flipped vertically.
func drawSprite(screen, img *ebiten.Image, r core.Rect, flipV bool) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(img.Bounds().Dx(), img.Bounds().Dy(), r, flipV)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// spriteGeoM maps an imgW x imgH image onto r.
func spriteGeoM(imgW, imgH int, r core.Rect, flipV bool) ebiten.GeoM {
	var m ebiten.GeoM
	sx := r.W / float64(imgW)
	sy := r.H / float64(imgH)
	if flipV {
		m.Scale(sx, -sy)
		m.Translate(r.X, r.Bottom())
		return m
	}
	m.Scale(sx, sy)
	m.Translate(r.X, r.Y)
	return m
}

func fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r core.Rect) {
	r = visible(r)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), hitboxStroke, hitboxColor, false)
}
