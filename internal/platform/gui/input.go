package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/game"
)

// keyActions maps keyboard keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionFlap,
	ebiten.KeyUp:     core.ActionFlap,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyH:      core.ActionToggleHitboxes,
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.KeyQ:      core.ActionQuit,
	ebiten.KeyEscape: core.ActionQuit,
}

// cursorState is the pointer position in world coordinates, used for hover.
type cursorState struct {
	pos core.Vec
}

// pollInput collects the actions triggered since the last tick.
func (g *Game) pollInput() core.InputFrame {
	in := core.NewInputFrame()

	for k, a := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(a)
		}
	}

	if ebiten.IsWindowBeingClosed() {
		in.Set(core.ActionQuit)
	}

	x, y := ebiten.CursorPosition()
	g.cursor.pos = core.Vec{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.ClickAt(g.cursor.pos)
	}

	return in
}

// hovered returns the menu button under the pointer, if any.
func (g *Game) hovered() game.Button {
	return game.ButtonAt(g.world.Mode(), g.cursor.pos)
}
