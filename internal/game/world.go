package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/raket/internal/core"
)

// State is a snapshot of the counters and flags a front-end needs.
type State struct {
	Mode         Mode
	Score        int
	Deaths       int
	ShowHitboxes bool
}

// StepResult is returned by World.Step after each frame.
type StepResult struct {
	State  State
	Events []Event // Cues emitted during this frame, in order
	Quit   bool    // The user asked to exit
}

// World owns the player, the obstacles, the counters and the mode,
// and drives the per-frame update.
type World struct {
	player       Player
	field        *ObstacleField
	flyby        *Flyby
	mode         Mode
	score        int
	deaths       int
	showHitboxes bool
	scoreText    string
	deathText    string
	events       []Event
}

// NewWorld creates a world in the launch menu. The seed drives obstacle
// gaps and flyby altitudes.
func NewWorld(seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		player: NewPlayer(),
		field:  NewObstacleField(rng),
		flyby:  NewFlyby(rng),
		mode:   ModeMenu,
	}
	w.refreshHUD()
	return w
}

// Step processes one frame: input first, then the simulation if a round is
// running. dt is the elapsed frame time in seconds.
func (w *World) Step(in core.InputFrame, dt float64) StepResult {
	w.events = nil

	if in.Has(core.ActionQuit) {
		return StepResult{State: w.State(), Quit: true}
	}

	quit := w.handleInput(in)
	if quit {
		return StepResult{State: w.State(), Events: w.events, Quit: true}
	}

	if w.mode == ModePlaying && dt > 0 {
		w.update(dt)
	}

	return StepResult{State: w.State(), Events: w.events}
}

// handleInput applies the frame's actions. Returns true if Exit was pressed.
func (w *World) handleInput(in core.InputFrame) bool {
	if in.Has(core.ActionToggleHitboxes) {
		w.showHitboxes = !w.showHitboxes
	}

	if in.Has(core.ActionFlap) && w.mode == ModePlaying {
		w.player.Flap()
		w.emit(EventFlap)
	}

	if in.Has(core.ActionPause) && w.apply(TriggerPause) {
		w.emit(EventPause)
	}

	if !w.mode.InMenu() {
		return false
	}

	pressed := ButtonNone
	if in.Click != nil {
		pressed = ButtonAt(w.mode, *in.Click)
	}
	if pressed == ButtonNone && in.Has(core.ActionConfirm) {
		pressed = PrimaryButton(w.mode)
	}

	return w.Press(pressed)
}

// Press activates a menu button. Returns true if the button asks to exit.
// Buttons that are not shown in the current mode are ignored.
func (w *World) Press(b Button) bool {
	switch b {
	case ButtonStart:
		if !w.mode.InMenu() || w.mode == ModePaused {
			return false
		}
		w.resetRound()
		if w.apply(TriggerStart) {
			w.emit(EventStart)
		}
	case ButtonResume:
		if w.apply(TriggerResume) {
			w.emit(EventStart)
		}
	case ButtonExit:
		return w.mode.InMenu()
	}
	return false
}

// update advances the running round by dt seconds. The order of the steps
// is fixed.
func (w *World) update(dt float64) {
	w.player.Update(dt)

	w.field.Tick(dt)
	w.field.Advance(dt)

	res := w.field.Sweep(w.player.Pos.X, w.player.Hitbox())
	for i := 0; i < res.Passed; i++ {
		w.score++
		w.emit(EventScore)
	}
	if res.Hit {
		w.die()
		return
	}

	if w.flyby.Update(dt) {
		w.emit(EventFlyby)
	}

	if w.player.OutOfBounds() {
		w.die()
		return
	}

	w.refreshHUD()
}

// die ends the current round and returns to the menu.
func (w *World) die() {
	w.deaths++
	w.field.Clear()
	w.player.Reset()
	w.score = 0
	w.apply(TriggerDeath)
	w.emit(EventHit)
	w.refreshHUD()
}

// resetRound prepares a fresh round without touching the death counter.
func (w *World) resetRound() {
	w.field.Clear()
	w.player.Reset()
	w.score = 0
	w.refreshHUD()
}

// apply moves to the mode reached by t, if the transition is legal.
func (w *World) apply(t Trigger) bool {
	next, ok := w.mode.Next(t)
	if ok {
		w.mode = next
	}
	return ok
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) refreshHUD() {
	w.scoreText = fmt.Sprintf("Score: %d", w.score)
	w.deathText = fmt.Sprintf("Deaths: %d", w.deaths)
}

// State returns the current counters and flags.
func (w *World) State() State {
	return State{
		Mode:         w.mode,
		Score:        w.score,
		Deaths:       w.deaths,
		ShowHitboxes: w.showHitboxes,
	}
}

// Mode returns the current mode.
func (w *World) Mode() Mode { return w.mode }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Obstacles returns the active obstacles in spawn order.
// The returned slice must not be modified.
func (w *World) Obstacles() []Obstacle { return w.field.Obstacles() }

// Flyby returns the decorative jet's visual bounds.
func (w *World) Flyby() core.Rect { return w.flyby.Bounds() }

// Score returns the score of the current round.
func (w *World) Score() int { return w.score }

// Deaths returns the number of rounds lost since the world was created.
func (w *World) Deaths() int { return w.deaths }

// ShowHitboxes reports whether the collision box overlay is enabled.
func (w *World) ShowHitboxes() bool { return w.showHitboxes }

// SetShowHitboxes sets the overlay flag, for front-ends that read it from config.
func (w *World) SetShowHitboxes(show bool) { w.showHitboxes = show }

// ScoreText returns the score display string.
func (w *World) ScoreText() string { return w.scoreText }

// DeathText returns the death counter display string.
func (w *World) DeathText() string { return w.deathText }
