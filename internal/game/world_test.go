package game

import (
	"testing"

	"github.com/vovakirdan/raket/internal/core"
)

const frame = 1.0 / 60

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func click(p core.Vec) core.InputFrame {
	in := core.NewInputFrame()
	in.ClickAt(p)
	return in
}

func hasEvent(events []Event, e Event) bool {
	for _, got := range events {
		if got == e {
			return true
		}
	}
	return false
}

// startedWorld returns a world that has just entered ModePlaying.
func startedWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(42)
	res := w.Step(input(core.ActionConfirm), 0)
	if w.Mode() != ModePlaying {
		t.Fatalf("Confirm from menu should start a round, mode = %v", w.Mode())
	}
	if !hasEvent(res.Events, EventStart) {
		t.Fatalf("Expected start event, got %v", res.Events)
	}
	return w
}

func TestWorldStartsInMenu(t *testing.T) {
	w := NewWorld(1)

	if w.Mode() != ModeMenu {
		t.Errorf("New world mode = %v, expected Menu", w.Mode())
	}
	if w.ScoreText() != "Score: 0" || w.DeathText() != "Deaths: 0" {
		t.Errorf("HUD = %q / %q", w.ScoreText(), w.DeathText())
	}

	before := w.Player()
	for i := 0; i < 120; i++ {
		w.Step(core.NewInputFrame(), frame)
	}
	if w.Player() != before {
		t.Error("Simulation should not advance in the menu")
	}
	if len(w.Obstacles()) != 0 {
		t.Error("No obstacles should spawn in the menu")
	}
}

func TestWorldStartByClick(t *testing.T) {
	w := NewWorld(1)
	w.Step(click(ButtonRect(ButtonStart).Center()), frame)

	if w.Mode() != ModePlaying {
		t.Errorf("Clicking Start should begin a round, mode = %v", w.Mode())
	}
}

func TestWorldClickOutsideButtonsIgnored(t *testing.T) {
	w := NewWorld(1)
	w.Step(click(core.Vec{X: 5, Y: 5}), frame)

	if w.Mode() != ModeMenu {
		t.Errorf("Stray click should not change the mode, got %v", w.Mode())
	}
}

func TestWorldFlapOnlyWhilePlaying(t *testing.T) {
	w := NewWorld(1)
	res := w.Step(input(core.ActionFlap), frame)
	if hasEvent(res.Events, EventFlap) || w.Player().Velocity != 0 {
		t.Error("Flap should be ignored in the menu")
	}

	w = startedWorld(t)
	w.Step(core.NewInputFrame(), 0.1)
	res = w.Step(input(core.ActionFlap), 0)
	if !hasEvent(res.Events, EventFlap) {
		t.Error("Expected flap event while playing")
	}
	if w.Player().Velocity != FlapStrength {
		t.Errorf("Velocity after flap = %v, expected %v", w.Player().Velocity, FlapStrength)
	}
}

func TestWorldPauseAndResume(t *testing.T) {
	w := startedWorld(t)
	w.Step(core.NewInputFrame(), 0.1)

	res := w.Step(input(core.ActionPause), frame)
	if w.Mode() != ModePaused {
		t.Fatalf("Pause should suspend the round, mode = %v", w.Mode())
	}
	if !hasEvent(res.Events, EventPause) {
		t.Error("Expected pause event")
	}

	frozen := w.Player()
	for i := 0; i < 60; i++ {
		w.Step(input(core.ActionFlap), frame)
	}
	if w.Player() != frozen {
		t.Error("Player should not move or flap while paused")
	}

	w.Step(click(ButtonRect(ButtonResume).Center()), 0)
	if w.Mode() != ModePlaying {
		t.Fatalf("Resume should continue the round, mode = %v", w.Mode())
	}
	if w.Player() != frozen {
		t.Error("Resume should not reset the round")
	}
}

func TestWorldPauseIgnoredInMenu(t *testing.T) {
	w := NewWorld(1)
	w.Step(input(core.ActionPause), frame)

	if w.Mode() != ModeMenu {
		t.Errorf("Pause from the menu should be ignored, mode = %v", w.Mode())
	}
}

func TestWorldDeathByFalling(t *testing.T) {
	w := startedWorld(t)

	var res StepResult
	for i := 0; i < 600 && w.Mode() == ModePlaying; i++ {
		res = w.Step(core.NewInputFrame(), frame)
	}

	if w.Mode() != ModeGameOver {
		t.Fatalf("Falling player should die, mode = %v", w.Mode())
	}
	if !w.Mode().InMenu() {
		t.Error("Game over should show the menu")
	}
	if !hasEvent(res.Events, EventHit) {
		t.Error("Expected hit event on death")
	}
	if len(w.Obstacles()) != 0 {
		t.Errorf("Obstacles should be cleared on death, got %d", len(w.Obstacles()))
	}
	if w.Score() != 0 {
		t.Errorf("Score should be 0 after death, got %d", w.Score())
	}
	if w.Deaths() != 1 {
		t.Errorf("Deaths = %d, expected 1", w.Deaths())
	}
	if w.Player() != NewPlayer() {
		t.Errorf("Player should be reset on death, got %+v", w.Player())
	}
	if w.DeathText() != "Deaths: 1" || w.ScoreText() != "Score: 0" {
		t.Errorf("HUD after death = %q / %q", w.ScoreText(), w.DeathText())
	}
}

func TestWorldDeathByCollision(t *testing.T) {
	w := startedWorld(t)
	w.score = 3
	w.field.obstacles = append(w.field.obstacles,
		Obstacle{X: 80, GapCenter: 600},
		Obstacle{X: 600, GapCenter: 300},
	)

	res := w.Step(core.NewInputFrame(), frame)

	if w.Mode() != ModeGameOver {
		t.Fatalf("Collision should end the round, mode = %v", w.Mode())
	}
	if !hasEvent(res.Events, EventHit) {
		t.Error("Expected hit event")
	}
	if len(w.Obstacles()) != 0 {
		t.Errorf("Obstacles should be cleared, got %d", len(w.Obstacles()))
	}
	if w.Score() != 0 || w.Deaths() != 1 {
		t.Errorf("Score/deaths = %d/%d, expected 0/1", w.Score(), w.Deaths())
	}
}

func TestWorldScoresPassedObstacle(t *testing.T) {
	w := startedWorld(t)
	w.field.obstacles = append(w.field.obstacles, Obstacle{X: 50, GapCenter: 320})

	res := w.Step(core.NewInputFrame(), 0.02)

	if w.Mode() != ModePlaying {
		t.Fatalf("Player inside the gap should survive, mode = %v", w.Mode())
	}
	if w.Score() != 1 {
		t.Errorf("Score = %d, expected 1", w.Score())
	}
	if !hasEvent(res.Events, EventScore) {
		t.Error("Expected score event")
	}
	if w.ScoreText() != "Score: 1" {
		t.Errorf("ScoreText = %q, expected %q", w.ScoreText(), "Score: 1")
	}

	w.Step(core.NewInputFrame(), 0.02)
	if w.Score() != 1 {
		t.Errorf("Obstacle should only score once, score = %d", w.Score())
	}
}

func TestWorldRestartAfterGameOver(t *testing.T) {
	w := startedWorld(t)
	for w.Mode() == ModePlaying {
		w.Step(core.NewInputFrame(), frame)
	}

	w.Step(click(ButtonRect(ButtonStart).Center()), 0)
	if w.Mode() != ModePlaying {
		t.Fatalf("Start after game over should begin a new round, mode = %v", w.Mode())
	}

	for w.Mode() == ModePlaying {
		w.Step(core.NewInputFrame(), frame)
	}
	if w.Deaths() != 2 {
		t.Errorf("Deaths should persist across rounds, got %d", w.Deaths())
	}
}

func TestWorldToggleHitboxesInAnyMode(t *testing.T) {
	w := NewWorld(1)

	w.Step(input(core.ActionToggleHitboxes), frame)
	if !w.ShowHitboxes() {
		t.Error("Toggle in menu should enable the overlay")
	}

	w.Step(input(core.ActionConfirm), 0)
	res := w.Step(input(core.ActionToggleHitboxes), 0)
	if w.ShowHitboxes() || res.State.ShowHitboxes {
		t.Error("Second toggle should disable the overlay")
	}
}

func TestWorldExit(t *testing.T) {
	w := NewWorld(1)
	res := w.Step(click(ButtonRect(ButtonExit).Center()), frame)
	if !res.Quit {
		t.Error("Exit button should request quit")
	}

	w = startedWorld(t)
	res = w.Step(click(ButtonRect(ButtonExit).Center()), frame)
	if res.Quit {
		t.Error("Exit button is not shown while playing")
	}

	res = w.Step(input(core.ActionQuit), frame)
	if !res.Quit {
		t.Error("Quit action should exit from any mode")
	}
}

// TestWorldScoreMatchesEvents plays many rounds with a simple autopilot and
// checks that the score always equals the number of obstacles passed in the
// current round.
func TestWorldScoreMatchesEvents(t *testing.T) {
	w := NewWorld(7)
	passed := 0
	deaths := 0

	for i := 0; i < 60*120; i++ {
		in := core.NewInputFrame()
		if w.Mode().InMenu() {
			in.Set(core.ActionConfirm)
		} else if w.Player().Velocity > 0 && w.Player().Pos.Y > autopilotTarget(w) {
			in.Set(core.ActionFlap)
		}

		res := w.Step(in, frame)
		for _, e := range res.Events {
			switch e {
			case EventScore:
				passed++
			case EventStart:
				passed = 0
			case EventHit:
				deaths++
				passed = 0
			}
		}

		if res.State.Score != passed {
			t.Fatalf("Tick %d: score %d, passed %d", i, res.State.Score, passed)
		}
		if res.State.Deaths != deaths {
			t.Fatalf("Tick %d: deaths %d, expected %d", i, res.State.Deaths, deaths)
		}
	}
}

// autopilotTarget aims for the gap of the nearest obstacle still ahead.
func autopilotTarget(w *World) float64 {
	for _, o := range w.Obstacles() {
		if o.X+ObstacleWidth > w.Player().Hitbox().X {
			return o.GapCenter
		}
	}
	return PlayerStartY
}
