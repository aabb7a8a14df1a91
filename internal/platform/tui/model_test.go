package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/game"
)

// newTestModel returns a model whose playfield maps 10 world units per cell.
func newTestModel() Model {
	return NewModel(core.RuntimeConfig{
		ScreenW:  108,
		ScreenH:  73,
		TickRate: 60,
		Seed:     1,
	}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func clickButton(t *testing.T, m Model, b game.Button) Model {
	t.Helper()
	x, y := m.viewport.Cell(game.ButtonRect(b).Center())
	m, _ = update(t, m, tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return m
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestModelEnterStartsRound(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(t0))

	if m.World().Mode() != game.ModePlaying {
		t.Errorf("Mode = %v, expected Playing", m.World().Mode())
	}
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
}

func TestModelClickStartsRound(t *testing.T) {
	m := newTestModel()

	m = clickButton(t, m, game.ButtonStart)
	m, _ = update(t, m, TickMsg(t0))

	if m.World().Mode() != game.ModePlaying {
		t.Errorf("Mode = %v, expected Playing", m.World().Mode())
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(t0.Add(time.Second/60)))
	if m.World().Mode() != game.ModePaused {
		t.Fatalf("Mode = %v, expected Paused", m.World().Mode())
	}

	m, _ = update(t, m, TickMsg(t0.Add(2*time.Second/60)))
	if m.World().Mode() != game.ModePaused {
		t.Error("Pause key should not be replayed on the next tick")
	}
}

func TestModelFrameTimeClamped(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Second)))

	want := game.Gravity * MaxFrameTime
	if got := m.World().Player().Velocity; got != want {
		t.Errorf("Velocity after a stalled frame = %v, expected %v", got, want)
	}
	if m.World().Mode() != game.ModePlaying {
		t.Errorf("Player should survive one clamped frame, mode = %v", m.World().Mode())
	}
}

func TestModelFirstTickDoesNotAdvance(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(t0))

	if m.World().Player() != game.NewPlayer() {
		t.Error("The first tick has no previous time and should not move the player")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit immediately")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelExitButtonQuits(t *testing.T) {
	m := newTestModel()

	m = clickButton(t, m, game.ButtonExit)
	_, cmd := update(t, m, TickMsg(t0))
	if !isQuit(cmd) {
		t.Error("Exit button should quit")
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(t0))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.World().Mode() != game.ModePlaying {
		t.Error("Resize should not reset the round")
	}
	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("Screen = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}
	if m.viewport.Cols() != 80 || m.viewport.Rows() != 23 {
		t.Errorf("Viewport = %dx%d, expected 80x23", m.viewport.Cols(), m.viewport.Rows())
	}
}

func TestModelShowHitboxesFromConfig(t *testing.T) {
	m := NewModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, ShowHitboxes: true}, nil)

	if !m.World().ShowHitboxes() {
		t.Error("Overlay should start enabled")
	}
	if m.config.TickRate != 60 {
		t.Errorf("Missing tick rate should default to 60, got %d", m.config.TickRate)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	view := m.View()

	for _, want := range []string{"Score: 0", "Deaths: 0", "Start Game", "Exit", "thrust"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}
