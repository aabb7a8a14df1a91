package game

import "github.com/vovakirdan/raket/internal/core"

// Button identifies a menu button.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonResume
	ButtonExit
)

// String returns the button label.
func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "Start Game"
	case ButtonResume:
		return "Resume"
	case ButtonExit:
		return "Exit"
	default:
		return ""
	}
}

// Menu button geometry in world units.
var (
	// Start and Resume share a rectangle; the mode decides which one is live.
	primaryButtonRect = core.NewRect(390, 300, 300, 60)
	exitButtonRect    = core.NewRect(390, 400, 300, 60)
)

// ButtonRect returns the rectangle occupied by b.
func ButtonRect(b Button) core.Rect {
	switch b {
	case ButtonStart, ButtonResume:
		return primaryButtonRect
	case ButtonExit:
		return exitButtonRect
	default:
		return core.Rect{}
	}
}

// PrimaryButton returns the button in the primary slot for mode m.
func PrimaryButton(m Mode) Button {
	if m == ModePaused {
		return ButtonResume
	}
	return ButtonStart
}

// Buttons returns the buttons shown in mode m, top to bottom.
// No buttons are shown while playing.
func Buttons(m Mode) []Button {
	if !m.InMenu() {
		return nil
	}
	return []Button{PrimaryButton(m), ButtonExit}
}

// ButtonAt returns the button under world position p in mode m.
func ButtonAt(m Mode, p core.Vec) Button {
	for _, b := range Buttons(m) {
		if ButtonRect(b).Contains(p) {
			return b
		}
	}
	return ButtonNone
}
