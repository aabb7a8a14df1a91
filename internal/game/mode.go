package game

// Mode is the coarse state of a World. Exactly one mode is active at a time.
type Mode int

const (
	ModeMenu     Mode = iota // Launch menu, no round played yet
	ModePlaying              // Simulation running
	ModePaused               // Round suspended, menu offers Resume
	ModeGameOver             // Round ended by death, menu offers Start
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// InMenu reports whether the menu overlay is shown in this mode.
func (m Mode) InMenu() bool {
	return m != ModePlaying
}

// Trigger is an event that may move a World from one mode to another.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerResume
	TriggerPause
	TriggerDeath
)

// transitions lists every legal mode change. Anything missing is a no-op.
var transitions = map[Mode]map[Trigger]Mode{
	ModeMenu: {
		TriggerStart: ModePlaying,
	},
	ModePlaying: {
		TriggerPause: ModePaused,
		TriggerDeath: ModeGameOver,
	},
	ModePaused: {
		TriggerStart:  ModePlaying,
		TriggerResume: ModePlaying,
	},
	ModeGameOver: {
		TriggerStart: ModePlaying,
	},
}

// Next returns the mode reached from m by trigger t and whether the
// transition is legal. Illegal triggers leave the mode unchanged.
func (m Mode) Next(t Trigger) (Mode, bool) {
	next, ok := transitions[m][t]
	if !ok {
		return m, false
	}
	return next, true
}

// NeedsReset reports whether starting from this mode begins a fresh round.
func (m Mode) NeedsReset() bool {
	return m == ModeMenu || m == ModeGameOver
}
