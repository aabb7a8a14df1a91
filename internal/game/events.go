package game

// Event is a cue emitted by the simulation for the presentation layer,
// typically to play a sound. Events never feed back into the simulation.
type Event int

const (
	EventFlap   Event = iota + 1 // Player applied an impulse
	EventScore                   // An obstacle was passed
	EventHit                     // The round ended by death
	EventFlyby                   // The jet entered the screen
	EventStart                   // A round started or resumed
	EventPause                   // The round was paused
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventHit:
		return "hit"
	case EventFlyby:
		return "flyby"
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	default:
		return "unknown"
	}
}
