// Package game provides the main game loop and session management.
package game

// Outcome represents how a session ended.
type Outcome int

const (
	// OutcomeQuit means the player abandoned the run.
	OutcomeQuit Outcome = iota
	// OutcomeEscaped means the player reached the exit with treasure.
	OutcomeEscaped
	// OutcomeLeft means the player exited early through a door.
	OutcomeLeft
	// OutcomeCaptured means a monster reached the player.
	OutcomeCaptured
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "escaped"
	case OutcomeLeft:
		return "left"
	case OutcomeCaptured:
		return "captured"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
