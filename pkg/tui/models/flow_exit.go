package models

// ExitBehavior decides what happens when a journey launched from the
// command line finishes.
type ExitBehavior int

const (
	// ExitStay returns to the home menu (default).
	ExitStay ExitBehavior = iota
	// ExitQuit exits the Bubble Tea program.
	ExitQuit
)

// String returns the string representation of the behavior
func (b ExitBehavior) String() string {
	switch b {
	case ExitStay:
		return "stay"
	case ExitQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseExitBehavior maps a flag value to an ExitBehavior. Unknown values
// mean ExitStay.
func ParseExitBehavior(s string) ExitBehavior {
	if s == "quit" {
		return ExitQuit
	}
	return ExitStay
}
