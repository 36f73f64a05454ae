package flow

// State is the lifecycle position of a flow. It only ever moves forward:
// StateNotStarted -> StateStarted -> StateFinished.
type State int

const (
	// StateNotStarted is the initial state; nothing has been presented.
	StateNotStarted State = iota
	// StateStarted means Start ran and the flow may own visible surfaces.
	StateStarted
	// StateFinished is terminal; the completion callback fired (or will, on registration).
	StateFinished
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "notStarted"
	case StateStarted:
		return "started"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
