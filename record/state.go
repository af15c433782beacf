package record

// State is the lifecycle state of a Reader.
type State int

const (
	// StateUninitialized is a reader that has not been opened, failed to
	// open, or was closed. It is safe to discard.
	StateUninitialized State = iota
	// StateOpening is a reader in the middle of Open.
	StateOpening
	// StateReady is a successfully opened reader.
	StateReady
	// StateFailed is an opened reader that hit an iteration error. The
	// header remains readable, but no further items are returned.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOpening:
		return "opening"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
