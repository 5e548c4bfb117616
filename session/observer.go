package session

// Op names a session operation.
type Op string

const (
	OpTwist    Op = "twist"
	OpUndo     Op = "undo"
	OpRedo     Op = "redo"
	OpInverse  Op = "inverse"
	OpScramble Op = "scramble"
	OpReset    Op = "reset"
)

// Event describes one completed (or refused) session operation.
// Ray and Order are set for history operations; Err is set when the
// history stack was empty.
type Event struct {
	Session string
	Op      Op
	Ray     string
	Order   int
	Grips   int
	Err     error
}

// Observer receives session events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
