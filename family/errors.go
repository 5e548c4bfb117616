package family

import "errors"

var (
	// ErrUnknownSessionType indicates a session type string or Kind that
	// names no supported puzzle.
	ErrUnknownSessionType = errors.New("family: unknown session type")

	// ErrUnknownRay indicates a ray name the puzzle's ray system lacks.
	ErrUnknownRay = errors.New("family: unknown ray")

	// ErrUnknownGrip indicates a grip that is not registered on the puzzle.
	ErrUnknownGrip = errors.New("family: unknown grip")

	// ErrNoGrips indicates a twist request without any grip.
	ErrNoGrips = errors.New("family: twist needs at least one grip")
)
