package session

import "errors"

var (
	// ErrNoUndoAvailable indicates Undo or DoInverse on an empty history.
	ErrNoUndoAvailable = errors.New("session: no undo available")

	// ErrNoRedoAvailable indicates Redo with nothing undone.
	ErrNoRedoAvailable = errors.New("session: no redo available")

	// ErrInvalidReplayData indicates a log that cannot be replayed onto the
	// target puzzle: wrong row counts or lengths, unknown ray names or
	// unregistered grips.
	ErrInvalidReplayData = errors.New("session: invalid replay data")
)
