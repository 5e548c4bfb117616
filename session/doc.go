// Package session wraps a puzzle with move history and persistence.
//
// A Session owns exactly one puzzle.Puzzle and keeps:
//
//   - a baseline: the orientation snapshot taken after the last scramble or
//     reset (or at creation);
//   - an undo stack of applied twists and a redo stack of undone ones.
//
// Every new twist clears the redo stack. DoInverse replaces the last move
// by its inverse, both on the puzzle and in history.
//
// Logs are the persisted form: ray names instead of indices, so a log
// replays onto any build whose ray names agree. A log from another version
// is still attempted; only a failed load reports the version.
//
// Sessions are not safe for concurrent use. Observers are called
// synchronously after each operation.
package session
