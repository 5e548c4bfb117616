// Package family is the catalog of concrete puzzles: it maps session type
// strings like "Cube Nnn(3)" to a ray system and a grip layout, and hands
// out Game values that hide the ray type from front ends.
//
// Front ends (the CLI, the archive) only ever see Game and session.Log.
package family
