// SPDX-License-Identifier: MIT
// Package: twisty/family
//
// game.go - a session over any ray system behind one interface.
//
// Contract:
//   • Front ends address rays by name and grips by layer pairs.
//   • Unknown names and grips are rejected before the puzzle is touched.

package family

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/twisty/cube"
	"github.com/katalvlaran/twisty/dodeca"
	"github.com/katalvlaran/twisty/octa"
	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/ray"
	"github.com/katalvlaran/twisty/rdodeca"
	"github.com/katalvlaran/twisty/session"
)

// Game is a type-erased session.
type Game interface {
	Kind() Kind
	ID() string

	Twist(rayName string, order int, grips [][]int) error
	Undo() error
	Redo() error
	DoInverse() error
	Scramble(rng *rand.Rand, opts ...puzzle.ScrambleOption)
	Reset()

	IsSolved() bool
	Permutation() []int
	PieceCount() int
	RayNames() []string
	Grips() [][]int
	// History returns the sizes of the undo and redo stacks.
	History() (twists, undone int)
	Log() session.Log
}

// New starts a solved game of kind k.
func New(k Kind, opts ...session.Option) (Game, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	switch k.Family {
	case Cube:
		return newGame[cube.Ray](k, opts...), nil
	case Octa:
		return newGame[octa.Ray](k, opts...), nil
	case Dodeca:
		return newGame[dodeca.Ray](k, opts...), nil
	default:
		return newGame[rdodeca.Ray](k, opts...), nil
	}
}

// Load replays a session log into a game of the log's session type.
func Load(log session.Log, opts ...session.Option) (Game, error) {
	k, err := Parse(log.SessionType)
	if err != nil {
		return nil, err
	}
	switch k.Family {
	case Cube:
		return loadGame[cube.Ray](k, log, opts...)
	case Octa:
		return loadGame[octa.Ray](k, log, opts...)
	case Dodeca:
		return loadGame[dodeca.Ray](k, log, opts...)
	default:
		return loadGame[rdodeca.Ray](k, log, opts...)
	}
}

// ValidateRaySystems checks every ray system's invariants.
func ValidateRaySystems() error {
	return errors.Join(
		prefix(Cube, ray.Validate[cube.Ray]()),
		prefix(Octa, ray.Validate[octa.Ray]()),
		prefix(Dodeca, ray.Validate[dodeca.Ray]()),
		prefix(RDodeca, ray.Validate[rdodeca.Ray]()),
	)
}

func prefix(f Family, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", f, err)
}

type game[R ray.Ray[R]] struct {
	kind Kind
	s    *session.Session[R]
}

func newGame[R ray.Ray[R]](k Kind, opts ...session.Option) *game[R] {
	return &game[R]{kind: k, s: session.New(puzzle.MakeSolved[R](k.Grips()), opts...)}
}

func loadGame[R ray.Ray[R]](k Kind, log session.Log, opts ...session.Option) (Game, error) {
	s, err := session.Replay(log, puzzle.MakeSolved[R](k.Grips()), opts...)
	if err != nil {
		return nil, err
	}

	return &game[R]{kind: k, s: s}, nil
}

func (g *game[R]) Kind() Kind { return g.kind }

func (g *game[R]) ID() string { return g.s.ID().String() }

func (g *game[R]) Twist(rayName string, order int, grips [][]int) error {
	r, ok := ray.FromName[R](rayName)
	if !ok {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownRay, rayName, ray.Names[R]())
	}
	if len(grips) == 0 {
		return ErrNoGrips
	}
	p := g.s.Puzzle()
	for _, grip := range grips {
		if !p.IsGrip(grip) {
			return fmt.Errorf("%w: %v (have %v)", ErrUnknownGrip, grip, p.Grips())
		}
	}
	g.s.Twist(ray.Turn[R]{Ray: r, Order: order}, grips)

	return nil
}

func (g *game[R]) Undo() error { return g.s.Undo() }

func (g *game[R]) Redo() error { return g.s.Redo() }

func (g *game[R]) DoInverse() error { return g.s.DoInverse() }

func (g *game[R]) Scramble(rng *rand.Rand, opts ...puzzle.ScrambleOption) {
	g.s.Scramble(rng, opts...)
}

func (g *game[R]) Reset() { g.s.Reset() }

func (g *game[R]) IsSolved() bool { return g.s.IsSolved() }

func (g *game[R]) Permutation() []int { return g.s.Puzzle().Permutation() }

func (g *game[R]) PieceCount() int { return g.s.Puzzle().PieceCount() }

func (g *game[R]) RayNames() []string { return ray.Names[R]() }

func (g *game[R]) Grips() [][]int { return g.s.Puzzle().Grips() }

func (g *game[R]) History() (int, int) {
	return len(g.s.Twists()), len(g.s.UndidTwists())
}

func (g *game[R]) Log() session.Log { return session.Extract(g.s, g.kind.String()) }
