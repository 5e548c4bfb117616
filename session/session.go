// SPDX-License-Identifier: MIT
// Package: twisty/session
//
// session.go - history stacks over one puzzle.
//
// Contract:
//   • twists holds applied moves oldest first; undid holds undone moves,
//     most recently undone last.
//   • Twist clears undid; Redo pops from it.
//   • Scramble and Reset take a new baseline and clear both stacks.

package session

import (
	"log/slog"
	"math/rand"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/ray"
)

// Twist is one history entry: a turn applied to every listed grip.
type Twist[R ray.Ray[R]] struct {
	Turn  ray.Turn[R]
	Grips [][]int
}

func (t Twist[R]) clone() Twist[R] {
	grips := make([][]int, len(t.Grips))
	for i, g := range t.Grips {
		grips[i] = slices.Clone(g)
	}

	return Twist[R]{Turn: t.Turn, Grips: grips}
}

// Session is a puzzle plus its move history.
type Session[R ray.Ray[R]] struct {
	id        uuid.UUID
	puzzle    *puzzle.Puzzle[R]
	baseline  []puzzle.Orientation[R]
	twists    []Twist[R]
	undid     []Twist[R]
	logger    *slog.Logger
	observers []Observer
}

// New wraps p. The current orientations of p become the baseline.
// The session takes ownership of p.
func New[R ray.Ray[R]](p *puzzle.Puzzle[R], opts ...Option) *Session[R] {
	if p == nil {
		panic("session: New(nil puzzle)")
	}
	cfg := newConfig(opts...)

	return &Session[R]{
		id:        cfg.id,
		puzzle:    p,
		baseline:  p.Orientations(),
		logger:    cfg.logger.With("session", cfg.id.String()),
		observers: cfg.observers,
	}
}

// ID returns the session id.
func (s *Session[R]) ID() uuid.UUID { return s.id }

// Puzzle returns the wrapped puzzle. Mutating it directly bypasses history.
func (s *Session[R]) Puzzle() *puzzle.Puzzle[R] { return s.puzzle }

// IsSolved reports whether the puzzle is solved.
func (s *Session[R]) IsSolved() bool { return s.puzzle.IsSolved() }

// Baseline returns a copy of the baseline orientations.
func (s *Session[R]) Baseline() []puzzle.Orientation[R] {
	out := make([]puzzle.Orientation[R], len(s.baseline))
	for i, o := range s.baseline {
		out[i] = o.Clone()
	}

	return out
}

// Twists returns a copy of the applied moves, oldest first.
func (s *Session[R]) Twists() []Twist[R] { return cloneTwists(s.twists) }

// UndidTwists returns a copy of the undone moves; the last one is redone
// first.
func (s *Session[R]) UndidTwists() []Twist[R] { return cloneTwists(s.undid) }

// Twist applies t to every grip and records it. The redo stack is cleared.
func (s *Session[R]) Twist(t ray.Turn[R], grips [][]int) {
	tw := Twist[R]{Turn: t, Grips: grips}.clone()
	s.apply(tw.Turn, tw.Grips)
	s.twists = append(s.twists, tw)
	s.undid = nil

	s.logger.Debug("twist", "turn", t.String(), "grips", tw.Grips)
	s.notify(OpTwist, tw, nil)
}

// Undo reverts the last move and moves it to the redo stack.
func (s *Session[R]) Undo() error {
	tw, ok := s.pop()
	if !ok {
		return s.underflow(OpUndo, ErrNoUndoAvailable)
	}
	s.apply(tw.Turn.Inverse(), tw.Grips)
	s.undid = append(s.undid, tw)

	s.logger.Debug("undo", "turn", tw.Turn.String())
	s.notify(OpUndo, tw, nil)

	return nil
}

// Redo re-applies the most recently undone move.
func (s *Session[R]) Redo() error {
	n := len(s.undid)
	if n == 0 {
		return s.underflow(OpRedo, ErrNoRedoAvailable)
	}
	tw := s.undid[n-1]
	s.undid = s.undid[:n-1]
	s.apply(tw.Turn, tw.Grips)
	s.twists = append(s.twists, tw)

	s.logger.Debug("redo", "turn", tw.Turn.String())
	s.notify(OpRedo, tw, nil)

	return nil
}

// DoInverse replaces the last move by its inverse: the negated turn is
// applied twice, once to cancel the move and once as the new move.
// The redo stack is cleared.
func (s *Session[R]) DoInverse() error {
	tw, ok := s.pop()
	if !ok {
		return s.underflow(OpInverse, ErrNoUndoAvailable)
	}
	inv := Twist[R]{Turn: tw.Turn.Inverse(), Grips: tw.Grips}
	s.apply(inv.Turn, inv.Grips)
	s.apply(inv.Turn, inv.Grips)
	s.twists = append(s.twists, inv)
	s.undid = nil

	s.logger.Debug("inverse", "turn", inv.Turn.String())
	s.notify(OpInverse, inv, nil)

	return nil
}

// Scramble scrambles the puzzle with rng, then takes a new baseline and
// clears history.
func (s *Session[R]) Scramble(rng *rand.Rand, opts ...puzzle.ScrambleOption) {
	moves := s.puzzle.Scramble(rng, opts...)
	s.rebase()

	s.logger.Debug("scramble", "moves", len(moves))
	s.notify(OpScramble, Twist[R]{}, nil)
}

// Reset solves the puzzle, takes a new baseline and clears history.
func (s *Session[R]) Reset() {
	s.puzzle.Reset()
	s.rebase()

	s.logger.Debug("reset")
	s.notify(OpReset, Twist[R]{}, nil)
}

func (s *Session[R]) apply(t ray.Turn[R], grips [][]int) {
	for _, g := range grips {
		s.puzzle.Twist(t, g)
	}
}

func (s *Session[R]) pop() (Twist[R], bool) {
	n := len(s.twists)
	if n == 0 {
		return Twist[R]{}, false
	}
	tw := s.twists[n-1]
	s.twists = s.twists[:n-1]

	return tw, true
}

func (s *Session[R]) rebase() {
	s.baseline = s.puzzle.Orientations()
	s.twists = nil
	s.undid = nil
}

func (s *Session[R]) underflow(op Op, err error) error {
	s.logger.Debug("history underflow", "op", string(op))
	s.notify(op, Twist[R]{}, err)

	return err
}

func (s *Session[R]) notify(op Op, tw Twist[R], err error) {
	if len(s.observers) == 0 {
		return
	}
	e := Event{Session: s.id.String(), Op: op, Err: err, Grips: len(tw.Grips)}
	if err == nil && op != OpScramble && op != OpReset {
		e.Ray = tw.Turn.Ray.Name()
		e.Order = tw.Turn.Order
	}
	for _, o := range s.observers {
		o.Observe(e)
	}
}

func cloneTwists[R ray.Ray[R]](in []Twist[R]) []Twist[R] {
	out := make([]Twist[R], len(in))
	for i, t := range in {
		out[i] = t.clone()
	}

	return out
}
