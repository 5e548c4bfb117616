// SPDX-License-Identifier: MIT
// Package: twisty/session
//
// log.go - the persisted session log.
//
// JSON shape:
//
//	{
//	  "version": "1.0.0",
//	  "session_type": "Cube Nnn(3)",
//	  "id": "…uuid…",
//	  "scramble": [["U", "D", …], …],      one row per piece, occupant names
//	  "twists": [[["R", 1], [[2, -2]]], …],
//	  "undid_twists": [[["U", -1], [[0, 0]]], …]   redo stack, omitted when empty
//	}
//
// Contract:
//   • Rows and twists carry ray names only, never indices.
//   • A version mismatch never refuses a load; it only annotates a failure.

package session

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/ray"
)

// CurrentVersion is written into every extracted log.
const CurrentVersion = "1.0.0"

// Log is the serializable form of a session.
type Log struct {
	Version     string        `json:"version"`
	SessionType string        `json:"session_type"`
	ID          string        `json:"id,omitempty"`
	Scramble    [][]string    `json:"scramble"`
	Twists      []TwistRecord `json:"twists"`
	// UndidTwists is the redo stack; the last record is redone first.
	UndidTwists []TwistRecord `json:"undid_twists,omitempty"`
}

// TwistRecord is one history entry by ray name. It encodes as the tuple
// [[ray, order], [grip, ...]].
type TwistRecord struct {
	Ray   string
	Order int
	Grips [][]int
}

// MarshalJSON encodes the tuple form.
func (t TwistRecord) MarshalJSON() ([]byte, error) {
	grips := t.Grips
	if grips == nil {
		grips = [][]int{}
	}

	return json.Marshal([2]any{[2]any{t.Ray, t.Order}, grips})
}

// UnmarshalJSON decodes the tuple form.
func (t *TwistRecord) UnmarshalJSON(data []byte) error {
	var outer []json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return fmt.Errorf("twist record: %w", err)
	}
	if len(outer) != 2 {
		return fmt.Errorf("twist record: want 2 elements, got %d", len(outer))
	}
	var head []json.RawMessage
	if err := json.Unmarshal(outer[0], &head); err != nil {
		return fmt.Errorf("twist record turn: %w", err)
	}
	if len(head) != 2 {
		return fmt.Errorf("twist record turn: want [ray, order], got %d elements", len(head))
	}
	var rec TwistRecord
	if err := json.Unmarshal(head[0], &rec.Ray); err != nil {
		return fmt.Errorf("twist record ray: %w", err)
	}
	if err := json.Unmarshal(head[1], &rec.Order); err != nil {
		return fmt.Errorf("twist record order: %w", err)
	}
	if err := json.Unmarshal(outer[1], &rec.Grips); err != nil {
		return fmt.Errorf("twist record grips: %w", err)
	}
	*t = rec

	return nil
}

// Extract converts s into a Log tagged with sessionType.
// Complexity: O(P·N + history).
func Extract[R ray.Ray[R]](s *Session[R], sessionType string) Log {
	rows := make([][]string, len(s.baseline))
	for i, o := range s.baseline {
		rows[i] = o.Names()
	}

	log := Log{
		Version:     CurrentVersion,
		SessionType: sessionType,
		ID:          s.id.String(),
		Scramble:    rows,
		Twists:      encodeTwists(s.twists),
	}
	if len(s.undid) > 0 {
		log.UndidTwists = encodeTwists(s.undid)
	}

	return log
}

func encodeTwists[R ray.Ray[R]](twists []Twist[R]) []TwistRecord {
	records := make([]TwistRecord, len(twists))
	for i, tw := range twists {
		c := tw.clone()
		records[i] = TwistRecord{Ray: c.Turn.Ray.Name(), Order: c.Turn.Order, Grips: c.Grips}
	}

	return records
}

// VersionMismatch reports whether log was written by another version.
func VersionMismatch(log Log) bool {
	return log.Version != CurrentVersion
}

// Replay rebuilds a session from log onto p: the scramble rows become the
// orientations and baseline, then every twist is re-applied. Undone twists
// are restored onto the redo stack without being applied. p must be a
// freshly built puzzle of the log's session type; it is left untouched when
// the log is rejected.
// Complexity: O(P·N + history·P·N).
func Replay[R ray.Ray[R]](log Log, p *puzzle.Puzzle[R], opts ...Option) (*Session[R], error) {
	if id, err := uuid.Parse(log.ID); err == nil {
		opts = append([]Option{WithID(id)}, opts...)
	}
	cfg := newConfig(opts...)
	if VersionMismatch(log) {
		cfg.logger.Warn("session log from a different version",
			"log_version", log.Version, "current_version", CurrentVersion)
	}

	oris, err := decodeRows[R](log.Scramble)
	var twists, undid []Twist[R]
	if err == nil {
		twists, err = decodeTwists(log.Twists, p)
	}
	if err == nil {
		undid, err = decodeTwists(log.UndidTwists, p)
		if err != nil {
			err = fmt.Errorf("redo stack: %w", err)
		}
	}
	if err == nil {
		if serr := p.SetOrientations(oris); serr != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidReplayData, serr)
		}
	}
	if err != nil {
		if VersionMismatch(log) {
			return nil, fmt.Errorf("%w (log from version %s)", err, log.Version)
		}

		return nil, err
	}

	s := New(p, opts...)
	for _, tw := range twists {
		s.apply(tw.Turn, tw.Grips)
	}
	s.twists = twists
	s.undid = undid

	return s, nil
}

// Encode writes log as indented JSON.
func Encode(w io.Writer, log Log) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(log); err != nil {
		return fmt.Errorf("session: encode log: %w", err)
	}

	return nil
}

// Decode reads a JSON log.
func Decode(r io.Reader) (Log, error) {
	var log Log
	if err := json.NewDecoder(r).Decode(&log); err != nil {
		return Log{}, fmt.Errorf("session: decode log: %w", err)
	}

	return log, nil
}

func decodeRows[R ray.Ray[R]](rows [][]string) ([]puzzle.Orientation[R], error) {
	n := ray.Count[R]()
	oris := make([]puzzle.Orientation[R], len(rows))
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: scramble row %d has %d names, want %d", ErrInvalidReplayData, i, len(row), n)
		}
		o := make(puzzle.Orientation[R], n)
		for j, name := range row {
			r, ok := ray.FromName[R](name)
			if !ok {
				return nil, fmt.Errorf("%w: scramble row %d: unknown ray %q", ErrInvalidReplayData, i, name)
			}
			o[j] = r
		}
		oris[i] = o
	}

	return oris, nil
}

func decodeTwists[R ray.Ray[R]](records []TwistRecord, p *puzzle.Puzzle[R]) ([]Twist[R], error) {
	if len(records) == 0 {
		return nil, nil
	}
	twists := make([]Twist[R], len(records))
	for i, rec := range records {
		r, ok := ray.FromName[R](rec.Ray)
		if !ok {
			return nil, fmt.Errorf("%w: twist %d: unknown ray %q", ErrInvalidReplayData, i, rec.Ray)
		}
		for _, g := range rec.Grips {
			if !p.IsGrip(g) {
				return nil, fmt.Errorf("%w: twist %d: unregistered grip %v", ErrInvalidReplayData, i, g)
			}
		}
		twists[i] = Twist[R]{Turn: ray.Turn[R]{Ray: r, Order: rec.Order}, Grips: rec.Grips}.clone()
	}

	return twists, nil
}
