// SPDX-License-Identifier: MIT
// Package: twisty/session
//
// options.go - functional options for New and Replay.
//
// Contract:
//   • Option constructors panic on nil input.
//   • Without WithLogger the session logs nowhere.

package session

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option customizes a Session at construction.
type Option func(*config)

type config struct {
	id        uuid.UUID
	logger    *slog.Logger
	observers []Observer
}

// WithObserver registers an observer. May be given several times.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("session: WithObserver(nil)")
	}
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

// WithLogger sets the logger used for debug and warning output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithID fixes the session id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(c *config) {
		c.id = id
	}
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}

	return cfg
}
