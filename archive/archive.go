// Package archive stores session logs in a badger database, keyed by
// session id.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/twisty/session"
)

const keyPrefix = "session/"

var (
	// ErrNotFound indicates no log is stored under the id.
	ErrNotFound = errors.New("archive: session not found")

	// ErrMissingID indicates a log without a session id.
	ErrMissingID = errors.New("archive: log has no session id")
)

// Config describes the database location.
type Config struct {
	// Path is the database directory. Required unless InMemory.
	Path string
	// InMemory keeps everything in RAM; for tests.
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
	// Logger receives badger's internal logs. Nil silences them.
	Logger *slog.Logger
}

// Entry summarises one stored log.
type Entry struct {
	ID          string
	SessionType string
	Version     string
	Twists      int
}

// Store is an open archive.
type Store struct {
	db *badger.DB
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens or creates the archive.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("archive: path is required for a persistent archive")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("archive: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("archive: open: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores log under its id, replacing any previous version.
func (s *Store) Put(log session.Log) error {
	if log.ID == "" {
		return ErrMissingID
	}
	var buf bytes.Buffer
	if err := session.Encode(&buf, log); err != nil {
		return fmt.Errorf("archive: put %s: %w", log.ID, err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(log.ID), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("archive: put %s: %w", log.ID, err)
	}

	return nil
}

// Get loads the log stored under id.
func (s *Store) Get(id string) (session.Log, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return session.Log{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return session.Log{}, fmt.Errorf("archive: get %s: %w", id, err)
	}

	return session.Decode(bytes.NewReader(data))
}

// Delete removes the log stored under id.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", id, err)
	}

	return nil
}

// List summarises every stored log, sorted by id.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				log, err := session.Decode(bytes.NewReader(val))
				if err != nil {
					return fmt.Errorf("%s: %w", item.Key(), err)
				}
				entries = append(entries, Entry{
					ID:          log.ID,
					SessionType: log.SessionType,
					Version:     log.Version,
					Twists:      len(log.Twists),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return entries, nil
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}
