package archive_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twisty/archive"
	"github.com/katalvlaran/twisty/family"
	"github.com/katalvlaran/twisty/session"
)

func openMem(t *testing.T) *archive.Store {
	t.Helper()
	s, err := archive.Open(archive.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newLog(t *testing.T, kind string, twists int) session.Log {
	t.Helper()
	g, err := family.New(family.MustParse(kind))
	require.NoError(t, err)
	names := g.RayNames()
	for i := 0; i < twists; i++ {
		require.NoError(t, g.Twist(names[i%len(names)], 1, g.Grips()[len(g.Grips())-1:]))
	}

	return g.Log()
}

func TestPutGet(t *testing.T) {
	s := openMem(t)
	log := newLog(t, "Cube Nnn(3)", 3)

	require.NoError(t, s.Put(log))
	got, err := s.Get(log.ID)
	require.NoError(t, err)
	assert.Equal(t, log, got)

	g, err := family.Load(got)
	require.NoError(t, err)
	assert.Equal(t, log.ID, g.ID())
}

func TestPut_Overwrites(t *testing.T) {
	s := openMem(t)
	log := newLog(t, "Octa FTO(2)", 1)
	require.NoError(t, s.Put(log))

	log.Twists = nil
	require.NoError(t, s.Put(log))
	got, err := s.Get(log.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Twists)
}

func TestErrors(t *testing.T) {
	s := openMem(t)
	assert.ErrorIs(t, s.Put(session.Log{SessionType: "Cube Nnn(2)"}), archive.ErrMissingID)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, archive.ErrNotFound)
	assert.ErrorIs(t, s.Delete("missing"), archive.ErrNotFound)

	_, err = archive.Open(archive.Config{})
	assert.Error(t, err)
}

func TestListDelete(t *testing.T) {
	s := openMem(t)
	logs := []session.Log{
		newLog(t, "Cube Nnn(2)", 2),
		newLog(t, "Dodeca Pentultimate", 0),
		newLog(t, "RDodeca Nnn(2)", 5),
	}
	for _, l := range logs {
		require.NoError(t, s.Put(l))
	}

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].ID, entries[i].ID)
	}
	byID := map[string]archive.Entry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	assert.Equal(t, "RDodeca Nnn(2)", byID[logs[2].ID].SessionType)
	assert.Equal(t, 5, byID[logs[2].ID].Twists)
	assert.Equal(t, session.CurrentVersion, byID[logs[0].ID].Version)

	require.NoError(t, s.Delete(logs[1].ID))
	entries, err = s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPersistentReopen(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.DiscardHandler)
	log := newLog(t, "Dodeca Megaminx", 2)

	s, err := archive.Open(archive.Config{Path: dir, SyncWrites: true, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, s.Put(log))
	require.NoError(t, s.Close())

	s, err = archive.Open(archive.Config{Path: dir, Logger: logger})
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(log.ID)
	require.NoError(t, err)
	assert.Equal(t, log, got)
}
