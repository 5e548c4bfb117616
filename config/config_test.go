package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twisty/config"
)

func TestLoad_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "twisty.yaml")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Cube Nnn(3)")
	assert.Contains(t, string(data), "scramble_moves: 1000")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twisty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle: Dodeca Megaminx\nseed: 7\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Dodeca Megaminx", cfg.Puzzle)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 1000, cfg.ScrambleMoves)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad puzzle":   "puzzle: Cube Nnn(0)\n",
		"bad level":    "log_level: loud\n",
		"negative":     "scramble_moves: -1\n",
		"empty dir":    "archive_dir: \"\"\n",
		"broken yaml":  "puzzle: [\n",
		"wrong type":   "seed: many\n",
		"unknown kind": "puzzle: Tetra Nnn(2)\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "twisty.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twisty.yaml")
	want := config.Default()
	want.Puzzle = "RDodeca Nnn(2)"
	want.LogLevel = "debug"
	want.MetricsFile = "/tmp/twisty.prom"
	require.NoError(t, config.Save(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLevel(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	cfg.LogLevel = "warn"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}
