// Package config loads the twisty CLI settings from a YAML file.
//
// A missing file is created with Default values on first load.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twisty/family"
	"github.com/katalvlaran/twisty/puzzle"
)

// Config holds every CLI setting.
type Config struct {
	// Puzzle is the session type used by "new" without an argument.
	Puzzle string `yaml:"puzzle" validate:"required,session_type"`
	// Seed drives scrambles; zero means a time-based seed.
	Seed int64 `yaml:"seed"`
	// ScrambleMoves is the number of random twists per scramble.
	ScrambleMoves int `yaml:"scramble_moves" validate:"gte=0,lte=100000"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// ArchiveDir is the badger directory holding saved sessions.
	ArchiveDir string `yaml:"archive_dir" validate:"required"`
	// MetricsFile, when set, receives a Prometheus text dump after each
	// command.
	MetricsFile string `yaml:"metrics_file"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("session_type", validateSessionType)
}

func validateSessionType(fl validator.FieldLevel) bool {
	_, err := family.Parse(fl.Field().String())
	return err == nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Puzzle:        "Cube Nnn(3)",
		ScrambleMoves: puzzle.DefaultScrambleMoves,
		LogLevel:      "info",
		ArchiveDir:    filepath.Join(defaultDir(), "archive"),
	}
}

// DefaultPath returns ~/.twisty/twisty.yaml, or a relative path when the
// home directory is unknown.
func DefaultPath() string {
	return filepath.Join(defaultDir(), "twisty.yaml")
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".twisty"
	}

	return filepath.Join(home, ".twisty")
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Level maps LogLevel to a slog level. Unknown values map to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return l
}

// Load reads path, creating it with Default values when it does not exist.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return Config{}, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes c to path as YAML.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

func createDefault(path string) error {
	return Save(path, Default())
}
