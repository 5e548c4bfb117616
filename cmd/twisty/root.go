package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twisty/config"
	"github.com/katalvlaran/twisty/family"
	"github.com/katalvlaran/twisty/metrics"
	"github.com/katalvlaran/twisty/session"
)

const defaultSessionFile = "twisty-session.json"

// app carries the state shared by every command of one invocation.
type app struct {
	out, errOut io.Writer

	configPath  string
	sessionFile string
	logLevel    string

	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "twisty",
		Short:         "Play abstract twisty puzzles",
		Long:          `twisty keeps one puzzle session in a JSON log file and applies twists, undo, redo and scrambles to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "config file (created with defaults if missing)")
	pf.StringVarP(&a.sessionFile, "file", "f", defaultSessionFile, "session log file")
	pf.StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		a.newCmd(),
		a.twistCmd(),
		a.historyCmd("undo", "Undo the last twist", family.Game.Undo),
		a.historyCmd("redo", "Redo the last undone twist", family.Game.Redo),
		a.historyCmd("inverse", "Replace the last twist by its inverse", family.Game.DoInverse),
		a.scrambleCmd(),
		a.resetCmd(),
		a.showCmd(),
		a.validateCmd(),
		a.archiveCmd(),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.Level()}))
	a.logger.Debug("config loaded", "path", a.configPath, "puzzle", cfg.Puzzle)

	return nil
}

// sessionOptions builds the per-invocation metrics, seeded with the totals
// of earlier invocations from the textfile.
func (a *app) sessionOptions(k family.Kind) []session.Option {
	a.metrics = metrics.New(string(k.Family))
	if a.cfg.MetricsFile != "" {
		if err := a.metrics.Restore(a.cfg.MetricsFile); err != nil {
			a.logger.Warn("metrics restore failed; counting from zero", "error", err)
		}
	}
	return []session.Option{session.WithLogger(a.logger), session.WithObserver(a.metrics)}
}

// load reads the session file into a game.
func (a *app) load() (family.Game, error) {
	f, err := os.Open(a.sessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no session at %s; start one with 'twisty new'", a.sessionFile)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log, err := session.Decode(f)
	if err != nil {
		return nil, err
	}
	k, err := family.Parse(log.SessionType)
	if err != nil {
		return nil, err
	}
	if session.VersionMismatch(log) {
		fmt.Fprintf(a.errOut, "loading a session saved by version %s\n", log.Version)
	}

	return family.Load(log, a.sessionOptions(k)...)
}

// save writes g to the session file and flushes metrics.
func (a *app) save(g family.Game) error {
	var buf bytes.Buffer
	if err := session.Encode(&buf, g.Log()); err != nil {
		return err
	}
	if dir := filepath.Dir(a.sessionFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(a.sessionFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return a.flushMetrics()
}

func (a *app) flushMetrics() error {
	if a.cfg.MetricsFile == "" || a.metrics == nil {
		return nil
	}

	return a.metrics.WriteTextfile(a.cfg.MetricsFile)
}

// run loads the session, applies fn and saves the result. Errors from fn
// are reported after metrics are flushed; the session is saved only when
// fn succeeds.
func (a *app) run(fn func(g family.Game) error) error {
	g, err := a.load()
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		if ferr := a.flushMetrics(); ferr != nil {
			a.logger.Warn("metrics flush failed", "error", ferr)
		}
		return err
	}

	return a.save(g)
}
