package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twisty/archive"
	"github.com/katalvlaran/twisty/family"
)

func (a *app) archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Save and restore sessions in the archive database",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "put",
			Short: "Store the current session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := a.load()
				if err != nil {
					return err
				}
				return a.withStore(func(s *archive.Store) error {
					if err := s.Put(g.Log()); err != nil {
						return err
					}
					fmt.Fprintf(a.out, "stored %s\n", g.ID())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Restore a stored session into the session file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(s *archive.Store) error {
					log, err := s.Get(args[0])
					if err != nil {
						return err
					}
					k, err := family.Parse(log.SessionType)
					if err != nil {
						return err
					}
					g, err := family.Load(log, a.sessionOptions(k)...)
					if err != nil {
						return err
					}
					if err := a.save(g); err != nil {
						return err
					}
					fmt.Fprintf(a.out, "restored %s (%s)\n", g.ID(), g.Kind())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored sessions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(s *archive.Store) error {
					entries, err := s.List()
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tTYPE\tTWISTS\tVERSION")
					for _, e := range entries {
						fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.ID, e.SessionType, e.Twists, e.Version)
					}
					return tw.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Remove a stored session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(s *archive.Store) error {
					if err := s.Delete(args[0]); err != nil {
						return err
					}
					fmt.Fprintf(a.out, "deleted %s\n", args[0])
					return nil
				})
			},
		},
	)

	return cmd
}

func (a *app) withStore(fn func(*archive.Store) error) (err error) {
	cfg := archive.Config{Path: a.cfg.ArchiveDir, SyncWrites: true}
	if a.cfg.Level() <= slog.LevelDebug {
		cfg.Logger = a.logger
	}
	s, err := archive.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(s)
}
