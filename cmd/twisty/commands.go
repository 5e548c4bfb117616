package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twisty/family"
	"github.com/katalvlaran/twisty/puzzle"
)

func (a *app) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [session-type]",
		Short: `Start a solved session, e.g. "Cube Nnn(3)" or "Dodeca Megaminx"`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := a.cfg.Puzzle
			if len(args) == 1 {
				typ = args[0]
			}
			k, err := family.Parse(typ)
			if err != nil {
				return err
			}
			g, err := family.New(k, a.sessionOptions(k)...)
			if err != nil {
				return err
			}
			if err := a.save(g); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "new %s session %s (%d pieces)\n", k, g.ID(), g.PieceCount())
			return nil
		},
	}
}

func (a *app) twistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twist <ray> <order> <grip>...",
		Short: "Twist one or more grips about a ray",
		Long: `Twist turns every listed grip about the named ray. A grip is the
comma-separated layer pair of the ray's axis, e.g. "1,-1". Negative orders
turn the other way. Flags must precede the ray so that negative numbers
after it are read as arguments.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("order %q: %w", args[1], err)
			}
			grips, err := parseGrips(args[2:])
			if err != nil {
				return err
			}
			return a.run(func(g family.Game) error {
				if err := g.Twist(args[0], order, grips); err != nil {
					return err
				}
				a.printState(g)
				return nil
			})
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (a *app) historyCmd(use, short string, op func(family.Game) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(g family.Game) error {
				if err := op(g); err != nil {
					return err
				}
				a.printState(g)
				return nil
			})
		},
	}
}

func (a *app) scrambleCmd() *cobra.Command {
	var (
		seed  int64
		moves int
	)
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Scramble the puzzle and clear history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			if !cmd.Flags().Changed("moves") {
				moves = a.cfg.ScrambleMoves
			}
			if moves < 0 {
				return fmt.Errorf("moves must not be negative, got %d", moves)
			}
			return a.run(func(g family.Game) error {
				g.Scramble(rand.New(rand.NewSource(seed)), puzzle.WithMoves(moves))
				a.logger.Info("scrambled", "seed", seed, "moves", moves)
				a.printState(g)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&moves, "moves", 0, "number of random twists (default from config)")

	return cmd
}

func (a *app) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Solve the puzzle and clear history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(g family.Game) error {
				g.Reset()
				a.printState(g)
				return nil
			})
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			twists, undone := g.History()
			fmt.Fprintf(a.out, "type:        %s\n", g.Kind())
			fmt.Fprintf(a.out, "id:          %s\n", g.ID())
			fmt.Fprintf(a.out, "pieces:      %d\n", g.PieceCount())
			fmt.Fprintf(a.out, "rays:        %s\n", strings.Join(g.RayNames(), " "))
			fmt.Fprintf(a.out, "grips:       %s\n", formatGrips(g.Grips()))
			fmt.Fprintf(a.out, "solved:      %t\n", g.IsSolved())
			fmt.Fprintf(a.out, "history:     %d twists, %d undone\n", twists, undone)
			fmt.Fprintf(a.out, "permutation: %v\n", g.Permutation())
			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the invariants of every ray system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := family.ValidateRaySystems(); err != nil {
				return err
			}
			for _, f := range family.Families {
				fmt.Fprintf(a.out, "%s: ok\n", f)
			}
			return nil
		},
	}
}

func (a *app) printState(g family.Game) {
	twists, undone := g.History()
	fmt.Fprintf(a.out, "solved=%t twists=%d undone=%d\n", g.IsSolved(), twists, undone)
}

// parseGrips reads grips written as "a,b".
func parseGrips(args []string) ([][]int, error) {
	grips := make([][]int, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		grip := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("grip %q: %w", arg, err)
			}
			grip[i] = n
		}
		grips = append(grips, grip)
	}

	return grips, nil
}

func formatGrips(grips [][]int) string {
	parts := make([]string, len(grips))
	for i, g := range grips {
		nums := make([]string, len(g))
		for j, n := range g {
			nums[j] = strconv.Itoa(n)
		}
		parts[i] = strings.Join(nums, ",")
	}

	return strings.Join(parts, " ")
}
