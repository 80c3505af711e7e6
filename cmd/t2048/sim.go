package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagSimRandom int
	flagSimQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [moves...]",
	Short: "Run a move list without a UI",
	Long: `Play a sequence of moves headless and print the board after each one,
followed by a YAML snapshot of the final state.

Moves are direction names (left), initials (l) or arrow key codes
(37 left, 38 up, 39 right, 40 down), separated by spaces or commas.
With --random N, N random moves are played instead. The run stops early
when the game is over.

Examples:
  t2048 sim --seed 7 left up right down
  t2048 sim --seed 7 l,u,r,d
  t2048 sim --seed 7 --random 500 --quiet`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRandom, "random", 0, "Play this many random moves")
	simCmd.Flags().BoolVarP(&flagSimQuiet, "quiet", "q", false, "Only print the final snapshot")
}

func runSim(cmd *cobra.Command, args []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var moves []engine.Direction
	switch {
	case flagSimRandom > 0 && len(args) > 0:
		return fmt.Errorf("pass either moves or --random, not both")
	case flagSimRandom > 0:
		moves = randomMoves(rand.New(rand.NewSource(seed)), flagSimRandom)
	default:
		var err error
		if moves, err = parseMoves(args); err != nil {
			return err
		}
		if len(moves) == 0 {
			return fmt.Errorf("no moves given")
		}
	}

	return simulate(cmd.OutOrStdout(), appConfig, appLogger.Logger, seed, moves, !flagSimQuiet)
}

// parseMoves reads directions from arguments that may hold several
// comma-separated moves each.
func parseMoves(args []string) ([]engine.Direction, error) {
	var moves []engine.Direction
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			d, err := engine.ParseDirection(field)
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", len(moves)+1, err)
			}
			moves = append(moves, d)
		}
	}
	return moves, nil
}

func randomMoves(rng *rand.Rand, n int) []engine.Direction {
	moves := make([]engine.Direction, n)
	for i := range moves {
		moves[i] = engine.Directions[rng.Intn(len(engine.Directions))]
	}
	return moves
}

// simulate plays moves on a fresh game and writes a trace and the final
// snapshot to w.
func simulate(w io.Writer, cfg config.Config, logger *log.Logger, seed int64, moves []engine.Direction, trace bool) error {
	cfg.Animation.Enabled = false
	g := t2048.NewWithConfig(cfg, logger)
	g.Reset(core.RuntimeConfig{ScreenW: 1 << 10, ScreenH: 1 << 10, TickRate: 60, Seed: seed})

	if trace {
		fmt.Fprintf(w, "start\n%s\n\n", g.Grid())
	}

	for i, d := range moves {
		out := g.Move(d)
		if trace {
			fmt.Fprintf(w, "%d %s changed=%t merges=%d score=%d\n%s\n\n",
				i+1, d, out.Changed, out.Merges, g.Score(), g.Grid())
		}
		if g.Phase() == t2048.PhaseGameOver {
			if trace {
				fmt.Fprintf(w, "game over after %d moves\n\n", i+1)
			}
			break
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Snapshot()); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return enc.Close()
}
