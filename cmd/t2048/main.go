// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play in this terminal
//	t2048 serve              - Start SSH server for remote play
//	t2048 sim <moves...>     - Run moves headless and print the board
//	t2048 list               - List available games
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config file
//	--difficulty <preset> - easy, normal or hard spawn odds
//	--log-file <path>     - Write logs to a rotated file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// Resolved by setup before any command runs.
var (
	appConfig       config.Config
	appConfigSource config.Source
	appLogger       = logging.Discard()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide every tile in one direction; equal neighbours merge once per move
and each merge scores one point. A new tile (2, or 4 with the configured
odds) appears after every move that changed the board. The game ends when
the board is full.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a move list without a UI
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --difficulty hard --seed 42
  t2048 serve --ssh :2222
  t2048 sim left up right 37 38
  t2048 config --config ./my-2048.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		appLogger.Close() //nolint:errcheck // nothing to report on exit
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies flag overrides and builds the
// shared logger.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The play command owns the terminal, so it only logs to a file.
	var fallback io.Writer = os.Stderr
	if cmd.Name() == playCmd.Name() {
		fallback = nil
	}
	logger, err := logging.New(cfg.Log, "t2048", fallback)
	if err != nil {
		return fmt.Errorf("cannot set up logging: %w", err)
	}

	appConfig, appConfigSource, appLogger = cfg, src, logger
	t2048.SetConfig(cfg)
	t2048.SetLogger(logger.Logger)

	logger.Debug("configuration loaded", "source", src, "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols, "spawn4", cfg.Grid.Spawn4Probability)
	return nil
}
