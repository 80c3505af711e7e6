package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. The game defaults to 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Mouse drag       - Slide tiles in the drag direction
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle full help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 4s spawn 25% of the time
  normal - 4s spawn 50% of the time
  hard   - 4s spawn 75% of the time

Examples:
  t2048 play
  t2048 play --difficulty easy
  t2048 play --seed 42 --log-file ~/.t2048/t2048.log --log-level debug
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "2048"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 't2048 list' to see available games)", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	appLogger.Info("starting local game", "game", gameID, "config", appConfigSource)

	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Mouse:  appConfig.Input.Mouse,
		Logger: appLogger.Logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
