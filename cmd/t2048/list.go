package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printGames(cmd.OutOrStdout(), registry.List())
	},
}

func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 't2048 play <id>' to play a game.")
}
