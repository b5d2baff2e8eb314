package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Open the game in a graphical window. This is also what plain 'snake' does.

The board size comes from the config (40x30 cells by default) and each
cell is window.cell_size pixels. Press C on the game over screen to copy
your result to the clipboard.

Examples:
  snake window
  snake window --difficulty easy
  snake window --seed 42`,
	Run: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	rc := runtimeConfig("window")
	game, err := newGame(rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	opts := window.Options{
		CellSize: appConfig.Window.CellSize,
		Title:    appConfig.Window.Title,
		Player:   rc.Player,
		Store:    store,
	}
	runErr := window.Run(game, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
