package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
)

var flagNoClipboard bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the game in the terminal.

The board shrinks to fit small terminals (the configured size is the
maximum). If the terminal gets too small to show the board the game
pauses until it is large enough again.

Extra keys:
  Tab      - Show the session history (from the menu)
  Ctrl+S   - Save a screenshot to ~/.snake/screenshots

Difficulty options:
  easy   - 6 ticks/s, up to 15, +1 every 50 points
  normal - 10 ticks/s, up to 20, +1 every 50 points
  hard   - 14 ticks/s, up to 25, +1 every 30 points
  fixed  - No progression, stays at the config's initial speed

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --log-file snake.log`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoClipboard, "no-clipboard", false, "Do not copy screenshots to the clipboard")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: 'snake play' needs a terminal")
		os.Exit(1)
	}

	// The TUI owns the terminal; logs only go to --log-file.
	if flagLogFile == "" {
		log.SetOutput(io.Discard)
	}

	rc := runtimeConfig("tui")
	game, err := newGame(rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	opts := tui.Options{
		Player:    rc.Player,
		Frontend:  rc.Frontend,
		Store:     store,
		Clipboard: !flagNoClipboard,
	}
	if home, err := os.UserHomeDir(); err == nil {
		opts.ScreenshotDir = filepath.Join(home, ".snake", "screenshots")
	}

	runErr := tui.Run(game, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
