package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagScoresInteractive bool
	flagScoresClear       bool
	flagScoresRecent      bool
	flagScoresLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and session history",
	Long: `Display the high score and the best recorded sessions.

The high score comes from the high score file. Sessions are recorded in
the history database when storage.history is enabled.

Examples:
  snake scores
  snake scores --recent --limit 20
  snake scores -i
  snake scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the session history")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent sessions instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to list")
}

func runScores(_ *cobra.Command, _ []string) {
	scores, err := openScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score file: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(appConfig.Storage.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, playerName(), width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("High score: %d\n", scores.Load())
	fmt.Println()

	title := "Top sessions"
	list := store.TopSessions
	if flagScoresRecent {
		title = "Recent sessions"
		list = store.RecentSessions
	}

	sessions, err := list(flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to set the first score!")
		return
	}

	fmt.Println(title)
	fmt.Println()
	printSessions(sessions)

	// Show totals
	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("%d sessions, average %.1f, %d food eaten, %s played\n",
			stats.Sessions, stats.AvgScore, stats.TotalFood,
			time.Duration(stats.TotalSecs)*time.Second)
	}
}

func printSessions(sessions []storage.SessionRecord) {
	// Print header
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Food", "Length", "End", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "---", "------", "----")

	for i, rec := range sessions {
		score := fmt.Sprintf("%d", rec.Score)
		if rec.NewRecord {
			score += "*"
		}
		dateStr := rec.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7s  %-5d  %-6d  %-6s  %-12s  %s\n",
			i+1, score, rec.FoodEaten, rec.Length, rec.EndReason, truncate(rec.Player, 12), dateStr)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
