// snake is a classic Snake arcade game with a graphical window, a terminal
// UI and an SSH server.
//
// Usage:
//
//	snake                  - Play in a graphical window
//	snake play             - Play in the terminal
//	snake window           - Play in a graphical window
//	snake scores           - Show the high score and session history
//	snake serve            - Start SSH server for remote play
//	snake check            - Verify the environment and run a smoke test
//
// Global flags:
//
//	--config <path>           - Custom config YAML
//	--difficulty <preset>     - easy, normal, hard or fixed
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--db <path>               - Session history database
//	--high-score-file <path>  - High score file (default: ~/.snake/high_score.txt)
//	--log-file <path>         - Write logs to a file
//	--debug                   - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

var (
	// Global flags
	flagConfig        string
	flagDifficulty    string
	flagSeed          int64
	flagDBPath        string
	flagHighScoreFile string
	flagLogFile       string
	flagDebug         bool
	flagNoHistory     bool

	// Loaded by the root PersistentPreRunE
	appConfig config.Config
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game",
	Long: `Snake is the classic arcade game: steer the snake around the board,
eat food to grow and score points, and avoid the walls and your own tail.
The game speeds up as your score grows and the best score is kept between runs.

Without a subcommand the game opens in a graphical window.

Available commands:
  play     - Play in the terminal
  window   - Play in a graphical window
  scores   - View the high score and session history
  serve    - Start SSH server for remote play
  check    - Verify the environment and run a smoke test

Controls:
  Space/Enter   - Start / resume
  Arrows/WASD   - Steer
  P             - Pause
  R             - Restart (after game over)
  Esc           - Back to menu
  Q             - Quit

Examples:
  snake
  snake play --difficulty hard
  snake --config ./my-snake.yaml
  snake serve --ssh :2222
  snake scores -i`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run:               runWindow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "high-score-file", "", "Path to high score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record finished sessions")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup configures logging and loads the configuration for every command.
func setup(cmd *cobra.Command, _ []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	appConfig = cfg
	log.Debug("config loaded", "source", config.Locate(flagConfig), "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))
	return nil
}

// loadConfig layers the difficulty preset and explicit flags over the
// loaded configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Database = flagDBPath
	}
	if flags.Changed("high-score-file") {
		cfg.Storage.HighScoreFile = flagHighScoreFile
	}
	if flagNoHistory {
		cfg.Storage.History = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
