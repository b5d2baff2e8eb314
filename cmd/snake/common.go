package main

import (
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/highscore"
	"github.com/vovakirdan/snake-arcade/internal/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// runtimeConfig describes the local player and terminal.
func runtimeConfig(frontend string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Player = playerName()
	cfg.Frontend = frontend
	return cfg
}

// playerName returns the local user name, or "player".
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// openScores opens the configured high score file.
func openScores() (*highscore.File, error) {
	return highscore.NewFile(appConfig.Storage.HighScoreFile)
}

// openStore opens the session history. A nil store means history is off
// or unavailable; the game runs without it.
func openStore() *storage.Store {
	if !appConfig.Storage.History || appConfig.Storage.Database == "" {
		return nil
	}
	store, err := storage.Open(appConfig.Storage.Database)
	if err != nil {
		log.Warn("could not open history database", "path", appConfig.Storage.Database, "err", err)
		return nil
	}
	return store
}

// newGame creates a game with the configured rules and high score file.
func newGame(rc core.RuntimeConfig) (*snake.Game, error) {
	scores, err := openScores()
	if err != nil {
		return nil, err
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("new game", "frontend", rc.Frontend, "seed", seed, "high_score_file", scores.Path())
	return snake.New(appConfig.Rules(), scores, seed)
}
