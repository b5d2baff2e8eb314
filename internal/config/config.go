// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/snake"
)

// ErrInvalidConfig is returned when a loaded configuration cannot run a game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the snake game.
// Every field can be overridden by a SNAKE_* environment variable.
type Config struct {
	Grid    GridConfig    `yaml:"grid" envPrefix:"GRID_"`
	Speed   SpeedConfig   `yaml:"speed" envPrefix:"SPEED_"`
	Scoring ScoringConfig `yaml:"scoring" envPrefix:"SCORING_"`
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Window  WindowConfig  `yaml:"window" envPrefix:"WINDOW_"`
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// SpeedConfig defines the tick rate progression.
type SpeedConfig struct {
	Initial   int `yaml:"initial" env:"INITIAL"`       // Ticks per second at session start
	Max       int `yaml:"max" env:"MAX"`               // Upper bound
	StepEvery int `yaml:"step_every" env:"STEP_EVERY"` // +1 each time the score crosses a multiple; 0 = fixed speed
}

// ScoringConfig defines how food is scored.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food" env:"POINTS_PER_FOOD"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file" env:"HIGH_SCORE_FILE"`
	Database      string `yaml:"database" env:"DATABASE"`
	History       bool   `yaml:"history" env:"HISTORY"` // Record finished sessions in the database
}

// WindowConfig defines the graphical frontend.
type WindowConfig struct {
	CellSize int    `yaml:"cell_size" env:"CELL_SIZE"` // Pixels per grid cell
	Title    string `yaml:"title" env:"TITLE"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Addr        string `yaml:"addr" env:"ADDR"`
	HostKeyPath string `yaml:"host_key_path" env:"HOST_KEY_PATH"`
	IdleMinutes int    `yaml:"idle_minutes" env:"IDLE_MINUTES"` // 0 disables the idle timeout
}

// Rules converts the gameplay part of the configuration to game rules.
func (c Config) Rules() snake.Rules {
	return snake.Rules{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		PointsPerFood: c.Scoring.PointsPerFood,
		InitialSpeed:  c.Speed.Initial,
		MaxSpeed:      c.Speed.Max,
		SpeedStep:     c.Speed.StepEvery,
	}
}

// WindowSize returns the graphical window size in pixels.
func (c Config) WindowSize() (w, h int) {
	return c.Grid.Width * c.Window.CellSize, c.Grid.Height * c.Window.CellSize
}

// Validate reports whether the configuration can run a game.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Window.CellSize < 4:
		return fmt.Errorf("%w: window.cell_size must be at least 4, got %d", ErrInvalidConfig, c.Window.CellSize)
	case c.Storage.HighScoreFile == "":
		return fmt.Errorf("%w: storage.high_score_file is empty", ErrInvalidConfig)
	case c.Storage.History && c.Storage.Database == "":
		return fmt.Errorf("%w: storage.database is empty but history is enabled", ErrInvalidConfig)
	case c.Server.IdleMinutes < 0:
		return fmt.Errorf("%w: server.idle_minutes must not be negative", ErrInvalidConfig)
	}
	return nil
}
