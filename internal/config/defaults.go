package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic 40x30 board at
// 20 px per cell, speed 10 rising by one every 50 points up to 20.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 30,
		},
		Speed: SpeedConfig{
			Initial:   10,
			Max:       20,
			StepEvery: 50,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
		},
		Storage: StorageConfig{
			HighScoreFile: "~/.snake/high_score.txt",
			Database:      "~/.snake/history.db",
			History:       true,
		},
		Window: WindowConfig{
			CellSize: 20,
			Title:    "Snake Game",
		},
		Server: ServerConfig{
			Addr:        ":23234",
			HostKeyPath: "~/.snake/ssh_host_ed25519",
			IdleMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
