package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No speed progression
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty validates a preset name. An empty name means no preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
}

// ApplyPreset modifies the speed settings based on a difficulty preset.
// Normal restores the classic progression; fixed keeps the initial speed
// for the whole session.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 6
		cfg.Speed.Max = 15
		cfg.Speed.StepEvery = 50
	case DifficultyNormal:
		cfg.Speed.Initial = 10
		cfg.Speed.Max = 20
		cfg.Speed.StepEvery = 50
	case DifficultyHard:
		cfg.Speed.Initial = 14
		cfg.Speed.Max = 25
		cfg.Speed.StepEvery = 30
	case DifficultyFixed:
		cfg.Speed.Max = cfg.Speed.Initial
		cfg.Speed.StepEvery = 0
	}
}
