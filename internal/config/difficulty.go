package config

import "fmt"

// DifficultyPreset represents a named spawn-odds level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Spawn4ForPreset returns the chance of spawning a 4 for a preset.
// Normal keeps the classic even split.
func Spawn4ForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.25, nil
	case DifficultyNormal:
		return 0.5, nil
	case DifficultyHard:
		return 0.75, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	p, err := Spawn4ForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Grid.Spawn4Probability = p
	return nil
}
