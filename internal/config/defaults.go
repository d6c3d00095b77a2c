package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Width:   8,
			Height:  8,
			Symbols: 5,
		},
		Scoring: Match3Scoring{
			BasePoints: 10,
			MatchBonus: 50,
		},
		Gameplay: Match3Gameplay{
			Moves: 30,
		},
		Timing: Match3Timing{
			StepDelayTicks: 24, // ~400ms at 60fps
			MessageTicks:   48, // ~800ms at 60fps
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode, or nil
// for an unknown mode. Both modes share one file.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_endless":
		return defaultMatch3YAML
	default:
		return nil
	}
}
