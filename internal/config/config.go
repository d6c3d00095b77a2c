// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for configs the game cannot run with.
var ErrInvalid = errors.New("config: invalid match3 config")

// MaxSymbols is the number of distinct tile glyphs the renderer can draw.
const MaxSymbols = 7

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board    Match3Board    `yaml:"board"`
	Scoring  Match3Scoring  `yaml:"scoring"`
	Gameplay Match3Gameplay `yaml:"gameplay"`
	Timing   Match3Timing   `yaml:"timing"`
}

// Match3Board defines the grid dimensions and alphabet size.
type Match3Board struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Symbols int `yaml:"symbols"` // Number of distinct tiles
}

// Match3Scoring defines score constants.
type Match3Scoring struct {
	BasePoints int `yaml:"base_points"` // Per removed tile
	MatchBonus int `yaml:"match_bonus"` // Once per cascade step
}

// Match3Gameplay defines session rules.
type Match3Gameplay struct {
	Moves int `yaml:"moves"` // Accepted swaps per game (moves mode only)
}

// Match3Timing defines presentation pacing in ticks.
type Match3Timing struct {
	StepDelayTicks int `yaml:"step_delay_ticks"` // Ticks each cascade step stays highlighted
	MessageTicks   int `yaml:"message_ticks"`    // Ticks a status message stays visible
}

// Validate checks that the config describes a playable board.
func (c Match3Config) Validate() error {
	switch {
	case c.Board.Width < 3 || c.Board.Height < 3:
		return fmt.Errorf("%w: board %dx%d is smaller than 3x3", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.Symbols < 3 || c.Board.Symbols > MaxSymbols:
		return fmt.Errorf("%w: symbols must be 3..%d, got %d", ErrInvalid, MaxSymbols, c.Board.Symbols)
	case c.Scoring.BasePoints < 0 || c.Scoring.MatchBonus < 0:
		return fmt.Errorf("%w: negative scoring constants", ErrInvalid)
	case c.Gameplay.Moves < 1:
		return fmt.Errorf("%w: moves must be positive, got %d", ErrInvalid, c.Gameplay.Moves)
	case c.Timing.StepDelayTicks < 0 || c.Timing.MessageTicks < 0:
		return fmt.Errorf("%w: negative timing", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. The empty string is accepted
// and means "keep the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
