// Package config provides YAML-based arena configuration loading and
// difficulty presets for the game.
package config

import "github.com/vovakirdan/brickpong/internal/core"

// ArenaConfig contains every constant consumed when a match is set up.
// Units are world units (the reference arena is 900x600) and seconds.
type ArenaConfig struct {
	Bounds  ArenaBounds  `yaml:"bounds"`
	Paddles ArenaPaddles `yaml:"paddles"`
	Ball    ArenaBall    `yaml:"ball"`
	Blocks  ArenaBlocks  `yaml:"blocks"`
}

// ArenaBounds defines the walled play area.
type ArenaBounds struct {
	Width         float64 `yaml:"bounds_width"`
	Height        float64 `yaml:"bounds_height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// ArenaPaddles defines paddle size, placement and speed.
type ArenaPaddles struct {
	Speed   float64 `yaml:"paddle_speed"`
	Width   float64 `yaml:"paddle_width"`
	Height  float64 `yaml:"paddle_height"`
	Offset  float64 `yaml:"paddle_offset"`   // Distance of each paddle from the arena center
	Limit   float64 `yaml:"paddle_limit"`    // Paddle centers stay within [-Limit, +Limit]
	Start1Y float64 `yaml:"paddle1_start_y"` // Player 1 paddle (right side) start height
	Start2Y float64 `yaml:"paddle2_start_y"` // Player 2 paddle (left side) start height
}

// ArenaBall defines the ball's size and serve.
type ArenaBall struct {
	Speed     float64   `yaml:"ball_speed"`
	Size      float64   `yaml:"ball_size"`
	Start     core.Vec2 `yaml:"ball_start"`
	Direction core.Vec2 `yaml:"ball_direction"` // Normalized before use
}

// ArenaBlocks defines the two columns of scorable blocks.
type ArenaBlocks struct {
	RowCount   int     `yaml:"block_row_count"`
	RowSpacing float64 `yaml:"block_row_spacing"`
	Width      float64 `yaml:"block_width"`
	Height     float64 `yaml:"block_height"`
	Inset      float64 `yaml:"block_inset"`       // Distance from the side wall center line
	BaseOffset float64 `yaml:"block_base_offset"` // Height of the first row above the bottom wall
}

// HalfWidth returns half the arena width.
func (c ArenaConfig) HalfWidth() float64 {
	return c.Bounds.Width / 2
}

// HalfHeight returns half the arena height.
func (c ArenaConfig) HalfHeight() float64 {
	return c.Bounds.Height / 2
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string into a preset. Empty means none.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *ArenaConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Ball.Speed *= 0.75
		cfg.Paddles.Speed *= 1.2
	case PresetHard:
		cfg.Ball.Speed *= 1.4
		cfg.Paddles.Speed *= 1.1
	}
}
