package config

import (
	_ "embed"

	"github.com/vovakirdan/brickpong/internal/core"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the reference 900x600 arena.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Bounds: ArenaBounds{
			Width:         900,
			Height:        600,
			WallThickness: 10,
		},
		Paddles: ArenaPaddles{
			Speed:   500,
			Width:   20,
			Height:  120,
			Offset:  400,
			Limit:   220,
			Start1Y: 200,
			Start2Y: -200,
		},
		Ball: ArenaBall{
			Speed:     400,
			Size:      20,
			Start:     core.V(0, -50),
			Direction: core.V(0.5, -0.5),
		},
		Blocks: ArenaBlocks{
			RowCount:   7,
			RowSpacing: 84,
			Width:      25,
			Height:     80,
			Inset:      20,
			BaseOffset: 48,
		},
	}
}

// DefaultYAML returns the embedded default arena YAML.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
