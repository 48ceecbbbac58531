package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid arena config")

// Validate checks that cfg describes a playable arena.
// All problems are reported together.
func Validate(cfg ArenaConfig) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	fields := []struct {
		name string
		val  float64
	}{
		{"bounds_width", cfg.Bounds.Width},
		{"bounds_height", cfg.Bounds.Height},
		{"wall_thickness", cfg.Bounds.WallThickness},
		{"paddle_speed", cfg.Paddles.Speed},
		{"paddle_width", cfg.Paddles.Width},
		{"paddle_height", cfg.Paddles.Height},
		{"paddle_offset", cfg.Paddles.Offset},
		{"paddle_limit", cfg.Paddles.Limit},
		{"paddle1_start_y", cfg.Paddles.Start1Y},
		{"paddle2_start_y", cfg.Paddles.Start2Y},
		{"ball_speed", cfg.Ball.Speed},
		{"ball_size", cfg.Ball.Size},
		{"block_row_spacing", cfg.Blocks.RowSpacing},
		{"block_width", cfg.Blocks.Width},
		{"block_height", cfg.Blocks.Height},
		{"block_inset", cfg.Blocks.Inset},
		{"block_base_offset", cfg.Blocks.BaseOffset},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			fail("%s must be a finite number, got %v", f.name, f.val)
		}
	}

	positive := []struct {
		name string
		val  float64
	}{
		{"bounds_width", cfg.Bounds.Width},
		{"bounds_height", cfg.Bounds.Height},
		{"wall_thickness", cfg.Bounds.WallThickness},
		{"paddle_speed", cfg.Paddles.Speed},
		{"paddle_width", cfg.Paddles.Width},
		{"paddle_height", cfg.Paddles.Height},
		{"ball_speed", cfg.Ball.Speed},
		{"ball_size", cfg.Ball.Size},
		{"block_width", cfg.Blocks.Width},
		{"block_height", cfg.Blocks.Height},
	}
	for _, p := range positive {
		if !(p.val > 0) {
			fail("%s must be positive, got %v", p.name, p.val)
		}
	}

	if cfg.Paddles.Limit < 0 {
		fail("paddle_limit must not be negative, got %v", cfg.Paddles.Limit)
	}
	if cfg.Paddles.Limit > cfg.HalfHeight() {
		fail("paddle_limit %v exceeds half the arena height %v", cfg.Paddles.Limit, cfg.HalfHeight())
	}
	if cfg.Paddles.Offset <= 0 || cfg.Paddles.Offset >= cfg.HalfWidth() {
		fail("paddle_offset %v must lie inside (0, %v)", cfg.Paddles.Offset, cfg.HalfWidth())
	}

	if cfg.Ball.Direction.Len() == 0 || !cfg.Ball.Direction.IsFinite() {
		fail("ball_direction must be a finite non-zero vector, got %v", cfg.Ball.Direction)
	}
	if !cfg.Ball.Start.IsFinite() {
		fail("ball_start must be finite, got %v", cfg.Ball.Start)
	}

	if cfg.Blocks.RowCount < 0 {
		fail("block_row_count must not be negative, got %d", cfg.Blocks.RowCount)
	}
	if cfg.Blocks.RowCount > 1 && cfg.Blocks.RowSpacing <= 0 {
		fail("block_row_spacing must be positive with more than one row, got %v", cfg.Blocks.RowSpacing)
	}
	if cfg.Blocks.RowCount > 0 {
		top := -cfg.HalfHeight() + cfg.Blocks.BaseOffset +
			float64(cfg.Blocks.RowCount-1)*cfg.Blocks.RowSpacing + cfg.Blocks.Height/2
		if top > cfg.HalfHeight() {
			fail("%d block rows reach y=%v beyond the top wall at %v", cfg.Blocks.RowCount, top, cfg.HalfHeight())
		}
	}

	return errors.Join(errs...)
}
