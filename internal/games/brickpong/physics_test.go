package brickpong

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

func TestMovePaddlesIndependent(t *testing.T) {
	w := NewWorld(config.DefaultArenaConfig())
	in := core.NewInputFrame()
	in.Hold(core.ActionP1Down)
	in.Hold(core.ActionP2Up)

	MovePaddles(w, in, 0.1, 220)

	assert.InDelta(t, 150, w.Paddle(core.Player1).Pos.Y, 1e-9)
	assert.InDelta(t, -150, w.Paddle(core.Player2).Pos.Y, 1e-9)
	assert.Equal(t, 400.0, w.Paddle(core.Player1).Pos.X, "paddles move vertically only")
	assert.Equal(t, -400.0, w.Paddle(core.Player2).Pos.X)
}

func TestMovePaddlesIdleInput(t *testing.T) {
	w := NewWorld(config.DefaultArenaConfig())
	MovePaddles(w, core.NewInputFrame(), 1, 220)

	assert.Equal(t, 200.0, w.Paddle(core.Player1).Pos.Y)
	assert.Equal(t, -200.0, w.Paddle(core.Player2).Pos.Y)
}

func TestMoveBall(t *testing.T) {
	w := NewWorld(config.DefaultArenaConfig())
	w.Ball.Pos = core.V(10, 10)
	w.Ball.Velocity = core.V(-300, 120)

	MoveBall(w, 0.5)

	assert.Equal(t, core.V(-140, 70), w.Ball.Pos)
	assert.Equal(t, core.V(-300, 120), w.Ball.Velocity, "velocity is untouched")
}

func TestScoreboard(t *testing.T) {
	var sb Scoreboard
	_, ok := sb.Leader()
	assert.False(t, ok, "fresh board is a tie")

	sb.Credit(core.Player2)
	sb.Credit(core.Player2)
	sb.Credit(core.Player1)
	assert.Equal(t, uint(1), sb.Score(core.Player1))
	assert.Equal(t, uint(2), sb.Score(core.Player2))

	leader, ok := sb.Leader()
	assert.True(t, ok)
	assert.Equal(t, core.Player2, leader)

	sb.Reset()
	assert.Zero(t, sb.Score(core.Player1))
	assert.Zero(t, sb.Score(core.Player2))
}
