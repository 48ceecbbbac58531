package brickpong

import "github.com/vovakirdan/brickpong/internal/core"

// paddleKeys maps each player to its held up/down actions.
var paddleKeys = [2]struct{ up, down core.Action }{
	core.Player1: {up: core.ActionP1Up, down: core.ActionP1Down},
	core.Player2: {up: core.ActionP2Up, down: core.ActionP2Down},
}

// MovePaddles moves both paddles vertically from held input.
// Each paddle center stays within [-limit, +limit].
func MovePaddles(w *World, in core.InputFrame, tick, limit float64) {
	for _, p := range []core.PlayerID{core.Player1, core.Player2} {
		paddle := w.Paddle(p)
		keys := paddleKeys[p]
		dir := in.Axis(keys.down, keys.up)
		paddle.Pos.Y = core.ClampF(paddle.Pos.Y+dir*paddle.Speed*tick, -limit, limit)
	}
}

// MoveBall advances the ball along its velocity.
func MoveBall(w *World, tick float64) {
	w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Velocity.Scale(tick))
}
