package brickpong

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(config.DefaultArenaConfig(), opts...)
	require.NoError(t, err)
	return e
}

func newMatch(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := newEngine(t, opts...)
	e.HandleInput(pressed(core.ActionConfirm))
	require.Equal(t, StatePlaying, e.State())
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Bounds.Width = 0

	_, err := New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewWorldLayout(t *testing.T) {
	w := NewWorld(config.DefaultArenaConfig())
	cols := w.Colliders()
	require.Len(t, cols, 2+4+14)

	assert.Equal(t, core.V(400, 200), w.Paddle(core.Player1).Pos)
	assert.Equal(t, core.V(-400, -200), w.Paddle(core.Player2).Pos)
	assert.Same(t, cols[0], w.Paddle(core.Player1))
	assert.Same(t, cols[1], w.Paddle(core.Player2))

	walls := []core.Vec2{core.V(-450, 0), core.V(450, 0), core.V(0, -300), core.V(0, 300)}
	for i, pos := range walls {
		assert.Equal(t, KindWall, cols[2+i].Kind)
		assert.Equal(t, pos, cols[2+i].Pos)
	}
	assert.Equal(t, core.V(10, 610), cols[2].Size)
	assert.Equal(t, core.V(910, 10), cols[4].Size)

	for row := range 7 {
		p1 := cols[6+row]
		p2 := cols[13+row]
		y := -300 + 48 + float64(row)*84
		assert.Equal(t, core.Player1, p1.Owner)
		assert.Equal(t, core.V(430, y), p1.Pos)
		assert.Equal(t, core.Player2, p2.Owner)
		assert.Equal(t, core.V(-430, y), p2.Pos)
	}

	assert.Equal(t, core.V(0, -50), w.Ball.Pos)
	assert.InDelta(t, 400, w.Ball.Velocity.Len(), 1e-9)
	assert.Equal(t, 7, w.BlocksRemaining(core.Player1))
	assert.Equal(t, 7, w.BlocksRemaining(core.Player2))
}

func TestFirstTickMovesBall(t *testing.T) {
	e := newMatch(t)

	hits := e.Tick(core.NewInputFrame())
	assert.Empty(t, hits)

	ball := e.World().Ball
	assert.InDelta(t, 4.714, ball.Pos.X, 1e-3)
	assert.InDelta(t, -54.714, ball.Pos.Y, 1e-3)
	assert.Equal(t, uint64(1), e.Ticks())
}

func TestBallBouncesOffBottomWall(t *testing.T) {
	e := newMatch(t)
	in := core.NewInputFrame()

	var wallHit *Hit
	for range 100 {
		for _, h := range e.Tick(in) {
			if h.Kind == KindWall {
				wallHit = &h
			}
		}
		if wallHit != nil {
			break
		}
	}

	require.NotNil(t, wallHit, "ball never reached a wall")
	assert.Equal(t, uint64(50), e.Ticks())
	assert.Equal(t, core.SideTop, wallHit.Side, "ball strikes the bottom wall's top face")
	assert.True(t, wallHit.ReflectY)
	assert.False(t, wallHit.ReflectX)

	v := e.World().Ball.Velocity
	assert.InDelta(t, 282.8, v.Y, 0.1)
	assert.InDelta(t, 282.8, v.X, 0.1)
}

func TestPaddleClamp(t *testing.T) {
	e := newMatch(t)

	for range 200 {
		e.Tick(held(core.ActionP1Up, core.ActionP2Down))
	}
	assert.Equal(t, 220.0, e.World().Paddle(core.Player1).Pos.Y)
	assert.Equal(t, -220.0, e.World().Paddle(core.Player2).Pos.Y)

	for range 200 {
		e.Tick(held(core.ActionP1Down, core.ActionP2Up))
	}
	assert.Equal(t, -220.0, e.World().Paddle(core.Player1).Pos.Y)
	assert.Equal(t, 220.0, e.World().Paddle(core.Player2).Pos.Y)
}

func TestOpposingKeysCancel(t *testing.T) {
	e := newMatch(t)
	e.Tick(held(core.ActionP1Up, core.ActionP1Down))
	assert.Equal(t, 200.0, e.World().Paddle(core.Player1).Pos.Y)
}

func TestRandomPlayInvariants(t *testing.T) {
	e := newMatch(t)
	rng := rand.New(rand.NewPCG(7, 11))
	moves := []core.Action{core.ActionP1Up, core.ActionP1Down, core.ActionP2Up, core.ActionP2Down}

	var prev [2]uint
	for range 5000 {
		in := core.NewInputFrame()
		for _, a := range moves {
			if rng.IntN(2) == 0 {
				in.Hold(a)
			}
		}
		e.Tick(in)

		w := e.World()
		for _, p := range []core.PlayerID{core.Player1, core.Player2} {
			y := w.Paddle(p).Pos.Y
			require.LessOrEqual(t, math.Abs(y), 220.0, "paddle %s out of range", p)

			score := e.Score(p)
			require.GreaterOrEqual(t, score, prev[p], "score decreased")
			require.LessOrEqual(t, score-prev[p], uint(7))
			require.Equal(t, 7, int(score)+w.BlocksRemaining(p), "every point is one destroyed block")
			prev[p] = score
		}
		require.True(t, w.Ball.Pos.IsFinite())
	}
}

func TestPauseIsTransparent(t *testing.T) {
	paused := newMatch(t)
	straight := newMatch(t)
	in := held(core.ActionP1Up)

	for range 30 {
		paused.Tick(in)
		straight.Tick(in)
	}

	before := paused.Snapshot().Hash()
	paused.HandleInput(pressed(core.ActionPause))
	require.Equal(t, StatePaused, paused.State())

	assert.Zero(t, paused.Advance(time.Second, in))
	assert.Empty(t, paused.Tick(in))
	assert.Equal(t, before, paused.Snapshot().Hash(), "nothing moves while paused")

	paused.HandleInput(pressed(core.ActionPause))
	require.Equal(t, StatePlaying, paused.State())

	for range 30 {
		paused.Tick(in)
		straight.Tick(in)
	}
	assert.Equal(t, straight.Snapshot().Hash(), paused.Snapshot().Hash())
}

func TestHandleInputTransitions(t *testing.T) {
	e := newEngine(t)

	e.HandleInput(pressed(core.ActionPause))
	e.HandleInput(pressed(core.ActionBack))
	assert.Equal(t, StateMenu, e.State())
	assert.False(t, e.InMatch())

	e.HandleInput(pressed(core.ActionConfirm))
	assert.Equal(t, StatePlaying, e.State())
	assert.True(t, e.InMatch())

	e.HandleInput(pressed(core.ActionPause))
	assert.Equal(t, StatePaused, e.State())

	e.HandleInput(pressed(core.ActionBack))
	assert.Equal(t, StatePaused, e.State(), "back is ignored while paused")

	e.HandleInput(pressed(core.ActionPause))
	assert.Equal(t, StatePlaying, e.State())

	e.HandleInput(pressed(core.ActionBack))
	assert.Equal(t, StateMenu, e.State())
	assert.False(t, e.InMatch())
	assert.Nil(t, e.World())
}

func TestNewMatchResetsSession(t *testing.T) {
	e := newMatch(t)
	for range 20 {
		e.Tick(core.NewInputFrame())
	}
	e.score.Credit(core.Player1)
	e.World().Remove(e.World().Colliders()[6].ID)

	e.HandleInput(pressed(core.ActionBack))
	e.HandleInput(pressed(core.ActionConfirm))

	assert.Zero(t, e.Score(core.Player1))
	assert.Zero(t, e.Score(core.Player2))
	assert.Zero(t, e.Ticks())
	assert.Equal(t, 7, e.World().BlocksRemaining(core.Player1))
	assert.Equal(t, core.V(0, -50), e.World().Ball.Pos)
}

func TestMatchEndCallback(t *testing.T) {
	var got []MatchSummary
	e := newMatch(t, WithTickRate(100), WithMatchEnd(func(s MatchSummary) {
		got = append(got, s)
	}))

	for range 25 {
		e.Tick(core.NewInputFrame())
	}
	e.score.Credit(core.Player2)
	e.HandleInput(pressed(core.ActionBack))

	require.Len(t, got, 1)
	assert.Equal(t, uint(0), got[0].Score1)
	assert.Equal(t, uint(1), got[0].Score2)
	assert.Equal(t, uint64(25), got[0].Ticks)
	assert.Equal(t, 250*time.Millisecond, got[0].Duration)
	assert.Equal(t, 14, got[0].BlocksLeft)

	winner, ok := got[0].Winner()
	assert.True(t, ok)
	assert.Equal(t, core.Player2, winner)

	// Leaving the menu is not a match end
	e.HandleInput(pressed(core.ActionBack))
	assert.Len(t, got, 1)
}

func TestAdvanceRunsFixedSteps(t *testing.T) {
	e := newEngine(t, WithTickRate(100), WithMaxStepsPerFrame(4))
	none := core.NewInputFrame()

	assert.Zero(t, e.Advance(time.Second, none), "menu never ticks")

	assert.Equal(t, 3, e.Advance(35*time.Millisecond, pressed(core.ActionConfirm)))
	assert.Equal(t, 1, e.Advance(7*time.Millisecond, none))
	assert.Equal(t, uint64(4), e.Ticks())

	assert.Equal(t, 4, e.Advance(time.Second, none), "steps are capped per frame")
	assert.Zero(t, e.Advance(5*time.Millisecond, none), "backlog beyond the cap is dropped")
	assert.Equal(t, uint64(8), e.Ticks())
}

func TestAdvanceDropsTimeOutsidePlaying(t *testing.T) {
	e := newMatch(t, WithTickRate(100))
	none := core.NewInputFrame()

	assert.Zero(t, e.Advance(6*time.Millisecond, none))
	assert.Zero(t, e.Advance(time.Second, pressed(core.ActionPause)))
	assert.Zero(t, e.Advance(6*time.Millisecond, pressed(core.ActionPause)), "resume starts from an empty accumulator")
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, 1, e.Advance(6*time.Millisecond, none))
}

func TestAdvanceIgnoresNegativeElapsed(t *testing.T) {
	e := newMatch(t, WithTickRate(100))
	none := core.NewInputFrame()

	assert.Zero(t, e.Advance(-time.Second, none))
	assert.Equal(t, 1, e.Advance(10*time.Millisecond, none), "a negative frame leaves no deficit")
}

func TestWithTickRateRejectsOutOfRange(t *testing.T) {
	for _, tps := range []int{0, -5, core.MaxTickRate + 1, 2_000_000_000} {
		e := newEngine(t, WithTickRate(tps))
		assert.InDelta(t, 1.0/DefaultTickRate, e.TickSeconds(), 1e-12, "tps=%d", tps)
	}

	e := newMatch(t, WithTickRate(core.MaxTickRate))
	e.Tick(core.NewInputFrame())
	assert.Equal(t, time.Millisecond, e.Summary().Duration)
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		e := newMatch(t)
		rng := rand.New(rand.NewPCG(3, 5))
		for range 2000 {
			in := core.NewInputFrame()
			if rng.IntN(3) == 0 {
				in.Hold(core.ActionP1Down)
			}
			if rng.IntN(3) == 0 {
				in.Hold(core.ActionP2Up)
			}
			e.Advance(time.Duration(rng.IntN(40))*time.Millisecond, in)
		}
		return e.Snapshot().Hash()
	}
	assert.Equal(t, run(), run())
}

func TestSnapshot(t *testing.T) {
	e := newEngine(t)

	snap := e.Snapshot()
	assert.Equal(t, StateMenu, snap.State)
	assert.Empty(t, snap.Entities)
	_, ok := snap.Ball()
	assert.False(t, ok)
	assert.Equal(t, 910.0, snap.Width)
	assert.Equal(t, 610.0, snap.Height)

	e.HandleInput(pressed(core.ActionConfirm))
	e.Tick(core.NewInputFrame())

	snap = e.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Len(t, snap.Entities, 21)
	assert.Equal(t, [2]int{7, 7}, snap.BlocksLeft)
	assert.Equal(t, KindPaddle, snap.Entities[0].Kind)

	ball, ok := snap.Ball()
	require.True(t, ok)
	assert.Equal(t, e.World().Ball.Pos, ball.Pos)
}

func TestBallColorPulses(t *testing.T) {
	e := newMatch(t)
	assert.Equal(t, BallColor, e.ballColor())

	// sin(t/2) is negative for t in (2π, 4π) seconds
	e.ticks = uint64(8 * DefaultTickRate)
	assert.Equal(t, core.ColorBrightMagenta, e.ballColor())
}
