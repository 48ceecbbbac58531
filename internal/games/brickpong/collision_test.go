package brickpong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickpong/internal/core"
)

// testWorld builds a world with a ball and the given colliders, in order.
func testWorld(ballPos, ballVel core.Vec2, colliders ...Entity) *World {
	w := &World{}
	w.Ball = &Entity{ID: w.allocID(), Kind: KindBall, Pos: ballPos, Size: core.V(20, 20), Velocity: ballVel}
	for _, c := range colliders {
		w.add(c)
	}
	return w
}

func wall(x, y, wdt, h float64) Entity {
	return Entity{Kind: KindWall, Pos: core.V(x, y), Size: core.V(wdt, h)}
}

func block(owner core.PlayerID, x, y float64) Entity {
	return Entity{Kind: KindBlock, Pos: core.V(x, y), Size: core.V(25, 80), Owner: owner}
}

func TestResolveReflectsOnlyIntoFace(t *testing.T) {
	w := testWorld(core.V(-12, 0), core.V(100, 30), wall(0, 0, 10, 100))
	var sb Scoreboard

	hits := ResolveCollisions(w, &sb)
	require.Len(t, hits, 1)
	assert.Equal(t, core.SideLeft, hits[0].Side)
	assert.True(t, hits[0].ReflectX)
	assert.False(t, hits[0].ReflectY)
	assert.Equal(t, core.V(-100, 30), w.Ball.Velocity)

	// Still overlapping but already receding: no second flip
	hits = ResolveCollisions(w, &sb)
	require.Len(t, hits, 1)
	assert.False(t, hits[0].ReflectX)
	assert.Equal(t, core.V(-100, 30), w.Ball.Velocity)
}

func TestResolveFaces(t *testing.T) {
	tests := []struct {
		name     string
		ballPos  core.Vec2
		vel      core.Vec2
		side     core.Side
		expected core.Vec2
	}{
		{"right face moving left", core.V(12, 0), core.V(-50, 10), core.SideRight, core.V(50, 10)},
		{"right face moving right", core.V(12, 0), core.V(50, 10), core.SideRight, core.V(50, 10)},
		{"top face moving down", core.V(0, 57), core.V(10, -50), core.SideTop, core.V(10, 50)},
		{"top face moving up", core.V(0, 57), core.V(10, 50), core.SideTop, core.V(10, 50)},
		{"bottom face moving up", core.V(0, -57), core.V(10, 50), core.SideBottom, core.V(10, -50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld(tc.ballPos, tc.vel, wall(0, 0, 10, 100))
			var sb Scoreboard

			hits := ResolveCollisions(w, &sb)
			require.Len(t, hits, 1)
			assert.Equal(t, tc.side, hits[0].Side)
			assert.Equal(t, tc.expected, w.Ball.Velocity)
		})
	}
}

func TestResolveZeroPenetrationIsNoHit(t *testing.T) {
	// Ball's right face exactly on the wall's left face
	w := testWorld(core.V(-15, 0), core.V(100, 0), wall(0, 0, 10, 100))
	var sb Scoreboard

	assert.Empty(t, ResolveCollisions(w, &sb))
	assert.Equal(t, core.V(100, 0), w.Ball.Velocity)
}

func TestResolveDestroysBlockOnce(t *testing.T) {
	w := testWorld(core.V(-20, 0), core.V(100, 0), block(core.Player2, 0, 0))
	var sb Scoreboard

	hits := ResolveCollisions(w, &sb)
	require.Len(t, hits, 1)
	assert.True(t, hits[0].Scored)
	assert.Equal(t, core.Player2, hits[0].ScoredFor)
	assert.Equal(t, uint(1), sb.Score(core.Player2))
	assert.Equal(t, uint(0), sb.Score(core.Player1))
	assert.Zero(t, w.BlocksRemaining(core.Player2))

	// The block is gone: nothing left to hit
	assert.Empty(t, ResolveCollisions(w, &sb))
	assert.Equal(t, uint(1), sb.Score(core.Player2))
}

func TestResolveSoftHitsContinue(t *testing.T) {
	// Ball straddles two stacked blocks
	w := testWorld(core.V(-20, 0), core.V(100, -40),
		block(core.Player1, 0, 41),
		block(core.Player1, 0, -41),
	)
	var sb Scoreboard

	hits := ResolveCollisions(w, &sb)
	assert.Len(t, hits, 2)
	assert.Equal(t, uint(2), sb.Score(core.Player1))
	assert.Empty(t, w.Colliders())
}

func TestResolveStopsAtFirstWall(t *testing.T) {
	w := testWorld(core.V(0, 0), core.V(100, -100),
		wall(0, -12, 200, 10),
		block(core.Player1, 5, 0),
	)
	var sb Scoreboard

	hits := ResolveCollisions(w, &sb)
	require.Len(t, hits, 1)
	assert.Equal(t, KindWall, hits[0].Kind)
	assert.Zero(t, sb.Score(core.Player1), "block behind the wall is not reached this tick")
	assert.Equal(t, 1, w.BlocksRemaining(core.Player1))
}

func TestResolvePaddleIsNotSolid(t *testing.T) {
	w := testWorld(core.V(-12, 0), core.V(100, 0),
		Entity{Kind: KindPaddle, Pos: core.V(0, 0), Size: core.V(20, 120)},
		block(core.Player2, -14, 0),
	)
	var sb Scoreboard

	hits := ResolveCollisions(w, &sb)
	require.Len(t, hits, 2)
	assert.Equal(t, KindPaddle, hits[0].Kind)
	assert.Equal(t, KindBlock, hits[1].Kind)
	assert.Equal(t, uint(1), sb.Score(core.Player2))
}

func TestWorldRemoveKeepsPaddles(t *testing.T) {
	w := testWorld(core.V(0, 0), core.V(0, 0),
		Entity{Kind: KindPaddle, Size: core.V(20, 120)},
		wall(100, 0, 10, 10),
	)
	cols := w.Colliders()
	require.Len(t, cols, 2)

	assert.False(t, w.Remove(cols[0].ID), "paddles are permanent")
	assert.True(t, w.Remove(cols[1].ID))
	assert.False(t, w.Remove(cols[1].ID), "second removal is a no-op")
	assert.Len(t, w.Colliders(), 1)
}
