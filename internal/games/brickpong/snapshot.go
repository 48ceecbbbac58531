package brickpong

import (
	"math"

	"github.com/vovakirdan/brickpong/internal/core"
)

// EntityView is the read-only render data of one entity.
type EntityView struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Vec2
	Size  core.Vec2
	Color core.Color
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	State      State
	Tick       uint64
	Score1     uint
	Score2     uint
	BlocksLeft [2]int // Indexed by core.PlayerID

	// Entities in creation order, ball last. Empty outside a match.
	Entities []EntityView

	// Arena extent, for projecting world coordinates.
	Width  float64
	Height float64
}

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:  e.machine.Current(),
		Tick:   e.ticks,
		Score1: e.score.Score(core.Player1),
		Score2: e.score.Score(core.Player2),
		Width:  e.cfg.Bounds.Width + e.cfg.Bounds.WallThickness,
		Height: e.cfg.Bounds.Height + e.cfg.Bounds.WallThickness,
	}
	if e.world == nil {
		return snap
	}

	snap.BlocksLeft[core.Player1] = e.world.BlocksRemaining(core.Player1)
	snap.BlocksLeft[core.Player2] = e.world.BlocksRemaining(core.Player2)

	cols := e.world.Colliders()
	snap.Entities = make([]EntityView, 0, len(cols)+1)
	for _, c := range cols {
		snap.Entities = append(snap.Entities, view(c))
	}
	ball := view(e.world.Ball)
	ball.Color = e.ballColor()
	snap.Entities = append(snap.Entities, ball)
	return snap
}

func view(e *Entity) EntityView {
	return EntityView{ID: e.ID, Kind: e.Kind, Pos: e.Pos, Size: e.Size, Color: e.Color}
}

// Ball returns the ball's view, or false outside a match.
func (s Snapshot) Ball() (EntityView, bool) {
	if n := len(s.Entities); n > 0 && s.Entities[n-1].Kind == KindBall {
		return s.Entities[n-1], true
	}
	return EntityView{}, false
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score1)
	h = h*31 + uint64(s.Score2)
	for _, e := range s.Entities {
		h = h*31 + uint64(e.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
	}
	return h
}
