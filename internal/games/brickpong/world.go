package brickpong

import (
	"slices"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

// Entity colors
const (
	Paddle1Color = core.ColorPurple
	Paddle2Color = core.ColorMagenta
	BallColor    = core.ColorPink
	WallColor    = core.ColorGray
	Block1Color  = core.ColorLavender
	Block2Color  = core.ColorBrightBlue
)

// World is the entity registry for one match.
// The ball and paddles live in dedicated slots; every non-ball entity is also
// a collider, kept in creation order.
type World struct {
	Ball    *Entity
	Paddles [2]*Entity // Indexed by core.PlayerID

	colliders []*Entity
	nextID    EntityID
}

// NewWorld builds the arena described by cfg: paddle 1, paddle 2, ball,
// walls (left, right, bottom, top), Player 1 blocks, then Player 2 blocks.
// Player 1 plays on the right, Player 2 on the left; each player's blocks
// sit on that player's side.
func NewWorld(cfg config.ArenaConfig) *World {
	w := &World{}

	pSize := core.V(cfg.Paddles.Width, cfg.Paddles.Height)
	w.Paddles[core.Player1] = w.add(Entity{
		Kind:  KindPaddle,
		Pos:   core.V(cfg.Paddles.Offset, cfg.Paddles.Start1Y),
		Size:  pSize,
		Color: Paddle1Color,
		Owner: core.Player1,
		Speed: cfg.Paddles.Speed,
	})
	w.Paddles[core.Player2] = w.add(Entity{
		Kind:  KindPaddle,
		Pos:   core.V(-cfg.Paddles.Offset, cfg.Paddles.Start2Y),
		Size:  pSize,
		Color: Paddle2Color,
		Owner: core.Player2,
		Speed: cfg.Paddles.Speed,
	})

	w.Ball = &Entity{
		ID:       w.allocID(),
		Kind:     KindBall,
		Pos:      cfg.Ball.Start,
		Size:     core.V(cfg.Ball.Size, cfg.Ball.Size),
		Color:    BallColor,
		Velocity: cfg.Ball.Direction.Normalize().Scale(cfg.Ball.Speed),
	}

	hw, hh := cfg.HalfWidth(), cfg.HalfHeight()
	t := cfg.Bounds.WallThickness
	walls := []struct{ pos, size core.Vec2 }{
		{core.V(-hw, 0), core.V(t, cfg.Bounds.Height+t)}, // left
		{core.V(hw, 0), core.V(t, cfg.Bounds.Height+t)},  // right
		{core.V(0, -hh), core.V(cfg.Bounds.Width+t, t)},  // bottom
		{core.V(0, hh), core.V(cfg.Bounds.Width+t, t)},   // top
	}
	for _, wall := range walls {
		w.add(Entity{Kind: KindWall, Pos: wall.pos, Size: wall.size, Color: WallColor})
	}

	bSize := core.V(cfg.Blocks.Width, cfg.Blocks.Height)
	sides := []struct {
		owner core.PlayerID
		x     float64
		color core.Color
	}{
		{core.Player1, hw - cfg.Blocks.Inset, Block1Color},
		{core.Player2, -hw + cfg.Blocks.Inset, Block2Color},
	}
	for _, side := range sides {
		for row := range cfg.Blocks.RowCount {
			y := -hh + cfg.Blocks.BaseOffset + float64(row)*cfg.Blocks.RowSpacing
			w.add(Entity{
				Kind:  KindBlock,
				Pos:   core.V(side.x, y),
				Size:  bSize,
				Color: side.color,
				Owner: side.owner,
			})
		}
	}

	return w
}

func (w *World) allocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) add(e Entity) *Entity {
	e.ID = w.allocID()
	p := &e
	w.colliders = append(w.colliders, p)
	return p
}

// Colliders returns every non-ball entity in creation order.
// The slice must not be modified by callers.
func (w *World) Colliders() []*Entity {
	return w.colliders
}

// Remove deletes the collider with the given ID, preserving order.
// Returns false if it is not present. Paddles cannot be removed.
func (w *World) Remove(id EntityID) bool {
	idx := slices.IndexFunc(w.colliders, func(e *Entity) bool { return e.ID == id })
	if idx < 0 || w.colliders[idx].Kind == KindPaddle {
		return false
	}
	w.colliders = slices.Delete(w.colliders, idx, idx+1)
	return true
}

// Paddle returns the paddle owned by p.
func (w *World) Paddle(p core.PlayerID) *Entity {
	return w.Paddles[p]
}

// BlocksRemaining counts the blocks that still credit p.
func (w *World) BlocksRemaining(p core.PlayerID) int {
	n := 0
	for _, e := range w.colliders {
		if e.Kind == KindBlock && e.Owner == p {
			n++
		}
	}
	return n
}
