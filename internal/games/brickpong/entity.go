// Package brickpong implements the Breakout/Pong hybrid simulation: two
// paddles, one ball and two columns of scorable blocks inside a walled arena.
//
// The package is pure logic. Adapters feed it core.InputFrame values and read
// Snapshot values back; nothing here knows about terminals or windows.
package brickpong

import "github.com/vovakirdan/brickpong/internal/core"

// Kind tags the behavior of an entity.
type Kind int

const (
	KindPaddle Kind = iota
	KindBall
	KindWall
	KindBlock
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindWall:
		return "wall"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity within one match. IDs follow creation order.
type EntityID int

// Entity is one simulated object. Which payload fields matter depends on Kind:
//
//	KindPaddle: Owner, Speed
//	KindBall:   Velocity
//	KindWall:   none
//	KindBlock:  Owner (the player credited when the block is destroyed)
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Vec2 // Center, world coordinates
	Size  core.Vec2
	Color core.Color

	Owner    core.PlayerID
	Speed    float64
	Velocity core.Vec2
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.AABB {
	return core.NewAABB(e.Pos, e.Size)
}

// Solid reports whether hitting this entity ends collision processing for the tick.
func (e *Entity) Solid() bool {
	switch e.Kind {
	case KindWall:
		return true
	case KindPaddle, KindBall, KindBlock:
		return false
	default:
		return false
	}
}
