package brickpong

import "github.com/vovakirdan/brickpong/internal/core"

// Hit records one ball contact resolved during a tick.
type Hit struct {
	Collider  EntityID
	Kind      Kind
	Side      core.Side
	ReflectX  bool
	ReflectY  bool
	Scored    bool
	ScoredFor core.PlayerID
}

// ResolveCollisions tests the ball against every collider in creation order.
//
// A struck block credits its owner and leaves the world. The ball reflects on
// an axis only when it is moving into the struck face, so a ball already
// leaving a face is never flipped back. The first wall hit ends the pass;
// paddles and blocks let later colliders register in the same tick.
func ResolveCollisions(w *World, sb *Scoreboard) []Hit {
	ball := w.Ball
	ballBox := ball.Box()

	// Iterate over a copy: blocks are removed as they are hit.
	colliders := append([]*Entity(nil), w.Colliders()...)

	var hits []Hit
	for _, c := range colliders {
		side, ok := core.TestOverlap(ballBox, c.Box())
		if !ok {
			continue
		}

		hit := Hit{Collider: c.ID, Kind: c.Kind, Side: side}

		switch c.Kind {
		case KindBlock:
			sb.Credit(c.Owner)
			w.Remove(c.ID)
			hit.Scored = true
			hit.ScoredFor = c.Owner
		case KindWall, KindPaddle:
		case KindBall:
			continue
		}

		v := &ball.Velocity
		switch side {
		case core.SideLeft:
			hit.ReflectX = v.X > 0
		case core.SideRight:
			hit.ReflectX = v.X < 0
		case core.SideTop:
			hit.ReflectY = v.Y < 0
		case core.SideBottom:
			hit.ReflectY = v.Y > 0
		}
		if hit.ReflectX {
			v.X = -v.X
		}
		if hit.ReflectY {
			v.Y = -v.Y
		}

		hits = append(hits, hit)

		if c.Solid() {
			break
		}
	}
	return hits
}
