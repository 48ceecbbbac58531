package brickpong

import "github.com/vovakirdan/brickpong/internal/core"

// Scoreboard holds one counter per player.
// Counters only grow during a match; Reset is called when a new match starts.
type Scoreboard struct {
	scores [2]uint
}

// Credit adds one point to p.
func (s *Scoreboard) Credit(p core.PlayerID) {
	s.scores[p]++
}

// Score returns p's points.
func (s *Scoreboard) Score(p core.PlayerID) uint {
	return s.scores[p]
}

// Reset zeroes both counters.
func (s *Scoreboard) Reset() {
	s.scores = [2]uint{}
}

// Leader returns the player ahead, or false on a tie.
func (s *Scoreboard) Leader() (core.PlayerID, bool) {
	switch {
	case s.scores[core.Player1] > s.scores[core.Player2]:
		return core.Player1, true
	case s.scores[core.Player2] > s.scores[core.Player1]:
		return core.Player2, true
	default:
		return core.Player1, false
	}
}
