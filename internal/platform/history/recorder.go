// Package history records finished matches from any adapter.
package history

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/logging"
	"github.com/vovakirdan/brickpong/internal/storage"
)

// Recorder saves match summaries to a store. A Recorder with a nil store
// only logs.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
}

// NewRecorder creates a recorder. store and logger may be nil.
func NewRecorder(store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Recorder{store: store, logger: logger}
}

// MatchEnded records a match that returned to the menu.
// It has the signature expected by brickpong.WithMatchEnd.
func (r *Recorder) MatchEnded(s brickpong.MatchSummary) {
	r.Record(s, storage.EndMenu)
}

// Record saves s with the given end reason. Matches in which no tick ran
// are skipped. Failures are logged, never returned: history is best-effort.
func (r *Recorder) Record(s brickpong.MatchSummary, reason string) {
	if r == nil || s.Ticks == 0 {
		return
	}

	result := Result(s, reason)
	if r.store == nil {
		r.logger.Debug("match not saved, no store", "match", result.MatchID)
		return
	}
	if _, err := r.store.SaveMatch(result); err != nil {
		r.logger.Warn("could not save match", "error", err)
		return
	}
	r.logger.Info("match saved",
		"match", result.MatchID,
		"score1", result.Score1,
		"score2", result.Score2,
		"winner", result.Winner,
		"reason", reason,
	)
}

// Result converts a summary into a storage row with a fresh match ID.
func Result(s brickpong.MatchSummary, reason string) storage.MatchResult {
	winner := storage.WinnerDraw
	if p, ok := s.Winner(); ok {
		winner = storage.WinnerPlayer1
		if p == core.Player2 {
			winner = storage.WinnerPlayer2
		}
	}

	return storage.MatchResult{
		MatchID:    storage.NewMatchID(),
		Score1:     int(s.Score1),
		Score2:     int(s.Score2),
		Winner:     winner,
		EndReason:  reason,
		Ticks:      int64(s.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		BlocksLeft: s.BlocksLeft,
		Duration:   s.Duration,
	}
}
