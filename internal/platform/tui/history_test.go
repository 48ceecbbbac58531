package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickpong/internal/storage"
)

func TestHistoryRow(t *testing.T) {
	row := historyRow(storage.MatchResult{
		Score1:     5,
		Score2:     2,
		Winner:     storage.WinnerPlayer1,
		EndReason:  storage.EndMenu,
		BlocksLeft: 7,
		Duration:   65*time.Second + 300*time.Millisecond,
		CreatedAt:  time.Date(2026, 3, 4, 15, 6, 0, 0, time.UTC),
	})

	assert.Equal(t, "Mar 04 15:06", row[0])
	assert.Equal(t, "5", row[1])
	assert.Equal(t, "2", row[2])
	assert.Equal(t, "Player 1", row[3])
	assert.Equal(t, "1m5s", row[4])
	assert.Equal(t, "7", row[5])
	assert.Equal(t, "menu", row[6])
}

func TestWinnerLabel(t *testing.T) {
	assert.Equal(t, "Player 1", WinnerLabel(storage.WinnerPlayer1))
	assert.Equal(t, "Player 2", WinnerLabel(storage.WinnerPlayer2))
	assert.Equal(t, "draw", WinnerLabel(storage.WinnerDraw))
}

func TestHistoryModelView(t *testing.T) {
	empty := NewHistoryModel(nil, storage.Totals{}, 80, 24)
	assert.Contains(t, empty.View(), "No matches recorded yet.")

	m := NewHistoryModel(
		[]storage.MatchResult{{Score1: 3, Score2: 4, Winner: storage.WinnerPlayer2, EndReason: storage.EndQuit}},
		storage.Totals{Matches: 1, Wins2: 1, Points1: 3, Points2: 4},
		100, 30,
	)
	view := m.View()
	assert.Contains(t, view, "MATCH HISTORY")
	assert.Contains(t, view, "Player 2: 1 wins, 4 pts")
	assert.Contains(t, view, "quit")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.Empty(t, updated.View())
}

func TestTotalsLine(t *testing.T) {
	line := TotalsLine(storage.Totals{Matches: 3, Wins1: 2, Wins2: 0, Draws: 1, Points1: 9, Points2: 4})
	assert.Equal(t, "3 matches  Player 1: 2 wins, 9 pts  Player 2: 0 wins, 4 pts  draws: 1", line)
}
