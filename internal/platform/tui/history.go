package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickpong/internal/storage"
)

// maxHistory is the number of matches loaded into the table.
const maxHistory = 100

// HistoryKeyMap defines the key bindings for the match history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "close"),
		),
	}
}

// HistoryModel is the Bubble Tea model listing recorded matches.
type HistoryModel struct {
	matches  []storage.MatchResult
	totals   storage.Totals
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view over already loaded data.
func NewHistoryModel(matches []storage.MatchResult, totals storage.Totals, width, height int) HistoryModel {
	m := HistoryModel{
		matches: matches,
		totals:  totals,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "P1", Width: 4},
		{Title: "P2", Width: 4},
		{Title: "Winner", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Blocks", Width: 6},
		{Title: "End", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// WinnerLabel renders a stored winner value.
func WinnerLabel(w string) string {
	switch w {
	case storage.WinnerPlayer1:
		return "Player 1"
	case storage.WinnerPlayer2:
		return "Player 2"
	default:
		return "draw"
	}
}

// historyRow formats one match for the table.
func historyRow(r storage.MatchResult) table.Row {
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		fmt.Sprintf("%d", r.Score1),
		fmt.Sprintf("%d", r.Score2),
		WinnerLabel(r.Winner),
		r.Duration.Round(time.Second).String(),
		fmt.Sprintf("%d", r.BlocksLeft),
		r.EndReason,
	}
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, r := range m.matches {
		rows[i] = historyRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// TotalsLine summarizes wins and points over all matches.
func TotalsLine(t storage.Totals) string {
	return fmt.Sprintf("%d matches  Player 1: %d wins, %d pts  Player 2: %d wins, %d pts  draws: %d",
		t.Matches, t.Wins1, t.Points1, t.Wins2, t.Points2, t.Draws)
}

// View renders the match history.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("MATCH HISTORY"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(TotalsLine(m.totals)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.matches) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No matches recorded yet.")
		b.WriteString(boxStyle.Render(empty))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunHistory loads recent matches from store and shows them in a table.
func RunHistory(store *storage.Store, width, height int) error {
	matches, err := store.RecentMatches(maxHistory)
	if err != nil {
		return err
	}
	totals, err := store.Totals()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(matches, *totals, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
