// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Winner values stored for a match.
const (
	WinnerPlayer1 = "player1"
	WinnerPlayer2 = "player2"
	WinnerDraw    = ""
)

// End reasons.
const (
	EndMenu = "menu" // Player went back to the menu
	EndQuit = "quit" // Program exited mid-match
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchResult is one finished or abandoned match.
type MatchResult struct {
	ID         int64
	MatchID    string
	Score1     int
	Score2     int
	Winner     string // WinnerPlayer1, WinnerPlayer2 or WinnerDraw
	EndReason  string
	Ticks      int64
	BlocksLeft int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Totals aggregates every recorded match.
type Totals struct {
	Matches    int
	Wins1      int
	Wins2      int
	Draws      int
	Points1    int64
	Points2    int64
	BestScore  int
	LastPlayed time.Time
}

// NewMatchID returns a fresh random match identifier.
func NewMatchID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			blocks_left INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a match. An empty MatchID is replaced by a new one.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	if m.MatchID == "" {
		m.MatchID = NewMatchID()
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, score1, score2, winner, end_reason, ticks, blocks_left, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.Score1,
		m.Score2,
		m.Winner,
		m.EndReason,
		m.Ticks,
		m.BlocksLeft,
		m.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, score1, score2, winner, end_reason,
	ticks, blocks_left, duration_ms, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchResult, error) {
	var m MatchResult
	var durationMs int64
	var createdAt any

	err := row.Scan(
		&m.ID,
		&m.MatchID,
		&m.Score1,
		&m.Score2,
		&m.Winner,
		&m.EndReason,
		&m.Ticks,
		&m.BlocksLeft,
		&durationMs,
		&createdAt,
	)
	if err != nil {
		return m, err
	}

	m.Duration = time.Duration(durationMs) * time.Millisecond
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+` FROM matches ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Totals retrieves win counts and points over all matches.
func (s *Store) Totals() (*Totals, error) {
	t := &Totals{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = ?), 0),
		        COALESCE(SUM(winner = ?), 0),
		        COALESCE(SUM(winner = ''), 0),
		        COALESCE(SUM(score1), 0),
		        COALESCE(SUM(score2), 0),
		        COALESCE(MAX(MAX(score1, score2)), 0),
		        MAX(created_at)
		 FROM matches`,
		WinnerPlayer1, WinnerPlayer2,
	).Scan(&t.Matches, &t.Wins1, &t.Wins2, &t.Draws, &t.Points1, &t.Points2, &t.BestScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
