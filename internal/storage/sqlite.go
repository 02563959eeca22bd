// Package storage provides SQLite-based persistence for round results.
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

// Store manages the SQLite database connection for round results.
type Store struct {
	db *sql.DB
}

// RoundResult is the outcome of one finished round.
type RoundResult struct {
	ID          int64
	MatchID     string // Groups the rounds of one session
	Round       int    // Zero-based round index within the match
	Winner      int    // Team number, 1 or 2
	Points1     int    // Team 1 points after the round
	Points2     int
	UnitsPlaced int
	Duration    int // Duration in seconds of game time
	CreatedAt   time.Time
}

// Standings aggregates all recorded rounds.
type Standings struct {
	Rounds     int
	Matches    int
	Team1Wins  int
	Team2Wins  int
	LastPlayed time.Time
}

// NewMatchID returns a fresh identifier for a match.
func NewMatchID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

	// Rounds are saved from background goroutines; SQLite allows one writer
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			winner INTEGER NOT NULL CHECK (winner IN (1, 2)),
			points1 INTEGER NOT NULL DEFAULT 0,
			points2 INTEGER NOT NULL DEFAULT 0,
			units_placed INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (match_id, round)
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_match_id ON rounds(match_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_created_at ON rounds(created_at);
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

// SaveRound records a finished round and returns the ID of the inserted
// record. It is safe to call from any goroutine.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.Winner != 1 && r.Winner != 2 {
		return 0, fmt.Errorf("storage: invalid winner %d", r.Winner)
	}
	if r.MatchID == "" {
		return 0, errors.New("storage: round has no match id")
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds
		 (match_id, round, winner, points1, points2, units_placed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Round, r.Winner, r.Points1, r.Points2, r.UnitsPlaced, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, round, winner, points1, points2, units_placed, duration_secs, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// MatchRounds retrieves every round of one match in play order.
func (s *Store) MatchRounds(matchID string) ([]RoundResult, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, round, winner, points1, points2, units_placed, duration_secs, created_at
		 FROM rounds
		 WHERE match_id = ?
		 ORDER BY round`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match rounds: %w", err)
	}
	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]RoundResult, error) {
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.MatchID,
			&r.Round,
			&r.Winner,
			&r.Points1,
			&r.Points2,
			&r.UnitsPlaced,
			&r.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Standings returns win counts across all recorded rounds.
func (s *Store) Standings() (Standings, error) {
	var st Standings
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COUNT(DISTINCT match_id),
		        COALESCE(SUM(winner = 1), 0),
		        COALESCE(SUM(winner = 2), 0),
		        MAX(created_at)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Matches, &st.Team1Wins, &st.Team2Wins, &lastPlayed)
	if err != nil {
		return Standings{}, fmt.Errorf("storage: cannot get standings: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// ClearRounds deletes every recorded round.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
