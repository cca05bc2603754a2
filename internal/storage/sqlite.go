// Package storage provides a SQLite journal of finished board sessions.
// Only per-session summaries are kept; board positions are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session journal.
// It is safe for concurrent use by multiple SSH sessions.
type Store struct {
	db *sql.DB
}

// Session is the summary of one finished board session.
type Session struct {
	ID        string // UUID
	SetupID   string
	Player    string // Local user or SSH user name
	Moves     int
	Captures  int
	Rejected  int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// Totals aggregates all sessions of a setup.
type Totals struct {
	Sessions int
	Moves    int
	Captures int
	Rejected int
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			setup_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			captures INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_setup ON sessions(setup_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(ended_at DESC);
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

// SaveSession records a finished session. A missing ID is generated.
// Returns the ID of the stored record.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = NewSessionID()
	}
	if sess.EndedAt.IsZero() {
		sess.EndedAt = time.Now()
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = sess.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, setup_id, player, moves, captures, rejected, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.SetupID, sess.Player,
		sess.Moves, sess.Captures, sess.Rejected,
		sess.StartedAt.UnixMilli(), sess.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty setupID matches every setup.
func (s *Store) RecentSessions(setupID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, setup_id, player, moves, captures, rejected, started_at, ended_at
		 FROM sessions
		 WHERE ? = '' OR setup_id = ?
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		setupID, setupID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started, ended int64
		if err := rows.Scan(
			&sess.ID, &sess.SetupID, &sess.Player,
			&sess.Moves, &sess.Captures, &sess.Rejected,
			&started, &ended,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.UnixMilli(started)
		sess.EndedAt = time.UnixMilli(ended)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals sums up all sessions of a setup. An empty setupID covers every setup.
func (s *Store) Totals(setupID string) (Totals, error) {
	var t Totals
	var moves, captures, rejected sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(moves), SUM(captures), SUM(rejected)
		 FROM sessions
		 WHERE ? = '' OR setup_id = ?`,
		setupID, setupID,
	).Scan(&t.Sessions, &moves, &captures, &rejected)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	t.Moves = int(moves.Int64)
	t.Captures = int(captures.Int64)
	t.Rejected = int(rejected.Int64)
	return t, nil
}

// ClearSessions deletes all sessions of a setup.
func (s *Store) ClearSessions(setupID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE setup_id = ?", setupID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
