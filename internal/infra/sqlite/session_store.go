// Package sqlite implements the session store on top of an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
)

const schema = `
CREATE TABLE IF NOT EXISTS quiz_sessions (
  session_key TEXT PRIMARY KEY,
  question    TEXT NOT NULL,
  updated_at  INTEGER NOT NULL
);
`

const defaultDSN = "file:quiz.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

// Open opens the database and ensures the schema exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

// SessionStore stores current questions in SQLite.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Get returns the current question of the session, if any.
func (s *SessionStore) Get(ctx context.Context, key entities.SessionKey) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT question FROM quiz_sessions WHERE session_key = ?`, key.String())

	var question string
	if err := row.Scan(&question); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get session: %w", service.ErrStoreUnavailable, err)
	}

	return question, true, nil
}

// Set inserts or overwrites the current question of the session.
func (s *SessionStore) Set(ctx context.Context, key entities.SessionKey, question string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO quiz_sessions (session_key, question, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (session_key) DO UPDATE SET question=excluded.question, updated_at=excluded.updated_at`,
		key.String(), question, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: set session: %w", service.ErrStoreUnavailable, err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", service.ErrStoreUnavailable, err)
	}
	return nil
}
