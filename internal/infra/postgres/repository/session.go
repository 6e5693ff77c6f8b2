package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
)

// SessionRepository stores current questions in PostgreSQL.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository with the provided database pool.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get returns the current question of the session, if any.
func (r *SessionRepository) Get(ctx context.Context, key entities.SessionKey) (string, bool, error) {
	query := "SELECT question FROM quiz_sessions WHERE session_key = $1"

	var question string
	err := r.db.QueryRow(ctx, query, key.String()).Scan(&question)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get session: %w", service.ErrStoreUnavailable, err)
	}

	return question, true, nil
}

// Set inserts or overwrites the current question of the session.
func (r *SessionRepository) Set(ctx context.Context, key entities.SessionKey, question string) error {
	query := `
	INSERT INTO quiz_sessions (session_key, question, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (session_key) DO UPDATE
	SET question = EXCLUDED.question, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, query, key.String(), question); err != nil {
		return fmt.Errorf("%w: set session: %w", service.ErrStoreUnavailable, err)
	}

	return nil
}

// Ping checks database connectivity.
func (r *SessionRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", service.ErrStoreUnavailable, err)
	}
	return nil
}
