package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// ErrStoreUnavailable is wrapped by SessionStore implementations on any backend failure.
var ErrStoreUnavailable = errors.New("session store unavailable")

// QuestionBank provides read-only access to loaded questions.
type QuestionBank interface {
	Lookup(question string) (string, bool)
	RandomQuestion() (string, error)
	Len() int
}

// SessionStore persists the question currently posed to each user.
// It is the only source of truth for conversational state.
type SessionStore interface {
	Get(ctx context.Context, key entities.SessionKey) (string, bool, error)
	Set(ctx context.Context, key entities.SessionKey, question string) error
	Ping(ctx context.Context) error
}
