// Package redis implements the session store on top of Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
)

// Options holds Redis connection parameters.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// NewClient creates a Redis client. It does not connect until the first command.
func NewClient(opts Options) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// SessionStore keeps each session's current question under a plain string key.
type SessionStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewSessionStore creates a SessionStore. Keys are "<prefix><platform>_<user_id>".
func NewSessionStore(client goredis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

// Get returns the current question of the session, if any.
func (s *SessionStore) Get(ctx context.Context, key entities.SessionKey) (string, bool, error) {
	question, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: redis get: %w", service.ErrStoreUnavailable, err)
	}

	return question, true, nil
}

// Set overwrites the current question of the session.
func (s *SessionStore) Set(ctx context.Context, key entities.SessionKey, question string) error {
	if err := s.client.Set(ctx, s.key(key), question, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %w", service.ErrStoreUnavailable, err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: redis ping: %w", service.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SessionStore) key(key entities.SessionKey) string {
	return s.prefix + key.String()
}
