package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for current questions by session key.
// State is lost on restart, use it for development and tests only.
type SessionStorage struct {
	mu        sync.RWMutex
	questions map[string]string
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		questions: make(map[string]string),
	}
}

// Get retrieves the current question for a given session key.
func (s *SessionStorage) Get(_ context.Context, key entities.SessionKey) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[key.String()]
	return q, ok, nil
}

// Set saves the current question for a given session key.
func (s *SessionStorage) Set(_ context.Context, key entities.SessionKey, question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[key.String()] = question
	return nil
}

// Ping always succeeds.
func (s *SessionStorage) Ping(_ context.Context) error {
	return nil
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}
