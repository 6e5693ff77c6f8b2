package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var errBackend = errors.New("connection refused")

type fakeStore struct {
	mu       sync.Mutex
	data     map[string]string
	getErr   error
	setErr   error
	pingErr  error
	setCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key entities.SessionKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, fmt.Errorf("%w: %w", ErrStoreUnavailable, s.getErr)
	}
	q, ok := s.data[key.String()]
	return q, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key entities.SessionKey, question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	if s.setErr != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, s.setErr)
	}
	s.data[key.String()] = question
	return nil
}

func (s *fakeStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pingErr
}

func (s *fakeStore) setPingErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pingErr = err
}

// fakeBank returns questions in a fixed cycle so tests can predict draws.
type fakeBank struct {
	mu      sync.Mutex
	answers map[string]string
	order   []string
	next    int
}

func newFakeBank(pairs ...string) *fakeBank {
	b := &fakeBank{answers: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		b.answers[pairs[i]] = pairs[i+1]
		b.order = append(b.order, pairs[i])
	}
	return b
}

func (b *fakeBank) Lookup(question string) (string, bool) {
	a, ok := b.answers[question]
	return a, ok
}

func (b *fakeBank) RandomQuestion() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.order) == 0 {
		return "", errors.New("empty bank")
	}
	q := b.order[b.next%len(b.order)]
	b.next++
	return q, nil
}

func (b *fakeBank) Len() int {
	return len(b.order)
}
