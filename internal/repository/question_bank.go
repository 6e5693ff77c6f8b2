package repository

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var ErrEmptyBank = errors.New("question bank is empty")

// QuestionBank is an immutable question -> answer mapping loaded once at startup.
type QuestionBank struct {
	answers   map[string]string
	questions []string

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewQuestionBank builds a QuestionBank from loaded questions.
// A repeated question keeps the last answer seen.
func NewQuestionBank(questions []entities.Question) (*QuestionBank, error) {
	answers := make(map[string]string, len(questions))
	keys := make([]string, 0, len(questions))

	for _, q := range questions {
		if _, ok := answers[q.Text]; !ok {
			keys = append(keys, q.Text)
		}
		answers[q.Text] = q.Answer
	}

	if len(keys) == 0 {
		return nil, ErrEmptyBank
	}

	return &QuestionBank{
		answers:   answers,
		questions: keys,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Lookup returns the canonical answer for a question.
func (b *QuestionBank) Lookup(question string) (string, bool) {
	answer, ok := b.answers[question]
	return answer, ok
}

// RandomQuestion returns a question drawn uniformly at random.
func (b *QuestionBank) RandomQuestion() (string, error) {
	if b == nil || len(b.questions) == 0 {
		return "", ErrEmptyBank
	}

	b.mu.Lock()
	idx := b.rng.Intn(len(b.questions))
	b.mu.Unlock()

	return b.questions[idx], nil
}

// Len returns the number of distinct questions.
func (b *QuestionBank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}
