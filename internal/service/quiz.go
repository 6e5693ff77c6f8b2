package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var ErrUnknownEvent = errors.New("unknown event kind")

// QuizService is the quiz state machine shared by all transports.
//
// State is never cached: every event derives it from the SessionStore, so
// several processes may serve the same users. Concurrent events of one user
// are not serialized and the last write wins.
type QuizService struct {
	bank   QuestionBank
	store  SessionStore
	logger *zap.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(bank QuestionBank, store SessionStore, logger *zap.Logger) *QuizService {
	return &QuizService{
		bank:   bank,
		store:  store,
		logger: logger,
	}
}

// State returns the current state of the session identified by key.
func (s *QuizService) State(ctx context.Context, key entities.SessionKey) (entities.State, error) {
	_, ok, err := s.currentQuestion(ctx, key)
	if err != nil {
		return entities.StateIdle, err
	}
	return entities.StateOf(ok), nil
}

// Handle processes one inbound event and returns the messages to send back.
// On error nothing is returned and no further store writes are made.
func (s *QuizService) Handle(ctx context.Context, event entities.Event) ([]entities.Message, error) {
	log := s.logger.With(
		zap.String("event_id", uuid.NewString()),
		zap.String("platform", string(event.Platform)),
		zap.String("user_id", event.UserID),
		zap.Stringer("kind", event.Kind),
	)

	var (
		messages []entities.Message
		next     entities.State
		err      error
	)

	switch event.Kind {
	case entities.EventStart:
		messages = []entities.Message{entities.NewMessage(msgGreeting)}
	case entities.EventNewQuestion:
		messages, next, err = s.newQuestion(ctx, event.Key())
	case entities.EventGiveUp:
		messages, next, err = s.giveUp(ctx, event.Key())
	case entities.EventAnswer:
		messages, next, err = s.answer(ctx, event.Key(), event.Text)
	case entities.EventCancel:
		// The stored question is kept; a later answer may still match it.
		messages, next = []entities.Message{entities.NewMessage(msgDialogFinished)}, entities.StateIdle
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownEvent, event.Kind)
	}

	if err != nil {
		log.Error("failed to handle event", zap.Error(err))
		return nil, err
	}

	if event.Kind != entities.EventStart {
		log = log.With(zap.Stringer("state", next))
	}
	log.Info("event handled", zap.Int("messages", len(messages)))

	return messages, nil
}

func (s *QuizService) newQuestion(
	ctx context.Context, key entities.SessionKey,
) ([]entities.Message, entities.State, error) {
	question, err := s.ask(ctx, key)
	if err != nil {
		return nil, entities.StateIdle, err
	}

	return []entities.Message{entities.NewMessage(question)}, entities.StateAwaitingAnswer, nil
}

func (s *QuizService) giveUp(
	ctx context.Context, key entities.SessionKey,
) ([]entities.Message, entities.State, error) {
	question, ok, err := s.currentQuestion(ctx, key)
	if err != nil {
		return nil, entities.StateIdle, err
	}
	if !ok {
		return []entities.Message{entities.NewMessage(msgStartFirst)}, entities.StateIdle, nil
	}

	answer, _ := s.bank.Lookup(question)

	next, err := s.ask(ctx, key)
	if err != nil {
		return nil, entities.StateAwaitingAnswer, err
	}

	return []entities.Message{
		entities.NewMessage(fmt.Sprintf(msgCorrectAnswer, answer)),
		entities.NewMessage(fmt.Sprintf(msgNextQuestion, next)),
	}, entities.StateAwaitingAnswer, nil
}

func (s *QuizService) answer(
	ctx context.Context, key entities.SessionKey, text string,
) ([]entities.Message, entities.State, error) {
	question, ok, err := s.currentQuestion(ctx, key)
	if err != nil {
		return nil, entities.StateIdle, err
	}
	if !ok {
		return []entities.Message{entities.NewMessage(msgStartFirst)}, entities.StateIdle, nil
	}

	answer, _ := s.bank.Lookup(question)
	if IsCorrect(text, answer) {
		// An empty record reads as no question.
		if err := s.store.Set(ctx, key, ""); err != nil {
			return nil, entities.StateAwaitingAnswer, fmt.Errorf("clear question for %s: %w", key, err)
		}
		return []entities.Message{entities.NewMessage(msgCorrect)}, entities.StateIdle, nil
	}

	return []entities.Message{entities.NewMessage(msgWrong)}, entities.StateAwaitingAnswer, nil
}

// ask draws a random question and stores it as the session's current one.
func (s *QuizService) ask(ctx context.Context, key entities.SessionKey) (string, error) {
	question, err := s.bank.RandomQuestion()
	if err != nil {
		return "", err
	}

	if err := s.store.Set(ctx, key, question); err != nil {
		return "", fmt.Errorf("save question for %s: %w", key, err)
	}

	return question, nil
}

// currentQuestion returns the stored question for key.
// A stored question missing from the bank counts as no question.
func (s *QuizService) currentQuestion(ctx context.Context, key entities.SessionKey) (string, bool, error) {
	question, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("get question for %s: %w", key, err)
	}
	if !ok || question == "" {
		return "", false, nil
	}

	if _, known := s.bank.Lookup(question); !known {
		s.logger.Warn("stored question is not in the bank",
			zap.Stringer("key", key),
		)
		return "", false, nil
	}

	return question, true, nil
}
