package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

type fakeQuiz struct {
	events   []entities.Event
	messages []entities.Message
	err      error
}

func (q *fakeQuiz) Handle(_ context.Context, event entities.Event) ([]entities.Message, error) {
	q.events = append(q.events, event)
	return q.messages, q.err
}

func newTestHandler(quiz QuizService) (*Handler, *fakeSender) {
	sender := &fakeSender{}
	return &Handler{
		sender:      sender,
		logger:      zap.NewNop(),
		quizService: quiz,
		workers:     1,
	}, sender
}

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 42},
			Chat: &tgbotapi.Chat{ID: 100},
			Text: text,
		},
	}
}

func commandUpdate(command string) tgbotapi.Update {
	u := textUpdate("/" + command)
	u.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command) + 1},
	}
	return u
}

func TestHandleUpdateSendsAllMessages(t *testing.T) {
	quiz := &fakeQuiz{messages: []entities.Message{
		entities.NewMessage("Правильный ответ: A1"),
		entities.NewMessage("Следующий вопрос: Q2"),
	}}
	h, sender := newTestHandler(quiz)

	h.handleUpdate(context.Background(), textUpdate(entities.LabelGiveUp))

	require.Len(t, quiz.events, 1)
	assert.Equal(t, entities.EventGiveUp, quiz.events[0].Kind)
	assert.Equal(t, entities.PlatformTelegram, quiz.events[0].Platform)
	assert.Equal(t, "42", quiz.events[0].UserID)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Правильный ответ: A1", sender.sent[0].Text)
	assert.Equal(t, "Следующий вопрос: Q2", sender.sent[1].Text)
	assert.Equal(t, int64(100), sender.sent[0].ChatID)
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, sender.sent[0].ReplyMarkup)
}

func TestHandleUpdateCommands(t *testing.T) {
	quiz := &fakeQuiz{messages: []entities.Message{entities.NewMessage("ok")}}
	h, _ := newTestHandler(quiz)

	h.handleUpdate(context.Background(), commandUpdate("start"))
	h.handleUpdate(context.Background(), commandUpdate("cancel"))

	require.Len(t, quiz.events, 2)
	assert.Equal(t, entities.EventStart, quiz.events[0].Kind)
	assert.Equal(t, entities.EventCancel, quiz.events[1].Kind)
}

func TestHandleUpdateUnknownCommand(t *testing.T) {
	quiz := &fakeQuiz{}
	h, sender := newTestHandler(quiz)

	h.handleUpdate(context.Background(), commandUpdate("help"))

	assert.Empty(t, quiz.events)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, msgUnknownCommand, sender.sent[0].Text)
}

func TestHandleUpdateServiceError(t *testing.T) {
	quiz := &fakeQuiz{err: errors.New("store down")}
	h, sender := newTestHandler(quiz)

	h.handleUpdate(context.Background(), textUpdate("Париж"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, msgInternalError, sender.sent[0].Text)
}

func TestHandleUpdateIgnoresNonText(t *testing.T) {
	quiz := &fakeQuiz{}
	h, sender := newTestHandler(quiz)

	h.handleUpdate(context.Background(), tgbotapi.Update{})
	h.handleUpdate(context.Background(), textUpdate(""))

	assert.Empty(t, quiz.events)
	assert.Empty(t, sender.sent)
}
