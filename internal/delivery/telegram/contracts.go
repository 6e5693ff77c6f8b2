package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// QuizService handles normalized quiz events.
type QuizService interface {
	Handle(ctx context.Context, event entities.Event) ([]entities.Message, error)
}

// Sender sends messages to Telegram. Implemented by *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
