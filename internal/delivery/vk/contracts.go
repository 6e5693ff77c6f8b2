package vk

import (
	"context"

	"github.com/SevereCloud/vksdk/v2/api"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// QuizService handles normalized quiz events.
type QuizService interface {
	Handle(ctx context.Context, event entities.Event) ([]entities.Message, error)
}

// Sender sends messages to VK. Implemented by *api.VK.
type Sender interface {
	MessagesSend(params api.Params) (int, error)
}
