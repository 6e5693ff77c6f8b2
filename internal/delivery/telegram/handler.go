package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

type Handler struct {
	bot         *tgbotapi.BotAPI
	sender      Sender
	logger      *zap.Logger
	quizService QuizService
	workers     int64
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	workers int,
) *Handler {
	return &Handler{
		bot:         bot,
		sender:      bot,
		logger:      logger,
		quizService: quizService,
		workers:     int64(max(workers, 1)),
	}
}

// Run polls Telegram for updates until ctx is cancelled.
// Updates are handled concurrently, at most h.workers at a time.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started",
		zap.String("bot", h.bot.Self.UserName),
	)
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	sem := semaphore.NewWeighted(h.workers)
	defer func() {
		// Wait for in-flight updates.
		_ = sem.Acquire(context.Background(), h.workers)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			go func() {
				defer sem.Release(1)
				h.handleUpdate(ctx, update)
			}()
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		h.logger.Debug("update without message")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	if from == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			text = entities.CommandStart
		case "cancel":
			text = entities.CommandCancel
		default:
			h.send(newKeyboardMessage(chatID, entities.NewMessage(msgUnknownCommand)))
			return
		}
	}

	if text == "" {
		return
	}

	event := entities.NewEvent(entities.PlatformTelegram, from.ID, text)
	_ = h.withErrorHandling(h.quizHandler(event))(ctx, chatID)
}

// quizHandler passes the event to the quiz service and sends its replies in order.
func (h *Handler) quizHandler(event entities.Event) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		messages, err := h.quizService.Handle(ctx, event)
		if err != nil {
			return err
		}

		for _, m := range messages {
			h.send(newKeyboardMessage(chatID, m))
		}

		return nil
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newKeyboardMessage(chatID, entities.NewMessage(err)))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.sender.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
