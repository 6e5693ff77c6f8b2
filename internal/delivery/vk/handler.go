// Package vk serves the quiz over the VK community bots long poll API.
package vk

import (
	"context"
	"math/rand"
	"strings"

	"github.com/SevereCloud/vksdk/v2/api"
	"github.com/SevereCloud/vksdk/v2/api/params"
	"github.com/SevereCloud/vksdk/v2/events"
	longpoll "github.com/SevereCloud/vksdk/v2/longpoll-bot"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

const (
	msgInternalError = "Что-то пошло не так. Попробуйте позже."
	startPayload     = `"command":"start"`
)

type Handler struct {
	vk          *api.VK
	sender      Sender
	groupID     int
	logger      *zap.Logger
	quizService QuizService
	workers     int64
}

func NewHandler(
	vk *api.VK,
	groupID int,
	logger *zap.Logger,
	quizService QuizService,
	workers int,
) *Handler {
	return &Handler{
		vk:          vk,
		sender:      vk,
		groupID:     groupID,
		logger:      logger,
		quizService: quizService,
		workers:     int64(max(workers, 1)),
	}
}

// Run listens to the long poll server until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	lp, err := longpoll.NewLongPoll(h.vk, h.groupID)
	if err != nil {
		return err
	}

	sem := semaphore.NewWeighted(h.workers)

	lp.MessageNew(func(_ context.Context, obj events.MessageNewObject) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		go func() {
			defer sem.Release(1)
			h.handleMessage(ctx, obj)
		}()
	})

	h.logger.Info("vk handler started", zap.Int("group_id", h.groupID))
	defer h.logger.Info("vk handler stopped")

	err = lp.RunWithContext(ctx)

	// Wait for in-flight messages.
	_ = sem.Acquire(context.Background(), h.workers)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (h *Handler) handleMessage(ctx context.Context, obj events.MessageNewObject) {
	msg := obj.Message
	if msg.Text == "" || msg.FromID <= 0 {
		return
	}

	h.logger.Debug("message received",
		zap.Int("peer_id", msg.PeerID),
		zap.String("text", msg.Text),
	)

	text := msg.Text
	if strings.Contains(msg.Payload, startPayload) {
		// The "Start" button of a new dialog.
		text = entities.CommandStart
	}

	event := entities.NewEvent(entities.PlatformVK, int64(msg.FromID), text)

	messages, err := h.quizService.Handle(ctx, event)
	if err != nil {
		h.logger.Error("handle error",
			zap.Int("peer_id", msg.PeerID),
			zap.Error(err),
		)
		h.send(msg.PeerID, entities.NewMessage(msgInternalError))
		return
	}

	for _, m := range messages {
		h.send(msg.PeerID, m)
	}
}

func (h *Handler) send(peerID int, m entities.Message) {
	b := params.NewMessagesSendBuilder()
	b.PeerID(peerID)
	b.Message(m.Text)
	b.RandomID(int(rand.Int31()))

	if len(m.Keyboard) > 0 {
		kb, err := buildKeyboard(m.Keyboard)
		if err != nil {
			h.logger.Error("failed to build vk keyboard", zap.Error(err))
		} else {
			b.Keyboard(kb)
		}
	}

	if _, err := h.sender.MessagesSend(b.Params); err != nil {
		h.logger.Error("failed to send vk message",
			zap.Int("peer_id", peerID),
			zap.Error(err),
		)
	}
}
