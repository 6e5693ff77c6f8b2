package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	vkapi "github.com/SevereCloud/vksdk/v2/api"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/quiz-bot/internal/config"
	opshttp "github.com/aliskhannn/quiz-bot/internal/delivery/http"
	"github.com/aliskhannn/quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/quiz-bot/internal/delivery/vk"
	"github.com/aliskhannn/quiz-bot/internal/logger"
	"github.com/aliskhannn/quiz-bot/internal/repository"
	"github.com/aliskhannn/quiz-bot/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the enabled chat transports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Transports must not start without questions.
	questions, err := repository.LoadArchive(cfg.ArchiveDir, lg)
	if err != nil {
		return err
	}
	bank, err := repository.NewQuestionBank(questions)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer closeStore()

	quizService := service.NewQuizService(bank, store, lg)
	monitor := service.NewStoreMonitor(store, cfg.Monitor.Schedule, lg)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Telegram.Enabled {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("telegram bot: %w", err)
		}
		bot.Debug = cfg.Telegram.Debug
		lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

		setCommands(bot, lg)

		handler := telegram.NewHandler(bot, lg.Named("telegram"), quizService, cfg.Workers)
		g.Go(func() error { return handler.Run(ctx) })
	}

	if cfg.VK.Enabled {
		handler := vk.NewHandler(vkapi.NewVK(cfg.VK.Token), cfg.VK.GroupID, lg.Named("vk"), quizService, cfg.Workers)
		g.Go(func() error { return handler.Run(ctx) })
	}

	g.Go(func() error {
		return opshttp.Serve(ctx, cfg.HTTP.Addr, opshttp.NewRouter(store, bank), lg.Named("http"))
	})
	g.Go(func() error { return monitor.Start(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped", zap.Error(err))
		return err
	}
	lg.Info("shutdown signal received")
	return nil
}

func setCommands(bot *tgbotapi.BotAPI, lg *zap.Logger) {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Запустить бота",
		},
		{
			Command:     "cancel",
			Description: "Завершить диалог",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}
}
