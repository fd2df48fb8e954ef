package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/central-university-dev/go-waste-bot/internal/calendar"
	"github.com/central-university-dev/go-waste-bot/internal/common/metrics"
	"github.com/central-university-dev/go-waste-bot/internal/config"
	"github.com/central-university-dev/go-waste-bot/internal/database"
	"github.com/central-university-dev/go-waste-bot/internal/repository"
	"github.com/central-university-dev/go-waste-bot/internal/repository/memory"
	"github.com/central-university-dev/go-waste-bot/internal/scheduler"
	"github.com/central-university-dev/go-waste-bot/internal/service"
	"github.com/central-university-dev/go-waste-bot/internal/telegram"
	"github.com/central-university-dev/go-waste-bot/pkg"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Последовательная инициализация всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	location := cfg.Location()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	txManager := txs.NewTxManager(db.Pool, appLogger)

	userRepo := repository.NewUserRepository(db, txManager)
	locationRepo := repository.NewLocationRepository(db, txManager)
	subscriptionRepo := repository.NewSubscriptionRepository(db, txManager)
	eventRepo := repository.NewPickupEventRepository(db, txManager, cfg.DatabaseBatchSize)
	notificationRepo := repository.NewNotificationRepository(db, txManager)
	stateRepo := memory.NewChatStateRepository()

	feedClient := calendar.NewFeedClient(cfg.FeedBaseURL, cfg, appLogger)

	syncService := service.NewSyncService(
		locationRepo,
		eventRepo,
		feedClient,
		cfg.SyncLookaheadDays,
		cfg.SyncFetchDelay,
		location,
		appLogger,
	)

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании Telegram клиента",
			"error", err,
		)

		return err
	}

	notificationService := service.NewNotificationService(
		notificationRepo,
		userRepo,
		telegramClient,
		cfg.NotifyRateLimit,
		cfg.NotifyConcurrency,
		location,
		appLogger,
	)

	subscriptionService := service.NewSubscriptionService(
		userRepo,
		locationRepo,
		subscriptionRepo,
		txManager,
		appLogger,
	)

	botService := service.NewBotService(subscriptionService, stateRepo, appLogger)

	if err := telegramClient.SetMyCommands(ctx, botCommands()); err != nil {
		appLogger.Error("Ошибка при установке команд бота",
			"error", err,
		)
	}

	poller := telegram.NewPoller(telegramClient, botService, appLogger)

	notifyScheduler := scheduler.NewNotifyScheduler(notificationService, location, appLogger)
	syncScheduler := scheduler.NewSyncScheduler(syncService, cfg.SyncInterval, location, appLogger)

	metricsServer := metrics.NewServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка сервера метрик",
				"error", err,
			)
		}
	}()

	notifyScheduler.Start()
	syncScheduler.Start()

	go poller.Start()

	appLogger.Info("Сервис запущен",
		"timezone", location.String(),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	appLogger.Info("Получен системный сигнал",
		"signal", sig.String(),
	)

	poller.Stop()
	notifyScheduler.Stop()
	syncScheduler.Stop()
	cancel()

	appLogger.Info("Сервис успешно остановлен")

	return nil
}

func botCommands() []telegram.BotCommand {
	return []telegram.BotCommand{
		{Command: "start", Description: "Регистрация"},
		{Command: "help", Description: "Список команд"},
		{Command: "addlocation", Description: "Привязать участок"},
		{Command: "locations", Description: "Мои участки"},
		{Command: "subscribe", Description: "Подписаться на категорию"},
		{Command: "unsubscribe", Description: "Отписаться от категории"},
		{Command: "settime", Description: "Время уведомления"},
		{Command: "setoffset", Description: "День уведомления"},
		{Command: "stop", Description: "Удалить все данные"},
	}
}
