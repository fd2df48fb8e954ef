package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type CalendarSyncer interface {
	SyncAll(ctx context.Context) error
}

// SyncScheduler периодически обновляет календари вывоза. Первый запуск
// происходит сразу при старте процесса.
type SyncScheduler struct {
	scheduler *gocron.Scheduler
	syncer    CalendarSyncer
	logger    *slog.Logger
	interval  time.Duration
}

func NewSyncScheduler(syncer CalendarSyncer, interval time.Duration, location *time.Location, logger *slog.Logger) *SyncScheduler {
	scheduler := gocron.NewScheduler(location)

	return &SyncScheduler{
		scheduler: scheduler,
		syncer:    syncer,
		logger:    logger,
		interval:  interval,
	}
}

func (s *SyncScheduler) Start() {
	s.logger.Info("Запуск планировщика синхронизации",
		"interval", s.interval.String(),
	)

	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		ctx := context.Background()
		if err := s.syncer.SyncAll(ctx); err != nil {
			s.logger.Error("Ошибка при синхронизации календарей",
				"error", err,
			)
		}
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика синхронизации",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *SyncScheduler) Stop() {
	s.logger.Info("Остановка планировщика синхронизации")
	s.scheduler.Stop()
}
