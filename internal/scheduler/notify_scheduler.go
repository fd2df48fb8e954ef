package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type NotificationDispatcher interface {
	DispatchDue(ctx context.Context) error
}

// NotifyScheduler запускает рассылку на каждой границе часа в настроенном
// часовом поясе. Тик, пропущенный из-за рестарта процесса, не навёрстывается:
// уведомления этого слота уйдут только в следующий подходящий день.
type NotifyScheduler struct {
	scheduler  *gocron.Scheduler
	dispatcher NotificationDispatcher
	logger     *slog.Logger
}

func NewNotifyScheduler(dispatcher NotificationDispatcher, location *time.Location, logger *slog.Logger) *NotifyScheduler {
	scheduler := gocron.NewScheduler(location)

	return &NotifyScheduler{
		scheduler:  scheduler,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *NotifyScheduler) Start() {
	s.logger.Info("Запуск планировщика уведомлений")

	_, err := s.scheduler.Cron("0 * * * *").Do(func() {
		ctx := context.Background()
		if err := s.dispatcher.DispatchDue(ctx); err != nil {
			s.logger.Error("Ошибка при рассылке уведомлений",
				"error", err,
			)
		}
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика уведомлений",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *NotifyScheduler) Stop() {
	s.logger.Info("Остановка планировщика уведомлений")
	s.scheduler.Stop()
}
