package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/central-university-dev/go-waste-bot/internal/common/metrics"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

type NotificationTaskRepository interface {
	FindDue(ctx context.Context, slot, today, tomorrow string) ([]*models.NotificationTask, error)
}

type NotificationSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

const dateLayout = "2006-01-02"

// NotificationService рассылает уведомления о вывозе, подлежащие отправке
// в текущем часовом слоте.
type NotificationService struct {
	taskRepo    NotificationTaskRepository
	userRepo    UserRepository
	sender      NotificationSender
	limiter     *rate.Limiter
	location    *time.Location
	concurrency int
	logger      *slog.Logger
}

func NewNotificationService(
	taskRepo NotificationTaskRepository,
	userRepo UserRepository,
	sender NotificationSender,
	rateLimit float64,
	concurrency int,
	location *time.Location,
	logger *slog.Logger,
) *NotificationService {
	if concurrency <= 0 {
		concurrency = 15
	}

	if rateLimit <= 0 {
		rateLimit = 25
	}

	return &NotificationService{
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		sender:      sender,
		limiter:     rate.NewLimiter(rate.Limit(rateLimit), 1),
		location:    location,
		concurrency: concurrency,
		logger:      logger,
	}
}

// DispatchDue обрабатывает текущий часовой слот по часам в настроенном поясе.
func (s *NotificationService) DispatchDue(ctx context.Context) error {
	return s.DispatchAt(ctx, time.Now().In(s.location))
}

// DispatchAt рассылает уведомления слота, соответствующего моменту now.
// Каждое уведомление отправляется ровно один раз за тик; при временной
// ошибке доставки повтор произойдёт не раньше следующего подходящего тика.
func (s *NotificationService) DispatchAt(ctx context.Context, now time.Time) error {
	start := time.Now()

	slot := fmt.Sprintf("%02d:00", now.Hour())
	today := now.Format(dateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)

	tasks, err := s.taskRepo.FindDue(ctx, slot, today, tomorrow)
	if err != nil {
		return fmt.Errorf("ошибка при выборке уведомлений: %w", err)
	}

	if len(tasks) == 0 {
		s.logger.Info("Нет уведомлений для отправки", "slot", slot)
		return nil
	}

	s.logger.Info("Отправка уведомлений",
		"slot", slot,
		"count", len(tasks),
	)

	taskCh := make(chan *models.NotificationTask)
	wg := sync.WaitGroup{}

	for i := 0; i < s.concurrency; i++ {
		workerID := i + 1

		wg.Add(1)

		go func(workerID int) {
			defer wg.Done()
			s.worker(ctx, taskCh, workerID)
		}(workerID)
	}

	go func() {
		for _, task := range tasks {
			taskCh <- task
		}

		close(taskCh)
	}()

	wg.Wait()

	metrics.RecordNotificationTick(time.Since(start))

	return nil
}

// worker вычитывает канал до закрытия даже при отменённом контексте,
// иначе отправляющая горутина заблокируется навсегда.
func (s *NotificationService) worker(ctx context.Context, taskCh <-chan *models.NotificationTask, workerID int) {
	for task := range taskCh {
		if err := s.limiter.Wait(ctx); err != nil {
			metrics.RecordNotification("error")

			s.logger.Error("Уведомление пропущено: ожидание лимитера прервано",
				"worker", workerID,
				"chat_id", task.ChatID,
				"error", err,
			)

			continue
		}

		s.deliver(ctx, task, workerID)
	}
}

func (s *NotificationService) deliver(ctx context.Context, task *models.NotificationTask, workerID int) {
	text := FormatNotification(task)

	err := s.sender.SendMessage(ctx, task.ChatID, text)
	if err == nil {
		metrics.RecordNotification("sent")
		return
	}

	if errors.Is(err, &customerrors.ErrRecipientGone{}) {
		metrics.RecordNotification("recipient_gone")

		s.logger.Info("Получатель недоступен, удаляем пользователя",
			"worker", workerID,
			"chat_id", task.ChatID,
		)

		if delErr := s.userRepo.Delete(ctx, task.ChatID); delErr != nil {
			s.logger.Error("Ошибка при удалении недоступного пользователя",
				"chat_id", task.ChatID,
				"error", delErr,
			)
		}

		return
	}

	metrics.RecordNotification("error")

	s.logger.Error("Ошибка при отправке уведомления",
		"worker", workerID,
		"chat_id", task.ChatID,
		"error", err,
	)
}

// FormatNotification собирает текст уведомления о вывозе.
func FormatNotification(task *models.NotificationTask) string {
	day := "Сегодня"
	if task.NotifyOffset == 1 {
		day = "Завтра"
	}

	return fmt.Sprintf("📅 %s вывоз на участке %s: %s.", day, task.LocationLabel, task.WasteType.String())
}
