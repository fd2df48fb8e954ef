package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/multierr"

	"github.com/central-university-dev/go-waste-bot/internal/calendar"
	"github.com/central-university-dev/go-waste-bot/internal/common/metrics"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

type CalendarFetcher interface {
	FetchCalendar(ctx context.Context, locationCode string, from, to time.Time) (string, error)
}

type PickupEventRepository interface {
	ReplaceUpcoming(ctx context.Context, locationCode string, events []models.PickupEvent, today string) error
	CountByLocation(ctx context.Context, locationCode string) (int, error)
}

// SyncService обновляет сохранённые календари вывоза по всем участкам,
// известным хотя бы одному пользователю.
type SyncService struct {
	locationRepo  LocationRepository
	eventRepo     PickupEventRepository
	fetcher       CalendarFetcher
	location      *time.Location
	lookaheadDays int
	fetchDelay    time.Duration
	logger        *slog.Logger
}

func NewSyncService(
	locationRepo LocationRepository,
	eventRepo PickupEventRepository,
	fetcher CalendarFetcher,
	lookaheadDays int,
	fetchDelay time.Duration,
	location *time.Location,
	logger *slog.Logger,
) *SyncService {
	if lookaheadDays <= 0 {
		lookaheadDays = 90
	}

	return &SyncService{
		locationRepo:  locationRepo,
		eventRepo:     eventRepo,
		fetcher:       fetcher,
		location:      location,
		lookaheadDays: lookaheadDays,
		fetchDelay:    fetchDelay,
		logger:        logger,
	}
}

// SyncAll обходит все известные участки. Ошибка одного участка логируется
// и накапливается, но не прерывает обход остальных.
func (s *SyncService) SyncAll(ctx context.Context) error {
	codes, err := s.locationRepo.DistinctLocationCodes(ctx)
	if err != nil {
		metrics.RecordSyncRun("error")
		return fmt.Errorf("ошибка при выборке кодов участков: %w", err)
	}

	s.logger.Info("Запуск синхронизации календарей",
		"locations", len(codes),
	)

	var errs error

	for i, code := range codes {
		if i > 0 && s.fetchDelay > 0 {
			time.Sleep(s.fetchDelay)
		}

		if err := s.syncLocation(ctx, code); err != nil {
			metrics.RecordSyncLocation("error")

			s.logger.Error("Ошибка при синхронизации участка",
				"location", code,
				"error", err,
			)

			errs = multierr.Append(errs, fmt.Errorf("участок %s: %w", code, err))

			continue
		}

		metrics.RecordSyncLocation("success")
	}

	if errs != nil {
		metrics.RecordSyncRun("error")
		return errs
	}

	metrics.RecordSyncRun("success")

	s.logger.Info("Синхронизация календарей завершена",
		"locations", len(codes),
	)

	return nil
}

func (s *SyncService) syncLocation(ctx context.Context, locationCode string) error {
	now := time.Now().In(s.location)
	from := now
	to := now.AddDate(0, 0, s.lookaheadDays)

	content, err := s.fetcher.FetchCalendar(ctx, locationCode, from, to)
	if err != nil {
		return err
	}

	if err := calendar.Validate(content); err != nil {
		return err
	}

	events, err := calendar.ParseCalendar(content)
	if err != nil {
		return err
	}

	today := now.Format(dateLayout)

	if err := s.eventRepo.ReplaceUpcoming(ctx, locationCode, events, today); err != nil {
		return err
	}

	count, err := s.eventRepo.CountByLocation(ctx, locationCode)
	if err != nil {
		s.logger.Warn("Не удалось обновить метрику событий участка",
			"location", locationCode,
			"error", err,
		)
	} else {
		metrics.UpdatePickupEventsCount(locationCode, float64(count))
	}

	s.logger.Info("Календарь участка обновлён",
		"location", locationCode,
		"events", len(events),
	)

	return nil
}
