package service

import (
	"context"
	"log/slog"
	"regexp"

	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

type UserRepository interface {
	Save(ctx context.Context, chatID int64) error
	Exists(ctx context.Context, chatID int64) (bool, error)
	Delete(ctx context.Context, chatID int64) error
}

type LocationRepository interface {
	Upsert(ctx context.Context, userID int64, locationCode, alias string) (int64, error)
	FindByUser(ctx context.Context, userID int64) ([]*models.UserLocation, error)
	FindByAliasOrCode(ctx context.Context, userID int64, key string) (*models.UserLocation, error)
	Delete(ctx context.Context, userID int64, key string) error
	UpdateNotifyTime(ctx context.Context, userID int64, key, notifyTime string) error
	UpdateNotifyOffset(ctx context.Context, userID int64, key string, notifyOffset int) error
	DistinctLocationCodes(ctx context.Context) ([]string, error)
}

type SubscriptionRepository interface {
	Add(ctx context.Context, userLocationID int64, wasteType models.WasteType) error
	Remove(ctx context.Context, userLocationID int64, wasteType models.WasteType) error
	List(ctx context.Context, userLocationID int64) ([]models.WasteType, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

var (
	locationCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)
	notifyTimePattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):00$`)
)

// LocationOverview — участок вместе с его подписками, для команды /locations.
type LocationOverview struct {
	Location      *models.UserLocation
	Subscriptions []models.WasteType
}

// SubscriptionService управляет пользователями, их участками и подписками.
type SubscriptionService struct {
	userRepo         UserRepository
	locationRepo     LocationRepository
	subscriptionRepo SubscriptionRepository
	txManager        Transactor
	logger           *slog.Logger
}

func NewSubscriptionService(
	userRepo UserRepository,
	locationRepo LocationRepository,
	subscriptionRepo SubscriptionRepository,
	txManager Transactor,
	logger *slog.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		userRepo:         userRepo,
		locationRepo:     locationRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (s *SubscriptionService) RegisterUser(ctx context.Context, chatID int64) error {
	return s.userRepo.Save(ctx, chatID)
}

// RegisterLocation привязывает участок к пользователю и оформляет подписки
// по умолчанию. Вся регистрация выполняется в одной транзакции.
func (s *SubscriptionService) RegisterLocation(ctx context.Context, chatID int64, locationCode, alias string) (*models.UserLocation, error) {
	if !locationCodePattern.MatchString(locationCode) {
		return nil, &customerrors.ErrInvalidLocationCode{Code: locationCode}
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Save(ctx, chatID); err != nil {
			return err
		}

		locationID, err := s.locationRepo.Upsert(ctx, chatID, locationCode, alias)
		if err != nil {
			return err
		}

		for _, wasteType := range models.DefaultSubscriptions() {
			if err := s.subscriptionRepo.Add(ctx, locationID, wasteType); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Участок привязан",
		"chat_id", chatID,
		"location", locationCode,
	)

	return s.locationRepo.FindByAliasOrCode(ctx, chatID, locationCode)
}

func (s *SubscriptionService) ListLocations(ctx context.Context, chatID int64) ([]*LocationOverview, error) {
	locations, err := s.locationRepo.FindByUser(ctx, chatID)
	if err != nil {
		return nil, err
	}

	overviews := make([]*LocationOverview, 0, len(locations))

	for _, location := range locations {
		subscriptions, err := s.subscriptionRepo.List(ctx, location.ID)
		if err != nil {
			return nil, err
		}

		overviews = append(overviews, &LocationOverview{
			Location:      location,
			Subscriptions: subscriptions,
		})
	}

	return overviews, nil
}

func (s *SubscriptionService) RemoveLocation(ctx context.Context, chatID int64, key string) error {
	return s.locationRepo.Delete(ctx, chatID, key)
}

// Subscribe добавляет подписку участка на категорию. Метка категории
// сворачивается к каноническому виду.
func (s *SubscriptionService) Subscribe(ctx context.Context, chatID int64, key, label string) (models.WasteType, error) {
	wasteType := models.ParseWasteType(label)

	location, err := s.locationRepo.FindByAliasOrCode(ctx, chatID, key)
	if err != nil {
		return wasteType, err
	}

	return wasteType, s.subscriptionRepo.Add(ctx, location.ID, wasteType)
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, chatID int64, key, label string) (models.WasteType, error) {
	wasteType := models.ParseWasteType(label)

	location, err := s.locationRepo.FindByAliasOrCode(ctx, chatID, key)
	if err != nil {
		return wasteType, err
	}

	return wasteType, s.subscriptionRepo.Remove(ctx, location.ID, wasteType)
}

func (s *SubscriptionService) SetNotifyTime(ctx context.Context, chatID int64, key, notifyTime string) error {
	if !notifyTimePattern.MatchString(notifyTime) {
		return &customerrors.ErrInvalidNotifyTime{Value: notifyTime}
	}

	return s.locationRepo.UpdateNotifyTime(ctx, chatID, key, notifyTime)
}

func (s *SubscriptionService) SetNotifyOffset(ctx context.Context, chatID int64, key, mode string) error {
	var notifyOffset int

	switch mode {
	case "today":
		notifyOffset = 0
	case "tomorrow":
		notifyOffset = 1
	default:
		return &customerrors.ErrInvalidNotifyOffset{Value: mode}
	}

	return s.locationRepo.UpdateNotifyOffset(ctx, chatID, key, notifyOffset)
}

// DeleteUser удаляет пользователя со всеми привязками и подписками.
func (s *SubscriptionService) DeleteUser(ctx context.Context, chatID int64) error {
	return s.userRepo.Delete(ctx, chatID)
}

// ValidLocationCode проверяет идентификатор участка: латинские буквы и
// цифры, не длиннее 20 символов.
func ValidLocationCode(code string) bool {
	return locationCodePattern.MatchString(code)
}
