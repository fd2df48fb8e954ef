package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

type SubscriptionManager interface {
	RegisterUser(ctx context.Context, chatID int64) error
	RegisterLocation(ctx context.Context, chatID int64, locationCode, alias string) (*models.UserLocation, error)
	ListLocations(ctx context.Context, chatID int64) ([]*LocationOverview, error)
	RemoveLocation(ctx context.Context, chatID int64, key string) error
	Subscribe(ctx context.Context, chatID int64, key, label string) (models.WasteType, error)
	Unsubscribe(ctx context.Context, chatID int64, key, label string) (models.WasteType, error)
	SetNotifyTime(ctx context.Context, chatID int64, key, notifyTime string) error
	SetNotifyOffset(ctx context.Context, chatID int64, key, mode string) error
	DeleteUser(ctx context.Context, chatID int64) error
}

type ChatStateRepository interface {
	GetState(ctx context.Context, chatID int64) (models.ChatState, error)
	SetState(ctx context.Context, chatID int64, state models.ChatState) error
	GetData(ctx context.Context, chatID int64, key string) (string, error)
	SetData(ctx context.Context, chatID int64, key, value string) error
	Reset(ctx context.Context, chatID int64) error
}

const dataKeyLocationCode = "location_code"

const helpText = `Доступные команды:
/addlocation — привязать участок (понадобится его идентификатор)
/locations — список участков с подписками и расписанием
/subscribe <участок> <категория> — подписаться на категорию
/unsubscribe <участок> <категория> — отписаться от категории
/settime <участок> <ЧЧ:00> — время уведомления
/setoffset <участок> today|tomorrow — уведомлять в день вывоза или накануне
/stop — удалить все данные`

// BotService обрабатывает команды и диалоговые сообщения пользователей.
type BotService struct {
	subscriptions SubscriptionManager
	stateRepo     ChatStateRepository
	logger        *slog.Logger
}

func NewBotService(subscriptions SubscriptionManager, stateRepo ChatStateRepository, logger *slog.Logger) *BotService {
	return &BotService{
		subscriptions: subscriptions,
		stateRepo:     stateRepo,
		logger:        logger,
	}
}

//nolint:cyclop // Диспетчеризация команд
func (s *BotService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	// Любая команда прерывает незавершённый диалог.
	if err := s.stateRepo.Reset(ctx, command.ChatID); err != nil {
		return "", err
	}

	switch command.Type {
	case models.CommandStart:
		return s.handleStart(ctx, command.ChatID)
	case models.CommandHelp:
		return helpText, nil
	case models.CommandAddLocation:
		return s.handleAddLocation(ctx, command.ChatID)
	case models.CommandLocations:
		return s.handleLocations(ctx, command.ChatID)
	case models.CommandSubscribe:
		return s.handleSubscription(ctx, command, true)
	case models.CommandUnsubscribe:
		return s.handleSubscription(ctx, command, false)
	case models.CommandSetTime:
		return s.handleSetTime(ctx, command)
	case models.CommandSetOffset:
		return s.handleSetOffset(ctx, command)
	case models.CommandStop:
		return s.handleStop(ctx, command.ChatID)
	default:
		return "Неизвестная команда. Отправьте /help, чтобы увидеть список команд.", nil
	}
}

// ProcessMessage обрабатывает обычное сообщение с учётом состояния диалога.
func (s *BotService) ProcessMessage(ctx context.Context, chatID int64, text string) (string, error) {
	state, err := s.stateRepo.GetState(ctx, chatID)
	if err != nil {
		return "", err
	}

	switch state {
	case models.StateAwaitingLocationCode:
		return s.handleLocationCodeInput(ctx, chatID, text)
	case models.StateAwaitingAlias:
		return s.handleAliasInput(ctx, chatID, text)
	case models.StateIdle:
		return "Я не понял сообщение. Отправьте /help, чтобы увидеть список команд.", nil
	default:
		return "Я не понял сообщение. Отправьте /help, чтобы увидеть список команд.", nil
	}
}

func (s *BotService) handleStart(ctx context.Context, chatID int64) (string, error) {
	if err := s.subscriptions.RegisterUser(ctx, chatID); err != nil {
		return "", err
	}

	return "Привет! Я напоминаю о вывозе отходов.\n\n" + helpText, nil
}

func (s *BotService) handleAddLocation(ctx context.Context, chatID int64) (string, error) {
	if err := s.stateRepo.SetState(ctx, chatID, models.StateAwaitingLocationCode); err != nil {
		return "", err
	}

	return "Введите идентификатор участка (STANDORT, до 20 латинских букв и цифр).", nil
}

func (s *BotService) handleLocationCodeInput(ctx context.Context, chatID int64, text string) (string, error) {
	code := strings.TrimSpace(text)

	if !ValidLocationCode(code) {
		return "Некорректный идентификатор: допустимы только латинские буквы и цифры, не более 20 символов. Попробуйте ещё раз.", nil
	}

	if err := s.stateRepo.SetData(ctx, chatID, dataKeyLocationCode, code); err != nil {
		return "", err
	}

	if err := s.stateRepo.SetState(ctx, chatID, models.StateAwaitingAlias); err != nil {
		return "", err
	}

	return "Введите название участка (например, «Дом»). Отправьте «-», чтобы оставить без названия.", nil
}

func (s *BotService) handleAliasInput(ctx context.Context, chatID int64, text string) (string, error) {
	code, err := s.stateRepo.GetData(ctx, chatID, dataKeyLocationCode)
	if err != nil {
		return "", err
	}

	if code == "" {
		if err := s.stateRepo.Reset(ctx, chatID); err != nil {
			return "", err
		}

		return "Диалог прерван. Начните заново с /addlocation.", nil
	}

	alias := strings.TrimSpace(text)
	if alias == "-" {
		alias = ""
	}

	location, err := s.subscriptions.RegisterLocation(ctx, chatID, code, alias)
	if err != nil {
		return "", err
	}

	if err := s.stateRepo.Reset(ctx, chatID); err != nil {
		return "", err
	}

	types := make([]string, 0, len(models.DefaultSubscriptions()))
	for _, wasteType := range models.DefaultSubscriptions() {
		types = append(types, wasteType.String())
	}

	return fmt.Sprintf(
		"Участок %s привязан. Подписки по умолчанию: %s.\nУведомления: накануне в %s. Изменить: /settime и /setoffset.",
		location.DisplayLabel(),
		strings.Join(types, ", "),
		location.NotifyTime,
	), nil
}

func (s *BotService) handleLocations(ctx context.Context, chatID int64) (string, error) {
	overviews, err := s.subscriptions.ListLocations(ctx, chatID)
	if err != nil {
		return "", err
	}

	if len(overviews) == 0 {
		return "У вас пока нет участков. Добавьте первый командой /addlocation.", nil
	}

	var b strings.Builder

	b.WriteString("Ваши участки:\n")

	for _, overview := range overviews {
		location := overview.Location

		types := make([]string, 0, len(overview.Subscriptions))
		for _, wasteType := range overview.Subscriptions {
			types = append(types, wasteType.String())
		}

		day := "в день вывоза"
		if location.NotifyOffset == 1 {
			day = "накануне"
		}

		fmt.Fprintf(&b, "\n%s (%s)\nПодписки: %s\nУведомления: %s в %s\n",
			location.DisplayLabel(),
			location.LocationCode,
			strings.Join(types, ", "),
			day,
			location.NotifyTime,
		)
	}

	return b.String(), nil
}

func (s *BotService) handleSubscription(ctx context.Context, command *models.Command, subscribe bool) (string, error) {
	parts := strings.SplitN(command.Text, " ", 3)
	if len(parts) < 3 {
		return fmt.Sprintf("Формат: %s <участок> <категория>", parts[0]), nil
	}

	key, label := parts[1], parts[2]

	var (
		wasteType models.WasteType
		err       error
	)

	if subscribe {
		wasteType, err = s.subscriptions.Subscribe(ctx, command.ChatID, key, label)
	} else {
		wasteType, err = s.subscriptions.Unsubscribe(ctx, command.ChatID, key, label)
	}

	if err != nil {
		if errors.Is(err, &customerrors.ErrLocationNotFound{}) {
			return fmt.Sprintf("Участок «%s» не найден. Список участков: /locations.", key), nil
		}

		return "", err
	}

	if subscribe {
		return fmt.Sprintf("Подписка на «%s» оформлена.", wasteType.String()), nil
	}

	return fmt.Sprintf("Подписка на «%s» снята.", wasteType.String()), nil
}

func (s *BotService) handleSetTime(ctx context.Context, command *models.Command) (string, error) {
	parts := strings.Fields(command.Text)
	if len(parts) != 3 {
		return "Формат: /settime <участок> <ЧЧ:00>", nil
	}

	err := s.subscriptions.SetNotifyTime(ctx, command.ChatID, parts[1], parts[2])
	if err != nil {
		switch {
		case errors.Is(err, &customerrors.ErrInvalidNotifyTime{}):
			return "Время указывается с точностью до часа, например 18:00.", nil
		case errors.Is(err, &customerrors.ErrLocationNotFound{}):
			return fmt.Sprintf("Участок «%s» не найден. Список участков: /locations.", parts[1]), nil
		default:
			return "", err
		}
	}

	return fmt.Sprintf("Время уведомления для «%s» установлено: %s.", parts[1], parts[2]), nil
}

func (s *BotService) handleSetOffset(ctx context.Context, command *models.Command) (string, error) {
	parts := strings.Fields(command.Text)
	if len(parts) != 3 {
		return "Формат: /setoffset <участок> today|tomorrow", nil
	}

	err := s.subscriptions.SetNotifyOffset(ctx, command.ChatID, parts[1], parts[2])
	if err != nil {
		switch {
		case errors.Is(err, &customerrors.ErrInvalidNotifyOffset{}):
			return "Режим может быть today (в день вывоза) или tomorrow (накануне).", nil
		case errors.Is(err, &customerrors.ErrLocationNotFound{}):
			return fmt.Sprintf("Участок «%s» не найден. Список участков: /locations.", parts[1]), nil
		default:
			return "", err
		}
	}

	if parts[2] == "today" {
		return fmt.Sprintf("Буду уведомлять об участке «%s» в день вывоза.", parts[1]), nil
	}

	return fmt.Sprintf("Буду уведомлять об участке «%s» накануне вывоза.", parts[1]), nil
}

func (s *BotService) handleStop(ctx context.Context, chatID int64) (string, error) {
	err := s.subscriptions.DeleteUser(ctx, chatID)
	if err != nil {
		if errors.Is(err, &customerrors.ErrUserNotFound{}) {
			return "Вы не были зарегистрированы.", nil
		}

		return "", err
	}

	return "Все ваши данные удалены. Возвращайтесь: /start.", nil
}
