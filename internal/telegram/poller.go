package telegram

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/central-university-dev/go-waste-bot/internal/common/metrics"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

type BotService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (string, error)

	ProcessMessage(ctx context.Context, chatID int64, text string) (string, error)
}

type ClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	GetUpdates(ctx context.Context, offset int) ([]Update, error)
}

type Poller struct {
	client     ClientAPI
	botService BotService
	logger     *slog.Logger
	offset     int
	stopped    atomic.Bool
}

func NewPoller(client ClientAPI, botService BotService, logger *slog.Logger) *Poller {
	return &Poller{
		client:     client,
		botService: botService,
		logger:     logger,
		offset:     0,
	}
}

// Start крутит цикл long poll до вызова Stop. Stop может прийти из другой
// горутины, поэтому флаг остановки атомарный.
func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера")
	p.stopped.Store(false)

	for !p.stopped.Load() {
		ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
		updates, err := p.client.GetUpdates(ctx, p.offset)

		cancel()

		if err != nil {
			p.logger.Error("Ошибка при получении обновлений", "error", err)
			time.Sleep(5 * time.Second)

			continue
		}

		for _, update := range updates {
			p.processUpdate(update)
			p.offset = int(update.UpdateID) + 1
		}

		time.Sleep(1 * time.Second)
	}
}

func (p *Poller) Stop() {
	p.logger.Info("Остановка Telegram поллера")
	p.stopped.Store(true)
}

func (p *Poller) processUpdate(update Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text

	p.logger.Info("Получено сообщение",
		"chat_id", chatID,
		"text", text,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var response string

	var err error

	if strings.HasPrefix(text, "/") {
		command := &models.Command{
			ChatID:   chatID,
			UserID:   update.Message.From.ID,
			Text:     text,
			Username: update.Message.From.Username,
		}

		command.Type = getCommandType(text)

		metrics.RecordUserMessage(string(command.Type))

		response, err = p.botService.ProcessCommand(ctx, command)
	} else {
		metrics.RecordUserMessage("text")

		response, err = p.botService.ProcessMessage(ctx, chatID, text)
	}

	if err != nil {
		p.logger.Error("Ошибка при обработке сообщения",
			"error", err,
			"chat_id", chatID,
			"text", text,
		)

		response = "Произошла ошибка при обработке вашего сообщения. Пожалуйста, попробуйте позже."
	}

	if response != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := p.client.SendMessage(ctx, chatID, response); err != nil {
			p.logger.Error("Ошибка при отправке ответа",
				"error", err,
				"chat_id", chatID,
			)
		}
	}
}

func getCommandType(text string) models.CommandType {
	command := strings.Split(text, " ")[0]
	switch command {
	case "/start":
		return models.CommandStart
	case "/help":
		return models.CommandHelp
	case "/addlocation":
		return models.CommandAddLocation
	case "/locations":
		return models.CommandLocations
	case "/subscribe":
		return models.CommandSubscribe
	case "/unsubscribe":
		return models.CommandUnsubscribe
	case "/settime":
		return models.CommandSetTime
	case "/setoffset":
		return models.CommandSetOffset
	case "/stop":
		return models.CommandStop
	default:
		return models.CommandUnknown
	}
}
