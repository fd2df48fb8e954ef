package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
)

type Update struct {
	UpdateID int64
	Message  *Message
}

type Message struct {
	MessageID int64
	Text      string
	Chat      Chat
	From      User
}

type Chat struct {
	ID int64
}

type User struct {
	ID       int64
	Username string
}

type BotCommand struct {
	Command     string
	Description string
}

type Client struct {
	bot    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewClient(token string, logger *slog.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании Telegram клиента: %w", err)
	}

	return &Client{
		bot:    bot,
		logger: logger,
	}, nil
}

// SendMessage отправляет сообщение в чат. Если бот заблокирован или аккаунт
// получателя деактивирован, возвращается ErrRecipientGone: такие ошибки
// постоянны, повторная отправка не имеет смысла.
func (c *Client) SendMessage(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)

	_, err := c.bot.Send(msg)
	if err != nil {
		if isRecipientGone(err) {
			return &customerrors.ErrRecipientGone{ChatID: chatID, Cause: err}
		}

		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

func isRecipientGone(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	if apiErr.Code != 403 {
		return false
	}

	message := strings.ToLower(apiErr.Message)

	return strings.Contains(message, "blocked") || strings.Contains(message, "deactivated")
}

func (c *Client) GetUpdates(_ context.Context, offset int) ([]Update, error) {
	updateConfig := tgbotapi.NewUpdate(offset)
	updateConfig.Timeout = 30

	updates, err := c.bot.GetUpdates(updateConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении обновлений: %w", err)
	}

	result := make([]Update, 0, len(updates))

	for _, update := range updates {
		var message *Message

		if update.Message != nil {
			message = &Message{
				MessageID: int64(update.Message.MessageID),
				Text:      update.Message.Text,
				Chat: Chat{
					ID: update.Message.Chat.ID,
				},
			}

			if update.Message.From != nil {
				message.From = User{
					ID:       update.Message.From.ID,
					Username: update.Message.From.UserName,
				}
			}
		}

		result = append(result, Update{
			UpdateID: int64(update.UpdateID),
			Message:  message,
		})
	}

	return result, nil
}

func (c *Client) SetMyCommands(_ context.Context, commands []BotCommand) error {
	botAPICommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botAPICommands = append(botAPICommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(botAPICommands...)

	_, err := c.bot.Request(setCommandsConfig)
	if err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}
