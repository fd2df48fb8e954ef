package memory

import (
	"context"
	"sync"

	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

// ChatStateRepository хранит состояние диалога в памяти процесса.
// Состояние эфемерно: после рестарта все диалоги начинаются с StateIdle.
type ChatStateRepository struct {
	states map[int64]models.ChatState
	data   map[int64]map[string]string
	mu     sync.RWMutex
}

func NewChatStateRepository() *ChatStateRepository {
	return &ChatStateRepository{
		states: make(map[int64]models.ChatState),
		data:   make(map[int64]map[string]string),
	}
}

func (r *ChatStateRepository) GetState(_ context.Context, chatID int64) (models.ChatState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.states[chatID]
	if !exists {
		return models.StateIdle, nil
	}

	return state, nil
}

func (r *ChatStateRepository) SetState(_ context.Context, chatID int64, state models.ChatState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[chatID] = state

	return nil
}

func (r *ChatStateRepository) GetData(_ context.Context, chatID int64, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chatData, exists := r.data[chatID]
	if !exists {
		return "", nil
	}

	return chatData[key], nil
}

func (r *ChatStateRepository) SetData(_ context.Context, chatID int64, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[chatID]; !exists {
		r.data[chatID] = make(map[string]string)
	}

	r.data[chatID][key] = value

	return nil
}

// Reset возвращает диалог в исходное состояние и чистит накопленные данные.
func (r *ChatStateRepository) Reset(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[chatID] = models.StateIdle

	delete(r.data, chatID)

	return nil
}
