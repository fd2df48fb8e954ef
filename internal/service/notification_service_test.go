package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
	"github.com/central-university-dev/go-waste-bot/internal/service"
	"github.com/central-university-dev/go-waste-bot/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationService_DispatchAt(t *testing.T) {
	t.Parallel()

	mockTaskRepo := new(mocks.NotificationTaskRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.NotificationSender)

	tasks := []*models.NotificationTask{
		{ChatID: 1, WasteType: models.WasteType{Kind: models.WasteBio}, LocationLabel: "Дом", NotifyOffset: 1},
		{ChatID: 2, WasteType: models.WasteType{Kind: models.WasteRest}, LocationLabel: "70339", NotifyOffset: 0},
	}

	mockTaskRepo.On("FindDue", mock.Anything, "18:00", "2023-10-26", "2023-10-27").Return(tasks, nil)

	mockSender.On("SendMessage", mock.Anything, int64(1), "📅 Завтра вывоз на участке Дом: Bio.").Return(nil)
	mockSender.On("SendMessage", mock.Anything, int64(2), "📅 Сегодня вывоз на участке 70339: Rest.").Return(nil)

	svc := service.NewNotificationService(mockTaskRepo, mockUserRepo, mockSender, 1000, 3, time.UTC, testLogger())

	now := time.Date(2023, 10, 26, 18, 0, 0, 0, time.UTC)

	err := svc.DispatchAt(context.Background(), now)

	require.NoError(t, err)
	mockTaskRepo.AssertExpectations(t)
	mockSender.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNotificationService_EmptySlot(t *testing.T) {
	t.Parallel()

	mockTaskRepo := new(mocks.NotificationTaskRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.NotificationSender)

	mockTaskRepo.On("FindDue", mock.Anything, "07:00", "2023-10-26", "2023-10-27").
		Return([]*models.NotificationTask{}, nil)

	svc := service.NewNotificationService(mockTaskRepo, mockUserRepo, mockSender, 1000, 3, time.UTC, testLogger())

	now := time.Date(2023, 10, 26, 7, 30, 0, 0, time.UTC)

	err := svc.DispatchAt(context.Background(), now)

	require.NoError(t, err)
	mockSender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_RecipientGoneDeletesUser(t *testing.T) {
	t.Parallel()

	mockTaskRepo := new(mocks.NotificationTaskRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.NotificationSender)

	tasks := []*models.NotificationTask{
		{ChatID: 42, WasteType: models.WasteType{Kind: models.WasteBio}, LocationLabel: "Дом", NotifyOffset: 1},
	}

	mockTaskRepo.On("FindDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tasks, nil)

	gone := &customerrors.ErrRecipientGone{ChatID: 42, Cause: errors.New("Forbidden: bot was blocked by the user")}
	mockSender.On("SendMessage", mock.Anything, int64(42), mock.Anything).Return(gone)

	mockUserRepo.On("Delete", mock.Anything, int64(42)).Return(nil)

	svc := service.NewNotificationService(mockTaskRepo, mockUserRepo, mockSender, 1000, 1, time.UTC, testLogger())

	err := svc.DispatchAt(context.Background(), time.Date(2023, 10, 26, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	mockUserRepo.AssertCalled(t, "Delete", mock.Anything, int64(42))
}

func TestNotificationService_TransientErrorKeepsUser(t *testing.T) {
	t.Parallel()

	mockTaskRepo := new(mocks.NotificationTaskRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.NotificationSender)

	tasks := []*models.NotificationTask{
		{ChatID: 42, WasteType: models.WasteType{Kind: models.WasteBio}, LocationLabel: "Дом", NotifyOffset: 1},
	}

	mockTaskRepo.On("FindDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tasks, nil)

	mockSender.On("SendMessage", mock.Anything, int64(42), mock.Anything).Return(errors.New("Too Many Requests"))

	svc := service.NewNotificationService(mockTaskRepo, mockUserRepo, mockSender, 1000, 1, time.UTC, testLogger())

	err := svc.DispatchAt(context.Background(), time.Date(2023, 10, 26, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	mockUserRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNotificationService_CanceledContextFinishesTick(t *testing.T) {
	t.Parallel()

	mockTaskRepo := new(mocks.NotificationTaskRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.NotificationSender)

	tasks := make([]*models.NotificationTask, 0, 10)
	for i := 0; i < 10; i++ {
		tasks = append(tasks, &models.NotificationTask{
			ChatID:        int64(i + 1),
			WasteType:     models.WasteType{Kind: models.WasteBio},
			LocationLabel: "Дом",
			NotifyOffset:  1,
		})
	}

	mockTaskRepo.On("FindDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tasks, nil)

	svc := service.NewNotificationService(mockTaskRepo, mockUserRepo, mockSender, 1000, 2, time.UTC, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)

	go func() {
		done <- svc.DispatchAt(ctx, time.Date(2023, 10, 26, 18, 0, 0, 0, time.UTC))
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("рассылка не завершилась при отменённом контексте")
	}

	// Задачи отменённого тика пропускаются без отправки.
	mockSender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestFormatNotification(t *testing.T) {
	t.Parallel()

	dayBefore := &models.NotificationTask{
		WasteType:     models.WasteType{Kind: models.WastePapier},
		LocationLabel: "Дача",
		NotifyOffset:  1,
	}
	sameDay := &models.NotificationTask{
		WasteType:     models.WasteType{Kind: models.WasteOther, Label: "Sperrmüll"},
		LocationLabel: "70339",
		NotifyOffset:  0,
	}

	assert.Equal(t, "📅 Завтра вывоз на участке Дача: Papier.", service.FormatNotification(dayBefore))
	assert.Equal(t, "📅 Сегодня вывоз на участке 70339: Sperrmüll.", service.FormatNotification(sameDay))
}
