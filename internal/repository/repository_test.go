package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/central-university-dev/go-waste-bot/internal/config"
	"github.com/central-university-dev/go-waste-bot/internal/database"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
	"github.com/central-university-dev/go-waste-bot/internal/repository"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

var (
	testDB *database.PostgresDB
	logger *slog.Logger
)

func setupTestDatabase(ctx context.Context) (*database.PostgresDB, func(), error) {
	dbName := "testdb"
	dbUser := "testuser"
	dbPassword := "testpassword"

	container, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось запустить контейнер postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить хост контейнера: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить порт контейнера: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName)

	migrationsPath, _ := filepath.Abs("../../migrations")
	migrateURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(migrateURL, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать экземпляр migrate: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, nil, fmt.Errorf("не удалось применить миграции: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return nil, nil, fmt.Errorf("ошибка закрытия источника миграций: %w", sourceErr)
	}

	if dbErr != nil {
		return nil, nil, fmt.Errorf("ошибка закрытия подключения БД миграций: %w", dbErr)
	}

	logger.Info("Миграции успешно применены к тестовой БД")

	testCfg := &config.Config{
		DatabaseURL:     dsn,
		DatabaseMaxConn: 5,
	}

	db, err := database.NewPostgresDB(ctx, testCfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к тестовой БД: %w", err)
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			logger.Error("Не удалось остановить контейнер postgres", "error", err)
		}
	}

	return db, cleanup, nil
}

func TestMain(m *testing.M) {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	exitCode := func() int {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		var cleanup func()

		var err error

		testDB, cleanup, err = setupTestDatabase(ctx)
		if err != nil {
			logger.Error("Ошибка при настройке тестовой БД", "error", err)
			return 1
		}

		code := m.Run()

		cleanup()

		return code
	}()

	os.Exit(exitCode)
}

func clearTables(t *testing.T, ctx context.Context) {
	t.Helper()

	_, err := testDB.Pool.Exec(ctx, "TRUNCATE users, user_locations, subscriptions, pickup_events CASCADE")
	require.NoError(t, err)
}

func newRepos(t *testing.T) (*repository.UserRepository, *repository.LocationRepository, *repository.SubscriptionRepository, *repository.PickupEventRepository, *repository.NotificationRepository) {
	t.Helper()

	txManager := txs.NewTxManager(testDB.Pool, logger)

	return repository.NewUserRepository(testDB, txManager),
		repository.NewLocationRepository(testDB, txManager),
		repository.NewSubscriptionRepository(testDB, txManager),
		repository.NewPickupEventRepository(testDB, txManager, 250),
		repository.NewNotificationRepository(testDB, txManager)
}

func bio() models.WasteType  { return models.WasteType{Kind: models.WasteBio} }
func rest() models.WasteType { return models.WasteType{Kind: models.WasteRest} }

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return d
}

func TestPickupEventRepository_ReplaceUpcomingIdempotent(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	_, _, _, eventRepo, _ := newRepos(t)

	events := []models.PickupEvent{
		{Date: day("2099-01-10"), WasteTypes: []models.WasteType{bio(), rest()}},
		{Date: day("2099-01-17"), WasteTypes: []models.WasteType{bio()}},
	}

	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "70339", events, "2099-01-01"))
	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "70339", events, "2099-01-01"))

	count, err := eventRepo.CountByLocation(ctx, "70339")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPickupEventRepository_PreservesHistory(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	_, _, _, eventRepo, _ := newRepos(t)

	// Прошедшее событие, загруженное прошлой синхронизацией.
	_, err := testDB.Pool.Exec(ctx,
		"INSERT INTO pickup_events (location_code, date, waste_type) VALUES ($1, $2, $3)",
		"70339", "2098-12-25", "Bio")
	require.NoError(t, err)

	events := []models.PickupEvent{
		// Устаревшее событие из свежего календаря молча пропускается.
		{Date: day("2098-12-31"), WasteTypes: []models.WasteType{rest()}},
		{Date: day("2099-01-10"), WasteTypes: []models.WasteType{bio()}},
	}

	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "70339", events, "2099-01-01"))

	records, err := eventRepo.FindByLocation(ctx, "70339")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2098-12-25", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, models.WasteBio, records[0].WasteType.Kind)
	assert.Equal(t, "2099-01-10", records[1].Date.Format("2006-01-02"))
}

func TestPickupEventRepository_NoCrossLocationContamination(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	_, _, _, eventRepo, _ := newRepos(t)

	eventsA := []models.PickupEvent{{Date: day("2099-01-10"), WasteTypes: []models.WasteType{bio()}}}
	eventsB := []models.PickupEvent{{Date: day("2099-01-11"), WasteTypes: []models.WasteType{rest()}}}

	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "aaa", eventsA, "2099-01-01"))
	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "bbb", eventsB, "2099-01-01"))

	// Повторная синхронизация одного участка не трогает другой.
	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "aaa", nil, "2099-01-01"))

	countA, err := eventRepo.CountByLocation(ctx, "aaa")
	require.NoError(t, err)
	assert.Equal(t, 0, countA)

	countB, err := eventRepo.CountByLocation(ctx, "bbb")
	require.NoError(t, err)
	assert.Equal(t, 1, countB)
}

func TestPickupEventRepository_LargeBatch(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	_, _, _, eventRepo, _ := newRepos(t)

	events := make([]models.PickupEvent, 0, 1000)
	start := day("2099-01-01")

	for i := 0; i < 1000; i++ {
		events = append(events, models.PickupEvent{
			Date:       start.AddDate(0, 0, i),
			WasteTypes: []models.WasteType{bio()},
		})
	}

	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "70339", events, "2099-01-01"))

	count, err := eventRepo.CountByLocation(ctx, "70339")
	require.NoError(t, err)
	assert.Equal(t, 1000, count)
}

func TestPickupEventRepository_ReplaceUpcomingRollsBack(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	txManager := txs.NewTxManager(testDB.Pool, logger)
	eventRepo := repository.NewPickupEventRepository(testDB, txManager, 1)

	seeded := []models.PickupEvent{
		{Date: day("2099-01-10"), WasteTypes: []models.WasteType{bio()}},
		{Date: day("2099-01-17"), WasteTypes: []models.WasteType{rest()}},
	}
	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "70339", seeded, "2099-01-01"))

	// При размере пачки 1 первая вставка успевает выполниться, вторую
	// Postgres отвергает (NUL в тексте). Транзакция откатывается целиком:
	// ни удаление, ни первая пачка не должны остаться.
	broken := []models.PickupEvent{
		{Date: day("2099-02-01"), WasteTypes: []models.WasteType{bio()}},
		{Date: day("2099-02-08"), WasteTypes: []models.WasteType{{Kind: models.WasteOther, Label: "Bio\x00"}}},
	}

	err := eventRepo.ReplaceUpcoming(ctx, "70339", broken, "2099-01-01")
	require.Error(t, err)

	records, err := eventRepo.FindByLocation(ctx, "70339")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2099-01-10", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2099-01-17", records[1].Date.Format("2006-01-02"))
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, subscriptionRepo, _, _ := newRepos(t)

	require.NoError(t, userRepo.Save(ctx, 1))

	locationID, err := locationRepo.Upsert(ctx, 1, "70339", "Дом")
	require.NoError(t, err)

	require.NoError(t, subscriptionRepo.Add(ctx, locationID, bio()))

	require.NoError(t, userRepo.Delete(ctx, 1))

	exists, err := userRepo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	locations, err := locationRepo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, locations)

	var count int
	err = testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM subscriptions").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, _, _, _, _ := newRepos(t)

	err := userRepo.Delete(ctx, 999)

	assert.ErrorIs(t, err, &customerrors.ErrUserNotFound{})
}

func TestLocationRepository_UpsertKeepsSchedule(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, _, _, _ := newRepos(t)

	require.NoError(t, userRepo.Save(ctx, 1))

	firstID, err := locationRepo.Upsert(ctx, 1, "70339", "Дом")
	require.NoError(t, err)

	require.NoError(t, locationRepo.UpdateNotifyTime(ctx, 1, "Дом", "07:00"))
	require.NoError(t, locationRepo.UpdateNotifyOffset(ctx, 1, "Дом", 0))

	secondID, err := locationRepo.Upsert(ctx, 1, "70339", "Дача")
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	location, err := locationRepo.FindByAliasOrCode(ctx, 1, "70339")
	require.NoError(t, err)
	assert.Equal(t, "Дача", location.Alias)
	assert.Equal(t, "07:00", location.NotifyTime)
	assert.Equal(t, 0, location.NotifyOffset)
}

func TestLocationRepository_Defaults(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, _, _, _ := newRepos(t)

	require.NoError(t, userRepo.Save(ctx, 1))

	_, err := locationRepo.Upsert(ctx, 1, "70339", "")
	require.NoError(t, err)

	location, err := locationRepo.FindByAliasOrCode(ctx, 1, "70339")
	require.NoError(t, err)
	assert.Equal(t, "18:00", location.NotifyTime)
	assert.Equal(t, 1, location.NotifyOffset)
	assert.Equal(t, "70339", location.DisplayLabel())
}

func TestLocationRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, _, _, _ := newRepos(t)

	require.NoError(t, userRepo.Save(ctx, 1))

	err := locationRepo.UpdateNotifyTime(ctx, 1, "нет", "07:00")
	assert.ErrorIs(t, err, &customerrors.ErrLocationNotFound{})

	err = locationRepo.Delete(ctx, 1, "нет")
	assert.ErrorIs(t, err, &customerrors.ErrLocationNotFound{})
}

func TestLocationRepository_DistinctLocationCodes(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, _, _, _ := newRepos(t)

	require.NoError(t, userRepo.Save(ctx, 1))
	require.NoError(t, userRepo.Save(ctx, 2))

	_, err := locationRepo.Upsert(ctx, 1, "70339", "")
	require.NoError(t, err)
	_, err = locationRepo.Upsert(ctx, 2, "70339", "")
	require.NoError(t, err)
	_, err = locationRepo.Upsert(ctx, 2, "80111", "")
	require.NoError(t, err)

	codes, err := locationRepo.DistinctLocationCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"70339", "80111"}, codes)
}

func TestSubscriptionRepository_AddIdempotent(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, subscriptionRepo, _, _ := newRepos(t)

	require.NoError(t, userRepo.Save(ctx, 1))

	locationID, err := locationRepo.Upsert(ctx, 1, "70339", "")
	require.NoError(t, err)

	require.NoError(t, subscriptionRepo.Add(ctx, locationID, bio()))
	require.NoError(t, subscriptionRepo.Add(ctx, locationID, bio()))
	require.NoError(t, subscriptionRepo.Remove(ctx, locationID, rest()))

	types, err := subscriptionRepo.List(ctx, locationID)
	require.NoError(t, err)
	assert.Equal(t, []models.WasteType{bio()}, types)
}

//nolint:funlen // Матрица случаев матчера
func TestNotificationRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	clearTables(t, ctx)

	userRepo, locationRepo, subscriptionRepo, eventRepo, notificationRepo := newRepos(t)

	today := "2099-01-10"
	tomorrow := "2099-01-11"

	// Пользователь 1: офсет 1 (накануне), слот 18:00, подписка Bio.
	require.NoError(t, userRepo.Save(ctx, 1))
	loc1, err := locationRepo.Upsert(ctx, 1, "aaa", "Дом")
	require.NoError(t, err)
	require.NoError(t, subscriptionRepo.Add(ctx, loc1, bio()))

	// Пользователь 2: офсет 0 (в день вывоза), слот 07:00.
	require.NoError(t, userRepo.Save(ctx, 2))
	loc2, err := locationRepo.Upsert(ctx, 2, "aaa", "")
	require.NoError(t, err)
	require.NoError(t, locationRepo.UpdateNotifyTime(ctx, 2, "aaa", "07:00"))
	require.NoError(t, locationRepo.UpdateNotifyOffset(ctx, 2, "aaa", 0))
	require.NoError(t, subscriptionRepo.Add(ctx, loc2, bio()))

	// Пользователь 3: подписан на Rest, события по Rest нет.
	require.NoError(t, userRepo.Save(ctx, 3))
	loc3, err := locationRepo.Upsert(ctx, 3, "aaa", "")
	require.NoError(t, err)
	require.NoError(t, subscriptionRepo.Add(ctx, loc3, rest()))

	events := []models.PickupEvent{
		{Date: day(today), WasteTypes: []models.WasteType{bio()}},
		{Date: day(tomorrow), WasteTypes: []models.WasteType{bio()}},
	}
	require.NoError(t, eventRepo.ReplaceUpcoming(ctx, "aaa", events, today))

	// Слот 18:00: только пользователь 1 (офсет 1, событие завтра).
	tasks, err := notificationRepo.FindDue(ctx, "18:00", today, tomorrow)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(1), tasks[0].ChatID)
	assert.Equal(t, models.WasteBio, tasks[0].WasteType.Kind)
	assert.Equal(t, "Дом", tasks[0].LocationLabel)
	assert.Equal(t, 1, tasks[0].NotifyOffset)

	// Слот 07:00: только пользователь 2 (офсет 0, событие сегодня).
	tasks, err = notificationRepo.FindDue(ctx, "07:00", today, tomorrow)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(2), tasks[0].ChatID)
	assert.Equal(t, "aaa", tasks[0].LocationLabel)

	// Чужой слот пуст.
	tasks, err = notificationRepo.FindDue(ctx, "12:00", today, tomorrow)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// В другой день совпадений нет.
	tasks, err = notificationRepo.FindDue(ctx, "18:00", "2099-02-01", "2099-02-02")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
