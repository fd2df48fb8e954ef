package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/central-university-dev/go-waste-bot/internal/database"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

type NotificationRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
}

func NewNotificationRepository(db *database.PostgresDB, txManager *txs.TxManager) *NotificationRepository {
	return &NotificationRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

// FindDue возвращает уведомления, подлежащие отправке в слоте slot
// (строка "HH:00"). Подписка попадает в выборку, если её участок настроен
// на этот слот и для пары (участок, категория) есть событие: при offset=0 —
// на дату today, при offset=1 — на дату tomorrow. Даты в формате
// "2006-01-02". Порядок результата не определён.
func (r *NotificationRepository) FindDue(ctx context.Context, slot, today, tomorrow string) ([]*models.NotificationTask, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select(
		"u.id",
		"s.waste_type",
		"ul.alias",
		"ul.location_code",
		"ul.notify_offset",
	).
		From("users u").
		Join("user_locations ul ON ul.user_id = u.id").
		Join("subscriptions s ON s.user_location_id = ul.id").
		Join("pickup_events e ON e.location_code = ul.location_code AND e.waste_type = s.waste_type").
		Where(sq.And{
			sq.Eq{"ul.notify_time": slot},
			sq.Or{
				sq.And{sq.Eq{"ul.notify_offset": 0}, sq.Eq{"e.date": today}},
				sq.And{sq.Eq{"ul.notify_offset": 1}, sq.Eq{"e.date": tomorrow}},
			},
		})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "выборка уведомлений", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "выборка уведомлений", Cause: err}
	}
	defer rows.Close()

	var tasks []*models.NotificationTask

	for rows.Next() {
		var (
			task  models.NotificationTask
			label string
			alias string
		)

		err = rows.Scan(&task.ChatID, &label, &alias, &task.LocationCode, &task.NotifyOffset)
		if err != nil {
			return nil, &customerrors.ErrSQLScan{Operation: "выборка уведомлений", Cause: err}
		}

		task.WasteType = models.ParseWasteType(label)

		task.LocationLabel = alias
		if task.LocationLabel == "" {
			task.LocationLabel = task.LocationCode
		}

		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "выборка уведомлений", Cause: err}
	}

	return tasks, nil
}
