package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/central-university-dev/go-waste-bot/internal/database"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

type SubscriptionRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
}

func NewSubscriptionRepository(db *database.PostgresDB, txManager *txs.TxManager) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

// Add подписывает участок на категорию. Повторная подписка не ошибка.
func (r *SubscriptionRepository) Add(ctx context.Context, userLocationID int64, wasteType models.WasteType) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	insertQuery := r.sq.Insert("subscriptions").
		Columns("user_location_id", "waste_type").
		Values(userLocationID, wasteType.String()).
		Suffix("ON CONFLICT DO NOTHING")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "добавление подписки", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "добавление подписки", Cause: err}
	}

	return nil
}

// Remove снимает подписку. Отсутствующая подписка не ошибка.
func (r *SubscriptionRepository) Remove(ctx context.Context, userLocationID int64, wasteType models.WasteType) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	deleteQuery := r.sq.Delete("subscriptions").
		Where(sq.Eq{"user_location_id": userLocationID, "waste_type": wasteType.String()})

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "удаление подписки", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "удаление подписки", Cause: err}
	}

	return nil
}

func (r *SubscriptionRepository) List(ctx context.Context, userLocationID int64) ([]models.WasteType, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("waste_type").
		From("subscriptions").
		Where(sq.Eq{"user_location_id": userLocationID}).
		OrderBy("waste_type")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "список подписок", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "список подписок", Cause: err}
	}
	defer rows.Close()

	var types []models.WasteType

	for rows.Next() {
		var label string

		if err := rows.Scan(&label); err != nil {
			return nil, &customerrors.ErrSQLScan{Operation: "список подписок", Cause: err}
		}

		types = append(types, models.ParseWasteType(label))
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "список подписок", Cause: err}
	}

	return types, nil
}
