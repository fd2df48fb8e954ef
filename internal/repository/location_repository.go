package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/central-university-dev/go-waste-bot/internal/database"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

type LocationRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
}

func NewLocationRepository(db *database.PostgresDB, txManager *txs.TxManager) *LocationRepository {
	return &LocationRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

// Upsert сохраняет привязку пользователя к участку. Привязка уникальна по
// (user_id, location_code); при повторном добавлении обновляется только
// алиас, расписание уведомлений не трогается.
func (r *LocationRepository) Upsert(ctx context.Context, userID int64, locationCode, alias string) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	insertQuery := r.sq.Insert("user_locations").
		Columns("user_id", "location_code", "alias").
		Values(userID, locationCode, alias).
		Suffix("ON CONFLICT (user_id, location_code) DO UPDATE SET alias = EXCLUDED.alias RETURNING id")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "сохранение участка", Cause: err}
	}

	var id int64

	err = querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "сохранение участка", Cause: err}
	}

	return id, nil
}

func (r *LocationRepository) FindByUser(ctx context.Context, userID int64) ([]*models.UserLocation, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "user_id", "location_code", "alias", "notify_time", "notify_offset").
		From("user_locations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск участков пользователя", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "поиск участков пользователя", Cause: err}
	}
	defer rows.Close()

	var locations []*models.UserLocation

	for rows.Next() {
		var location models.UserLocation

		err = rows.Scan(
			&location.ID,
			&location.UserID,
			&location.LocationCode,
			&location.Alias,
			&location.NotifyTime,
			&location.NotifyOffset,
		)
		if err != nil {
			return nil, &customerrors.ErrSQLScan{Operation: "поиск участков пользователя", Cause: err}
		}

		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "поиск участков пользователя", Cause: err}
	}

	return locations, nil
}

// FindByAliasOrCode находит привязку пользователя по алиасу или коду участка.
func (r *LocationRepository) FindByAliasOrCode(ctx context.Context, userID int64, key string) (*models.UserLocation, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "user_id", "location_code", "alias", "notify_time", "notify_offset").
		From("user_locations").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Or{sq.Eq{"alias": key}, sq.Eq{"location_code": key}},
		}).
		Limit(1)

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск участка", Cause: err}
	}

	var location models.UserLocation

	err = querier.QueryRow(ctx, query, args...).Scan(
		&location.ID,
		&location.UserID,
		&location.LocationCode,
		&location.Alias,
		&location.NotifyTime,
		&location.NotifyOffset,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrLocationNotFound{Key: key}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "поиск участка", Cause: err}
	}

	return &location, nil
}

func (r *LocationRepository) Delete(ctx context.Context, userID int64, key string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	deleteQuery := r.sq.Delete("user_locations").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Or{sq.Eq{"alias": key}, sq.Eq{"location_code": key}},
		})

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "удаление участка", Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "удаление участка", Cause: err}
	}

	if result.RowsAffected() == 0 {
		return &customerrors.ErrLocationNotFound{Key: key}
	}

	return nil
}

func (r *LocationRepository) UpdateNotifyTime(ctx context.Context, userID int64, key, notifyTime string) error {
	return r.updateField(ctx, userID, key, "notify_time", notifyTime, "обновление времени уведомления")
}

func (r *LocationRepository) UpdateNotifyOffset(ctx context.Context, userID int64, key string, notifyOffset int) error {
	return r.updateField(ctx, userID, key, "notify_offset", notifyOffset, "обновление режима уведомления")
}

func (r *LocationRepository) updateField(ctx context.Context, userID int64, key, column string, value any, operation string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	updateQuery := r.sq.Update("user_locations").
		Set(column, value).
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Or{sq.Eq{"alias": key}, sq.Eq{"location_code": key}},
		})

	query, args, err := updateQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	if result.RowsAffected() == 0 {
		return &customerrors.ErrLocationNotFound{Key: key}
	}

	return nil
}

// DistinctLocationCodes возвращает коды всех участков, известных хотя бы
// одному пользователю. По ним запускается синхронизация календарей.
func (r *LocationRepository) DistinctLocationCodes(ctx context.Context) ([]string, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("DISTINCT location_code").
		From("user_locations").
		OrderBy("location_code")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "выборка кодов участков", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "выборка кодов участков", Cause: err}
	}
	defer rows.Close()

	var codes []string

	for rows.Next() {
		var code string

		if err := rows.Scan(&code); err != nil {
			return nil, &customerrors.ErrSQLScan{Operation: "выборка кодов участков", Cause: err}
		}

		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "выборка кодов участков", Cause: err}
	}

	return codes, nil
}
