package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/central-university-dev/go-waste-bot/internal/database"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

const defaultBatchSize = 250

type PickupEventRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
	batchSize int
}

func NewPickupEventRepository(db *database.PostgresDB, txManager *txs.TxManager, batchSize int) *PickupEventRepository {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &PickupEventRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
		batchSize: batchSize,
	}
}

type eventRow struct {
	date      string
	wasteType string
}

// ReplaceUpcoming заменяет будущие события участка свежим снимком календаря
// в одной транзакции: удаляются строки с датой >= today, затем батчами
// вставляются новые. События с датой раньше today молча пропускаются,
// история не затрагивается. Повторный вызов с теми же данными даёт тот же
// результат.
func (r *PickupEventRepository) ReplaceUpcoming(ctx context.Context, locationCode string, events []models.PickupEvent, today string) error {
	rows := flattenEvents(events, today)

	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		querier := txs.GetQuerier(ctx, r.db.Pool)

		deleteQuery := r.sq.Delete("pickup_events").
			Where(sq.And{
				sq.Eq{"location_code": locationCode},
				sq.GtOrEq{"date": today},
			})

		query, args, err := deleteQuery.ToSql()
		if err != nil {
			return &customerrors.ErrBuildSQLQuery{Operation: "удаление будущих событий", Cause: err}
		}

		_, err = querier.Exec(ctx, query, args...)
		if err != nil {
			return &customerrors.ErrSQLExecution{Operation: "удаление будущих событий", Cause: err}
		}

		for start := 0; start < len(rows); start += r.batchSize {
			end := start + r.batchSize
			if end > len(rows) {
				end = len(rows)
			}

			if err := r.insertBatch(ctx, querier, locationCode, rows[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PickupEventRepository) insertBatch(ctx context.Context, querier txs.Querier, locationCode string, rows []eventRow) error {
	insertQuery := r.sq.Insert("pickup_events").
		Columns("location_code", "date", "waste_type")

	for _, row := range rows {
		insertQuery = insertQuery.Values(locationCode, row.date, row.wasteType)
	}

	insertQuery = insertQuery.Suffix("ON CONFLICT (location_code, date, waste_type) DO NOTHING")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "вставка событий вывоза", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "вставка событий вывоза", Cause: err}
	}

	return nil
}

func flattenEvents(events []models.PickupEvent, today string) []eventRow {
	var rows []eventRow

	seen := make(map[eventRow]struct{})

	for _, event := range events {
		date := event.Date.Format("2006-01-02")
		if date < today {
			continue
		}

		for _, wasteType := range event.WasteTypes {
			row := eventRow{date: date, wasteType: wasteType.String()}
			if _, ok := seen[row]; ok {
				continue
			}

			seen[row] = struct{}{}

			rows = append(rows, row)
		}
	}

	return rows
}

func (r *PickupEventRepository) FindByLocation(ctx context.Context, locationCode string) ([]*models.PickupRecord, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "location_code", "date", "waste_type").
		From("pickup_events").
		Where(sq.Eq{"location_code": locationCode}).
		OrderBy("date", "waste_type")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "выборка событий участка", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "выборка событий участка", Cause: err}
	}
	defer rows.Close()

	var records []*models.PickupRecord

	for rows.Next() {
		var (
			record models.PickupRecord
			label  string
		)

		err = rows.Scan(&record.ID, &record.LocationCode, &record.Date, &label)
		if err != nil {
			return nil, &customerrors.ErrSQLScan{Operation: "выборка событий участка", Cause: err}
		}

		record.WasteType = models.ParseWasteType(label)

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "выборка событий участка", Cause: err}
	}

	return records, nil
}

func (r *PickupEventRepository) CountByLocation(ctx context.Context, locationCode string) (int, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	countQuery := r.sq.Select("COUNT(*)").
		From("pickup_events").
		Where(sq.Eq{"location_code": locationCode})

	query, args, err := countQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "подсчёт событий участка", Cause: err}
	}

	var count int

	err = querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "подсчёт событий участка", Cause: err}
	}

	return count, nil
}
