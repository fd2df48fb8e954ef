package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/central-university-dev/go-waste-bot/internal/database"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
	"github.com/central-university-dev/go-waste-bot/pkg/txs"
)

type UserRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
}

func NewUserRepository(db *database.PostgresDB, txManager *txs.TxManager) *UserRepository {
	return &UserRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

// Save регистрирует пользователя. Повторная регистрация не является ошибкой.
func (r *UserRepository) Save(ctx context.Context, chatID int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	insertQuery := r.sq.Insert("users").
		Columns("id", "created_at").
		Values(chatID, time.Now()).
		Suffix("ON CONFLICT (id) DO NOTHING")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "регистрация пользователя", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "регистрация пользователя", Cause: err}
	}

	return nil
}

func (r *UserRepository) Exists(ctx context.Context, chatID int64) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	existsQuery := r.sq.Select("1").From("users").Where(sq.Eq{"id": chatID}).Limit(1)

	query, args, err := existsQuery.ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "проверка существования пользователя", Cause: err}
	}

	var exists bool

	err = querier.QueryRow(ctx, "SELECT EXISTS("+query+")", args...).Scan(&exists)
	if err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "проверка существования пользователя", Cause: err}
	}

	return exists, nil
}

// Delete удаляет пользователя; привязки и подписки удаляются каскадно.
func (r *UserRepository) Delete(ctx context.Context, chatID int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	deleteQuery := r.sq.Delete("users").Where(sq.Eq{"id": chatID})

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "удаление пользователя", Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "удаление пользователя", Cause: err}
	}

	if result.RowsAffected() == 0 {
		return &customerrors.ErrUserNotFound{ChatID: chatID}
	}

	return nil
}
