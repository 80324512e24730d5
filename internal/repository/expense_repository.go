package repository

import (
	"context"
	"time"

	"finwise/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var expenseColumns = []string{"id", "user_id", "category", "amount", "date", "description", "merchant", "created_at", "updated_at"}

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, rec *models.ExpenseRecord) error {
	query := squirrel.Insert("expense_records").
		Columns(expenseColumns...).
		Values(rec.ID, rec.UserID, rec.Category, rec.Amount, rec.Date, rec.Description, rec.Merchant, rec.CreatedAt, rec.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.ExpenseRecord, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListByUserIDSince returns the user's expenses dated on or after the
// given instant (chart window queries).
func (r *ExpenseRepository) ListByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.ExpenseRecord, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.GtOrEq{"date": since},
	})
}

func (r *ExpenseRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.ExpenseRecord, error) {
	query := squirrel.Select(expenseColumns...).
		From("expense_records").
		Where(where).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ExpenseRecord
	for rows.Next() {
		var rec models.ExpenseRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Category, &rec.Amount, &rec.Date, &rec.Description, &rec.Merchant, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, rec *models.ExpenseRecord) (int64, error) {
	query := squirrel.Update("expense_records").
		Set("category", rec.Category).
		Set("amount", rec.Amount).
		Set("date", rec.Date).
		Set("description", rec.Description).
		Set("merchant", rec.Merchant).
		Set("updated_at", rec.UpdatedAt).
		Where(squirrel.Eq{"id": rec.ID, "user_id": rec.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("expense_records").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
