package repository

import (
	"context"

	"finwise/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var incomeColumns = []string{"id", "user_id", "source", "amount", "frequency", "date", "description", "created_at", "updated_at"}

type IncomeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewIncomeRepository(db *pgxpool.Pool, logger *zap.Logger) *IncomeRepository {
	return &IncomeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *IncomeRepository) Create(ctx context.Context, rec *models.IncomeRecord) error {
	query := squirrel.Insert("income_records").
		Columns(incomeColumns...).
		Values(rec.ID, rec.UserID, rec.Source, rec.Amount, rec.Frequency, rec.Date, rec.Description, rec.CreatedAt, rec.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *IncomeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.IncomeRecord, error) {
	query := squirrel.Select(incomeColumns...).
		From("income_records").
		Where(squirrel.Eq{"user_id": userID}).
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

	var records []*models.IncomeRecord
	for rows.Next() {
		var rec models.IncomeRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Source, &rec.Amount, &rec.Frequency, &rec.Date, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// Update rewrites a record's mutable fields. The user filter keeps
// callers from touching other users' records.
func (r *IncomeRepository) Update(ctx context.Context, rec *models.IncomeRecord) (int64, error) {
	query := squirrel.Update("income_records").
		Set("source", rec.Source).
		Set("amount", rec.Amount).
		Set("frequency", rec.Frequency).
		Set("date", rec.Date).
		Set("description", rec.Description).
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

func (r *IncomeRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("income_records").
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
