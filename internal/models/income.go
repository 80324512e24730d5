package models

import (
	"time"

	"finwise/internal/finance"

	"github.com/google/uuid"
)

type IncomeRecord struct {
	ID          uuid.UUID         `db:"id"`
	UserID      uuid.UUID         `db:"user_id"`
	Source      string            `db:"source"`
	Amount      float64           `db:"amount"`
	Frequency   finance.Frequency `db:"frequency"`
	Date        time.Time         `db:"date"`
	Description string            `db:"description"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
