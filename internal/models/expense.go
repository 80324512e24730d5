package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseRecord struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Category    string    `db:"category"`
	Amount      float64   `db:"amount"`
	Date        time.Time `db:"date"`
	Description string    `db:"description"`
	Merchant    string    `db:"merchant"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
