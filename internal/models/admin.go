package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin accounts live in their own table, separate from users.
type Admin struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}
