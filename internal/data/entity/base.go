package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is the shared column set of mutable tables. Nothing in this
// schema is physically deleted; history is kept by status transitions.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BaseSimple is used by append-only rows (join tables, notifications).
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
