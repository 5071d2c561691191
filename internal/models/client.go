package models

import (
	"database/sql"
	"time"
)

// Client is the row shape of the clients table.
type Client struct {
	ClientID   string         `db:"client_id"`
	Name       string         `db:"name"`
	Phone      sql.NullString `db:"phone"`
	Notes      sql.NullString `db:"notes"`
	IsEmployee bool           `db:"is_employee"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
