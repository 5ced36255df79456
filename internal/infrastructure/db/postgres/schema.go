package postgres

import (
	"context"
	"database/sql"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// The unique index on lower(email) is the authoritative guard against
// duplicate registrations; the service-level existence check is only a
// fast path.
var schemaStatements = []string{
	`
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    first_name    TEXT NOT NULL DEFAULT '',
    last_name     TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL DEFAULT 'User',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_uq ON users (lower(email));`,
	`
CREATE TABLE IF NOT EXISTS books (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    author      TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    language    TEXT NOT NULL DEFAULT '',
    total_pages INTEGER NOT NULL DEFAULT 0
);`,
}

// EnsureSchema creates the tables and indexes if they do not exist. It is
// restart safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return domain.ErrDBUnavailable(err)
		}
	}
	return nil
}
