package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The store is throwaway and session-owned: each start recreates whatever is
// missing, a reset wipes listings only.
const schema = `
CREATE TABLE IF NOT EXISTS listings (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	city          TEXT    NOT NULL,
	address       TEXT    NOT NULL,
	property_type TEXT    NOT NULL,
	rooms         REAL    NOT NULL DEFAULT 0,
	floor         INTEGER NOT NULL DEFAULT 0,
	area          INTEGER NOT NULL DEFAULT 0,
	price         INTEGER NOT NULL,
	price_per_sqm INTEGER NOT NULL DEFAULT 0,
	fair_value    INTEGER NOT NULL DEFAULT 0,
	deviation_pct REAL    NOT NULL DEFAULT 0,
	zone          TEXT    NOT NULL DEFAULT '',
	urban_renewal INTEGER NOT NULL DEFAULT 0,
	confidence    INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS benchmarks (
	city              TEXT PRIMARY KEY,
	avg_price_per_sqm INTEGER NOT NULL
);
`

// Migrate creates the listings and benchmarks tables.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
