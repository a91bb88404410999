package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // cgo-free sqlite driver
)

// NewSQLiteMemory opens an in-memory sqlite database for a single test and
// closes it on cleanup.
func NewSQLiteMemory(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}

	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
