package connectors

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // cgo-free sqlite driver

	"nadlan_radar/pkg/contextx"
	"nadlan_radar/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// SQLite opens a single local database file. The store is session-owned and
// throwaway, so there is no pooling discipline beyond a single writer
// connection.
type SQLite struct {
	value *sqlx.DB
	Path  string
	init  sync.Once
}

func (s *SQLite) Client(ctx context.Context) *sqlx.DB {
	s.init.Do(func() {
		s.value = lo.Must(sqlx.ConnectContext(ctx, "sqlite", s.Path))

		// sqlite allows one writer at a time; a second connection would
		// only produce SQLITE_BUSY.
		s.value.SetMaxOpenConns(1)

		logger(ctx).Info(
			"sqlite opened",
			slog.String("path", s.Path),
		)
	})

	return s.value
}

func (s *SQLite) Close(ctx context.Context) {
	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqliteClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"sqlite closed",
		slog.String("path", s.Path),
	)
}
