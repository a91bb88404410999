package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"nadlan_radar/internal/domain"
	"nadlan_radar/internal/domain/entity"
	"nadlan_radar/pkg/errcodes"
)

type BenchmarkRepository struct {
	db *sqlx.DB
}

func NewBenchmarkRepository(db *sqlx.DB) *BenchmarkRepository {
	return &BenchmarkRepository{db: db}
}

// Seed writes the curated benchmark table. Called once at startup; the table
// is read-only afterwards.
func (r *BenchmarkRepository) Seed(ctx context.Context, benchmarks map[string]int64) error {
	for city, avg := range benchmarks {
		query := `INSERT OR REPLACE INTO benchmarks (city, avg_price_per_sqm) VALUES (?, ?)`

		if _, err := r.db.ExecContext(ctx, query, city, avg); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to seed benchmark")
		}
	}

	return nil
}

func (r *BenchmarkRepository) GetByCity(ctx context.Context, city string) (entity.CityBenchmark, error) {
	query := `SELECT city, avg_price_per_sqm FROM benchmarks WHERE city = ?`

	var schema benchmarkSchema
	if err := r.db.GetContext(ctx, &schema, query, city); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CityBenchmark{}, domain.NewError(errcodes.BenchmarkMissing, "no benchmark for city")
		}
		return entity.CityBenchmark{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get benchmark")
	}

	return schema.toDomain(), nil
}

func (r *BenchmarkRepository) List(ctx context.Context) ([]entity.CityBenchmark, error) {
	query := `SELECT city, avg_price_per_sqm FROM benchmarks ORDER BY city`

	var schemas []benchmarkSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list benchmarks")
	}

	benchmarks := make([]entity.CityBenchmark, 0, len(schemas))
	for i := range schemas {
		benchmarks = append(benchmarks, schemas[i].toDomain())
	}

	return benchmarks, nil
}
