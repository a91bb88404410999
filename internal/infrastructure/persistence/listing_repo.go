package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"nadlan_radar/internal/domain"
	"nadlan_radar/internal/domain/entity"
	service "nadlan_radar/internal/domain/service/listing"
	"nadlan_radar/pkg/errcodes"
)

const listingColumns = `id, city, address, property_type, rooms, floor, area, price,
	price_per_sqm, fair_value, deviation_pct, zone, urban_renewal, confidence, created_at`

type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// withTx runs fn inside a transaction.
func (r *ListingRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// CreateBatch appends one extraction run's listings atomically. Rows are
// write-once; there is no update path.
func (r *ListingRepository) CreateBatch(ctx context.Context, listings []entity.AppraisedListing) error {
	if len(listings) == 0 {
		return nil
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for i := range listings {
			if err := r.createTx(ctx, tx, &listings[i]); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed at index %d", i))
			}
		}
		return nil
	})
}

func (r *ListingRepository) createTx(ctx context.Context, tx *sqlx.Tx, al *entity.AppraisedListing) error {
	createdAt := al.Listing.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO listings (city, address, property_type, rooms, floor, area, price,
			price_per_sqm, fair_value, deviation_pct, zone, urban_renewal, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := tx.ExecContext(ctx, query,
		al.Listing.City,
		al.Listing.Address,
		al.Listing.PropertyType.String(),
		al.Listing.Rooms,
		al.Listing.Floor,
		al.Listing.Area,
		al.Listing.Price,
		al.Valuation.PricePerSqm,
		al.Valuation.FairValue,
		al.Valuation.DeviationPct,
		al.Valuation.Zone,
		al.Listing.UrbanRenewal,
		al.Listing.Confidence,
		createdAt,
	)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert listing")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to read insert id")
	}

	al.Listing.ID = id
	al.Listing.CreatedAt = createdAt

	return nil
}

// List returns stored listings, newest first.
func (r *ListingRepository) List(ctx context.Context, filter service.ListFilter) ([]entity.AppraisedListing, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.City != "" {
		conditions = append(conditions, "city = ?")
		args = append(args, filter.City)
	}

	if filter.MinDeviation > 0 {
		conditions = append(conditions, "deviation_pct >= ?")
		args = append(args, filter.MinDeviation)
	}

	query := "SELECT " + listingColumns + " FROM listings"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var schemas []listingSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list listings")
	}

	listings := make([]entity.AppraisedListing, 0, len(schemas))
	for i := range schemas {
		listings = append(listings, schemas[i].toDomain())
	}

	return listings, nil
}

// Reset truncates the listings table only; benchmarks are reference data.
func (r *ListingRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM listings`); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to reset listings")
	}

	return nil
}

func (r *ListingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM listings`); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count listings")
	}

	return count, nil
}
