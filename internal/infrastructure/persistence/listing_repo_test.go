package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"nadlan_radar/internal/domain/entity"
	service "nadlan_radar/internal/domain/service/listing"
	"nadlan_radar/internal/domain/value"
	"nadlan_radar/internal/infrastructure/persistence"
	"nadlan_radar/pkg/dbtest"
)

func newListing(city string, price, area int64, deviation float64) entity.AppraisedListing {
	return entity.AppraisedListing{
		Listing: entity.Listing{
			City:         city,
			Address:      value.AddressGeneral,
			PropertyType: value.Apartment,
			Rooms:        3,
			Floor:        2,
			Area:         area,
			Price:        price,
			Confidence:   75,
		},
		Valuation: entity.Valuation{
			PricePerSqm:  price / area,
			FairValue:    price + price/2,
			DeviationPct: deviation,
		},
	}
}

func TestListingRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := dbtest.NewSQLiteMemory(t)
	rq.NoError(persistence.Migrate(ctx, db))

	repo := persistence.NewListingRepository(db)

	listings := []entity.AppraisedListing{
		newListing("תל אביב", 2_500_000, 85, 56.7),
		newListing("חיפה", 1_000_000, 70, 12.0),
		newListing("תל אביב", 3_100_000, 90, -5.0),
	}

	rq.NoError(repo.CreateBatch(ctx, listings))

	for i := range listings {
		rq.NotZero(listings[i].Listing.ID, "insert id must be backfilled")
		rq.False(listings[i].Listing.CreatedAt.IsZero())
	}

	count, err := repo.Count(ctx)
	rq.NoError(err)
	rq.Equal(3, count)

	t.Run("List newest first", func(t *testing.T) {
		rq := require.New(t)

		stored, err := repo.List(ctx, service.ListFilter{})
		rq.NoError(err)
		rq.Len(stored, 3)
		rq.Equal(int64(3_100_000), stored[0].Listing.Price)
		rq.Equal(int64(2_500_000), stored[2].Listing.Price)
	})

	t.Run("Filter by city", func(t *testing.T) {
		rq := require.New(t)

		stored, err := repo.List(ctx, service.ListFilter{City: "חיפה"})
		rq.NoError(err)
		rq.Len(stored, 1)
		rq.Equal("חיפה", stored[0].Listing.City)
	})

	t.Run("Filter by minimum deviation", func(t *testing.T) {
		rq := require.New(t)

		stored, err := repo.List(ctx, service.ListFilter{MinDeviation: 50})
		rq.NoError(err)
		rq.Len(stored, 1)
		rq.InDelta(56.7, stored[0].Valuation.DeviationPct, 1e-9)
	})

	t.Run("Limit", func(t *testing.T) {
		rq := require.New(t)

		stored, err := repo.List(ctx, service.ListFilter{Limit: 2})
		rq.NoError(err)
		rq.Len(stored, 2)
	})

	t.Run("Reset truncates", func(t *testing.T) {
		rq := require.New(t)

		rq.NoError(repo.Reset(ctx))

		count, err := repo.Count(ctx)
		rq.NoError(err)
		rq.Zero(count)
	})
}

func TestListingRepositoryRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := dbtest.NewSQLiteMemory(t)
	rq.NoError(persistence.Migrate(ctx, db))

	repo := persistence.NewListingRepository(db)

	in := entity.AppraisedListing{
		Listing: entity.Listing{
			City:         "תל אביב",
			Address:      "רחוב הרצל",
			PropertyType: value.Penthouse,
			Rooms:        4.5,
			Floor:        12,
			Area:         140,
			Price:        9_500_000,
			UrbanRenewal: true,
			Confidence:   95,
		},
		Valuation: entity.Valuation{
			PricePerSqm:  67_857,
			FairValue:    12_376_000,
			DeviationPct: 23.2,
			Zone:         "נווה צדק",
		},
	}

	batch := []entity.AppraisedListing{in}
	rq.NoError(repo.CreateBatch(ctx, batch))

	stored, err := repo.List(ctx, service.ListFilter{})
	rq.NoError(err)
	rq.Len(stored, 1)

	out := stored[0]
	rq.Equal(batch[0].Listing.ID, out.Listing.ID)
	rq.Equal(in.Listing.City, out.Listing.City)
	rq.Equal(in.Listing.Address, out.Listing.Address)
	rq.Equal(value.Penthouse, out.Listing.PropertyType)
	rq.InEpsilon(4.5, out.Listing.Rooms, 1e-9)
	rq.Equal(12, out.Listing.Floor)
	rq.True(out.Listing.UrbanRenewal)
	rq.Equal(in.Valuation, out.Valuation)
}

func TestListingRepositoryEmptyBatch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := dbtest.NewSQLiteMemory(t)
	rq.NoError(persistence.Migrate(ctx, db))

	rq.NoError(persistence.NewListingRepository(db).CreateBatch(ctx, nil))
}
