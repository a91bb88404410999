package persistence

import (
	"time"

	"nadlan_radar/internal/domain/entity"
	"nadlan_radar/internal/domain/value"
)

// listingSchema maps one row of the listings table.
type listingSchema struct {
	ID           int64     `db:"id"`
	City         string    `db:"city"`
	Address      string    `db:"address"`
	PropertyType string    `db:"property_type"`
	Rooms        float64   `db:"rooms"`
	Floor        int       `db:"floor"`
	Area         int64     `db:"area"`
	Price        int64     `db:"price"`
	PricePerSqm  int64     `db:"price_per_sqm"`
	FairValue    int64     `db:"fair_value"`
	DeviationPct float64   `db:"deviation_pct"`
	Zone         string    `db:"zone"`
	UrbanRenewal bool      `db:"urban_renewal"`
	Confidence   int       `db:"confidence"`
	CreatedAt    time.Time `db:"created_at"`
}

func (s *listingSchema) toDomain() entity.AppraisedListing {
	return entity.AppraisedListing{
		Listing: entity.Listing{
			ID:           s.ID,
			City:         s.City,
			Address:      s.Address,
			PropertyType: value.PropertyType(s.PropertyType),
			Rooms:        s.Rooms,
			Floor:        s.Floor,
			Area:         s.Area,
			Price:        s.Price,
			UrbanRenewal: s.UrbanRenewal,
			Confidence:   s.Confidence,
			CreatedAt:    s.CreatedAt,
		},
		Valuation: entity.Valuation{
			PricePerSqm:  s.PricePerSqm,
			FairValue:    s.FairValue,
			DeviationPct: s.DeviationPct,
			Zone:         s.Zone,
		},
	}
}

// benchmarkSchema maps one row of the benchmarks table.
type benchmarkSchema struct {
	City           string `db:"city"`
	AvgPricePerSqm int64  `db:"avg_price_per_sqm"`
}

func (s *benchmarkSchema) toDomain() entity.CityBenchmark {
	return entity.CityBenchmark{
		City:           s.City,
		AvgPricePerSqm: s.AvgPricePerSqm,
	}
}
