package entity

import (
	"time"

	"nadlan_radar/internal/domain/value"
)

// Listing is one extracted ad. Price is the only mandatory field; everything
// else degrades to a zero value or a sentinel when the source text gives
// nothing better.
type Listing struct {
	ID           int64              `json:"id"`
	City         string             `json:"city"`
	Address      string             `json:"address"`
	PropertyType value.PropertyType `json:"property_type"`
	Rooms        float64            `json:"rooms"`
	Floor        int                `json:"floor"`
	Area         int64              `json:"area"`
	Price        int64              `json:"price"`
	UrbanRenewal bool               `json:"urban_renewal"`
	Confidence   int                `json:"confidence"`
	CreatedAt    time.Time          `json:"created_at"`
}

// HasArea reports whether a plausible built area was recovered. Valuation
// branches on this instead of dividing by a sentinel.
func (l Listing) HasArea() bool {
	return l.Area > 0
}
