package entity

// CityBenchmark is the curated average price per square meter for one city.
// Reference data only, never derived from listings.
type CityBenchmark struct {
	City           string `json:"city"`
	AvgPricePerSqm int64  `json:"avg_price_per_sqm"`
}
