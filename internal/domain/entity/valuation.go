package entity

// Valuation is the market comparison for one listing.
//
// PricePerSqm is integer division of price by area, 0 when area is unknown.
// FairValue and DeviationPct stay 0 when the city has no benchmark row or the
// property is a land lot (built-area comparison does not apply).
type Valuation struct {
	PricePerSqm  int64   `json:"price_per_sqm"`
	FairValue    int64   `json:"fair_value"`
	DeviationPct float64 `json:"deviation_pct"`
	Zone         string  `json:"zone,omitempty"`
}

// AppraisedListing pairs a listing with its market comparison. Positive
// deviation means the asking price is below the estimated fair value.
type AppraisedListing struct {
	Listing   Listing   `json:"listing"`
	Valuation Valuation `json:"valuation"`
}
