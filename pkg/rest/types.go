package rest

import "time"

type ExtractTextRequest struct {
	Text string `json:"text" validate:"required"`
}

type ExtractURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type Listing struct {
	ID           int64     `json:"id"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	PropertyType string    `json:"propertyType"`
	Rooms        float64   `json:"rooms"`
	Floor        int       `json:"floor"`
	Area         int64     `json:"area"`
	Price        int64     `json:"price"`
	PricePerSqm  int64     `json:"pricePerSqm"`
	FairValue    int64     `json:"fairValue"`
	DeviationPct float64   `json:"deviationPct"`
	Zone         string    `json:"zone,omitempty"`
	UrbanRenewal bool      `json:"urbanRenewal"`
	Confidence   int       `json:"confidence"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ExtractResponse struct {
	Count        int       `json:"count"`
	AveragePrice int64     `json:"averagePrice"`
	Listings     []Listing `json:"listings"`
}

type ListingsResponse struct {
	Count    int       `json:"count"`
	Listings []Listing `json:"listings"`
}

type Benchmark struct {
	City           string `json:"city"`
	AvgPricePerSqm int64  `json:"avgPricePerSqm"`
}

type Preset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Error is the API error envelope.
type Error struct {
	// Code is a stable machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable description for the UI.
	Message string `json:"message"`
}
