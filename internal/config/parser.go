package config

import "nadlan_radar/internal/domain/service/extract"

// Parser carries the extraction plausibility bounds. No single threshold is
// obviously correct, so every bound is tunable.
type Parser struct {
	MinPrice       int64   `env:"PARSER_MIN_PRICE" envDefault:"500000"`
	MaxPrice       int64   `env:"PARSER_MAX_PRICE" envDefault:"50000000"`
	MinArea        int64   `env:"PARSER_MIN_AREA" envDefault:"25"`
	MaxArea        int64   `env:"PARSER_MAX_AREA" envDefault:"400"`
	MinRooms       float64 `env:"PARSER_MIN_ROOMS" envDefault:"1"`
	MaxRooms       float64 `env:"PARSER_MAX_ROOMS" envDefault:"12"`
	MaxFloor       int     `env:"PARSER_MAX_FLOOR" envDefault:"50"`
	MinPricePerSqm int64   `env:"PARSER_MIN_PRICE_PER_SQM" envDefault:"7000"`
	AddressWindow  int     `env:"PARSER_ADDRESS_WINDOW" envDefault:"60"`
}

func (p Parser) Bounds() extract.Bounds {
	return extract.Bounds{
		MinPrice:       p.MinPrice,
		MaxPrice:       p.MaxPrice,
		MinArea:        p.MinArea,
		MaxArea:        p.MaxArea,
		MinRooms:       p.MinRooms,
		MaxRooms:       p.MaxRooms,
		MaxFloor:       p.MaxFloor,
		MinPricePerSqm: p.MinPricePerSqm,
		AddressWindow:  p.AddressWindow,
	}
}
