package server

import (
	"nadlan_radar/internal/domain/entity"
	service "nadlan_radar/internal/domain/service/listing"
	"nadlan_radar/internal/domain/value"
	"nadlan_radar/pkg/lox"
	"nadlan_radar/pkg/rest"
)

func newRESTListing(al entity.AppraisedListing) rest.Listing {
	return rest.Listing{
		ID:           al.Listing.ID,
		City:         al.Listing.City,
		Address:      al.Listing.Address,
		PropertyType: al.Listing.PropertyType.String(),
		Rooms:        al.Listing.Rooms,
		Floor:        al.Listing.Floor,
		Area:         al.Listing.Area,
		Price:        al.Listing.Price,
		PricePerSqm:  al.Valuation.PricePerSqm,
		FairValue:    al.Valuation.FairValue,
		DeviationPct: al.Valuation.DeviationPct,
		Zone:         al.Valuation.Zone,
		UrbanRenewal: al.Listing.UrbanRenewal,
		Confidence:   al.Listing.Confidence,
		CreatedAt:    al.Listing.CreatedAt,
	}
}

func newRESTExtractResponse(result service.ExtractResult) rest.ExtractResponse {
	return rest.ExtractResponse{
		Count:        len(result.Listings),
		AveragePrice: result.AveragePrice,
		Listings:     lox.Map(result.Listings, newRESTListing),
	}
}

func newRESTListingsResponse(listings []entity.AppraisedListing) rest.ListingsResponse {
	return rest.ListingsResponse{
		Count:    len(listings),
		Listings: lox.Map(listings, newRESTListing),
	}
}

func newRESTBenchmarks(benchmarks []entity.CityBenchmark) []rest.Benchmark {
	return lox.Map(benchmarks, func(b entity.CityBenchmark) rest.Benchmark {
		return rest.Benchmark{
			City:           b.City,
			AvgPricePerSqm: b.AvgPricePerSqm,
		}
	})
}

func newRESTPresets(presets []value.SearchPreset) []rest.Preset {
	return lox.Map(presets, func(p value.SearchPreset) rest.Preset {
		return rest.Preset{
			Name: p.Name,
			URL:  p.URL,
		}
	})
}
