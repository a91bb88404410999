package valuation

import (
	"strings"

	"nadlan_radar/internal/domain/entity"
	"nadlan_radar/internal/domain/value"
)

// Appraiser compares a listing's asking price against the city benchmark.
// Stateless; all reference data comes in through the catalog.
type Appraiser struct {
	catalog value.Catalog
}

func NewAppraiser(catalog value.Catalog) *Appraiser {
	return &Appraiser{catalog: catalog}
}

// Appraise returns the market comparison for one listing.
//
// With no recovered area there is nothing to divide by and the result is
// degenerate. A city missing from the benchmark table yields the raw price
// per sqm with zero deviation, never a fabricated comparison. Land lots keep
// their lot price per sqm but get no fair-value estimate, since the built-area
// benchmark does not apply.
func (a *Appraiser) Appraise(listing entity.Listing) entity.Valuation {
	if !listing.HasArea() {
		return entity.Valuation{}
	}

	v := entity.Valuation{
		PricePerSqm: listing.Price / listing.Area,
	}

	if listing.PropertyType == value.Land {
		return v
	}

	benchmark, ok := a.catalog.Benchmarks[listing.City]
	if !ok {
		return v
	}

	adjusted := float64(benchmark)

	if zone, ok := a.matchZone(listing.Address); ok {
		adjusted *= zone.Multiplier
		v.Zone = zone.Name
	}

	if mult, ok := a.catalog.TypeMultipliers[listing.PropertyType]; ok {
		adjusted *= mult
	}

	fairValue := int64(adjusted * float64(listing.Area))
	if fairValue <= 0 {
		return v
	}

	v.FairValue = fairValue
	v.DeviationPct = float64(fairValue-listing.Price) * 100 / float64(fairValue)

	return v
}

// matchZone finds the first neighborhood name contained in the address text.
// First match wins; no overlap resolution when several names are present.
func (a *Appraiser) matchZone(address string) (value.Zone, bool) {
	for _, zone := range a.catalog.Zones {
		if strings.Contains(address, zone.Name) {
			return zone, true
		}
	}

	return value.Zone{}, false
}
