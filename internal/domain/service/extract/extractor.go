package extract

import (
	"strings"
	"unicode/utf8"

	"nadlan_radar/internal/domain/entity"
	"nadlan_radar/internal/domain/value"
)

const currencySymbol = "₪"

// Bounds are the plausibility limits applied during extraction. There is no
// single correct threshold for any of them, so they are configuration with
// sensible defaults.
type Bounds struct {
	MinPrice       int64
	MaxPrice       int64
	MinArea        int64
	MaxArea        int64
	MinRooms       float64
	MaxRooms       float64
	MaxFloor       int
	MinPricePerSqm int64
	AddressWindow  int
}

func DefaultBounds() Bounds {
	return Bounds{
		MinPrice:       500_000,
		MaxPrice:       50_000_000,
		MinArea:        25,
		MaxArea:        400,
		MinRooms:       1,
		MaxRooms:       12,
		MaxFloor:       50,
		MinPricePerSqm: 7000,
		AddressWindow:  60,
	}
}

// Extractor turns one raw text blob into listing candidates. It is pure and
// synchronous; all reference data comes in through the catalog.
type Extractor struct {
	catalog value.Catalog
	bounds  Bounds
}

func New(catalog value.Catalog, bounds Bounds) *Extractor {
	return &Extractor{
		catalog: catalog,
		bounds:  bounds,
	}
}

// Extract splits the normalized text on the currency symbol and extracts one
// candidate per fragment. A price quote is the most reliable per-listing
// anchor in scraped page text; splitting there isolates one listing's context
// window far better than whitespace or line breaks, at the cost of
// mis-segmenting ads with no price or several price-like numbers.
func (e *Extractor) Extract(text string) []entity.Listing {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	fragments := strings.Split(normalize(text), currencySymbol)

	var listings []entity.Listing

	for _, frag := range fragments {
		listing, ok := e.extractFragment(frag)
		if !ok {
			continue
		}

		listings = append(listings, listing)
	}

	return listings
}

// extractFragment recovers one listing from one fragment. Only a missing or
// implausible price discards the fragment; every other field degrades to its
// default, and failure is modeled as an absent value, never as a panic.
func (e *Extractor) extractFragment(frag string) (entity.Listing, bool) {
	price, ok := e.findPrice(frag)
	if !ok {
		return entity.Listing{}, false
	}

	city, cityFound := e.findCity(frag)

	// "קומת קרקע" (ground floor) contains the lot keyword "קרקע"; mask it so
	// ground-floor apartments are not read as land.
	propertyType := value.DetectPropertyType(strings.ReplaceAll(frag, groundFloorToken, " "))
	rooms, roomsFound := e.findRooms(frag)
	floor, floorFound := e.findFloor(frag)
	area, areaFound := e.findArea(frag, price, propertyType)
	address := e.findAddress(frag, city)

	return entity.Listing{
		City:         city,
		Address:      address,
		PropertyType: propertyType,
		Rooms:        rooms,
		Floor:        floor,
		Area:         area,
		Price:        price,
		UrbanRenewal: e.findRenewal(frag),
		Confidence: e.confidence(
			frag,
			areaFound,
			roomsFound,
			floorFound,
			cityFound,
		),
	}, true
}

// confidence is an additive heuristic for how many independent signals were
// recovered. It is an explanatory score for display, not a calibrated
// probability.
func (e *Extractor) confidence(frag string, area, rooms, floor, city bool) int {
	const (
		base          = 40
		areaBonus     = 20
		roomsBonus    = 15
		floorBonus    = 10
		cityBonus     = 10
		lengthBonus   = 5
		longFragment  = 120
		maxConfidence = 100
	)

	score := base

	if area {
		score += areaBonus
	}
	if rooms {
		score += roomsBonus
	}
	if floor {
		score += floorBonus
	}
	if city {
		score += cityBonus
	}
	if utf8.RuneCountInString(frag) > longFragment {
		score += lengthBonus
	}

	if score > maxConfidence {
		score = maxConfidence
	}

	return score
}
