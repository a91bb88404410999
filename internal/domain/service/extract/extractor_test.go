package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nadlan_radar/internal/domain/service/extract"
	"nadlan_radar/internal/domain/value"
)

func newExtractor() *extract.Extractor {
	return extract.New(value.DefaultCatalog(), extract.DefaultBounds())
}

func TestExtractFullAd(t *testing.T) {
	rq := require.New(t)

	listings := newExtractor().Extract(
		`דירת 4 חדרים ברחוב הרצל, תל אביב, קומה 3, 85 מ"ר, 2,500,000 ₪`,
	)

	rq.Len(listings, 1)

	listing := listings[0]
	rq.Equal("תל אביב", listing.City)
	rq.Equal("רחוב הרצל", listing.Address)
	rq.Equal(value.Apartment, listing.PropertyType)
	rq.InEpsilon(4.0, listing.Rooms, 1e-9)
	rq.Equal(3, listing.Floor)
	rq.Equal(int64(85), listing.Area)
	rq.Equal(int64(2_500_000), listing.Price)
	rq.False(listing.UrbanRenewal)
	rq.Equal(95, listing.Confidence)
}

func TestExtractEmptyInput(t *testing.T) {
	rq := require.New(t)

	extractor := newExtractor()

	rq.Empty(extractor.Extract(""))
	rq.Empty(extractor.Extract("   \n\t  "))
}

func TestExtractNoPriceMagnitude(t *testing.T) {
	rq := require.New(t)

	// A contiguous 10-digit phone number is not a 6-9 digit run, so the
	// fragment has no price anchor.
	rq.Empty(newExtractor().Extract("דירה יפה בחיפה לפרטים 0501234567"))
}

func TestExtractIdempotent(t *testing.T) {
	rq := require.New(t)

	extractor := newExtractor()
	text := `דירת 3 חדרים בנתניה 70 מ"ר 1,400,000 ₪`

	rq.Equal(extractor.Extract(text), extractor.Extract(text))
}

func TestExtractFieldRecovery(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		assert func(rq *require.Assertions, listing listingFields)
	}{
		{
			name:  "Distance phrase does not become area",
			input: `דירה 3 חדרים בנתניה 40 מטר מהים 85 מ"ר 1,200,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(int64(85), l.Area)
				rq.InEpsilon(3.0, l.Rooms, 1e-9)
			},
		},
		{
			name:  "Glued floor and area tokens are separated",
			input: `למכירה דירה בתל אביב קומה2מעלית85מ"ר 1,500,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(2, l.Floor)
				rq.Equal(int64(85), l.Area)
			},
		},
		{
			name:  "Implausibly high floor is dropped",
			input: `דירה בתל אביב קומה 285, 60 מ"ר 1,900,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(0, l.Floor)
				rq.Equal(int64(60), l.Area)
			},
		},
		{
			name:  "Land lot bypasses residential area range",
			input: `מגרש למכירה בחדרה 1000 מ"ר 2,000,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(value.Land, l.PropertyType)
				rq.Equal(int64(1000), l.Area)
			},
		},
		{
			name:  "Apartment with lot-sized area gets no area",
			input: `דירה למכירה בחדרה 1000 מ"ר 2,000,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(value.Apartment, l.PropertyType)
				rq.Equal(int64(0), l.Area)
			},
		},
		{
			name:  "Ground floor is floor zero, not land",
			input: `דירה קומת קרקע בחולון 80 מ"ר 1,600,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(value.Apartment, l.PropertyType)
				rq.Equal(0, l.Floor)
			},
		},
		{
			name:  "Renewal keyword sets the flag",
			input: `דירה לפינוי בינוי בבת ים 60 מ"ר 1,100,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.True(l.UrbanRenewal)
				rq.Equal("בת ים", l.City)
			},
		},
		{
			name:  "Uneconomic price per sqm is not an area",
			input: `דירה בבאר שבע 100 מ"ר 600,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				// 600,000 / 100 = 6,000 per sqm, below the economic floor.
				rq.Equal(int64(0), l.Area)
			},
		},
		{
			name:  "Chrome-only context falls back to the general-area sentinel",
			input: `לפרטים צור קשר טלפון חיפה דירה 3 חדרים 70 מ"ר 1,000,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(value.AddressGeneral, l.Address)
			},
		},
		{
			name:  "Clean line fallback when no street prefix",
			input: "דירה מהממת בלב העיר\nחיפה 3 חדרים 70 מ\"ר\n1,000,000 ₪",
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal("דירה מהממת בלב העיר", l.Address)
			},
		},
		{
			name: "Street prefix recovered across a long context window",
			input: `למכירה ברחוב הרצל, דירה משופצת ומרווחת עם נוף פתוח ומואר תל אביב ` +
				`85 מ"ר קומה 3 2,500,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal("רחוב הרצל", l.Address)
			},
		},
		{
			name:  "Hundred rooms is a mis-capture",
			input: `דירה 100 חדרים בחיפה 50 מ"ר 900,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.InDelta(0.0, l.Rooms, 1e-9)
			},
		},
		{
			name:  "Half rooms are preserved",
			input: `דירת 3.5 חדרים בגבעתיים 75 מ"ר 2,800,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.InEpsilon(3.5, l.Rooms, 1e-9)
			},
		},
		{
			name:  "Unknown city falls back to sentinel",
			input: `דירת 3 חדרים בזכרון יעקב 90 מ"ר 1,700,000 ₪`,
			assert: func(rq *require.Assertions, l listingFields) {
				rq.Equal(value.CityUnknown, l.City)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			listings := newExtractor().Extract(tc.input)
			rq.Len(listings, 1)

			l := listings[0]
			tc.assert(rq, listingFields{
				City:         l.City,
				Address:      l.Address,
				PropertyType: l.PropertyType,
				Rooms:        l.Rooms,
				Floor:        l.Floor,
				Area:         l.Area,
				UrbanRenewal: l.UrbanRenewal,
			})
		})
	}
}

type listingFields struct {
	City         string
	Address      string
	PropertyType value.PropertyType
	Rooms        float64
	Floor        int
	Area         int64
	UrbanRenewal bool
}

func TestExtractMultipleFragments(t *testing.T) {
	rq := require.New(t)

	listings := newExtractor().Extract(
		`דירת 3 חדרים בחיפה 70 מ"ר 1,000,000 ₪ ודירת 4 חדרים בנתניה 90 מ"ר 1,800,000 ₪`,
	)

	rq.Len(listings, 2)
	rq.Equal(int64(1_000_000), listings[0].Price)
	rq.Equal("חיפה", listings[0].City)
	rq.Equal(int64(1_800_000), listings[1].Price)
	rq.Equal("נתניה", listings[1].City)
}

func TestExtractPriceBounds(t *testing.T) {
	rq := require.New(t)

	extractor := newExtractor()

	// 120,000 is a 6-digit run but below the plausible asking-price floor.
	rq.Empty(extractor.Extract(`חניה למכירה בחיפה 120,000 ₪`))
}

func TestExtractSyntheticCatalog(t *testing.T) {
	rq := require.New(t)

	catalog := value.Catalog{
		Cities: []string{"אוסלו"},
	}

	listings := extract.New(catalog, extract.DefaultBounds()).Extract(
		`דירה בעיר אחרת 80 מ"ר 1,000,000 ₪`,
	)

	rq.Len(listings, 1)
	rq.Equal(value.CityUnknown, listings[0].City)
}
