package value

// Sentinels for fields the extractor could not recover.
const (
	CityUnknown    = "לא ידוע"
	AddressGeneral = "אזור כללי"
)

// Zone is a neighborhood with a price multiplier relative to its city
// benchmark. Matching is by substring of the address text, first hit wins;
// overlapping names are a known limitation and are not resolved.
type Zone struct {
	Name       string
	Multiplier float64
}

// SearchPreset is a canned acquisition URL for one search area.
type SearchPreset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Catalog is the injected reference data for extraction and valuation: the
// recognized city list, the per-city benchmark table, neighborhood zones and
// keyword sets. Tests supply synthetic catalogs.
type Catalog struct {
	// Cities is scanned in order, first match wins.
	Cities []string
	// Benchmarks maps city name to average price per square meter.
	Benchmarks map[string]int64
	// Zones are checked against the address text before the type multiplier.
	Zones []Zone
	// TypeMultipliers adjust the city benchmark per property type. A missing
	// key means 1.0.
	TypeMultipliers map[PropertyType]float64
	// RenewalKeywords mark urban-renewal (pinui-binui / TAMA) listings.
	RenewalKeywords []string
	// ChromeTokens is site chrome stripped out of address context windows.
	ChromeTokens []string
	// Presets are canned search URLs offered to the acquisition endpoint.
	Presets []SearchPreset
}

// DefaultCatalog carries the curated production data.
func DefaultCatalog() Catalog {
	return Catalog{
		Cities: []string{
			"תל אביב",
			"ירושלים",
			"חיפה",
			"ראשון לציון",
			"פתח תקווה",
			"אשדוד",
			"נתניה",
			"באר שבע",
			"בני ברק",
			"רמת גן",
			"גבעתיים",
			"חולון",
			"בת ים",
			"אשקלון",
			"רחובות",
			"הרצליה",
			"כפר סבא",
			"רעננה",
			"חדרה",
			"מודיעין",
		},
		Benchmarks: map[string]int64{
			"תל אביב":     68000,
			"ירושלים":     42000,
			"חיפה":        22000,
			"ראשון לציון": 32000,
			"פתח תקווה":   30000,
			"אשדוד":       25000,
			"נתניה":       28000,
			"באר שבע":     15000,
			"בני ברק":     35000,
			"רמת גן":      45000,
			"גבעתיים":     48000,
			"חולון":       30000,
			"בת ים":       33000,
			"אשקלון":      20000,
			"רחובות":      28000,
			"הרצליה":      50000,
			"כפר סבא":     35000,
			"רעננה":       42000,
			"חדרה":        20000,
			"מודיעין":     32000,
		},
		Zones: []Zone{
			{Name: "נווה צדק", Multiplier: 1.4},
			{Name: "רמת אביב", Multiplier: 1.25},
			{Name: "הצפון הישן", Multiplier: 1.3},
			{Name: "פלורנטין", Multiplier: 1.05},
			{Name: "יד אליהו", Multiplier: 0.9},
			{Name: "רמת החייל", Multiplier: 1.1},
		},
		TypeMultipliers: map[PropertyType]float64{
			Penthouse:       1.3,
			GardenApartment: 1.2,
			PrivateHouse:    1.45,
			Duplex:          1.1,
			Apartment:       1.0,
		},
		RenewalKeywords: []string{
			"פינוי בינוי",
			"פינוי-בינוי",
			"תמ\"א 38",
			"תמא 38",
			"התחדשות עירונית",
		},
		ChromeTokens: []string{
			"וואטסאפ",
			"ואטסאפ",
			"פייסבוק",
			"אינסטגרם",
			"טלפון",
			"לפרטים",
			"צור קשר",
			"תפריט",
			"כניסה",
			"התחברות",
			"מודעות נוספות",
			"פרסם מודעה",
			"חיפוש",
		},
		Presets: []SearchPreset{
			{Name: "נתניה - כל העיר", URL: "https://www.yad2.co.il/realestate/forsale?city=7400"},
			{Name: "תל אביב - 3-4 חדרים", URL: "https://www.yad2.co.il/realestate/forsale?city=5000&rooms=3-4"},
			{Name: "חיפה - עד 2 מיליון", URL: "https://www.yad2.co.il/realestate/forsale?city=4000&price=-1-2000000"},
		},
	}
}
