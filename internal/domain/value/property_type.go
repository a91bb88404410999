package value

import "strings"

// PropertyType is the closed set of recognized property kinds.
type PropertyType string

const (
	Apartment       PropertyType = "apartment"
	Penthouse       PropertyType = "penthouse"
	GardenApartment PropertyType = "garden_apartment"
	PrivateHouse    PropertyType = "private_house"
	Duplex          PropertyType = "duplex"
	Land            PropertyType = "land"
)

func (t PropertyType) String() string {
	return string(t)
}

type typeMatcher struct {
	keywords []string
	result   PropertyType
}

// Ordered by priority: an ad saying "פנטהאוז דופלקס" is a penthouse. The order
// is a deliberate tie-break, not mutually exclusive detection.
//
//nolint:gochecknoglobals
var typeMatchers = []typeMatcher{
	{keywords: []string{"פנטהאוז", "פנטהאוס"}, result: Penthouse},
	{keywords: []string{"דירת גן"}, result: GardenApartment},
	{keywords: []string{"בית פרטי", "וילה", "קוטג'", "קוטג"}, result: PrivateHouse},
	{keywords: []string{"דופלקס"}, result: Duplex},
	{keywords: []string{"מגרש", "קרקע"}, result: Land},
}

// DetectPropertyType scans the matchers in priority order; first hit wins,
// default is a plain apartment.
func DetectPropertyType(text string) PropertyType {
	for _, m := range typeMatchers {
		for _, kw := range m.keywords {
			if strings.Contains(text, kw) {
				return m.result
			}
		}
	}

	return Apartment
}
