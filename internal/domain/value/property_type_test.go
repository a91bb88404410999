package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nadlan_radar/internal/domain/value"
)

func TestDetectPropertyType(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		result value.PropertyType
	}{
		{
			name:   "Default is apartment",
			input:  "דירת 3 חדרים מרווחת",
			result: value.Apartment,
		},
		{
			name:   "Penthouse",
			input:  "פנטהאוז מדהים עם נוף לים",
			result: value.Penthouse,
		},
		{
			name:   "Penthouse outranks duplex",
			input:  "פנטהאוז דופלקס בלב העיר",
			result: value.Penthouse,
		},
		{
			name:   "Garden apartment",
			input:  "דירת גן עם חצר ענקית",
			result: value.GardenApartment,
		},
		{
			name:   "Villa",
			input:  "וילה מפוארת עם בריכה",
			result: value.PrivateHouse,
		},
		{
			name:   "Cottage without apostrophe",
			input:  "קוטג מטופח בשכונה שקטה",
			result: value.PrivateHouse,
		},
		{
			name:   "Duplex",
			input:  "דופלקס משופץ",
			result: value.Duplex,
		},
		{
			name:   "Lot",
			input:  "מגרש לבנייה",
			result: value.Land,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.New(t).Equal(tc.result, value.DetectPropertyType(tc.input))
		})
	}
}
