package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nadlan_radar/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Mobile number with dash",
			input:  []byte(`{"text":"לפרטים: 052-1234567 דני"}`),
			output: []byte(`{"text":"לפרטים: 052[MASKED] דני"}`),
		},
		{
			name:   "Mobile number without separators",
			input:  []byte(`call 0529876543 now`),
			output: []byte(`call 052[MASKED] now`),
		},
		{
			name:   "International number",
			input:  []byte(`+972-52-123-45-67`),
			output: []byte(`+972[MASKED]`),
		},
		{
			name:   "Price left intact",
			input:  []byte(`2,500,000 ₪ דירת 4 חדרים`),
			output: []byte(`2,500,000 ₪ דירת 4 חדרים`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
