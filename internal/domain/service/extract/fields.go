package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"nadlan_radar/internal/domain/value"
)

var (
	// A run of 6-9 digits is the plausible magnitude of an asking price in
	// shekels. The non-digit guards keep the match from biting into a longer
	// run.
	priceRE = regexp.MustCompile(`(?:^|\D)(\d{6,9})(?:\D|$)`)

	roomsRE = regexp.MustCompile(`(\d{1,2}(?:\.5)?)\s*חד(?:רים|')`)

	floorRE = regexp.MustCompile(`קומה\s*(\d+)`)

	// Square meters in all its spellings: מ"ר, מ״ר, מ''ר, מר.
	areaRE = regexp.MustCompile(`(\d{1,5})\s*מ(?:"|״|''|')?ר`)

	// Distance phrases ("40 מטר מהים", "5 דקות מהרכבת") carry numbers the
	// area regex cannot tell apart from a floor area, so they are removed
	// before the area scan.
	distanceRE = regexp.MustCompile(`\d+\s*(?:מטר(?:ים)?|מ')\s+מ\S*`)
	walkingRE  = regexp.MustCompile(`\d+\s*דקות\s+(?:הליכה\s+)?מ\S*`)

	streetRE = regexp.MustCompile(`(?:רחוב|רח'|שדרות|שד'|דרך|סמטת|שכונת)\s+[\p{Hebrew}'"־\- ]{2,30}`)
)

const groundFloorToken = "קומת קרקע"

// findPrice returns the first 6-9 digit run. The fragment is discarded by the
// caller when the value falls outside the configured bounds: price is the
// anchor field, no listing exists without one.
func (e *Extractor) findPrice(frag string) (int64, bool) {
	m := priceRE.FindStringSubmatch(frag)
	if m == nil {
		return 0, false
	}

	price, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	if price < e.bounds.MinPrice || price > e.bounds.MaxPrice {
		return 0, false
	}

	return price, true
}

// findCity scans the catalog's ordered city list; first match wins.
func (e *Extractor) findCity(frag string) (string, bool) {
	for _, city := range e.catalog.Cities {
		if strings.Contains(frag, city) {
			return city, true
		}
	}

	return value.CityUnknown, false
}

func (e *Extractor) findRooms(frag string) (float64, bool) {
	m := roomsRE.FindStringSubmatch(frag)
	if m == nil {
		return 0, false
	}

	rooms, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	// Rejects mis-captures like "100 חדרים" glued out of unrelated numbers.
	if rooms < e.bounds.MinRooms || rooms > e.bounds.MaxRooms {
		return 0, false
	}

	return rooms, true
}

func (e *Extractor) findFloor(frag string) (int, bool) {
	if strings.Contains(frag, groundFloorToken) {
		return 0, true
	}

	m := floorRE.FindStringSubmatch(frag)
	if m == nil {
		return 0, false
	}

	floor, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	// Implausibly high floors are almost always two glued tokens read as one
	// number.
	if floor > e.bounds.MaxFloor {
		return 0, false
	}

	return floor, true
}

// findArea is the hardest field. Distance phrases are stripped first, then
// every number+sqm candidate is filtered for plausibility: residential range
// and an economic price-per-sqm floor. First survivor wins. Land lots are
// exempt from both filters since large lot areas are expected.
func (e *Extractor) findArea(frag string, price int64, propertyType value.PropertyType) (int64, bool) {
	cleaned := distanceRE.ReplaceAllString(frag, " ")
	cleaned = walkingRE.ReplaceAllString(cleaned, " ")

	for _, m := range areaRE.FindAllStringSubmatch(cleaned, -1) {
		area, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || area <= 0 {
			continue
		}

		if propertyType == value.Land {
			return area, true
		}

		if area < e.bounds.MinArea || area > e.bounds.MaxArea {
			continue
		}

		// A candidate implying an uneconomically cheap price per sqm is
		// almost always some other number (a distance, a price fragment, a
		// lot size) misread as area.
		if price/area < e.bounds.MinPricePerSqm {
			continue
		}

		return area, true
	}

	return 0, false
}

// findAddress carves a street fragment out of the context window right before
// the first city mention, falling back to the first short clean line, then to
// the general-area sentinel.
func (e *Extractor) findAddress(frag, city string) string {
	window := frag

	if city != value.CityUnknown {
		if idx := strings.Index(frag, city); idx >= 0 {
			// The window is measured in runes; Hebrew is two bytes per rune.
			start := idx
			for n := 0; n < e.bounds.AddressWindow && start > 0; n++ {
				_, size := utf8.DecodeLastRuneInString(frag[:start])
				start -= size
			}
			window = frag[start:idx]
		}
	}

	window = e.stripChrome(window)

	if m := streetRE.FindString(window); m != "" {
		return strings.TrimSpace(m)
	}

	if line, ok := e.firstCleanLine(frag); ok {
		return line
	}

	return value.AddressGeneral
}

func (e *Extractor) stripChrome(s string) string {
	for _, token := range e.catalog.ChromeTokens {
		s = strings.ReplaceAll(s, token, " ")
	}

	return s
}

// firstCleanLine returns the first 5-40 rune line that looks like free text
// rather than site chrome or numbers.
func (e *Extractor) firstCleanLine(frag string) (string, bool) {
	for _, line := range strings.Split(frag, "\n") {
		line = strings.TrimSpace(line)

		runes := utf8.RuneCountInString(line)
		if runes < 5 || runes > 40 {
			continue
		}

		if strings.ContainsAny(line, "0123456789") {
			continue
		}

		if e.containsChrome(line) {
			continue
		}

		if !containsHebrew(line) {
			continue
		}

		return line, true
	}

	return "", false
}

func (e *Extractor) containsChrome(s string) bool {
	for _, token := range e.catalog.ChromeTokens {
		if strings.Contains(s, token) {
			return true
		}
	}

	return false
}

func containsHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}

	return false
}

func (e *Extractor) findRenewal(frag string) bool {
	for _, kw := range e.catalog.RenewalKeywords {
		if strings.Contains(frag, kw) {
			return true
		}
	}

	return false
}
