package extract

import "regexp"

var (
	thousandsSep = regexp.MustCompile(`(\d),(\d)`)
	// Scraped page text frequently glues a digit run to an adjacent Hebrew
	// token ("85מ\"ר", "קומה3"). Without the split the numbers bleed into
	// each other and corrupt every numeric field downstream.
	digitHebrew = regexp.MustCompile(`(\d)(\p{Hebrew})`)
	hebrewDigit = regexp.MustCompile(`(\p{Hebrew})(\d)`)
)

// normalize strips thousands separators and un-glues digit/letter runs.
func normalize(text string) string {
	t := thousandsSep.ReplaceAllString(text, "$1$2")
	t = digitHebrew.ReplaceAllString(t, "$1 $2")
	t = hebrewDigit.ReplaceAllString(t, "$1 $2")

	return t
}
