package geocode

import "strings"

// cityNormalizations maps known non-English city-name inflections (grammatical
// cases included) to the canonical English form the geocoding API indexes.
var cityNormalizations = map[string]string{
	// Ukrainian cities, various grammatical cases
	"одеса":     "Odesa",
	"одесі":     "Odesa",
	"одесу":     "Odesa",
	"київ":      "Kyiv",
	"києві":     "Kyiv",
	"києва":     "Kyiv",
	"львів":     "Lviv",
	"львові":    "Lviv",
	"львова":    "Lviv",
	"харків":    "Kharkiv",
	"харкові":   "Kharkiv",
	"харкова":   "Kharkiv",
	"дніпро":    "Dnipro",
	"дніпрі":    "Dnipro",
	"запоріжжя": "Zaporizhzhia",
	"запоріжжі": "Zaporizhzhia",
	// Russian city names, various grammatical cases
	"москва":          "Moscow",
	"москве":          "Moscow",
	"москву":          "Moscow",
	"киев":            "Kyiv",
	"киеве":           "Kyiv",
	"санкт-петербург": "Saint Petersburg",
	"петербурге":      "Saint Petersburg",
	"петербург":       "Saint Petersburg",
	"одесса":          "Odesa",
	"одессе":          "Odesa",
	// Latvian cities
	"rīga":       "Riga",
	"rīgā":       "Riga",
	"rīgai":      "Riga",
	"liepāja":    "Liepaja",
	"liepājā":    "Liepaja",
	"daugavpils": "Daugavpils",
	"daugavpilī": "Daugavpils",
	"ventspils":  "Ventspils",
	"ventspilī":  "Ventspils",
	"jelgava":    "Jelgava",
	"jelgavā":    "Jelgava",
	"jūrmala":    "Jurmala",
	"jūrmalā":    "Jurmala",
}

// NormalizeCity rewrites a known inflected city name to its canonical English
// form. Unrecognized input passes through unchanged.
func NormalizeCity(city string) string {
	if canonical, ok := cityNormalizations[strings.ToLower(strings.TrimSpace(city))]; ok {
		return canonical
	}
	return city
}
