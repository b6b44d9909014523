package constants

// CountryAliases maps Russian-language country names to the canonical
// lowercase English names FlightRadar24 reports. Lookups happen after
// lowercasing and trimming; anything not listed passes through unchanged.
var CountryAliases = map[string]string{
	"россия":         "russia",
	"рф":             "russia",
	"турция":         "turkey",
	"германия":       "germany",
	"франция":        "france",
	"италия":         "italy",
	"испания":        "spain",
	"китай":          "china",
	"япония":         "japan",
	"оаэ":            "united arab emirates",
	"сша":            "united states",
	"великобритания": "united kingdom",
}
