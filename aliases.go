package countryguess

// countryAliases maps lowercase country names and abbreviations, as they
// appear in a parsed "country" component, to ISO2 codes.
var countryAliases = map[string]string{
	"united states":            "US",
	"united states of america": "US",
	"usa":                      "US",
	"us":                       "US",

	"united kingdom": "GB",
	"uk":             "GB",
	"great britain":  "GB",
	"england":        "GB",
	"scotland":       "GB",
	"wales":          "GB",

	"canada": "CA",
	"ca":     "CA",

	"australia": "AU",
	"au":        "AU",

	"germany":     "DE",
	"deutschland": "DE",

	"france": "FR",
	"india":  "IN",
	"brazil": "BR",
	"japan":  "JP",
	"china":  "CN",
}

// ResolveAlias maps a lowercase country name to its ISO2 code.
// Matching is exact: no case folding, trimming or partial matches.
func ResolveAlias(name string) (string, bool) {
	iso2, ok := countryAliases[name]
	return iso2, ok
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	m := make(map[string]string, len(countryAliases))
	for k, v := range countryAliases {
		m[k] = v
	}
	return m
}
