// Package geocodes provides in-memory lookup tables translating country and
// state display names into the codes carriers expect. Lookups are
// case-insensitive on the display name. An unknown name resolves to
// ("", false); callers leave the corresponding field absent.
package geocodes

import "strings"

// countryCodes maps country display names to ISO 3166-1 alpha-2 codes.
// The table covers the countries the shipping desk serves; extend it as
// new lanes open.
var countryCodes = map[string]string{
	"australia":            "AU",
	"austria":              "AT",
	"belgium":              "BE",
	"brazil":               "BR",
	"canada":               "CA",
	"china":                "CN",
	"denmark":              "DK",
	"france":               "FR",
	"germany":              "DE",
	"india":                "IN",
	"ireland":              "IE",
	"italy":                "IT",
	"japan":                "JP",
	"mexico":               "MX",
	"netherlands":          "NL",
	"new zealand":          "NZ",
	"norway":               "NO",
	"poland":               "PL",
	"singapore":            "SG",
	"spain":                "ES",
	"sweden":               "SE",
	"switzerland":          "CH",
	"united arab emirates": "AE",
	"united kingdom":       "GB",
	"united states":        "US",
}

// stateCodes maps (ISO country code, state display name) pairs to the
// state/province codes Fedex accepts. Only countries where the carrier
// requires a state code are listed.
var stateCodes = map[string]map[string]string{
	"US": {
		"alabama":        "AL",
		"alaska":         "AK",
		"arizona":        "AZ",
		"california":     "CA",
		"colorado":       "CO",
		"florida":        "FL",
		"georgia":        "GA",
		"illinois":       "IL",
		"massachusetts":  "MA",
		"michigan":       "MI",
		"new jersey":     "NJ",
		"new york":       "NY",
		"north carolina": "NC",
		"ohio":           "OH",
		"oregon":         "OR",
		"pennsylvania":   "PA",
		"texas":          "TX",
		"virginia":       "VA",
		"washington":     "WA",
	},
	"CA": {
		"alberta":          "AB",
		"british columbia": "BC",
		"manitoba":         "MB",
		"nova scotia":      "NS",
		"ontario":          "ON",
		"quebec":           "QC",
		"saskatchewan":     "SK",
	},
	"IN": {
		"delhi":       "DL",
		"gujarat":     "GJ",
		"karnataka":   "KA",
		"maharashtra": "MH",
		"tamil nadu":  "TN",
		"west bengal": "WB",
	},
}

// Resolver implements the country and state code resolver ports over the
// static tables above.
type Resolver struct{}

// NewResolver creates a code resolver.
func NewResolver() Resolver {
	return Resolver{}
}

// CountryCode translates a country display name into its ISO code.
func (Resolver) CountryCode(countryName string) (string, bool) {
	code, ok := countryCodes[normalize(countryName)]
	return code, ok
}

// StateCode translates a (country, state display name) pair into a carrier
// state code. The country may be given as a display name or an ISO code.
func (r Resolver) StateCode(country string, stateName string) (string, bool) {
	countryCode := strings.ToUpper(strings.TrimSpace(country))
	if len(countryCode) != 2 {
		resolved, ok := r.CountryCode(country)
		if !ok {
			return "", false
		}
		countryCode = resolved
	}

	states, ok := stateCodes[countryCode]
	if !ok {
		return "", false
	}

	code, ok := states[normalize(stateName)]
	return code, ok
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
