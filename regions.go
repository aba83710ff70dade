package countryguess

// Jurisdiction identifies one of the region tables consulted for "state"
// components.
type Jurisdiction uint8

const (
	JurisdictionUS Jurisdiction = iota
	JurisdictionCA
	JurisdictionAU
)

// jurisdictionOrder is the fixed order in which state codes are tested.
// Codes such as "wa" and "nt" appear in more than one table; the first
// table wins.
var jurisdictionOrder = [...]Jurisdiction{JurisdictionUS, JurisdictionCA, JurisdictionAU}

// Country returns the ISO2 code of the jurisdiction.
func (j Jurisdiction) Country() string {
	switch j {
	case JurisdictionUS:
		return "US"
	case JurisdictionCA:
		return "CA"
	case JurisdictionAU:
		return "AU"
	}
	return ""
}

func (j Jurisdiction) String() string { return j.Country() }

// usStates holds the 50 state codes plus the District of Columbia.
var usStates = regionSet(
	"al", "ak", "az", "ar", "ca", "co", "ct", "de", "fl", "ga",
	"hi", "id", "il", "in", "ia", "ks", "ky", "la", "me", "md",
	"ma", "mi", "mn", "ms", "mo", "mt", "ne", "nv", "nh", "nj",
	"nm", "ny", "nc", "nd", "oh", "ok", "or", "pa", "ri", "sc",
	"sd", "tn", "tx", "ut", "vt", "va", "wa", "wv", "wi", "wy",
	"dc",
)

var caProvinces = regionSet(
	"ab", "bc", "mb", "nb", "nl", "ns", "nt", "nu", "on", "pe",
	"qc", "sk", "yt",
)

var auStates = regionSet("nsw", "vic", "qld", "wa", "sa", "tas", "act", "nt")

func regionSet(codes ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}

func (j Jurisdiction) table() map[string]struct{} {
	switch j {
	case JurisdictionUS:
		return usStates
	case JurisdictionCA:
		return caProvinces
	case JurisdictionAU:
		return auStates
	}
	return nil
}

// IsRegionMember reports whether code is a state, province or territory
// abbreviation of the jurisdiction. The match is exact and case-sensitive;
// codes are expected in lowercase, as the address parser emits them.
func IsRegionMember(code string, j Jurisdiction) bool {
	_, ok := j.table()[code]
	return ok
}

// RegionCountry returns the ISO2 code of the first jurisdiction, tested in
// US, CA, AU order, that lists code.
// Examples: "ny" -> "US", "bc" -> "CA", "nsw" -> "AU", "wa" -> "US"
func RegionCountry(code string) (string, bool) {
	for _, j := range jurisdictionOrder {
		if IsRegionMember(code, j) {
			return j.Country(), true
		}
	}
	return "", false
}
