package countryguess

import (
	"github.com/golang/geo/s2"
)

// countryBox is a coarse lat/lng bounding box for one part of a country.
type countryBox struct {
	country string
	rect    s2.Rect
}

func box(country string, latLo, lngLo, latHi, lngHi float64) countryBox {
	r := s2.RectFromLatLng(s2.LatLngFromDegrees(latLo, lngLo))
	r = r.AddPoint(s2.LatLngFromDegrees(latHi, lngHi))
	return countryBox{country: country, rect: r}
}

// countryBoxes covers the countries the postcode and state heuristics know
// about. Boxes overlap along borders (Great Lakes, Alaska panhandle); such
// points get no answer.
var countryBoxes = []countryBox{
	box("US", 24.4, -124.8, 49.0, -66.9),  // contiguous states
	box("US", 51.2, -179.9, 71.4, -129.9), // Alaska
	box("US", 18.9, -160.3, 22.3, -154.8), // Hawaii
	box("CA", 41.7, -141.0, 83.2, -52.6),
	box("AU", -43.7, 112.9, -10.6, 153.7),
	box("GB", 49.9, -8.7, 60.9, 1.8),
}

// CountryForPoint returns the country whose bounding boxes contain the
// point, or false when none or more than one country does. It is coarse and
// intended only as a default, in the same slot as a caller hint.
func CountryForPoint(lat, lng float64) (string, bool) {
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return "", false
	}
	match := ""
	for _, b := range countryBoxes {
		if !b.rect.ContainsLatLng(ll) || b.country == match {
			continue
		}
		if match != "" {
			return "", false
		}
		match = b.country
	}
	return match, match != ""
}
