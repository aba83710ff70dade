package countryguess

// Component labels consulted by the inference. Other labels pass through.
const (
	LabelCountry  = "country"
	LabelState    = "state"
	LabelPostcode = "postcode"
)

// Component is one labelled piece of a parsed address, e.g. {"state", "ny"}.
// Values are expected lowercase, as the address parser normalises them.
type Component struct {
	Label string
	Value string
}

// Source records which signal produced a guess.
type Source uint8

const (
	SourceNone       Source = iota // no opinion
	SourceHint                     // caller-supplied default
	SourceCountry                  // "country" component found in the alias table
	SourceCountryRaw               // "country" component returned verbatim
	SourceState                    // state/province table
	SourcePostcode                 // postcode shape
)

var sourceNames = [...]string{
	SourceNone:       "none",
	SourceHint:       "hint",
	SourceCountry:    "country",
	SourceCountryRaw: "country-raw",
	SourceState:      "state",
	SourcePostcode:   "postcode",
}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "unknown"
}

// Guess is the outcome of a country inference.
type Guess struct {
	Country string // ISO2 code, raw country value, or "" when Source is SourceNone
	Source  Source
}

// OK reports whether the inference produced an opinion.
func (g Guess) OK() bool { return g.Source != SourceNone }

// Infer guesses the country of a parsed address.
//
// Signals are ranked: a "country" component beats everything, including the
// hint, and ends the scan. The first state found in the US, CA or AU tables
// is used only when no hint was given. The first postcode is tested by shape
// only when nothing else decided. Components with an empty label or value
// are skipped.
func Infer(components []Component, hint string) Guess {
	var g Guess
	if hint != "" {
		g = Guess{Country: hint, Source: SourceHint}
	}

	var postcode string
	havePostcode := false

scan:
	for _, c := range components {
		if c.Label == "" || c.Value == "" {
			continue
		}
		switch c.Label {
		case LabelCountry:
			if iso2, ok := ResolveAlias(c.Value); ok {
				g = Guess{Country: iso2, Source: SourceCountry}
			} else {
				g = Guess{Country: c.Value, Source: SourceCountryRaw}
			}
			break scan
		case LabelState:
			if g.OK() {
				continue
			}
			if iso2, ok := RegionCountry(c.Value); ok {
				g = Guess{Country: iso2, Source: SourceState}
			}
		case LabelPostcode:
			if !havePostcode {
				postcode, havePostcode = c.Value, true
			}
		}
	}

	if !g.OK() && havePostcode {
		if iso2, ok := PostcodeCountry(postcode); ok {
			g = Guess{Country: iso2, Source: SourcePostcode}
		}
	}
	return g
}

// InferCountry returns the guessed country code, or false when there is no
// decisive signal. An empty hint means no hint.
func InferCountry(components []Component, hint string) (string, bool) {
	g := Infer(components, hint)
	return g.Country, g.OK()
}
