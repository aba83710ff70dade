package countryguess

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

// fixtureParser returns canned components, shaped like libpostal output,
// for the addresses it knows.
type fixtureParser map[string][]Component

func (p fixtureParser) ParseAddress(address string, _ ParseOptions) ([]Component, error) {
	c, ok := p[address]
	if !ok {
		return nil, nil
	}
	return c, nil
}

var fixtures = fixtureParser{
	"781 Franklin Ave Crown Heights Brooklyn NY 11216": comps(
		"house_number", "781", "road", "franklin ave", "suburb", "crown heights",
		"city_district", "brooklyn", "state", "ny", "postcode", "11216"),
	"1 Infinite Loop, Cupertino, CA 95014": comps(
		"house_number", "1", "road", "infinite loop", "city", "cupertino",
		"state", "ca", "postcode", "95014"),
	"332 Menzies Street, Victoria, BC V8V 2G9": comps(
		"house_number", "332", "road", "menzies street", "city", "victoria",
		"state", "bc", "postcode", "v8v 2g9"),
	"Bennelong Point, Sydney NSW 2000": comps(
		"road", "bennelong point", "city", "sydney", "state", "nsw", "postcode", "2000"),
	"Buckingham Palace, London, UK": comps(
		"house", "buckingham palace", "city", "london", "country", "uk"),
	"10 Downing St, London, SW1A 2AA": comps(
		"house_number", "10", "road", "downing st", "city", "london", "postcode", "sw1a 2aa"),
	"Space Needle, Seattle, WA, USA": comps(
		"house", "space needle", "city", "seattle", "state", "wa", "country", "usa"),
	"Hauptbahnhof, Frankfurt am Main, Deutschland": comps(
		"house", "hauptbahnhof", "city", "frankfurt am main", "country", "deutschland"),
	"Rajpath, New Delhi, India": comps(
		"road", "rajpath", "city", "new delhi", "country", "india"),
	"Main Street 123": comps("road", "main street", "house_number", "123"),
	"62704":           comps("postcode", "62704"),
	"M5V 3L9":         comps("postcode", "m5v 3l9"),
	"NW1 6XE":         comps("postcode", "nw1 6xe"),
	"Just a random building with no country": comps(
		"house", "just a random building with no country"),
}

func TestGuesserParse(t *testing.T) {
	g := New(fixtures)

	tests := []struct {
		address    string
		opts       ParseOptions
		wantGuess  string
		wantSource Source
	}{
		{"781 Franklin Ave Crown Heights Brooklyn NY 11216", ParseOptions{}, "US", SourceState},
		{"1 Infinite Loop, Cupertino, CA 95014", ParseOptions{}, "US", SourceState},
		{"332 Menzies Street, Victoria, BC V8V 2G9", ParseOptions{}, "CA", SourceState},
		{"Bennelong Point, Sydney NSW 2000", ParseOptions{}, "AU", SourceState},
		{"Buckingham Palace, London, UK", ParseOptions{}, "GB", SourceCountry},
		{"10 Downing St, London, SW1A 2AA", ParseOptions{}, "GB", SourcePostcode},
		{"Space Needle, Seattle, WA, USA", ParseOptions{}, "US", SourceCountry},
		{"Hauptbahnhof, Frankfurt am Main, Deutschland", ParseOptions{}, "DE", SourceCountry},
		{"Hauptbahnhof, Frankfurt am Main, Deutschland", ParseOptions{Country: "US"}, "DE", SourceCountry},
		{"Rajpath, New Delhi, India", ParseOptions{}, "IN", SourceCountry},
		{"Main Street 123", ParseOptions{Country: "US"}, "US", SourceHint},
		{"62704", ParseOptions{}, "US", SourcePostcode},
		{"M5V 3L9", ParseOptions{}, "CA", SourcePostcode},
		{"NW1 6XE", ParseOptions{}, "GB", SourcePostcode},
		{"Just a random building with no country", ParseOptions{}, "", SourceNone},
	}

	for _, tc := range tests {
		t.Run(tc.address, func(t *testing.T) {
			resp, err := g.Parse(tc.address, tc.opts)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.address, err)
			}
			if resp.CountryGuess != tc.wantGuess || resp.Source != tc.wantSource {
				t.Errorf("Parse(%q) guess = (%q, %s), want (%q, %s)",
					tc.address, resp.CountryGuess, resp.Source, tc.wantGuess, tc.wantSource)
			}
			got, ok := resp.Country()
			if got != tc.wantGuess || ok != (tc.wantSource != SourceNone) {
				t.Errorf("Response.Country() = (%q, %v)", got, ok)
			}
		})
	}
}

func TestGuesserHintPrecedence(t *testing.T) {
	const addr = "Main Street 123"

	tests := []struct {
		name string
		opts []Option
		call ParseOptions
		want string
	}{
		{"none", nil, ParseOptions{}, ""},
		{"default country", []Option{WithDefaultCountry("GB")}, ParseOptions{}, "GB"},
		{"call beats default", []Option{WithDefaultCountry("GB")}, ParseOptions{Country: "AU"}, "AU"},
		{"point", []Option{WithPoint(-33.8688, 151.2093)}, ParseOptions{}, "AU"},
		{"default beats point", []Option{WithDefaultCountry("GB"), WithPoint(-33.8688, 151.2093)}, ParseOptions{}, "GB"},
		{"ambiguous point", []Option{WithPoint(43.6532, -79.3832)}, ParseOptions{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := New(fixtures, tc.opts...).Parse(addr, tc.call)
			if err != nil {
				t.Fatal(err)
			}
			if resp.CountryGuess != tc.want {
				t.Errorf("guess = %q, want %q", resp.CountryGuess, tc.want)
			}
		})
	}

	// A point-derived hint is still beaten by a parsed country.
	resp, err := New(fixtures, WithPoint(-33.8688, 151.2093)).Parse("Rajpath, New Delhi, India", ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.CountryGuess != "IN" {
		t.Errorf("guess = %q, want IN", resp.CountryGuess)
	}
}

func TestGuesserParseErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	parserErr := errors.New("model not loaded")
	failing := AddressParserFunc(func(string, ParseOptions) ([]Component, error) {
		return nil, parserErr
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := New(fixtures).Parse("   ", ParseOptions{})
		if !errors.Is(err, ErrEmptyAddress) {
			t.Errorf("err = %v, want ErrEmptyAddress", err)
		}
	})

	t.Run("overlong address", func(t *testing.T) {
		resp, err := New(fixtures).Parse(strings.Repeat("a", maxAddressLen+1), ParseOptions{})
		if err == nil || resp != nil {
			t.Errorf("Parse(overlong) = (%v, %v), want error", resp, err)
		}
	})

	t.Run("parser error", func(t *testing.T) {
		buf.Reset()
		resp, err := New(failing, WithLogger(logger), WithDefaultCountry("US")).Parse("anything", ParseOptions{})
		if resp != nil {
			t.Errorf("resp = %+v, want nil", resp)
		}
		if !errors.Is(err, parserErr) {
			t.Errorf("err = %v, want wrapped parser error", err)
		}
		if !strings.Contains(buf.String(), "error: address parser failed") {
			t.Errorf("log = %q, want parser failure", buf.String())
		}
	})

	t.Run("no result", func(t *testing.T) {
		buf.Reset()
		resp, err := New(fixtures, WithLogger(logger)).Parse("unknown address", ParseOptions{Country: "US"})
		if resp != nil || !errors.Is(err, ErrNoResult) {
			t.Errorf("Parse(unknown) = (%v, %v), want ErrNoResult", resp, err)
		}
		if !strings.Contains(buf.String(), "no result") {
			t.Errorf("log = %q, want no-result message", buf.String())
		}
	})
}

func TestParseOptionsPassedThrough(t *testing.T) {
	var got ParseOptions
	p := AddressParserFunc(func(_ string, opts ParseOptions) ([]Component, error) {
		got = opts
		return []Component{}, nil
	})
	want := ParseOptions{Language: "de", Country: "DE"}
	resp, err := New(p).Parse("Pariser Platz", want)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("parser saw %+v, want %+v", got, want)
	}
	if resp.CountryGuess != "DE" || resp.Source != SourceHint {
		t.Errorf("guess = (%q, %s), want (DE, hint)", resp.CountryGuess, resp.Source)
	}
}

func TestResponseGet(t *testing.T) {
	resp, err := New(fixtures).Parse("781 Franklin Ave Crown Heights Brooklyn NY 11216", ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := resp.Get("postcode"); !ok || v != "11216" {
		t.Errorf("Get(postcode) = (%q, %v), want (11216, true)", v, ok)
	}
	if _, ok := resp.Get("country"); ok {
		t.Error("Get(country) found a value, want none")
	}

	var nilResp *Response
	if _, ok := nilResp.Get("state"); ok {
		t.Error("nil Response Get returned ok")
	}
	if _, ok := nilResp.Country(); ok {
		t.Error("nil Response Country returned ok")
	}
}
