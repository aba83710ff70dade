// Command countryguess infers a country from parsed address components.
//
// Usage:
//
//	countryguess [-hint CC] [-lat F -lng F] label=value ...
//
// Example:
//
//	countryguess state=ny postcode=11216
//	US	state
//
// Prints "-" when there is no decisive signal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/andreiashu/countryguess"
)

func main() {
	hint := flag.String("hint", "", "default country code, beaten by a parsed country")
	lat := flag.Float64("lat", 0, "latitude used for a default country when -hint is empty")
	lng := flag.Float64("lng", 0, "longitude used for a default country when -hint is empty")
	flag.Parse()

	components, err := parseComponents(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	h := *hint
	if h == "" && isFlagSet("lat") && isFlagSet("lng") {
		h, _ = countryguess.CountryForPoint(*lat, *lng)
	}

	guess := countryguess.Infer(components, h)
	if !guess.OK() {
		fmt.Println("-")
		return
	}
	fmt.Printf("%s\t%s\n", guess.Country, guess.Source)

	if guess.Source == countryguess.SourceCountryRaw {
		if alias, iso2, ok := countryguess.SuggestAlias(guess.Country, 2); ok {
			fmt.Printf("did you mean %q (%s)?\n", alias, iso2)
		}
	}
}

func parseComponents(args []string) ([]countryguess.Component, error) {
	components := make([]countryguess.Component, 0, len(args))
	for _, arg := range args {
		label, value, ok := strings.Cut(arg, "=")
		if !ok || label == "" {
			return nil, fmt.Errorf("component %q is not label=value", arg)
		}
		components = append(components, countryguess.Component{Label: label, Value: value})
	}
	return components, nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
