package countryguess

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrEmptyAddress is returned by Parse for a blank address.
var ErrEmptyAddress = errors.New("countryguess: empty address")

// ErrNoResult is returned when the address parser produced no result.
var ErrNoResult = errors.New("countryguess: address parser returned no result")

// maxAddressLen bounds the input handed to the address parser.
const maxAddressLen = 1024

// ParseOptions are passed through to the address parser. Country doubles as
// the hint for country inference.
type ParseOptions struct {
	Language string // e.g. "en"; empty lets the parser decide
	Country  string // e.g. "US"; empty means no hint
}

// AddressParser turns a free-text address into labelled components, in the
// order the parser emits them. A nil slice with a nil error is treated as
// "no result".
type AddressParser interface {
	ParseAddress(address string, opts ParseOptions) ([]Component, error)
}

// AddressParserFunc adapts a function to AddressParser.
type AddressParserFunc func(address string, opts ParseOptions) ([]Component, error)

func (f AddressParserFunc) ParseAddress(address string, opts ParseOptions) ([]Component, error) {
	return f(address, opts)
}

// Config contains configuration options for a Guesser.
type Config struct {
	DefaultCountry string      // hint used when ParseOptions.Country is empty
	Lat, Lng       float64     // coordinates used for a hint when no other hint is set
	HasPoint       bool        // whether Lat/Lng are set
	Logger         *log.Logger // default: log.Default()
}

// Option is a functional option for configuring a Guesser.
type Option func(*Config)

// WithDefaultCountry sets the hint used when a call supplies none.
func WithDefaultCountry(code string) Option {
	return func(c *Config) {
		c.DefaultCountry = code
	}
}

// WithPoint derives a hint from coordinates (see CountryForPoint) when
// neither the call nor WithDefaultCountry supplies one.
func WithPoint(lat, lng float64) Option {
	return func(c *Config) {
		c.Lat, c.Lng, c.HasPoint = lat, lng, true
	}
}

// WithLogger sets the logger for parser failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func defaultConfig() *Config {
	return &Config{Logger: log.Default()}
}

// Guesser parses addresses and attaches a country guess to the result.
// Safe for concurrent use if the underlying AddressParser is.
type Guesser struct {
	parser AddressParser
	config *Config
}

// New creates a Guesser around an address parser.
//
// Example:
//
//	g := countryguess.New(parser, countryguess.WithDefaultCountry("US"))
//	resp, err := g.Parse("781 Franklin Ave Brooklyn NY 11216", countryguess.ParseOptions{})
//	if err != nil {
//	    return err
//	}
//	code, ok := resp.Country()
func New(parser AddressParser, opts ...Option) *Guesser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Guesser{parser: parser, config: cfg}
}

// Response is a parsed address with its country guess.
type Response struct {
	Components   []Component
	CountryGuess string // "" when Source is SourceNone
	Source       Source
}

// Country returns the guess, or false when there is none.
func (r *Response) Country() (string, bool) {
	if r == nil || r.Source == SourceNone {
		return "", false
	}
	return r.CountryGuess, true
}

// Get returns the value of the first component with the given label.
func (r *Response) Get(label string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, c := range r.Components {
		if c.Label == label {
			return c.Value, true
		}
	}
	return "", false
}

// hint picks the inference hint: the call's country, then the configured
// default, then the configured point.
func (g *Guesser) hint(opts ParseOptions) string {
	if opts.Country != "" {
		return opts.Country
	}
	if g.config.DefaultCountry != "" {
		return g.config.DefaultCountry
	}
	if g.config.HasPoint {
		if cc, ok := CountryForPoint(g.config.Lat, g.config.Lng); ok {
			return cc
		}
	}
	return ""
}

// Parse runs the address parser and infers the country from its output.
// When the parser fails no inference is attempted and the error is returned.
func (g *Guesser) Parse(address string, opts ParseOptions) (*Response, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if len(address) > maxAddressLen {
		return nil, fmt.Errorf("countryguess: address is %d bytes, limit is %d", len(address), maxAddressLen)
	}

	components, err := g.parser.ParseAddress(address, opts)
	if err != nil {
		g.config.Logger.Printf("error: address parser failed: %v", err)
		return nil, fmt.Errorf("countryguess: parse address: %w", err)
	}
	if components == nil {
		g.config.Logger.Printf("error: address parser returned no result")
		return nil, ErrNoResult
	}

	guess := Infer(components, g.hint(opts))
	return &Response{
		Components:   components,
		CountryGuess: guess.Country,
		Source:       guess.Source,
	}, nil
}
