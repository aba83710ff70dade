//go:build libpostal

package countryguess

import (
	postal "github.com/openvenues/gopostal/parser"
)

// LibpostalParser is an AddressParser backed by libpostal through gopostal.
// Building it requires the libpostal C library and the "libpostal" build tag.
type LibpostalParser struct{}

var _ AddressParser = LibpostalParser{}

// ParseAddress implements AddressParser.
func (LibpostalParser) ParseAddress(address string, opts ParseOptions) ([]Component, error) {
	parsed := postal.ParseAddressOptions(address, postal.ParserOptions{
		Language: opts.Language,
		Country:  opts.Country,
	})
	if parsed == nil {
		return nil, nil
	}
	components := make([]Component, len(parsed))
	for i, p := range parsed {
		components[i] = Component{Label: p.Label, Value: p.Value}
	}
	return components, nil
}
