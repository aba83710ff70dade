// Package countryguess attaches a best-effort ISO 3166-1 alpha-2 country
// code to the output of an address parser.
//
// The guess is made from the parser's labelled components, in order of
// confidence:
//
//  1. a "country" component, mapped through a small alias table or returned
//     verbatim when unknown; it beats any caller hint
//  2. the caller hint, if one was given
//  3. the first "state" component found in the US, CA or AU region tables
//  4. the shape of the first "postcode" component (CA, then US, then UK)
//
// Absence of a guess is a normal outcome, not an error. All lookup tables are
// read-only after package initialisation, so inference is safe for
// concurrent use.
//
// The address parser itself is an external collaborator behind the
// AddressParser interface. Building with the "libpostal" tag adds
// LibpostalParser, backed by libpostal.
package countryguess
