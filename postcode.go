package countryguess

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool { return (b|0x20) >= 'a' && (b|0x20) <= 'z' }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// LooksLikeUSZip reports whether s is a US ZIP code: five digits, or
// ZIP+4 in the form "12345-6789". Surrounding whitespace is not tolerated.
func LooksLikeUSZip(s string) bool {
	switch len(s) {
	case 5:
		return allDigits(s)
	case 10:
		return s[5] == '-' && allDigits(s[:5]) && allDigits(s[6:])
	}
	return false
}

// LooksLikeCAPostcode reports whether s has the Canadian "A1A 1A1" shape.
// Spaces are ignored anywhere in the input and letters may be in either case.
// The input is scanned once without copying; anything beyond the sixth
// significant character fails the match rather than being cut off.
func LooksLikeCAPostcode(s string) bool {
	n := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == ' ' {
			continue
		}
		if n == 6 {
			return false
		}
		if n%2 == 0 {
			if !isAlpha(b) {
				return false
			}
		} else if !isDigit(b) {
			return false
		}
		n++
	}
	return n == 6
}

// LooksLikeUKPostcode is a loose test for UK postcodes: 4 to 8 bytes long,
// containing at least one letter and one digit, and ending (ignoring
// trailing spaces) in two letters.
//
// It accepts plenty of strings that are not UK postcodes, such as "12ab".
// That is why it runs after the CA and US tests.
func LooksLikeUKPostcode(s string) bool {
	if len(s) < 4 || len(s) > 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for i := 0; i < len(s); i++ {
		switch {
		case isAlpha(s[i]):
			hasLetter = true
		case isDigit(s[i]):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return false
	}
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return end >= 2 && isAlpha(s[end-1]) && isAlpha(s[end-2])
}

// PostcodeCountry guesses a country from the shape of a postcode, testing
// CA, US and UK shapes in that order.
func PostcodeCountry(s string) (string, bool) {
	switch {
	case LooksLikeCAPostcode(s):
		return "CA", true
	case LooksLikeUSZip(s):
		return "US", true
	case LooksLikeUKPostcode(s):
		return "GB", true
	}
	return "", false
}
