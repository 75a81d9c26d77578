package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var postalPatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`),
	"CA": regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z][ -]?[0-9][A-Za-z][0-9]$`),
	"GB": regexp.MustCompile(`^[A-Za-z]{1,2}[0-9][A-Za-z0-9]? ?[0-9][A-Za-z]{2}$`),
	"FR": regexp.MustCompile(`^[0-9]{5}$`),
	"DE": regexp.MustCompile(`^[0-9]{5}$`),
	"JP": regexp.MustCompile(`^[0-9]{3}-?[0-9]{4}$`),
}

const (
	minFallbackPostalLength = 3
	maxFallbackPostalLength = 10
)

// PostalCode validates a postal code for country. Countries without a
// pattern only get a length check of 3 to 10 characters.
func PostalCode(code, country string) Result {
	code = strings.TrimSpace(code)
	if code == "" {
		return invalid(CodePostalEmpty, nil)
	}

	c := normalizeCountry(country)
	if pattern, ok := postalPatterns[c]; ok {
		if !pattern.MatchString(code) {
			return invalid(CodePostalInvalid, map[string]any{"Country": c})
		}
		return Valid()
	}

	if n := utf8.RuneCountInString(code); n < minFallbackPostalLength || n > maxFallbackPostalLength {
		return invalid(CodePostalLength, map[string]any{"Min": minFallbackPostalLength, "Max": maxFallbackPostalLength})
	}
	return Valid()
}
