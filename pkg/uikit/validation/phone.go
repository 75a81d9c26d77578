package validation

import (
	"regexp"
	"strings"
)

var phonePatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^(\+?1)?[2-9][0-9]{2}[2-9][0-9]{6}$`),
	"CA": regexp.MustCompile(`^(\+?1)?[2-9][0-9]{2}[2-9][0-9]{6}$`),
	"GB": regexp.MustCompile(`^(\+44|0)[1-9][0-9]{9}$`),
	"FR": regexp.MustCompile(`^(\+33|0)[1-9][0-9]{8}$`),
	"DE": regexp.MustCompile(`^(\+49|0)[1-9][0-9]{6,13}$`),
	"JP": regexp.MustCompile(`^(\+81|0)[1-9][0-9]{8,9}$`),
	"IN": regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`),
	"AU": regexp.MustCompile(`^(\+61|0)[2-478][0-9]{8}$`),
}

var internationalPhonePattern = regexp.MustCompile(`^\+[0-9]{7,15}$`)

// PhoneConfig configures Phone.
type PhoneConfig struct {
	Country    string // ISO 3166 alpha-2 code; "UK" is accepted for GB
	AllowEmpty bool
}

// DefaultPhoneConfig validates US numbers.
func DefaultPhoneConfig() PhoneConfig {
	return PhoneConfig{Country: "US"}
}

// Phone validates a phone number for cfg.Country. Formatting characters are
// stripped first, keeping only digits and '+'. Countries without a pattern
// fall back to E.164 style: '+' followed by 7 to 15 digits.
func Phone(phone string, cfg PhoneConfig) Result {
	if strings.TrimSpace(phone) == "" {
		if cfg.AllowEmpty {
			return Valid()
		}
		return invalid(CodePhoneEmpty, nil)
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, phone)

	country := normalizeCountry(cfg.Country)
	pattern, ok := phonePatterns[country]
	if !ok {
		pattern = internationalPhonePattern
	}
	if !pattern.MatchString(cleaned) {
		return invalid(CodePhoneInvalid, map[string]any{"Country": country})
	}
	return Valid()
}
