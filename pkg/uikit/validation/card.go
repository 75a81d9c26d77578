package validation

import "strings"

const (
	minCardDigits = 13
	maxCardDigits = 19
)

// CreditCard validates a payment card number: 13 to 19 digits passing the
// Luhn checksum. Spaces and dashes between digit groups are ignored.
func CreditCard(number string) Result {
	cleaned := stripCardSeparators(number)
	if cleaned == "" {
		return invalid(CodeCardEmpty, nil)
	}
	if len(cleaned) < minCardDigits || len(cleaned) > maxCardDigits {
		return invalid(CodeCardLength, map[string]any{"Min": minCardDigits, "Max": maxCardDigits})
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return invalid(CodeCardNonDigit, nil)
		}
	}
	if !luhn(cleaned) {
		return invalid(CodeCardChecksum, nil)
	}
	return Valid()
}

// luhn reports whether an all-digit string passes the Luhn checksum.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func stripCardSeparators(number string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return -1
		}
		return r
	}, number)
}

// CardType is a payment card network.
type CardType int

const (
	CardUnknown CardType = iota
	CardVisa
	CardMastercard
	CardAmex
	CardDiscover
)

func (t CardType) String() string {
	switch t {
	case CardVisa:
		return "Visa"
	case CardMastercard:
		return "Mastercard"
	case CardAmex:
		return "American Express"
	case CardDiscover:
		return "Discover"
	default:
		return "Unknown"
	}
}

// CardTypeOf detects the card network from the number's prefix. It never
// fails; unrecognised prefixes are CardUnknown.
func CardTypeOf(number string) CardType {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	switch {
	case strings.HasPrefix(digits, "4"):
		return CardVisa
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return CardMastercard
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return CardAmex
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return CardDiscover
	default:
		return CardUnknown
	}
}
