package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSpecialCharacters is the special-character set accepted by
// DefaultPasswordConfig.
const DefaultSpecialCharacters = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// PasswordConfig configures Password.
type PasswordConfig struct {
	MinLength         int
	RequireUppercase  bool
	RequireLowercase  bool
	RequireDigit      bool
	RequireSpecial    bool
	SpecialCharacters string // Characters that satisfy RequireSpecial
}

// DefaultPasswordConfig requires eight characters with at least one of each
// character class.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:         8,
		RequireUppercase:  true,
		RequireLowercase:  true,
		RequireDigit:      true,
		RequireSpecial:    true,
		SpecialCharacters: DefaultSpecialCharacters,
	}
}

// Password validates a password against cfg. Checks run in order: empty,
// length, uppercase, lowercase, digit, special.
func Password(password string, cfg PasswordConfig) Result {
	if password == "" {
		return invalid(CodePasswordEmpty, nil)
	}
	if utf8.RuneCountInString(password) < cfg.MinLength {
		return invalidCount(CodePasswordTooShort, cfg.MinLength)
	}
	if cfg.RequireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		return invalid(CodePasswordMissingUppercase, nil)
	}
	if cfg.RequireLowercase && !strings.ContainsFunc(password, unicode.IsLower) {
		return invalid(CodePasswordMissingLowercase, nil)
	}
	if cfg.RequireDigit && !strings.ContainsFunc(password, unicode.IsDigit) {
		return invalid(CodePasswordMissingDigit, nil)
	}
	if cfg.RequireSpecial {
		special := cfg.SpecialCharacters
		if special == "" {
			special = DefaultSpecialCharacters
		}
		if !strings.ContainsAny(password, special) {
			return invalid(CodePasswordMissingSpecial, map[string]any{"Characters": special})
		}
	}
	return Valid()
}

// StrengthLevel buckets a password strength score.
type StrengthLevel int

const (
	StrengthWeak StrengthLevel = iota
	StrengthMedium
	StrengthStrong
	StrengthVeryStrong
)

func (l StrengthLevel) String() string {
	switch l {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	case StrengthVeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// MaxStrengthScore is the highest score PasswordStrength can award.
const MaxStrengthScore = 8

// Strength is the result of PasswordStrength.
type Strength struct {
	Score int
	Level StrengthLevel
}

var weakPatterns = []string{"123", "abc", "password", "qwerty", "admin"}

// PasswordStrength scores a password. It never fails.
//
// One point each for a length of at least 8, 12 and 16; one point per
// character class present (uppercase, lowercase, digit, other symbol); one
// point when no common weak pattern appears. Scores 0-2 are weak, 3-5
// medium, 6-7 strong and 8 very strong.
func PasswordStrength(password string) Strength {
	score := 0

	length := utf8.RuneCountInString(password)
	for _, tier := range []int{8, 12, 16} {
		if length >= tier {
			score++
		}
	}

	classes := []func(rune) bool{unicode.IsUpper, unicode.IsLower, unicode.IsDigit, isSymbol}
	for _, class := range classes {
		if strings.ContainsFunc(password, class) {
			score++
		}
	}

	if !containsWeakPattern(password) {
		score++
	}

	return Strength{Score: score, Level: strengthLevel(score)}
}

func strengthLevel(score int) StrengthLevel {
	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 5:
		return StrengthMedium
	case score <= 7:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

func isSymbol(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}

func containsWeakPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range weakPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
