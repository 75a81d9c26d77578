package validation

import (
	"strings"
	"unicode/utf8"
)

// DefaultUsernameCharacters are the characters DefaultUsernameConfig allows.
const DefaultUsernameCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

// UsernameConfig configures Username.
type UsernameConfig struct {
	MinLength         int
	MaxLength         int
	AllowedCharacters string
}

// DefaultUsernameConfig allows 3 to 20 ASCII letters, digits, '_' and '-'.
func DefaultUsernameConfig() UsernameConfig {
	return UsernameConfig{
		MinLength:         3,
		MaxLength:         20,
		AllowedCharacters: DefaultUsernameCharacters,
	}
}

// Username validates a username. It may not start or end with '_' or '-'.
func Username(username string, cfg UsernameConfig) Result {
	if username == "" {
		return invalid(CodeUsernameEmpty, nil)
	}

	length := utf8.RuneCountInString(username)
	if length < cfg.MinLength {
		return invalidCount(CodeUsernameTooShort, cfg.MinLength)
	}
	if cfg.MaxLength > 0 && length > cfg.MaxLength {
		return invalidCount(CodeUsernameTooLong, cfg.MaxLength)
	}

	allowed := cfg.AllowedCharacters
	if allowed == "" {
		allowed = DefaultUsernameCharacters
	}
	for _, r := range username {
		if !strings.ContainsRune(allowed, r) {
			return invalid(CodeUsernameCharacters, nil)
		}
	}

	if strings.ContainsAny(username[:1], "_-") || strings.ContainsAny(username[len(username)-1:], "_-") {
		return invalid(CodeUsernameBoundary, nil)
	}
	return Valid()
}
