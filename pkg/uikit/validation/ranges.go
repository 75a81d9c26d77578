package validation

import "time"

// AgeConfig bounds Age, inclusive.
type AgeConfig struct {
	Minimum int
	Maximum int
}

// DefaultAgeConfig accepts 0 through 150.
func DefaultAgeConfig() AgeConfig {
	return AgeConfig{Minimum: 0, Maximum: 150}
}

// Age validates that age lies within cfg.
func Age(age int, cfg AgeConfig) Result {
	if age < cfg.Minimum {
		return invalid(CodeAgeTooLow, map[string]any{"Limit": cfg.Minimum})
	}
	if age > cfg.Maximum {
		return invalid(CodeAgeTooHigh, map[string]any{"Limit": cfg.Maximum})
	}
	return Valid()
}

// DateLayout formats date bounds in messages.
const DateLayout = "2006-01-02"

// DateConfig bounds Date, inclusive. A zero bound is unbounded.
type DateConfig struct {
	NotBefore time.Time
	NotAfter  time.Time
}

// Date validates that t lies within cfg.
func Date(t time.Time, cfg DateConfig) Result {
	if !cfg.NotBefore.IsZero() && t.Before(cfg.NotBefore) {
		return invalid(CodeDateTooEarly, map[string]any{"Limit": cfg.NotBefore.Format(DateLayout)})
	}
	if !cfg.NotAfter.IsZero() && t.After(cfg.NotAfter) {
		return invalid(CodeDateTooLate, map[string]any{"Limit": cfg.NotAfter.Format(DateLayout)})
	}
	return Valid()
}
