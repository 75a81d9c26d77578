package uikit

import (
	"errors"
	"fmt"
)

// ErrOnboardingNotPresented is returned by App.FinishOnboarding when the
// onboarding flow is not on screen.
var ErrOnboardingNotPresented = errors.New("onboarding is not being presented")

// ConfigError reports that the application context could not be built from
// the given options (unreadable options file, log file, translations or
// settings store). The consuming app usually cannot recover from it.
type ConfigError struct {
	Op  string // Step that failed (e.g., "read_options", "open_log")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uikit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("uikit: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
