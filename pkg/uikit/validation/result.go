package validation

import (
	"sync"

	"github.com/BrandonKowalski/uikit/pkg/uikit/locale"
)

// Code identifies why a value was rejected. Built-in codes double as message
// IDs in the locale catalog.
type Code string

const (
	CodeCustom Code = "Custom"

	CodeEmailEmpty           Code = "EmailEmpty"
	CodeEmailMalformed       Code = "EmailMalformed"
	CodeEmailConsecutiveDots Code = "EmailConsecutiveDots"
	CodeEmailBoundaryDot     Code = "EmailBoundaryDot"
	CodeEmailAtSign          Code = "EmailAtSign"

	CodePasswordEmpty            Code = "PasswordEmpty"
	CodePasswordTooShort         Code = "PasswordTooShort"
	CodePasswordMissingUppercase Code = "PasswordMissingUppercase"
	CodePasswordMissingLowercase Code = "PasswordMissingLowercase"
	CodePasswordMissingDigit     Code = "PasswordMissingDigit"
	CodePasswordMissingSpecial   Code = "PasswordMissingSpecial"

	CodePhoneEmpty   Code = "PhoneEmpty"
	CodePhoneInvalid Code = "PhoneInvalid"

	CodeURLEmpty             Code = "URLEmpty"
	CodeURLMalformed         Code = "URLMalformed"
	CodeURLMissingScheme     Code = "URLMissingScheme"
	CodeURLUnsupportedScheme Code = "URLUnsupportedScheme"
	CodeURLInsecure          Code = "URLInsecure"
	CodeURLMissingHost       Code = "URLMissingHost"

	CodeCardEmpty    Code = "CardEmpty"
	CodeCardLength   Code = "CardLength"
	CodeCardNonDigit Code = "CardNonDigit"
	CodeCardChecksum Code = "CardChecksum"

	CodeUsernameEmpty      Code = "UsernameEmpty"
	CodeUsernameTooShort   Code = "UsernameTooShort"
	CodeUsernameTooLong    Code = "UsernameTooLong"
	CodeUsernameCharacters Code = "UsernameCharacters"
	CodeUsernameBoundary   Code = "UsernameBoundary"

	CodeAgeTooLow  Code = "AgeTooLow"
	CodeAgeTooHigh Code = "AgeTooHigh"

	CodeDateTooEarly Code = "DateTooEarly"
	CodeDateTooLate  Code = "DateTooLate"

	CodePostalEmpty   Code = "PostalEmpty"
	CodePostalInvalid Code = "PostalInvalid"
	CodePostalLength  Code = "PostalLength"
)

var english = sync.OnceValue(func() *locale.Localizer {
	return locale.Default().Localizer(locale.BaseLanguage.String())
})

// Result is the outcome of a validation: valid, or invalid with a reason.
// The zero value is valid.
type Result struct {
	code   Code
	reason string
	params map[string]any
	plural bool
}

// Valid returns a passing result.
func Valid() Result {
	return Result{}
}

// Invalid returns a failing result with a caller-supplied reason.
func Invalid(reason string) Result {
	return Result{code: CodeCustom, reason: reason}
}

func invalid(code Code, params map[string]any) Result {
	return Result{
		code:   code,
		reason: english().Message(string(code), localizeParams(params, locale.BaseLanguage)),
		params: params,
	}
}

// invalidCount builds a result whose message has plural forms selected by count.
func invalidCount(code Code, count int) Result {
	params := map[string]any{"Count": count}
	return Result{
		code:   code,
		reason: english().Plural(string(code), count, nil),
		params: params,
		plural: true,
	}
}

// IsValid reports whether the value passed.
func (r Result) IsValid() bool {
	return r.code == ""
}

// ErrorMessage returns the English reason, or "" for a valid result.
func (r Result) ErrorMessage() string {
	return r.reason
}

// Code returns the failure code, or "" for a valid result.
func (r Result) Code() Code {
	return r.code
}

// Localize renders the reason with the given localizer. Custom reasons are
// returned unchanged.
func (r Result) Localize(l *locale.Localizer) string {
	switch {
	case r.IsValid():
		return ""
	case r.code == CodeCustom || l == nil:
		return r.reason
	}
	params := localizeParams(r.params, l.Tag())
	if r.plural {
		return l.Plural(string(r.code), r.params["Count"].(int), params)
	}
	return l.Message(string(r.code), params)
}

// Err returns nil for a valid result and an *Error otherwise.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return &Error{Code: r.code, Reason: r.reason}
}

// Error is the error form of an invalid Result.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}
