// Package validation checks form input: emails, passwords, phone numbers,
// URLs, payment cards, usernames, ages, dates and postal codes.
//
// Every validator is a pure function returning a Result. A Result is either
// valid, or invalid with a human-readable reason describing the first check
// that failed. Validators keep no state and are safe for concurrent use.
//
//	res := validation.Email(input, validation.EmailConfig{})
//	if !res.IsValid() {
//	    showInline(res.ErrorMessage())
//	}
//
// Reasons are English by default. Built-in failures also carry a Code, so a
// form can render them in the user's language:
//
//	loc := locale.Default().Localizer("es")
//	msg := res.Localize(loc)
//
// ValidateAll aggregates several field results without short-circuiting.
package validation
