// Package dates has calendar helpers for display code.
//
// Day boundaries are computed in the location of the time passed in.
package dates

import (
	"time"

	"github.com/BrandonKowalski/uikit/pkg/uikit/locale"
)

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// AddDays moves t by n calendar days, keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsSameDay reports whether a and b fall on the same calendar day in a's
// location.
func IsSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts calendar days from a to b, negative if b is earlier.
// Both are interpreted in a's location.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	// UTC avoids daylight-saving days that are not 24 hours long.
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Age returns the number of whole years from birth to now.
func Age(birth, now time.Time) int {
	now = now.In(birth.Location())
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// Relative describes t relative to now, e.g. "5 minutes ago" or "in 2 days".
// Anything under a minute away is "just now". A nil localizer uses the
// default catalog in the base language.
func Relative(l *locale.Localizer, t, now time.Time) string {
	if l == nil {
		l = locale.Default().Localizer(locale.BaseLanguage.String())
	}

	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var id string
	var count int
	switch {
	case d < time.Minute:
		return l.Message("RelativeNow", nil)
	case d < time.Hour:
		count = int(d / time.Minute)
		id = pick(future, "RelativeInMinutes", "RelativeMinutesAgo")
	case d < 24*time.Hour:
		count = int(d / time.Hour)
		id = pick(future, "RelativeInHours", "RelativeHoursAgo")
	default:
		count = int(d / (24 * time.Hour))
		id = pick(future, "RelativeInDays", "RelativeDaysAgo")
	}
	return l.Plural(id, count, nil)
}

func pick(future bool, ahead, behind string) string {
	if future {
		return ahead
	}
	return behind
}
