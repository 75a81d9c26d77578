package validation

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

var emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// EmailConfig configures Email.
type EmailConfig struct {
	AllowEmpty bool // Treat an empty (or all-whitespace) value as valid
}

// Email validates an email address. Surrounding whitespace is ignored.
func Email(email string, cfg EmailConfig) Result {
	email = strings.TrimSpace(email)
	if email == "" {
		if cfg.AllowEmpty {
			return Valid()
		}
		return invalid(CodeEmailEmpty, nil)
	}

	if strings.Count(email, "@") != 1 {
		return invalid(CodeEmailAtSign, nil)
	}

	if !emailPattern.MatchString(email) {
		return invalid(CodeEmailMalformed, nil)
	}

	if strings.Contains(email, "..") {
		return invalid(CodeEmailConsecutiveDots, nil)
	}

	local, domain, _ := strings.Cut(email, "@")
	if hasBoundaryDot(local) || hasBoundaryDot(domain) {
		return invalid(CodeEmailBoundaryDot, nil)
	}

	return Valid()
}

func hasBoundaryDot(s string) bool {
	return strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".")
}

// commonEmailDomains is ordered by how often each domain is mistyped in
// practice; ties in distance resolve to the earlier entry.
var commonEmailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"icloud.com",
	"aol.com",
	"live.com",
	"protonmail.com",
	"msn.com",
	"me.com",
}

// SuggestEmail proposes a correction for an address whose domain looks like
// a typo of a common mail provider, e.g. "ann@gmial.com" -> "ann@gmail.com".
// It returns "" when the address has no @, already uses a known domain, or
// is not close to any.
func SuggestEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	local, domain := email[:at], strings.ToLower(email[at+1:])

	// Short domains sit close to many legitimate ones.
	maxDistance := 2
	if len(domain) < 8 {
		maxDistance = 1
	}

	best, bestDistance := "", maxDistance+1
	for _, candidate := range commonEmailDomains {
		d := levenshtein.ComputeDistance(domain, candidate)
		if d == 0 {
			return ""
		}
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if best == "" {
		return ""
	}
	return local + "@" + best
}
