package validation

import (
	"net/url"
	"strings"
)

// URLConfig configures URL.
type URLConfig struct {
	RequireHTTPS bool
}

// URL validates an absolute http or https URL with a host.
func URL(raw string, cfg URLConfig) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return invalid(CodeURLEmpty, nil)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return invalid(CodeURLMalformed, nil)
	}

	scheme := strings.ToLower(u.Scheme)
	switch {
	case scheme == "":
		return invalid(CodeURLMissingScheme, nil)
	case scheme != "http" && scheme != "https":
		return invalid(CodeURLUnsupportedScheme, nil)
	case cfg.RequireHTTPS && scheme != "https":
		return invalid(CodeURLInsecure, nil)
	}

	if u.Hostname() == "" {
		return invalid(CodeURLMissingHost, nil)
	}
	return Valid()
}
