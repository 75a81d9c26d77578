package validation

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// normalizeCountry upper-cases a country code and maps the common "UK"
// spelling to its ISO 3166 code.
func normalizeCountry(country string) string {
	c := strings.ToUpper(strings.TrimSpace(country))
	if c == "UK" {
		return "GB"
	}
	return c
}

// countryName returns the display name of an ISO 3166 code in lang, or the
// code itself when it is not a known region.
func countryName(code string, lang language.Tag) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := display.Tags(lang).Name(region); name != "" {
		return name
	}
	return code
}

// localizeParams returns params with the "Country" code replaced by its
// display name in lang. params itself is left untouched.
func localizeParams(params map[string]any, lang language.Tag) map[string]any {
	code, ok := params["Country"].(string)
	if !ok {
		return params
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	out["Country"] = countryName(code, lang)
	return out
}
