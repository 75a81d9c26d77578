package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Localizer renders catalog messages for one set of language preferences.
type Localizer struct {
	catalog   *Catalog
	localizer *i18n.Localizer
	langs     []string
}

// Tag returns the catalog language that best fits the localizer's
// preferences, BaseLanguage when none fits.
func (l *Localizer) Tag() language.Tag {
	return l.catalog.match(l.langs...)
}

// Message renders the message with the given ID. Messages missing from the
// preferred languages fall back to BaseLanguage; unknown IDs render as the ID.
func (l *Localizer) Message(id string, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural renders a message that has plural forms. count selects the form and
// is exposed to the template as .Count unless data already sets it.
func (l *Localizer) Plural(id string, count int, data map[string]any) string {
	merged := make(map[string]any, len(data)+1)
	merged["Count"] = count
	for k, v := range data {
		merged[k] = v
	}
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: merged, PluralCount: count})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	l.catalog.mu.RLock()
	defer l.catalog.mu.RUnlock()

	// A base-language fallback comes back together with a not-found error.
	msg, _ := l.localizer.Localize(cfg)
	if msg == "" {
		return cfg.MessageID
	}
	return msg
}
