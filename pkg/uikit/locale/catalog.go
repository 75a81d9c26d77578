// Package locale holds the translated message catalog shared by uikit
// components.
//
// Messages ship embedded as go-i18n TOML files. Applications can layer their
// own translations on top with LoadFile or LoadBytes, in TOML or YAML.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLanguage is the source language of the embedded catalog and the
// fallback for messages missing from other languages.
var BaseLanguage = language.English

//go:embed locales/*.toml
var embeddedLocales embed.FS

// ErrReadOnly is returned when loading messages into the Default catalog.
var ErrReadOnly = errors.New("locale: catalog is read-only")

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Catalog is a set of translated messages. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	bundle   *i18n.Bundle
	readOnly bool
}

// New creates a catalog loaded with the embedded translations.
func New() (*Catalog, error) {
	bundle := i18n.NewBundle(BaseLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, entry := range entries {
		path := "locales/" + entry.Name()
		if _, err := bundle.LoadMessageFileFS(embeddedLocales, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Default returns a shared catalog holding only the embedded translations.
// It never changes after construction; load extra files into a catalog
// obtained from New instead.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(fmt.Sprintf("locale: embedded catalog is invalid: %v", err))
		}
		c.readOnly = true
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile adds the messages of a go-i18n message file. The language and
// format are taken from the file name, e.g. "active.fr.yaml".
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read message file: %w", err)
	}
	return c.LoadBytes(data, filepath.Base(path))
}

// LoadBytes adds messages from raw file contents; name follows the same
// convention as LoadFile.
func (c *Catalog) LoadBytes(data []byte, name string) error {
	if c.readOnly {
		return ErrReadOnly
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Languages lists the languages with at least one message.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bundle.LanguageTags()
}

// Match picks the supported language that best fits an Accept-Language
// style preference list such as "fr-CH, es;q=0.8".
func (c *Catalog) Match(accept string) language.Tag {
	return c.match(accept)
}

// match negotiates a list of BCP 47 tags or Accept-Language values against
// the catalog's languages. Unparseable entries are skipped.
func (c *Catalog) match(langs ...string) language.Tag {
	var prefs []language.Tag
	for _, l := range langs {
		tags, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			continue
		}
		prefs = append(prefs, tags...)
	}
	if len(prefs) == 0 {
		return BaseLanguage
	}
	supported := c.Languages()
	_, idx, _ := language.NewMatcher(supported).Match(prefs...)
	return supported[idx]
}

// Localizer returns a Localizer for the given language preferences. Each
// entry may be a BCP 47 tag or an Accept-Language value.
func (c *Catalog) Localizer(langs ...string) *Localizer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Localizer{
		catalog:   c,
		localizer: i18n.NewLocalizer(c.bundle, langs...),
		langs:     langs,
	}
}
