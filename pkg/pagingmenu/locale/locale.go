// Package locale resolves tab titles from translated message files.
// Message files are TOML, named by language (e.g. "active.es.toml").
package locale

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
)

// Catalog holds the translated titles of every loaded language.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog creates an empty catalog whose source language is English.
func NewCatalog() *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{bundle: bundle}
}

// LoadFiles adds message files to the catalog.
func (c *Catalog) LoadFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := c.bundle.LoadMessageFile(path); err != nil {
			return fmt.Errorf("load messages %s: %w", path, err)
		}
	}
	return nil
}

// ParseBytes adds an in-memory message file. The name selects the language
// and format the same way a file path does.
func (c *Catalog) ParseBytes(data []byte, name string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parse messages %s: %w", name, err)
	}
	return nil
}

// Languages lists the languages with at least one message.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Localizer picks titles for the preferred languages, best match first.
func (c *Catalog) Localizer(langs ...string) *Localizer {
	return &Localizer{localizer: i18n.NewLocalizer(c.bundle, langs...)}
}

// Localizer translates title message IDs.
type Localizer struct {
	localizer *i18n.Localizer
}

// Title returns the translation of id, or fallback when no loaded language
// defines it.
func (l *Localizer) Title(id, fallback string) string {
	if l == nil || id == "" {
		return fallback
	}

	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		internal.GetInternalLogger().Debug("Missing title translation", "id", id, "error", err)
		return fallback
	}
	return s
}
