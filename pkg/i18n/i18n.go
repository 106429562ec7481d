// Package i18n resolves UI string keys to localized text. Catalogs are
// compiled in; an unknown key falls back to the key itself so a missing
// translation is visible instead of fatal.
package i18n

import (
	"strings"
	"sync"
	"time"
)

// Language is a supported UI language code.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"

	// Default is the language used when nothing valid was selected.
	Default = Spanish
)

// ParseLanguage resolves a stored or requested code, falling back to the
// default for anything unsupported.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case Spanish, English:
		return Language(code)
	}
	return Default
}

// Provider resolves translation keys for one selected language. It is safe
// for concurrent use; SetLanguage swaps the whole catalog.
type Provider struct {
	mu      sync.RWMutex
	lang    Language
	catalog map[string]string
}

// New returns a Provider for the given language.
func New(lang Language) *Provider {
	p := &Provider{}
	p.SetLanguage(lang)
	return p
}

// Language returns the currently selected language.
func (p *Provider) Language() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// SetLanguage switches the active catalog. Unsupported codes fall back to
// the default language. Persisting the choice is the caller's concern;
// switching alters no stored collection.
func (p *Provider) SetLanguage(lang Language) {
	lang = ParseLanguage(string(lang))
	p.mu.Lock()
	p.lang = lang
	p.catalog = catalogs[lang]
	p.mu.Unlock()
}

var monthNames = map[Language][12]string{
	Spanish: {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	English: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// MonthName returns the month's name in the selected language.
func (p *Provider) MonthName(m time.Month) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if names, ok := monthNames[p.lang]; ok {
		return names[m-1]
	}
	return m.String()
}

// T resolves key, interpolating optional {var} placeholders from vars.
func (p *Provider) T(key string, vars ...map[string]string) string {
	p.mu.RLock()
	text, ok := p.catalog[key]
	p.mu.RUnlock()
	if !ok {
		text = key
	}
	for _, set := range vars {
		for k, v := range set {
			text = strings.ReplaceAll(text, "{"+k+"}", v)
		}
	}
	return text
}
