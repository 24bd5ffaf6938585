package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// LayeredMessageProvider implements MessageProvider with a two-tier lookup:
// 1. User bundle (highest priority)
// 2. Default bundle (built-in catalog)
//
// In each tier the selected language is tried first, then English.
type LayeredMessageProvider struct {
	mu            sync.RWMutex
	lang          language.Tag
	userBundle    *Bundle
	defaultBundle *Bundle
}

// NewLayeredMessageProvider creates a new layered message provider for lang
func NewLayeredMessageProvider(defaultBundle, userBundle *Bundle, lang language.Tag) *LayeredMessageProvider {
	return &LayeredMessageProvider{
		lang:          lang,
		defaultBundle: defaultBundle,
		userBundle:    userBundle,
	}
}

// GetMessage returns the message for the given key, checking each layer in order.
// The key itself is returned when no layer knows it.
func (p *LayeredMessageProvider) GetMessage(key string) string {
	if msg, ok := p.Lookup(key); ok {
		return msg
	}
	return key
}

// Lookup returns the message for key and whether any layer knows it
func (p *LayeredMessageProvider) Lookup(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, bundle := range []*Bundle{p.userBundle, p.defaultBundle} {
		if msg, ok := tryGetMessage(bundle, p.lang, key); ok {
			return msg, true
		}
	}

	return "", false
}

func tryGetMessage(bundle *Bundle, lang language.Tag, key string) (string, bool) {
	if bundle == nil {
		return "", false
	}

	if msg, ok := bundle.Message(bundle.MatchLanguage(lang), key); ok {
		return msg, true
	}
	if lang != language.English {
		return bundle.Message(language.English, key)
	}

	return "", false
}

// GetFormattedMessage returns the message for key formatted with args
func (p *LayeredMessageProvider) GetFormattedMessage(key string, args ...interface{}) string {
	msg := p.GetMessage(key)
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetUserBundle updates the user bundle
func (p *LayeredMessageProvider) SetUserBundle(bundle *Bundle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userBundle = bundle
}

// SetLanguage changes the language messages are looked up in
func (p *LayeredMessageProvider) SetLanguage(lang language.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = lang
}

// GetLanguage returns the language messages are looked up in
func (p *LayeredMessageProvider) GetLanguage() language.Tag {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// HasLanguage reports whether any layer carries translations for lang's base language
func (p *LayeredMessageProvider) HasLanguage(lang language.Tag) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	base, _ := lang.Base()
	for _, bundle := range []*Bundle{p.userBundle, p.defaultBundle} {
		if bundle == nil {
			continue
		}
		if matched, _ := bundle.MatchLanguage(lang).Base(); matched == base {
			return true
		}
	}

	return false
}
