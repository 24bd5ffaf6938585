// Package i18n provides the translation catalog behind treehelp's labels, requirement
// phrases and error messages.
//
// The built-in catalog (English, German and French) is available through Default().
// Applications may layer their own Bundle on top of it with a LayeredMessageProvider,
// either to translate labels into further languages or to override individual strings.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/napalu/treehelp/types"
	"github.com/napalu/treehelp/types/orderedmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
	ErrBundleImmutable                    = errors.New("bundle is immutable and cannot be modified")
)

// Bundle holds translations per language. Every language added after the first must carry
// the same key set as the languages already present.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations *orderedmap.OrderedMap[string, map[string]string] // key is language.Tag.String()
	supported    []language.Tag
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
	isImmutable  bool
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
	defaultBundleMu   sync.RWMutex
)

// DefaultSystemBundle creates a new bundle with the built-in translations for en, de, and fr
func DefaultSystemBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales", language.English)
}

// Default returns the shared, immutable built-in bundle
func Default() *Bundle {
	defaultBundleMu.RLock()
	bundle := defaultBundle
	defaultBundleMu.RUnlock()

	if bundle != nil {
		return bundle
	}

	defaultBundleOnce.Do(func() {
		b, err := DefaultSystemBundle()
		if err != nil {
			panic("failed to load default locales: " + err.Error())
		}
		b.isImmutable = true

		defaultBundleMu.Lock()
		defaultBundle = b
		defaultBundleMu.Unlock()
	})

	defaultBundleMu.RLock()
	bundle = defaultBundle
	defaultBundleMu.RUnlock()

	return bundle
}

// NewEmptyBundle creates a mutable bundle without translations, defaulting to English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.NewOrderedMap[string, map[string]string](),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{}),
	}
}

// NewBundleWithFS loads every <lang>.json file in dir. The first lang, or English, becomes the default
// language and must be present.
func NewBundleWithFS(fs embed.FS, dir string, lang ...language.Tag) (*Bundle, error) {
	b := NewEmptyBundle()
	if len(lang) > 0 {
		b.defaultLang = lang[0]
	}
	if err := b.LoadFromFS(fs, dir); err != nil {
		return nil, err
	}
	if !b.translations.Has(b.defaultLang.String()) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key, formatted with args
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	matched := b.MatchLanguage(lang)

	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, ok := b.printers[matched]; ok {
		return p.Sprintf(key, args...)
	}
	if p, ok := b.printers[b.defaultLang]; ok {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the raw, unformatted translation of key in lang
func (b *Bundle) Message(lang language.Tag, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, ok := b.translations.Get(lang.String())
	if !ok {
		return "", false
	}
	msg, ok := translations[key]
	return msg, ok
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if b.isImmutable {
		return ErrBundleImmutable
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	original, hadOriginal := b.translations.Get(lang.String())
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations.Set(lang.String(), merged)

	if !hadOriginal {
		if errs := b.validateLanguage(lang); len(errs) > 0 {
			b.translations.Delete(lang.String())
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			if hadOriginal {
				b.translations.Set(lang.String(), original)
			} else {
				b.translations.Delete(lang.String())
			}
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.updateMatcher()

	return nil
}

// LoadFromString loads translations from a JSON object for a specific language
func (b *Bundle) LoadFromString(lang language.Tag, jsonStr string) error {
	if b.isImmutable {
		return ErrBundleImmutable
	}

	var translations map[string]string
	if err := json.Unmarshal([]byte(jsonStr), &translations); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return b.AddLanguage(lang, translations)
}

// LoadFromFS loads every <lang>.json file found in dir. The default language is loaded first so the
// other languages are validated against it.
func (b *Bundle) LoadFromFS(fs embed.FS, dir string) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}

	pending := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		kv := types.KeyValue[language.Tag, string]{Key: tag, Value: path.Join(dir, entry.Name())}
		if tag == b.defaultLang {
			pending = append([]types.KeyValue[language.Tag, string]{kv}, pending...)
		} else {
			pending = append(pending, kv)
		}
	}

	for _, kv := range pending {
		if err := b.processLangFile(fs, kv.Key, kv.Value); err != nil {
			return err
		}
	}

	return nil
}

// MatchLanguage returns the supported language closest to requested, or the default language
// when nothing matches
func (b *Bundle) MatchLanguage(requested language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.translations.Has(requested.String()) {
		return requested
	}
	if len(b.supported) == 0 {
		return b.defaultLang
	}
	_, idx, confidence := b.matcher.Match(requested)
	if confidence == language.No || idx < 0 || idx >= len(b.supported) {
		return b.defaultLang
	}

	return b.supported[idx]
}

// Languages returns the supported languages in the order they were added
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, len(b.supported))
	copy(langs, b.supported)
	return langs
}

// HasLanguage checks if a language has translations
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.translations.Has(lang.String())
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	_, ok := b.Message(lang, key)
	return ok
}

// SetDefaultLanguage sets the default language, using language matching to find the best available
// language. Immutable bundles keep their default.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	if b.isImmutable {
		return
	}

	matched := lang
	if b.translations.Len() > 0 {
		matched = b.MatchLanguage(lang)
	}

	b.mu.Lock()
	b.defaultLang = matched
	b.mu.Unlock()
}

// GetDefaultLanguage returns the language used by T
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) updateMatcher() {
	supported := make([]language.Tag, 0, b.translations.Len())
	for iter := b.translations.Front(); iter != nil; iter = iter.Next() {
		if tag, err := language.Parse(*iter.Key); err == nil {
			supported = append(supported, tag)
		}
	}
	b.supported = supported
	b.matcher = language.NewMatcher(supported)
}

// validateLanguage checks lang's key set against the first other language in the bundle
func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var e []error

	translations, _ := b.translations.Get(lang.String())
	if len(translations) == 0 {
		e = append(e, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	var reference map[string]string
	for iter := b.translations.Front(); iter != nil; iter = iter.Next() {
		if *iter.Key != lang.String() && len(iter.Value) > 0 {
			reference = iter.Value
			break
		}
	}
	if reference == nil {
		return e
	}

	for key := range reference {
		if _, exists := translations[key]; !exists {
			e = append(e, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, exists := reference[key]; !exists {
			e = append(e, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return e
}
