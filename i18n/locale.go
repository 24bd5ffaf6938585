package i18n

import (
	"errors"
	"strings"

	"github.com/napalu/treehelp/env"
	"golang.org/x/text/language"
)

// ErrLocaleNotDetected is returned when no locale variable holds a parsable locale
var ErrLocaleNotDetected = errors.New("could not detect system locale")

// localeVariables lists the POSIX locale variables in order of precedence
var localeVariables = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// GetSystemLocale detects the locale from the POSIX locale variables
func GetSystemLocale(resolver env.Resolver) (language.Tag, error) {
	for _, name := range localeVariables {
		if value := resolver.Get(name); value != "" {
			if tag, err := language.Parse(NormalizeLocaleString(value)); err == nil {
				return tag, nil
			}
		}
	}

	return language.Und, ErrLocaleNotDetected
}

// NormalizeLocaleString converts locale strings as found in environment variables
// (e.g. "en_US.UTF-8" or "de_DE@euro") into BCP-47 form ("en-US", "de-DE").
// "C" and "POSIX" map to "en-US".
func NormalizeLocaleString(locale string) string {
	switch locale {
	case "C", "POSIX":
		return "en-US"
	}

	clean := locale
	if idx := strings.Index(clean, "."); idx != -1 {
		clean = clean[:idx]
	}
	if idx := strings.Index(clean, "@"); idx != -1 {
		clean = clean[:idx]
	}

	bcp47 := strings.ReplaceAll(clean, "_", "-")
	tag, err := language.Parse(bcp47)
	if err != nil {
		return bcp47
	}

	return tag.String()
}
