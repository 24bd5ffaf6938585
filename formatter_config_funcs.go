package treehelp

import (
	"github.com/napalu/treehelp/env"
	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/i18n"
	"github.com/napalu/treehelp/util"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// NewFormatter creates a DefaultFormatter with a column width of DefaultColumnWidth, English labels,
// Unicode connector glyphs and a disabled logger, then applies configs in order.
func NewFormatter(configs ...ConfigureFormatterFunc) (*DefaultFormatter, error) {
	f := &DefaultFormatter{
		columnWidth: DefaultColumnWidth,
		labels:      NewLabelTable(i18n.NewLayeredMessageProvider(i18n.Default(), nil, language.English)),
		glyphs:      UnicodeGlyphs,
		logger:      zerolog.Nop(),
	}

	var err error
	for _, config := range configs {
		config(f, &err)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// MustNewFormatter is NewFormatter for configurations known to be valid. It panics on error.
func MustNewFormatter(configs ...ConfigureFormatterFunc) *DefaultFormatter {
	f, err := NewFormatter(configs...)
	if err != nil {
		panic(err)
	}
	return f
}

// Default returns a formatter with the default configuration
func Default() *DefaultFormatter {
	return MustNewFormatter()
}

// WithColumnWidth sets the width of the left help column
func WithColumnWidth(width int) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		if width <= 0 {
			*err = errs.ErrInvalidColumnWidth.WithArgs(width)
			return
		}
		formatter.columnWidth = width
	}
}

// WithMaxWidth word-wraps descriptions so lines stay within width columns. Widths not exceeding the
// column width turn wrapping off.
func WithMaxWidth(width int) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		if width < 0 {
			*err = errs.ErrInvalidColumnWidth.WithArgs(width)
			return
		}
		formatter.maxWidth = width
	}
}

// WithTerminalWidth wraps descriptions to the width of the terminal behind fd. Nothing is wrapped
// when fd is not a terminal.
func WithTerminalWidth(terminal util.Terminal, fd int) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		formatter.maxWidth = util.TerminalWidth(terminal, fd, 0)
	}
}

// WithLabel overrides the display string of a label concept, e.g. WithLabel("OPTIONS", "FLAGS")
func WithLabel(concept, value string) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		formatter.labels.Set(concept, value)
	}
}

// WithLabels overrides several label concepts
func WithLabels(labels map[string]string) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		for concept, value := range labels {
			formatter.labels.Set(concept, value)
		}
	}
}

// WithLanguage selects the language of labels and requirement phrases. Apply WithUserBundle first
// when the language is provided by a user bundle.
func WithLanguage(lang language.Tag) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		provider := formatter.labels.Provider()
		if !provider.HasLanguage(lang) {
			*err = errs.ErrLanguageUnavailable.WithArgs(lang)
			return
		}
		provider.SetLanguage(lang)
	}
}

// WithSystemLocale selects the language from the POSIX locale variables. An undetectable or
// unavailable locale keeps the current language.
func WithSystemLocale(resolver env.Resolver) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		if resolver == nil {
			resolver = &env.DefaultEnvResolver{}
		}
		lang, e := i18n.GetSystemLocale(resolver)
		if e != nil {
			formatter.logger.Debug().Err(e).Msg("keeping default language")
			return
		}
		if provider := formatter.labels.Provider(); provider.HasLanguage(lang) {
			provider.SetLanguage(lang)
		}
	}
}

// WithUserBundle layers bundle above the built-in catalog
func WithUserBundle(bundle *i18n.Bundle) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		formatter.labels.Provider().SetUserBundle(bundle)
	}
}

// WithGlyphs sets the connector glyphs of the subcommand tree
func WithGlyphs(glyphs TreeGlyphs) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		formatter.glyphs = glyphs
	}
}

// WithLogger sets the logger receiving debug and trace events while rendering
func WithLogger(logger zerolog.Logger) ConfigureFormatterFunc {
	return func(formatter *DefaultFormatter, err *error) {
		formatter.logger = logger
	}
}
