// Command treehelp renders the help text of a command tree described in a YAML, TOML or JSON file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/napalu/goopt/v2"
	"github.com/napalu/treehelp"
	"github.com/napalu/treehelp/definition"
	"github.com/napalu/treehelp/env"
	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/util"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

type options struct {
	File     string `goopt:"name:file;pos:0;required:true;desc:Definition file in YAML or TOML or JSON format"`
	Mode     string `goopt:"name:mode;short:m;default:normal;desc:Help layout (normal|all|allcompact|sub|subcompact)"`
	Path     string `goopt:"name:path;short:p;desc:Shell quoted path of the subcommand to render"`
	Name     string `goopt:"name:name;short:n;desc:Program name shown in the usage line"`
	Width    int    `goopt:"name:width;short:w;default:25;desc:Width of the left help column"`
	MaxWidth int    `goopt:"name:max-width;desc:Wrap descriptions at this many columns"`
	Wrap     bool   `goopt:"name:wrap;desc:Wrap descriptions at the terminal width"`
	ASCII    bool   `goopt:"name:ascii;desc:Draw the subcommand tree with ASCII glyphs"`
	Color    bool   `goopt:"name:color;desc:Highlight group headers and tree glyphs"`
	Lang     string `goopt:"name:lang;short:l;desc:Language of labels and phrases such as de or fr"`
	Debug    bool   `goopt:"name:debug;short:d;desc:Log debug events to stderr"`
	Help     bool   `goopt:"name:help;short:h;desc:Show this help message"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, &env.DefaultEnvResolver{}))
}

// run executes the command line args. Without --lang the label language follows the locale
// variables seen through resolver.
func run(args []string, stdout, stderr io.Writer, resolver env.Resolver) int {
	opts := &options{}
	parser, err := goopt.NewParserFromStruct(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	parser.SetStdout(stdout)
	parser.SetStderr(stderr)

	ok := parser.Parse(args)
	if opts.Help {
		parser.PrintUsageWithGroups(stdout)
		return 0
	}
	if !ok {
		for _, e := range parser.GetErrors() {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", e)
		}
		return 1
	}

	logger := newLogger(stderr, opts.Debug)
	out, err := render(opts, resolver, logger)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	_, _ = io.WriteString(stdout, out)
	return 0
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func render(opts *options, resolver env.Resolver, logger zerolog.Logger) (string, error) {
	mode, err := treehelp.ParseFormatMode(opts.Mode)
	if err != nil {
		return "", err
	}

	lang := language.Und
	if opts.Lang != "" {
		if lang, err = language.Parse(opts.Lang); err != nil {
			return "", err
		}
	}

	root, err := definition.NewLoader(definition.WithLogger(logger)).Load(opts.File)
	if err != nil {
		return "", err
	}

	path, err := shlex.Split(opts.Path)
	if err != nil {
		return "", err
	}
	cmd, err := treehelp.FindSubcommand(root, path)
	if err != nil {
		return "", err
	}

	name := opts.Name
	if name == "" {
		name = strings.Join(append([]string{root.Name()}, path...), " ")
	}

	f, err := newFormatter(opts, lang, resolver, logger)
	if err != nil {
		return "", err
	}
	logger.Debug().Str("command", cmd.Name()).Str("mode", mode.String()).Msg("rendering")

	return treehelp.RenderWith(f, cmd, name, mode)
}

// newFormatter builds the formatter for opts. An undetermined lang selects the system locale; a
// language without labels falls back to English.
func newFormatter(opts *options, lang language.Tag, resolver env.Resolver, logger zerolog.Logger) (treehelp.Formatter, error) {
	glyphs := treehelp.UnicodeGlyphs
	if opts.ASCII {
		glyphs = treehelp.ASCIIGlyphs
	}
	if opts.Color {
		glyphs = colorGlyphs(glyphs)
	}

	configs := []treehelp.ConfigureFormatterFunc{
		treehelp.WithLogger(logger),
		treehelp.WithColumnWidth(opts.Width),
		treehelp.WithGlyphs(glyphs),
	}
	switch {
	case opts.MaxWidth > 0:
		configs = append(configs, treehelp.WithMaxWidth(opts.MaxWidth))
	case opts.Wrap:
		configs = append(configs, treehelp.WithTerminalWidth(&util.DefaultTerminal{}, int(os.Stdout.Fd())))
	}

	var (
		f   *treehelp.DefaultFormatter
		err error
	)
	if lang == language.Und {
		f, err = treehelp.NewFormatter(append(configs, treehelp.WithSystemLocale(resolver))...)
	} else {
		f, err = treehelp.NewFormatter(append(configs, treehelp.WithLanguage(lang))...)
		if errors.Is(err, errs.ErrLanguageUnavailable) {
			logger.Debug().Str("language", lang.String()).Msg("language unavailable, using English")
			f, err = treehelp.NewFormatter(configs...)
		}
	}
	if err != nil {
		return nil, err
	}

	if !opts.Color {
		return f, nil
	}
	cf := &colorFormatter{DefaultFormatter: f, header: headerStyle}
	cf.Extend(cf)
	return cf, nil
}
