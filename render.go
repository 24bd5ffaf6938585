package treehelp

import (
	"errors"
	"io"
	"strings"

	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/types"
	"github.com/rs/zerolog"
)

// Render returns the help of cmd invoked as name. The formatter attached to cmd or its nearest
// ancestor renders it, or a default formatter when there is none.
func Render(cmd CommandNode, name string, mode types.FormatMode) (string, error) {
	if cmd == nil {
		return "", errs.ErrNilNode.WithArgs("command")
	}
	f := attachedFormatter(cmd)
	if f == nil {
		f = Default()
	}
	return RenderWith(f, cmd, name, mode)
}

// RenderWith returns the help of cmd invoked as name, rendered by f. An unknown mode is reported as
// ErrUnknownFormatMode; the tree is never modified.
func RenderWith(f Formatter, cmd CommandNode, name string, mode types.FormatMode) (out string, err error) {
	if cmd == nil {
		return "", errs.ErrNilNode.WithArgs("command")
	}
	if f == nil {
		return "", errs.ErrNilNode.WithArgs("formatter")
	}

	logger := loggerOf(f)
	if !mode.IsValid() {
		err = errs.ErrUnknownFormatMode.WithArgs(int(mode))
		logger.Error().Err(err).Str("command", cmd.Name()).Msg("cannot render help")
		return "", err
	}
	logger.Debug().Str("command", cmd.Name()).Str("name", name).Stringer("mode", mode).Msg("rendering help")

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, errs.ErrUnknownFormatMode) {
				panic(r)
			}
			logger.Error().Err(e).Str("command", cmd.Name()).Msg("help rendering aborted")
			out, err = "", e
		}
	}()

	return f.MakeHelp(cmd, name, mode), nil
}

// Render renders the help of cmd with f, dispatching through the formatter f was extended by
func (f *DefaultFormatter) Render(cmd CommandNode, name string, mode types.FormatMode) (string, error) {
	return RenderWith(f.self(), cmd, name, mode)
}

// Fprint writes the help of cmd invoked as name to w
func Fprint(w io.Writer, cmd CommandNode, name string, mode types.FormatMode) error {
	out, err := Render(cmd, name, mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Help returns the help of cmd invoked by its own name
func Help(cmd CommandNode, mode types.FormatMode) (string, error) {
	if cmd == nil {
		return "", errs.ErrNilNode.WithArgs("command")
	}
	return Render(cmd, cmd.Name(), mode)
}

// ParseFormatMode returns the mode named s, ignoring case, dashes and underscores, so "sub-compact"
// and "SubCompact" both select types.SubCompact.
func ParseFormatMode(s string) (types.FormatMode, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, mode := range types.FormatModes() {
		if mode.String() == normalized {
			return mode, nil
		}
	}
	return types.Normal, errs.ErrInvalidFormatMode.WithArgs(s)
}

type loggerProvider interface {
	Logger() *zerolog.Logger
}

func loggerOf(f Formatter) *zerolog.Logger {
	if lp, ok := f.(loggerProvider); ok {
		return lp.Logger()
	}
	nop := zerolog.Nop()
	return &nop
}
