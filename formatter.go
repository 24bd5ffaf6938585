package treehelp

import (
	"strings"

	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/internal/messages"
	"github.com/napalu/treehelp/types"
	"github.com/napalu/treehelp/util"
	"github.com/rs/zerolog"
)

// Formatter renders help text for a command tree. Each method renders one part of the output;
// DefaultFormatter composes them. A custom formatter embeds *DefaultFormatter, overrides the parts
// it wants to change and calls Extend with itself so the remaining default methods dispatch through
// the overrides.
type Formatter interface {
	MakeHelp(cmd CommandNode, name string, mode types.FormatMode) string
	MakeDescription(cmd CommandNode) string
	MakeUsage(cmd CommandNode, name string) string
	MakeFooter(cmd CommandNode) string
	MakePositionals(cmd CommandNode) string
	MakeGroups(cmd CommandNode, mode types.FormatMode) string
	MakeGroup(group string, positional bool, opts []OptionNode) string
	MakeSubcommands(cmd CommandNode, mode types.FormatMode) string
	MakeSubcommand(sub CommandNode) string
	MakeExpanded(sub CommandNode, mode types.FormatMode) string
	MakeOption(opt OptionNode, positional bool) string
	MakeOptionName(opt OptionNode, positional bool) string
	MakeOptionOpts(opt OptionNode) string
	MakeOptionDesc(opt OptionNode) string
	MakeOptionUsage(opt OptionNode) string
}

// DefaultFormatter lays out help in two columns and draws nested subcommands as a tree.
// It never modifies the tree it renders.
type DefaultFormatter struct {
	columnWidth int
	maxWidth    int
	labels      *LabelTable
	glyphs      TreeGlyphs
	logger      zerolog.Logger
	outer       Formatter
}

// Extend makes the default methods dispatch through outer, the formatter embedding f
func (f *DefaultFormatter) Extend(outer Formatter) {
	f.outer = outer
}

func (f *DefaultFormatter) self() Formatter {
	if f.outer != nil {
		return f.outer
	}
	return f
}

// formatterFor returns the formatter attached to cmd or its nearest ancestor, else f
func (f *DefaultFormatter) formatterFor(cmd CommandNode) Formatter {
	if fm := attachedFormatter(cmd); fm != nil {
		return fm
	}
	return f.self()
}

// MakeHelp assembles the help of cmd invoked as name. Nested modes render the expanded block of cmd.
func (f *DefaultFormatter) MakeHelp(cmd CommandNode, name string, mode types.FormatMode) string {
	self := f.self()
	if mode.Nested() {
		return self.MakeExpanded(cmd, mode)
	}

	var sb strings.Builder
	if cmd.Name() == "" && cmd.Parent() != nil && cmd.Group() != "" {
		sb.WriteString(cmd.Group() + ":\n")
	}
	sb.WriteString(self.MakeDescription(cmd))
	sb.WriteString(self.MakeUsage(cmd, name))
	sb.WriteString(self.MakePositionals(cmd))
	sb.WriteString(self.MakeGroups(cmd, mode))
	sb.WriteString(self.MakeSubcommands(cmd, mode))
	sb.WriteString("\n")
	sb.WriteString(self.MakeFooter(cmd))

	return sb.String()
}

// MakeDescription returns the description of cmd followed by its requirement clause
func (f *DefaultFormatter) MakeDescription(cmd CommandNode) string {
	desc := cmd.Description()
	if cmd.Required() {
		desc += " " + f.labels.Get(messages.LabelRequired)
	}

	if phrase := f.requirementPhrase(cmd.RequireOptionMin(), cmd.RequireOptionMax()); phrase != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += phrase
	}

	if desc == "" {
		return ""
	}
	return desc + "\n"
}

func (f *DefaultFormatter) requirementPhrase(minimum, maximum int) string {
	switch {
	case minimum == maximum && minimum > 0:
		if minimum == 1 {
			return f.labels.Phrase(messages.RequireExactlyOneKey)
		}
		return f.labels.Phrase(messages.RequireExactlyNKey, minimum)
	case maximum > 0 && minimum > 0:
		return f.labels.Phrase(messages.RequireBetweenKey, minimum, maximum)
	case maximum > 0:
		return f.labels.Phrase(messages.RequireAtMostKey, maximum)
	case minimum > 0:
		return f.labels.Phrase(messages.RequireAtLeastKey, minimum)
	}
	return ""
}

// MakeUsage returns the one-line invocation summary of cmd
func (f *DefaultFormatter) MakeUsage(cmd CommandNode, name string) string {
	self := f.self()

	var sb strings.Builder
	sb.WriteString(f.labels.Get(messages.LabelUsage) + ":")
	if name != "" {
		sb.WriteString(" " + name)
	}

	if len(cmd.Options(OptionNode.NonPositional)) > 0 {
		sb.WriteString(" [" + f.labels.Get(messages.LabelOptions) + "]")
	}

	for _, opt := range cmd.Options(OptionNode.Positional) {
		if token := self.MakeOptionUsage(opt); token != "" {
			sb.WriteString(" " + token)
		}
	}

	subs := cmd.Subcommands(func(sub CommandNode) bool {
		return named(sub) && !sub.Disabled()
	})
	if len(subs) > 0 {
		minimum, maximum := cmd.RequireSubcommandMin(), cmd.RequireSubcommandMax()
		label := f.labels.Get(messages.LabelSubcommands)
		if maximum < 2 && minimum < 2 {
			label = f.labels.Get(messages.LabelSubcommand)
		}
		if minimum == 0 {
			label = "[" + label + "]"
		}
		sb.WriteString(" " + label)
	}
	sb.WriteString("\n")

	return sb.String()
}

// MakeFooter returns the footer of cmd on its own line, or an empty string
func (f *DefaultFormatter) MakeFooter(cmd CommandNode) string {
	if footer := cmd.Footer(); footer != "" {
		return footer + "\n"
	}
	return ""
}

// MakePositionals lists the grouped positional arguments of cmd
func (f *DefaultFormatter) MakePositionals(cmd CommandNode) string {
	opts := cmd.Options(func(opt OptionNode) bool {
		return opt.Group() != "" && opt.Positional()
	})
	if len(opts) == 0 {
		return ""
	}
	return f.self().MakeGroup(f.labels.Get(messages.LabelPositionals), true, opts)
}

// MakeGroups lists the non-positional options of cmd group by group. Nested modes leave out the
// help, help-all and autocomplete flags.
func (f *DefaultFormatter) MakeGroups(cmd CommandNode, mode types.FormatMode) string {
	self := f.self()
	opts := cmd.Options(OptionNode.NonPositional)

	blocks := make([]string, 0, 4)
	for _, group := range OptionGroups(opts) {
		members := make([]OptionNode, 0, len(opts))
		for _, opt := range opts {
			if !inOptionGroup(group)(opt) || (mode.Nested() && isBuiltin(cmd, opt)) {
				continue
			}
			members = append(members, opt)
		}
		if len(members) > 0 {
			blocks = append(blocks, self.MakeGroup(group, false, members))
		}
	}

	return strings.Join(blocks, "\n")
}

func isBuiltin(cmd CommandNode, opt OptionNode) bool {
	for _, sentinel := range []OptionNode{cmd.HelpOption(), cmd.HelpAllOption(), cmd.AutocompleteOption()} {
		if sentinel != nil && sentinel == opt {
			return true
		}
	}
	return false
}

// MakeGroup renders a group header followed by one line per option
func (f *DefaultFormatter) MakeGroup(group string, positional bool, opts []OptionNode) string {
	self := f.self()

	var sb strings.Builder
	sb.WriteString("\n" + group + ":\n")
	for _, opt := range opts {
		sb.WriteString(self.MakeOption(opt, positional))
	}
	return sb.String()
}

// MakeSubcommands renders the subcommand tree of cmd. Anonymous option groups are expanded inline
// first; then every group of named subcommands follows under its header, each subcommand drawn
// according to mode.
func (f *DefaultFormatter) MakeSubcommands(cmd CommandNode, mode types.FormatMode) string {
	self := f.self()

	var sb strings.Builder
	var subs []CommandNode
	for _, sub := range cmd.Subcommands(nil) {
		if named(sub) {
			subs = append(subs, sub)
		} else if sub.Group() != "" {
			sb.WriteString(self.MakeExpanded(sub, types.Sub))
		}
	}

	for _, group := range CommandGroups(subs) {
		if mode != types.SubCompact {
			sb.WriteString("\n" + group + ":\n")
		}
		for _, sub := range subs {
			if !SameGroup(sub.Group(), group) {
				continue
			}
			conn := ResolveConnector(sub, f.glyphs)
			f.logger.Trace().
				Str("command", sub.Name()).
				Str("group", group).
				Bool("last", conn.Last).
				Int("depth", len(conn.Ancestors)).
				Msg("subcommand connector")

			switch mode {
			case types.All:
				sb.WriteString(conn.Glyph + f.formatterFor(sub).MakeHelp(sub, sub.Name(), types.Sub) + "\n")
			case types.AllCompact:
				sb.WriteString(conn.Glyph + f.formatterFor(sub).MakeHelp(sub, sub.Name(), types.SubCompact) + conn.Bar + "\n")
			case types.Normal, types.Sub:
				sb.WriteString(self.MakeSubcommand(sub))
			case types.SubCompact:
				sb.WriteString(conn.Glyph + self.MakeExpanded(sub, mode))
			default:
				panic(errs.ErrUnknownFormatMode.WithArgs(int(mode)))
			}
		}
	}

	return sb.String()
}

// MakeSubcommand renders the one-line summary of sub
func (f *DefaultFormatter) MakeSubcommand(sub CommandNode) string {
	return f.formatHelp(sub.DisplayName(true), sub.Description())
}

// MakeExpanded renders sub as a block nested under its parent. Blank lines are dropped and every
// line below the header is indented, behind a bar when sub is followed by further siblings.
func (f *DefaultFormatter) MakeExpanded(sub CommandNode, mode types.FormatMode) string {
	self := f.self()

	var sb strings.Builder
	if mode == types.SubCompact {
		sb.WriteString(f.formatHelp(sub.DisplayName(true), sub.Description()))
		sb.WriteString(self.MakeSubcommands(sub, mode))
	} else {
		sb.WriteString(sub.DisplayName(true) + "\n")
		sb.WriteString(self.MakeDescription(sub))
		if sub.Name() == "" {
			sb.WriteString(util.FormatAliases(f.labels.Get(messages.LabelAliases), sub.Aliases(), f.columnWidth+2))
		}
		sb.WriteString(self.MakePositionals(sub))
		sb.WriteString(self.MakeGroups(sub, mode))
		sb.WriteString(self.MakeSubcommands(sub, mode))
	}

	block := util.StripTrailingNewline(util.CollapseBlankLines(sb.String()))
	conn := ResolveConnector(sub, f.glyphs)

	return util.IndentContinuation(block, conn.Continuation()+"  ") + "\n"
}

// formatHelp lays out a two-column line, wrapping the description when a maximum width is set
func (f *DefaultFormatter) formatHelp(name, description string) string {
	if f.maxWidth > f.columnWidth {
		description = util.WrapText(description, f.maxWidth-f.columnWidth)
	}
	return util.FormatHelp(name, description, f.columnWidth)
}

// ColumnWidth returns the width of the left help column
func (f *DefaultFormatter) ColumnWidth() int {
	return f.columnWidth
}

// MaxWidth returns the width descriptions are wrapped to, 0 when wrapping is off
func (f *DefaultFormatter) MaxWidth() int {
	return f.maxWidth
}

// Labels returns the label table
func (f *DefaultFormatter) Labels() *LabelTable {
	return f.labels
}

// Glyphs returns the connector glyphs
func (f *DefaultFormatter) Glyphs() TreeGlyphs {
	return f.glyphs
}

// Logger returns the logger of the formatter
func (f *DefaultFormatter) Logger() *zerolog.Logger {
	return &f.logger
}

func attachedFormatter(cmd CommandNode) Formatter {
	for n := cmd; n != nil; n = n.Parent() {
		if fm := n.Formatter(); fm != nil {
			return fm
		}
	}
	return nil
}
