package treehelp

import (
	"github.com/napalu/treehelp/types"
)

// CommandNode is the read-only view of a command the formatter renders. Methods returning
// nodes must return an untyped nil when there is nothing to return.
type CommandNode interface {
	// Name is empty for anonymous option groups
	Name() string
	// DisplayName returns the name, followed by ", alias" for every alias when withAliases is set
	DisplayName(withAliases bool) string
	Description() string
	Aliases() []string
	// Group is the label the command is listed under in its parent's subcommand tree
	Group() string
	Required() bool
	Disabled() bool
	Footer() string
	RequireSubcommandMin() int
	// RequireSubcommandMax is 0 when no upper bound is set
	RequireSubcommandMax() int
	RequireOptionMin() int
	// RequireOptionMax is 0 when no upper bound is set
	RequireOptionMax() int
	// Subcommands returns the children in insertion order; a nil filter returns all of them
	Subcommands(filter CommandFilter) []CommandNode
	// Options returns the options in insertion order; a nil filter returns all of them
	Options(filter OptionFilter) []OptionNode
	Parent() CommandNode
	HelpOption() OptionNode
	HelpAllOption() OptionNode
	AutocompleteOption() OptionNode
	// Formatter overrides the formatter used for this command and its descendants
	Formatter() Formatter
}

// OptionNode is the read-only view of an option or positional argument
type OptionNode interface {
	// Name returns the primary name: --long, else -s, else the positional name
	Name() string
	// DisplayName joins all name forms with a comma. The positional name is included when positional
	// is set or when the option has no flag forms.
	DisplayName(positional bool) string
	// PositionalName is empty for options which are not positional arguments
	PositionalName() string
	Description() string
	// Group is the options group; an empty group hides the option from grouped listings
	Group() string
	Required() bool
	Positional() bool
	NonPositional() bool
	TypeName() string
	// TypeSize is 0 for flags which take no value
	TypeSize() int
	ExpectedMin() int
	// ExpectedMax is types.Unbounded for options accepting any number of values
	ExpectedMax() int
	DefaultText() string
	OptionText() string
	EnvName() string
	Needs() []OptionNode
	Excludes() []OptionNode
}

// CommandFilter selects subcommands
type CommandFilter func(cmd CommandNode) bool

// OptionFilter selects options
type OptionFilter func(opt OptionNode) bool

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command, err *error)

// ConfigureOptionFunc is used when defining Option options
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureFormatterFunc is used when defining DefaultFormatter options
type ConfigureFormatterFunc func(formatter *DefaultFormatter, err *error)

const (
	// DefaultColumnWidth is the width of the left help column
	DefaultColumnWidth = 25
	// DefaultOptionGroup is the group options are listed under unless configured otherwise
	DefaultOptionGroup = "Options"
	// DefaultSubcommandGroup is the group subcommands are listed under unless configured otherwise
	DefaultSubcommandGroup = "Subcommands"
	// DefaultMaxDepth bounds the command tree depth accepted by Validate
	DefaultMaxDepth = 64
	// DefaultTypeName is the value label of positional arguments without an explicit type
	DefaultTypeName = "TEXT"
)

// Unbounded marks the arity of options accepting any number of values
const Unbounded = types.Unbounded

// TreeGlyphs are the connector glyphs drawn in front of nested subcommands
type TreeGlyphs struct {
	// Bar continues a branch past a sibling which is not the last
	Bar string
	// Last marks the last sibling of a group
	Last string
	// Branch marks every sibling but the last
	Branch string
}

var (
	// UnicodeGlyphs draws the tree with box-drawing characters
	UnicodeGlyphs = TreeGlyphs{Bar: "│", Last: "└", Branch: "├"}
	// ASCIIGlyphs draws the tree with plain ASCII
	ASCIIGlyphs = TreeGlyphs{Bar: "|", Last: "`", Branch: "+"}
)
