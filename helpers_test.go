package treehelp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCommand(t *testing.T, configs ...ConfigureCommandFunc) *Command {
	t.Helper()
	cmd, err := NewCommand(configs...)
	require.NoError(t, err)
	return cmd
}

func mustSubcommand(t *testing.T, parent *Command, configs ...ConfigureCommandFunc) *Command {
	t.Helper()
	sub, err := parent.NewSubcommand(configs...)
	require.NoError(t, err)
	return sub
}

func mustOption(t *testing.T, configs ...ConfigureOptionFunc) *Option {
	t.Helper()
	opt, err := NewOption(configs...)
	require.NoError(t, err)
	return opt
}

func mustAddOption(t *testing.T, cmd *Command, configs ...ConfigureOptionFunc) *Option {
	t.Helper()
	opt, err := cmd.NewOption(configs...)
	require.NoError(t, err)
	return opt
}

// newOneTwoTree builds app with subcommands one (with three) and two (with four)
func newOneTwoTree(t *testing.T) *Command {
	t.Helper()
	app := mustCommand(t, WithName("app"))
	one := mustSubcommand(t, app, WithName("one"), WithCommandDescription("Description One"))
	mustSubcommand(t, one, WithName("three"), WithCommandDescription("Description Three"))
	two := mustSubcommand(t, app, WithName("two"), WithCommandDescription("Description Two"))
	mustSubcommand(t, two, WithName("four"), WithCommandDescription("Description Four"))
	return app
}

// fakeNode is a hand-wired CommandNode for shapes the Command API refuses to build
type fakeNode struct {
	name      string
	group     string
	subMin    int
	subMax    int
	parent    *fakeNode
	children  []*fakeNode
	options   []OptionNode
	aliases   []string
	disabled  bool
	formatter Formatter
	optionMin int
	optionMax int
}

func (n *fakeNode) add(children ...*fakeNode) *fakeNode {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *fakeNode) Name() string                       { return n.name }
func (n *fakeNode) DisplayName(withAliases bool) string { return n.name }
func (n *fakeNode) Description() string                { return "" }
func (n *fakeNode) Aliases() []string                  { return n.aliases }
func (n *fakeNode) Group() string                      { return n.group }
func (n *fakeNode) Required() bool                     { return false }
func (n *fakeNode) Disabled() bool                     { return n.disabled }
func (n *fakeNode) Footer() string                     { return "" }
func (n *fakeNode) RequireSubcommandMin() int          { return n.subMin }
func (n *fakeNode) RequireSubcommandMax() int          { return n.subMax }
func (n *fakeNode) RequireOptionMin() int              { return n.optionMin }
func (n *fakeNode) RequireOptionMax() int              { return n.optionMax }
func (n *fakeNode) HelpOption() OptionNode             { return nil }
func (n *fakeNode) HelpAllOption() OptionNode          { return nil }
func (n *fakeNode) AutocompleteOption() OptionNode     { return nil }
func (n *fakeNode) Formatter() Formatter               { return n.formatter }

func (n *fakeNode) Subcommands(filter CommandFilter) []CommandNode {
	var nodes []CommandNode
	for _, c := range n.children {
		if filter == nil || filter(c) {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

func (n *fakeNode) Options(filter OptionFilter) []OptionNode {
	var nodes []OptionNode
	for _, o := range n.options {
		if filter == nil || filter(o) {
			nodes = append(nodes, o)
		}
	}
	return nodes
}

func (n *fakeNode) Parent() CommandNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
