package treehelp

import (
	"github.com/google/uuid"
	"github.com/napalu/treehelp/errs"
)

// Command is a node of a command tree. Children are owned by their parent; the parent relation is
// kept as an identifier resolved through a registry shared by every node of the tree.
type Command struct {
	id                   string
	name                 string
	description          string
	group                string
	aliases              []string
	required             bool
	disabled             bool
	footer               string
	requireSubcommandMin int
	requireSubcommandMax int
	requireOptionMin     int
	requireOptionMax     int
	subcommands          []*Command
	options              []*Option
	parentID             string
	registry             *registry
	formatter            Formatter
	helpOption           *Option
	helpAllOption        *Option
	autocompleteOption   *Option
}

// registry maps node identifiers to the nodes of one tree
type registry struct {
	nodes map[string]*Command
}

func newRegistry(root *Command) *registry {
	return &registry{nodes: map[string]*Command{root.id: root}}
}

func (r *registry) get(id string) *Command {
	if r == nil {
		return nil
	}
	return r.nodes[id]
}

// NewCommand creates and returns a new Command object configured by configs
func NewCommand(configs ...ConfigureCommandFunc) (*Command, error) {
	cmd := &Command{
		id:    uuid.New().String(),
		group: DefaultSubcommandGroup,
	}
	cmd.registry = newRegistry(cmd)

	var err error
	for _, config := range configs {
		config(cmd, &err)
		if err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

// Set applies further configuration to the command
func (c *Command) Set(configs ...ConfigureCommandFunc) error {
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// AddSubcommand attaches sub as the last child of c. It fails for nil commands, commands which already
// have a parent and commands which are c itself or one of its ancestors.
func (c *Command) AddSubcommand(sub *Command) error {
	if c == nil || sub == nil {
		return errs.ErrNilNode.WithArgs("command")
	}
	if sub.parentID != "" {
		return errs.ErrAlreadyAttached.WithArgs(sub.name)
	}
	for n := c; n != nil; n = n.parent() {
		if n == sub {
			return errs.ErrCircularReference.WithArgs(sub.name, c.name)
		}
	}

	sub.parentID = c.id
	c.subcommands = append(c.subcommands, sub)
	Visit(sub, func(node CommandNode, _ int) bool {
		if n, ok := node.(*Command); ok {
			n.registry = c.registry
			c.registry.nodes[n.id] = n
		}
		return true
	})

	return nil
}

// NewSubcommand creates a command, attaches it below c and returns it. Like a subcommand declared on a
// parser, it inherits c's help and help-all flags unless configs set its own.
func (c *Command) NewSubcommand(configs ...ConfigureCommandFunc) (*Command, error) {
	sub, err := NewCommand(configs...)
	if err != nil {
		return nil, err
	}
	if c.helpOption != nil && sub.helpOption == nil {
		if _, err := sub.SetHelpFlag(c.helpOption.DisplayName(false), c.helpOption.description); err != nil {
			return nil, err
		}
	}
	if c.helpAllOption != nil && sub.helpAllOption == nil {
		if _, err := sub.SetHelpAllFlag(c.helpAllOption.DisplayName(false), c.helpAllOption.description); err != nil {
			return nil, err
		}
	}
	if err := c.AddSubcommand(sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// AddOption appends opt to the options of c. Name forms must be unique within a command.
func (c *Command) AddOption(opt *Option) error {
	if c == nil || opt == nil {
		return errs.ErrNilNode.WithArgs("option")
	}
	for _, name := range opt.names() {
		if c.findOption(name) != nil {
			return errs.ErrOptionExists.WithArgs(name, c.name)
		}
	}
	c.options = append(c.options, opt)

	return nil
}

// NewOption creates an option and adds it to c
func (c *Command) NewOption(configs ...ConfigureOptionFunc) (*Option, error) {
	opt, err := NewOption(configs...)
	if err != nil {
		return nil, err
	}
	if err := c.AddOption(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// GetOption returns the option of c known by name ("-f", "--file" or a positional name), or nil
func (c *Command) GetOption(name string) *Option {
	return c.findOption(name)
}

// SetHelpFlag replaces the help flag. An empty names removes it.
func (c *Command) SetHelpFlag(names, description string) (*Option, error) {
	return c.replaceSentinel(&c.helpOption, names, description)
}

// SetHelpAllFlag replaces the flag asking for the fully expanded help. An empty names removes it.
func (c *Command) SetHelpAllFlag(names, description string) (*Option, error) {
	return c.replaceSentinel(&c.helpAllOption, names, description)
}

// SetAutocompleteFlag replaces the flag asking for shell completion. An empty names removes it.
func (c *Command) SetAutocompleteFlag(names, description string) (*Option, error) {
	return c.replaceSentinel(&c.autocompleteOption, names, description)
}

func (c *Command) replaceSentinel(slot **Option, names, description string) (*Option, error) {
	if *slot != nil {
		c.removeOption(*slot)
		*slot = nil
	}
	if names == "" {
		return nil, nil
	}

	opt, err := c.NewOption(WithNames(names), WithDescription(description))
	if err != nil {
		return nil, err
	}
	*slot = opt

	return opt, nil
}

func (c *Command) removeOption(opt *Option) {
	for i, o := range c.options {
		if o == opt {
			c.options = append(c.options[:i], c.options[i+1:]...)
			return
		}
	}
}

func (c *Command) findOption(name string) *Option {
	for _, o := range c.options {
		for _, n := range o.names() {
			if n == name {
				return o
			}
		}
	}
	return nil
}

func (c *Command) parent() *Command {
	if c.parentID == "" {
		return nil
	}
	return c.registry.get(c.parentID)
}

// ID returns the identifier of the command
func (c *Command) ID() string {
	return c.id
}

// Root returns the topmost ancestor of c
func (c *Command) Root() *Command {
	n := c
	for p := n.parent(); p != nil; p = n.parent() {
		n = p
	}
	return n
}

// Lookup resolves a node identifier within the tree of c
func (c *Command) Lookup(id string) *Command {
	return c.registry.get(id)
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) DisplayName(withAliases bool) string {
	if c.name == "" {
		return "[Option Group: " + c.group + "]"
	}
	if !withAliases {
		return c.name
	}
	display := c.name
	for _, alias := range c.aliases {
		display += ", " + alias
	}
	return display
}

func (c *Command) Description() string {
	return c.description
}

func (c *Command) Aliases() []string {
	return c.aliases
}

func (c *Command) Group() string {
	return c.group
}

func (c *Command) Required() bool {
	return c.required
}

func (c *Command) Disabled() bool {
	return c.disabled
}

func (c *Command) Footer() string {
	return c.footer
}

func (c *Command) RequireSubcommandMin() int {
	return c.requireSubcommandMin
}

func (c *Command) RequireSubcommandMax() int {
	return c.requireSubcommandMax
}

func (c *Command) RequireOptionMin() int {
	return c.requireOptionMin
}

func (c *Command) RequireOptionMax() int {
	return c.requireOptionMax
}

func (c *Command) Subcommands(filter CommandFilter) []CommandNode {
	nodes := make([]CommandNode, 0, len(c.subcommands))
	for _, sub := range c.subcommands {
		if filter == nil || filter(sub) {
			nodes = append(nodes, sub)
		}
	}
	return nodes
}

func (c *Command) Options(filter OptionFilter) []OptionNode {
	nodes := make([]OptionNode, 0, len(c.options))
	for _, opt := range c.options {
		if filter == nil || filter(opt) {
			nodes = append(nodes, opt)
		}
	}
	return nodes
}

func (c *Command) Parent() CommandNode {
	if p := c.parent(); p != nil {
		return p
	}
	return nil
}

func (c *Command) HelpOption() OptionNode {
	return optionNode(c.helpOption)
}

func (c *Command) HelpAllOption() OptionNode {
	return optionNode(c.helpAllOption)
}

func (c *Command) AutocompleteOption() OptionNode {
	return optionNode(c.autocompleteOption)
}

func (c *Command) Formatter() Formatter {
	return c.formatter
}

func optionNode(opt *Option) OptionNode {
	if opt == nil {
		return nil
	}
	return opt
}
