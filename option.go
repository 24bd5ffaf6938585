package treehelp

import (
	"strings"

	"github.com/google/uuid"
	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/types"
)

// Option describes an option or positional argument of a Command
type Option struct {
	id             string
	shortNames     []string
	longNames      []string
	positionalName string
	description    string
	group          string
	required       bool
	typeName       string
	typeSize       int
	expectedMin    int
	expectedMax    int
	defaultText    string
	optionText     string
	envName        string
	needs          []*Option
	excludes       []*Option
}

// NewOption creates an Option. At least one name form is required. Options without a value type are
// flags; positional arguments take one TEXT value unless configured otherwise.
func NewOption(configs ...ConfigureOptionFunc) (*Option, error) {
	opt := &Option{
		id:    uuid.New().String(),
		group: DefaultOptionGroup,
	}

	var err error
	for _, config := range configs {
		config(opt, &err)
		if err != nil {
			return nil, err
		}
	}

	if len(opt.shortNames) == 0 && len(opt.longNames) == 0 && opt.positionalName == "" {
		return nil, errs.ErrInvalidName.WithArgs("")
	}
	if opt.positionalName != "" {
		if opt.typeSize == 0 {
			opt.typeSize = 1
		}
		if opt.typeName == "" {
			opt.typeName = DefaultTypeName
		}
	}
	if opt.typeSize != 0 && opt.expectedMax == 0 {
		opt.expectedMin, opt.expectedMax = 1, 1
	}

	return opt, nil
}

// Set applies further configuration to the option
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// ID returns the identifier of the option
func (o *Option) ID() string {
	return o.id
}

func (o *Option) Name() string {
	switch {
	case len(o.longNames) > 0:
		return "--" + o.longNames[0]
	case len(o.shortNames) > 0:
		return "-" + o.shortNames[0]
	}
	return o.positionalName
}

func (o *Option) DisplayName(positional bool) string {
	names := make([]string, 0, 1+len(o.shortNames)+len(o.longNames))
	if o.positionalName != "" && (positional || !o.NonPositional()) {
		names = append(names, o.positionalName)
	}
	for _, s := range o.shortNames {
		names = append(names, "-"+s)
	}
	for _, l := range o.longNames {
		names = append(names, "--"+l)
	}

	return strings.Join(names, ",")
}

func (o *Option) PositionalName() string {
	return o.positionalName
}

func (o *Option) Description() string {
	return o.description
}

func (o *Option) Group() string {
	return o.group
}

func (o *Option) Required() bool {
	return o.required
}

func (o *Option) Positional() bool {
	return o.positionalName != ""
}

func (o *Option) NonPositional() bool {
	return len(o.shortNames) > 0 || len(o.longNames) > 0
}

func (o *Option) TypeName() string {
	return o.typeName
}

func (o *Option) TypeSize() int {
	return o.typeSize
}

func (o *Option) ExpectedMin() int {
	return o.expectedMin
}

func (o *Option) ExpectedMax() int {
	return o.expectedMax
}

// Unbounded reports whether the option accepts any number of values
func (o *Option) Unbounded() bool {
	return o.expectedMax == types.Unbounded
}

func (o *Option) DefaultText() string {
	return o.defaultText
}

func (o *Option) OptionText() string {
	return o.optionText
}

func (o *Option) EnvName() string {
	return o.envName
}

func (o *Option) Needs() []OptionNode {
	return toOptionNodes(o.needs)
}

func (o *Option) Excludes() []OptionNode {
	return toOptionNodes(o.excludes)
}

// names returns every name form in the way it is written on a command line
func (o *Option) names() []string {
	names := make([]string, 0, 1+len(o.shortNames)+len(o.longNames))
	for _, s := range o.shortNames {
		names = append(names, "-"+s)
	}
	for _, l := range o.longNames {
		names = append(names, "--"+l)
	}
	if o.positionalName != "" {
		names = append(names, o.positionalName)
	}
	return names
}

func toOptionNodes(opts []*Option) []OptionNode {
	if len(opts) == 0 {
		return nil
	}
	nodes := make([]OptionNode, len(opts))
	for i, opt := range opts {
		nodes[i] = opt
	}
	return nodes
}

// parseNames splits a comma-separated name list such as "-f,--file" into short, long and positional
// forms. A bare word is the positional name.
func parseNames(spec string) (short, long []string, positional string, err error) {
	for _, raw := range strings.Split(spec, ",") {
		name := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(name, "--"):
			if !validName(name[2:]) {
				return nil, nil, "", errs.ErrInvalidName.WithArgs(name)
			}
			long = append(long, name[2:])
		case strings.HasPrefix(name, "-"):
			if len([]rune(name[1:])) != 1 || !validName(name[1:]) {
				return nil, nil, "", errs.ErrInvalidName.WithArgs(name)
			}
			short = append(short, name[1:])
		default:
			if positional != "" || !validName(name) {
				return nil, nil, "", errs.ErrInvalidName.WithArgs(name)
			}
			positional = name
		}
	}

	return short, long, positional, nil
}

func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") {
		return false
	}
	return !strings.ContainsAny(name, " \t\n=,")
}
