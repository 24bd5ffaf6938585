package treehelp

import (
	"strconv"
	"strings"

	"github.com/napalu/treehelp/internal/messages"
	"github.com/napalu/treehelp/types"
)

// MakeOption renders one option line: name and annotations on the left, description on the right
func (f *DefaultFormatter) MakeOption(opt OptionNode, positional bool) string {
	self := f.self()
	return f.formatHelp(self.MakeOptionName(opt, positional)+self.MakeOptionOpts(opt), self.MakeOptionDesc(opt))
}

// MakeOptionName returns the name forms of opt as listed in the left column
func (f *DefaultFormatter) MakeOptionName(opt OptionNode, positional bool) string {
	return opt.DisplayName(positional)
}

// MakeOptionOpts returns the annotation following the option name: the custom option text when set,
// otherwise value type, default, arity and requirement markers followed by the environment variable
// and the needs and excludes lists.
func (f *DefaultFormatter) MakeOptionOpts(opt OptionNode) string {
	if text := opt.OptionText(); text != "" {
		return " " + text
	}

	var sb strings.Builder
	if opt.TypeSize() != 0 {
		if typeName := opt.TypeName(); typeName != "" {
			sb.WriteString(" " + f.labels.Get(typeName))
		}
		if def := opt.DefaultText(); def != "" {
			sb.WriteString(" [" + def + "]")
		}
		if opt.ExpectedMax() == types.Unbounded {
			sb.WriteString(" ...")
		} else if opt.ExpectedMin() > 1 {
			sb.WriteString(" x " + strconv.Itoa(opt.ExpectedMin()))
		}
		if opt.Required() {
			sb.WriteString(" " + f.labels.Get(messages.LabelRequired))
		}
	}
	if env := opt.EnvName(); env != "" {
		sb.WriteString(" (" + f.labels.Get(messages.LabelEnv) + ":" + env + ")")
	}
	if needs := opt.Needs(); len(needs) > 0 {
		sb.WriteString(" " + f.labels.Get(messages.LabelNeeds) + ":" + primaryNames(needs))
	}
	if excludes := opt.Excludes(); len(excludes) > 0 {
		sb.WriteString(" " + f.labels.Get(messages.LabelExcludes) + ":" + primaryNames(excludes))
	}

	return sb.String()
}

func primaryNames(opts []OptionNode) string {
	var sb strings.Builder
	for _, opt := range opts {
		sb.WriteString(" " + opt.Name())
	}
	return sb.String()
}

// MakeOptionDesc returns the description of opt
func (f *DefaultFormatter) MakeOptionDesc(opt OptionNode) string {
	return opt.Description()
}

// MakeOptionUsage returns the usage-line token of a positional argument: its name, "..." for any
// number of values or "(Nx)" for several, bracketed unless the argument is required. Hidden
// arguments are listed too; only the Positionals section leaves them out.
func (f *DefaultFormatter) MakeOptionUsage(opt OptionNode) string {
	name := opt.PositionalName()
	if name == "" {
		return ""
	}

	switch maximum := opt.ExpectedMax(); {
	case maximum == types.Unbounded:
		name += "..."
	case maximum > 1:
		name += "(" + strconv.Itoa(maximum) + "x)"
	}

	if opt.Required() {
		return name
	}
	return "[" + name + "]"
}
