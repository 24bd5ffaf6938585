package treehelp

import "github.com/napalu/treehelp/errs"

// WithName sets the name for the command. Commands without a name are anonymous option groups,
// rendered inline in their parent's help.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		if name != "" && !validName(name) {
			*err = errs.ErrInvalidName.WithArgs(name)
			return
		}
		command.name = name
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.description = description
	}
}

// WithGroup sets the group the command is listed under in its parent's help. An empty group hides it.
func WithGroup(group string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.group = group
	}
}

// WithAliases adds alternative names of the command
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, alias := range aliases {
			if !validName(alias) {
				*err = errs.ErrInvalidName.WithArgs(alias)
				return
			}
		}
		command.aliases = append(command.aliases, aliases...)
	}
}

// WithCommandRequired marks the command as mandatory
func WithCommandRequired(required bool) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.required = required
	}
}

// WithDisabled disables the command. Disabled commands do not count towards the subcommand marker
// of the usage line.
func WithDisabled(disabled bool) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.disabled = disabled
	}
}

// WithFooter sets the text printed at the end of the command's help
func WithFooter(footer string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.footer = footer
	}
}

// WithRequireSubcommand sets how many subcommands must be given. A maximum of 0 sets no upper bound.
func WithRequireSubcommand(minimum, maximum int) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		if !validBounds(minimum, maximum) {
			*err = errs.ErrInvalidRequirement.WithArgs(minimum, maximum)
			return
		}
		command.requireSubcommandMin = minimum
		command.requireSubcommandMax = maximum
	}
}

// WithRequireOption sets how many of the command's options must be given. A maximum of 0 sets no
// upper bound.
func WithRequireOption(minimum, maximum int) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		if !validBounds(minimum, maximum) {
			*err = errs.ErrInvalidRequirement.WithArgs(minimum, maximum)
			return
		}
		command.requireOptionMin = minimum
		command.requireOptionMax = maximum
	}
}

// WithFormatter renders the command and its descendants with formatter
func WithFormatter(formatter Formatter) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.formatter = formatter
	}
}

// WithHelpFlag adds the help flag, e.g. WithHelpFlag("-h,--help", "Print this help message and exit")
func WithHelpFlag(names, description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		_, *err = command.SetHelpFlag(names, description)
	}
}

// WithHelpAllFlag adds the flag asking for the fully expanded help
func WithHelpAllFlag(names, description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		_, *err = command.SetHelpAllFlag(names, description)
	}
}

// WithAutocompleteFlag adds the flag asking for shell completion
func WithAutocompleteFlag(names, description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		_, *err = command.SetAutocompleteFlag(names, description)
	}
}

// WithOptions adds options to the command
func WithOptions(options ...*Option) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, opt := range options {
			if *err = command.AddOption(opt); *err != nil {
				return
			}
		}
	}
}

// WithSubcommands attaches subcommands to the command
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, sub := range subcommands {
			if *err = command.AddSubcommand(sub); *err != nil {
				return
			}
		}
	}
}

func validBounds(minimum, maximum int) bool {
	return minimum >= 0 && maximum >= 0 && (maximum == 0 || minimum <= maximum)
}
