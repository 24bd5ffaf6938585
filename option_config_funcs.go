package treehelp

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/types"
)

// WithNames sets all name forms at once from a comma-separated list, e.g. "-f,--file" or "file".
// Names starting with "--" are long names, names starting with "-" are single-character short names
// and a bare word is the positional name.
func WithNames(names string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		short, long, positional, e := parseNames(names)
		if e != nil {
			*err = e
			return
		}
		option.shortNames = short
		option.longNames = long
		option.positionalName = positional
	}
}

// WithShortName adds a short name, written without the leading dash
func WithShortName(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if len([]rune(name)) != 1 || !validName(name) {
			*err = errs.ErrInvalidName.WithArgs("-" + name)
			return
		}
		option.shortNames = append(option.shortNames, name)
	}
}

// WithLongName adds a long name, written without the leading dashes
func WithLongName(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if !validName(name) {
			*err = errs.ErrInvalidName.WithArgs("--" + name)
			return
		}
		option.longNames = append(option.longNames, name)
	}
}

// WithPositionalName makes the option a positional argument with the given name
func WithPositionalName(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if !validName(name) {
			*err = errs.ErrInvalidName.WithArgs(name)
			return
		}
		option.positionalName = name
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.description = description
	}
}

// WithOptionGroup sets the group the option is listed under. An empty group hides the option.
func WithOptionGroup(group string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.group = group
	}
}

// WithRequired marks the option as mandatory
func WithRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.required = required
	}
}

// WithValue turns a flag into an option taking a value of the named type, e.g. "TEXT" or "INT"
func WithValue(typeName string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.typeName = typeName
		if option.typeSize == 0 {
			option.typeSize = 1
		}
	}
}

// WithExpected sets how many values the option consumes. Pass Unbounded as max for options
// accepting any number of values.
func WithExpected(minimum, maximum int) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if minimum < 0 || (maximum != types.Unbounded && maximum < minimum) {
			*err = errs.ErrInvalidArity.WithArgs(minimum, maximum)
			return
		}
		option.expectedMin = minimum
		option.expectedMax = maximum
		if maximum != 0 && option.typeSize == 0 {
			option.typeSize = 1
		}
	}
}

// WithDefault sets the default value shown in help output
func WithDefault(defaultText string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.defaultText = defaultText
	}
}

// WithOptionText replaces the generated type, default and requirement annotation of the option
func WithOptionText(text string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.optionText = text
	}
}

// WithEnv sets the environment variable the option can be read from
func WithEnv(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.envName = name
	}
}

// WithAutoEnv derives the environment variable from the primary name, e.g. --log-level with prefix
// "app" becomes APP_LOG_LEVEL. Apply it after the names are set.
func WithAutoEnv(prefix string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		name := strings.TrimLeft(option.Name(), "-")
		if name == "" {
			*err = errs.ErrInvalidName.WithArgs(name)
			return
		}
		if prefix != "" {
			name = prefix + "_" + name
		}
		option.envName = strcase.ToScreamingSnake(name)
	}
}

// WithNeeds records options which must be given together with this one
func WithNeeds(options ...*Option) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		for _, o := range options {
			if o == nil {
				*err = errs.ErrNilNode.WithArgs("option")
				return
			}
		}
		option.needs = append(option.needs, options...)
	}
}

// WithExcludes records options which cannot be given together with this one
func WithExcludes(options ...*Option) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		for _, o := range options {
			if o == nil {
				*err = errs.ErrNilNode.WithArgs("option")
				return
			}
		}
		option.excludes = append(option.excludes, options...)
	}
}
