package definition

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/treehelp"
	"github.com/napalu/treehelp/errs"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatFromPath returns the format matching the extension of path
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return "", errs.ErrUnsupportedDefinition.WithArgs(ext)
	}
}

// Loader turns definition files into command trees
type Loader struct {
	logger   zerolog.Logger
	maxDepth int
}

// ConfigureLoaderFunc is used when defining Loader options
type ConfigureLoaderFunc func(loader *Loader)

// NewLoader creates a Loader with a disabled logger and treehelp.DefaultMaxDepth
func NewLoader(configs ...ConfigureLoaderFunc) *Loader {
	l := &Loader{
		logger:   zerolog.Nop(),
		maxDepth: treehelp.DefaultMaxDepth,
	}
	for _, config := range configs {
		config(l)
	}
	return l
}

// WithLogger sets the logger receiving debug events while loading
func WithLogger(logger zerolog.Logger) ConfigureLoaderFunc {
	return func(loader *Loader) {
		loader.logger = logger
	}
}

// WithMaxDepth bounds how deeply commands may nest
func WithMaxDepth(depth int) ConfigureLoaderFunc {
	return func(loader *Loader) {
		if depth > 0 {
			loader.maxDepth = depth
		}
	}
}

// Load reads the definition at path with a default Loader
func Load(path string) (*treehelp.Command, error) {
	return NewLoader().Load(path)
}

// Load reads the definition at path, choosing the decoder by file extension, and builds its
// command tree
func (l *Loader) Load(path string) (*treehelp.Command, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.ErrReadingDefinition.WithArgs(path).Wrap(err)
	}
	l.logger.Debug().Str("path", path).Str("format", string(format)).Int("bytes", len(data)).Msg("loading definition")

	spec, err := Decode(data, format)
	if err != nil {
		return nil, errs.ErrInvalidDefinition.WithArgs(path).Wrap(err)
	}

	return l.Build(spec)
}

// Decode parses a definition encoded in format. Unknown keys are rejected.
func Decode(data []byte, format Format) (*CommandSpec, error) {
	spec := &CommandSpec{}

	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(spec)
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(spec)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(spec)
	default:
		return nil, errs.ErrUnsupportedDefinition.WithArgs(string(format))
	}
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// reference is a needs or excludes entry waiting for every option of the tree to exist
type reference struct {
	owner    *treehelp.Command
	option   *treehelp.Option
	name     string
	excludes bool
}

// Build creates the command tree described by spec. Subcommands inherit the help flags of their
// parent. Needs and excludes entries are resolved against the options of the same command first,
// then against those of its ancestors.
func (l *Loader) Build(spec *CommandSpec) (*treehelp.Command, error) {
	if spec == nil {
		return nil, errs.ErrNilNode.WithArgs("definition")
	}

	root, err := treehelp.NewCommand(commandConfigs(spec)...)
	if err != nil {
		return nil, err
	}

	var refs []reference
	if err := l.populate(root, spec, 0, &refs); err != nil {
		return nil, err
	}
	if err := resolve(refs); err != nil {
		return nil, err
	}
	if err := treehelp.Validate(root, l.maxDepth); err != nil {
		return nil, err
	}

	l.logger.Debug().Str("command", root.Name()).Int("references", len(refs)).Msg("definition built")

	return root, nil
}

func (l *Loader) populate(cmd *treehelp.Command, spec *CommandSpec, depth int, refs *[]reference) error {
	if depth > l.maxDepth {
		return errs.ErrMaxDepthExceeded.WithArgs(l.maxDepth)
	}
	l.logger.Trace().Str("command", spec.Name).Int("depth", depth).Int("options", len(spec.Options)).Msg("building command")

	for i := range spec.Options {
		o := &spec.Options[i]
		opt, err := cmd.NewOption(optionConfigs(o)...)
		if err != nil {
			return err
		}
		for _, name := range o.Needs {
			*refs = append(*refs, reference{owner: cmd, option: opt, name: name})
		}
		for _, name := range o.Excludes {
			*refs = append(*refs, reference{owner: cmd, option: opt, name: name, excludes: true})
		}
	}

	for i := range spec.Subcommands {
		s := &spec.Subcommands[i]
		sub, err := cmd.NewSubcommand(commandConfigs(s)...)
		if err != nil {
			return err
		}
		if err := dropRemovedFlags(sub, s); err != nil {
			return err
		}
		if err := l.populate(sub, s, depth+1, refs); err != nil {
			return err
		}
	}

	return nil
}

// dropRemovedFlags removes inherited built-in flags the definition sets to empty names
func dropRemovedFlags(sub *treehelp.Command, spec *CommandSpec) error {
	if spec.Help != nil && spec.Help.Names == "" {
		if _, err := sub.SetHelpFlag("", ""); err != nil {
			return err
		}
	}
	if spec.HelpAll != nil && spec.HelpAll.Names == "" {
		if _, err := sub.SetHelpAllFlag("", ""); err != nil {
			return err
		}
	}
	return nil
}

func resolve(refs []reference) error {
	for _, ref := range refs {
		target := lookupOption(ref.owner, ref.name)
		if target == nil {
			return errs.ErrUnresolvedReference.WithArgs(ref.option.Name(), ref.name)
		}

		config := treehelp.WithNeeds(target)
		if ref.excludes {
			config = treehelp.WithExcludes(target)
		}
		if err := ref.option.Set(config); err != nil {
			return err
		}
	}
	return nil
}

func lookupOption(cmd *treehelp.Command, name string) *treehelp.Option {
	for c := cmd; c != nil; c = parentCommand(c) {
		if opt := c.GetOption(name); opt != nil {
			return opt
		}
	}
	return nil
}

func parentCommand(cmd *treehelp.Command) *treehelp.Command {
	if p, ok := cmd.Parent().(*treehelp.Command); ok {
		return p
	}
	return nil
}

func commandConfigs(spec *CommandSpec) []treehelp.ConfigureCommandFunc {
	configs := []treehelp.ConfigureCommandFunc{
		treehelp.WithName(spec.Name),
		treehelp.WithCommandDescription(spec.Description),
		treehelp.WithCommandRequired(spec.Required),
		treehelp.WithDisabled(spec.Disabled),
		treehelp.WithFooter(spec.Footer),
	}
	if spec.Group != nil {
		configs = append(configs, treehelp.WithGroup(*spec.Group))
	}
	if len(spec.Aliases) > 0 {
		configs = append(configs, treehelp.WithAliases(spec.Aliases...))
	}
	if b := spec.RequireSubcommand; b != nil {
		configs = append(configs, treehelp.WithRequireSubcommand(b.Min, b.Max))
	}
	if b := spec.RequireOption; b != nil {
		configs = append(configs, treehelp.WithRequireOption(b.Min, b.Max))
	}
	if f := spec.Help; f != nil && f.Names != "" {
		configs = append(configs, treehelp.WithHelpFlag(f.Names, f.Description))
	}
	if f := spec.HelpAll; f != nil && f.Names != "" {
		configs = append(configs, treehelp.WithHelpAllFlag(f.Names, f.Description))
	}
	if f := spec.Autocomplete; f != nil && f.Names != "" {
		configs = append(configs, treehelp.WithAutocompleteFlag(f.Names, f.Description))
	}
	return configs
}

func optionConfigs(spec *OptionSpec) []treehelp.ConfigureOptionFunc {
	configs := []treehelp.ConfigureOptionFunc{
		treehelp.WithNames(spec.Names),
		treehelp.WithDescription(spec.Description),
		treehelp.WithRequired(spec.Required),
		treehelp.WithDefault(spec.Default),
		treehelp.WithOptionText(spec.OptionText),
		treehelp.WithEnv(spec.Env),
	}
	if spec.Group != nil {
		configs = append(configs, treehelp.WithOptionGroup(*spec.Group))
	}
	if spec.Type != "" {
		configs = append(configs, treehelp.WithValue(spec.Type))
	}
	if b := spec.Expected; b != nil {
		configs = append(configs, treehelp.WithExpected(b.Min, b.Max))
	}
	if spec.AutoEnv != nil {
		configs = append(configs, treehelp.WithAutoEnv(*spec.AutoEnv))
	}
	return configs
}
