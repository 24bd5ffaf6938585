package definition

// CommandSpec describes a command as written in a definition file
type CommandSpec struct {
	Name              string        `yaml:"name" toml:"name" json:"name"`
	Description       string        `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Group             *string       `yaml:"group,omitempty" toml:"group,omitempty" json:"group,omitempty"`
	Aliases           []string      `yaml:"aliases,omitempty" toml:"aliases,omitempty" json:"aliases,omitempty"`
	Required          bool          `yaml:"required,omitempty" toml:"required,omitempty" json:"required,omitempty"`
	Disabled          bool          `yaml:"disabled,omitempty" toml:"disabled,omitempty" json:"disabled,omitempty"`
	Footer            string        `yaml:"footer,omitempty" toml:"footer,omitempty" json:"footer,omitempty"`
	RequireSubcommand *Bounds       `yaml:"require_subcommand,omitempty" toml:"require_subcommand,omitempty" json:"require_subcommand,omitempty"`
	RequireOption     *Bounds       `yaml:"require_option,omitempty" toml:"require_option,omitempty" json:"require_option,omitempty"`
	Help              *FlagSpec     `yaml:"help,omitempty" toml:"help,omitempty" json:"help,omitempty"`
	HelpAll           *FlagSpec     `yaml:"help_all,omitempty" toml:"help_all,omitempty" json:"help_all,omitempty"`
	Autocomplete      *FlagSpec     `yaml:"autocomplete,omitempty" toml:"autocomplete,omitempty" json:"autocomplete,omitempty"`
	Options           []OptionSpec  `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty"`
	Subcommands       []CommandSpec `yaml:"subcommands,omitempty" toml:"subcommands,omitempty" json:"subcommands,omitempty"`
}

// OptionSpec describes an option or positional argument. Needs and Excludes name other options
// the way they are written on a command line ("--file", "-f" or a positional name).
type OptionSpec struct {
	Names       string   `yaml:"names" toml:"names" json:"names"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Group       *string  `yaml:"group,omitempty" toml:"group,omitempty" json:"group,omitempty"`
	Required    bool     `yaml:"required,omitempty" toml:"required,omitempty" json:"required,omitempty"`
	Type        string   `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Expected    *Bounds  `yaml:"expected,omitempty" toml:"expected,omitempty" json:"expected,omitempty"`
	Default     string   `yaml:"default,omitempty" toml:"default,omitempty" json:"default,omitempty"`
	OptionText  string   `yaml:"option_text,omitempty" toml:"option_text,omitempty" json:"option_text,omitempty"`
	Env         string   `yaml:"env,omitempty" toml:"env,omitempty" json:"env,omitempty"`
	AutoEnv     *string  `yaml:"auto_env,omitempty" toml:"auto_env,omitempty" json:"auto_env,omitempty"`
	Needs       []string `yaml:"needs,omitempty" toml:"needs,omitempty" json:"needs,omitempty"`
	Excludes    []string `yaml:"excludes,omitempty" toml:"excludes,omitempty" json:"excludes,omitempty"`
}

// Bounds is a min/max pair. For requirements a max of 0 sets no upper bound; for expected values a
// max of -1 accepts any number of values.
type Bounds struct {
	Min int `yaml:"min" toml:"min" json:"min"`
	Max int `yaml:"max" toml:"max" json:"max"`
}

// FlagSpec describes a built-in flag such as help. Empty names remove the flag.
type FlagSpec struct {
	Names       string `yaml:"names" toml:"names" json:"names"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}
