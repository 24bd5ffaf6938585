package messages

const (
	prefixKey        = "treehelp"
	LabelPrefixKey   = prefixKey + ".label"
	RequirePrefixKey = prefixKey + ".require"
)

// Label concepts looked up through the label table. The catalog key for a concept is
// LabelPrefixKey + "." + the concept in snake case.
const (
	LabelUsage       = "Usage"
	LabelOptions     = "OPTIONS"
	LabelRequired    = "REQUIRED"
	LabelNeeds       = "Needs"
	LabelExcludes    = "Excludes"
	LabelEnv         = "Env"
	LabelPositionals = "Positionals"
	LabelSubcommand  = "SUBCOMMAND"
	LabelSubcommands = "SUBCOMMANDS"
	LabelAliases     = "aliases"
)

// Requirement phrases appended to a command description
const (
	RequireExactlyOneKey = RequirePrefixKey + ".exactly_one"
	RequireExactlyNKey   = RequirePrefixKey + ".exactly_n"
	RequireBetweenKey    = RequirePrefixKey + ".between"
	RequireAtMostKey     = RequirePrefixKey + ".at_most"
	RequireAtLeastKey    = RequirePrefixKey + ".at_least"
)
