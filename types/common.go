package types

// FormatMode selects how much of a command tree a help render expands and how compactly
type FormatMode int

const (
	Normal     FormatMode = iota // Normal renders a command with one summary line per subcommand
	All                          // All expands every direct subcommand as a full block
	Sub                          // Sub renders a command as a nested, expanded block
	SubCompact                   // SubCompact renders a nested block as a compact tree of names and descriptions
	AllCompact                   // AllCompact expands every subcommand as a compact tree
)

// String returns the string representation of a FormatMode
func (m FormatMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case All:
		return "all"
	case Sub:
		return "sub"
	case SubCompact:
		return "subcompact"
	case AllCompact:
		return "allcompact"
	}
	return "unknown"
}

// IsValid reports whether m is one of the known modes
func (m FormatMode) IsValid() bool {
	return m >= Normal && m <= AllCompact
}

// Nested reports whether m renders a command as a block nested under its parent
func (m FormatMode) Nested() bool {
	return m == Sub || m == SubCompact
}

// FormatModes lists every known mode in declaration order
func FormatModes() []FormatMode {
	return []FormatMode{Normal, All, Sub, SubCompact, AllCompact}
}

// Unbounded is the arity sentinel for options accepting any number of values
const Unbounded = -1

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
