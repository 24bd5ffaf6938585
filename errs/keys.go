// Package errs holds the translatable errors returned by treehelp.
// This file contains the translation keys for every error.
package errs

const (
	prefixKey      = "treehelp"
	ErrorPrefixKey = prefixKey + ".error"
)

// Rendering errors
const (
	ErrUnknownFormatModeKey   = ErrorPrefixKey + ".unknown_format_mode"
	ErrInvalidFormatModeKey   = ErrorPrefixKey + ".invalid_format_mode"
	ErrInvalidColumnWidthKey  = ErrorPrefixKey + ".invalid_column_width"
	ErrLanguageUnavailableKey = ErrorPrefixKey + ".language_unavailable"
)

// Tree construction errors
const (
	ErrNilNodeKey             = ErrorPrefixKey + ".nil_node"
	ErrAlreadyAttachedKey     = ErrorPrefixKey + ".already_attached"
	ErrCircularReferenceKey   = ErrorPrefixKey + ".circular_reference"
	ErrInvalidNameKey         = ErrorPrefixKey + ".invalid_name"
	ErrOptionExistsKey        = ErrorPrefixKey + ".option_exists"
	ErrInvalidArityKey        = ErrorPrefixKey + ".invalid_arity"
	ErrInvalidRequirementKey  = ErrorPrefixKey + ".invalid_requirement"
	ErrUnresolvedReferenceKey = ErrorPrefixKey + ".unresolved_reference"
	ErrForeignReferenceKey    = ErrorPrefixKey + ".foreign_reference"
	ErrMaxDepthExceededKey    = ErrorPrefixKey + ".max_depth_exceeded"
	ErrSubcommandNotFoundKey  = ErrorPrefixKey + ".subcommand_not_found"
)

// Definition loading errors
const (
	ErrUnsupportedDefinitionKey = ErrorPrefixKey + ".unsupported_definition"
	ErrReadingDefinitionKey     = ErrorPrefixKey + ".reading_definition"
	ErrInvalidDefinitionKey     = ErrorPrefixKey + ".invalid_definition"
)
