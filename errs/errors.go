package errs

import (
	"sync"

	"github.com/napalu/treehelp/i18n"
)

// Rendering errors
var (
	ErrUnknownFormatMode   = i18n.NewError(ErrUnknownFormatModeKey)
	ErrInvalidFormatMode   = i18n.NewError(ErrInvalidFormatModeKey)
	ErrInvalidColumnWidth  = i18n.NewError(ErrInvalidColumnWidthKey)
	ErrLanguageUnavailable = i18n.NewError(ErrLanguageUnavailableKey)
)

// Tree construction errors
var (
	ErrNilNode             = i18n.NewError(ErrNilNodeKey)
	ErrAlreadyAttached     = i18n.NewError(ErrAlreadyAttachedKey)
	ErrCircularReference   = i18n.NewError(ErrCircularReferenceKey)
	ErrInvalidName         = i18n.NewError(ErrInvalidNameKey)
	ErrOptionExists        = i18n.NewError(ErrOptionExistsKey)
	ErrInvalidArity        = i18n.NewError(ErrInvalidArityKey)
	ErrInvalidRequirement  = i18n.NewError(ErrInvalidRequirementKey)
	ErrUnresolvedReference = i18n.NewError(ErrUnresolvedReferenceKey)
	ErrForeignReference    = i18n.NewError(ErrForeignReferenceKey)
	ErrMaxDepthExceeded    = i18n.NewError(ErrMaxDepthExceededKey)
	ErrSubcommandNotFound  = i18n.NewError(ErrSubcommandNotFoundKey)
)

// Definition loading errors
var (
	ErrUnsupportedDefinition = i18n.NewError(ErrUnsupportedDefinitionKey)
	ErrReadingDefinition     = i18n.NewError(ErrReadingDefinitionKey)
	ErrInvalidDefinition     = i18n.NewError(ErrInvalidDefinitionKey)
)

var sysErrors = struct {
	mu  sync.Mutex
	All []*i18n.TrError
}{
	All: []*i18n.TrError{
		ErrUnknownFormatMode,
		ErrInvalidFormatMode,
		ErrInvalidColumnWidth,
		ErrLanguageUnavailable,
		ErrNilNode,
		ErrAlreadyAttached,
		ErrCircularReference,
		ErrInvalidName,
		ErrOptionExists,
		ErrInvalidArity,
		ErrInvalidRequirement,
		ErrUnresolvedReference,
		ErrForeignReference,
		ErrMaxDepthExceeded,
		ErrSubcommandNotFound,
		ErrUnsupportedDefinition,
		ErrReadingDefinition,
		ErrInvalidDefinition,
	},
}

// UpdateMessageProvider switches every built-in error to provider, e.g. to report errors
// in the language the help text is rendered in.
//
// Example:
//
//	provider := i18n.NewLayeredMessageProvider(i18n.Default(), nil, language.German)
//	errs.UpdateMessageProvider(provider)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
