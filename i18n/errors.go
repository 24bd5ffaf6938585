package i18n

import (
	"errors"
	"fmt"
)

// TranslatableError is an error whose message is looked up by key when it is printed
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	SetProvider(provider MessageProvider)
}

// TrError is a translatable error. Values derived with WithArgs or Wrap keep the identity of the
// error they came from, so
//
//	errors.Is(ErrNilNode.WithArgs("command"), ErrNilNode)
//
// holds.
type TrError struct {
	id       error
	key      string
	args     []interface{}
	cause    error
	provider MessageProvider
}

// NewError creates a translatable error rendered by the package default provider
func NewError(key string) *TrError {
	return NewErrorWithProvider(key, getDefaultProvider())
}

// NewErrorWithProvider creates a translatable error rendered by provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{id: errors.New(key), key: key, provider: provider}
}

func (e *TrError) Error() string {
	msg := e.provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.cause == nil {
		return msg
	}
	return msg + ": " + e.cause.Error()
}

// WithArgs returns a copy formatted with args
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := *e
	c.args = args
	return &c
}

// Wrap returns a copy whose message is followed by err
func (e *TrError) Wrap(err error) TranslatableError {
	c := *e
	c.cause = err
	return &c
}

func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return t.id == e.id
	}
	return target == e.id
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.cause
}

// SetProvider changes the provider used to render the message
func (e *TrError) SetProvider(provider MessageProvider) {
	e.provider = provider
}
