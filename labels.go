package treehelp

import (
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/napalu/treehelp/i18n"
	"github.com/napalu/treehelp/internal/messages"
)

// LabelTable maps label concepts such as "Usage" or "OPTIONS" to the strings printed in help output.
// A concept resolves to an explicit override first, then to the catalog entry of the selected
// language and finally to the concept itself.
type LabelTable struct {
	mu        sync.RWMutex
	overrides map[string]string
	provider  *i18n.LayeredMessageProvider
}

// NewLabelTable creates a label table backed by provider
func NewLabelTable(provider *i18n.LayeredMessageProvider) *LabelTable {
	return &LabelTable{
		overrides: map[string]string{},
		provider:  provider,
	}
}

// LabelKey returns the catalog key of a concept, e.g. "treehelp.label.subcommands" for "SUBCOMMANDS"
func LabelKey(concept string) string {
	return messages.LabelPrefixKey + "." + strcase.ToSnake(concept)
}

// Get returns the display string of concept
func (l *LabelTable) Get(concept string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if v, ok := l.overrides[concept]; ok {
		return v
	}
	if l.provider != nil {
		if v, ok := l.provider.Lookup(LabelKey(concept)); ok {
			return v
		}
	}
	return concept
}

// Set overrides the display string of concept
func (l *LabelTable) Set(concept, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.overrides[concept] = value
}

// Phrase returns the catalog message stored under key formatted with args
func (l *LabelTable) Phrase(key string, args ...interface{}) string {
	if l.provider == nil {
		return key
	}
	return l.provider.GetFormattedMessage(key, args...)
}

// Provider returns the message provider backing the table
func (l *LabelTable) Provider() *i18n.LayeredMessageProvider {
	return l.provider
}
