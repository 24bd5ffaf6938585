package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// MessageProvider resolves a message key to text in the provider's current language
type MessageProvider interface {
	GetMessage(key string) string
}

var provider struct {
	sync.RWMutex
	current MessageProvider
}

// SetDefaultMessageProvider replaces the provider used by errors created with NewError
func SetDefaultMessageProvider(p MessageProvider) {
	provider.Lock()
	provider.current = p
	provider.Unlock()
}

func getDefaultProvider() MessageProvider {
	provider.RLock()
	p := provider.current
	provider.RUnlock()
	if p != nil {
		return p
	}

	provider.Lock()
	defer provider.Unlock()
	if provider.current == nil {
		provider.current = NewLayeredMessageProvider(Default(), nil, language.English)
	}
	return provider.current
}
