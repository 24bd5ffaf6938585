package treehelp

import (
	"testing"

	"github.com/napalu/treehelp/i18n"
	"github.com/napalu/treehelp/internal/messages"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLabelKey(t *testing.T) {
	assert.Equal(t, "treehelp.label.subcommands", LabelKey(messages.LabelSubcommands))
	assert.Equal(t, "treehelp.label.positionals", LabelKey(messages.LabelPositionals))
	assert.Equal(t, "treehelp.label.usage", LabelKey("Usage"))
	assert.Equal(t, "treehelp.label.int", LabelKey("INT"))
}

func TestLabelTable_Get(t *testing.T) {
	provider := i18n.NewLayeredMessageProvider(i18n.Default(), nil, language.English)
	labels := NewLabelTable(provider)

	assert.Equal(t, "Usage", labels.Get(messages.LabelUsage))
	assert.Equal(t, "OPTIONS", labels.Get(messages.LabelOptions))
	assert.Equal(t, "PATH", labels.Get("PATH"))

	labels.Set(messages.LabelOptions, "FLAGS")
	assert.Equal(t, "FLAGS", labels.Get(messages.LabelOptions))

	provider.SetLanguage(language.German)
	assert.Equal(t, "Aufruf", labels.Get(messages.LabelUsage))
	assert.Equal(t, "FLAGS", labels.Get(messages.LabelOptions))
	assert.Equal(t, "GANZZAHL", labels.Get("INT"))
}

func TestLabelTable_Phrase(t *testing.T) {
	labels := NewLabelTable(i18n.NewLayeredMessageProvider(i18n.Default(), nil, language.English))
	assert.Equal(t, "[At least 2 of the following options are required]", labels.Phrase(messages.RequireAtLeastKey, 2))

	bare := NewLabelTable(nil)
	assert.Equal(t, "Usage", bare.Get(messages.LabelUsage))
	assert.Equal(t, messages.RequireAtLeastKey, bare.Phrase(messages.RequireAtLeastKey, 2))
}
