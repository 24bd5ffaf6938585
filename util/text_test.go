package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHelp(t *testing.T) {
	tests := []struct {
		name        string
		left        string
		description string
		width       int
		want        string
	}{
		{
			name:        "padded to column",
			left:        "--flag",
			description: "This is a flag",
			width:       15,
			want:        "  --flag       This is a flag\n",
		},
		{
			name:        "name reaching the column moves description down",
			left:        "--very-long-flag",
			description: "Desc",
			width:       15,
			want:        "  --very-long-flag\n               Desc\n",
		},
		{
			name:        "name exactly at the column",
			left:        "abcdefghijklm",
			description: "Desc",
			width:       15,
			want:        "  abcdefghijklm\n               Desc\n",
		},
		{
			name:        "embedded line breaks are re-indented",
			left:        "one",
			description: "first\nsecond",
			width:       8,
			want:        "  one   first\n        second\n",
		},
		{
			name:  "no description",
			left:  "--flag",
			width: 15,
			want:  "  --flag\n",
		},
		{
			name:        "wide runes count by display width",
			left:        "日本",
			description: "Desc",
			width:       10,
			want:        "  日本    Desc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHelp(tt.left, tt.description, tt.width))
		})
	}
}

func TestFormatAliases(t *testing.T) {
	assert.Equal(t, "", FormatAliases("aliases", nil, 27))
	assert.Equal(t, "     aliases:    a, b\n", FormatAliases("aliases", []string{"a", "b"}, 17))
	assert.Equal(t, "     aliases: a\n", FormatAliases("aliases", []string{"a"}, 5))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "short", WrapText("short", 10))
	assert.Equal(t, "one two\nthree four", WrapText("one two three four", 10))
	assert.Equal(t, "a\nsupercalifragilistic\nb", WrapText("a supercalifragilistic b", 5))
	assert.Equal(t, "one\ntwo\n\nthree", WrapText("one two\n\nthree", 4))
	assert.Equal(t, "unchanged text", WrapText("unchanged text", 0))
}

func TestWrapText_DisplayWidth(t *testing.T) {
	styled := "\x1b[1mone\x1b[0m two three"
	assert.Equal(t, "\x1b[1mone\x1b[0m two\nthree", WrapText(styled, 9))
	assert.Equal(t, "日本\n語", WrapText("日本 語", 4))
}

func TestCollapseBlankLines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a\nb", "a\nb"},
		{"a\n\nb\n", "a\nb\n"},
		{"a\n\n\n\nb", "a\nb"},
		{"a\n\n", "a\n"},
		{"\n\nabc", "\nabc"},
		{"\n", "\n"},
		{"a\n  \nb", "a\n  \nb"},
	}
	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.in, "\n", `\n`), func(t *testing.T) {
			got := CollapseBlankLines(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CollapseBlankLines(got), "collapsing must be idempotent")
			assert.NotContains(t, got, "\n\n")
		})
	}
}

func TestStripTrailingNewline(t *testing.T) {
	assert.Equal(t, "a", StripTrailingNewline("a\n"))
	assert.Equal(t, "a\n", StripTrailingNewline("a\n\n"))
	assert.Equal(t, "a", StripTrailingNewline("a"))
	assert.Equal(t, "", StripTrailingNewline(""))
}

func TestIndentContinuation(t *testing.T) {
	assert.Equal(t, "head", IndentContinuation("head", "│  "))
	assert.Equal(t, "head\n│  one\n│  two", IndentContinuation("head\none\ntwo", "│  "))
	assert.Equal(t, "head\n   one", IndentContinuation("head\none", "   "))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "", Pad(0))
	assert.Equal(t, "", Pad(-3))
	assert.Equal(t, "   ", Pad(3))
}
