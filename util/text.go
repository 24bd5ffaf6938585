package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// FormatHelp lays out a two-column help line. The name is indented by two spaces and padded to
// width display columns; the description follows in the second column. A name that reaches width
// pushes the description to the next line. Line breaks inside the description are re-indented
// to width. The result always ends with a line break.
func FormatHelp(name, description string, width int) string {
	var sb strings.Builder

	name = "  " + name
	sb.WriteString(name)
	if description != "" {
		if w := runewidth.StringWidth(name); w >= width {
			sb.WriteString("\n")
			sb.WriteString(Pad(width))
		} else {
			sb.WriteString(Pad(width - w))
		}
		sb.WriteString(strings.ReplaceAll(description, "\n", "\n"+Pad(width)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatAliases renders the alias line of an anonymous command: the label padded to width, followed
// by the aliases separated by commas. No aliases yield an empty string.
func FormatAliases(label string, aliases []string, width int) string {
	if len(aliases) == 0 {
		return ""
	}

	head := "     " + label + ": "
	if w := runewidth.StringWidth(head); w < width {
		head += Pad(width - w)
	}

	return head + strings.Join(aliases, ", ") + "\n"
}

// WrapText breaks every line of text into lines of at most limit display columns, splitting at
// spaces and hyphens. Words longer than limit are kept whole. Escape sequences take no columns.
func WrapText(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	return ansi.Wordwrap(text, limit, "")
}

// CollapseBlankLines drops empty lines so that no two line breaks are adjacent. A leading or
// trailing line break is kept.
func CollapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	out = append(out, lines[0])
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" || i == len(lines)-1 {
			out = append(out, lines[i])
		}
	}

	return strings.Join(out, "\n")
}

// StripTrailingNewline removes a single trailing line break
func StripTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// IndentContinuation prefixes every line but the first with prefix
func IndentContinuation(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// Pad returns n spaces
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
