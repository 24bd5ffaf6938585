package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/napalu/treehelp"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	glyphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// colorFormatter highlights option group headers
type colorFormatter struct {
	*treehelp.DefaultFormatter
	header lipgloss.Style
}

func (f *colorFormatter) MakeGroup(group string, positional bool, opts []treehelp.OptionNode) string {
	return f.DefaultFormatter.MakeGroup(f.header.Render(group), positional, opts)
}

func colorGlyphs(glyphs treehelp.TreeGlyphs) treehelp.TreeGlyphs {
	return treehelp.TreeGlyphs{
		Bar:    glyphStyle.Render(glyphs.Bar),
		Last:   glyphStyle.Render(glyphs.Last),
		Branch: glyphStyle.Render(glyphs.Branch),
	}
}
