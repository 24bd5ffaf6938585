package util

import (
	"golang.org/x/term"
)

// Terminal abstracts the terminal queries used to size help output
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements Terminal with golang.org/x/term
type DefaultTerminal struct{}

// IsTerminal checks if fd refers to a terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the visible dimensions of the terminal behind fd
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the width of the terminal behind fd, or fallback when fd is not a terminal
// or its size cannot be determined
func TerminalWidth(terminal Terminal, fd int, fallback int) int {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}
	if !terminal.IsTerminal(fd) {
		return fallback
	}
	width, _, err := terminal.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
