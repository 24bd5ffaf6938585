package treehelp

import (
	"strings"

	"github.com/napalu/treehelp/types/orderedmap"
)

// OptionGroups returns the distinct non-empty group labels of opts in first-seen order. Labels
// differing only in case are the same group; the first spelling wins.
func OptionGroups(opts []OptionNode) []string {
	return groupsOf(opts, OptionNode.Group)
}

// CommandGroups returns the distinct non-empty group labels of cmds in first-seen order. Labels
// differing only in case are the same group; the first spelling wins.
func CommandGroups(cmds []CommandNode) []string {
	return groupsOf(cmds, CommandNode.Group)
}

// SameGroup compares group labels case-insensitively
func SameGroup(a, b string) bool {
	return strings.EqualFold(a, b)
}

func groupsOf[T any](items []T, group func(T) string) []string {
	seen := orderedmap.NewOrderedMap[string, string]()
	for _, item := range items {
		if g := group(item); g != "" {
			seen.SetIfAbsent(strings.ToLower(g), g)
		}
	}
	return seen.Values()
}

func inOptionGroup(group string) OptionFilter {
	return func(opt OptionNode) bool {
		return SameGroup(opt.Group(), group)
	}
}

func named(cmd CommandNode) bool {
	return cmd.Name() != ""
}
