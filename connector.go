package treehelp

import (
	"github.com/napalu/treehelp/util"
)

// Connector describes how a command is attached to the subcommand tree drawn by its parent
type Connector struct {
	// Listed is set when the command appears in its parent's filtered sibling list
	Listed bool
	// Last is set for the last listed sibling and for commands which are not listed
	Last bool
	// Glyph is drawn in front of the command
	Glyph string
	// Bar continues the branch below a command which is not the last, and is empty otherwise
	Bar string
	// Ancestors holds, from the topmost listed ancestor down to the parent, whether a bar
	// continues at that level
	Ancestors []bool
}

// Continuation returns the one-column prefix of the lines below the command's header
func (c Connector) Continuation() string {
	if c.Bar != "" {
		return c.Bar
	}
	return " "
}

// Siblings returns the named subcommands of node's parent which share node's group, in insertion
// order. A node without a parent has no siblings, and neither has a hidden node.
func Siblings(node CommandNode) []CommandNode {
	parent := node.Parent()
	if parent == nil || node.Group() == "" {
		return nil
	}
	return parent.Subcommands(func(sub CommandNode) bool {
		return named(sub) && SameGroup(sub.Group(), node.Group())
	})
}

// ResolveConnector decides the glyphs of node. Only the final element of the filtered sibling list is
// last; commands absent from the list, such as roots, hidden commands and anonymous option groups,
// get no bar.
func ResolveConnector(node CommandNode, glyphs TreeGlyphs) Connector {
	c := resolveLevel(node, glyphs)

	for n := node.Parent(); n != nil && n.Parent() != nil; n = n.Parent() {
		level := resolveLevel(n, glyphs)
		c.Ancestors = append(c.Ancestors, level.Bar != "")
	}
	util.Reverse(c.Ancestors)

	return c
}

func resolveLevel(node CommandNode, glyphs TreeGlyphs) Connector {
	siblings := Siblings(node)
	for i, s := range siblings {
		if s != node {
			continue
		}
		if i == len(siblings)-1 {
			return Connector{Listed: true, Last: true, Glyph: glyphs.Last}
		}
		return Connector{Listed: true, Glyph: glyphs.Branch, Bar: glyphs.Bar}
	}

	return Connector{Last: true}
}
