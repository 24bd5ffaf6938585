package treehelp

import (
	"github.com/ef-ds/deque"
	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/util"
)

type frame struct {
	node  CommandNode
	depth int
}

// Visit walks the tree below root depth-first, parents before children and children in insertion
// order. Returning false from fn skips the children of the visited command. The walk keeps its own
// stack, so deep trees do not grow the goroutine stack.
func Visit(root CommandNode, fn func(cmd CommandNode, depth int) bool) {
	if root == nil {
		return
	}

	var stack deque.Deque
	stack.PushBack(frame{node: root})
	for stack.Len() > 0 {
		v, _ := stack.PopBack()
		f := v.(frame)
		if !fn(f.node, f.depth) {
			continue
		}
		children := f.node.Subcommands(nil)
		util.Reverse(children)
		for _, child := range children {
			stack.PushBack(frame{node: child, depth: f.depth + 1})
		}
	}
}

// Validate checks that the tree below root is acyclic and at most maxDepth levels deep, that
// requirement bounds are consistent and that every needs and excludes reference points to an option
// of the same tree. A maxDepth of 0 or less uses DefaultMaxDepth.
func Validate(root CommandNode, maxDepth int) error {
	if root == nil {
		return errs.ErrNilNode.WithArgs("command")
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var (
		err     error
		seen    = map[CommandNode]struct{}{}
		options = map[OptionNode]struct{}{}
		all     []OptionNode
	)
	Visit(root, func(cmd CommandNode, depth int) bool {
		if err != nil {
			return false
		}
		if _, dup := seen[cmd]; dup {
			parent := ""
			if p := cmd.Parent(); p != nil {
				parent = p.Name()
			}
			err = errs.ErrCircularReference.WithArgs(cmd.Name(), parent)
			return false
		}
		seen[cmd] = struct{}{}
		if depth > maxDepth {
			err = errs.ErrMaxDepthExceeded.WithArgs(maxDepth)
			return false
		}
		if !validBounds(cmd.RequireSubcommandMin(), cmd.RequireSubcommandMax()) {
			err = errs.ErrInvalidRequirement.WithArgs(cmd.RequireSubcommandMin(), cmd.RequireSubcommandMax())
			return false
		}
		if !validBounds(cmd.RequireOptionMin(), cmd.RequireOptionMax()) {
			err = errs.ErrInvalidRequirement.WithArgs(cmd.RequireOptionMin(), cmd.RequireOptionMax())
			return false
		}
		for _, opt := range cmd.Options(nil) {
			options[opt] = struct{}{}
			all = append(all, opt)
		}
		return true
	})
	if err != nil {
		return err
	}

	for _, opt := range all {
		for _, refs := range [][]OptionNode{opt.Needs(), opt.Excludes()} {
			for _, ref := range refs {
				if _, ok := options[ref]; !ok {
					return errs.ErrForeignReference.WithArgs(opt.Name(), ref.Name())
				}
			}
		}
	}

	return nil
}

// FindSubcommand follows path from root, matching each element against the names and aliases of
// the current command's subcommands. Subcommands of anonymous option groups are searched as if they
// were direct children.
func FindSubcommand(root CommandNode, path []string) (CommandNode, error) {
	if root == nil {
		return nil, errs.ErrNilNode.WithArgs("command")
	}

	current := root
	for _, elem := range path {
		next := matchSubcommand(current, elem)
		if next == nil {
			return nil, errs.ErrSubcommandNotFound.WithArgs(elem, current.Name())
		}
		current = next
	}

	return current, nil
}

func matchSubcommand(cmd CommandNode, name string) CommandNode {
	var stack deque.Deque
	stack.PushBack(cmd)
	for stack.Len() > 0 {
		v, _ := stack.PopFront()
		for _, sub := range v.(CommandNode).Subcommands(nil) {
			if sub.Name() == "" {
				stack.PushBack(sub)
				continue
			}
			if sub.Name() == name {
				return sub
			}
			for _, alias := range sub.Aliases() {
				if alias == name {
					return sub
				}
			}
		}
	}
	return nil
}
