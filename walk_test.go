package treehelp

import (
	"errors"
	"testing"

	"github.com/napalu/treehelp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisit(t *testing.T) {
	app := newOneTwoTree(t)

	var order []string
	var depths []int
	Visit(app, func(cmd CommandNode, depth int) bool {
		order = append(order, cmd.Name())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"app", "one", "three", "two", "four"}, order)
	assert.Equal(t, []int{0, 1, 2, 1, 2}, depths)

	order = nil
	Visit(app, func(cmd CommandNode, depth int) bool {
		order = append(order, cmd.Name())
		return cmd.Name() != "one"
	})
	assert.Equal(t, []string{"app", "one", "two", "four"}, order)

	Visit(nil, func(CommandNode, int) bool {
		t.Fatal("visited nil root")
		return true
	})
}

func TestVisit_DeepTree(t *testing.T) {
	root := mustCommand(t, WithName("n"))
	current := root
	for i := 0; i < 5000; i++ {
		current = mustSubcommand(t, current, WithName("n"))
	}

	count := 0
	Visit(root, func(CommandNode, int) bool {
		count++
		return true
	})
	assert.Equal(t, 5001, count)
	assert.True(t, errors.Is(Validate(root, 0), errs.ErrMaxDepthExceeded))
}

func TestValidate(t *testing.T) {
	app := newOneTwoTree(t)
	assert.NoError(t, Validate(app, 0))
	assert.NoError(t, Validate(app, 2))
	assert.True(t, errors.Is(Validate(app, 1), errs.ErrMaxDepthExceeded))
	assert.True(t, errors.Is(Validate(nil, 0), errs.ErrNilNode))
}

func TestValidate_Cycle(t *testing.T) {
	root := &fakeNode{name: "root"}
	child := &fakeNode{name: "child"}
	root.add(child)
	child.add(root)

	err := Validate(root, 0)
	assert.True(t, errors.Is(err, errs.ErrCircularReference), "got %v", err)
}

func TestValidate_Bounds(t *testing.T) {
	root := &fakeNode{name: "root"}
	root.add(&fakeNode{name: "bad", optionMin: 3, optionMax: 1})

	err := Validate(root, 0)
	assert.True(t, errors.Is(err, errs.ErrInvalidRequirement), "got %v", err)
}

func TestValidate_ForeignReference(t *testing.T) {
	outside := mustOption(t, WithLongName("outside"))

	app := mustCommand(t, WithName("app"))
	local := mustAddOption(t, app, WithLongName("local"))
	sub := mustSubcommand(t, app, WithName("sub"))
	mustAddOption(t, sub, WithLongName("ok"), WithNeeds(local))
	require.NoError(t, Validate(app, 0))

	mustAddOption(t, sub, WithLongName("bad"), WithExcludes(outside))
	err := Validate(app, 0)
	assert.True(t, errors.Is(err, errs.ErrForeignReference), "got %v", err)
}

func TestFindSubcommand(t *testing.T) {
	app := mustCommand(t, WithName("app"))
	remote := mustSubcommand(t, app, WithName("remote"), WithAliases("rem"))
	add := mustSubcommand(t, remote, WithName("add"))
	group := mustSubcommand(t, app, WithGroup("Extras"))
	extra := mustSubcommand(t, group, WithName("extra"))

	tests := []struct {
		path []string
		want CommandNode
	}{
		{nil, app},
		{[]string{"remote"}, remote},
		{[]string{"rem", "add"}, add},
		{[]string{"extra"}, extra},
	}
	for _, tt := range tests {
		got, err := FindSubcommand(app, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FindSubcommand(app, []string{"remote", "missing"})
	assert.True(t, errors.Is(err, errs.ErrSubcommandNotFound))
	assert.Equal(t, `subcommand "missing" not found under "remote"`, err.Error())

	_, err = FindSubcommand(nil, nil)
	assert.True(t, errors.Is(err, errs.ErrNilNode))
}
