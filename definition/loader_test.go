package definition

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/treehelp"
	"github.com/napalu/treehelp/errs"
	"github.com/napalu/treehelp/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func golden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func mustLoad(t *testing.T, name string) *treehelp.Command {
	t.Helper()
	cmd, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return cmd
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"app.yaml", YAML, false},
		{"app.YML", YAML, false},
		{"dir/app.toml", TOML, false},
		{"app.json", JSON, false},
		{"app.ini", "", true},
		{"app", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errs.ErrUnsupportedDefinition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_FormatterExample(t *testing.T) {
	app := mustLoad(t, "formatter.yaml")

	out, err := treehelp.Render(app, "formatter", types.All)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "formatter_all.golden"), out)

	out, err = treehelp.Render(app, "formatter", types.AllCompact)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "formatter_allcompact.golden"), out)
}

type optionFormatter struct {
	*treehelp.DefaultFormatter
}

func (f *optionFormatter) MakeOptionOpts(treehelp.OptionNode) string {
	return " OPTION"
}

func TestLoad_FormatterExampleCustomFormatter(t *testing.T) {
	app := mustLoad(t, "formatter.yaml")
	f := &optionFormatter{treehelp.MustNewFormatter(treehelp.WithColumnWidth(15))}
	f.Extend(f)
	require.NoError(t, app.Set(treehelp.WithFormatter(f)))

	out, err := treehelp.Render(app, "formatter", types.Normal)
	require.NoError(t, err)
	assert.Contains(t, out, "  --flag OPTION\n"+strings.Repeat(" ", 15)+"This is a flag\n")
	assert.Contains(t, out, "  -h,--help OPTION\n")

	two, err := treehelp.FindSubcommand(app, []string{"two"})
	require.NoError(t, err)
	out, err = treehelp.Render(two, "formatter two", types.Normal)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: formatter two [OPTIONS] [SUBCOMMAND]\n")
	assert.Contains(t, out, "  --twoflag OPTION\n")
}

func TestLoad_SubcommandsExample(t *testing.T) {
	app := mustLoad(t, "subcommands.toml")

	out, err := treehelp.Render(app, app.Name(), types.Normal)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "subcommands_normal.golden"), out)

	start, err := treehelp.FindSubcommand(app, []string{"start"})
	require.NoError(t, err)
	require.NotNil(t, start.HelpOption())
	assert.Equal(t, "--help", start.HelpOption().Name())
	assert.Equal(t, "--help-all", start.HelpAllOption().Name())

	out, err = treehelp.Render(start, "subcommands start", types.Normal)
	require.NoError(t, err)
	assert.Equal(t, "A great subcommand\n"+
		"Usage: subcommands start [OPTIONS]\n"+
		"\nOptions:\n"+
		"  -h,--help              Print this help message and exit\n"+
		"  --help-all             Expand all help\n"+
		"  -f,--file TEXT         File name\n"+
		"\n", out)
}

func TestLoad_References(t *testing.T) {
	app := mustLoad(t, "references.json")

	quiet := app.GetOption("--quiet")
	require.NotNil(t, quiet)
	require.Len(t, quiet.Excludes(), 1)
	assert.Equal(t, "--verbose", quiet.Excludes()[0].Name())
	assert.Equal(t, "DEPLOY_VERBOSE", app.GetOption("-v").EnvName())

	push, err := treehelp.FindSubcommand(app, []string{"push"})
	require.NoError(t, err)

	out, err := treehelp.Render(push, "deploy push", types.Normal)
	require.NoError(t, err)
	assert.Equal(t, "Push a release\n"+
		"[Between 1 and 2 of the follow options are required]\n"+
		"Usage: deploy push [OPTIONS] target\n"+
		"\nPositionals:\n"+
		"  target TEXT REQUIRED   Target environment\n"+
		"\nOptions:\n"+
		"  --tag TEXT [latest] Needs: target --verbose\n"+
		"\n", out)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"unsupported", "testdata/app.ini", errs.ErrUnsupportedDefinition},
		{"missing file", "testdata/missing.yaml", errs.ErrReadingDefinition},
		{"unknown key", "testdata/unknown_key.yaml", errs.ErrInvalidDefinition},
		{"unresolved reference", "testdata/unresolved.yaml", errs.ErrUnresolvedReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoad_MissingFileWrapsCause(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, strings.HasPrefix(err.Error(), `failed to read definition "testdata/missing.yaml": `))
}

func TestDecode(t *testing.T) {
	spec, err := Decode([]byte(`{"name":"app","subcommands":[{"name":"run","group":""}]}`), JSON)
	require.NoError(t, err)
	require.Len(t, spec.Subcommands, 1)
	require.NotNil(t, spec.Subcommands[0].Group)
	assert.Equal(t, "", *spec.Subcommands[0].Group)

	_, err = Decode([]byte(`name = "app"`), Format("ini"))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedDefinition))

	_, err = Decode([]byte(`name = "app"`+"\n"+`bogus = 1`), TOML)
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	hidden := ""
	spec := &CommandSpec{
		Name: "app",
		Help: &FlagSpec{Names: "-h,--help", Description: "Help"},
		Subcommands: []CommandSpec{
			{Name: "quiet", Help: &FlagSpec{}},
			{Name: "internal", Group: &hidden},
			{Name: "many", Options: []OptionSpec{{Names: "files", Expected: &Bounds{Min: 0, Max: treehelp.Unbounded}}}},
		},
	}

	app, err := NewLoader().Build(spec)
	require.NoError(t, err)

	quiet, err := treehelp.FindSubcommand(app, []string{"quiet"})
	require.NoError(t, err)
	assert.Nil(t, quiet.HelpOption())

	out, err := treehelp.Render(app, "app", types.Normal)
	require.NoError(t, err)
	assert.NotContains(t, out, "internal")

	many, err := treehelp.FindSubcommand(app, []string{"many"})
	require.NoError(t, err)
	out, err = treehelp.Render(many, "app many", types.Normal)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: app many [OPTIONS] [files...]\n")

	_, err = NewLoader().Build(nil)
	assert.True(t, errors.Is(err, errs.ErrNilNode))

	_, err = NewLoader().Build(&CommandSpec{Name: "bad name"})
	assert.True(t, errors.Is(err, errs.ErrInvalidName))
}

func TestBuild_MaxDepth(t *testing.T) {
	spec := &CommandSpec{Name: "n0"}
	current := spec
	for i := 0; i < 4; i++ {
		current.Subcommands = []CommandSpec{{Name: "n"}}
		current = &current.Subcommands[0]
	}

	_, err := NewLoader(WithMaxDepth(3)).Build(spec)
	assert.True(t, errors.Is(err, errs.ErrMaxDepthExceeded))

	_, err = NewLoader(WithMaxDepth(4)).Build(spec)
	assert.NoError(t, err)
}

func TestLoader_Logging(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := loader.Load("testdata/subcommands.toml")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"loading definition"`)
	assert.Contains(t, buf.String(), `"format":"toml"`)
	assert.Contains(t, buf.String(), `"message":"definition built"`)
}
