package cmdutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barun-bash/uic/internal/analyzer"
	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/codegen/react"
	"github.com/barun-bash/uic/internal/config"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func testConfig(t *testing.T, files map[string]string) *config.Config {
	t.Helper()
	root := t.TempDir()
	input := filepath.Join(root, "input")
	require.NoError(t, os.Mkdir(input, 0755))
	writeFiles(t, input, files)
	return &config.Config{
		Input:       input,
		Output:      filepath.Join(root, "out", "App.jsx"),
		DefaultView: "Main",
	}
}

const buttonDef = `
BUTTON HomeButton:
	text = 'Home'
	onclick = open(Main.view)

HomeButton AS hb
`

// ── Discover ──

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"App.def":   "",
		"Main.view": "",
		"A-b.view":  "",
		"A.view":    "",
		"notes.txt": "",
		"README.md": "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Sub.view"), 0755))

	src, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "App.def"), src.DefFile)
	assert.Equal(t, "App.def", src.DefName())

	var names []string
	for _, v := range src.ViewFiles {
		names = append(names, filepath.Base(v))
	}
	assert.Equal(t, []string{"A.view", "A-b.view", "Main.view"}, names)
}

func TestDiscoverErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"no def", map[string]string{"Main.view": ""}, "no .def file"},
		{"two defs", map[string]string{"A.def": "", "B.def": "", "Main.view": ""}, "more than one .def file"},
		{"no views", map[string]string{"App.def": ""}, "no .view files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)
			_, err := Discover(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// ── Build ──

func TestBuildWritesApp(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":    buttonDef,
		"Main.view":  "hb\n",
		"About.view": "HomeButton\n",
	})

	var log bytes.Buffer
	cli.SetColor(false)
	require.NoError(t, Build(cfg, cli.NewProgress(&log, true)))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "const {useState} = React;\n"))
	assert.Contains(t, out, "const MainPage = () => (")
	assert.Contains(t, out, "const AboutPage = () => (")
	assert.Contains(t, out, "currentView === \"About\" ? (<AboutPage />) :")
	assert.True(t, strings.HasSuffix(out, "ReactDOM.render(<App />, document.getElementById(\"root\"));\n"))

	for _, stage := range []string{"Reading files", "Parsing", "Static checking", "Evaluating"} {
		assert.Contains(t, log.String(), "✓ "+stage+" done")
	}
}

func TestBuildCheckFailure(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   buttonDef,
		"Main.view": "hb\nHomeButon\n",
	})

	err := Build(cfg, nil)
	var ce *CheckError
	require.True(t, errors.As(err, &ce), "expected *CheckError, got %v", err)
	assert.Equal(t, analyzer.PassNames, ce.Pass)
	require.Equal(t, 1, ce.Errs.Len())
	assert.Equal(t, "Main.view", ce.Errs.All()[0].File)
	assert.Equal(t, "name resolution check failed with 1 error", ce.Error())

	assert.NoFileExists(t, cfg.Output)
}

func TestFailedCheckRemovesStaleOutput(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   buttonDef,
		"Main.view": "hb\n",
	})
	require.NoError(t, Build(cfg, nil))
	require.FileExists(t, cfg.Output)

	// Break the view and rebuild: the earlier App must not survive.
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "Main.view"), []byte("HomeButon\n"), 0644))
	err := Build(cfg, nil)
	var ce *CheckError
	require.True(t, errors.As(err, &ce), "expected *CheckError, got %v", err)
	assert.NoFileExists(t, cfg.Output)

	// Discovery failures clean up too.
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale"), 0644))
	require.NoError(t, os.Remove(filepath.Join(cfg.Input, "App.def")))
	require.Error(t, Build(cfg, nil))
	assert.NoFileExists(t, cfg.Output)
}

func TestMissingDefaultView(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   buttonDef,
		"Main.view": "hb\n",
	})
	_, prog, err := Compile(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "", MissingDefaultView(prog))

	prog.DefaultView = "Home"
	assert.Equal(t, "Home.view", MissingDefaultView(prog))
}

func TestBuildSyntaxError(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   "BUTTON B\n\ttext = 'x'\n",
		"Main.view": "",
	})
	err := Build(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "App.def")
	assert.NoFileExists(t, cfg.Output)
}

func TestBuildRemovesPartialOutput(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   buttonDef,
		"Main.view": "hb\n",
	})
	cfg.DefaultView = "Home"

	// A stale artifact from an earlier run must not survive.
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Output), 0755))
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale"), 0644))

	err := Build(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, react.ErrDefaultView))
	assert.NoFileExists(t, cfg.Output)
}

func TestWriteOutputFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "App.jsx")
	err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

// ── Diagnostics ──

func TestPrintDiagnostics(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   buttonDef,
		"Main.view": "hbb\n",
	})
	err := Build(cfg, nil)
	var ce *CheckError
	require.True(t, errors.As(err, &ce))

	cli.SetColor(false)
	var buf bytes.Buffer
	PrintDiagnostics(&buf, ce)
	want := "✗ Main.view:1: hbb hasn't been defined [E102]\n" +
		"  suggestion: Did you mean hb?\n" +
		"\n✗ name resolution check failed with 1 error\n"
	assert.Equal(t, want, buf.String())
}

func TestCheckSummary(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"App.def":   buttonDef,
		"Main.view": "hb\n",
	})
	_, prog, err := Compile(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "App.def is valid: 1 component, 1 variable, 1 view", CheckSummary(prog, "App.def"))
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "s"},
		{1, ""},
		{2, "s"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n); got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

// ── Init ──

func TestInitProjectBuilds(t *testing.T) {
	dir := t.TempDir()
	written, err := InitProject(dir)
	require.NoError(t, err)
	assert.Len(t, written, 4)
	assert.FileExists(t, filepath.Join(dir, config.FileName))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.NoError(t, Build(cfg, nil))

	data, err := os.ReadFile(filepath.Join(dir, "ui", "output", "App.jsx"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "const [greetingFontsize, setGreetingFontsize] = useState(16);")
	assert.Contains(t, out, "setGreetingFontsize(greetingFontsize+2);")
	assert.Contains(t, out, "currentView === \"About\" ? (<AboutPage />) :")
}

func TestInitProjectRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	_, err := InitProject(dir)
	require.NoError(t, err)
	_, err = InitProject(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// ── Examples ──

// projectRoot returns the path to the repository root.
func projectRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

func TestExamplesBuild(t *testing.T) {
	dirs, err := filepath.Glob(filepath.Join(projectRoot(), "examples", "*", config.FileName))
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	for _, cfgFile := range dirs {
		dir := filepath.Dir(cfgFile)
		t.Run(filepath.Base(dir), func(t *testing.T) {
			cfg, err := config.Load(dir)
			require.NoError(t, err)
			cfg.Override("", filepath.Join(t.TempDir(), "App.jsx"), "")
			require.NoError(t, cfg.Validate())
			require.NoError(t, Build(cfg, nil))
			assert.FileExists(t, cfg.Output)
		})
	}
}
