// Package cmdutil holds the pipeline shared by the uic commands: source
// discovery, parse, build, check and generation into the output file.
package cmdutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/barun-bash/uic/internal/analyzer"
	"github.com/barun-bash/uic/internal/ast"
	"github.com/barun-bash/uic/internal/builder"
	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/codegen/react"
	"github.com/barun-bash/uic/internal/config"
	cerr "github.com/barun-bash/uic/internal/errors"
	"github.com/barun-bash/uic/internal/parser"
)

const (
	defExt  = ".def"
	viewExt = ".view"
)

// Sources lists the files of one input directory.
type Sources struct {
	DefFile   string   // the single .def file
	ViewFiles []string // every .view file, sorted by name
}

// DefName returns the .def file name without its directory.
func (s *Sources) DefName() string {
	return filepath.Base(s.DefFile)
}

// Discover finds the .def file and the .view files in dir.
// Exactly one .def file and at least one .view file are required.
func Discover(dir string) (*Sources, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	src := &Sources{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		switch filepath.Ext(e.Name()) {
		case defExt:
			if src.DefFile != "" {
				return nil, fmt.Errorf("%s: more than one %s file (%s, %s)", dir, defExt, src.DefFile, path)
			}
			src.DefFile = path
		case viewExt:
			src.ViewFiles = append(src.ViewFiles, path)
		}
	}

	if src.DefFile == "" {
		return nil, fmt.Errorf("%s: no %s file found", dir, defExt)
	}
	if len(src.ViewFiles) == 0 {
		return nil, fmt.Errorf("%s: no %s files found", dir, viewExt)
	}
	slices.SortFunc(src.ViewFiles, func(a, b string) int {
		return strings.Compare(viewName(a), viewName(b))
	})
	return src, nil
}

// viewName is the file stem, which is how other files refer to a view.
func viewName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), viewExt)
}

// LoadProgram reads, parses and builds every source file.
func LoadProgram(src *Sources, defaultView string, progress *cli.Progress) (*ast.Program, error) {
	progress.Start("Parsing")
	source, err := os.ReadFile(src.DefFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.DefFile, err)
	}
	defTree, err := parser.ParseDefinition(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.DefName(), err)
	}
	def, err := builder.BuildDefinition(defTree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.DefName(), err)
	}

	prog := &ast.Program{Definition: def, DefaultView: defaultView}
	for _, path := range src.ViewFiles {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		name := viewName(path)
		tree, err := parser.ParseView(string(source))
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", name, viewExt, err)
		}
		view, err := builder.BuildView(name, tree)
		if err != nil {
			return nil, err
		}
		prog.Views = append(prog.Views, view)
	}
	progress.Done()
	return prog, nil
}

// CheckError is returned when a checker pass reports diagnostics.
type CheckError struct {
	Pass analyzer.Pass
	Errs *cerr.CompilerErrors
}

func (e *CheckError) Error() string {
	n := e.Errs.Len()
	return fmt.Sprintf("%s check failed with %d error%s", e.Pass, n, Plural(n))
}

// Check runs the checker passes. It returns a *CheckError for the first
// pass that reports anything.
func Check(prog *ast.Program, defFile string, progress *cli.Progress) error {
	progress.Start("Static checking")
	pass, errs := analyzer.Analyze(prog, defFile)
	if errs.HasErrors() {
		return &CheckError{Pass: pass, Errs: errs}
	}
	progress.Done()
	return nil
}

// Compile discovers, loads and checks the sources described by cfg.
func Compile(cfg *config.Config, progress *cli.Progress) (*Sources, *ast.Program, error) {
	progress.Start("Reading files")
	src, err := Discover(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	progress.Done()

	prog, err := LoadProgram(src, cfg.DefaultView, progress)
	if err != nil {
		return nil, nil, err
	}
	if err := Check(prog, src.DefName(), progress); err != nil {
		return src, nil, err
	}
	return src, prog, nil
}

// Build compiles the sources described by cfg and writes the App to
// cfg.Output. Nothing is left at cfg.Output when the build fails, not
// even the App of an earlier successful build.
func Build(cfg *config.Config, progress *cli.Progress) error {
	_, prog, err := Compile(cfg, progress)
	if err != nil {
		if rmErr := removeStale(cfg.Output); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		return err
	}

	progress.Start("Evaluating")
	err = writeOutput(cfg.Output, func(w io.Writer) error {
		return react.Generator{}.Generate(w, prog)
	})
	if err != nil {
		return fmt.Errorf("generating %s: %w", cfg.Output, err)
	}
	progress.Done()
	return nil
}

// removeStale deletes a previous build's output, if any.
func removeStale(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale output: %w", err)
	}
	return nil
}

// writeOutput runs gen against a buffered writer on path. The writer is
// flushed and the file closed on every path; on failure the partial
// file is removed.
func writeOutput(path string, gen func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	w := bufio.NewWriter(f)

	defer func() {
		err = errors.Join(err, w.Flush(), f.Close())
		if err != nil {
			os.Remove(path)
		}
	}()
	return gen(w)
}

// PrintDiagnostics writes a failed check report to w.
func PrintDiagnostics(w io.Writer, ce *CheckError) {
	for _, e := range ce.Errs.All() {
		fmt.Fprintln(w, cli.Error(e.Format()))
		if e.Suggestion != "" {
			fmt.Fprintln(w, cli.Muted("  suggestion: "+e.Suggestion))
		}
	}
	fmt.Fprintf(w, "\n%s\n", cli.Error(ce.Error()))
}
