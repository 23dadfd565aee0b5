// Package analyzer runs the semantic checks that must pass before a
// program is handed to code generation.
package analyzer

import (
	"github.com/barun-bash/uic/internal/ast"
	cerr "github.com/barun-bash/uic/internal/errors"
)

// Pass identifies one checker.
type Pass int

const (
	PassNames Pass = iota
	PassParams
	PassViews
	PassProperties
)

func (p Pass) String() string {
	switch p {
	case PassNames:
		return "name resolution"
	case PassParams:
		return "parameter scope"
	case PassViews:
		return "view reference"
	case PassProperties:
		return "property type"
	}
	return "unknown"
}

type checker struct {
	pass  Pass
	check func(prog *ast.Program, defFile string) *cerr.CompilerErrors
}

var checkers = []checker{
	{PassNames, CheckNames},
	{PassParams, CheckParams},
	{PassViews, CheckViews},
	{PassProperties, CheckProperties},
}

// Analyze runs the checkers in order and stops at the first one that
// reports anything. It returns that pass and its report; when every
// pass is clean the report is empty.
func Analyze(prog *ast.Program, defFile string) (Pass, *cerr.CompilerErrors) {
	for _, c := range checkers {
		if errs := c.check(prog, defFile); errs.HasErrors() {
			return c.pass, errs
		}
	}
	return PassProperties, cerr.New(defFile)
}

// viewFile returns the file a view was read from.
func viewFile(view *ast.ViewProgram) string {
	return view.Name + ".view"
}
