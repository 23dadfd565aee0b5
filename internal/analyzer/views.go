package analyzer

import (
	"fmt"

	"github.com/barun-bash/uic/internal/ast"
	cerr "github.com/barun-bash/uic/internal/errors"
)

type viewScope struct {
	errs  *cerr.CompilerErrors
	views map[string]bool
	files []string // in program order, for suggestions
	line  int
}

type viewChecker struct {
	ast.BaseVisitor
}

// CheckViews verifies that every view reference passed to a function in
// a component definition names one of the program's view files.
func CheckViews(prog *ast.Program, defFile string) *cerr.CompilerErrors {
	scope := &viewScope{errs: cerr.New(defFile), views: make(map[string]bool)}
	for _, view := range prog.Views {
		scope.views[view.Name] = true
		scope.files = append(scope.files, viewFile(view))
	}

	c := &viewChecker{}
	c.Init(c)
	if prog.Definition != nil {
		for _, comp := range prog.Definition.Components {
			c.Dispatch(comp, scope)
		}
	}
	return scope.errs
}

func (c *viewChecker) VisitPropertyAssignment(n *ast.PropertyAssignment, ctx any) any {
	ctx.(*viewScope).line = n.Line
	return c.Dispatch(n.Value, ctx)
}

func (c *viewChecker) VisitViewReference(n *ast.ViewReference, ctx any) any {
	scope := ctx.(*viewScope)
	if scope.views[n.Name] {
		return nil
	}
	file := n.Name + ".view"
	msg := fmt.Sprintf("%s doesn't exist", file)
	if sugg := cerr.DidYouMean(file, scope.files); sugg != "" {
		scope.errs.AddErrorWithSuggestion("E301", scope.line, msg, sugg)
		return nil
	}
	scope.errs.AddError("E301", scope.line, msg)
	return nil
}
