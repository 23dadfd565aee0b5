package analyzer

import (
	"fmt"

	"github.com/barun-bash/uic/internal/ast"
	cerr "github.com/barun-bash/uic/internal/errors"
)

// nameScope is the global name set, filled in declaration order.
type nameScope struct {
	errs     *cerr.CompilerErrors
	declared map[string]bool
	order    []string
}

func (s *nameScope) declare(name string) bool {
	if s.declared[name] {
		return false
	}
	s.declared[name] = true
	s.order = append(s.order, name)
	return true
}

func (s *nameScope) use(name string, line int) {
	if s.declared[name] {
		return
	}
	msg := fmt.Sprintf("%s hasn't been defined", name)
	if sugg := cerr.DidYouMean(name, s.order); sugg != "" {
		s.errs.AddErrorWithSuggestion("E102", line, msg, sugg)
		return
	}
	s.errs.AddError("E102", line, msg)
}

type nameChecker struct {
	ast.BaseVisitor
}

// CheckNames verifies that component and variable names are unique and
// that every name used is declared earlier in the program. Views see
// everything declared in the definition file.
func CheckNames(prog *ast.Program, defFile string) *cerr.CompilerErrors {
	scope := &nameScope{errs: cerr.New(defFile), declared: make(map[string]bool)}
	c := &nameChecker{}
	c.Init(c)
	prog.Accept(c, scope)
	return scope.errs
}

func (c *nameChecker) VisitComponentDefinition(n *ast.ComponentDefinition, ctx any) any {
	scope := ctx.(*nameScope)
	if !scope.declare(n.Name) {
		scope.errs.AddError("E101", n.Line,
			fmt.Sprintf("component name, %s, is already in use. Please use another name", n.Name))
	}
	// Property values refer to parameters, not global names.
	return nil
}

func (c *nameChecker) VisitVariableDefinition(n *ast.VariableDefinition, ctx any) any {
	scope := ctx.(*nameScope)
	if scope.declared[n.Variable.Name] {
		scope.errs.AddError("E103", n.Line,
			fmt.Sprintf("variable name, %s, is already in use. Please use another name", n.Variable.Name))
		return nil
	}
	// The instantiation is resolved before the name is bound, so a
	// variable cannot refer to itself.
	c.Dispatch(n.Instantiation, scope)
	scope.declare(n.Variable.Name)
	return nil
}

func (c *nameChecker) VisitComponentInstantiation(n *ast.ComponentInstantiation, ctx any) any {
	ctx.(*nameScope).use(n.Name, n.Line)
	return c.BaseVisitor.VisitComponentInstantiation(n, ctx)
}

func (c *nameChecker) VisitVariable(n *ast.Variable, ctx any) any {
	ctx.(*nameScope).use(n.Name, n.Line)
	return nil
}

func (c *nameChecker) VisitViewProgram(n *ast.ViewProgram, ctx any) any {
	scope := ctx.(*nameScope)
	scope.errs.SetFile(viewFile(n))
	return c.BaseVisitor.VisitViewProgram(n, ctx)
}
