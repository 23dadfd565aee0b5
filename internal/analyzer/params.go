package analyzer

import (
	"fmt"

	"github.com/barun-bash/uic/internal/ast"
	cerr "github.com/barun-bash/uic/internal/errors"
)

// paramScope holds the names one component body may reference.
type paramScope struct {
	errs  *cerr.CompilerErrors
	names map[string]bool
	line  int
}

type paramChecker struct {
	ast.BaseVisitor
}

// CheckParams verifies, per component definition, that every variable
// assigned directly to a property is one of the component's parameters.
//
// The scope is rebuilt from the direct variable values only, and only
// direct values are checked: variables inside lists, calls and
// arithmetic are left to inference. A scope name must also appear in
// the definition's parameter list.
func CheckParams(prog *ast.Program, defFile string) *cerr.CompilerErrors {
	errs := cerr.New(defFile)
	c := &paramChecker{}
	c.Init(c)
	if prog.Definition != nil {
		prog.Definition.Accept(c, errs)
	}
	return errs
}

// Variable definitions are checked by name resolution.
func (c *paramChecker) VisitDefProgram(n *ast.DefProgram, ctx any) any {
	for _, comp := range n.Components {
		c.Dispatch(comp, ctx)
	}
	return nil
}

func (c *paramChecker) VisitComponentDefinition(n *ast.ComponentDefinition, ctx any) any {
	declared := make(map[string]bool)
	if n.Params != nil {
		for _, name := range n.Params.Names() {
			declared[name] = true
		}
	}

	scope := &paramScope{errs: ctx.(*cerr.CompilerErrors), names: make(map[string]bool)}
	for _, pa := range n.Properties {
		if v, ok := pa.Value.(*ast.Variable); ok && declared[v.Name] {
			scope.names[v.Name] = true
		}
	}

	for _, pa := range n.Properties {
		scope.line = pa.Line
		c.Dispatch(pa.Value, scope)
	}
	return nil
}

func (c *paramChecker) VisitVariable(n *ast.Variable, ctx any) any {
	scope := ctx.(*paramScope)
	if !scope.names[n.Name] {
		scope.errs.AddError("E201", scope.line,
			fmt.Sprintf("property assignment is referencing undefined parameter %s", n.Name))
	}
	return nil
}

// Only direct values are in scope for this check.

func (c *paramChecker) VisitList(*ast.List, any) any                       { return nil }
func (c *paramChecker) VisitFunctionCall(*ast.FunctionCall, any) any       { return nil }
func (c *paramChecker) VisitArithExpression(*ast.ArithExpression, any) any { return nil }
func (c *paramChecker) VisitObjectPropertyValue(*ast.ObjectPropertyValue, any) any {
	return nil
}
