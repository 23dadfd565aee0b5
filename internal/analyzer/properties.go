package analyzer

import (
	"fmt"
	"slices"

	"github.com/barun-bash/uic/internal/ast"
	cerr "github.com/barun-bash/uic/internal/errors"
)

// valueKind is the variant of a property value, as far as the type
// table is concerned.
type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindBoolean
	kindVariable
	kindArith
	kindList
	kindCall
	kindOther
)

func kindOf(v ast.Value) valueKind {
	switch v.(type) {
	case *ast.StringConstant:
		return kindString
	case *ast.NumberConstant:
		return kindNumber
	case *ast.BooleanConstant:
		return kindBoolean
	case *ast.Variable:
		return kindVariable
	case *ast.ArithExpression:
		return kindArith
	case *ast.List:
		return kindList
	case *ast.FunctionCall:
		return kindCall
	}
	return kindOther
}

var (
	textLike    = []valueKind{kindString, kindVariable}
	sizeLike    = []valueKind{kindString, kindNumber, kindVariable}
	flagLike    = []valueKind{kindBoolean, kindVariable}
	literalOnly = []valueKind{kindString}
)

// expectedKinds lists the value variants each property accepts.
var expectedKinds = map[string][]valueKind{
	"color":           textLike,
	"backgroundcolor": textLike,
	"width":           sizeLike,
	"height":          sizeLike,
	"visible":         flagLike,
	"border":          textLike,
	"borderstyle":     literalOnly,
	"bordercolor":     textLike,
	"borderwidth":     sizeLike,
	"fontstyle":       literalOnly,
	"fontsize":        sizeLike,
	"gap":             sizeLike,
	"padding":         sizeLike,
	"direction":       literalOnly,
	"alignment":       literalOnly,

	"onclick":  {kindCall, kindList, kindVariable},
	"url":      textLike,
	"alt":      textLike,
	"disabled": flagLike,
	"checked":  flagLike,
	"value":    textLike,

	"text":       textLike,
	"components": {kindList, kindVariable},
}

// expectedValues restricts some properties to a fixed set of literals.
var expectedValues = map[string][]string{
	"direction":   {"row", "column"},
	"alignment":   {"left", "center", "right"},
	"fontstyle":   {"bold", "underline", "italic"},
	"borderstyle": {"dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset", "none", "hidden"},
}

var functionNames = []string{"open", "set"}

type propertyChecker struct {
	ast.BaseVisitor
}

type propertyScope struct {
	errs *cerr.CompilerErrors
	line int
}

// CheckProperties verifies each property assignment against the type
// and value tables. Names that do not classify (an unknown property,
// function or base component) are reported here too so they never
// reach code generation.
func CheckProperties(prog *ast.Program, defFile string) *cerr.CompilerErrors {
	scope := &propertyScope{errs: cerr.New(defFile)}
	c := &propertyChecker{}
	c.Init(c)
	if prog.Definition != nil {
		for _, comp := range prog.Definition.Components {
			c.Dispatch(comp, scope)
		}
	}
	return scope.errs
}

func (c *propertyChecker) VisitComponentDefinition(n *ast.ComponentDefinition, ctx any) any {
	scope := ctx.(*propertyScope)
	if n.Base == nil || n.Base.Kind == ast.ComponentInvalid {
		scope.errs.AddError("E405", n.Line, fmt.Sprintf("Unknown base component for '%s'.", n.Name))
	}
	for _, pa := range n.Properties {
		c.Dispatch(pa, ctx)
	}
	return nil
}

func (c *propertyChecker) VisitPropertyAssignment(n *ast.PropertyAssignment, ctx any) any {
	scope := ctx.(*propertyScope)
	scope.line = n.Line
	name := n.Property.Name

	if n.Property.Type() == ast.PropertyInvalid {
		msg := fmt.Sprintf("Unknown property '%s'.", name)
		if sugg := cerr.DidYouMean(name, ast.KnownProperties()); sugg != "" {
			scope.errs.AddErrorWithSuggestion("E403", n.Line, msg, sugg)
		} else {
			scope.errs.AddError("E403", n.Line, msg)
		}
		return nil
	}

	// Calls are checked wherever they appear in the value.
	c.Dispatch(n.Value, ctx)

	if kinds, ok := expectedKinds[name]; ok && !slices.Contains(kinds, kindOf(n.Value)) {
		scope.errs.AddError("E401", n.Line, fmt.Sprintf("Unexpected value type for property '%s'.", name))
		return nil
	}

	// A variable's value is not known until it is bound.
	str, ok := n.Value.(*ast.StringConstant)
	if !ok {
		return nil
	}
	if allowed, ok := expectedValues[name]; ok && !slices.Contains(allowed, str.Value) {
		scope.errs.AddError("E402", n.Line, fmt.Sprintf("Unexpected value for property '%s'.", name))
	}
	return nil
}

func (c *propertyChecker) VisitFunctionCall(n *ast.FunctionCall, ctx any) any {
	scope := ctx.(*propertyScope)
	if n.Kind == ast.FuncInvalid {
		msg := fmt.Sprintf("Unknown function '%s'.", n.Name)
		if sugg := cerr.DidYouMean(n.Name, functionNames); sugg != "" {
			scope.errs.AddErrorWithSuggestion("E404", scope.line, msg, sugg)
		} else {
			scope.errs.AddError("E404", scope.line, msg)
		}
	}
	return c.BaseVisitor.VisitFunctionCall(n, ctx)
}
