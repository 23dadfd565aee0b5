// Package builder converts parse trees into the AST.
package builder

import (
	"fmt"
	"strconv"

	"github.com/barun-bash/uic/internal/ast"
	"github.com/barun-bash/uic/internal/lexer"
	"github.com/barun-bash/uic/internal/parser"
)

// BuildDefinition transforms a parsed .def file into a DefProgram,
// inferring each component definition's parameter list.
func BuildDefinition(ctx *parser.DefProgramContext) (*ast.DefProgram, error) {
	def := &ast.DefProgram{}

	for _, c := range ctx.Components {
		comp, err := buildComponent(c)
		if err != nil {
			return nil, err
		}
		def.Components = append(def.Components, comp)
	}

	for _, v := range ctx.VariableDefinitions {
		inst, err := buildInstantiation(v.Instantiation)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.Name.Literal, err)
		}
		def.Variables = append(def.Variables, &ast.VariableDefinition{
			Variable:      &ast.Variable{Name: v.Name.Literal, Line: v.Name.Line},
			Instantiation: inst,
			Line:          v.Name.Line,
		})
	}

	return def, nil
}

// BuildView transforms a parsed .view file into a ViewProgram named
// after the file stem.
func BuildView(name string, ctx *parser.ViewProgramContext) (*ast.ViewProgram, error) {
	view := &ast.ViewProgram{Name: name}

	for _, u := range ctx.Usages {
		switch {
		case u.Instantiation != nil:
			inst, err := buildInstantiation(u.Instantiation)
			if err != nil {
				return nil, fmt.Errorf("view %s: %w", name, err)
			}
			view.Usages = append(view.Usages, inst)
		case u.Name != nil:
			view.Usages = append(view.Usages, &ast.Variable{Name: u.Name.Literal, Line: u.Name.Line})
		default:
			return nil, fmt.Errorf("view %s: empty component usage", name)
		}
	}

	return view, nil
}

func buildComponent(c *parser.ComponentContext) (*ast.ComponentDefinition, error) {
	comp := &ast.ComponentDefinition{
		Base: &ast.BaseComponent{Kind: ast.ParseComponentKind(c.BaseComponent.Literal)},
		Name: c.Name.Literal,
		Line: c.Name.Line,
	}

	for _, pa := range c.Properties {
		val, err := buildPropertyValue(pa)
		if err != nil {
			return nil, fmt.Errorf("component %s, property %s: %w", comp.Name, pa.Property.Literal, err)
		}
		comp.Properties = append(comp.Properties, &ast.PropertyAssignment{
			Property: &ast.Property{Name: pa.Property.Literal},
			Value:    val,
			Line:     pa.Property.Line,
		})
	}

	comp.Params = InferParams(comp.Properties)
	return comp, nil
}

func buildPropertyValue(pa *parser.PropertyAssignContext) (ast.Value, error) {
	switch {
	case pa.Function != nil:
		return buildFunction(pa.Function)
	case pa.List != nil:
		return buildList(pa.List)
	case pa.Value != nil:
		return buildValue(pa.Value)
	}
	return nil, fmt.Errorf("property assignment is missing the right-hand side")
}

// buildInstantiation always returns a non-nil argument list.
func buildInstantiation(ci *parser.ComponentInstantiationContext) (*ast.ComponentInstantiation, error) {
	inst := &ast.ComponentInstantiation{
		Name: ci.Name.Literal,
		Args: []*ast.NamedArgument{},
		Line: ci.Name.Line,
	}

	for _, a := range ci.Assignments {
		var (
			val ast.Value
			err error
		)
		switch {
		case a.List != nil:
			val, err = buildList(a.List)
		case a.Value != nil:
			val, err = buildValue(a.Value)
		default:
			err = fmt.Errorf("argument %s has no value", a.Name.Literal)
		}
		if err != nil {
			return nil, err
		}
		inst.Args = append(inst.Args, &ast.NamedArgument{Name: a.Name.Literal, Value: val})
	}

	return inst, nil
}

func buildFunction(f *parser.FunctionContext) (*ast.FunctionCall, error) {
	call := &ast.FunctionCall{
		Kind: ast.ParseFunctionKind(f.Name.Literal),
		Name: f.Name.Literal,
		Args: []ast.Value{},
	}

	for _, arg := range f.Args {
		var (
			val ast.Value
			err error
		)
		switch {
		case arg.ObjProp != nil:
			val = buildObjProp(arg.ObjProp)
		case arg.View != nil:
			val = &ast.ViewReference{Name: arg.View.Name.Literal}
		case arg.Value != nil:
			val, err = buildValue(arg.Value)
		default:
			err = fmt.Errorf("empty argument in call to %s", f.Name.Literal)
		}
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, val)
	}

	return call, nil
}

func buildList(l *parser.ListContext) (*ast.List, error) {
	list := &ast.List{}

	switch {
	case len(l.Values) > 0:
		for _, v := range l.Values {
			val, err := buildValue(v)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, val)
		}
	case len(l.Functions) > 0:
		for _, f := range l.Functions {
			call, err := buildFunction(f)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, call)
		}
	default:
		return nil, fmt.Errorf("received invalid list contents")
	}

	return list, nil
}

func buildValue(v *parser.ValueContext) (ast.Value, error) {
	switch {
	case v.Name != nil:
		return &ast.Variable{Name: v.Name.Literal, Line: v.Name.Line}, nil
	case v.Number != nil:
		return buildNumber(*v.Number)
	case v.String != nil:
		return &ast.StringConstant{Value: unquote(v.String.Literal)}, nil
	case v.Boolean != nil:
		return &ast.BooleanConstant{Value: v.Boolean.Literal == "true"}, nil
	case v.Arith != nil:
		return buildArith(v.Arith)
	}
	return nil, fmt.Errorf("value type is invalid")
}

func buildArith(a *parser.ArithExpContext) (*ast.ArithExpression, error) {
	if len(a.Terms) != len(a.Ops)+1 {
		return nil, fmt.Errorf("arithmetic expression has %d terms for %d operators", len(a.Terms), len(a.Ops))
	}

	exp := &ast.ArithExpression{}
	for _, t := range a.Terms {
		switch {
		case t.Number != nil:
			n, err := buildNumber(*t.Number)
			if err != nil {
				return nil, err
			}
			exp.Terms = append(exp.Terms, n)
		case t.ObjProp != nil:
			exp.Terms = append(exp.Terms, buildObjProp(t.ObjProp))
		case t.Name != nil:
			exp.Terms = append(exp.Terms, &ast.Variable{Name: t.Name.Literal, Line: t.Name.Line})
		default:
			return nil, fmt.Errorf("no possible number found in arithmetic term")
		}
	}
	for _, tok := range a.Ops {
		op, ok := ast.ParseOperator(tok.Literal)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operator %q", tok.Line, tok.Literal)
		}
		exp.Ops = append(exp.Ops, &ast.ArithOperation{Op: op})
	}
	return exp, nil
}

func buildObjProp(o *parser.ObjPropContext) *ast.ObjectPropertyValue {
	return &ast.ObjectPropertyValue{
		Variable: &ast.Variable{Name: o.Object.Literal, Line: o.Object.Line},
		Property: &ast.Property{Name: o.Property.Literal},
	}
}

func buildNumber(tok lexer.Token) (*ast.NumberConstant, error) {
	n, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid number %q: %w", tok.Line, tok.Literal, err)
	}
	return &ast.NumberConstant{Value: n}, nil
}

// unquote strips the surrounding quotes of a string literal. Escapes
// are not interpreted.
func unquote(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}
