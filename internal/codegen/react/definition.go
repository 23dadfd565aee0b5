package react

import (
	"fmt"
	"strings"

	"github.com/barun-bash/uic/internal/ast"
)

// containerStyles are written before the user's styles on every
// CONTAINER, so explicit assignments override them.
var containerStyles = [][2]string{
	{"display", "grid"},
	{"justifyItems", "center"},
	{"alignItems", "center"},
	{"gap", "10px"},
	{"padding", "10px"},
}

// definitionEvaluator renders a hoisted copy of the definition program:
// state hooks, one arrow component per definition, then one constant
// per variable definition.
type definitionEvaluator struct {
	baseEvaluator
}

func newDefinitionEvaluator() *definitionEvaluator {
	d := &definitionEvaluator{}
	d.Init(d)
	return d
}

func (d *definitionEvaluator) VisitDefProgram(n *ast.DefProgram, ctx any) any {
	g := ctx.(*genContext)
	for _, cell := range g.cells.cells {
		g.write("\tconst [", cell.Name, ", ", cell.Setter, "] = useState(")
		d.Dispatch(cell.Initial, ctx)
		g.write(");\n")
	}
	g.write("\n")
	for _, c := range n.Components {
		d.Dispatch(c, ctx)
	}
	g.write("\n")
	for _, v := range n.Variables {
		d.Dispatch(v, ctx)
	}
	g.write("\n")
	return nil
}

func (d *definitionEvaluator) VisitComponentDefinition(n *ast.ComponentDefinition, ctx any) any {
	g := ctx.(*genContext)
	kind := n.Base.Kind
	tag := kind.Tag()

	g.write("\tconst ", n.Name, " = ({", strings.Join(props(n, g.cells), ", "), "}) => (\n")
	g.write("\t\t<", tag, "\n")

	g.write("\t\t\tstyle = {{\n")
	switch kind {
	case ast.ComponentContainer:
		for _, s := range containerStyles {
			g.write("\t\t\t\t", s[0], `: "`, s[1], "\",\n")
		}
	case ast.ComponentButton:
		g.write("\t\t\t\tcursor: \"pointer\",\n")
	}
	d.writeAssignments(n, ast.PropertyStyle, ctx)
	g.write("\t\t\t}}\n")

	switch kind {
	case ast.ComponentCheckbox:
		g.write("\t\t\ttype=\"checkbox\"\n")
	case ast.ComponentTextInput:
		g.write("\t\t\ttype=\"text\"\n")
	}
	d.writeAssignments(n, ast.PropertyFunctional, ctx)
	g.write("\t\t>\n")

	d.writeAssignments(n, ast.PropertyChild, ctx)
	if kind == ast.ComponentContainer {
		g.write("\t\t\t{components}\n")
	}

	g.write("\t\t</", tag, ">\n\t);\n")
	return nil
}

func (d *definitionEvaluator) writeAssignments(n *ast.ComponentDefinition, typ ast.PropertyType, ctx any) {
	for _, pa := range n.Properties {
		if pa.Property.Type() == typ {
			d.Dispatch(pa, ctx)
		}
	}
}

func (d *definitionEvaluator) VisitPropertyAssignment(n *ast.PropertyAssignment, ctx any) any {
	g := ctx.(*genContext)
	name := n.Property.HTMLName()

	switch n.Property.Type() {
	case ast.PropertyStyle:
		g.write("\t\t\t\t", name, ": ")
		switch n.Property.Name {
		case "visible":
			d.writeVisibility(n.Value, ctx)
		case "direction":
			d.writeFlow(n.Value, ctx)
		default:
			d.Dispatch(n.Value, ctx)
		}
		g.write(",\n")
	case ast.PropertyFunctional:
		g.write("\t\t\t", name, " = {")
		if n.Property.Name == "onclick" {
			g.write("() => {")
			d.Dispatch(n.Value, ctx)
			g.write("}")
		} else {
			d.Dispatch(n.Value, ctx)
		}
		g.write("}\n")
	case ast.PropertyChild:
		g.write("\t\t\t{")
		d.Dispatch(n.Value, ctx)
		g.write("}\n")
	}
	return nil
}

// visible = true renders as the CSS visibility keyword.
func (d *definitionEvaluator) writeVisibility(v ast.Value, ctx any) {
	g := ctx.(*genContext)
	if b, ok := v.(*ast.BooleanConstant); ok {
		if b.Value {
			g.write(`"visible"`)
		} else {
			g.write(`"hidden"`)
		}
		return
	}
	d.Dispatch(v, ctx)
	g.write(` ? "visible" : "hidden"`)
}

// direction names the axis components are laid along, which is the
// opposite of grid-auto-flow: row renders as column and vice versa.
func (d *definitionEvaluator) writeFlow(v ast.Value, ctx any) {
	g := ctx.(*genContext)
	if s, ok := v.(*ast.StringConstant); ok {
		if s.Value == "row" {
			g.write(`"column"`)
		} else {
			g.write(`"row"`)
		}
		return
	}
	d.Dispatch(v, ctx)
	g.write(` === "row" ? "column" : "row"`)
}

func (d *definitionEvaluator) VisitVariableDefinition(n *ast.VariableDefinition, ctx any) any {
	g := ctx.(*genContext)
	g.write("\tconst ", n.Variable.Name, " = ")
	d.Dispatch(n.Instantiation, ctx)
	g.write(";\n")
	return nil
}

// A list of calls is an onclick body: one statement per line.
func (d *definitionEvaluator) VisitList(n *ast.List, ctx any) any {
	if len(n.Values) == 0 {
		return d.baseEvaluator.VisitList(n, ctx)
	}
	if _, ok := n.Values[0].(*ast.FunctionCall); !ok {
		return d.baseEvaluator.VisitList(n, ctx)
	}
	g := ctx.(*genContext)
	for _, v := range n.Values {
		g.write("\n\t\t\t\t")
		d.Dispatch(v, ctx)
	}
	g.write("\n\t\t\t")
	return nil
}

func (d *definitionEvaluator) VisitFunctionCall(n *ast.FunctionCall, ctx any) any {
	g := ctx.(*genContext)
	switch n.Kind {
	case ast.FuncSet:
		if len(n.Args) != 2 {
			g.fail(fmt.Errorf("set: %w: got %d, want 2", ErrArity, len(n.Args)))
			return nil
		}
		target, ok := n.Args[0].(*ast.ObjectPropertyValue)
		if !ok {
			g.fail(fmt.Errorf("set: %w: the target must be a component property", ErrArgumentKind))
			return nil
		}
		cell, ok := g.cells.lookup(target.StateVariable().Name)
		if !ok {
			g.fail(fmt.Errorf("set: %w: %s", ErrNotHoisted, target))
			return nil
		}
		g.write(cell.Setter, "(")
		d.Dispatch(n.Args[1], ctx)
		g.write(");")
	case ast.FuncOpen:
		if len(n.Args) != 1 {
			g.fail(fmt.Errorf("open: %w: got %d, want 1", ErrArity, len(n.Args)))
			return nil
		}
		view, ok := n.Args[0].(*ast.ViewReference)
		if !ok {
			g.fail(fmt.Errorf("open: %w: the argument must be Name.view", ErrArgumentKind))
			return nil
		}
		g.write(ast.SetterName(viewState), `("`, view.Name, `");`)
	default:
		g.fail(fmt.Errorf("%w: %s", ErrInvalidFunction, n.Name))
	}
	return nil
}

// props returns the names a component's arrow function destructures:
// every variable assigned directly to a property, except hoisted state,
// plus components for containers.
func props(n *ast.ComponentDefinition, cells *stateRegistry) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, pa := range n.Properties {
		if v, ok := pa.Value.(*ast.Variable); ok && !cells.has(v.Name) {
			add(v.Name)
		}
	}
	if n.Base.Kind == ast.ComponentContainer {
		add("components")
	}
	return names
}
