package react

import (
	"fmt"
	"strconv"

	"github.com/barun-bash/uic/internal/ast"
)

// baseEvaluator renders the values shared by definition and view
// output. It is embedded by the concrete evaluators; ctx is always a
// *genContext.
type baseEvaluator struct {
	ast.BaseVisitor
}

// Strings are written as double-quoted literals with quotes and
// backslashes escaped.
func (b *baseEvaluator) VisitStringConstant(n *ast.StringConstant, ctx any) any {
	ctx.(*genContext).write(strconv.Quote(n.Value))
	return nil
}

func (b *baseEvaluator) VisitNumberConstant(n *ast.NumberConstant, ctx any) any {
	ctx.(*genContext).write(strconv.Itoa(n.Value))
	return nil
}

func (b *baseEvaluator) VisitBooleanConstant(n *ast.BooleanConstant, ctx any) any {
	ctx.(*genContext).write(strconv.FormatBool(n.Value))
	return nil
}

func (b *baseEvaluator) VisitVariable(n *ast.Variable, ctx any) any {
	ctx.(*genContext).write(n.Name)
	return nil
}

// Arithmetic is written flat, without spaces: a+10.
func (b *baseEvaluator) VisitArithExpression(n *ast.ArithExpression, ctx any) any {
	g := ctx.(*genContext)
	for i, op := range n.Ops {
		if op.Op != ast.OpDiv || i+1 >= len(n.Terms) {
			continue
		}
		if c, ok := n.Terms[i+1].(*ast.NumberConstant); ok && c.Value == 0 {
			g.fail(ErrDivisionByZero)
			return nil
		}
	}
	for i, term := range n.Terms {
		b.Dispatch(term, ctx)
		if i < len(n.Ops) {
			b.Dispatch(n.Ops[i], ctx)
		}
	}
	return nil
}

func (b *baseEvaluator) VisitArithOperation(n *ast.ArithOperation, ctx any) any {
	ctx.(*genContext).write(n.Op.Symbol())
	return nil
}

func (b *baseEvaluator) VisitList(n *ast.List, ctx any) any {
	g := ctx.(*genContext)
	g.write("[")
	for i, v := range n.Values {
		if i > 0 {
			g.write(", ")
		}
		b.Dispatch(v, ctx)
	}
	g.write("]")
	return nil
}

// An instantiation renders as an element, <Name a={x} b={y} />. A nil
// argument list renders as a bare {Name} placeholder. The builder never
// produces one: `Name AS x` has an empty, non-nil list and renders as
// <Name  />, with both separating spaces kept.
func (b *baseEvaluator) VisitComponentInstantiation(n *ast.ComponentInstantiation, ctx any) any {
	g := ctx.(*genContext)
	if n.Args == nil {
		g.write("{", n.Name, "}")
		return nil
	}
	g.write("<", n.Name, " ")
	for i, arg := range n.Args {
		if i > 0 {
			g.write(" ")
		}
		b.Dispatch(arg, ctx)
	}
	g.write(" />")
	return nil
}

func (b *baseEvaluator) VisitNamedArgument(n *ast.NamedArgument, ctx any) any {
	g := ctx.(*genContext)
	g.write(n.Name, "={")
	b.Dispatch(n.Value, ctx)
	g.write("}")
	return nil
}

// Object properties read the state cell that backs them.
func (b *baseEvaluator) VisitObjectPropertyValue(n *ast.ObjectPropertyValue, ctx any) any {
	g := ctx.(*genContext)
	state := n.StateVariable()
	if !g.cells.has(state.Name) {
		g.fail(fmt.Errorf("%w: %s", ErrNotHoisted, n))
		return nil
	}
	g.write(state.Name)
	return nil
}

func (b *baseEvaluator) VisitViewReference(n *ast.ViewReference, ctx any) any {
	ctx.(*genContext).write(n.Name)
	return nil
}

func (b *baseEvaluator) VisitFunctionCall(n *ast.FunctionCall, ctx any) any {
	ctx.(*genContext).fail(fmt.Errorf("%w: %s()", ErrMisplacedCall, n.Name))
	return nil
}
