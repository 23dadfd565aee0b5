package react

import "github.com/barun-bash/uic/internal/ast"

// viewEvaluator renders each view as a page component listing its
// usages in order.
type viewEvaluator struct {
	baseEvaluator
}

func newViewEvaluator() *viewEvaluator {
	v := &viewEvaluator{}
	v.Init(v)
	return v
}

func (v *viewEvaluator) VisitViewProgram(n *ast.ViewProgram, ctx any) any {
	g := ctx.(*genContext)
	g.write("\tconst ", pageName(n.Name), " = () => (\n")
	g.write("\t\t<div style={style}>\n")
	for _, u := range n.Usages {
		g.write("\t\t\t")
		if variable, ok := u.(*ast.Variable); ok {
			g.write("{", variable.Name, "}\n")
			continue
		}
		v.Dispatch(u, ctx)
		g.write("\n")
	}
	g.write("\t\t</div>\n\t);\n")
	return nil
}

func pageName(view string) string {
	return view + "Page"
}
