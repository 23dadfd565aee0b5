package react

import "github.com/barun-bash/uic/internal/ast"

type objectPropertyExtractor struct {
	ast.BaseVisitor
}

func (x *objectPropertyExtractor) VisitObjectPropertyValue(n *ast.ObjectPropertyValue, ctx any) any {
	found := ctx.(*[]*ast.ObjectPropertyValue)
	*found = append(*found, n)
	return nil
}

// ObjectProperties returns every Component.property value in the
// definition program: component definitions first, then variable
// definitions, each in source order. Repeats are kept.
func ObjectProperties(def *ast.DefProgram) []*ast.ObjectPropertyValue {
	var found []*ast.ObjectPropertyValue
	x := &objectPropertyExtractor{}
	x.Init(x)
	def.Accept(x, &found)
	return found
}
