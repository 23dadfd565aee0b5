package builder

import "github.com/barun-bash/uic/internal/ast"

// InferParams computes a component's formal parameters from its body:
// every bare variable used as a property value, as a list item, as a
// call argument or as an arithmetic term, plus the object part of every
// object property used as a call argument or arithmetic term.
// Names are deduplicated and kept in first-occurrence order.
func InferParams(props []*ast.PropertyAssignment) *ast.ParamList {
	pl := &ast.ParamList{}
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			pl.Params = append(pl.Params, &ast.Param{Name: name})
		}
	}

	for _, pa := range props {
		collectFree(pa.Value, add)
	}
	return pl
}

func collectFree(v ast.Value, add func(string)) {
	switch n := v.(type) {
	case *ast.Variable:
		add(n.Name)
	case *ast.List:
		for _, item := range n.Values {
			collectFree(item, add)
		}
	case *ast.FunctionCall:
		for _, arg := range n.Args {
			switch a := arg.(type) {
			case *ast.Variable:
				add(a.Name)
			case *ast.ObjectPropertyValue:
				add(a.Variable.Name)
			case *ast.ArithExpression:
				collectArith(a, add)
			}
		}
	case *ast.ArithExpression:
		collectArith(n, add)
	}
}

func collectArith(exp *ast.ArithExpression, add func(string)) {
	for _, term := range exp.Terms {
		switch t := term.(type) {
		case *ast.Variable:
			add(t.Name)
		case *ast.ObjectPropertyValue:
			add(t.Variable.Name)
		}
	}
}
