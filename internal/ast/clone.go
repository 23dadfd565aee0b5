package ast

import "fmt"

// Clone returns a structural copy of the definition program that shares
// no nodes with d. Code generation rebinds property values on the copy
// so the checked tree stays untouched.
func (d *DefProgram) Clone() *DefProgram {
	out := &DefProgram{}
	if d.Components != nil {
		out.Components = make([]*ComponentDefinition, len(d.Components))
		for i, c := range d.Components {
			out.Components[i] = c.Clone()
		}
	}
	if d.Variables != nil {
		out.Variables = make([]*VariableDefinition, len(d.Variables))
		for i, v := range d.Variables {
			out.Variables[i] = v.Clone()
		}
	}
	return out
}

func (c *ComponentDefinition) Clone() *ComponentDefinition {
	out := &ComponentDefinition{Name: c.Name, Line: c.Line}
	if c.Base != nil {
		out.Base = &BaseComponent{Kind: c.Base.Kind}
	}
	if c.Params != nil {
		out.Params = &ParamList{}
		for _, p := range c.Params.Params {
			out.Params.Params = append(out.Params.Params, &Param{Name: p.Name})
		}
	}
	if c.Properties != nil {
		out.Properties = make([]*PropertyAssignment, len(c.Properties))
		for i, pa := range c.Properties {
			out.Properties[i] = &PropertyAssignment{
				Property: &Property{Name: pa.Property.Name},
				Value:    CloneValue(pa.Value),
				Line:     pa.Line,
			}
		}
	}
	return out
}

func (v *VariableDefinition) Clone() *VariableDefinition {
	return &VariableDefinition{
		Variable:      &Variable{Name: v.Variable.Name, Line: v.Variable.Line},
		Instantiation: v.Instantiation.Clone(),
		Line:          v.Line,
	}
}

// Clone copies the instantiation. A nil argument list stays nil.
func (ci *ComponentInstantiation) Clone() *ComponentInstantiation {
	out := &ComponentInstantiation{Name: ci.Name, Line: ci.Line}
	if ci.Args != nil {
		out.Args = make([]*NamedArgument, len(ci.Args))
		for i, a := range ci.Args {
			out.Args[i] = &NamedArgument{Name: a.Name, Value: CloneValue(a.Value)}
		}
	}
	return out
}

// CloneValue deep-copies any Value variant.
func CloneValue(v Value) Value {
	switch n := v.(type) {
	case nil:
		return nil
	case *StringConstant:
		return &StringConstant{Value: n.Value}
	case *NumberConstant:
		return &NumberConstant{Value: n.Value}
	case *BooleanConstant:
		return &BooleanConstant{Value: n.Value}
	case *Variable:
		return &Variable{Name: n.Name, Line: n.Line}
	case *ArithExpression:
		out := &ArithExpression{
			Terms: make([]Value, len(n.Terms)),
			Ops:   make([]*ArithOperation, len(n.Ops)),
		}
		for i, t := range n.Terms {
			out.Terms[i] = CloneValue(t)
		}
		for i, op := range n.Ops {
			out.Ops[i] = &ArithOperation{Op: op.Op}
		}
		return out
	case *List:
		out := &List{Values: make([]Value, len(n.Values))}
		for i, item := range n.Values {
			out.Values[i] = CloneValue(item)
		}
		return out
	case *FunctionCall:
		out := &FunctionCall{Kind: n.Kind, Name: n.Name, Args: make([]Value, len(n.Args))}
		for i, arg := range n.Args {
			out.Args[i] = CloneValue(arg)
		}
		return out
	case *ObjectPropertyValue:
		return &ObjectPropertyValue{
			Variable: &Variable{Name: n.Variable.Name, Line: n.Variable.Line},
			Property: &Property{Name: n.Property.Name},
		}
	case *ViewReference:
		return &ViewReference{Name: n.Name}
	}
	panic(fmt.Sprintf("ast: CloneValue: unexpected value type %T", v))
}
