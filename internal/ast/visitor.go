package ast

// Visitor has one method per node variant. Every pass implements the
// full interface, usually by embedding BaseVisitor and overriding the
// variants it cares about. ctx carries per-run state; passes keep none
// of their own.
type Visitor interface {
	VisitProgram(n *Program, ctx any) any
	VisitDefProgram(n *DefProgram, ctx any) any
	VisitComponentDefinition(n *ComponentDefinition, ctx any) any
	VisitBaseComponent(n *BaseComponent, ctx any) any
	VisitParamList(n *ParamList, ctx any) any
	VisitParam(n *Param, ctx any) any
	VisitPropertyAssignment(n *PropertyAssignment, ctx any) any
	VisitProperty(n *Property, ctx any) any
	VisitStringConstant(n *StringConstant, ctx any) any
	VisitNumberConstant(n *NumberConstant, ctx any) any
	VisitBooleanConstant(n *BooleanConstant, ctx any) any
	VisitVariable(n *Variable, ctx any) any
	VisitArithExpression(n *ArithExpression, ctx any) any
	VisitArithOperation(n *ArithOperation, ctx any) any
	VisitList(n *List, ctx any) any
	VisitFunctionCall(n *FunctionCall, ctx any) any
	VisitObjectPropertyValue(n *ObjectPropertyValue, ctx any) any
	VisitViewReference(n *ViewReference, ctx any) any
	VisitVariableDefinition(n *VariableDefinition, ctx any) any
	VisitComponentInstantiation(n *ComponentInstantiation, ctx any) any
	VisitNamedArgument(n *NamedArgument, ctx any) any
	VisitViewProgram(n *ViewProgram, ctx any) any
}

func (n *Program) Accept(v Visitor, ctx any) any {
	return v.VisitProgram(n, ctx)
}

func (n *DefProgram) Accept(v Visitor, ctx any) any {
	return v.VisitDefProgram(n, ctx)
}

func (n *ComponentDefinition) Accept(v Visitor, ctx any) any {
	return v.VisitComponentDefinition(n, ctx)
}

func (n *BaseComponent) Accept(v Visitor, ctx any) any {
	return v.VisitBaseComponent(n, ctx)
}

func (n *ParamList) Accept(v Visitor, ctx any) any {
	return v.VisitParamList(n, ctx)
}

func (n *Param) Accept(v Visitor, ctx any) any {
	return v.VisitParam(n, ctx)
}

func (n *PropertyAssignment) Accept(v Visitor, ctx any) any {
	return v.VisitPropertyAssignment(n, ctx)
}

func (n *Property) Accept(v Visitor, ctx any) any {
	return v.VisitProperty(n, ctx)
}

func (n *StringConstant) Accept(v Visitor, ctx any) any {
	return v.VisitStringConstant(n, ctx)
}

func (n *NumberConstant) Accept(v Visitor, ctx any) any {
	return v.VisitNumberConstant(n, ctx)
}

func (n *BooleanConstant) Accept(v Visitor, ctx any) any {
	return v.VisitBooleanConstant(n, ctx)
}

func (n *Variable) Accept(v Visitor, ctx any) any {
	return v.VisitVariable(n, ctx)
}

func (n *ArithExpression) Accept(v Visitor, ctx any) any {
	return v.VisitArithExpression(n, ctx)
}

func (n *ArithOperation) Accept(v Visitor, ctx any) any {
	return v.VisitArithOperation(n, ctx)
}

func (n *List) Accept(v Visitor, ctx any) any {
	return v.VisitList(n, ctx)
}

func (n *FunctionCall) Accept(v Visitor, ctx any) any {
	return v.VisitFunctionCall(n, ctx)
}

func (n *ObjectPropertyValue) Accept(v Visitor, ctx any) any {
	return v.VisitObjectPropertyValue(n, ctx)
}

func (n *ViewReference) Accept(v Visitor, ctx any) any {
	return v.VisitViewReference(n, ctx)
}

func (n *VariableDefinition) Accept(v Visitor, ctx any) any {
	return v.VisitVariableDefinition(n, ctx)
}

func (n *ComponentInstantiation) Accept(v Visitor, ctx any) any {
	return v.VisitComponentInstantiation(n, ctx)
}

func (n *NamedArgument) Accept(v Visitor, ctx any) any {
	return v.VisitNamedArgument(n, ctx)
}

func (n *ViewProgram) Accept(v Visitor, ctx any) any {
	return v.VisitViewProgram(n, ctx)
}

// BaseVisitor provides the default handlers: container nodes visit
// their children in source order and leaves do nothing. Both return nil.
//
// A pass embeds BaseVisitor and calls Init with itself, so the default
// handlers dispatch children back through the outer pass:
//
//	type counter struct{ ast.BaseVisitor }
//
//	c := &counter{}
//	c.Init(c)
type BaseVisitor struct {
	self Visitor
}

// Init sets the visitor that children are dispatched to.
func (b *BaseVisitor) Init(self Visitor) {
	b.self = self
}

// Dispatch visits n with the outer pass, or with b itself if Init was
// never called.
func (b *BaseVisitor) Dispatch(n Node, ctx any) any {
	if b.self == nil {
		return n.Accept(b, ctx)
	}
	return n.Accept(b.self, ctx)
}

func (b *BaseVisitor) VisitProgram(n *Program, ctx any) any {
	if n.Definition != nil {
		b.Dispatch(n.Definition, ctx)
	}
	for _, view := range n.Views {
		b.Dispatch(view, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitDefProgram(n *DefProgram, ctx any) any {
	for _, c := range n.Components {
		b.Dispatch(c, ctx)
	}
	for _, v := range n.Variables {
		b.Dispatch(v, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitComponentDefinition(n *ComponentDefinition, ctx any) any {
	b.Dispatch(n.Base, ctx)
	if n.Params != nil {
		b.Dispatch(n.Params, ctx)
	}
	for _, pa := range n.Properties {
		b.Dispatch(pa, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitParamList(n *ParamList, ctx any) any {
	for _, p := range n.Params {
		b.Dispatch(p, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitPropertyAssignment(n *PropertyAssignment, ctx any) any {
	b.Dispatch(n.Property, ctx)
	b.Dispatch(n.Value, ctx)
	return nil
}

func (b *BaseVisitor) VisitArithExpression(n *ArithExpression, ctx any) any {
	for _, t := range n.Terms {
		b.Dispatch(t, ctx)
	}
	for _, op := range n.Ops {
		b.Dispatch(op, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitList(n *List, ctx any) any {
	for _, v := range n.Values {
		b.Dispatch(v, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitFunctionCall(n *FunctionCall, ctx any) any {
	for _, arg := range n.Args {
		b.Dispatch(arg, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitObjectPropertyValue(n *ObjectPropertyValue, ctx any) any {
	b.Dispatch(n.Variable, ctx)
	b.Dispatch(n.Property, ctx)
	return nil
}

func (b *BaseVisitor) VisitVariableDefinition(n *VariableDefinition, ctx any) any {
	b.Dispatch(n.Variable, ctx)
	b.Dispatch(n.Instantiation, ctx)
	return nil
}

func (b *BaseVisitor) VisitComponentInstantiation(n *ComponentInstantiation, ctx any) any {
	for _, arg := range n.Args {
		b.Dispatch(arg, ctx)
	}
	return nil
}

func (b *BaseVisitor) VisitNamedArgument(n *NamedArgument, ctx any) any {
	b.Dispatch(n.Value, ctx)
	return nil
}

func (b *BaseVisitor) VisitViewProgram(n *ViewProgram, ctx any) any {
	for _, u := range n.Usages {
		b.Dispatch(u, ctx)
	}
	return nil
}

// Leaves.

func (b *BaseVisitor) VisitBaseComponent(*BaseComponent, any) any     { return nil }
func (b *BaseVisitor) VisitParam(*Param, any) any                     { return nil }
func (b *BaseVisitor) VisitProperty(*Property, any) any               { return nil }
func (b *BaseVisitor) VisitStringConstant(*StringConstant, any) any   { return nil }
func (b *BaseVisitor) VisitNumberConstant(*NumberConstant, any) any   { return nil }
func (b *BaseVisitor) VisitBooleanConstant(*BooleanConstant, any) any { return nil }
func (b *BaseVisitor) VisitVariable(*Variable, any) any               { return nil }
func (b *BaseVisitor) VisitArithOperation(*ArithOperation, any) any   { return nil }
func (b *BaseVisitor) VisitViewReference(*ViewReference, any) any     { return nil }
