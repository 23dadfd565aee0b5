package parser

import "github.com/barun-bash/uic/internal/lexer"

// The parse tree mirrors the grammar productions one to one. Optional
// alternatives are pointers and exactly one of them is non-nil in a
// successfully parsed tree. Leaf positions keep the originating token
// so later stages can report line numbers.

// DefProgramContext is the root of a .def file.
//
//	def_program := component* variable_definition*
type DefProgramContext struct {
	Components          []*ComponentContext
	VariableDefinitions []*VariableDefinitionContext
}

// ComponentContext is a component definition header plus its body.
//
//	BUTTON HomeButton:
//		color = 'gray'
//		onclick = open(Main.view)
type ComponentContext struct {
	BaseComponent lexer.Token // BUTTON, TEXT, ...
	Name          lexer.Token
	Properties    []*PropertyAssignContext
}

// PropertyAssignContext is one `property = rhs` line of a component body.
type PropertyAssignContext struct {
	Property lexer.Token
	Function *FunctionContext
	List     *ListContext
	Value    *ValueContext
}

// FunctionContext is a builtin call such as set(Pic.width, 10).
type FunctionContext struct {
	Name lexer.Token
	Args []*FuncArgContext
}

// FuncArgContext is a single call argument.
type FuncArgContext struct {
	ObjProp *ObjPropContext
	View    *ViewContext
	Value   *ValueContext
}

// ObjPropContext is `Component.property`.
type ObjPropContext struct {
	Object   lexer.Token
	Property lexer.Token
}

// ViewContext is `Name.view`.
type ViewContext struct {
	Name lexer.Token
}

// ValueContext is a scalar value: a name, a literal, or a flat
// arithmetic expression.
type ValueContext struct {
	Name    *lexer.Token
	Number  *lexer.Token
	String  *lexer.Token
	Boolean *lexer.Token
	Arith   *ArithExpContext
}

// ArithExpContext is `term (op term)+`. len(Terms) == len(Ops)+1.
type ArithExpContext struct {
	Terms []*PossibleNumContext
	Ops   []lexer.Token
}

// PossibleNumContext is one arithmetic term.
type PossibleNumContext struct {
	Number  *lexer.Token
	Name    *lexer.Token
	ObjProp *ObjPropContext
}

// ListContext holds either values or function calls, never both.
type ListContext struct {
	Values    []*ValueContext
	Functions []*FunctionContext
}

// VariableDefinitionContext is `Comp [WITH a = v, ...] AS name`.
type VariableDefinitionContext struct {
	Name          lexer.Token
	Instantiation *ComponentInstantiationContext
}

// ComponentInstantiationContext is `Comp [WITH a = v, ...]`.
type ComponentInstantiationContext struct {
	Name        lexer.Token
	Assignments []*AssignmentContext
}

// AssignmentContext is one named argument of an instantiation.
type AssignmentContext struct {
	Name  lexer.Token
	List  *ListContext
	Value *ValueContext
}

// ViewProgramContext is the root of a .view file.
type ViewProgramContext struct {
	Usages []*ComponentUsageContext
}

// ComponentUsageContext is one line of a view: either a bare name bound
// in the definition file, or an inline instantiation.
type ComponentUsageContext struct {
	Name          *lexer.Token
	Instantiation *ComponentInstantiationContext
}
