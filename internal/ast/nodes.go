// Package ast defines the node model shared by .def and .view programs
// and the double-dispatch protocol used by every pass over it.
package ast

import (
	"unicode"
	"unicode/utf8"
)

// Node is implemented by every AST variant. Accept routes to the
// visitor method for the concrete variant and returns its result.
type Node interface {
	Accept(v Visitor, ctx any) any
}

// Value is any right-hand side: a constant, a variable, an arithmetic
// expression, a list, a function call, an object property or a view
// reference.
type Value interface {
	Node
	value()
}

// ComponentUsage is one entry of a view: an inline instantiation or a
// bare reference to a variable bound in the definition file.
type ComponentUsage interface {
	Node
	usage()
}

// Program is a complete compilation unit: one definition file plus
// every view file.
type Program struct {
	Definition  *DefProgram
	Views       []*ViewProgram
	DefaultView string // view shown initially, e.g. "Main"
}

// DefProgram is the content of the .def file.
type DefProgram struct {
	Components []*ComponentDefinition
	Variables  []*VariableDefinition
}

// ComponentDefinition is a reusable template:
//
//	BUTTON HomeButton:
//		color = c
type ComponentDefinition struct {
	Base       *BaseComponent
	Name       string
	Params     *ParamList // inferred by the builder
	Properties []*PropertyAssignment
	Line       int
}

// BaseComponent is the built-in kind a definition derives from.
type BaseComponent struct {
	Kind ComponentKind
}

// ParamList is the inferred parameter list of a component definition.
type ParamList struct {
	Params []*Param
}

// Names returns the parameter names in order.
func (pl *ParamList) Names() []string {
	names := make([]string, len(pl.Params))
	for i, p := range pl.Params {
		names[i] = p.Name
	}
	return names
}

// Param is a name usable only inside its component's body.
type Param struct {
	Name string
}

// PropertyAssignment is `property = value` inside a component body.
type PropertyAssignment struct {
	Property *Property
	Value    Value
	Line     int
}

// Property names a component property. Its classification and
// rendered attribute name come from the tables in property.go.
type Property struct {
	Name string
}

// StringConstant holds the literal text without its quotes.
type StringConstant struct {
	Value string
}

type NumberConstant struct {
	Value int
}

type BooleanConstant struct {
	Value bool
}

// Variable is a bare name. Depending on where it appears it is a
// parameter, a hoisted state read reference, or a component alias.
type Variable struct {
	Name string
	Line int
}

// ArithExpression is a flat left-to-right expression.
// len(Terms) == len(Ops)+1.
type ArithExpression struct {
	Terms []Value
	Ops   []*ArithOperation
}

type ArithOperation struct {
	Op Operator
}

// List is `[a, b]` or `[set(...), open(...)]`.
type List struct {
	Values []Value
}

// FunctionCall is a builtin invocation. Kind is derived from Name;
// unrecognized names have kind FuncInvalid.
type FunctionCall struct {
	Kind FunctionKind
	Name string
	Args []Value
}

// ObjectPropertyValue is `Component.property`.
type ObjectPropertyValue struct {
	Variable *Variable
	Property *Property
}

// String returns the source form, e.g. "Pic.width".
func (o *ObjectPropertyValue) String() string {
	return o.Variable.Name + "." + o.Property.Name
}

// StateVariable returns the read reference of the state cell backing
// this property: component Pic, property width gives picWidth.
func (o *ObjectPropertyValue) StateVariable() *Variable {
	return &Variable{Name: lowerFirst(o.Variable.Name) + upperFirst(o.Property.Name)}
}

// ViewReference is `Name.view`.
type ViewReference struct {
	Name string
}

// VariableDefinition is `Comp WITH ... AS name`.
type VariableDefinition struct {
	Variable      *Variable
	Instantiation *ComponentInstantiation
	Line          int
}

// ComponentInstantiation is `Comp WITH a = v, ...`. The builders always
// set Args to a non-nil slice.
type ComponentInstantiation struct {
	Name string
	Args []*NamedArgument
	Line int
}

type NamedArgument struct {
	Name  string
	Value Value
}

// ViewProgram is one .view file, named by its file stem.
type ViewProgram struct {
	Name   string
	Usages []ComponentUsage
}

// SetterName returns the setter paired with a state read reference:
// picWidth gives setPicWidth.
func SetterName(stateName string) string {
	return "set" + upperFirst(stateName)
}

func (*StringConstant) value()      {}
func (*NumberConstant) value()      {}
func (*BooleanConstant) value()     {}
func (*Variable) value()            {}
func (*ArithExpression) value()     {}
func (*List) value()                {}
func (*FunctionCall) value()        {}
func (*ObjectPropertyValue) value() {}
func (*ViewReference) value()       {}

func (*Variable) usage()               {}
func (*ComponentInstantiation) usage() {}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
