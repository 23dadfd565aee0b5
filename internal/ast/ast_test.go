package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// variableCollector overrides a single leaf handler and relies on the
// defaults for everything else.
type variableCollector struct {
	BaseVisitor
}

func (c *variableCollector) VisitVariable(n *Variable, ctx any) any {
	names := ctx.(*[]string)
	*names = append(*names, n.Name)
	return nil
}

func newCollector() *variableCollector {
	c := &variableCollector{}
	c.Init(c)
	return c
}

func sampleDef() *DefProgram {
	return &DefProgram{
		Components: []*ComponentDefinition{
			{
				Base:   &BaseComponent{Kind: ComponentButton},
				Name:   "MyButton",
				Params: &ParamList{Params: []*Param{{Name: "t"}}},
				Properties: []*PropertyAssignment{
					{Property: &Property{Name: "text"}, Value: &Variable{Name: "t"}},
					{Property: &Property{Name: "onclick"}, Value: &List{Values: []Value{
						&FunctionCall{Kind: FuncSet, Name: "set", Args: []Value{
							&ObjectPropertyValue{Variable: &Variable{Name: "Pic"}, Property: &Property{Name: "width"}},
							&ArithExpression{
								Terms: []Value{
									&ObjectPropertyValue{Variable: &Variable{Name: "Pic"}, Property: &Property{Name: "width"}},
									&NumberConstant{Value: 10},
								},
								Ops: []*ArithOperation{{Op: OpAdd}},
							},
						}},
						&FunctionCall{Kind: FuncOpen, Name: "open", Args: []Value{&ViewReference{Name: "About"}}},
					}}},
				},
			},
			{
				Base: &BaseComponent{Kind: ComponentPicture},
				Name: "Pic",
				Properties: []*PropertyAssignment{
					{Property: &Property{Name: "width"}, Value: &NumberConstant{Value: 200}},
				},
			},
		},
		Variables: []*VariableDefinition{
			{
				Variable: &Variable{Name: "b"},
				Instantiation: &ComponentInstantiation{Name: "MyButton", Args: []*NamedArgument{
					{Name: "t", Value: &Variable{Name: "label"}},
				}},
			},
			{
				Variable:      &Variable{Name: "p"},
				Instantiation: &ComponentInstantiation{Name: "Pic"},
			},
		},
	}
}

func TestBaseVisitorRecursesThroughOuterPass(t *testing.T) {
	var names []string
	prog := &Program{
		Definition: sampleDef(),
		Views: []*ViewProgram{{Name: "Main", Usages: []ComponentUsage{
			&Variable{Name: "b"},
			&ComponentInstantiation{Name: "Pic", Args: []*NamedArgument{{Name: "x", Value: &Variable{Name: "y"}}}},
		}}},
	}
	prog.Accept(newCollector(), &names)

	want := []string{"t", "Pic", "Pic", "b", "label", "p", "b", "y"}
	assert.Equal(t, want, names)
}

func TestBaseVisitorWithoutInit(t *testing.T) {
	var b BaseVisitor
	assert.Nil(t, sampleDef().Accept(&b, nil))
}

func TestCloneIsIndependent(t *testing.T) {
	orig := sampleDef()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Components[1].Properties[0].Value = &Variable{Name: "picWidth"}
	clone.Components[0].Params.Params[0].Name = "changed"
	clone.Variables[0].Instantiation.Args[0].Name = "changed"
	list := clone.Components[0].Properties[1].Value.(*List)
	list.Values[0].(*FunctionCall).Args[0].(*ObjectPropertyValue).Property.Name = "height"

	assert.Equal(t, &NumberConstant{Value: 200}, orig.Components[1].Properties[0].Value)
	assert.Equal(t, "t", orig.Components[0].Params.Params[0].Name)
	assert.Equal(t, "t", orig.Variables[0].Instantiation.Args[0].Name)
	origList := orig.Components[0].Properties[1].Value.(*List)
	assert.Equal(t, "width", origList.Values[0].(*FunctionCall).Args[0].(*ObjectPropertyValue).Property.Name)
}

func TestClonePreservesNilArgs(t *testing.T) {
	assert.Nil(t, (&ComponentInstantiation{Name: "A"}).Clone().Args)

	empty := (&ComponentInstantiation{Name: "A", Args: []*NamedArgument{}}).Clone()
	assert.NotNil(t, empty.Args)
	assert.Empty(t, empty.Args)
}

func TestStateVariableAndSetter(t *testing.T) {
	tests := []struct {
		component, property string
		state, setter       string
	}{
		{"Picture", "width", "pictureWidth", "setPictureWidth"},
		{"MyPicture", "height", "myPictureHeight", "setMyPictureHeight"},
		{"HeyText", "fontsize", "heyTextFontsize", "setHeyTextFontsize"},
		{"pic", "url", "picUrl", "setPicUrl"},
	}
	for _, tt := range tests {
		o := &ObjectPropertyValue{Variable: &Variable{Name: tt.component}, Property: &Property{Name: tt.property}}
		state := o.StateVariable().Name
		assert.Equal(t, tt.state, state)
		assert.Equal(t, tt.setter, SetterName(state))
	}
	assert.Equal(t, "setCurrentView", SetterName("currentView"))
}

func TestPropertyClassification(t *testing.T) {
	tests := []struct {
		name string
		typ  PropertyType
		html string
	}{
		{"color", PropertyStyle, "color"},
		{"direction", PropertyStyle, "gridAutoFlow"},
		{"visible", PropertyStyle, "visibility"},
		{"fontstyle", PropertyStyle, "fontWeight"},
		{"onclick", PropertyFunctional, "onClick"},
		{"url", PropertyFunctional, "src"},
		{"checked", PropertyFunctional, "checked"},
		{"text", PropertyChild, "text"},
		{"components", PropertyChild, "components"},
		{"colour", PropertyInvalid, "colour"},
	}
	for _, tt := range tests {
		p := &Property{Name: tt.name}
		assert.Equal(t, tt.typ, p.Type(), tt.name)
		assert.Equal(t, tt.html, p.HTMLName(), tt.name)
	}
	assert.Len(t, KnownProperties(), 23)
	assert.IsIncreasing(t, KnownProperties())
}

func TestComponentKinds(t *testing.T) {
	tests := []struct {
		keyword string
		kind    ComponentKind
		tag     string
	}{
		{"BUTTON", ComponentButton, "button"},
		{"TEXT", ComponentText, "p"},
		{"PICTURE", ComponentPicture, "img"},
		{"CHECKBOX", ComponentCheckbox, "input"},
		{"TEXTINPUT", ComponentTextInput, "input"},
		{"CONTAINER", ComponentContainer, "div"},
		{"SLIDER", ComponentInvalid, ""},
	}
	for _, tt := range tests {
		k := ParseComponentKind(tt.keyword)
		assert.Equal(t, tt.kind, k, tt.keyword)
		assert.Equal(t, tt.tag, k.Tag(), tt.keyword)
	}
}

func TestFunctionKindsAndOperators(t *testing.T) {
	assert.Equal(t, FuncSet, ParseFunctionKind("set"))
	assert.Equal(t, FuncOpen, ParseFunctionKind("open"))
	assert.Equal(t, FuncInvalid, ParseFunctionKind("close"))

	for _, sym := range []string{"+", "-", "*", "/"} {
		op, ok := ParseOperator(sym)
		require.True(t, ok, sym)
		assert.Equal(t, sym, op.Symbol())
	}
	_, ok := ParseOperator("%")
	assert.False(t, ok)
}

func TestParamNames(t *testing.T) {
	pl := &ParamList{Params: []*Param{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, []string{"a", "b"}, pl.Names())
	assert.Empty(t, (&ParamList{}).Names())
}
