package ast

import "sort"

// ComponentKind enumerates the built-in base components.
type ComponentKind int

const (
	ComponentInvalid ComponentKind = iota
	ComponentButton
	ComponentText
	ComponentPicture
	ComponentCheckbox
	ComponentContainer
	ComponentTextInput
)

var componentKeywords = map[string]ComponentKind{
	"BUTTON":    ComponentButton,
	"TEXT":      ComponentText,
	"PICTURE":   ComponentPicture,
	"CHECKBOX":  ComponentCheckbox,
	"CONTAINER": ComponentContainer,
	"TEXTINPUT": ComponentTextInput,
}

// ParseComponentKind maps a source keyword such as "BUTTON" to its kind.
// Unknown keywords give ComponentInvalid.
func ParseComponentKind(keyword string) ComponentKind {
	return componentKeywords[keyword]
}

func (k ComponentKind) String() string {
	switch k {
	case ComponentButton:
		return "Button"
	case ComponentText:
		return "Text"
	case ComponentPicture:
		return "Picture"
	case ComponentCheckbox:
		return "Checkbox"
	case ComponentContainer:
		return "Container"
	case ComponentTextInput:
		return "TextInput"
	}
	return "Invalid"
}

// Tag returns the HTML element rendered for the kind.
func (k ComponentKind) Tag() string {
	switch k {
	case ComponentButton:
		return "button"
	case ComponentText:
		return "p"
	case ComponentPicture:
		return "img"
	case ComponentCheckbox, ComponentTextInput:
		return "input"
	case ComponentContainer:
		return "div"
	}
	return ""
}

// PropertyType classifies a property by where it is rendered.
type PropertyType int

const (
	PropertyInvalid    PropertyType = iota
	PropertyStyle                   // merged into the style table
	PropertyFunctional              // one element attribute each
	PropertyChild                   // nested content
)

func (t PropertyType) String() string {
	switch t {
	case PropertyStyle:
		return "Style"
	case PropertyFunctional:
		return "Functional"
	case PropertyChild:
		return "Child"
	}
	return "Invalid"
}

var propertyTypes = map[string]PropertyType{
	"color":           PropertyStyle,
	"backgroundcolor": PropertyStyle,
	"width":           PropertyStyle,
	"height":          PropertyStyle,
	"visible":         PropertyStyle,
	"fontsize":        PropertyStyle,
	"fontstyle":       PropertyStyle,
	"direction":       PropertyStyle,
	"alignment":       PropertyStyle,
	"gap":             PropertyStyle,
	"padding":         PropertyStyle,
	"border":          PropertyStyle,
	"borderstyle":     PropertyStyle,
	"bordercolor":     PropertyStyle,
	"borderwidth":     PropertyStyle,

	"onclick":  PropertyFunctional,
	"url":      PropertyFunctional,
	"alt":      PropertyFunctional,
	"disabled": PropertyFunctional,
	"checked":  PropertyFunctional,
	"value":    PropertyFunctional,

	"components": PropertyChild,
	"text":       PropertyChild,
}

// htmlNames lists properties whose rendered name differs from the
// source name.
var htmlNames = map[string]string{
	"onclick":         "onClick",
	"direction":       "gridAutoFlow",
	"alignment":       "justifySelf",
	"fontsize":        "fontSize",
	"fontstyle":       "fontWeight",
	"backgroundcolor": "backgroundColor",
	"borderstyle":     "borderStyle",
	"bordercolor":     "borderColor",
	"borderwidth":     "borderWidth",
	"visible":         "visibility",
	"url":             "src",
}

// Type returns the property's classification, PropertyInvalid for
// names outside the table.
func (p *Property) Type() PropertyType {
	return propertyTypes[p.Name]
}

// HTMLName returns the attribute or style key the property renders as.
func (p *Property) HTMLName() string {
	if name, ok := htmlNames[p.Name]; ok {
		return name
	}
	return p.Name
}

// KnownProperties returns every property name in the classification
// table in sorted order, for suggestions.
func KnownProperties() []string {
	names := make([]string, 0, len(propertyTypes))
	for name := range propertyTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FunctionKind enumerates the builtin functions.
type FunctionKind int

const (
	FuncInvalid FunctionKind = iota
	FuncSet
	FuncOpen
)

// ParseFunctionKind maps a call name to its kind.
func ParseFunctionKind(name string) FunctionKind {
	switch name {
	case "set":
		return FuncSet
	case "open":
		return FuncOpen
	}
	return FuncInvalid
}

func (k FunctionKind) String() string {
	switch k {
	case FuncSet:
		return "set"
	case FuncOpen:
		return "open"
	}
	return "invalid"
}

// Operator is an arithmetic operator.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// ParseOperator maps a symbol to its operator. ok is false for
// anything other than + - * /.
func ParseOperator(symbol string) (op Operator, ok bool) {
	switch symbol {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	}
	return 0, false
}

// Symbol returns the source symbol of the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "+"
}
