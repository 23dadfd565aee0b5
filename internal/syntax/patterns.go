// Package syntax is the searchable reference for the .def and .view
// languages shown by `uic syntax`.
package syntax

// Category represents a logical grouping of syntax patterns.
type Category string

const (
	CatComponents Category = "components"
	CatStyling    Category = "styling"
	CatAttributes Category = "attributes"
	CatContent    Category = "content"
	CatEvents     Category = "events"
	CatValues     Category = "values"
	CatVariables  Category = "variables"
	CatViews      Category = "views"
)

// Pattern is a single construct of the language.
type Pattern struct {
	Template    string   // "BUTTON <Name>:"
	Description string   // "Declares a clickable button template"
	Category    Category // section shown by `uic syntax <section>`
	Tags        []string // search tags
	Example     string   // full usage example
}

// CategoryLabel returns a human-readable label for a category.
func CategoryLabel(cat Category) string {
	labels := map[Category]string{
		CatComponents: "Component Templates",
		CatStyling:    "Style Properties",
		CatAttributes: "Element Attributes",
		CatContent:    "Content",
		CatEvents:     "Events & Functions",
		CatValues:     "Values",
		CatVariables:  "Variables",
		CatViews:      "Views",
	}
	if label, ok := labels[cat]; ok {
		return label
	}
	return string(cat)
}

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CatComponents,
		CatStyling,
		CatAttributes,
		CatContent,
		CatEvents,
		CatValues,
		CatVariables,
		CatViews,
	}
}

// AllPatterns returns every pattern in display order.
func AllPatterns() []Pattern {
	out := make([]Pattern, len(allPatterns))
	copy(out, allPatterns)
	return out
}

// ByCategory returns the patterns of one category.
func ByCategory(cat Category) []Pattern {
	var out []Pattern
	for _, p := range allPatterns {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

var allPatterns = []Pattern{
	// ── Components ──
	{
		Template:    "BUTTON <Name>:",
		Description: "Clickable button, rendered as <button>",
		Category:    CatComponents,
		Tags:        []string{"BUTTON", "button", "click"},
		Example:     "BUTTON HomeButton:\n\ttext = 'Home'\n\tonclick = open(Main.view)",
	},
	{
		Template:    "TEXT <Name>:",
		Description: "Paragraph of text, rendered as <p>",
		Category:    CatComponents,
		Tags:        []string{"TEXT", "text", "label", "paragraph"},
		Example:     "TEXT Greeting:\n\ttext = t\n\tfontsize = 16",
	},
	{
		Template:    "PICTURE <Name>:",
		Description: "Image, rendered as <img>",
		Category:    CatComponents,
		Tags:        []string{"PICTURE", "picture", "image", "img"},
		Example:     "PICTURE Logo:\n\turl = 'logo.png'\n\talt = 'Logo'",
	},
	{
		Template:    "CHECKBOX <Name>:",
		Description: "Checkbox input",
		Category:    CatComponents,
		Tags:        []string{"CHECKBOX", "checkbox", "toggle", "input"},
		Example:     "CHECKBOX Agree:\n\tchecked = false",
	},
	{
		Template:    "TEXTINPUT <Name>:",
		Description: "Single-line text input",
		Category:    CatComponents,
		Tags:        []string{"TEXTINPUT", "textinput", "input", "field"},
		Example:     "TEXTINPUT Email:\n\tvalue = 'you@example.com'",
	},
	{
		Template:    "CONTAINER <Name>:",
		Description: "Grid layout holding other components, rendered as <div>",
		Category:    CatComponents,
		Tags:        []string{"CONTAINER", "container", "layout", "grid", "div"},
		Example:     "CONTAINER NavBar:\n\tdirection = 'row'\n\tgap = 10",
	},

	// ── Styling ──
	{Template: "color = <text>", Description: "Text color", Category: CatStyling, Tags: []string{"color", "colour"}},
	{Template: "backgroundcolor = <text>", Description: "Background color", Category: CatStyling, Tags: []string{"backgroundcolor", "background", "color"}},
	{Template: "width = <size>", Description: "Element width, a number of pixels or a CSS string", Category: CatStyling, Tags: []string{"width", "size"}},
	{Template: "height = <size>", Description: "Element height, a number of pixels or a CSS string", Category: CatStyling, Tags: []string{"height", "size"}},
	{Template: "visible = <true|false>", Description: "Shows or hides the element", Category: CatStyling, Tags: []string{"visible", "visibility", "hidden"}},
	{Template: "fontsize = <size>", Description: "Font size", Category: CatStyling, Tags: []string{"fontsize", "font", "size"}},
	{Template: "fontstyle = 'bold'|'underline'|'italic'", Description: "Font weight or decoration", Category: CatStyling, Tags: []string{"fontstyle", "font", "bold", "italic"}},
	{Template: "direction = 'row'|'column'", Description: "Direction a container lays out its components", Category: CatStyling, Tags: []string{"direction", "layout", "row", "column"}},
	{Template: "alignment = 'left'|'center'|'right'", Description: "Horizontal alignment of the element", Category: CatStyling, Tags: []string{"alignment", "align", "center"}},
	{Template: "gap = <size>", Description: "Space between a container's components", Category: CatStyling, Tags: []string{"gap", "spacing"}},
	{Template: "padding = <size>", Description: "Inner spacing", Category: CatStyling, Tags: []string{"padding", "spacing"}},
	{Template: "border = <text>", Description: "CSS border shorthand", Category: CatStyling, Tags: []string{"border"}},
	{Template: "borderstyle = 'solid'|'dashed'|...", Description: "Border line style", Category: CatStyling, Tags: []string{"borderstyle", "border", "dotted", "dashed", "solid"}},
	{Template: "bordercolor = <text>", Description: "Border color", Category: CatStyling, Tags: []string{"bordercolor", "border", "color"}},
	{Template: "borderwidth = <size>", Description: "Border width", Category: CatStyling, Tags: []string{"borderwidth", "border", "size"}},

	// ── Attributes ──
	{Template: "url = <text>", Description: "Image source of a PICTURE", Category: CatAttributes, Tags: []string{"url", "src", "image"}},
	{Template: "alt = <text>", Description: "Alternative text of a PICTURE", Category: CatAttributes, Tags: []string{"alt", "image", "accessibility"}},
	{Template: "disabled = <true|false>", Description: "Disables an input or button", Category: CatAttributes, Tags: []string{"disabled", "input"}},
	{Template: "checked = <true|false>", Description: "Initial state of a CHECKBOX", Category: CatAttributes, Tags: []string{"checked", "checkbox"}},
	{Template: "value = <text>", Description: "Initial value of a TEXTINPUT", Category: CatAttributes, Tags: []string{"value", "input"}},
	{Template: "onclick = <call or [calls]>", Description: "Functions run when the element is clicked", Category: CatAttributes, Tags: []string{"onclick", "click", "event"}},

	// ── Content ──
	{Template: "text = <text>", Description: "Text shown inside the element", Category: CatContent, Tags: []string{"text", "label", "content"}},
	{Template: "components = [<var>, ...]", Description: "Components placed inside a CONTAINER", Category: CatContent, Tags: []string{"components", "children", "container"}},

	// ── Events ──
	{
		Template:    "open(<View>.view)",
		Description: "Switches the page to another view",
		Category:    CatEvents,
		Tags:        []string{"open", "navigate", "view", "page"},
		Example:     "onclick = open(About.view)",
	},
	{
		Template:    "set(<Component>.<property>, <value>)",
		Description: "Changes a property of a component at runtime",
		Category:    CatEvents,
		Tags:        []string{"set", "state", "update", "change"},
		Example:     "onclick = set(Greeting.fontsize, Greeting.fontsize + 2)",
	},
	{
		Template:    "[<call>, <call>, ...]",
		Description: "Runs several functions in order",
		Category:    CatEvents,
		Tags:        []string{"list", "sequence", "calls"},
		Example:     "onclick = [set(Pic.width, Pic.width * 2), open(About.view)]",
	},

	// ── Values ──
	{Template: "'text' or \"text\"", Description: "String literal", Category: CatValues, Tags: []string{"string", "quote", "literal"}},
	{Template: "<number>", Description: "Integer literal", Category: CatValues, Tags: []string{"number", "integer", "literal"}},
	{Template: "true | false", Description: "Boolean literal", Category: CatValues, Tags: []string{"boolean", "true", "false"}},
	{Template: "<param>", Description: "Parameter bound when the component is instantiated", Category: CatValues, Tags: []string{"parameter", "param", "argument"}},
	{Template: "<a> + <b> - <c> * <d> / <e>", Description: "Flat arithmetic, evaluated in the browser", Category: CatValues, Tags: []string{"arithmetic", "math", "expression"}},
	{Template: "<Component>.<property>", Description: "Current value of a component's property, inside set or arithmetic", Category: CatValues, Tags: []string{"property", "reference", "state"}},
	{Template: "# comment", Description: "Ignored until the end of the line", Category: CatValues, Tags: []string{"comment"}},

	// ── Variables ──
	{
		Template:    "<Component> AS <name>",
		Description: "Instantiates a component template under a name",
		Category:    CatVariables,
		Tags:        []string{"AS", "variable", "instance"},
		Example:     "HomeButton AS hb",
	},
	{
		Template:    "<Component> WITH <param> = <value>, ... AS <name>",
		Description: "Instantiates a template with arguments",
		Category:    CatVariables,
		Tags:        []string{"WITH", "arguments", "variable", "instance"},
		Example:     "Greeting WITH t='Hello!' AS hello",
	},
	{
		Template:    "<Container> WITH components=[<var>, ...] AS <name>",
		Description: "Fills a container with earlier variables",
		Category:    CatVariables,
		Tags:        []string{"components", "container", "variable"},
		Example:     "NavBar WITH components=[hb, ab] AS nb",
	},

	// ── Views ──
	{
		Template:    "<name>",
		Description: "Places a variable from the .def file on the page",
		Category:    CatViews,
		Tags:        []string{"view", "usage", "variable"},
		Example:     "nb",
	},
	{
		Template:    "<Component> WITH <param> = <value>, ...",
		Description: "Places an unnamed instance on the page",
		Category:    CatViews,
		Tags:        []string{"view", "usage", "WITH", "instance"},
		Example:     "Greeting WITH t='Built with uic.'",
	},
	{
		Template:    "<Name>.view",
		Description: "One page; the file stem is the view name used by open()",
		Category:    CatViews,
		Tags:        []string{"view", "file", "page"},
		Example:     "ui/input/About.view",
	},
}
