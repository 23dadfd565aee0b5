// Package react generates a single-file React App from a checked
// program.
package react

import (
	"fmt"
	"io"

	"github.com/barun-bash/uic/internal/ast"
)

// DefaultView is used when a program does not name one.
const DefaultView = "Main"

const prelude = "const {useState} = React;\n\n"

// pageStyle is shared by every view page.
const pageStyle = `const style = {
	width: "100%",
	height: "100%",
	display: "grid",
	justifyItems: "center",
	alignItems: "center",
	gap: "10px",
	padding: "10px",
};

`

// Generator renders programs as JSX. It keeps no state between calls.
type Generator struct{}

// Generate writes the complete App for prog to w. prog is not modified.
//
// Output is written as it is produced. On error the caller must discard
// whatever reached w.
func (g Generator) Generate(w io.Writer, prog *ast.Program) error {
	if prog.Definition == nil {
		return ErrNoDefinition
	}
	defaultView := prog.DefaultView
	if defaultView == "" {
		defaultView = DefaultView
	}
	if !hasView(prog.Views, defaultView) {
		return fmt.Errorf("%w: %s.view", ErrDefaultView, defaultView)
	}

	def := prog.Definition.Clone()
	cells, err := hoist(def, defaultView)
	if err != nil {
		return err
	}
	ctx := newContext(w, cells)

	ctx.write(prelude, pageStyle)
	ctx.write("const App = () => {\n")

	ctx.write("\t//--------------------- DEFINITIONS ---------------------//\n")
	def.Accept(newDefinitionEvaluator(), ctx)

	ctx.write("\t//------------------------ VIEWS ------------------------//\n")
	views := newViewEvaluator()
	for _, view := range prog.Views {
		view.Accept(views, ctx)
	}

	ctx.write("\n\treturn (\n\t\t<div>\n\t\t\t{\n")
	for _, view := range prog.Views {
		if view.Name == defaultView {
			continue
		}
		ctx.write("\t\t\t\tcurrentView === \"", view.Name, "\" ? (<", pageName(view.Name), " />) :\n")
	}
	ctx.write("\t\t\t\t<", pageName(defaultView), " />\n")
	ctx.write("\t\t\t}\n\t\t</div>\n\t);\n};\n")
	ctx.write("ReactDOM.render(<App />, document.getElementById(\"root\"));\n")

	return ctx.err
}

func hasView(views []*ast.ViewProgram, name string) bool {
	for _, v := range views {
		if v.Name == name {
			return true
		}
	}
	return false
}
