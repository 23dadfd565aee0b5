package react

import (
	"fmt"

	"github.com/barun-bash/uic/internal/ast"
)

// hoist registers the state cells for def and rebinds every hoisted
// property in def to its cell's read reference. def must be a copy:
// its property values are replaced.
//
// The view cell is always created first. Each distinct Component.property
// used anywhere then gets one cell, initialised with the property's
// declared value.
func hoist(def *ast.DefProgram, defaultView string) (*stateRegistry, error) {
	cells := newStateRegistry()
	cells.add(viewState, &ast.StringConstant{Value: defaultView})

	for _, op := range ObjectProperties(def) {
		state := op.StateVariable()
		if cells.has(state.Name) {
			continue
		}
		pa := findAssignment(def, op.Variable.Name, op.Property.Name)
		if pa == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingProperty, op)
		}
		cells.add(state.Name, pa.Value)
		pa.Value = state
	}
	return cells, nil
}

func findAssignment(def *ast.DefProgram, component, property string) *ast.PropertyAssignment {
	for _, c := range def.Components {
		if c.Name != component {
			continue
		}
		for _, pa := range c.Properties {
			if pa.Property.Name == property {
				return pa
			}
		}
		return nil
	}
	return nil
}
