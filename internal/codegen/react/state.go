package react

import "github.com/barun-bash/uic/internal/ast"

// viewState is the cell holding the name of the view on screen.
const viewState = "currentView"

// stateCell is one useState hook in the generated App.
type stateCell struct {
	Name    string
	Setter  string
	Initial ast.Value
}

// stateRegistry holds the cells of one generation run in creation
// order.
type stateRegistry struct {
	cells []*stateCell
	index map[string]*stateCell
}

func newStateRegistry() *stateRegistry {
	return &stateRegistry{index: make(map[string]*stateCell)}
}

func (r *stateRegistry) add(name string, initial ast.Value) *stateCell {
	c := &stateCell{Name: name, Setter: ast.SetterName(name), Initial: initial}
	r.cells = append(r.cells, c)
	r.index[name] = c
	return c
}

func (r *stateRegistry) lookup(name string) (*stateCell, bool) {
	c, ok := r.index[name]
	return c, ok
}

func (r *stateRegistry) has(name string) bool {
	_, ok := r.index[name]
	return ok
}
