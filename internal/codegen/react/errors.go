package react

import "errors"

// Structural errors raised while generating. Any of them aborts the run
// and the partial output must be discarded.
var (
	ErrArity           = errors.New("wrong number of arguments")
	ErrArgumentKind    = errors.New("invalid argument")
	ErrNotHoisted      = errors.New("property is not backed by a state variable")
	ErrMissingProperty = errors.New("component property is missing")
	ErrInvalidFunction = errors.New("unknown function")
	ErrMisplacedCall   = errors.New("function call outside a component body")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrDefaultView     = errors.New("default view not found")
	ErrNoDefinition    = errors.New("program has no definition")
)
