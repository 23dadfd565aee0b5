package react

import "io"

// emitter writes to the output sink and keeps the first error, from the
// sink or from generation. Once an error is recorded writes are dropped.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) write(parts ...string) {
	if e.err != nil {
		return
	}
	for _, p := range parts {
		if _, err := io.WriteString(e.w, p); err != nil {
			e.err = err
			return
		}
	}
}

func (e *emitter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// genContext is the per-run state threaded through every evaluator.
type genContext struct {
	*emitter
	cells *stateRegistry
}

func newContext(w io.Writer, cells *stateRegistry) *genContext {
	return &genContext{emitter: &emitter{w: w}, cells: cells}
}
