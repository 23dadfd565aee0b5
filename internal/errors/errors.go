// Package errors holds the diagnostic model reported by the semantic
// checkers.
package errors

import (
	"fmt"
	"strings"
)

// CompilerError is a single checker finding.
type CompilerError struct {
	Code       string // "E101" style error code
	Message    string // human-readable description
	File       string // source file name (empty if unknown)
	Line       int    // 0 if unknown
	Suggestion string // e.g. "Did you mean HomeButton?" (optional)
}

// Format returns a single-line representation of this error without
// ANSI styling.
func (e *CompilerError) Format() string {
	var b strings.Builder

	if e.File != "" {
		b.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	}

	b.WriteString(e.Message)

	if e.Code != "" {
		b.WriteString(" [")
		b.WriteString(e.Code)
		b.WriteString("]")
	}

	return b.String()
}

// CompilerErrors accumulates the findings of one checker pass. A report
// with no entries means the pass succeeded.
type CompilerErrors struct {
	errors []*CompilerError
	file   string // default file context
}

// New creates a CompilerErrors collection scoped to a file.
func New(file string) *CompilerErrors {
	return &CompilerErrors{file: file}
}

// SetFile changes the default file for subsequently added errors.
func (ce *CompilerErrors) SetFile(file string) {
	ce.file = file
}

// Add appends an error to the collection.
func (ce *CompilerErrors) Add(err *CompilerError) {
	if err.File == "" {
		err.File = ce.file
	}
	ce.errors = append(ce.errors, err)
}

// AddError is a shorthand for adding an error at a line.
func (ce *CompilerErrors) AddError(code string, line int, message string) {
	ce.Add(&CompilerError{Code: code, Line: line, Message: message})
}

// AddErrorWithSuggestion adds an error with a "did you mean" suggestion.
func (ce *CompilerErrors) AddErrorWithSuggestion(code string, line int, message, suggestion string) {
	ce.Add(&CompilerError{Code: code, Line: line, Message: message, Suggestion: suggestion})
}

// HasErrors reports whether the collection is non-empty.
func (ce *CompilerErrors) HasErrors() bool {
	return len(ce.errors) > 0
}

// Len returns the number of findings.
func (ce *CompilerErrors) Len() int {
	return len(ce.errors)
}

// All returns every diagnostic in insertion order.
func (ce *CompilerErrors) All() []*CompilerError {
	return ce.errors
}

// Format returns the textual report, one finding per line. An empty
// collection formats as "".
func (ce *CompilerErrors) Format() string {
	var b strings.Builder
	for i, e := range ce.errors {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "✗ %s", e.Format())
		if e.Suggestion != "" {
			fmt.Fprintf(&b, "\n  suggestion: %s", e.Suggestion)
		}
	}
	return b.String()
}

// Error makes a non-empty collection usable as an error value.
func (ce *CompilerErrors) Error() string {
	return ce.Format()
}
